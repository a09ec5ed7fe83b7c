package mutengine

import (
	"bytes"
	"testing"
)

func TestRngRndGetStaysInRange(t *testing.T) {
	r := newRNG(bytes.NewBuffer(nil))

	for i := 0; i < 10000; i++ {
		v := r.rndGet(5, 9)
		if v < 5 || v > 9 {
			t.Fatalf("rndGet(5,9) = %d, out of range", v)
		}
	}
}

func TestRngRndGetSinglePointRange(t *testing.T) {
	r := newRNG(bytes.NewBuffer(nil))

	if v := r.rndGet(3, 3); v != 3 {
		t.Fatalf("rndGet(3,3) = %d, want 3", v)
	}
}

func TestRngRndGetPanicsOnInvertedRange(t *testing.T) {
	r := newRNG(bytes.NewBuffer(nil))

	defer func() {
		if recover() == nil {
			t.Fatal("rndGet(max < min) did not panic")
		}
	}()

	r.rndGet(10, 5)
}

func TestRngRndBufPrintableStaysInRange(t *testing.T) {
	r := newRNG(bytes.NewBuffer(nil))

	buf := make([]byte, 256)
	r.rndBufPrintable(buf)

	for _, c := range buf {
		if c < 0x20 || c > 0x7E {
			t.Fatalf("rndBufPrintable produced 0x%02x, out of printable range", c)
		}
	}
}

func TestTurnToPrintableStaysInRange(t *testing.T) {
	buf := []byte{0x00, 0x01, 0x7F, 0xFF, 0x20, 0x80}
	turnToPrintable(buf)

	for _, c := range buf {
		if c < 0x20 || c > 0x7E {
			t.Fatalf("turnToPrintable produced 0x%02x, out of printable range", c)
		}
	}
}

func TestTurnToPrintableIsNotIdempotent(t *testing.T) {
	// 0x00 maps to 0x20 (space) on the first pass but to 0x40 ('@') on a
	// second pass over the already-printable result. BytesOverwrite and
	// BytesInsert draw printable bytes and then remap them again, so the
	// bytes they write are not the ones drawn; pin the behavior here.
	buf := []byte{0x00}
	turnToPrintable(buf)

	if buf[0] != 0x20 {
		t.Fatalf("first remap = 0x%02x, want 0x20", buf[0])
	}

	turnToPrintable(buf)

	if buf[0] == 0x20 {
		t.Fatalf("second remap left byte unchanged; expected turnToPrintable to not be idempotent here")
	}
}

func TestRngRnd64DeterministicForFixedState(t *testing.T) {
	r := &rng{state: 0xDEADBEEFCAFEBABE}

	a := r.rnd64()

	r2 := &rng{state: 0xDEADBEEFCAFEBABE}
	b := r2.rnd64()

	if a != b {
		t.Fatalf("rnd64() not deterministic for identical state: %d != %d", a, b)
	}
}
