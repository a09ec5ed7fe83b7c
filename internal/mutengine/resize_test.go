package mutengine

import "testing"

func TestOpResizeStaysWithinCapacity(t *testing.T) {
	r := newRNG(nilWriter{})
	b := NewBuffer([]byte("hello"), 32)

	for i := 0; i < 500; i++ {
		opResize(&opContext{r: r, b: b}, false)

		if b.Size() < 1 || b.Size() > b.Cap() {
			t.Fatalf("opResize() produced Size()=%d outside [1,%d]", b.Size(), b.Cap())
		}
	}
}

func TestOpResizePrintableFillsGrowthWithSpaces(t *testing.T) {
	r := &rng{state: 1}
	b := NewBuffer([]byte("ab"), 64)

	// Draw repeatedly from one fixed-seed RNG until one of the growing
	// buckets (choice 0 through 5) actually grows the size.
	var grew bool

	for i := 0; i < 200 && !grew; i++ {
		before := b.Size()
		opResize(&opContext{r: r, b: b}, true)

		if b.Size() > before {
			grew = true

			for _, c := range b.Bytes()[before:] {
				if c != ' ' {
					t.Fatalf("printable growth byte = 0x%02x, want ' '", c)
				}
			}
		}
	}

	if !grew {
		t.Skip("opResize never grew the buffer across 200 draws; not a correctness failure")
	}
}
