package mutengine

import "testing"

func TestChangesCountBuckets(t *testing.T) {
	r := newRNG(nilWriter{})

	if v := changesCount(r, 3, 0); v < 1 || v > 3 {
		t.Fatalf("changesCount(slow<=2) = %d, want in [1,3]", v)
	}

	if v := changesCount(r, 3, 3); v != 5 {
		t.Fatalf("changesCount(slow<=4) = %d, want max(3,5)=5", v)
	}

	if v := changesCount(r, 3, 6); v != 7 {
		t.Fatalf("changesCount(slow<=9) = %d, want max(3,7)=7", v)
	}

	if v := changesCount(r, 3, 20); v != 10 {
		t.Fatalf("changesCount(slow>9) = %d, want max(3,10)=10", v)
	}

	if v := changesCount(r, 50, 20); v != 50 {
		t.Fatalf("changesCount(slow>9, mutationsPerRun=50) = %d, want 50", v)
	}
}

func TestMax64(t *testing.T) {
	if max64(3, 5) != 5 {
		t.Fatal("max64(3,5) != 5")
	}

	if max64(5, 3) != 5 {
		t.Fatal("max64(5,3) != 5")
	}
}

func TestEngineMutateZeroMutationsPerRunIsNoOp(t *testing.T) {
	eng := NewEngine(Config{MaxInputSz: 16, MutationsPerRun: 0}, nil, nil, nil)
	b := NewBuffer([]byte("hello"), 16)

	before := append([]byte(nil), b.Bytes()...)
	eng.Mutate(b, 0)

	if string(b.Bytes()) != string(before) {
		t.Fatalf("Mutate() with MutationsPerRun=0 altered the buffer: %q -> %q", before, b.Bytes())
	}

	if eng.PublishCount() != 0 {
		t.Fatalf("PublishCount() = %d, want 0 for a no-op Mutate", eng.PublishCount())
	}
}

func TestEngineMutateBootstrapsEmptyBuffer(t *testing.T) {
	eng := NewEngine(Config{MaxInputSz: 32, MutationsPerRun: 4}, nil, nil, nil)
	b := NewBuffer(nil, 32)

	eng.Mutate(b, 0)

	if b.Size() == 0 {
		t.Fatal("Mutate() left an empty buffer at size 0 after bootstrap resize")
	}
}

func TestEngineMutateRespectsMaxInputSz(t *testing.T) {
	eng := NewEngine(Config{MaxInputSz: 32, MutationsPerRun: 20}, nil, nil, nil)
	b := NewBuffer([]byte("0123456789"), 32)

	for i := 0; i < 50; i++ {
		eng.Mutate(b, 0)

		if b.Size() > b.Cap() {
			t.Fatalf("Mutate() grew buffer past Cap(): Size()=%d Cap()=%d", b.Size(), b.Cap())
		}
	}
}

func TestEngineMutatePublishesOnEveryCall(t *testing.T) {
	eng := NewEngine(Config{MaxInputSz: 32, MutationsPerRun: 3}, nil, nil, nil)
	b := NewBuffer([]byte("0123456789"), 32)

	for i := uint32(1); i <= 5; i++ {
		eng.Mutate(b, 0)

		if eng.PublishCount() != i {
			t.Fatalf("PublishCount() = %d after %d calls, want %d", eng.PublishCount(), i, i)
		}
	}
}

func TestEngineMutateOnlyPrintableStaysInRange(t *testing.T) {
	eng := NewEngine(Config{MaxInputSz: 64, MutationsPerRun: 8, OnlyPrintable: true}, nil, nil, nil)
	b := NewBuffer([]byte("The quick brown fox jumps over the lazy dog."), 64)

	for i := 0; i < 100; i++ {
		eng.Mutate(b, 0)
	}

	for _, c := range b.Bytes() {
		if c < 0x20 || c > 0x7E {
			t.Fatalf("printable-mode Mutate produced byte 0x%02x, out of range", c)
		}
	}
}

type fakeClock struct{ now, lastCov uint64 }

func (c fakeClock) NowMS() uint64           { return c.now }
func (c fakeClock) LastCovUpdateMS() uint64 { return c.lastCov }

func TestEngineMutateWithStaleCoverageSplicesWithoutPanicking(t *testing.T) {
	prior := fakePrior{data: []byte("SEEDCORPUSENTRYBYTES")}
	clock := fakeClock{now: 10000, lastCov: 0}

	eng := NewEngine(Config{MaxInputSz: 64, MutationsPerRun: 3}, nil, prior, clock)
	b := NewBuffer([]byte("0123456789"), 64)

	for i := 0; i < 20; i++ {
		eng.Mutate(b, 0)
	}

	if b.Size() < 1 || b.Size() > b.Cap() {
		t.Fatalf("stale-coverage Mutate produced invalid Size()=%d", b.Size())
	}
}

func TestEngineCoverageStaleNilClockIsNeverStale(t *testing.T) {
	eng := NewEngine(Config{MaxInputSz: 16, MutationsPerRun: 1}, nil, nil, nil)

	if eng.coverageStale() {
		t.Fatal("coverageStale() with a nil clock must always be false")
	}
}

func TestEngineCoverageStaleThreshold(t *testing.T) {
	eng := NewEngine(Config{MaxInputSz: 16, MutationsPerRun: 1}, nil, nil, fakeClock{now: 5000, lastCov: 0})

	if !eng.coverageStale() {
		t.Fatal("coverageStale() should be true when elapsed > 1000ms")
	}

	eng2 := NewEngine(Config{MaxInputSz: 16, MutationsPerRun: 1}, nil, nil, fakeClock{now: 500, lastCov: 0})

	if eng2.coverageStale() {
		t.Fatal("coverageStale() should be false when elapsed <= 1000ms")
	}
}
