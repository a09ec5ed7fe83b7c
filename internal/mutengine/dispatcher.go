package mutengine

import "sync/atomic"

// Engine owns the process-wide, read-only-after-construction state shared
// across calls to Mutate: the config, magic table (package-level, shared
// by all engines), dictionary, comparison-feedback snapshot, prior-input
// accessor, and clock. One Engine is typically shared by every worker in
// the enclosing fuzz loop; Mutate itself is not safe to call concurrently
// on the same Buffer, but distinct Buffers may be mutated concurrently
// through the same Engine.
type Engine struct {
	cfg      Config
	feedback *CmpFeedback
	prior    PriorInputSource
	clock    Clock
	r        *rng

	published atomic.Uint32
}

// NewEngine constructs an Engine. feedback, prior, and clock may be nil;
// a nil clock disables the slow-input adaptive splice (the dispatcher then
// treats coverage as "never stale").
func NewEngine(cfg Config, feedback *CmpFeedback, prior PriorInputSource, clock Clock) *Engine {
	return &Engine{
		cfg:      cfg,
		feedback: feedback,
		prior:    prior,
		clock:    clock,
		r:        shared,
	}
}

// PublishCount returns the number of completed Mutate calls, incremented
// by an atomic add at the end of each call. This is the
// write barrier that makes the final buffer write visible to any reader that
// itself uses an atomic load to synchronize (e.g. a sibling process via a
// memory-mapped buffer).
func (e *Engine) PublishCount() uint32 { return e.published.Load() }

// operatorTable is the uniformly-weighted operator set Mutate draws
// from. Shrink is repeated 4x to counterbalance the many size-growing
// operators (Expand, every *Insert).
var operatorTable = []func(ctx *opContext, printable bool){
	opShrink, opShrink, opShrink, opShrink,
	opExpand,
	opBit,
	opIncByte,
	opDecByte,
	opNegByte,
	opAddSub,
	opMemSet,
	opMemCopyOverwrite,
	opMemCopyInsert,
	opBytesOverwrite,
	opBytesInsert,
	opASCIINumOverwrite,
	opASCIINumInsert,
	opByteRepeatOverwrite,
	opByteRepeatInsert,
	opMagicOverwrite,
	opMagicInsert,
	opDictionaryOverwrite,
	opDictionaryInsert,
	opConstFeedbackOverwrite,
	opConstFeedbackInsert,
	opRandomOverwrite,
	opRandomInsert,
	opSpliceOverwrite,
	opSpliceInsert,
}

// changesCount computes how many operators to apply this call. A higher
// slowFactor forces more mutations per run to amortise the cost of
// executing a slow input.
func changesCount(r *rng, mutationsPerRun uint64, slowFactor uint32) uint64 {
	switch {
	case slowFactor <= 2:
		return r.rndGet(1, mutationsPerRun)
	case slowFactor <= 4:
		return max64(mutationsPerRun, 5)
	case slowFactor <= 9:
		return max64(mutationsPerRun, 7)
	default:
		return max64(mutationsPerRun, 10)
	}
}

func max64(a, b uint64) uint64 {
	if a > b {
		return a
	}

	return b
}

// Mutate is the engine's only entry point: applies a randomised sequence
// of operators to b.
func (e *Engine) Mutate(b *Buffer, slowFactor uint32) {
	if e.cfg.MutationsPerRun == 0 {
		return
	}

	ctx := &opContext{r: e.r, b: b, dict: e.cfg.Dictionary, feedback: e.feedback, prior: e.prior}

	if b.Size() == 0 {
		opResize(ctx, e.cfg.OnlyPrintable)
	}

	changes := changesCount(e.r, e.cfg.MutationsPerRun, slowFactor)

	if e.coverageStale() && e.r.rndGet(0, 2) != 2 {
		if e.r.rnd64()&1 == 0 {
			opSpliceOverwrite(ctx, e.cfg.OnlyPrintable)
		} else {
			opSpliceInsert(ctx, e.cfg.OnlyPrintable)
		}
	}

	for i := uint64(0); i < changes; i++ {
		choice := e.r.rndGet(0, uint64(len(operatorTable)-1))
		operatorTable[choice](ctx, e.cfg.OnlyPrintable)
	}

	e.published.Add(1)
}

// coverageStale reports whether more than 1000ms elapsed since the last
// coverage update. A nil clock means there is no coverage-feedback loop
// to be stale against.
func (e *Engine) coverageStale() bool {
	if e.clock == nil {
		return false
	}

	return e.clock.NowMS()-e.clock.LastCovUpdateMS() > 1000
}
