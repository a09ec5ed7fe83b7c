package mutengine

import "sync/atomic"

// FeedbackEntry is one comparison-feedback token harvested by the
// instrumentation subsystem. Len is updated with relaxed-ordering atomics
// by a sibling thread/process; Val is assumed stable once Len > 0 is
// observed (the producer writes Val before publishing Len).
type FeedbackEntry struct {
	Val [32]byte
	Len atomic.Uint32
}

// CmpFeedback is the comparison-feedback snapshot the engine only reads.
// Cnt is the atomically-published count of valid entries in ValArr,
// capped by ValArr's length on every read (a torn Cnt must never index
// past the array).
type CmpFeedback struct {
	Cnt    atomic.Uint32
	ValArr []FeedbackEntry
}

// pick returns the bytes of a uniformly-chosen feedback entry, or false
// if none is available (cnt == 0, or the chosen entry's len == 0 from a
// torn/not-yet-published write). The engine falls through to the Bytes*
// operator on either case, never treating it as an error.
func (c *CmpFeedback) pick(r *rng) ([]byte, bool) {
	if c == nil {
		return nil, false
	}

	cnt := c.Cnt.Load()
	if int(cnt) > len(c.ValArr) {
		cnt = uint32(len(c.ValArr))
	}

	if cnt == 0 {
		return nil, false
	}

	choice := r.rndGet(0, uint64(cnt-1))

	entry := &c.ValArr[choice]

	length := entry.Len.Load()
	if length == 0 {
		return nil, false
	}

	if int(length) > len(entry.Val) {
		length = uint32(len(entry.Val))
	}

	return entry.Val[:length], true
}

// magicPick chooses a uniformly-random entry from the static magic table
// and returns its value slice.
func magicPick(r *rng) []byte {
	choice := r.rndGet(0, uint64(len(magicTable)-1))
	e := &magicTable[choice]

	return e.val[:e.size]
}

// dictionaryPick chooses a uniformly-random token from dict, or false if
// dict is empty.
func dictionaryPick(r *rng, dict [][]byte) ([]byte, bool) {
	if len(dict) == 0 {
		return nil, false
	}

	choice := r.rndGet(0, uint64(len(dict)-1))

	return dict[choice], true
}
