package mutengine

import (
	"encoding/binary"
	"fmt"

	mutengineerrors "github.com/fuzzforge/mutengine/internal/errors"
)

// maxLenBlock is the maximum reasonable block size for most (not all)
// mutations.
const maxLenBlock = 512

// opContext bundles the shared state an operator needs: the RNG, the
// buffer it mutates, and the three token sources.
type opContext struct {
	r        *rng
	b        *Buffer
	dict     [][]byte
	feedback *CmpFeedback
	prior    PriorInputSource
}

func blockLen(ctx *opContext, from int) uint64 {
	room := ctx.b.Size() - from
	if room < 1 {
		room = 1
	}

	m := maxLenBlock
	if room < m {
		m = room
	}

	return getLen(ctx.r, uint64(m))
}

// opBit flips one random bit of data[off].
func opBit(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)
	bit := ctx.r.rndGet(0, 7)
	buf := []byte{ctx.b.data[off] ^ (1 << bit)}
	ctx.b.overwrite(off, buf, 1, printable)
}

// opIncByte adds 1 to data[off].
func opIncByte(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)

	if printable {
		ctx.b.data[off] = (ctx.b.data[off]-32+1)%95 + 32
	} else {
		ctx.b.data[off]++
	}
}

// opDecByte subtracts 1 from data[off].
func opDecByte(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)

	if printable {
		ctx.b.data[off] = (ctx.b.data[off]-32+94)%95 + 32
	} else {
		ctx.b.data[off]--
	}
}

// opNegByte bitwise-NOTs data[off], mirroring within the printable ring
// when requested.
func opNegByte(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)

	if printable {
		ctx.b.data[off] = 94 - (ctx.b.data[off] - 32) + 32
	} else {
		ctx.b.data[off] = ^ctx.b.data[off]
	}
}

// addSubRange returns the AddSub delta range for a given operand width.
func addSubRange(width int) uint64 {
	switch width {
	case 1:
		return 16
	case 2:
		return 4096
	case 4:
		return 1 << 20
	case 8:
		return 1 << 28
	default:
		panic(mutengineerrors.UnknownWidth(width))
	}
}

// opAddSub picks an operand width (clamped to 1 if there isn't room),
// a delta, and with 50% probability interprets the existing bytes in
// foreign endianness before adding.
func opAddSub(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)

	width := 1 << ctx.r.rndGet(0, 3)
	if ctx.b.Size()-off < width {
		width = 1
	}

	rng := addSubRange(width)
	delta := int64(ctx.r.rndGet(0, rng*2)) - int64(rng)

	switch width {
	case 1:
		buf := []byte{ctx.b.data[off] + byte(delta)}
		ctx.b.overwrite(off, buf, 1, printable)
	case 2:
		v := binary.LittleEndian.Uint16(ctx.b.data[off : off+2])
		if ctx.r.rnd64()&1 != 0 {
			v = uint16(int64(v) + delta)
		} else {
			v = swap16(v)
			v = uint16(int64(v) + delta)
			v = swap16(v)
		}

		var buf [2]byte

		binary.LittleEndian.PutUint16(buf[:], v)
		ctx.b.overwrite(off, buf[:], 2, printable)
	case 4:
		v := binary.LittleEndian.Uint32(ctx.b.data[off : off+4])
		if ctx.r.rnd64()&1 != 0 {
			v = uint32(int64(v) + delta)
		} else {
			v = swap32(v)
			v = uint32(int64(v) + delta)
			v = swap32(v)
		}

		var buf [4]byte

		binary.LittleEndian.PutUint32(buf[:], v)
		ctx.b.overwrite(off, buf[:], 4, printable)
	case 8:
		v := binary.LittleEndian.Uint64(ctx.b.data[off : off+8])
		if ctx.r.rnd64()&1 != 0 {
			v = uint64(int64(v) + delta)
		} else {
			v = swap64(v)
			v = uint64(int64(v) + delta)
			v = swap64(v)
		}

		var buf [8]byte

		binary.LittleEndian.PutUint64(buf[:], v)
		ctx.b.overwrite(off, buf[:], 8, printable)
	default:
		panic(mutengineerrors.UnknownWidth(width))
	}
}

func swap16(v uint16) uint16 { return v<<8 | v>>8 }
func swap32(v uint32) uint32 {
	return v<<24 | (v&0xff00)<<8 | (v&0xff0000)>>8 | v>>24
}
func swap64(v uint64) uint64 {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], v)

	return binary.LittleEndian.Uint64(buf[:])
}

// opMemSet fills a run with a single random byte.
func opMemSet(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)
	length := int(blockLen(ctx, off))

	var v byte
	if printable {
		v = ctx.r.rndPrintable()
	} else {
		v = byte(ctx.r.rndGet(0, 255))
	}

	buf := make([]byte, length)
	fill(buf, v)
	ctx.b.overwrite(off, buf, length, false) // v is already in range when printable
}

// opMemCopyOverwrite copies a random source run onto a random destination
// via overwrite (overlap-safe).
func opMemCopyOverwrite(ctx *opContext, printable bool) {
	offFrom := getOffset(ctx.r, ctx.b)
	offTo := getOffset(ctx.r, ctx.b)
	length := int(blockLen(ctx, offFrom))

	src := append([]byte(nil), ctx.b.data[offFrom:min(offFrom+length, ctx.b.Size())]...)
	ctx.b.overwrite(offTo, src, len(src), printable)
}

// opMemCopyInsert is MemCopyOverwrite's insert counterpart.
func opMemCopyInsert(ctx *opContext, printable bool) {
	offTo := getOffset(ctx.r, ctx.b)
	offFrom := getOffset(ctx.r, ctx.b)
	length := int(blockLen(ctx, offFrom))

	src := append([]byte(nil), ctx.b.data[offFrom:min(offFrom+length, ctx.b.Size())]...)
	ctx.b.insert(offTo, src, len(src), printable)
}

// opBytesOverwrite writes 1-2 random bytes.
func opBytesOverwrite(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)

	var buf [2]byte
	if printable {
		ctx.r.rndBufPrintable(buf[:])
	} else {
		binary.LittleEndian.PutUint16(buf[:], uint16(ctx.r.rnd64()))
	}

	toCopy := int(ctx.r.rndGet(1, 2))
	ctx.b.overwrite(off, buf[:], toCopy, printable)
}

// opBytesInsert splices 1-2 random bytes.
func opBytesInsert(ctx *opContext, printable bool) {
	var buf [2]byte
	if printable {
		ctx.r.rndBufPrintable(buf[:])
	} else {
		binary.LittleEndian.PutUint16(buf[:], uint16(ctx.r.rnd64()))
	}

	off := getOffset(ctx.r, ctx.b)
	toCopy := int(ctx.r.rndGet(1, 2))
	ctx.b.insert(off, buf[:], toCopy, printable)
}

// opByteRepeatOverwrite copies data[off] forward. Falls through to
// BytesOverwrite when there's no room to repeat into.
func opByteRepeatOverwrite(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)
	destOff := off + 1
	maxSz := ctx.b.Size() - destOff

	if maxSz <= 0 {
		opBytesOverwrite(ctx, printable)
		return
	}

	m := maxLenBlock
	if maxSz < m {
		m = maxSz
	}

	length := int(getLen(ctx.r, uint64(m)))
	buf := make([]byte, length)
	fill(buf, ctx.b.data[off])
	// Raw write: the repeated byte is whatever was at off, already
	// printable when the invariant holds, so no remap here.
	ctx.b.overwrite(destOff, buf, length, false)
}

// opByteRepeatInsert is ByteRepeatOverwrite's insert counterpart.
func opByteRepeatInsert(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)
	destOff := off + 1
	maxSz := ctx.b.Size() - destOff

	if maxSz <= 0 {
		opBytesInsert(ctx, printable)
		return
	}

	m := maxLenBlock
	if maxSz < m {
		m = maxSz
	}

	length := int(getLen(ctx.r, uint64(m)))
	repeated := ctx.b.data[off]
	actual := ctx.b.inflate(destOff, length, printable)

	if actual > 0 {
		fill(ctx.b.data[destOff:destOff+actual], repeated)
	}
}

// opMagicOverwrite writes a uniformly-chosen magic-table entry.
func opMagicOverwrite(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)
	val := magicPick(ctx.r)
	ctx.b.overwrite(off, val, len(val), printable)
}

// opMagicInsert splices a uniformly-chosen magic-table entry.
func opMagicInsert(ctx *opContext, printable bool) {
	val := magicPick(ctx.r)
	off := getOffset(ctx.r, ctx.b)
	ctx.b.insert(off, val, len(val), printable)
}

// opDictionaryOverwrite writes a uniformly-chosen dictionary token,
// falling through to BytesOverwrite when the dictionary is empty.
//
func opDictionaryOverwrite(ctx *opContext, printable bool) {
	tok, ok := dictionaryPick(ctx.r, ctx.dict)
	if !ok {
		opBytesOverwrite(ctx, printable)
		return
	}

	off := getOffset(ctx.r, ctx.b)
	ctx.b.overwrite(off, tok, len(tok), printable)
}

// opDictionaryInsert is DictionaryOverwrite's insert counterpart.
func opDictionaryInsert(ctx *opContext, printable bool) {
	tok, ok := dictionaryPick(ctx.r, ctx.dict)
	if !ok {
		opBytesInsert(ctx, printable)
		return
	}

	off := getOffset(ctx.r, ctx.b)
	ctx.b.insert(off, tok, len(tok), printable)
}

// opConstFeedbackOverwrite writes a uniformly-chosen comparison-feedback
// token, falling through to BytesOverwrite when feedback is absent, empty,
// or the chosen entry is unpublished (len==0).
func opConstFeedbackOverwrite(ctx *opContext, printable bool) {
	val, ok := ctx.feedback.pick(ctx.r)
	if !ok {
		opBytesOverwrite(ctx, printable)
		return
	}

	off := getOffset(ctx.r, ctx.b)
	ctx.b.overwrite(off, val, len(val), printable)
}

// opConstFeedbackInsert is ConstFeedbackOverwrite's insert counterpart.
//
func opConstFeedbackInsert(ctx *opContext, printable bool) {
	val, ok := ctx.feedback.pick(ctx.r)
	if !ok {
		opBytesInsert(ctx, printable)
		return
	}

	off := getOffset(ctx.r, ctx.b)
	ctx.b.insert(off, val, len(val), printable)
}

// opRandomOverwrite writes a random (or printable) run.
func opRandomOverwrite(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)
	length := int(blockLen(ctx, off))

	buf := make([]byte, length)
	if printable {
		ctx.r.rndBufPrintable(buf)
	} else {
		ctx.r.rndBuf(buf)
	}

	ctx.b.overwrite(off, buf, length, false)
}

// opRandomInsert splices a random (or printable) run.
func opRandomInsert(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)
	length := int(blockLen(ctx, off))

	actual := ctx.b.inflate(off, length, printable)
	if actual == 0 {
		return
	}

	buf := ctx.b.data[off : off+actual]
	if printable {
		ctx.r.rndBufPrintable(buf)
	} else {
		ctx.r.rndBuf(buf)
	}
}

// opASCIINumOverwrite writes a prefix of a 19-char left-justified decimal
// rendering of a random signed 64-bit integer.
func opASCIINumOverwrite(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)
	length := int(ctx.r.rndGet(2, 8))
	buf := []byte(fmt.Sprintf("%-19d", int64(ctx.r.rnd64())))
	ctx.b.overwrite(off, buf, length, printable)
}

// opASCIINumInsert is ASCIINumOverwrite's insert counterpart.
func opASCIINumInsert(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)
	length := int(ctx.r.rndGet(2, 8))
	buf := []byte(fmt.Sprintf("%-19d", int64(ctx.r.rnd64())))
	ctx.b.insert(off, buf, length, printable)
}

// opSpliceOverwrite copies a slice of a random prior corpus input onto the
// buffer, falling through to BytesOverwrite when no prior input is
// available.
func opSpliceOverwrite(ctx *opContext, printable bool) {
	remote, ok := fetchPrior(ctx)
	if !ok {
		opBytesOverwrite(ctx, printable)
		return
	}

	remoteOff := int(getLen(ctx.r, uint64(len(remote))) - 1)
	localOff := getOffset(ctx.r, ctx.b)

	m := len(remote) - remoteOff
	if room := ctx.b.Size() - localOff; room < m {
		m = room
	}

	if m < 1 {
		opBytesOverwrite(ctx, printable)
		return
	}

	length := int(getLen(ctx.r, uint64(m)))
	ctx.b.overwrite(localOff, remote[remoteOff:], length, printable)
}

// opSpliceInsert is SpliceOverwrite's insert counterpart.
func opSpliceInsert(ctx *opContext, printable bool) {
	remote, ok := fetchPrior(ctx)
	if !ok {
		opBytesInsert(ctx, printable)
		return
	}

	remoteOff := int(getLen(ctx.r, uint64(len(remote))) - 1)
	localOff := getOffset(ctx.r, ctx.b)

	m := len(remote) - remoteOff
	if room := ctx.b.Size() - localOff; room < m {
		m = room
	}

	if m < 1 {
		opBytesInsert(ctx, printable)
		return
	}

	length := int(getLen(ctx.r, uint64(m)))
	ctx.b.insert(localOff, remote[remoteOff:], length, printable)
}

func fetchPrior(ctx *opContext) ([]byte, bool) {
	if ctx.prior == nil {
		return nil, false
	}

	data, ok := ctx.prior.FetchRandomPrior()
	if !ok || len(data) == 0 {
		return nil, false
	}

	return data, true
}

// opExpand grows the buffer: 15/16 of the time by a small amount
// (getLen(min(16, room))), otherwise by up to the full remaining room.
// A no-op when there is no room at all.
//
func opExpand(ctx *opContext, printable bool) {
	off := getOffset(ctx.r, ctx.b)

	room := ctx.b.Cap() - off
	if room <= 0 {
		return
	}

	var length uint64
	if ctx.r.rnd64()%16 != 0 {
		m := room
		if m > 16 {
			m = 16
		}

		length = getLen(ctx.r, uint64(m))
	} else {
		length = getLen(ctx.r, uint64(room))
	}

	ctx.b.inflate(off, int(length), printable)
}

// opShrink removes a run and moves the tail left. A no-op when the buffer
// is too small to shrink safely.
func opShrink(ctx *opContext, _ bool) {
	if ctx.b.Size() <= 2 {
		return
	}

	offStart := getOffset(ctx.r, ctx.b)

	leftAvail := ctx.b.Size() - offStart - 1
	if leftAvail <= 0 {
		return
	}

	var length uint64
	if ctx.r.rnd64()%16 != 0 {
		m := leftAvail
		if m > 16 {
			m = 16
		}

		length = getLen(ctx.r, uint64(m))
	} else {
		length = getLen(ctx.r, uint64(leftAvail))
	}

	offEnd := offStart + int(length)
	lenToMove := ctx.b.Size() - offEnd

	ctx.b.move(offEnd, offStart, lenToMove)
	ctx.b.SetSize(ctx.b.Size() - int(length))
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}
