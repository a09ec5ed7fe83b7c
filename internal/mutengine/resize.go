package mutengine

// opResize is the size controller: a categorical draw over 33 buckets
// that grows, shrinks, or leaves the buffer's size unchanged, then clamps
// into [1, cap].
func opResize(ctx *opContext, printable bool) {
	oldSz := ctx.b.Size()

	choice := ctx.r.rndGet(0, 32)

	var newSz int

	switch {
	case choice == 0:
		newSz = int(ctx.r.rndGet(1, uint64(ctx.b.Cap())))
	case choice >= 1 && choice <= 4:
		newSz = oldSz + int(ctx.r.rndGet(0, 8))
	case choice == 5:
		newSz = oldSz + int(ctx.r.rndGet(9, 128))
	case choice >= 6 && choice <= 9:
		newSz = oldSz - int(ctx.r.rndGet(0, 8))
	case choice == 10:
		newSz = oldSz - int(ctx.r.rndGet(9, 128))
	default: // 11..32: unchanged
		newSz = oldSz
	}

	if newSz < 1 {
		newSz = 1
	}

	if newSz > ctx.b.Cap() {
		newSz = ctx.b.Cap()
	}

	ctx.b.SetSize(newSz)

	if newSz > oldSz && printable {
		fill(ctx.b.data[oldSz:newSz], ' ')
	}
}
