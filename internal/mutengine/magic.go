package mutengine

// magicEntry is one token in the static magic-values table: val's first
// size bytes are the token; size in {1,2,4,8}.
type magicEntry struct {
	val  [8]byte
	size int
}

// magicTable holds the boundary integers known to stress numeric code
// paths: 0x00-0x10, 0x20, 0x40, 0x7E, 0x7F, 0x80, 0x81, 0xC0, 0xFE, 0xFF
// and their zero-extended and byte-swapped 2/4/8-byte forms in native,
// big-endian, and little-endian order, plus signed MIN/MAX sentinels at
// each width.
var magicTable = []magicEntry{
	// 1B - No endianness
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	{val: [8]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 1},
	// 2B - NE
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x01, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x80, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	// 2B - BE
	{val: [8]byte{0x00, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x7E, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x7F, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x80, 0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0xFF, 0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	// 2B - LE
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0xFF, 0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0xFF, 0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x00, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0x01, 0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	{val: [8]byte{0xFE, 0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 2},
	// 4B - NE
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x01, 0x01, 0x01, 0x01, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x80, 0x80, 0x80, 0x80, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, size: 4},
	// 4B - BE
	{val: [8]byte{0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x02, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x03, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x04, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x05, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x06, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x07, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x08, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x09, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x0A, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x0B, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x0C, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x0D, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x0E, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x0F, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x10, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x20, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x40, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x7E, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x7F, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x81, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0xC0, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0xFE, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0xFF, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x7E, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x7F, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x80, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0xFF, 0xFF, 0xFF, 0xFE, 0x00, 0x00, 0x00, 0x00}, size: 4},
	// 4B - LE
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0xFF, 0xFF, 0xFF, 0x7E, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0xFF, 0xFF, 0xFF, 0x7F, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x00, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0x01, 0x00, 0x00, 0x80, 0x00, 0x00, 0x00, 0x00}, size: 4},
	{val: [8]byte{0xFE, 0xFF, 0xFF, 0xFF, 0x00, 0x00, 0x00, 0x00}, size: 4},
	// 8B - NE
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01, 0x01}, size: 8},
	{val: [8]byte{0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80, 0x80}, size: 8},
	{val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, size: 8},
	// 8B - BE
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x02}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x03}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x04}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x05}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x06}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x07}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x08}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x09}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0A}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0B}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0C}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0D}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0E}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x0F}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x10}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x20}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x40}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7E}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x7F}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x81}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xC0}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFE}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0xFF}, size: 8},
	{val: [8]byte{0x7E, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, size: 8},
	{val: [8]byte{0x7F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, size: 8},
	{val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x01}, size: 8},
	{val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFE}, size: 8},
	// 8B - LE
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x02, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x04, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x05, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x06, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x07, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x08, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x09, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x0A, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x0B, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x0C, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x0D, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x0E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x0F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x10, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x20, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x40, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x7E, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x7F, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x80, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0x81, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0xC0, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0xFE, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0xFF, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, size: 8},
	{val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7E}, size: 8},
	{val: [8]byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0x7F}, size: 8},
	{val: [8]byte{0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, size: 8},
	{val: [8]byte{0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x80}, size: 8},
	{val: [8]byte{0xFE, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, size: 8},
}

// MagicTableLen returns the static magic-value table's length, for
// callers that want to report or sanity-check it.
func MagicTableLen() int { return len(magicTable) }

