package bitmap

// Bitmap is the structural contract shared by BitVector and CompoundBitmap.
//
// B is the concrete implementation type, so Union and Intersect only accept
// operands of the same kind and return the receiver for chaining.
type Bitmap[B any] interface {
	// ClearAll turns every bit off and keeps the allocated capacity.
	ClearAll()
	// Erase releases all storage; the bitmap must be Reset before reuse.
	Erase()
	// Reset drops all storage and leaves an empty, usable bitmap.
	Reset()
	// BitLength returns the number of addressable bits.
	BitLength() uint64
	// Info describes layout and footprint.
	Info() Info
	// Negate complements every stored bit in place.
	Negate() B
	// Union ORs other into the receiver.
	Union(other B) B
	// Intersect ANDs other into the receiver over their common prefix.
	Intersect(other B) B
}

var (
	_ Bitmap[*BitVector]      = (*BitVector)(nil)
	_ Bitmap[*CompoundBitmap] = (*CompoundBitmap)(nil)
)

// Info reports the word layout and memory footprint of a bitmap.
//
// BitmapCount and GroupWidth are only populated by CompoundBitmap.
type Info struct {
	WordBits  int
	WordBytes int
	Shift     int
	Mask      int
	BitLength uint64
	// MemKB approximates the storage size in KiB (BitLength >> 13).
	MemKB uint64

	BitmapCount int
	GroupWidth  int
}
