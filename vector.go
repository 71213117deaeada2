package bitmap

import (
	"fmt"
	"iter"
	"math/bits"

	"github.com/RoaringBitmap/roaring/v2/roaring64"
)

// WordBits is the number of bits per storage word.
const WordBits = 64

// WordBytes is the size of a storage word in bytes.
const WordBytes = WordBits / 8

// WordShift converts a bit position into a word index (pos >> WordShift).
const WordShift = 6

// WordMask extracts the bit offset inside a word (pos & WordMask).
const WordMask = WordBits - 1

// bitMasks holds the single-bit mask for every offset inside a word.
// Built once at package init and read-only afterwards.
var bitMasks = func() (m [WordBits]uint64) {
	for i := range m {
		m[i] = uint64(1) << i
	}
	return m
}()

// BitVector is a packed, dynamically growable sequence of bits.
//
// Bits live in 64-bit words: position pos is stored in words[pos>>6] under
// the mask 1<<(pos&63). Storage only grows by appending zero words, so set
// bits survive growth.
//
// A BitVector is not safe for concurrent mutation. Concurrent readers are
// fine as long as no writer runs at the same time.
type BitVector struct {
	words []uint64

	// growUnit is the number of words appended by the next growth step.
	growUnit     int
	maxGrowWords int
	maxBits      uint64

	erased bool
}

// NewBitVector creates a BitVector sized for the initial bit-length hint.
func NewBitVector(optFns ...VectorOption) *BitVector {
	o := applyVectorOptions(optFns)
	unit := int(o.initialBits>>WordShift) + 1

	return &BitVector{
		words:        make([]uint64, unit),
		growUnit:     unit,
		maxGrowWords: o.maxGrowWords,
		maxBits:      o.maxBits,
	}
}

// BitVectorFromRoaring builds a BitVector holding every position in rb.
// It panics with an error wrapping ErrPositionTooLarge if rb holds a position
// at or beyond the bit limit.
func BitVectorFromRoaring(rb *roaring64.Bitmap, optFns ...VectorOption) *BitVector {
	bv := NewBitVector(optFns...)
	if rb == nil || rb.IsEmpty() {
		return bv
	}

	bv.mustAddressable(rb.Maximum())
	bv.grow(rb.Maximum())

	it := rb.Iterator()
	for it.HasNext() {
		pos := it.Next()
		bv.words[pos>>WordShift] |= bitMasks[pos&WordMask]
	}
	return bv
}

func (bv *BitVector) mustUsable() {
	if bv.erased {
		panic(fmt.Errorf("bitvector: %w", ErrErased))
	}
}

func (bv *BitVector) mustAddressable(pos uint64) {
	if pos >= bv.maxBits {
		panic(fmt.Errorf("bitvector: %w: %d >= %d", ErrPositionTooLarge, pos, bv.maxBits))
	}
}

// MaxBits returns the bit limit set with WithMaxBits.
func (bv *BitVector) MaxBits() uint64 {
	return bv.maxBits
}

// grow appends zero words until pos is addressable.
// The growth unit doubles per step until it reaches maxGrowWords; once it is
// capped the remaining steps are computed in one go.
func (bv *BitVector) grow(pos uint64) {
	if pos < bv.BitLength() {
		return
	}

	need := int(pos>>WordShift) + 1
	n := len(bv.words)

	for n < need && bv.growUnit < bv.maxGrowWords {
		bv.growUnit = min(bv.growUnit*2, bv.maxGrowWords)
		n += bv.growUnit
	}
	if n < need {
		steps := (need - n + bv.growUnit - 1) / bv.growUnit
		n += steps * bv.growUnit
	}

	bv.words = append(bv.words, make([]uint64, n-len(bv.words))...)
}

// TurnOn sets the bit at pos, growing storage if pos is beyond BitLength.
// It panics with an error wrapping ErrPositionTooLarge if pos is at or beyond
// MaxBits, before any storage is allocated.
func (bv *BitVector) TurnOn(pos uint64) *BitVector {
	bv.mustUsable()
	bv.mustAddressable(pos)
	bv.grow(pos)
	bv.words[pos>>WordShift] |= bitMasks[pos&WordMask]
	return bv
}

// TurnOff clears the bit at pos.
// Positions at or beyond BitLength are never set, so they are left alone and
// storage does not grow.
func (bv *BitVector) TurnOff(pos uint64) *BitVector {
	bv.mustUsable()
	if pos >= bv.BitLength() {
		return bv
	}
	bv.words[pos>>WordShift] &^= bitMasks[pos&WordMask]
	return bv
}

// IsTurnedOn reports whether the bit at pos is set.
// It returns false for positions beyond BitLength and never grows storage.
func (bv *BitVector) IsTurnedOn(pos uint64) bool {
	if pos >= bv.BitLength() {
		return false
	}
	return bv.words[pos>>WordShift]&bitMasks[pos&WordMask] != 0
}

// ClearAll zeroes every bit. Capacity is unchanged.
func (bv *BitVector) ClearAll() {
	bv.mustUsable()
	clear(bv.words)
}

// Erase releases the storage. The vector must be Reset before it is used again;
// mutating an erased vector panics with an error wrapping ErrErased.
func (bv *BitVector) Erase() {
	bv.words = nil
	bv.erased = true
}

// Reset drops all storage so BitLength becomes 0 and the vector is usable again.
// Unlike ClearAll it does not retain capacity.
func (bv *BitVector) Reset() {
	bv.words = []uint64{}
	bv.erased = false
}

// BitLength returns the number of addressable bits (always a multiple of WordBits).
func (bv *BitVector) BitLength() uint64 {
	return uint64(len(bv.words)) << WordShift
}

// Info describes the word layout and current footprint.
func (bv *BitVector) Info() Info {
	n := bv.BitLength()
	return Info{
		WordBits:  WordBits,
		WordBytes: WordBytes,
		Shift:     WordShift,
		Mask:      WordMask,
		BitLength: n,
		MemKB:     n >> 13,
	}
}

// Negate complements every word in place.
//
// The vector has no notion of a logical length, so padding bits up to
// BitLength are flipped as well. Callers relying on negation must track their
// own upper bound.
func (bv *BitVector) Negate() *BitVector {
	bv.mustUsable()
	for i := range bv.words {
		bv.words[i] = ^bv.words[i]
	}
	return bv
}

// Union ORs other into bv. Words of other beyond bv's length are appended as
// a copy. other is not modified.
func (bv *BitVector) Union(other *BitVector) *BitVector {
	bv.mustUsable()
	other.mustUsable()

	n := min(len(bv.words), len(other.words))
	for i := 0; i < n; i++ {
		bv.words[i] |= other.words[i]
	}
	if len(other.words) > n {
		bv.words = append(bv.words, other.words[n:]...)
	}
	return bv
}

// Intersect ANDs other into bv over the words both vectors have.
//
// Words of bv beyond other's length are left untouched, so bits set only in
// that tail survive. This is not set intersection in the strict sense: to get
// it, make sure other is at least as long as bv.
func (bv *BitVector) Intersect(other *BitVector) *BitVector {
	bv.mustUsable()
	other.mustUsable()

	n := min(len(bv.words), len(other.words))
	for i := 0; i < n; i++ {
		bv.words[i] &= other.words[i]
	}
	return bv
}

// Cardinality returns the number of set bits.
func (bv *BitVector) Cardinality() int {
	count := 0
	for _, w := range bv.words {
		if w != 0 {
			count += bits.OnesCount64(w)
		}
	}
	return count
}

// Clone returns a deep copy of bv, including its growth state.
func (bv *BitVector) Clone() *BitVector {
	bv.mustUsable()

	words := make([]uint64, len(bv.words))
	copy(words, bv.words)

	return &BitVector{
		words:        words,
		growUnit:     bv.growUnit,
		maxGrowWords: bv.maxGrowWords,
		maxBits:      bv.maxBits,
	}
}

// All returns an iterator over the set positions in ascending order.
func (bv *BitVector) All() iter.Seq[uint64] {
	return func(yield func(uint64) bool) {
		for i, w := range bv.words {
			for w != 0 {
				t := bits.TrailingZeros64(w)
				if !yield(uint64(i)<<WordShift | uint64(t)) {
					return
				}
				w &= w - 1 // Clear lowest bit
			}
		}
	}
}

// ToRoaring returns a compressed copy of the set positions.
func (bv *BitVector) ToRoaring() *roaring64.Bitmap {
	rb := roaring64.New()
	for pos := range bv.All() {
		rb.Add(pos)
	}
	return rb
}
