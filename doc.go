// Package bitmap provides a growable bit vector and a compound bitmap that
// indexes strings as positions in a chain of bit vectors.
//
// # Bit Vector
//
// BitVector stores bits in 64-bit words and grows on demand:
//
//	bv := bitmap.NewBitVector(bitmap.WithInitialBits(1 << 16))
//	bv.TurnOn(42).TurnOn(1 << 20) // grows to cover bit 1<<20
//	bv.IsTurnedOn(42)             // true
//	bv.IsTurnedOn(1 << 30)        // false, storage untouched
//
// Growth appends zero words in steps whose size doubles up to the ceiling set
// by WithMaxGrowWords. Positions at or beyond WithMaxBits (2^32 by default)
// are rejected before any allocation. Union ORs another vector in and adopts
// its extra words; Intersect ANDs over the shared prefix only and leaves the
// receiver's tail untouched.
//
// # Compound Bitmap
//
// CompoundBitmap encodes each string into decimal digits (two per character
// with DefaultEncoder), cuts the digits into groups from the tail and sets one
// bit per group in the matching chain element:
//
//	cb, _ := bitmap.New()            // 2 characters per group
//	_ = cb.TurnOn("hello")           // chain grows to 3 elements
//	ok, _ := cb.IsTurnedOn("hello")  // true
//	ok, _ = cb.IsTurnedOn("goodbye") // false, needs 4 groups
//
// Wider groups (WithPreferSpeed or WithGroupWidth) mean fewer but much larger
// bit vectors; ApproxMemSize estimates the trade-off before committing to a
// width.
//
// # Concurrency
//
// Neither type locks. Mutations need external serialization; read-only
// queries, including IsTurnedOnAll, may run concurrently while no mutation
// is in progress.
//
// # Erase and Reset
//
// Erase releases storage and marks the bitmap unusable. BitVector methods
// that touch storage panic with an error wrapping ErrErased, and
// CompoundBitmap key operations return ErrErased, until Reset is called.
package bitmap
