package bitmap

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
)

// CompoundBitmap indexes strings as bit positions in a chain of BitVectors.
//
// A string is encoded into decimal digits, the digits are cut into groups of
// GroupWidth characters starting from the tail, and each group is read as an
// integer that addresses one bit in the BitVector at the group's index.
// chain[0] therefore holds the least significant group of every string.
//
// Membership is an exact structural test: a string that was turned on is
// always reported, and a different string is only reported if it decomposes
// into the same per-group positions.
//
// The chain grows on TurnOn only; queries never create elements. A
// CompoundBitmap is not safe for concurrent mutation.
type CompoundBitmap struct {
	chain      []*BitVector
	groupWidth int
	encode     EncodeFunc

	// maxBits is the bit limit shared by every chain element.
	maxBits uint64

	vectorOptions []VectorOption
	metrics       MetricsCollector
	logger        *Logger

	erased bool
}

// New creates an empty CompoundBitmap.
//
// Invalid options are reported immediately, joined into a single error.
func New(optFns ...Option) (*CompoundBitmap, error) {
	o, err := applyOptions(optFns)
	if err != nil {
		return nil, fmt.Errorf("compound bitmap: %w", err)
	}

	return &CompoundBitmap{
		groupWidth:    o.groupWidth,
		encode:        o.encode,
		maxBits:       applyVectorOptions(o.vectorOptions).maxBits,
		vectorOptions: o.vectorOptions,
		metrics:       o.metricsCollector,
		logger:        o.logger.WithGroupWidth(o.groupWidth),
	}, nil
}

// positions encodes s and returns one bit position per group, least
// significant group first. Every position is checked against the bit limit
// so that callers fail before the chain is touched.
func (cb *CompoundBitmap) positions(s string) ([]uint64, error) {
	digits, width, err := cb.encode(s)
	if err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}
	if err := validateEncoding(digits, width); err != nil {
		return nil, fmt.Errorf("encode: %w", err)
	}

	if width > maxGroupDigits || cb.groupWidth > maxGroupDigits/width {
		return nil, fmt.Errorf("%w: %d chars of %d digits exceed %d digits",
			ErrGroupTooWide, cb.groupWidth, width, maxGroupDigits)
	}
	groupDigits := width * cb.groupWidth

	pos := make([]uint64, 0, (len(digits)+groupDigits-1)/groupDigits)
	for end := len(digits); end > 0; end -= groupDigits {
		start := max(0, end-groupDigits)
		p, err := strconv.ParseUint(digits[start:end], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrBadEncoding, err)
		}
		if p >= cb.maxBits {
			return nil, fmt.Errorf("group %d: %w: %d >= %d",
				len(pos), ErrPositionTooLarge, p, cb.maxBits)
		}
		pos = append(pos, p)
	}
	return pos, nil
}

// extend appends empty BitVectors until the chain has n elements.
func (cb *CompoundBitmap) extend(n int) {
	if n <= len(cb.chain) {
		return
	}
	for len(cb.chain) < n {
		cb.chain = append(cb.chain, NewBitVector(cb.vectorOptions...))
	}
	cb.metrics.RecordChainGrowth(len(cb.chain))
	cb.logger.LogChainGrowth(len(cb.chain))
}

// TurnOn indexes s, growing the chain if s needs more groups than any string
// indexed before. A group position at or beyond the bit limit (WithMaxBits in
// WithVectorOptions) fails with ErrPositionTooLarge and leaves cb unchanged.
func (cb *CompoundBitmap) TurnOn(s string) error {
	start := time.Now()

	err := cb.turnOn(s)

	cb.metrics.RecordTurnOn(time.Since(start), err)
	cb.logger.LogTurnOn(s, err)
	return err
}

func (cb *CompoundBitmap) turnOn(s string) error {
	if cb.erased {
		return ErrErased
	}

	pos, err := cb.positions(s)
	if err != nil {
		return err
	}

	cb.extend(len(pos))
	for i, p := range pos {
		cb.chain[i].TurnOn(p)
	}
	return nil
}

// TurnOff clears the group bits of s.
//
// Groups are shared between strings, so turning off one string can make
// others that share a group position report false afterwards. The chain is
// never grown: groups beyond its length were never set.
func (cb *CompoundBitmap) TurnOff(s string) error {
	start := time.Now()

	err := cb.turnOff(s)

	cb.metrics.RecordTurnOff(time.Since(start), err)
	cb.logger.LogTurnOff(s, err)
	return err
}

func (cb *CompoundBitmap) turnOff(s string) error {
	if cb.erased {
		return ErrErased
	}

	pos, err := cb.positions(s)
	if err != nil {
		return err
	}

	for i, p := range pos {
		if i >= len(cb.chain) {
			break
		}
		cb.chain[i].TurnOff(p)
	}
	return nil
}

// IsTurnedOn reports whether every group of s is set.
//
// A string that needs more groups than the chain holds was never indexed, so
// the answer is false without touching the chain.
func (cb *CompoundBitmap) IsTurnedOn(s string) (bool, error) {
	start := time.Now()

	ok, err := cb.isTurnedOn(s)

	cb.metrics.RecordQuery(ok, time.Since(start), err)
	return ok, err
}

func (cb *CompoundBitmap) isTurnedOn(s string) (bool, error) {
	if cb.erased {
		return false, ErrErased
	}

	pos, err := cb.positions(s)
	if err != nil {
		return false, err
	}
	if len(pos) > len(cb.chain) {
		return false, nil
	}

	for i, p := range pos {
		if !cb.chain[i].IsTurnedOn(p) {
			return false, nil
		}
	}
	return true, nil
}

// IsTurnedOnAll runs IsTurnedOn for every string in ss with at most limit
// queries in flight (limit <= 0 means no limit). results[i] answers ss[i].
//
// Queries only read the chain, so they may run in parallel as long as no
// mutating call runs at the same time. The first error, including ctx
// cancellation, aborts the batch.
func (cb *CompoundBitmap) IsTurnedOnAll(ctx context.Context, ss []string, limit int) ([]bool, error) {
	results := make([]bool, len(ss))

	g, gctx := errgroup.WithContext(ctx)
	if limit > 0 {
		g.SetLimit(limit)
	}

	for i, s := range ss {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, err := cb.IsTurnedOn(s)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = ok
			return nil
		})
	}

	err := g.Wait()

	hits := 0
	for _, ok := range results {
		if ok {
			hits++
		}
	}
	cb.logger.LogBatchQuery(ctx, len(ss), hits, err)

	if err != nil {
		return nil, err
	}
	return results, nil
}

func (cb *CompoundBitmap) mustUsable() {
	if cb.erased {
		panic(fmt.Errorf("compound bitmap: %w", ErrErased))
	}
}

func (cb *CompoundBitmap) mustCompatible(other *CompoundBitmap) {
	cb.mustUsable()
	other.mustUsable()
	if cb.groupWidth != other.groupWidth {
		panic(&IncompatibleError{Left: cb.groupWidth, Right: other.groupWidth})
	}
}

// ClearAll clears every chain element. The chain keeps its length and capacity.
func (cb *CompoundBitmap) ClearAll() {
	cb.mustUsable()
	for _, bv := range cb.chain {
		bv.ClearAll()
	}
}

// Erase releases every chain element. Key operations return ErrErased and
// structural operations panic until Reset is called.
func (cb *CompoundBitmap) Erase() {
	for _, bv := range cb.chain {
		bv.Erase()
	}
	cb.chain = nil
	cb.erased = true
}

// Reset drops the whole chain and leaves an empty, usable bitmap.
func (cb *CompoundBitmap) Reset() {
	cb.chain = nil
	cb.erased = false
}

// BitLength returns the sum of the bit lengths of all chain elements.
func (cb *CompoundBitmap) BitLength() uint64 {
	var n uint64
	for _, bv := range cb.chain {
		n += bv.BitLength()
	}
	return n
}

// BitmapCount returns the current chain length.
func (cb *CompoundBitmap) BitmapCount() int {
	return len(cb.chain)
}

// GroupWidth returns the number of characters per digit group.
func (cb *CompoundBitmap) GroupWidth() int {
	return cb.groupWidth
}

// Info reports the aggregated footprint of the chain.
func (cb *CompoundBitmap) Info() Info {
	n := cb.BitLength()
	return Info{
		WordBits:    WordBits,
		WordBytes:   WordBytes,
		Shift:       WordShift,
		Mask:        WordMask,
		BitLength:   n,
		MemKB:       n >> 13,
		BitmapCount: len(cb.chain),
		GroupWidth:  cb.groupWidth,
	}
}

// Negate complements every chain element in place.
// See BitVector.Negate for the padding caveat.
func (cb *CompoundBitmap) Negate() *CompoundBitmap {
	cb.mustUsable()
	for _, bv := range cb.chain {
		bv.Negate()
	}
	return cb
}

// Union merges other into cb element by element. Elements other has beyond
// cb's chain are cloned and appended. It panics with an *IncompatibleError if
// the group widths differ.
func (cb *CompoundBitmap) Union(other *CompoundBitmap) *CompoundBitmap {
	cb.mustCompatible(other)

	n := min(len(cb.chain), len(other.chain))
	for i := 0; i < n; i++ {
		cb.chain[i].Union(other.chain[i])
	}
	if len(other.chain) > n {
		for _, bv := range other.chain[n:] {
			cb.chain = append(cb.chain, bv.Clone())
		}
		cb.metrics.RecordChainGrowth(len(cb.chain))
		cb.logger.LogChainGrowth(len(cb.chain))
	}
	return cb
}

// Intersect intersects cb with other element by element over the chain
// prefix both share. Elements of cb beyond other's chain are left untouched,
// as are bits beyond the length of each paired element (see
// BitVector.Intersect). It panics with an *IncompatibleError if the group
// widths differ.
func (cb *CompoundBitmap) Intersect(other *CompoundBitmap) *CompoundBitmap {
	cb.mustCompatible(other)

	n := min(len(cb.chain), len(other.chain))
	for i := 0; i < n; i++ {
		cb.chain[i].Intersect(other.chain[i])
	}
	return cb
}
