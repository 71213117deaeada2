package bitmap

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfig is returned by New when an option carries an unusable value.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNilEncoder is returned when WithEncoder is given a nil function.
	ErrNilEncoder = fmt.Errorf("%w: encoder must not be nil", ErrInvalidConfig)

	// ErrUnencodable is returned when an encoder cannot represent its input.
	ErrUnencodable = errors.New("string cannot be encoded")

	// ErrBadEncoding is returned when an encoder produces output that is not a
	// non-empty run of decimal digits made of equally wide per-character codes.
	ErrBadEncoding = errors.New("encoder produced malformed digits")

	// ErrGroupTooWide is returned when a digit group would not fit a uint64 bit position.
	ErrGroupTooWide = errors.New("digit group too wide")

	// ErrPositionTooLarge is returned (or panicked with, for BitVector) when a
	// bit position is at or beyond the vector's bit limit.
	ErrPositionTooLarge = errors.New("bit position beyond limit")

	// ErrErased is returned (or panicked with, for BitVector) when an erased
	// bitmap is used before Reset.
	ErrErased = errors.New("bitmap has been erased; call Reset before reuse")

	// ErrInvalidEstimate is returned by ApproxMemSize for non-positive inputs.
	ErrInvalidEstimate = errors.New("estimate inputs must be positive")

	// ErrUnknownUnit is returned for memory units outside the supported set.
	ErrUnknownUnit = errors.New("unknown memory unit")
)

// InvalidGroupWidthError indicates a negative group width override.
type InvalidGroupWidthError struct {
	Width int
}

func (e *InvalidGroupWidthError) Error() string {
	return fmt.Sprintf("invalid group width: %d", e.Width)
}

func (e *InvalidGroupWidthError) Unwrap() error { return ErrInvalidConfig }

// UnencodableError reports the first rune the default encoder cannot map to a
// two-digit code.
type UnencodableError struct {
	Rune   rune
	Offset int
}

func (e *UnencodableError) Error() string {
	return fmt.Sprintf("unencodable rune %q at byte offset %d", e.Rune, e.Offset)
}

func (e *UnencodableError) Unwrap() error { return ErrUnencodable }

// IncompatibleError indicates a Union or Intersect between compound bitmaps
// that split strings into groups of different widths.
type IncompatibleError struct {
	Left  int
	Right int
}

func (e *IncompatibleError) Error() string {
	return fmt.Sprintf("incompatible group widths: %d vs %d", e.Left, e.Right)
}
