package bitmap

import "fmt"

// EncodeFunc turns a raw string into a string of decimal digits in which every
// raw character is represented by exactly width digits.
//
// Implementations must return a non-empty digit string for every input,
// including the empty string.
type EncodeFunc func(s string) (digits string, width int, err error)

const (
	// encodeOffset shifts printable ASCII (32..126) into two-digit codes.
	encodeOffset = 28

	// defaultCodeWidth is the number of digits DefaultEncoder emits per rune.
	defaultCodeWidth = 2

	// maxGroupDigits is the widest digit group that always fits a uint64.
	maxGroupDigits = 19
)

// DefaultEncoder maps every rune r in [28, 127] to the two-digit code r-28.
//
// The empty string encodes to the placeholder "0". Runes outside the range,
// including the replacement rune produced by invalid UTF-8, fail with an
// *UnencodableError.
func DefaultEncoder(s string) (string, int, error) {
	if s == "" {
		return "0", defaultCodeWidth, nil
	}

	buf := make([]byte, 0, len(s)*defaultCodeWidth)
	for i, r := range s {
		if r < encodeOffset || r > encodeOffset+99 {
			return "", 0, &UnencodableError{Rune: r, Offset: i}
		}
		c := byte(r - encodeOffset)
		buf = append(buf, '0'+c/10, '0'+c%10)
	}
	return string(buf), defaultCodeWidth, nil
}

// validateEncoding checks what an EncodeFunc returned.
func validateEncoding(digits string, width int) error {
	if width < 1 {
		return fmt.Errorf("%w: width %d", ErrBadEncoding, width)
	}
	if digits == "" {
		return fmt.Errorf("%w: empty digit string", ErrBadEncoding)
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return fmt.Errorf("%w: non-digit %q at offset %d", ErrBadEncoding, digits[i], i)
		}
	}
	return nil
}
