package bitmap

import (
	"fmt"
	"io"
	"math"
	"strings"
)

// MemUnit is a memory unit expressed as its power-of-two exponent in bits.
type MemUnit int

// Supported memory units.
const (
	Bit  MemUnit = 0
	Byte MemUnit = 3
	KB   MemUnit = 13
	MB   MemUnit = 23
	GB   MemUnit = 33
)

// Exponent returns log2 of the number of bits in one unit.
func (u MemUnit) Exponent() int { return int(u) }

func (u MemUnit) valid() bool {
	switch u {
	case Bit, Byte, KB, MB, GB:
		return true
	}
	return false
}

func (u MemUnit) String() string {
	switch u {
	case Bit:
		return "b"
	case Byte:
		return "B"
	case KB:
		return "KB"
	case MB:
		return "MB"
	case GB:
		return "GB"
	}
	return fmt.Sprintf("MemUnit(%d)", int(u))
}

// ParseMemUnit parses "b", "B", "KB", "MB" or "GB".
// Multi-letter units are case-insensitive; "b" and "B" are not.
func ParseMemUnit(s string) (MemUnit, error) {
	switch s {
	case "b":
		return Bit, nil
	case "B":
		return Byte, nil
	}
	switch strings.ToUpper(s) {
	case "KB":
		return KB, nil
	case "MB":
		return MB, nil
	case "GB":
		return GB, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownUnit, s)
}

// ApproxMemSize estimates the memory a CompoundBitmap needs when n characters
// make up one group and indexed strings are m characters long:
//
//	2^(log2(10^(2n)) - unit) * m/n
//
// It assumes the default two-digit encoding and is meant for capacity
// planning only; use Info for the real footprint.
func ApproxMemSize(n, m int, unit MemUnit) (float64, error) {
	if n <= 0 || m <= 0 {
		return 0, fmt.Errorf("%w: n=%d m=%d", ErrInvalidEstimate, n, m)
	}
	if !unit.valid() {
		return 0, fmt.Errorf("%w: %d", ErrUnknownUnit, int(unit))
	}

	bitsPerGroup := math.Log2(math.Pow(10, float64(2*n)))
	return math.Pow(2, bitsPerGroup-float64(unit.Exponent())) * float64(m) / float64(n), nil
}

// ProbeMemory writes an ApproxMemSize grid for 1 <= n < maxN and
// 1 <= m < maxM. With nOriented the outer loop runs over n, otherwise over m.
// Each outer iteration starts with a separator line.
func ProbeMemory(w io.Writer, maxN, maxM int, unit MemUnit, nOriented bool) error {
	if !unit.valid() {
		return fmt.Errorf("%w: %d", ErrUnknownUnit, int(unit))
	}

	outerMax, innerMax := maxN, maxM
	outerName, innerName := "N", "M"
	if !nOriented {
		outerMax, innerMax = maxM, maxN
		outerName, innerName = "M", "N"
	}

	sep := strings.Repeat("_", 50)
	for i := 1; i < outerMax; i++ {
		if _, err := fmt.Fprintln(w, sep); err != nil {
			return err
		}
		for j := 1; j < innerMax; j++ {
			n, m := i, j
			if !nOriented {
				n, m = j, i
			}
			size, err := ApproxMemSize(n, m, unit)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s:%2d %s:%2d Mem:%g (%2s)\n",
				outerName, i, innerName, j, size, unit); err != nil {
				return err
			}
		}
	}
	return nil
}
