package bitmap

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApproxMemSize(t *testing.T) {
	tests := []struct {
		name string
		n, m int
		unit MemUnit
		want float64
	}{
		{"one char per group in bits", 1, 1, Bit, 100},
		{"two chars per group in KB", 2, 4, KB, 10000.0 / 8192 * 2},
		{"four chars per group in MB", 4, 8, MB, 1e8 / (1 << 23) * 2},
		{"bytes", 1, 3, Byte, 100.0 / 8 * 3},
		{"gigabytes", 5, 10, GB, 1e10 / (1 << 33) * 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ApproxMemSize(tt.n, tt.m, tt.unit)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, got, 1e-9)
		})
	}
}

func TestApproxMemSize_Invalid(t *testing.T) {
	_, err := ApproxMemSize(0, 1, KB)
	assert.ErrorIs(t, err, ErrInvalidEstimate)

	_, err = ApproxMemSize(1, -1, KB)
	assert.ErrorIs(t, err, ErrInvalidEstimate)

	_, err = ApproxMemSize(1, 1, MemUnit(7))
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestParseMemUnit(t *testing.T) {
	tests := []struct {
		in   string
		want MemUnit
	}{
		{"b", Bit},
		{"B", Byte},
		{"KB", KB},
		{"kb", KB},
		{"MB", MB},
		{"GB", GB},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseMemUnit(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, strings.EqualFold(tt.in, got.String()))
		})
	}

	_, err := ParseMemUnit("TB")
	assert.ErrorIs(t, err, ErrUnknownUnit)
}

func TestProbeMemory(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ProbeMemory(&buf, 3, 4, KB, true))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 2 separators + 2*3 estimates.
	require.Len(t, lines, 8)
	assert.Equal(t, strings.Repeat("_", 50), lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "N: 1 M: 1 Mem:"), lines[1])
	assert.True(t, strings.HasSuffix(lines[1], "(KB)"), lines[1])
	assert.True(t, strings.HasPrefix(lines[5], "N: 2 M: 1 Mem:"), lines[5])
}

func TestProbeMemory_MOriented(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, ProbeMemory(&buf, 3, 4, Bit, false))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// 3 separators + 3*2 estimates.
	require.Len(t, lines, 9)
	assert.True(t, strings.HasPrefix(lines[1], "M: 1 N: 1 Mem:"), lines[1])
	assert.True(t, strings.HasPrefix(lines[2], "M: 1 N: 2 Mem:"), lines[2])
	assert.True(t, strings.HasSuffix(lines[1], "( b)"), lines[1])
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("write failed") }

func TestProbeMemory_Errors(t *testing.T) {
	assert.Error(t, ProbeMemory(failingWriter{}, 3, 3, KB, true))
	assert.ErrorIs(t, ProbeMemory(&bytes.Buffer{}, 3, 3, MemUnit(1), true), ErrUnknownUnit)
}
