// Package safe provides helpers for numeric conversions and arithmetic with overflow checks.
package safe

import (
	"errors"
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"
)

var (
	// ErrNotUnsigned is returned when a string does not hold a base-10 unsigned integer.
	ErrNotUnsigned = errors.New("not an unsigned integer")
	// ErrOutOfRange is returned when a string holds only digits but the value exceeds uint64.
	ErrOutOfRange = errors.New("unsigned integer exceeds uint64")
)

// Uint16 converts signed or unsigned integers to uint16 with range validation.
func Uint16[T ~int | ~int32 | ~int64 | ~uint | ~uint32 | ~uint64](v T) (uint16, error) {
	switch value := any(v).(type) {
	case int:
		if value < 0 || value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case int32:
		if value < 0 || value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case int64:
		if value < 0 || value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case uint:
		if value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case uint32:
		if value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	case uint64:
		if value > math.MaxUint16 {
			return 0, fmt.Errorf("value %d out of uint16 range", v)
		}
	default:
		return 0, fmt.Errorf("unsupported type %T", v)
	}
	return uint16(v), nil
}

// MulUint64 returns a*b or an error when the product overflows uint64.
func MulUint64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, fmt.Errorf("%d * %d overflows uint64", a, b)
	}
	return lo, nil
}

// ParseUint64 parses a base-10 unsigned integer, ignoring surrounding
// whitespace. Signs, fractions and empty input are rejected with
// ErrNotUnsigned; well-formed values above math.MaxUint64 with ErrOutOfRange.
func ParseUint64(s string) (uint64, error) {
	trimmed := strings.TrimSpace(s)
	v, err := strconv.ParseUint(trimmed, 10, 64)
	if errors.Is(err, strconv.ErrRange) && allDigits(trimmed) {
		return 0, fmt.Errorf("%q: %w", s, ErrOutOfRange)
	}
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrNotUnsigned)
	}
	return v, nil
}

// allDigits reports whether s is non-empty and holds only ASCII digits.
// strconv stops at the first overflowing digit, so the tail is unchecked there.
func allDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
