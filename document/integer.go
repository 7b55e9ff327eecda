package document

import (
	"errors"
	"fmt"
	"math"
)

// ErrNotInteger reports a numeric value with a fractional part, or a double
// outside the exactly-representable int64 range.
var ErrNotInteger = errors.New("document: expected an integer value")

// ErrNegative reports an integer below zero where a non-negative one is
// required.
var ErrNegative = errors.New("document: expected a non-negative integer")

// ParseIntegerElement extracts an int64 from a numeric value. Doubles are
// accepted only when integral and exactly representable.
func ParseIntegerElement(v Value) (int64, error) {
	switch v.Type() {
	case TypeInt:
		i, _ := v.AsInt()
		return i, nil
	case TypeDouble:
		f, _ := v.AsDouble()
		if math.Trunc(f) != f || math.IsInf(f, 0) {
			return 0, fmt.Errorf("%w, got %v", ErrNotInteger, f)
		}
		if f < math.MinInt64 || f >= math.MaxInt64 {
			return 0, fmt.Errorf("%w, %v overflows", ErrNotInteger, f)
		}
		return int64(f), nil
	}
	return 0, fmt.Errorf("%w, got %s", ErrNotInteger, v.Type())
}

// ParseNonNegativeIntegerElement is ParseIntegerElement restricted to values
// greater than or equal to zero.
func ParseNonNegativeIntegerElement(v Value) (int64, error) {
	i, err := ParseIntegerElement(v)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("%w, got %d", ErrNegative, i)
	}
	return i, nil
}
