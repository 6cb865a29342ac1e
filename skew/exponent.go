package skew

import (
	"fmt"
	"math"
	"math/big"
	"strings"
)

// ParseExponent parses a decimal (or 0x/0o/0b prefixed) integer exponent.
func ParseExponent(s string) (*big.Int, error) {
	e, ok := new(big.Int).SetString(strings.TrimSpace(s), 0)
	if !ok {
		return nil, fmt.Errorf("skew: exponent %q: %w", s, ErrNonIntegralExponent)
	}
	return e, nil
}

// ExponentOf coerces v to an integer exponent. Integer kinds, *big.Int, integral floats and
// strings accepted by ParseExponent are supported.
func ExponentOf(v any) (*big.Int, error) {
	switch x := v.(type) {
	case int:
		return big.NewInt(int64(x)), nil
	case int8:
		return big.NewInt(int64(x)), nil
	case int16:
		return big.NewInt(int64(x)), nil
	case int32:
		return big.NewInt(int64(x)), nil
	case int64:
		return big.NewInt(x), nil
	case uint:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint8:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint16:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint32:
		return new(big.Int).SetUint64(uint64(x)), nil
	case uint64:
		return new(big.Int).SetUint64(x), nil
	case *big.Int:
		if x == nil {
			return nil, fmt.Errorf("skew: nil exponent: %w", ErrNonIntegralExponent)
		}
		return new(big.Int).Set(x), nil
	case float32:
		return floatExponent(float64(x))
	case float64:
		return floatExponent(x)
	case string:
		return ParseExponent(x)
	default:
		return nil, fmt.Errorf("skew: exponent of type %T: %w", v, ErrNonIntegralExponent)
	}
}

func floatExponent(x float64) (*big.Int, error) {
	if math.IsInf(x, 0) || math.IsNaN(x) || x != math.Trunc(x) {
		return nil, fmt.Errorf("skew: exponent %v: %w", x, ErrNonIntegralExponent)
	}
	e, _ := new(big.Float).SetFloat64(x).Int(nil)
	return e, nil
}
