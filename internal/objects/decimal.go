package objects

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ParseDecimal converts a decoded JSON or YAML scalar into a decimal.
func ParseDecimal(v any) (decimal.Decimal, error) {
	switch v := v.(type) {
	case nil:
		return decimal.Zero, nil
	case decimal.Decimal:
		return v, nil
	case string:
		return decimal.NewFromString(v)
	case float64:
		return decimal.NewFromFloat(v), nil
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	default:
		return decimal.Zero, fmt.Errorf("unmarshal decimal: %v", v)
	}
}
