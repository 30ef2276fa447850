// Package money enforces the whole-dollar-integer policy used throughout the
// allocation ledger. Floating point never represents money; every
// money-accepting boundary converts through WholeDollar so fractional or
// stringly-typed amounts are rejected before they can drift downstream.
package money

import (
	"encoding/json"
	"math"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/shopspring/decimal"
)

// WholeDollar converts a boundary value into a signed whole-dollar int64.
// Integer kinds pass through, float64 and decimal.Decimal are accepted only
// when integral (JSON decoding produces float64 for numeric fields), and
// json.Number is parsed as an integer. Everything else, strings included,
// fails with NonWholeDollarAmountError.
func WholeDollar(field string, value any) (int64, error) {
	switch v := value.(type) {
	case int:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int64:
		return v, nil
	case uint:
		if uint64(v) > math.MaxInt64 {
			return 0, &apperrors.NonWholeDollarAmountError{Field: field, Value: value}
		}
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case uint64:
		if v > math.MaxInt64 {
			return 0, &apperrors.NonWholeDollarAmountError{Field: field, Value: value}
		}
		return int64(v), nil
	case float64:
		return wholeDollarFromFloat(field, v)
	case float32:
		return wholeDollarFromFloat(field, float64(v))
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0, &apperrors.NonWholeDollarAmountError{Field: field, Value: value}
		}
		return parsed, nil
	case decimal.Decimal:
		if !v.IsInteger() {
			return 0, &apperrors.NonWholeDollarAmountError{Field: field, Value: v.String()}
		}
		return v.IntPart(), nil
	default:
		return 0, &apperrors.NonWholeDollarAmountError{Field: field, Value: value}
	}
}

func wholeDollarFromFloat(field string, v float64) (int64, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v != math.Trunc(v) {
		return 0, &apperrors.NonWholeDollarAmountError{Field: field, Value: v}
	}
	if v < math.MinInt64 || v > math.MaxInt64 {
		return 0, &apperrors.NonWholeDollarAmountError{Field: field, Value: v}
	}
	return int64(v), nil
}
