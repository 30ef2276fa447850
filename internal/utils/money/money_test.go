package money_test

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/flowly-app/budgeting_backend/internal/utils/money"
)

func TestWholeDollarAcceptsIntegerKinds(t *testing.T) {
	testCases := []struct {
		name     string
		value    any
		expected int64
	}{
		{"int", 75, 75},
		{"int64", int64(-20), -20},
		{"int32", int32(0), 0},
		{"uint", uint(1250), 1250},
		{"integral float64", float64(450), 450},
		{"negative integral float64", float64(-3), -3},
		{"json number", json.Number("5002"), 5002},
		{"integral decimal", decimal.NewFromInt(2000), 2000},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := money.WholeDollar("amount", tc.value)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestWholeDollarRejectsNonWholeValues(t *testing.T) {
	testCases := []struct {
		name  string
		value any
	}{
		{"fractional float", 10.5},
		{"tiny fraction", 1.000001},
		{"string number", "100"},
		{"string text", "ten"},
		{"nil", nil},
		{"bool", true},
		{"fractional decimal", decimal.NewFromFloat(9.99)},
		{"fractional json number", json.Number("10.5")},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := money.WholeDollar("amount", tc.value)
			require.Error(t, err)

			var wholeDollarErr *apperrors.NonWholeDollarAmountError
			require.ErrorAs(t, err, &wholeDollarErr)
			assert.Equal(t, "amount", wholeDollarErr.Field)
		})
	}
}
