package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/flowly-app/budgeting_backend/internal/core/services"
)

func TestAssertSufficientPoolFunding(t *testing.T) {
	guard := services.NewAllocationGuardService()
	ctx := context.Background()

	t.Run("fails when allocation exceeds pool", func(t *testing.T) {
		err := guard.AssertSufficientPoolFunding(ctx, 50, 75, true)
		require.Error(t, err)

		var fundsErr *apperrors.InsufficientPoolFundsError
		require.ErrorAs(t, err, &fundsErr)
		assert.Equal(t, int64(50), fundsErr.AvailablePoolAmount)
		assert.Equal(t, int64(75), fundsErr.RequestedAllocationAmount)
		assert.Equal(t, int64(25), fundsErr.Shortfall())
	})

	t.Run("passes at exactly available pool", func(t *testing.T) {
		assert.NoError(t, guard.AssertSufficientPoolFunding(ctx, 75, 75, true))
	})

	t.Run("non-consuming allocation always passes", func(t *testing.T) {
		assert.NoError(t, guard.AssertSufficientPoolFunding(ctx, 0, 1000, false))
	})

	t.Run("non-positive allocation always passes", func(t *testing.T) {
		assert.NoError(t, guard.AssertSufficientPoolFunding(ctx, 0, 0, true))
		assert.NoError(t, guard.AssertSufficientPoolFunding(ctx, 0, -50, true))
	})
}

func TestAssertExpenseGoalCapacity(t *testing.T) {
	guard := services.NewAllocationGuardService()
	ctx := context.Background()

	t.Run("fails when allocation would exceed cap", func(t *testing.T) {
		err := guard.AssertExpenseGoalCapacity(ctx, 800, 790, 20)
		require.Error(t, err)

		var capErr *apperrors.ExpenseGoalCapExceededError
		require.ErrorAs(t, err, &capErr)
		assert.Equal(t, int64(800), capErr.GoalAmount)
	})

	t.Run("passes at exactly the cap", func(t *testing.T) {
		assert.NoError(t, guard.AssertExpenseGoalCapacity(ctx, 800, 790, 10))
	})

	t.Run("negative correction bypasses the cap even when over", func(t *testing.T) {
		assert.NoError(t, guard.AssertExpenseGoalCapacity(ctx, 800, 900, -20))
	})
}

func TestCalculateAvailablePool(t *testing.T) {
	guard := services.NewAllocationGuardService()
	ctx := context.Background()

	t.Run("income minus reconciled and pending usage", func(t *testing.T) {
		available, err := guard.CalculateAvailablePool(ctx, 2000, 1250, 300)
		require.NoError(t, err)
		assert.Equal(t, int64(450), available)
	})

	t.Run("rejects fractional inputs with the field name", func(t *testing.T) {
		_, err := guard.CalculateAvailablePool(ctx, 2000, 1250.5, 300)
		require.Error(t, err)

		var wholeDollarErr *apperrors.NonWholeDollarAmountError
		require.ErrorAs(t, err, &wholeDollarErr)
		assert.Equal(t, "reconciledPoolUsageTotal", wholeDollarErr.Field)
	})
}
