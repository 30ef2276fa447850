package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	"github.com/flowly-app/budgeting_backend/internal/core/services"
)

func TestApplySavingsEvent(t *testing.T) {
	poolSvc := services.NewSavingsPoolService()
	ctx := context.Background()
	balances := domain.SavingsPoolBalances{IncomePoolBalance: 1000, SavingsPoolBalance: 200}

	t.Run("deposit moves income to savings", func(t *testing.T) {
		updated, err := poolSvc.ApplySavingsEvent(ctx, balances, 150)
		require.NoError(t, err)
		assert.Equal(t, int64(850), updated.IncomePoolBalance)
		assert.Equal(t, int64(350), updated.SavingsPoolBalance)
	})

	t.Run("withdrawal moves savings to income", func(t *testing.T) {
		updated, err := poolSvc.ApplySavingsEvent(ctx, balances, -200)
		require.NoError(t, err)
		assert.Equal(t, int64(1200), updated.IncomePoolBalance)
		assert.Equal(t, int64(0), updated.SavingsPoolBalance)
	})

	t.Run("withdrawal may not overdraw savings", func(t *testing.T) {
		_, err := poolSvc.ApplySavingsEvent(ctx, balances, -201)

		var fundsErr *apperrors.InsufficientSavingsPoolFundsError
		require.ErrorAs(t, err, &fundsErr)
		assert.Equal(t, int64(200), fundsErr.SavingsPoolBalance)
		assert.Equal(t, int64(201), fundsErr.WithdrawalAmount)
	})

	t.Run("sum of balances is conserved", func(t *testing.T) {
		for _, amount := range []int64{0, 1, 200, -200, 57} {
			updated, err := poolSvc.ApplySavingsEvent(ctx, balances, amount)
			require.NoError(t, err)
			assert.Equal(t,
				balances.IncomePoolBalance+balances.SavingsPoolBalance,
				updated.IncomePoolBalance+updated.SavingsPoolBalance)
		}
	})
}

func TestProjectSavingsPoolBalance(t *testing.T) {
	poolSvc := services.NewSavingsPoolService()
	ctx := context.Background()

	projection := poolSvc.ProjectSavingsPoolBalance(ctx, 500, []int64{100, -50, 200})
	assert.Equal(t, int64(500), projection.CurrentBalance)
	assert.Equal(t, int64(250), projection.PlannedNetChange)
	assert.Equal(t, int64(750), projection.ProjectedBalance)

	empty := poolSvc.ProjectSavingsPoolBalance(ctx, 500, nil)
	assert.Equal(t, int64(500), empty.ProjectedBalance)
}

func TestForecastSavingsPoolBalanceByDate(t *testing.T) {
	poolSvc := services.NewSavingsPoolService()
	ctx := context.Background()

	planned := []domain.PlannedSavingsEvent{
		{Date: time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), Amount: 100},
		{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), Amount: -40},
		{Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC), Amount: 300},
	}

	t.Run("includes events on or before the forecast date", func(t *testing.T) {
		forecast := poolSvc.ForecastSavingsPoolBalanceByDate(ctx, 500,
			time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), planned)

		assert.Equal(t, "2026-09-15", forecast.ForecastDate)
		assert.Equal(t, int64(60), forecast.IncludedNetChange)
		assert.Equal(t, 2, forecast.IncludedEventCount)
		assert.Equal(t, int64(560), forecast.ProjectedBalance)
	})

	t.Run("date comparison ignores time of day", func(t *testing.T) {
		forecast := poolSvc.ForecastSavingsPoolBalanceByDate(ctx, 500,
			time.Date(2026, 9, 15, 23, 59, 0, 0, time.UTC), planned)
		assert.Equal(t, 2, forecast.IncludedEventCount)
	})

	t.Run("forecast before every event includes none", func(t *testing.T) {
		forecast := poolSvc.ForecastSavingsPoolBalanceByDate(ctx, 500,
			time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), planned)
		assert.Equal(t, 0, forecast.IncludedEventCount)
		assert.Equal(t, int64(500), forecast.ProjectedBalance)
	})
}
