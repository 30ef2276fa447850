package services

import (
	"context"
	"time"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/dto"
)

// savingsPoolService implements paired-pool savings accounting and balance
// projection.
type savingsPoolService struct {
	BaseService
}

// NewSavingsPoolService creates a new SavingsPoolService.
func NewSavingsPoolService() portssvc.SavingsPoolSvcFacade {
	return &savingsPoolService{}
}

var _ portssvc.SavingsPoolSvcFacade = (*savingsPoolService)(nil)

// ApplySavingsEvent moves the event amount between the income and savings
// pools. A positive amount deposits income -> savings, a negative amount
// withdraws savings -> income. A withdrawal may never overdraw the savings
// pool; the sum of the two balances is conserved.
func (s *savingsPoolService) ApplySavingsEvent(ctx context.Context, balances domain.SavingsPoolBalances, savingsEventAmount int64) (*domain.SavingsPoolBalances, error) {
	if savingsEventAmount < 0 {
		withdrawal := -savingsEventAmount
		if withdrawal > balances.SavingsPoolBalance {
			err := &apperrors.InsufficientSavingsPoolFundsError{
				SavingsPoolBalance: balances.SavingsPoolBalance,
				WithdrawalAmount:   withdrawal,
			}
			s.LogWarn(ctx, "Savings withdrawal rejected",
				"savingsPoolBalance", balances.SavingsPoolBalance,
				"withdrawalAmount", withdrawal)
			return nil, err
		}
	}

	return &domain.SavingsPoolBalances{
		IncomePoolBalance:  balances.IncomePoolBalance - savingsEventAmount,
		SavingsPoolBalance: balances.SavingsPoolBalance + savingsEventAmount,
	}, nil
}

// ProjectSavingsPoolBalance sums every planned event amount into the current
// balance, dates ignored.
func (s *savingsPoolService) ProjectSavingsPoolBalance(ctx context.Context, currentBalance int64, plannedEventAmounts []int64) dto.SavingsPoolProjection {
	var net int64
	for _, amount := range plannedEventAmounts {
		net += amount
	}
	return dto.SavingsPoolProjection{
		CurrentBalance:   currentBalance,
		PlannedNetChange: net,
		ProjectedBalance: currentBalance + net,
	}
}

// ForecastSavingsPoolBalanceByDate sums only the planned events dated on or
// before the forecast date, at date precision.
func (s *savingsPoolService) ForecastSavingsPoolBalanceByDate(ctx context.Context, currentBalance int64, forecastDate time.Time, plannedEvents []domain.PlannedSavingsEvent) dto.SavingsPoolForecast {
	cutoff := truncateToDate(forecastDate)

	var net int64
	included := 0
	for _, event := range plannedEvents {
		if truncateToDate(event.Date).After(cutoff) {
			continue
		}
		net += event.Amount
		included++
	}

	return dto.SavingsPoolForecast{
		CurrentBalance:     currentBalance,
		ForecastDate:       cutoff.Format(dateLayout),
		IncludedNetChange:  net,
		IncludedEventCount: included,
		ProjectedBalance:   currentBalance + net,
	}
}
