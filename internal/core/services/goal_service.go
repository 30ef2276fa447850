package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/dto"
)

// goalService implements goal progress reporting and the soft-deletion
// lifecycle gate.
type goalService struct {
	BaseService
}

// NewGoalService creates a new GoalService.
func NewGoalService() portssvc.GoalSvcFacade {
	return &goalService{}
}

var _ portssvc.GoalSvcFacade = (*goalService)(nil)

// CalculateProgress derives consumed percentage and, when both day counts are
// supplied, burn-rate figures. Day counts below one are clamped to one so a
// just-started cycle still reports a burn. Percentages round half-up to two
// decimal places.
func (s *goalService) CalculateProgress(ctx context.Context, goalAmount, currentAllocatedAmount int64, elapsedDays, totalCycleDays *int) dto.GoalProgress {
	progress := dto.GoalProgress{
		GoalAmount:      goalAmount,
		AllocatedAmount: currentAllocatedAmount,
		RemainingAmount: goalAmount - currentAllocatedAmount,
	}

	if goalAmount != 0 {
		progress.ConsumedPercentage = decimal.NewFromInt(currentAllocatedAmount).
			Mul(decimal.NewFromInt(100)).
			Div(decimal.NewFromInt(goalAmount)).
			Round(2).
			InexactFloat64()
	}

	if elapsedDays == nil || totalCycleDays == nil {
		return progress
	}

	elapsed := max(1, *elapsedDays)
	total := max(1, *totalCycleDays)

	currentBurn := decimal.NewFromInt(currentAllocatedAmount).
		Div(decimal.NewFromInt(int64(elapsed))).
		Round(2)
	currentBurnRate := currentBurn.InexactFloat64()
	progress.CurrentBurnRate = &currentBurnRate

	// Burn rate is the actual daily spend expressed as a percentage of the
	// budgeted daily rate for the cycle; a zero budget yields a zero rate.
	burnRate := 0.0
	if goalAmount != 0 {
		budgetedDaily := decimal.NewFromInt(goalAmount).
			Div(decimal.NewFromInt(int64(total)))
		burnRate = currentBurn.Div(budgetedDaily).
			Mul(decimal.NewFromInt(100)).
			Round(2).
			InexactFloat64()
	}
	progress.BurnRate = &burnRate

	return progress
}

// SoftDeleteGoal flips the goal to its soft-deleted state, stamping the
// deletion time. The goal's cumulative journal balance must be exactly zero;
// the journal itself is never touched.
func (s *goalService) SoftDeleteGoal(ctx context.Context, goal domain.Goal, cumulativeGoalEventBalance int64, deletedAt time.Time) (*domain.Goal, error) {
	if cumulativeGoalEventBalance != 0 {
		err := &apperrors.GoalDeletionRequiresNetZeroBalanceError{Balance: cumulativeGoalEventBalance}
		s.LogWarn(ctx, "Goal soft-delete rejected", "goalID", goal.GoalID, "balance", cumulativeGoalEventBalance)
		return nil, err
	}

	deleted := goal
	deleted.State = domain.GoalSoftDeleted
	deleted.DeletedAt = &deletedAt

	s.LogInfo(ctx, "Goal soft-deleted", "goalID", goal.GoalID)
	return &deleted, nil
}

// AssertSavingsGoalHasPool fails when a savings-type goal lacks a savings pool
// linkage. Income and expense goals never require one.
func (s *goalService) AssertSavingsGoalHasPool(ctx context.Context, goalType domain.GoalType, savingsPoolID *string) error {
	if !goalType.RequiresSavingsPool() {
		return nil
	}
	if savingsPoolID == nil || *savingsPoolID == "" {
		return &apperrors.SavingsGoalRequiresSavingsPoolError{GoalType: string(goalType)}
	}
	return nil
}
