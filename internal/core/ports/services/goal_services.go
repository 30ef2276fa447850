package services

import (
	"context"
	"time"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	"github.com/flowly-app/budgeting_backend/internal/dto"
)

// GoalSvcFacade covers goal progress reporting and the net-zero-gated soft
// deletion lifecycle.
type GoalSvcFacade interface {
	// CalculateProgress derives consumed percentage and, when both day
	// counts are supplied, burn rates against the budgeted daily rate.
	CalculateProgress(ctx context.Context, goalAmount, currentAllocatedAmount int64, elapsedDays, totalCycleDays *int) dto.GoalProgress

	// SoftDeleteGoal marks a goal deleted, preserving every other field.
	// It fails unless the goal's cumulative journal balance is exactly zero.
	SoftDeleteGoal(ctx context.Context, goal domain.Goal, cumulativeGoalEventBalance int64, deletedAt time.Time) (*domain.Goal, error)

	// AssertSavingsGoalHasPool fails when a savings-type goal lacks a
	// savings pool linkage.
	AssertSavingsGoalHasPool(ctx context.Context, goalType domain.GoalType, savingsPoolID *string) error
}

// SavingsPoolSvcFacade covers savings pool accounting and projection.
type SavingsPoolSvcFacade interface {
	// ApplySavingsEvent moves money between the income and savings pools,
	// conserving their sum. Withdrawals exceeding the savings balance fail.
	ApplySavingsEvent(ctx context.Context, balances domain.SavingsPoolBalances, savingsEventAmount int64) (*domain.SavingsPoolBalances, error)

	// ProjectSavingsPoolBalance projects the balance over all planned events.
	ProjectSavingsPoolBalance(ctx context.Context, currentBalance int64, plannedEventAmounts []int64) dto.SavingsPoolProjection

	// ForecastSavingsPoolBalanceByDate projects the balance including only
	// planned events dated on or before the forecast date.
	ForecastSavingsPoolBalanceByDate(ctx context.Context, currentBalance int64, forecastDate time.Time, plannedEvents []domain.PlannedSavingsEvent) dto.SavingsPoolForecast
}

// SavingsPlanningSvcFacade distributes a savings target across future cycles
// and realigns the plan when a cycle closes.
type SavingsPlanningSvcFacade interface {
	// GenerateInitialChildPlan splits the target evenly across the given
	// cycles, front-loading the remainder onto the earliest ones.
	GenerateInitialChildPlan(ctx context.Context, parentGoalID string, totalTargetAmount int64, cycleIDs []string) []domain.PlannedChildTarget

	// RealignFutureChildPlanAtClose redistributes the remaining target
	// across open-cycle children only; closed children pass through intact.
	RealignFutureChildPlanAtClose(ctx context.Context, totalTargetAmount, amountAlreadySaved int64, existingChildren []domain.SavingsChildPlan) []domain.SavingsChildPlan

	// PreservePlanDuringOpenCycle is the identity: plans are never
	// regenerated while a cycle is open.
	PreservePlanDuringOpenCycle(ctx context.Context, existingChildren []domain.SavingsChildPlan) []domain.SavingsChildPlan
}
