package services

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
)

// savingsPlanningService distributes savings targets across cycles and
// realigns plans at cycle close.
type savingsPlanningService struct {
	BaseService
}

// NewSavingsPlanningService creates a new SavingsPlanningService.
func NewSavingsPlanningService() portssvc.SavingsPlanningSvcFacade {
	return &savingsPlanningService{}
}

var _ portssvc.SavingsPlanningSvcFacade = (*savingsPlanningService)(nil)

// distributeTarget splits an amount evenly across n shares, front-loading the
// remainder onto the earliest shares so the total is conserved exactly.
func distributeTarget(totalAmount int64, n int) []int64 {
	if n <= 0 {
		return nil
	}
	base := totalAmount / int64(n)
	remainder := totalAmount % int64(n)

	shares := make([]int64, n)
	for i := range shares {
		shares[i] = base
		if int64(i) < remainder {
			shares[i]++
		}
	}
	return shares
}

// GenerateInitialChildPlan splits the target evenly across the given cycles
// in order. Earlier cycles absorb the remainder one dollar each.
func (s *savingsPlanningService) GenerateInitialChildPlan(ctx context.Context, parentGoalID string, totalTargetAmount int64, cycleIDs []string) []domain.PlannedChildTarget {
	shares := distributeTarget(totalTargetAmount, len(cycleIDs))

	plan := make([]domain.PlannedChildTarget, len(cycleIDs))
	for i, cycleID := range cycleIDs {
		plan[i] = domain.PlannedChildTarget{
			ParentGoalID: parentGoalID,
			CycleID:      cycleID,
			TargetAmount: shares[i],
		}
	}
	return plan
}

// RealignFutureChildPlanAtClose redistributes the remaining target across the
// open-cycle children only. Closed-cycle children pass through untouched; the
// relative order of all children is preserved.
func (s *savingsPlanningService) RealignFutureChildPlanAtClose(ctx context.Context, totalTargetAmount, amountAlreadySaved int64, existingChildren []domain.SavingsChildPlan) []domain.SavingsChildPlan {
	openCount := 0
	for _, child := range existingChildren {
		if !child.IsClosedCycle {
			openCount++
		}
	}

	remaining := totalTargetAmount - amountAlreadySaved
	if remaining < 0 {
		remaining = 0
	}
	shares := distributeTarget(remaining, openCount)

	realigned := make([]domain.SavingsChildPlan, len(existingChildren))
	openIdx := 0
	for i, child := range existingChildren {
		realigned[i] = child
		if child.IsClosedCycle {
			continue
		}
		realigned[i].TargetAmount = shares[openIdx]
		openIdx++
	}

	s.LogDebug(ctx, "Savings child plan realigned",
		"remainingTarget", remaining,
		"openChildCount", openCount)
	return realigned
}

// PreservePlanDuringOpenCycle returns a copy of the plan unchanged. Plans are
// only ever recomputed at cycle close.
func (s *savingsPlanningService) PreservePlanDuringOpenCycle(ctx context.Context, existingChildren []domain.SavingsChildPlan) []domain.SavingsChildPlan {
	preserved := make([]domain.SavingsChildPlan, len(existingChildren))
	copy(preserved, existingChildren)
	return preserved
}
