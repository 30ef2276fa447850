package services

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/utils/money"
)

// allocationGuardService validates the pool-funding and expense-cap
// invariants at proposal time, before anything is journaled. Both checks are
// independent pure predicates so every call path (assistant, manual entry,
// scheduled corrections) can reuse them pre-commit.
type allocationGuardService struct {
	BaseService
}

// NewAllocationGuardService creates a new AllocationGuardService.
func NewAllocationGuardService() portssvc.AllocationGuardSvc {
	return &allocationGuardService{}
}

var _ portssvc.AllocationGuardSvc = (*allocationGuardService)(nil)

// AssertSufficientPoolFunding fails when a pool-consuming positive allocation
// exceeds the available pool. Non-consuming and non-positive allocations
// always pass.
func (s *allocationGuardService) AssertSufficientPoolFunding(ctx context.Context, availablePoolAmount, allocationAmount int64, consumesPool bool) error {
	if !consumesPool || allocationAmount <= 0 {
		return nil
	}

	if allocationAmount > availablePoolAmount {
		err := &apperrors.InsufficientPoolFundsError{
			AvailablePoolAmount:       availablePoolAmount,
			RequestedAllocationAmount: allocationAmount,
		}
		s.LogWarn(ctx, "Allocation exceeds available pool",
			"available", availablePoolAmount, "requested", allocationAmount)
		return err
	}

	return nil
}

// AssertExpenseGoalCapacity fails when a positive allocation would push an
// expense goal past its cap. Corrections (zero or negative amounts) bypass
// the cap unconditionally.
func (s *allocationGuardService) AssertExpenseGoalCapacity(ctx context.Context, goalAmount, alreadyAllocatedAmount, allocationAmount int64) error {
	if allocationAmount <= 0 {
		return nil
	}

	if alreadyAllocatedAmount+allocationAmount > goalAmount {
		err := &apperrors.ExpenseGoalCapExceededError{
			GoalAmount:                goalAmount,
			AlreadyAllocatedAmount:    alreadyAllocatedAmount,
			RequestedAllocationAmount: allocationAmount,
		}
		s.LogWarn(ctx, "Allocation exceeds expense goal cap",
			"goalAmount", goalAmount, "alreadyAllocated", alreadyAllocatedAmount, "requested", allocationAmount)
		return err
	}

	return nil
}

// CalculateAvailablePool computes income minus reconciled and pending pool
// usage, validating all three inputs at the whole-dollar boundary first.
func (s *allocationGuardService) CalculateAvailablePool(ctx context.Context, incomeTotal, reconciledPoolUsageTotal, pendingPoolUsageTotal any) (int64, error) {
	income, err := money.WholeDollar("incomeTotal", incomeTotal)
	if err != nil {
		return 0, err
	}

	reconciled, err := money.WholeDollar("reconciledPoolUsageTotal", reconciledPoolUsageTotal)
	if err != nil {
		return 0, err
	}

	pending, err := money.WholeDollar("pendingPoolUsageTotal", pendingPoolUsageTotal)
	if err != nil {
		return 0, err
	}

	return income - reconciled - pending, nil
}
