package services

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
)

// cycleService is the cycle state machine and posting guard. It validates the
// snapshot it is given; enforcing "at most one open cycle" atomically under
// concurrent writers is the storage layer's responsibility.
type cycleService struct {
	BaseService
}

// NewCycleService creates a new CycleService.
func NewCycleService() portssvc.CycleSvcFacade {
	return &cycleService{}
}

var _ portssvc.CycleSvcFacade = (*cycleService)(nil)

// OpenCycle yields the open state when no cycle is currently open for the
// budget.
func (s *cycleService) OpenCycle(ctx context.Context, existingOpenCycleCount int) (domain.CycleState, error) {
	if existingOpenCycleCount > 0 {
		s.LogWarn(ctx, "Rejected opening a second cycle", "openCycleCount", existingOpenCycleCount)
		return "", &apperrors.MultipleOpenCyclesNotAllowedError{OpenCycleCount: existingOpenCycleCount}
	}

	return domain.CycleOpen, nil
}

// CloseCycle transitions open to closed. Closed cycles never reopen; any
// other transition is invalid.
func (s *cycleService) CloseCycle(ctx context.Context, currentState domain.CycleState) (domain.CycleState, error) {
	if currentState != domain.CycleOpen {
		s.LogWarn(ctx, "Rejected invalid cycle transition", "from", string(currentState))
		return "", &apperrors.InvalidCycleStateTransitionError{
			From: string(currentState),
			To:   string(domain.CycleClosed),
		}
	}

	return domain.CycleClosed, nil
}

// AssertCanPostAllocation gates posting. The non-current check runs first so
// a non-current-but-open cycle is rejected for the non-current reason.
func (s *cycleService) AssertCanPostAllocation(ctx context.Context, cycleState domain.CycleState, isCurrentCycle bool) error {
	if !isCurrentCycle {
		return &apperrors.NonCurrentCyclePostingNotAllowedError{}
	}

	if cycleState == domain.CycleClosed {
		return &apperrors.ClosedCycleReadOnlyError{}
	}

	return nil
}
