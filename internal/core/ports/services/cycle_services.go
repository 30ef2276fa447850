package services

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	"github.com/flowly-app/budgeting_backend/internal/dto"
)

// CycleSvcFacade is the cycle state machine and posting guard. It validates
// snapshots it is given; atomic check-then-write is the storage layer's duty.
type CycleSvcFacade interface {
	// OpenCycle yields the open state when no other cycle is open for the
	// budget, and fails otherwise.
	OpenCycle(ctx context.Context, existingOpenCycleCount int) (domain.CycleState, error)

	// CloseCycle transitions open to closed. Every other transition fails
	// and closed is terminal.
	CloseCycle(ctx context.Context, currentState domain.CycleState) (domain.CycleState, error)

	// AssertCanPostAllocation gates allocation posting: the non-current
	// check precedes the closed check, so a non-current open cycle is
	// rejected for the non-current reason specifically.
	AssertCanPostAllocation(ctx context.Context, cycleState domain.CycleState, isCurrentCycle bool) error
}

// CycleCloseSvcFacade orchestrates the close checklist gate and the confirmed
// close/rollover procedure.
type CycleCloseSvcFacade interface {
	// RunChecklist reports whether a close may proceed, with ordered steps
	// as a structured render payload.
	RunChecklist(ctx context.Context, pendingEventCount, overGoalCount, underGoalCount int) dto.CycleCloseChecklist

	// RunConfirmedClose computes the next cycle window and emits the
	// adjustment-sweep and rollover events for the caller to journal.
	RunConfirmedClose(ctx context.Context, req dto.ConfirmedCloseRequest) (*dto.RolloverResult, error)
}
