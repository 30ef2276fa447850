package services

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	"github.com/flowly-app/budgeting_backend/internal/dto"
)

// AllocationJournalReaderSvc defines read operations over the allocation journal.
type AllocationJournalReaderSvc interface {
	// GoalBalance replays a goal's events into its current balance.
	GoalBalance(ctx context.Context, goalID string) (int64, error)

	// ReconstructGoalBalances replays the full journal into per-goal
	// balances, sorted by goal id, for every goal with at least one event.
	ReconstructGoalBalances(ctx context.Context) ([]dto.GoalBalance, error)

	// History returns every journaled event in insertion order.
	History(ctx context.Context) ([]domain.AllocationEvent, error)
}

// AllocationJournalWriterSvc defines the journal's append operations plus the
// structurally forbidden mutations, which always fail.
type AllocationJournalWriterSvc interface {
	// RecordEvent appends a new allocation event after whole-dollar
	// validation. EventID uniqueness is enforced at the storage boundary.
	RecordEvent(ctx context.Context, req dto.RecordAllocationEventRequest) (*domain.AllocationEvent, error)

	// RecordCompensatingEvent appends an event negating a prior one,
	// carrying a back-reference to it.
	RecordCompensatingEvent(ctx context.Context, newEventID, originalEventID string) (*domain.AllocationEvent, error)

	// UpdateEvent always fails: the journal is append-only.
	UpdateEvent(ctx context.Context, eventID string, amount int64) error

	// DeleteEvent always fails: the journal is append-only.
	DeleteEvent(ctx context.Context, eventID string) error
}

// AllocationJournalSvcFacade combines the journal service interfaces.
type AllocationJournalSvcFacade interface {
	AllocationJournalReaderSvc
	AllocationJournalWriterSvc
}

// AllocationGuardSvc validates pool-funding and goal-cap invariants before an
// event is accepted. Both checks are pure and safe to reuse pre-commit on any
// call path.
type AllocationGuardSvc interface {
	// AssertSufficientPoolFunding fails when a pool-consuming positive
	// allocation exceeds the available pool.
	AssertSufficientPoolFunding(ctx context.Context, availablePoolAmount, allocationAmount int64, consumesPool bool) error

	// AssertExpenseGoalCapacity fails when a positive allocation would push
	// an expense goal past its cap. Non-positive allocations always pass.
	AssertExpenseGoalCapacity(ctx context.Context, goalAmount, alreadyAllocatedAmount, allocationAmount int64) error

	// CalculateAvailablePool computes income minus reconciled and pending
	// pool usage. All three inputs pass through whole-dollar validation.
	CalculateAvailablePool(ctx context.Context, incomeTotal, reconciledPoolUsageTotal, pendingPoolUsageTotal any) (int64, error)
}
