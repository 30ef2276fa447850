package repositories

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
)

// AllocationEventReader defines read operations over the allocation journal.
type AllocationEventReader interface {
	// FindEventByID retrieves a single event by its unique identifier.
	FindEventByID(ctx context.Context, eventID string) (*domain.AllocationEvent, error)

	// ListEvents retrieves every journaled event in insertion order.
	ListEvents(ctx context.Context) ([]domain.AllocationEvent, error)

	// ListEventsByGoal retrieves a goal's events in insertion order.
	ListEventsByGoal(ctx context.Context, goalID string) ([]domain.AllocationEvent, error)
}

// AllocationEventAppender defines the single write operation the journal
// permits. Implementations must enforce event_id uniqueness atomically and
// must never expose update or delete of a stored event.
type AllocationEventAppender interface {
	AppendEvent(ctx context.Context, event domain.AllocationEvent) error
}

// AllocationEventRepositoryFacade combines the journal repository interfaces.
type AllocationEventRepositoryFacade interface {
	AllocationEventReader
	AllocationEventAppender
}
