package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portsrepo "github.com/flowly-app/budgeting_backend/internal/core/ports/repositories"
)

// AllocationEventRepository is an in-memory, append-only journal store. The
// slice preserves insertion order; the index enforces event id uniqueness
// under a single lock so append is atomic.
type AllocationEventRepository struct {
	mu     sync.RWMutex
	events []domain.AllocationEvent
	byID   map[string]int
}

// NewAllocationEventRepository creates an empty journal store.
func NewAllocationEventRepository() *AllocationEventRepository {
	return &AllocationEventRepository{
		byID: make(map[string]int),
	}
}

var _ portsrepo.AllocationEventRepositoryFacade = (*AllocationEventRepository)(nil)

// AppendEvent stores a new event. A duplicate event id fails the append and
// leaves the journal untouched.
func (r *AllocationEventRepository) AppendEvent(ctx context.Context, event domain.AllocationEvent) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[event.EventID]; exists {
		return fmt.Errorf("allocation event [%s]: %w", event.EventID, apperrors.ErrDuplicate)
	}

	r.byID[event.EventID] = len(r.events)
	r.events = append(r.events, event)
	return nil
}

// FindEventByID retrieves a single event by its unique identifier.
func (r *AllocationEventRepository) FindEventByID(ctx context.Context, eventID string) (*domain.AllocationEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx, exists := r.byID[eventID]
	if !exists {
		return nil, &apperrors.AllocationEventNotFoundError{EventID: eventID}
	}
	event := r.events[idx]
	return &event, nil
}

// ListEvents returns every journaled event in insertion order.
func (r *AllocationEventRepository) ListEvents(ctx context.Context) ([]domain.AllocationEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]domain.AllocationEvent, len(r.events))
	copy(events, r.events)
	return events, nil
}

// ListEventsByGoal returns the goal's events in insertion order.
func (r *AllocationEventRepository) ListEventsByGoal(ctx context.Context, goalID string) ([]domain.AllocationEvent, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	events := make([]domain.AllocationEvent, 0)
	for _, event := range r.events {
		if event.GoalID == goalID {
			events = append(events, event)
		}
	}
	return events, nil
}
