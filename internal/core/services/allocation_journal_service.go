package services

import (
	"context"
	"sort"

	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portsrepo "github.com/flowly-app/budgeting_backend/internal/core/ports/repositories"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/dto"
	"github.com/flowly-app/budgeting_backend/internal/utils/money"
)

// allocationJournalService is the append-only allocation ledger. Balances are
// always reconstructed by replaying events, never read from a cached
// aggregate, so a compensated event and its compensation net to zero by
// construction.
type allocationJournalService struct {
	BaseService
	eventRepo portsrepo.AllocationEventRepositoryFacade
}

// NewAllocationJournalService creates a new AllocationJournalService.
func NewAllocationJournalService(eventRepo portsrepo.AllocationEventRepositoryFacade) portssvc.AllocationJournalSvcFacade {
	return &allocationJournalService{eventRepo: eventRepo}
}

// Ensure allocationJournalService implements the facade interface
var _ portssvc.AllocationJournalSvcFacade = (*allocationJournalService)(nil)

// RecordEvent appends a new allocation event. The amount passes through
// whole-dollar validation; event id uniqueness is the storage layer's duty.
func (s *allocationJournalService) RecordEvent(ctx context.Context, req dto.RecordAllocationEventRequest) (*domain.AllocationEvent, error) {
	amount, err := money.WholeDollar("amount", req.Amount)
	if err != nil {
		s.LogWarn(ctx, "Rejected non-whole-dollar allocation amount", "eventID", req.EventID)
		return nil, err
	}

	event := domain.AllocationEvent{
		EventID:            req.EventID,
		GoalID:             req.GoalID,
		CycleID:            req.CycleID,
		Amount:             amount,
		CompensatesEventID: req.CompensatesEventID,
	}

	if err := s.eventRepo.AppendEvent(ctx, event); err != nil {
		s.LogError(ctx, err, "Failed to append allocation event", "eventID", req.EventID)
		return nil, err
	}

	return &event, nil
}

// RecordCompensatingEvent appends a new event negating the original one and
// carrying a back-reference to it. The original's goal and cycle are reused.
func (s *allocationJournalService) RecordCompensatingEvent(ctx context.Context, newEventID, originalEventID string) (*domain.AllocationEvent, error) {
	original, err := s.eventRepo.FindEventByID(ctx, originalEventID)
	if err != nil {
		s.LogWarn(ctx, "Original event not found for compensation", "originalEventID", originalEventID)
		return nil, err
	}

	return s.RecordEvent(ctx, dto.RecordAllocationEventRequest{
		EventID:            newEventID,
		GoalID:             original.GoalID,
		CycleID:            original.CycleID,
		Amount:             -original.Amount,
		CompensatesEventID: &original.EventID,
	})
}

// UpdateEvent always fails: mutation is structurally forbidden.
func (s *allocationJournalService) UpdateEvent(ctx context.Context, eventID string, amount int64) error {
	_ = eventID
	_ = amount
	return &apperrors.AllocationEventMutationNotAllowedError{Operation: "update"}
}

// DeleteEvent always fails: mutation is structurally forbidden.
func (s *allocationJournalService) DeleteEvent(ctx context.Context, eventID string) error {
	_ = eventID
	return &apperrors.AllocationEventMutationNotAllowedError{Operation: "delete"}
}

// GoalBalance sums every event recorded for the goal.
func (s *allocationJournalService) GoalBalance(ctx context.Context, goalID string) (int64, error) {
	events, err := s.eventRepo.ListEventsByGoal(ctx, goalID)
	if err != nil {
		return 0, err
	}

	var balance int64
	for _, event := range events {
		balance += event.Amount
	}

	return balance, nil
}

// ReconstructGoalBalances replays the full journal into per-goal balances,
// sorted by goal id.
func (s *allocationJournalService) ReconstructGoalBalances(ctx context.Context) ([]dto.GoalBalance, error) {
	events, err := s.eventRepo.ListEvents(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]int64)
	for _, event := range events {
		totals[event.GoalID] += event.Amount
	}

	balances := make([]dto.GoalBalance, 0, len(totals))
	for goalID, balance := range totals {
		balances = append(balances, dto.GoalBalance{GoalID: goalID, Balance: balance})
	}
	sort.Slice(balances, func(i, j int) bool { return balances[i].GoalID < balances[j].GoalID })

	return balances, nil
}

// History returns the journal in insertion order.
func (s *allocationJournalService) History(ctx context.Context) ([]domain.AllocationEvent, error) {
	return s.eventRepo.ListEvents(ctx)
}

// AllocationEventMutationGuard makes the append-only policy enforceable at
// higher layers (e.g., an API surface rejecting PATCH/DELETE before any
// journal call is made).
type AllocationEventMutationGuard struct{}

// AssertAppendOnly fails for every operation: allocation events are only ever
// negated by compensating events.
func (AllocationEventMutationGuard) AssertAppendOnly(operation string) error {
	return &apperrors.AllocationEventMutationNotAllowedError{Operation: operation}
}
