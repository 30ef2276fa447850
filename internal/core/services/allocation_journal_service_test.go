package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/flowly-app/budgeting_backend/internal/adapters/memory"
	"github.com/flowly-app/budgeting_backend/internal/apperrors"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/core/services"
	"github.com/flowly-app/budgeting_backend/internal/dto"
)

type AllocationJournalServiceTestSuite struct {
	suite.Suite
	journal portssvc.AllocationJournalSvcFacade
	ctx     context.Context
}

func (s *AllocationJournalServiceTestSuite) SetupTest() {
	s.journal = services.NewAllocationJournalService(memory.NewAllocationEventRepository())
	s.ctx = context.Background()
}

func TestAllocationJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AllocationJournalServiceTestSuite))
}

func (s *AllocationJournalServiceTestSuite) record(eventID, goalID string, amount any) {
	_, err := s.journal.RecordEvent(s.ctx, dto.RecordAllocationEventRequest{
		EventID: eventID,
		GoalID:  goalID,
		CycleID: "cycle-1",
		Amount:  amount,
	})
	s.Require().NoError(err)
}

func (s *AllocationJournalServiceTestSuite) TestRecordEventRejectsFractionalAmount() {
	_, err := s.journal.RecordEvent(s.ctx, dto.RecordAllocationEventRequest{
		EventID: "evt-1",
		GoalID:  "goal-groceries",
		CycleID: "cycle-1",
		Amount:  10.5,
	})

	var wholeDollarErr *apperrors.NonWholeDollarAmountError
	s.Require().ErrorAs(err, &wholeDollarErr)

	history, err := s.journal.History(s.ctx)
	s.Require().NoError(err)
	s.Empty(history)
}

func (s *AllocationJournalServiceTestSuite) TestRecordEventRejectsDuplicateID() {
	s.record("evt-1", "goal-groceries", 100)

	_, err := s.journal.RecordEvent(s.ctx, dto.RecordAllocationEventRequest{
		EventID: "evt-1",
		GoalID:  "goal-groceries",
		CycleID: "cycle-1",
		Amount:  200,
	})
	s.Require().ErrorIs(err, apperrors.ErrDuplicate)

	balance, err := s.journal.GoalBalance(s.ctx, "goal-groceries")
	s.Require().NoError(err)
	s.Equal(int64(100), balance)
}

func (s *AllocationJournalServiceTestSuite) TestBalancesAreReplayedFromHistory() {
	s.record("evt-1", "goal-groceries", 100)
	s.record("evt-2", "goal-rent", 1250)
	s.record("evt-3", "goal-groceries", -30)

	balances, err := s.journal.ReconstructGoalBalances(s.ctx)
	s.Require().NoError(err)
	s.Equal([]dto.GoalBalance{
		{GoalID: "goal-groceries", Balance: 70},
		{GoalID: "goal-rent", Balance: 1250},
	}, balances)
}

func (s *AllocationJournalServiceTestSuite) TestCompensationNetsToZero() {
	s.record("evt-1", "goal-groceries", 100)

	compensation, err := s.journal.RecordCompensatingEvent(s.ctx, "evt-2", "evt-1")
	s.Require().NoError(err)
	s.Equal(int64(-100), compensation.Amount)
	s.Require().NotNil(compensation.CompensatesEventID)
	s.Equal("evt-1", *compensation.CompensatesEventID)
	s.True(compensation.IsCompensation())

	balance, err := s.journal.GoalBalance(s.ctx, "goal-groceries")
	s.Require().NoError(err)
	s.Zero(balance)

	// Both events stay in the journal; nothing was removed.
	history, err := s.journal.History(s.ctx)
	s.Require().NoError(err)
	s.Len(history, 2)
}

func (s *AllocationJournalServiceTestSuite) TestCompensatingUnknownEventFails() {
	_, err := s.journal.RecordCompensatingEvent(s.ctx, "evt-2", "missing")

	var notFoundErr *apperrors.AllocationEventNotFoundError
	s.Require().ErrorAs(err, &notFoundErr)
	s.Equal("missing", notFoundErr.EventID)
}

func (s *AllocationJournalServiceTestSuite) TestMutationAlwaysFails() {
	s.record("evt-1", "goal-groceries", 100)

	var mutationErr *apperrors.AllocationEventMutationNotAllowedError

	err := s.journal.UpdateEvent(s.ctx, "evt-1", 500)
	s.Require().ErrorAs(err, &mutationErr)
	s.Equal("update", mutationErr.Operation)

	err = s.journal.DeleteEvent(s.ctx, "evt-1")
	s.Require().ErrorAs(err, &mutationErr)
	s.Equal("delete", mutationErr.Operation)

	balance, err := s.journal.GoalBalance(s.ctx, "goal-groceries")
	s.Require().NoError(err)
	s.Equal(int64(100), balance)
}

func TestMutationGuardRejectsEveryOperation(t *testing.T) {
	guard := services.AllocationEventMutationGuard{}

	for _, operation := range []string{"update", "delete", "patch"} {
		err := guard.AssertAppendOnly(operation)
		require.Error(t, err)

		var mutationErr *apperrors.AllocationEventMutationNotAllowedError
		require.ErrorAs(t, err, &mutationErr)
		assert.Equal(t, operation, mutationErr.Operation)
	}
}
