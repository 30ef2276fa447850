package services

import (
	"context"
	"fmt"
	"time"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/dto"
	"github.com/flowly-app/budgeting_backend/internal/utils/money"
)

const dateLayout = "2006-01-02"

// cycleCloseService runs the close checklist gate and the confirmed
// close/rollover procedure. It generates events for the caller to journal
// but performs no journaling itself.
type cycleCloseService struct {
	BaseService
}

// NewCycleCloseService creates a new CycleCloseService.
func NewCycleCloseService() portssvc.CycleCloseSvcFacade {
	return &cycleCloseService{}
}

var _ portssvc.CycleCloseSvcFacade = (*cycleCloseService)(nil)

// RunChecklist gates closing entirely on pending events first: any pending
// event blocks with a single step and no review data. Otherwise the close is
// ready for confirmation with three ordered steps and the goal outcome review.
func (s *cycleCloseService) RunChecklist(ctx context.Context, pendingEventCount, overGoalCount, underGoalCount int) dto.CycleCloseChecklist {
	if pendingEventCount > 0 {
		s.LogDebug(ctx, "Cycle close blocked on pending events", "pendingEventCount", pendingEventCount)
		return dto.CycleCloseChecklist{
			Status:   dto.CloseStatusBlocked,
			CanClose: false,
			Blocker: &dto.CloseBlocker{
				Code:              "pending_events",
				Message:           "Cycle close is blocked until all pending events are resolved.",
				PendingEventCount: pendingEventCount,
			},
			Steps: []dto.CloseStep{
				{
					ID:                dto.StepResolvePendingEvents,
					Status:            dto.StepStatusBlocked,
					PendingEventCount: pendingEventCount,
				},
			},
			Review: nil,
		}
	}

	return dto.CycleCloseChecklist{
		Status:   dto.CloseStatusReadyForConfirmation,
		CanClose: true,
		Blocker:  nil,
		Steps: []dto.CloseStep{
			{ID: dto.StepResolvePendingEvents, Status: dto.StepStatusPassed},
			{ID: dto.StepReviewGoalOutcomes, Status: dto.StepStatusCompleted},
			{ID: dto.StepConfirmRolloverPlan, Status: dto.StepStatusAwaitingConfirmation},
		},
		Review: &dto.GoalOutcomeReview{
			OverGoalCount:  overGoalCount,
			UnderGoalCount: underGoalCount,
		},
	}
}

// RunConfirmedClose validates every amount at the whole-dollar boundary,
// computes the next cycle window, and emits the generated events in
// sweep-then-rollover order. The next cycle keeps the current cycle's length
// and starts the day after it ends.
func (s *cycleCloseService) RunConfirmedClose(ctx context.Context, req dto.ConfirmedCloseRequest) (*dto.RolloverResult, error) {
	rolloverAmount, err := money.WholeDollar("rolloverAmount", req.RolloverAmount)
	if err != nil {
		return nil, err
	}

	nextCycle := s.nextCycleWindow(req.NextCycleID, req.CurrentCycleStart, req.CurrentCycleEnd)

	generated := make([]domain.GeneratedEvent, 0, len(req.AdjustmentSweepEvents)+1)
	for i, sweep := range req.AdjustmentSweepEvents {
		amount, err := money.WholeDollar(fmt.Sprintf("adjustmentSweepEvents[%d].amount", i), sweep.Amount)
		if err != nil {
			return nil, err
		}
		generated = append(generated, buildGeneratedEvent(
			sweep.EventID, req.BudgetID, req.CurrentCycleID, sweep.GoalID, amount, domain.SourceAdjustmentSweep,
		))
	}

	generated = append(generated, buildGeneratedEvent(
		req.RolloverEventID, req.BudgetID, req.NextCycleID, req.NextCycleIncomeAdjustmentGoalID,
		rolloverAmount, domain.SourceRolloverIncomeAdjust,
	))

	s.LogInfo(ctx, "Confirmed cycle close prepared",
		"currentCycleID", req.CurrentCycleID,
		"nextCycleID", req.NextCycleID,
		"generatedEventCount", len(generated))

	return &dto.RolloverResult{
		NextCycle: nextCycle,
		CloseSummary: dto.CloseSummary{
			CurrentCycleID: req.CurrentCycleID,
			NextCycleID:    req.NextCycleID,
			RolloverAmount: rolloverAmount,
		},
		GeneratedEvents: generated,
	}, nil
}

// nextCycleWindow computes the next cycle at date precision: same length as
// the current cycle, starting the day after it ends.
func (s *cycleCloseService) nextCycleWindow(nextCycleID string, currentStart, currentEnd time.Time) dto.NextCycleDescriptor {
	start := truncateToDate(currentStart)
	end := truncateToDate(currentEnd)

	cycleLengthDays := int(end.Sub(start).Hours()/24) + 1

	nextStart := end.AddDate(0, 0, 1)
	nextEnd := nextStart.AddDate(0, 0, cycleLengthDays-1)

	return dto.NextCycleDescriptor{
		CycleID:   nextCycleID,
		StartDate: nextStart.Format(dateLayout),
		EndDate:   nextEnd.Format(dateLayout),
		State:     string(domain.CycleOpen),
	}
}

func buildGeneratedEvent(eventID, budgetID, cycleID, goalID string, amount int64, source domain.GeneratedEventSource) domain.GeneratedEvent {
	return domain.GeneratedEvent{
		EventID:    eventID,
		BudgetID:   budgetID,
		CycleID:    cycleID,
		GoalID:     goalID,
		Amount:     amount,
		Source:     source,
		AppendOnly: true,
		Metadata: domain.GeneratedEventMetadata{
			ActorType: domain.GeneratedEventActorType,
			ActorID:   domain.GeneratedEventActorID,
			Source:    domain.GeneratedEventMetadataSource,
		},
	}
}

// truncateToDate drops the time-of-day component so cycle arithmetic is
// immune to DST offsets in the caller's inputs.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
