package dto

import (
	"time"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
)

// Cycle close checklist statuses. The checklist is a two-state gate: either
// blocked on pending events or ready for the user to confirm the rollover.
const (
	CloseStatusBlocked              = "blocked"
	CloseStatusReadyForConfirmation = "ready_for_confirmation"
)

// Checklist step identifiers, in render order.
const (
	StepResolvePendingEvents = "resolve_pending_events"
	StepReviewGoalOutcomes   = "review_goal_outcomes"
	StepConfirmRolloverPlan  = "confirm_rollover_plan"
)

// Checklist step statuses.
const (
	StepStatusBlocked              = "blocked"
	StepStatusPassed               = "passed"
	StepStatusCompleted            = "completed"
	StepStatusAwaitingConfirmation = "awaiting_confirmation"
)

// CloseBlocker explains why a close attempt is gated.
type CloseBlocker struct {
	Code              string `json:"code"`
	Message           string `json:"message"`
	PendingEventCount int    `json:"pending_event_count"`
}

// CloseStep is one ordered entry of the checklist render payload.
type CloseStep struct {
	ID                string `json:"id"`
	Status            string `json:"status"`
	PendingEventCount int    `json:"pending_event_count,omitempty"`
}

// GoalOutcomeReview summarizes over/under-target goals for the review step.
type GoalOutcomeReview struct {
	OverGoalCount  int `json:"over_goal_count"`
	UnderGoalCount int `json:"under_goal_count"`
}

// CycleCloseChecklist is the structured result of a close-readiness check.
type CycleCloseChecklist struct {
	Status   string             `json:"status"`
	CanClose bool               `json:"can_close"`
	Blocker  *CloseBlocker      `json:"blocker"`
	Steps    []CloseStep        `json:"steps"`
	Review   *GoalOutcomeReview `json:"review"`
}

// AdjustmentSweepEvent is one caller-supplied sweep input for a confirmed
// close. Amount passes through whole-dollar validation in the orchestrator.
type AdjustmentSweepEvent struct {
	EventID string `json:"event_id" validate:"required"`
	GoalID  string `json:"goal_id" validate:"required"`
	Amount  any    `json:"amount"`
}

// ConfirmedCloseRequest carries everything the rollover orchestrator needs to
// close the current cycle and open the next one.
type ConfirmedCloseRequest struct {
	BudgetID                        string                 `json:"budget_id" validate:"required"`
	CurrentCycleID                  string                 `json:"current_cycle_id" validate:"required"`
	NextCycleID                     string                 `json:"next_cycle_id" validate:"required"`
	CurrentCycleStart               time.Time              `json:"current_cycle_start"`
	CurrentCycleEnd                 time.Time              `json:"current_cycle_end"`
	NextCycleIncomeAdjustmentGoalID string                 `json:"next_cycle_income_adjustment_goal_id" validate:"required"`
	RolloverEventID                 string                 `json:"rollover_event_id" validate:"required"`
	RolloverAmount                  any                    `json:"rollover_amount"`
	AdjustmentSweepEvents           []AdjustmentSweepEvent `json:"adjustment_sweep_events" validate:"dive"`
}

// NextCycleDescriptor describes the freshly opened cycle window. Dates are
// rendered at date precision.
type NextCycleDescriptor struct {
	CycleID   string `json:"cycle_id"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	State     string `json:"state"`
}

// CloseSummary reports what the confirmed close did.
type CloseSummary struct {
	CurrentCycleID string `json:"current_cycle_id"`
	NextCycleID    string `json:"next_cycle_id"`
	RolloverAmount int64  `json:"rollover_amount"`
}

// RolloverResult bundles the next-cycle descriptor, the close summary, and
// the generated events the caller must journal, in sweep-then-rollover order.
type RolloverResult struct {
	NextCycle       NextCycleDescriptor     `json:"next_cycle"`
	CloseSummary    CloseSummary            `json:"close_summary"`
	GeneratedEvents []domain.GeneratedEvent `json:"generated_events"`
}
