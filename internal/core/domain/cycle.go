package domain

import "time"

// CycleState indicates the lifecycle state of a budget cycle.
type CycleState string

const (
	CycleOpen   CycleState = "open"
	CycleClosed CycleState = "closed"
)

// Cycle represents a budgeting period. At most one cycle per budget may be
// open at any time, and the only valid transition is open -> closed.
type Cycle struct {
	CycleID   string     `json:"cycleID"`   // Primary Key (e.g., UUID)
	BudgetID  string     `json:"budgetID"`  // FK -> budgets.budget_id
	StartDate time.Time  `json:"startDate"` // Inclusive, date precision
	EndDate   time.Time  `json:"endDate"`   // Inclusive, date precision
	State     CycleState `json:"state"`
	AuditFields
}

// GeneratedEventSource identifies which close-time procedure produced a
// generated allocation event.
type GeneratedEventSource string

const (
	SourceAdjustmentSweep      GeneratedEventSource = "adjustment_sweep"
	SourceRolloverIncomeAdjust GeneratedEventSource = "rollover_income_adjustment"
)

// System actor identity stamped on every generated close event.
const (
	GeneratedEventActorType      = "system"
	GeneratedEventActorID        = "cycle_close_orchestrator"
	GeneratedEventMetadataSource = "cycle_close_confirmation"
)

// GeneratedEventMetadata records the system actor that produced a generated event.
type GeneratedEventMetadata struct {
	ActorType string `json:"actorType"`
	ActorID   string `json:"actorID"`
	Source    string `json:"source"`
}

// GeneratedEvent is an allocation event produced by the cycle close
// confirmation, returned to the caller for journaling.
type GeneratedEvent struct {
	EventID    string                 `json:"eventID"`
	BudgetID   string                 `json:"budgetID"`
	CycleID    string                 `json:"cycleID"`
	GoalID     string                 `json:"goalID"`
	Amount     int64                  `json:"amount"`
	Source     GeneratedEventSource   `json:"source"`
	AppendOnly bool                   `json:"appendOnly"`
	Metadata   GeneratedEventMetadata `json:"metadata"`
}
