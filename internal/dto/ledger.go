package dto

// RecordAllocationEventRequest carries one ledger append across the service
// boundary. Amount is typed loosely on purpose: the journal validates the
// whole-dollar policy itself so JSON floats and strings are rejected there,
// not silently coerced by decoding.
type RecordAllocationEventRequest struct {
	EventID            string  `json:"event_id" validate:"required"`
	GoalID             string  `json:"goal_id" validate:"required"`
	CycleID            string  `json:"cycle_id" validate:"required"`
	Amount             any     `json:"amount"`
	CompensatesEventID *string `json:"compensates_event_id"`
}

// GoalBalance pairs a goal with its replayed journal balance. Balance lists
// are always sorted by goal id for deterministic rendering.
type GoalBalance struct {
	GoalID  string `json:"goal_id"`
	Balance int64  `json:"balance"`
}
