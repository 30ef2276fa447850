package domain

// AllocationEvent is an immutable, signed whole-dollar ledger entry moving
// money into or out of a goal within a cycle. Events are never updated or
// deleted; the only way to negate one is to append a compensating event with
// CompensatesEventID pointing back at it and the amount negated.
type AllocationEvent struct {
	EventID            string  `json:"eventID"`            // Primary Key (caller-supplied, unique)
	GoalID             string  `json:"goalID"`             // FK -> goals.goal_id
	CycleID            string  `json:"cycleID"`            // FK -> cycles.cycle_id
	Amount             int64   `json:"amount"`             // Signed whole dollars; positive = contribution
	CompensatesEventID *string `json:"compensatesEventID"` // Nullable back-reference to the reversed event
}

// IsCompensation reports whether this event negates a prior event.
func (e AllocationEvent) IsCompensation() bool {
	return e.CompensatesEventID != nil
}
