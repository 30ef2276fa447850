package domain

// MappingAction identifies how a confirmed merchant mapping changed the store.
type MappingAction string

const (
	ActionCreateMapping   MappingAction = "create_mapping"
	ActionOverrideMapping MappingAction = "override_mapping"
)

// MerchantMappingAuditEntry records one confirmed mapping change for a user.
// Re-confirming an identical mapping produces no entry.
type MerchantMappingAuditEntry struct {
	EntryID      string        `json:"entryID"` // Primary Key (e.g., UUID)
	Action       MappingAction `json:"action"`
	Merchant     string        `json:"merchant"` // Normalized merchant string
	BeforeGoalID *string       `json:"beforeGoalID"`
	AfterGoalID  string        `json:"afterGoalID"`
}
