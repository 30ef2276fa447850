package dto

// Merchant mapping resolution statuses.
const (
	MappingStatusResolved          = "resolved"
	MappingStatusNeedsConfirmation = "needs_confirmation"
)

// Merchant mapping match types, in resolution order.
const (
	MatchTypeExact      = "exact"
	MatchTypeAliasFuzzy = "alias_fuzzy"
	MatchTypeHeuristic  = "heuristic"
	MatchTypeUnknown    = "unknown"
)

// MerchantMappingResult reports how a merchant string resolved to a goal.
type MerchantMappingResult struct {
	Status               string  `json:"status"`
	GoalID               *string `json:"goal_id"`
	MatchType            string  `json:"match_type"`
	RequiresConfirmation bool    `json:"requires_confirmation"`
}

// MerchantMappingSet is one user's full mapping state across both tiers,
// keyed by normalized merchant string.
type MerchantMappingSet struct {
	Exact map[string]string `json:"exact"`
	Alias map[string]string `json:"alias"`
}
