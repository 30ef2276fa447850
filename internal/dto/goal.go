package dto

// GoalProgress reports how far along a goal is within its cycle. Burn-rate
// fields are only present when the caller supplied elapsed/total day counts.
type GoalProgress struct {
	GoalAmount         int64    `json:"goal_amount"`
	AllocatedAmount    int64    `json:"allocated_amount"`
	RemainingAmount    int64    `json:"remaining_amount"`
	ConsumedPercentage float64  `json:"consumed_percentage"`
	CurrentBurnRate    *float64 `json:"current_burn_rate"`
	BurnRate           *float64 `json:"burn_rate"`
}
