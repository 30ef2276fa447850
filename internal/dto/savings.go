package dto

// SavingsPoolProjection is the unconditional projection over every planned
// savings event.
type SavingsPoolProjection struct {
	CurrentBalance   int64 `json:"current_balance"`
	PlannedNetChange int64 `json:"planned_net_change"`
	ProjectedBalance int64 `json:"projected_balance"`
}

// SavingsPoolForecast is the date-bounded projection including only planned
// events on or before the forecast date.
type SavingsPoolForecast struct {
	CurrentBalance     int64  `json:"current_balance"`
	ForecastDate       string `json:"forecast_date"`
	IncludedNetChange  int64  `json:"included_net_change"`
	IncludedEventCount int    `json:"included_event_count"`
	ProjectedBalance   int64  `json:"projected_balance"`
}
