package domain

import "time"

// AlertRuleType identifies the evaluation strategy of an alert rule.
type AlertRuleType string

const (
	RuleOverspendRisk AlertRuleType = "overspend_risk"
	RuleMissedIncome  AlertRuleType = "missed_income"
	RuleSavingsDrift  AlertRuleType = "savings_drift"
)

// AlertSeverity grades a triggered alert.
type AlertSeverity string

const (
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// AlertStatus tracks whether an alert has been handled.
type AlertStatus string

const (
	AlertOpen     AlertStatus = "open"
	AlertResolved AlertStatus = "resolved"
)

// AlertRule configures one scheduled budget check. Rules are supplied by the
// surrounding infrastructure; this core only reads them.
type AlertRule struct {
	RuleID           string         `json:"ruleID"` // Primary Key (e.g., UUID)
	UserID           string         `json:"userID"`
	BudgetID         string         `json:"budgetID"`
	CycleID          string         `json:"cycleID"`
	GoalID           string         `json:"goalID"`
	RuleType         AlertRuleType  `json:"ruleType"`
	ThresholdPercent int64          `json:"thresholdPercent" validate:"gte=0,lte=100"`
	IsActive         bool           `json:"isActive"`
	Context          map[string]any `json:"context"` // Rule-type specific inputs (cap_amount, expected_at, ...)
}

// Alert is the persisted outcome of a triggered rule for one evaluation
// window. DedupeKey is deterministic over rule identity and window bounds so
// re-running the same window never double-creates.
type Alert struct {
	AlertID     string         `json:"alertID"` // Primary Key (e.g., UUID)
	UserID      string         `json:"userID"`
	BudgetID    string         `json:"budgetID"`
	CycleID     string         `json:"cycleID"`
	GoalID      string         `json:"goalID"`
	RuleType    AlertRuleType  `json:"ruleType"`
	Severity    AlertSeverity  `json:"severity"`
	Status      AlertStatus    `json:"status"`
	WindowStart time.Time      `json:"windowStart"`
	WindowEnd   time.Time      `json:"windowEnd"`
	DedupeKey   string         `json:"dedupeKey"`
	Context     map[string]any `json:"context"`
	ResolvedAt  *time.Time     `json:"resolvedAt"`
	CreatedAt   time.Time      `json:"createdAt"`
}
