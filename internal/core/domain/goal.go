package domain

import "time"

// GoalType defines the budgeting behavior of a goal.
type GoalType string

const (
	GoalIncome              GoalType = "income"
	GoalExpense             GoalType = "expense"
	GoalSavingsRecurring    GoalType = "savings_recurring"
	GoalSavingsTargetParent GoalType = "savings_target_parent"
	GoalSavingsTargetChild  GoalType = "savings_target_child"
)

// AllGoalTypes returns the closed set of goal types.
func AllGoalTypes() []GoalType {
	return []GoalType{
		GoalIncome,
		GoalExpense,
		GoalSavingsRecurring,
		GoalSavingsTargetParent,
		GoalSavingsTargetChild,
	}
}

// RequiresSavingsPool reports whether goals of this type must carry a
// savings pool linkage.
func (t GoalType) RequiresSavingsPool() bool {
	switch t {
	case GoalSavingsRecurring, GoalSavingsTargetParent, GoalSavingsTargetChild:
		return true
	case GoalIncome, GoalExpense:
		return false
	}
	return false
}

// GoalState indicates whether a goal is live or soft-deleted.
type GoalState string

const (
	GoalActive      GoalState = "active"
	GoalSoftDeleted GoalState = "soft_deleted"
)

// Goal represents a budget target. Goals are never physically removed; soft
// deletion flips the state and stamps DeletedAt so the allocation journal
// stays consistent.
type Goal struct {
	GoalID        string     `json:"goalID"`   // Primary Key (e.g., UUID)
	BudgetID      string     `json:"budgetID"` // FK -> budgets.budget_id
	Name          string     `json:"name"`
	Type          GoalType   `json:"type"`
	TargetAmount  int64      `json:"targetAmount"` // Whole dollars
	State         GoalState  `json:"state"`
	SavingsPoolID *string    `json:"savingsPoolID"` // Required for savings goal types
	ParentGoalID  *string    `json:"parentGoalID"`  // Set for savings_target_child goals
	DeletedAt     *time.Time `json:"deletedAt"`
	AuditFields
}
