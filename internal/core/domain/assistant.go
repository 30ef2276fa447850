package domain

// Intent is one of the fixed set of categories the assistant routes chat
// requests into.
type Intent string

const (
	IntentOnboarding       Intent = "onboarding"
	IntentGoalManagement   Intent = "goal_management"
	IntentAllocationCreate Intent = "allocation_create"
	IntentAnalyticsQuery   Intent = "analytics_query"
)

// AllIntents returns the closed intent set in canonical order.
func AllIntents() []Intent {
	return []Intent{
		IntentOnboarding,
		IntentGoalManagement,
		IntentAllocationCreate,
		IntentAnalyticsQuery,
	}
}

// ResolveIntent maps a string onto the intent set, reporting whether it is a
// member. Unknown values never become intents.
func ResolveIntent(value string) (Intent, bool) {
	for _, intent := range AllIntents() {
		if string(intent) == value {
			return intent, true
		}
	}
	return "", false
}

// WriteDecision is the user's explicit stance on a proposed assistant write.
type WriteDecision string

const (
	DecisionNone    WriteDecision = "none"
	DecisionApprove WriteDecision = "approve"
	DecisionReject  WriteDecision = "reject"
)

// WriteExecutionMode selects how a write proposal may auto-execute.
type WriteExecutionMode string

const (
	// ModeConfirmationOnly always requires confirmation absent explicit approval.
	ModeConfirmationOnly WriteExecutionMode = "confirmation_only"
	// ModeConfidenceBased auto-executes when proposal confidence meets the
	// policy threshold.
	ModeConfidenceBased WriteExecutionMode = "confidence_based"
)
