package dto

import (
	"strings"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	"github.com/flowly-app/budgeting_backend/internal/utils/textmatch"
)

// IntentRoutingRequest is the assistant's view of one chat message: the
// trimmed original plus a lowercase alphanumeric-collapsed normalization for
// the classifier prompt.
type IntentRoutingRequest struct {
	Message           string `json:"message"`
	NormalizedMessage string `json:"normalized_message"`
}

// NewIntentRoutingRequest builds a routing request from raw chat input.
func NewIntentRoutingRequest(message string) IntentRoutingRequest {
	trimmed := strings.TrimSpace(message)
	return IntentRoutingRequest{
		Message:           trimmed,
		NormalizedMessage: textmatch.Normalize(trimmed),
	}
}

// CandidateIntentPayload is one ranked candidate as supplied by the
// classification collaborator. Confidence is loosely typed: non-numeric
// values normalize to zero rather than failing the route.
type CandidateIntentPayload struct {
	Intent     string `json:"intent"`
	Confidence any    `json:"confidence"`
}

// IntentClassificationPayload is the raw structured response of the
// classification collaborator. The router trusts none of it: every field is
// normalized before routing.
type IntentClassificationPayload struct {
	ConfidenceByIntent    map[string]any           `json:"confidence_by_intent"`
	RequiresClarification bool                     `json:"requires_clarification"`
	Confidence            any                      `json:"confidence"`
	PrimaryIntent         *string                  `json:"primary_intent"`
	CandidateIntents      []CandidateIntentPayload `json:"candidate_intents"`
	ClarificationPrompt   *string                  `json:"clarification_prompt"`
}

// CandidateIntent is a normalized ranked candidate.
type CandidateIntent struct {
	Intent     domain.Intent `json:"intent"`
	Confidence float64       `json:"confidence"`
}

// Route types returned by the intent router.
const (
	RouteTypeIntent        = "intent"
	RouteTypeClarification = "clarification"
)

// ClarificationReasonAmbiguousIntent is the single clarification reason the
// router emits.
const ClarificationReasonAmbiguousIntent = "ambiguous_intent"

// Clarification asks the user to disambiguate between candidate intents.
type Clarification struct {
	Reason           string            `json:"reason"`
	Prompt           string            `json:"prompt"`
	CandidateIntents []CandidateIntent `json:"candidate_intents"`
}

// RouteResult is the router's total outcome: either a confident intent route
// or a clarification request. Classification failures surface here as
// clarifications, never as errors.
type RouteResult struct {
	RouteType             string                    `json:"route_type"`
	PrimaryIntent         *string                   `json:"primary_intent"`
	RequiresClarification bool                      `json:"requires_clarification"`
	Confidence            float64                   `json:"confidence"`
	ConfidenceByIntent    map[domain.Intent]float64 `json:"confidence_by_intent"`
	Clarification         *Clarification            `json:"clarification"`
}
