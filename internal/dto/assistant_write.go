package dto

import (
	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	"github.com/go-playground/validator/v10"
)

// EntityDiff is one before/after entity snapshot carried by a write proposal
// and rendered on its confirmation card.
type EntityDiff struct {
	EntityType string         `json:"entity_type" validate:"required"`
	EntityID   string         `json:"entity_id" validate:"required"`
	Before     map[string]any `json:"before"`
	After      map[string]any `json:"after"`
}

// WriteProposal is a proposed domain mutation awaiting confirmation or
// auto-execution. Proposals are transient; only the result is returned.
type WriteProposal struct {
	ProposalID    string       `json:"proposal_id" validate:"required"`
	ActionSummary string       `json:"action_summary" validate:"required"`
	Confidence    float64      `json:"confidence" validate:"gte=0,lte=1"`
	Entities      []EntityDiff `json:"entities" validate:"dive"`
}

// WritePolicy governs whether a proposal may execute without explicit
// approval. Construct through NewConfirmationOnlyPolicy or
// NewConfidenceBasedPolicy so the threshold is always validated.
type WritePolicy struct {
	Mode                           domain.WriteExecutionMode `json:"mode"`
	AutoExecuteConfidenceThreshold float64                   `json:"auto_execute_confidence_threshold" validate:"gte=0,lte=1"`
}

var policyValidator = validator.New()

// NewConfirmationOnlyPolicy builds a policy that never auto-executes.
func NewConfirmationOnlyPolicy() WritePolicy {
	return WritePolicy{Mode: domain.ModeConfirmationOnly, AutoExecuteConfidenceThreshold: 0.9}
}

// NewConfidenceBasedPolicy builds a policy that auto-executes proposals at or
// above the given confidence threshold.
func NewConfidenceBasedPolicy(threshold float64) (WritePolicy, error) {
	policy := WritePolicy{Mode: domain.ModeConfidenceBased, AutoExecuteConfidenceThreshold: threshold}
	if err := policyValidator.Struct(policy); err != nil {
		return WritePolicy{}, err
	}
	return policy, nil
}

// ShouldAutoExecute reports whether a proposal at the given confidence may
// run without explicit approval under this policy.
func (p WritePolicy) ShouldAutoExecute(confidence float64) bool {
	if p.Mode != domain.ModeConfidenceBased {
		return false
	}
	return confidence >= p.AutoExecuteConfidenceThreshold
}

// Terminal write result statuses.
const (
	WriteStatusProposed  = "proposed"
	WriteStatusSucceeded = "succeeded"
	WriteStatusFailed    = "failed"
	WriteStatusRejected  = "rejected"
)

// Confirmation card render statuses.
const (
	CardStatusPendingConfirmation = "pending_confirmation"
	CardStatusSucceeded           = "succeeded"
	CardStatusFailed              = "failed"
	CardStatusRejected            = "rejected"
)

// Write orchestrator error codes.
const (
	ErrCodeWriteRejectedByUser  = "write_rejected_by_user"
	ErrCodeWriteExecutionFailed = "write_execution_failed"
)

// ConfirmationCard is the uniform rendering contract attached to every
// terminal write result, regardless of outcome.
type ConfirmationCard struct {
	ProposalID    string       `json:"proposal_id"`
	ActionSummary string       `json:"action_summary"`
	Entities      []EntityDiff `json:"entities"`
	ResultStatus  string       `json:"result_status"`
}

// WriteError is a stable code/message pair for failed or rejected writes.
type WriteError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// WriteResult is the terminal outcome of one write attempt. Callers switch on
// Status; no case throws.
type WriteResult struct {
	Status               string           `json:"status"`
	RequiresConfirmation bool             `json:"requires_confirmation"`
	ConfirmationCard     ConfirmationCard `json:"confirmation_card"`
	Error                *WriteError      `json:"error"`
}
