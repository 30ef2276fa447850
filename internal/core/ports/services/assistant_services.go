package services

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	"github.com/flowly-app/budgeting_backend/internal/dto"
)

// IntentClassifier is the external classification collaborator: a
// prompt-based agent that either returns a structured payload or fails. The
// router treats any failure, nil payload included, as total failure and falls
// back to an ambiguous clarification.
type IntentClassifier interface {
	Classify(ctx context.Context, req dto.IntentRoutingRequest) (*dto.IntentClassificationPayload, error)
}

// AssistantRouterSvcFacade classifies free-text chat input into the fixed
// intent set. Route always returns a result; classification failures never
// propagate as errors.
type AssistantRouterSvcFacade interface {
	Route(ctx context.Context, message string) dto.RouteResult
}

// WriteExecutor performs the actual domain mutation for an approved write
// proposal. The orchestrator invokes it at most once per run.
type WriteExecutor func(ctx context.Context, proposal dto.WriteProposal) (bool, error)

// AssistantWriteSvcFacade turns a proposed mutation into a confirmation
// workflow and reports a structured result card. Run never returns an error:
// execution failures become a terminal failed result.
type AssistantWriteSvcFacade interface {
	Run(ctx context.Context, proposal dto.WriteProposal, policy dto.WritePolicy, decision domain.WriteDecision, execute WriteExecutor) dto.WriteResult
}

// HeuristicMerchantResolver is the injected fallback consulted when neither
// mapping tier resolves a merchant. A nil return means unknown.
type HeuristicMerchantResolver func(ctx context.Context) *string

// MerchantMappingSvcFacade resolves merchant strings to goals through the
// exact tier, the alias/fuzzy tier, then the heuristic fallback, with a
// per-user audit trail of confirmed mappings.
type MerchantMappingSvcFacade interface {
	Resolve(ctx context.Context, userID, merchant string, heuristicResolver HeuristicMerchantResolver) (*dto.MerchantMappingResult, error)
	ConfirmMapping(ctx context.Context, userID, merchant, goalID string) error
	SetAliasMapping(ctx context.Context, userID, alias, goalID string) error
	MappingsForUser(ctx context.Context, userID string) (*dto.MerchantMappingSet, error)
	AuditTrailForUser(ctx context.Context, userID string) ([]domain.MerchantMappingAuditEntry, error)
}
