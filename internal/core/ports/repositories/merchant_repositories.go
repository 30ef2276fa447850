package repositories

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
)

// MerchantMappingReader defines read operations over a user's merchant
// mappings. All mappings and audit trails are strictly partitioned per user.
type MerchantMappingReader interface {
	// ExactGoalID returns the exact-tier goal id for a normalized merchant,
	// or nil when no mapping exists.
	ExactGoalID(ctx context.Context, userID, normalizedMerchant string) (*string, error)

	// AliasMappings returns the user's alias tier keyed by normalized alias.
	AliasMappings(ctx context.Context, userID string) (map[string]string, error)

	// ExactMappings returns the user's exact tier keyed by normalized merchant.
	ExactMappings(ctx context.Context, userID string) (map[string]string, error)

	// AuditTrail returns the user's mapping audit entries in append order.
	AuditTrail(ctx context.Context, userID string) ([]domain.MerchantMappingAuditEntry, error)
}

// MerchantMappingWriter defines write operations over a user's merchant
// mappings.
type MerchantMappingWriter interface {
	SetExactMapping(ctx context.Context, userID, normalizedMerchant, goalID string) error
	SetAliasMapping(ctx context.Context, userID, normalizedAlias, goalID string) error
	AppendAuditEntry(ctx context.Context, userID string, entry domain.MerchantMappingAuditEntry) error
}

// MerchantMappingRepositoryFacade combines the merchant mapping interfaces.
type MerchantMappingRepositoryFacade interface {
	MerchantMappingReader
	MerchantMappingWriter
}
