package memory

import (
	"context"
	"sync"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portsrepo "github.com/flowly-app/budgeting_backend/internal/core/ports/repositories"
)

// MerchantMappingRepository is an in-memory merchant mapping store. Mappings
// and audit trails are strictly partitioned per user.
type MerchantMappingRepository struct {
	mu     sync.RWMutex
	exact  map[string]map[string]string
	alias  map[string]map[string]string
	audits map[string][]domain.MerchantMappingAuditEntry
}

// NewMerchantMappingRepository creates an empty mapping store.
func NewMerchantMappingRepository() *MerchantMappingRepository {
	return &MerchantMappingRepository{
		exact:  make(map[string]map[string]string),
		alias:  make(map[string]map[string]string),
		audits: make(map[string][]domain.MerchantMappingAuditEntry),
	}
}

var _ portsrepo.MerchantMappingRepositoryFacade = (*MerchantMappingRepository)(nil)

// ExactGoalID returns the exact-tier goal id for a normalized merchant, or
// nil when no mapping exists.
func (r *MerchantMappingRepository) ExactGoalID(ctx context.Context, userID, normalizedMerchant string) (*string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	goalID, found := r.exact[userID][normalizedMerchant]
	if !found {
		return nil, nil
	}
	return &goalID, nil
}

// ExactMappings returns a copy of the user's exact tier.
func (r *MerchantMappingRepository) ExactMappings(ctx context.Context, userID string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyMappings(r.exact[userID]), nil
}

// AliasMappings returns a copy of the user's alias tier.
func (r *MerchantMappingRepository) AliasMappings(ctx context.Context, userID string) (map[string]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return copyMappings(r.alias[userID]), nil
}

// AuditTrail returns the user's mapping audit entries in append order.
func (r *MerchantMappingRepository) AuditTrail(ctx context.Context, userID string) ([]domain.MerchantMappingAuditEntry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]domain.MerchantMappingAuditEntry, len(r.audits[userID]))
	copy(entries, r.audits[userID])
	return entries, nil
}

// SetExactMapping stores an exact-tier mapping, replacing any existing one.
func (r *MerchantMappingRepository) SetExactMapping(ctx context.Context, userID, normalizedMerchant, goalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.exact[userID] == nil {
		r.exact[userID] = make(map[string]string)
	}
	r.exact[userID][normalizedMerchant] = goalID
	return nil
}

// SetAliasMapping stores an alias-tier mapping, replacing any existing one.
func (r *MerchantMappingRepository) SetAliasMapping(ctx context.Context, userID, normalizedAlias, goalID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.alias[userID] == nil {
		r.alias[userID] = make(map[string]string)
	}
	r.alias[userID][normalizedAlias] = goalID
	return nil
}

// AppendAuditEntry appends one confirmed mapping change to the user's trail.
func (r *MerchantMappingRepository) AppendAuditEntry(ctx context.Context, userID string, entry domain.MerchantMappingAuditEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.audits[userID] = append(r.audits[userID], entry)
	return nil
}

func copyMappings(src map[string]string) map[string]string {
	dst := make(map[string]string, len(src))
	for k, v := range src {
		dst[k] = v
	}
	return dst
}
