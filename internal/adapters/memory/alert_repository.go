package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portsrepo "github.com/flowly-app/budgeting_backend/internal/core/ports/repositories"
)

// AlertRepository is an in-memory alert store seeded with a fixed rule set.
// Find-or-create is atomic under the lock, so concurrent identical windows
// cannot double-create.
type AlertRepository struct {
	mu       sync.RWMutex
	rules    []domain.AlertRule
	byDedupe map[string]domain.Alert
}

// NewAlertRepository creates an alert store over the given rule seed.
func NewAlertRepository(rules []domain.AlertRule) *AlertRepository {
	seeded := make([]domain.AlertRule, len(rules))
	copy(seeded, rules)
	return &AlertRepository{
		rules:    seeded,
		byDedupe: make(map[string]domain.Alert),
	}
}

var _ portsrepo.AlertRepositoryFacade = (*AlertRepository)(nil)

// ListActiveRules returns the seeded rules that are currently active.
func (r *AlertRepository) ListActiveRules(ctx context.Context) ([]domain.AlertRule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	active := make([]domain.AlertRule, 0, len(r.rules))
	for _, rule := range r.rules {
		if rule.IsActive {
			active = append(active, rule)
		}
	}
	return active, nil
}

// FindOrCreateByDedupeKey returns the stored alert for the candidate's dedupe
// key, creating it with a fresh id if absent. The boolean reports whether
// this call created the alert.
func (r *AlertRepository) FindOrCreateByDedupeKey(ctx context.Context, candidate domain.Alert) (*domain.Alert, bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, found := r.byDedupe[candidate.DedupeKey]; found {
		return &existing, false, nil
	}

	candidate.AlertID = uuid.NewString()
	candidate.CreatedAt = time.Now().UTC()
	r.byDedupe[candidate.DedupeKey] = candidate
	return &candidate, true, nil
}
