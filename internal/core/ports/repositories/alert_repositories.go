package repositories

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
)

// AlertRuleReader supplies the active alert rules to evaluate. Rules are
// owned by surrounding infrastructure; this core only reads them.
type AlertRuleReader interface {
	ListActiveRules(ctx context.Context) ([]domain.AlertRule, error)
}

// AlertWriter persists triggered alerts with find-or-create semantics keyed
// on the dedupe key, so re-running an identical window is a no-op.
// Implementations must enforce dedupe-key uniqueness atomically.
type AlertWriter interface {
	// FindOrCreateByDedupeKey returns the stored alert for the candidate's
	// dedupe key, creating it if absent. The boolean reports whether the
	// alert was newly created by this call.
	FindOrCreateByDedupeKey(ctx context.Context, candidate domain.Alert) (*domain.Alert, bool, error)
}

// AlertRepositoryFacade combines the alert repository interfaces.
type AlertRepositoryFacade interface {
	AlertRuleReader
	AlertWriter
}
