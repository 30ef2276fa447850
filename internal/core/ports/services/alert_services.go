package services

import (
	"context"
	"time"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
)

// AlertNotifier delivers a created alert to its owning user through whatever
// channel the host chooses. Delivery is outside this core's correctness
// properties, which only govern alert creation and dedup.
type AlertNotifier interface {
	Notify(ctx context.Context, alert domain.Alert) error
}

// AlertCheckSvcFacade evaluates active alert rules over a time window.
// Creation is idempotent per rule and window; only newly created alerts are
// returned for downstream dispatch.
type AlertCheckSvcFacade interface {
	RunWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Alert, error)
}
