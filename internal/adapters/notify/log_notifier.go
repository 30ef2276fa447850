package notify

import (
	"context"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/platform/logging"
)

// LogNotifier delivers alerts to the structured log. It stands in for a real
// delivery channel in scheduled runs and local development.
type LogNotifier struct{}

// NewLogNotifier creates a new LogNotifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

var _ portssvc.AlertNotifier = (*LogNotifier)(nil)

// Notify writes one alert record at a level matching its severity.
func (n *LogNotifier) Notify(ctx context.Context, alert domain.Alert) error {
	logger := logging.FromCtx(ctx).With(
		"alertID", alert.AlertID,
		"userID", alert.UserID,
		"goalID", alert.GoalID,
		"ruleType", string(alert.RuleType),
		"severity", string(alert.Severity),
		"windowStart", alert.WindowStart,
		"windowEnd", alert.WindowEnd,
	)

	if alert.Severity == domain.SeverityCritical {
		logger.ErrorContext(ctx, "Budget alert triggered", "context", alert.Context)
		return nil
	}
	logger.WarnContext(ctx, "Budget alert triggered", "context", alert.Context)
	return nil
}
