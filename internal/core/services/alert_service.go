package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portsrepo "github.com/flowly-app/budgeting_backend/internal/core/ports/repositories"
	portssvc "github.com/flowly-app/budgeting_backend/internal/core/ports/services"
	"github.com/flowly-app/budgeting_backend/internal/utils/hashing"
)

// alertCheckService evaluates the active alert rules over an evaluation
// window. Creation is deduplicated per rule and window, so re-running an
// identical window never produces duplicates and returns nothing new.
type alertCheckService struct {
	BaseService
	alertRepo portsrepo.AlertRepositoryFacade
}

// NewAlertCheckService creates a new AlertCheckService.
func NewAlertCheckService(alertRepo portsrepo.AlertRepositoryFacade) portssvc.AlertCheckSvcFacade {
	return &alertCheckService{alertRepo: alertRepo}
}

var _ portssvc.AlertCheckSvcFacade = (*alertCheckService)(nil)

// RunWindow evaluates every active rule against the window. A rule that does
// not trigger is skipped silently; a rule whose evaluation errors is logged
// and skipped so one bad rule never stalls the rest. Only alerts newly
// created by this run are returned.
func (s *alertCheckService) RunWindow(ctx context.Context, windowStart, windowEnd time.Time) ([]domain.Alert, error) {
	rules, err := s.alertRepo.ListActiveRules(ctx)
	if err != nil {
		return nil, err
	}

	created := make([]domain.Alert, 0)
	for _, rule := range rules {
		if !rule.IsActive {
			continue
		}

		candidate, triggered := s.evaluate(ctx, rule, windowEnd)
		if !triggered {
			continue
		}

		candidate.UserID = rule.UserID
		candidate.BudgetID = rule.BudgetID
		candidate.CycleID = rule.CycleID
		candidate.GoalID = rule.GoalID
		candidate.RuleType = rule.RuleType
		candidate.Status = domain.AlertOpen
		candidate.WindowStart = windowStart
		candidate.WindowEnd = windowEnd
		candidate.DedupeKey = hashing.DedupeKey(
			rule.RuleID,
			string(rule.RuleType),
			windowStart.UTC().Format(time.RFC3339),
			windowEnd.UTC().Format(time.RFC3339),
		)

		stored, isNew, err := s.alertRepo.FindOrCreateByDedupeKey(ctx, candidate)
		if err != nil {
			return nil, err
		}
		if isNew {
			created = append(created, *stored)
		}
	}

	s.LogInfo(ctx, "Alert window evaluated",
		"ruleCount", len(rules),
		"createdCount", len(created))
	return created, nil
}

// evaluate dispatches on the rule type. The returned candidate carries only
// severity and context; identity and window fields are stamped by the caller.
func (s *alertCheckService) evaluate(ctx context.Context, rule domain.AlertRule, windowEnd time.Time) (domain.Alert, bool) {
	switch rule.RuleType {
	case domain.RuleOverspendRisk:
		return s.evaluateOverspendRisk(rule)
	case domain.RuleMissedIncome:
		return s.evaluateMissedIncome(ctx, rule, windowEnd)
	case domain.RuleSavingsDrift:
		return s.evaluateSavingsDrift(rule)
	}
	s.LogWarn(ctx, "Unknown alert rule type skipped", "ruleID", rule.RuleID, "ruleType", string(rule.RuleType))
	return domain.Alert{}, false
}

// evaluateOverspendRisk triggers when spending has reached the configured
// percentage of the goal cap. The comparison is kept in integer arithmetic.
func (s *alertCheckService) evaluateOverspendRisk(rule domain.AlertRule) (domain.Alert, bool) {
	capAmount := contextInt64(rule.Context, "cap_amount")
	spentAmount := contextInt64(rule.Context, "spent_amount")
	if capAmount <= 0 {
		return domain.Alert{}, false
	}
	if spentAmount*100 < capAmount*rule.ThresholdPercent {
		return domain.Alert{}, false
	}

	severity := domain.SeverityWarning
	if rule.ThresholdPercent >= 90 {
		severity = domain.SeverityCritical
	}

	return domain.Alert{
		Severity: severity,
		Context: map[string]any{
			"goal_name":         contextString(rule.Context, "goal_name"),
			"cap_amount":        capAmount,
			"spent_amount":      spentAmount,
			"threshold_percent": rule.ThresholdPercent,
			"reason":            fmt.Sprintf("Spending has reached %d%% of the goal cap.", rule.ThresholdPercent),
			"next_step":         "Review recent allocations for this goal or raise its cap.",
		},
	}, true
}

// evaluateMissedIncome triggers when expected income due within the window
// has not fully arrived. An unparseable or future due date never triggers.
func (s *alertCheckService) evaluateMissedIncome(ctx context.Context, rule domain.AlertRule, windowEnd time.Time) (domain.Alert, bool) {
	expectedAmount := contextInt64(rule.Context, "expected_amount")
	receivedAmount := contextInt64(rule.Context, "received_amount")
	if expectedAmount <= 0 {
		return domain.Alert{}, false
	}

	expectedAt, ok := parseContextTime(rule.Context, "expected_at")
	if !ok {
		s.LogWarn(ctx, "Missed-income rule has unparseable expected_at", "ruleID", rule.RuleID)
		return domain.Alert{}, false
	}
	if expectedAt.After(windowEnd) {
		return domain.Alert{}, false
	}
	if receivedAmount >= expectedAmount {
		return domain.Alert{}, false
	}

	return domain.Alert{
		Severity: domain.SeverityCritical,
		Context: map[string]any{
			"goal_name":        contextString(rule.Context, "goal_name"),
			"expected_amount":  expectedAmount,
			"received_amount":  receivedAmount,
			"shortfall_amount": expectedAmount - receivedAmount,
			"expected_at":      expectedAt.Format(time.RFC3339),
			"reason":           "Expected income was due but has not fully arrived.",
			"next_step":        "Confirm the income arrived or adjust the expected amount.",
		},
	}, true
}

// evaluateSavingsDrift triggers when saved progress trails the planned target.
func (s *alertCheckService) evaluateSavingsDrift(rule domain.AlertRule) (domain.Alert, bool) {
	targetAmount := contextInt64(rule.Context, "target_amount")
	savedAmount := contextInt64(rule.Context, "saved_amount")
	if targetAmount <= 0 {
		return domain.Alert{}, false
	}
	if savedAmount >= targetAmount {
		return domain.Alert{}, false
	}

	return domain.Alert{
		Severity: domain.SeverityWarning,
		Context: map[string]any{
			"goal_name":     contextString(rule.Context, "goal_name"),
			"target_amount": targetAmount,
			"saved_amount":  savedAmount,
			"drift_amount":  targetAmount - savedAmount,
			"reason":        "Savings progress is behind the planned target.",
			"next_step":     "Schedule a catch-up savings event or lower the target.",
		},
	}, true
}

// contextInt64 reads a loosely typed numeric rule input. Rules arrive from
// JSON config, so float64 and string encodings are common.
func contextInt64(ruleContext map[string]any, key string) int64 {
	switch v := ruleContext[key].(type) {
	case int64:
		return v
	case int:
		return int64(v)
	case float64:
		return int64(v)
	case json.Number:
		parsed, err := v.Int64()
		if err != nil {
			return 0
		}
		return parsed
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0
		}
		return parsed
	}
	return 0
}

func contextString(ruleContext map[string]any, key string) string {
	if v, ok := ruleContext[key].(string); ok {
		return v
	}
	return ""
}

// parseContextTime reads a timestamp rule input, accepting RFC3339 and bare
// dates.
func parseContextTime(ruleContext map[string]any, key string) (time.Time, bool) {
	raw, ok := ruleContext[key].(string)
	if !ok || raw == "" {
		return time.Time{}, false
	}
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, true
	}
	if parsed, err := time.Parse(dateLayout, raw); err == nil {
		return parsed, true
	}
	return time.Time{}, false
}
