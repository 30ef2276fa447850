package commands

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/flowly-app/budgeting_backend/internal/adapters/memory"
	"github.com/flowly-app/budgeting_backend/internal/adapters/notify"
	"github.com/flowly-app/budgeting_backend/internal/core/domain"
	portsrepo "github.com/flowly-app/budgeting_backend/internal/core/ports/repositories"
	"github.com/flowly-app/budgeting_backend/internal/core/services"
	"github.com/flowly-app/budgeting_backend/internal/platform/logging"
)

var (
	checkAlertsWindowHours int
	checkAlertsRulesFile   string
)

var checkAlertsCmd = &cobra.Command{
	Use:   "check-alerts",
	Short: "Evaluate active alert rules over a trailing window",
	Long:  "Evaluates every active alert rule over a trailing window ending now. Alert creation is deduplicated per rule and window, so re-running an identical window sends nothing twice.",
	RunE:  runCheckAlerts,
}

func init() {
	checkAlertsCmd.Flags().IntVar(&checkAlertsWindowHours, "window-hours", 0,
		"evaluation window length in hours (defaults to ALERT_WINDOW_HOURS)")
	checkAlertsCmd.Flags().StringVar(&checkAlertsRulesFile, "rules-file", "",
		"path to a JSON file of alert rules to evaluate")
	rootCmd.AddCommand(checkAlertsCmd)
}

func runCheckAlerts(cmd *cobra.Command, args []string) error {
	ctx := logging.WithLogger(cmd.Context(), slog.Default())

	hours := checkAlertsWindowHours
	if hours <= 0 {
		hours = cfg.AlertWindowHours
	}
	if hours < 1 {
		hours = 1
	}

	rules, err := loadAlertRules(checkAlertsRulesFile)
	if err != nil {
		return err
	}

	repos := portsrepo.RepositoryProvider{
		AllocationEventRepo: memory.NewAllocationEventRepository(),
		AlertRepo:           memory.NewAlertRepository(rules),
		MerchantMappingRepo: memory.NewMerchantMappingRepository(),
	}
	container := services.NewServiceContainer(cfg, repos, nil)

	// Truncating to the minute keeps the window bounds, and therefore the
	// dedupe keys, stable across closely spaced runs.
	windowEnd := time.Now().UTC().Truncate(time.Minute)
	windowStart := windowEnd.Add(-time.Duration(hours) * time.Hour)

	created, err := container.AlertCheck.RunWindow(ctx, windowStart, windowEnd)
	if err != nil {
		return fmt.Errorf("alert check failed: %w", err)
	}

	notifier := notify.NewLogNotifier()
	notified := 0
	for _, alert := range created {
		if err := notifier.Notify(ctx, alert); err != nil {
			slog.ErrorContext(ctx, "Alert notification failed",
				"alertID", alert.AlertID, "error", err)
			continue
		}
		notified++
	}

	slog.InfoContext(ctx, "Alert check completed",
		"windowStart", windowStart,
		"windowEnd", windowEnd,
		"ruleCount", len(rules),
		"createdCount", len(created),
		"notifiedCount", notified)
	return nil
}

// loadAlertRules reads the rule seed from a JSON file. No file means no rules
// to evaluate, which is a valid scheduled run.
func loadAlertRules(path string) ([]domain.AlertRule, error) {
	if path == "" {
		return nil, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading rules file %q: %w", path, err)
	}

	var rules []domain.AlertRule
	if err := json.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("parsing rules file %q: %w", path, err)
	}
	return rules, nil
}
