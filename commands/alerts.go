package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-focus-monitor/internal/application/monitor"
	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/data/store"
	"github.com/penwyp/go-focus-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

var alertsCmd = &cobra.Command{
	Use:   "alerts",
	Short: "Evaluate limits and list smart alerts",
	Long: `Refreshes today's usage against the configured limits, raises any
missing alerts (deduplicated per day), persists the result and lists the
alert history, most recent first.`,
	RunE: runAlerts,
}

func init() {
	rootCmd.AddCommand(alertsCmd)
}

func runAlerts(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	engine, st, err := buildEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	// A missing event source is itself an alert condition, not a failure.
	if _, err := engine.RefreshUsage(); err != nil && !errors.Is(err, model.ErrUnavailable) {
		return err
	}

	if err := persistLedger(st, engine); err != nil {
		return err
	}

	f, err := formatter.NewFormatter(outputFormat)
	if err != nil {
		return err
	}
	return f.Format(formatter.Report{Alerts: engine.Ledger().Alerts()})
}

// persistLedger writes the ledger's limits and alert history back to the
// store after a refresh pass.
func persistLedger(st *store.Store, engine *monitor.Engine) error {
	ledger := engine.Ledger()
	if err := st.SaveLimits(ledger.Limits()); err != nil {
		return err
	}
	if err := st.SaveAlerts(ledger.Alerts()); err != nil {
		return err
	}
	util.LogDebug("Persisted limits and alerts")
	return nil
}
