package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-focus-monitor/internal/application/monitor"
	"github.com/penwyp/go-focus-monitor/internal/core/alert"
	"github.com/penwyp/go-focus-monitor/internal/core/classify"
	"github.com/penwyp/go-focus-monitor/internal/core/constants"
	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/core/window"
	"github.com/penwyp/go-focus-monitor/internal/data/registry"
	"github.com/penwyp/go-focus-monitor/internal/data/source"
	"github.com/penwyp/go-focus-monitor/internal/data/store"
	"github.com/penwyp/go-focus-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

var (
	// Logging related
	debug bool

	// Data paths
	dataDir      string
	registryPath string
	dbPath       string

	// Output related
	outputFormat string
	timezone     string

	// Trend range
	trendDays int

	rootCmd = &cobra.Command{
		Use:   "go-focus-monitor [flags]",
		Short: "App usage monitoring and scoring tool",
		Long: `go-focus-monitor reconstructs app usage sessions from foreground
lifecycle event logs and reports usage trends, addiction scoring and
limit alerts.

Examples:
  go-focus-monitor                                  # 7-day trend with default settings
  go-focus-monitor --days 14 --output json          # 14-day trend as JSON
  go-focus-monitor score                            # Today's addiction metrics
  go-focus-monitor snapshot --top 10                # Today's snapshot with top 10 apps
  go-focus-monitor alerts                           # Evaluate limits and list alerts`,
		RunE: runTrend,
	}
)

const (
	defaultLogFile      = "~/.go-focus-monitor/logs/app.log"
	defaultDataDir      = "~/.go-focus-monitor/events"
	defaultDBPath       = "~/.go-focus-monitor/focus.db"
	defaultRegistryPath = ""
)

func init() {
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", defaultDataDir,
		"Directory containing usage event JSONL files")
	rootCmd.PersistentFlags().StringVar(&registryPath, "registry", defaultRegistryPath,
		"Package registry JSON file (empty = treat every package as launchable)")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", defaultDBPath,
		"SQLite database holding limits and alerts")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table",
		"Output format (table, json, csv, summary)")
	rootCmd.PersistentFlags().StringVar(&timezone, "timezone", "Local",
		"Timezone setting (e.g., Asia/Shanghai, UTC)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"Enable debug mode")

	rootCmd.Flags().IntVar(&trendDays, "days", constants.DefaultTrendDays,
		"Number of days in the usage trend")
}

// initRuntime configures logging and the process-wide time provider. Every
// command calls it before touching data.
func initRuntime() error {
	logLevel := "info"
	if debug {
		logLevel = "debug"
	}
	logFile := expandPath(defaultLogFile)
	if err := ensureDir(filepath.Dir(logFile)); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}
	util.InitLogger(logLevel, logFile, debug)
	return util.InitializeTimeProvider(timezone)
}

// openStore opens the limits/alerts database, creating its directory on
// first use.
func openStore() (*store.Store, error) {
	db := dbPath
	if db != ":memory:" {
		db = expandPath(db)
		if err := ensureDir(filepath.Dir(db)); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}
	st, err := store.New(db)
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	return st, nil
}

// buildEngine wires the store, registry, event source and aggregator into a
// monitor engine. The caller closes the returned store.
func buildEngine() (*monitor.Engine, *store.Store, error) {
	st, err := openStore()
	if err != nil {
		return nil, nil, err
	}

	limits, err := st.LoadLimits()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("failed to load limits: %w", err)
	}
	alerts, err := st.LoadAlerts()
	if err != nil {
		st.Close()
		return nil, nil, fmt.Errorf("failed to load alerts: %w", err)
	}

	var packages classify.PackageRegistry = registry.Permissive{}
	if registryPath != "" {
		reg, err := registry.Load(expandPath(registryPath))
		if err != nil {
			st.Close()
			return nil, nil, fmt.Errorf("failed to load package registry: %w", err)
		}
		packages = reg
	}

	src := source.NewFileSource(expandPath(dataDir))
	aggregator := window.NewAggregator(src, classify.NewClassifier(packages))
	ledger := alert.NewLedger(limits, alerts)
	return monitor.NewEngine(aggregator, ledger), st, nil
}

func runTrend(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	engine, st, err := buildEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	trend, err := engine.Trend(trendDays)
	if err != nil {
		if errors.Is(err, model.ErrUnavailable) {
			return fmt.Errorf("no usage data under %s: %w", expandPath(dataDir), err)
		}
		return err
	}

	f, err := formatter.NewFormatter(outputFormat)
	if err != nil {
		return err
	}
	return f.Format(formatter.Report{Trend: trend})
}

func Execute() error {
	return rootCmd.Execute()
}

// Helper functions

func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path[2:])
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return absPath
}

func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0755)
}
