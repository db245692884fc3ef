package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/presentation/formatter"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Compute today's addiction metrics",
	Long: `Computes the composite addiction score for today from the event
stream: scrolling time against configured limits, late-night usage and
app switching frequency.`,
	RunE: runScore,
}

func init() {
	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	engine, st, err := buildEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	metrics, err := engine.ComputeAddictionMetrics()
	if err != nil {
		if errors.Is(err, model.ErrUnavailable) {
			return fmt.Errorf("usage data unavailable, score cannot be computed: %w", err)
		}
		return err
	}

	f, err := formatter.NewFormatter(outputFormat)
	if err != nil {
		return err
	}
	return f.Format(formatter.Report{Metrics: metrics})
}
