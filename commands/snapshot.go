package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-focus-monitor/internal/core/constants"
	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/presentation/formatter"
)

var snapshotTopN int

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Show today's analytics snapshot",
	Long: `Shows today's total usage, late-night minutes, app switch count and
the top apps by foreground time.`,
	RunE: runSnapshot,
}

func init() {
	rootCmd.AddCommand(snapshotCmd)

	snapshotCmd.Flags().IntVar(&snapshotTopN, "top", constants.DefaultSnapshotN,
		"Number of top apps to include")
}

func runSnapshot(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	engine, st, err := buildEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	snapshot, err := engine.Snapshot(snapshotTopN)
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
	return f.Format(formatter.Report{Snapshot: snapshot})
}
