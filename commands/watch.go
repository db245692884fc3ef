package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/penwyp/go-focus-monitor/internal/application/monitor"
	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/data/source"
	"github.com/penwyp/go-focus-monitor/internal/presentation/display"
	"github.com/penwyp/go-focus-monitor/internal/presentation/formatter"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

var watchCmd = &cobra.Command{
	Use:    "watch",
	Short:  "Re-render the trend report when event files change",
	Hidden: true,
	RunE:   runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if err := initRuntime(); err != nil {
		return err
	}
	engine, st, err := buildEngine()
	if err != nil {
		return err
	}
	defer st.Close()

	watcher, err := source.NewWatcher([]string{expandPath(dataDir)})
	if err != nil {
		return err
	}
	defer watcher.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderWatchView(engine)

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events():
			if !ok {
				return nil
			}
			util.LogDebugf("File event: %s %s", event.Operation, event.Path)
			drainEvents(watcher, 250*time.Millisecond)
			renderWatchView(engine)
		}
	}
}

// drainEvents swallows the burst of notifications a single log append tends
// to produce, so one change means one re-render.
func drainEvents(watcher *source.Watcher, window time.Duration) {
	timer := time.NewTimer(window)
	defer timer.Stop()
	for {
		select {
		case <-timer.C:
			return
		case _, ok := <-watcher.Events():
			if !ok {
				return
			}
		}
	}
}

func renderWatchView(engine *monitor.Engine) {
	if display.IsInteractive() {
		display.ClearScreen()
	}

	trend, err := engine.Trend(trendDays)
	if err != nil {
		if errors.Is(err, model.ErrUnavailable) {
			util.LogWarn("Usage data unavailable, waiting for events")
			return
		}
		util.LogErrorf("Trend computation failed: %v", err)
		return
	}

	f := formatter.NewTableFormatter()
	if err := f.Format(formatter.Report{Trend: trend}); err != nil {
		util.LogErrorf("Render failed: %v", err)
	}
}
