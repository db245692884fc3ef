package formatter

import (
	"fmt"
	"time"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

// Shared plain-text section printers used by the table and summary
// formatters.

func printMetrics(m model.AddictionMetrics) {
	fmt.Printf("Addiction score: %s\n", util.FormatPercent(m.ScorePercent))
	fmt.Printf("  Scrolling:   %s\n", util.FormatPercent(m.ScrollingPercent))
	fmt.Printf("  Late night:  %s\n", util.FormatPercent(m.LateNightPercent))
	fmt.Printf("  Switching:   %s\n", util.FormatPercent(m.SwitchingPercent))
	fmt.Printf("  Mood drop:   %s\n", util.FormatPercent(m.MoodDropPercent))
}

func printSnapshot(s model.AnalyticsSnapshot) {
	fmt.Printf("Today: %s total, %s late night, %d app switches\n",
		util.FormatMinutes(s.TotalMinutes),
		util.FormatMinutes(s.LateNightMinutes),
		s.SwitchCount)
	if len(s.TopApps) == 0 {
		return
	}
	fmt.Println("Top apps:")
	for _, app := range s.TopApps {
		fmt.Printf("  %-24s %s\n", util.TruncateLabel(app.Label, 24), util.FormatMinutes(app.Minutes))
	}
}

func printAlerts(alerts []model.SmartAlert) {
	if len(alerts) == 0 {
		fmt.Println("No alerts")
		return
	}
	loc := util.GetTimeProvider().Location()
	for _, alert := range alerts {
		when := time.UnixMilli(alert.Timestamp).In(loc).Format("2006-01-02 15:04")
		fmt.Printf("[%s] %s  %s\n", when, alert.Type, alert.Message)
	}
}
