package formatter

import (
	"fmt"
	"strings"

	"github.com/penwyp/go-focus-monitor/internal/util"
)

// SummaryFormatter renders a human-readable overview instead of a table.
type SummaryFormatter struct{}

func NewSummaryFormatter() *SummaryFormatter {
	return &SummaryFormatter{}
}

func (f *SummaryFormatter) Format(report Report) error {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println("Focus Monitor Usage Summary")
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println()

	if len(report.Trend) > 0 {
		first := report.Trend[0].Label
		last := report.Trend[len(report.Trend)-1].Label
		if first == last {
			fmt.Printf("Date Range: %s\n", first)
		} else {
			fmt.Printf("Date Range: %s to %s\n", first, last)
		}
		fmt.Println()
	}

	hasSections := report.Metrics != nil || report.Snapshot != nil || report.Alerts != nil
	if len(report.Trend) == 0 && !hasSections {
		fmt.Println("No usage data to summarize")
	} else if len(report.Trend) > 0 {
		var totalMinutes, peakMinutes int
		peakLabel := report.Trend[0].Label
		for _, day := range report.Trend {
			totalMinutes += day.Minutes
			if day.Minutes > peakMinutes {
				peakMinutes = day.Minutes
				peakLabel = day.Label
			}
		}
		avgMinutes := totalMinutes / len(report.Trend)

		fmt.Printf("Days:          %d\n", len(report.Trend))
		fmt.Printf("Total usage:   %s\n", util.FormatMinutes(totalMinutes))
		fmt.Printf("Daily average: %s\n", util.FormatMinutes(avgMinutes))
		fmt.Printf("Peak day:      %s (%s)\n", peakLabel, util.FormatMinutes(peakMinutes))
	}

	if report.Metrics != nil {
		fmt.Println()
		printMetrics(*report.Metrics)
	}
	if report.Snapshot != nil {
		fmt.Println()
		printSnapshot(*report.Snapshot)
	}
	if report.Alerts != nil {
		fmt.Println()
		printAlerts(report.Alerts)
	}

	fmt.Println()
	fmt.Println(strings.Repeat("=", 60))
	return nil
}
