package formatter

import (
	"fmt"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

// Report bundles everything a command may want to render. Only Trend is
// always populated; the other sections are nil when the command did not
// request them.
type Report struct {
	Trend    []model.DailyUsage
	Metrics  *model.AddictionMetrics
	Snapshot *model.AnalyticsSnapshot
	Alerts   []model.SmartAlert
}

type Formatter interface {
	Format(report Report) error
}

// NewFormatter resolves an output format name to its formatter.
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "table":
		return NewTableFormatter(), nil
	case "json":
		return NewJSONFormatter(), nil
	case "csv":
		return NewCSVFormatter(), nil
	case "summary":
		return NewSummaryFormatter(), nil
	default:
		return nil, fmt.Errorf("unsupported output format: %s", format)
	}
}
