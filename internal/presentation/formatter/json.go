package formatter

import (
	"encoding/json"
	"os"
)

type JSONFormatter struct{}

func NewJSONFormatter() *JSONFormatter {
	return &JSONFormatter{}
}

// jsonReport is the wire shape of a report. Optional sections are omitted
// instead of rendered as null.
type jsonReport struct {
	Trend    interface{} `json:"trend"`
	Metrics  interface{} `json:"metrics,omitempty"`
	Snapshot interface{} `json:"snapshot,omitempty"`
	Alerts   interface{} `json:"alerts,omitempty"`
}

func (f *JSONFormatter) Format(report Report) error {
	out := jsonReport{Trend: report.Trend}
	if report.Metrics != nil {
		out.Metrics = report.Metrics
	}
	if report.Snapshot != nil {
		out.Snapshot = report.Snapshot
	}
	if report.Alerts != nil {
		out.Alerts = report.Alerts
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}
