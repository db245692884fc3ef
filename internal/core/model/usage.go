package model

// Window is a half-open time interval [Start, End) in Unix milliseconds.
type Window struct {
	Start int64
	End   int64
}

// Duration returns the window length in milliseconds.
func (w Window) Duration() int64 {
	return w.End - w.Start
}

// Valid reports whether the window is well-formed (End after Start).
func (w Window) Valid() bool {
	return w.End > w.Start
}

// Contains reports whether the timestamp falls inside the window.
func (w Window) Contains(ts int64) bool {
	return ts >= w.Start && ts < w.End
}

// AggregatedUsage maps package names to foreground milliseconds accumulated
// over exactly one query window. It is constructed fresh per query and
// immutable once returned. Discarded counts malformed intervals that were
// skipped during reconstruction, kept for diagnostics.
type AggregatedUsage struct {
	Window    Window
	Durations map[string]int64
	Discarded int
}

// TotalMillis returns the sum of all per-package durations.
func (u AggregatedUsage) TotalMillis() int64 {
	var total int64
	for _, d := range u.Durations {
		total += d
	}
	return total
}

// TotalMinutes returns the summed usage converted to whole minutes.
func (u AggregatedUsage) TotalMinutes() int {
	return int(u.TotalMillis() / 60000)
}

// AppLimit is a user-configured daily limit for one package. The JSON field
// names match the records persisted by existing installations and must not
// change.
type AppLimit struct {
	PackageName         string `json:"packageName"`
	Label               string `json:"label"`
	UsageLimitInMinutes int    `json:"usageLimitInMinutes"`
	TimeUsedInMinutes   int    `json:"timeUsedInMinutes"`
}

// DailyUsage is one day's entry in a usage trend, labeled with its local
// calendar date as "day/month".
type DailyUsage struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
	Percent int    `json:"percent"`
}

// AddictionMetrics is the composite scoring output. Every field is an
// integer clamped to [0,100]. Recomputed on demand, never mutated in place.
type AddictionMetrics struct {
	ScorePercent     int `json:"scorePercent"`
	ScrollingPercent int `json:"scrollingPercent"`
	LateNightPercent int `json:"lateNightPercent"`
	SwitchingPercent int `json:"switchingPercent"`
	MoodDropPercent  int `json:"moodDropPercent"`
}

// AppMinutes pairs a display label with whole minutes of usage.
type AppMinutes struct {
	Label   string `json:"label"`
	Minutes int    `json:"minutes"`
}

// AnalyticsSnapshot is a derived, read-only view of one day's usage.
type AnalyticsSnapshot struct {
	TotalMinutes     int          `json:"totalMinutes"`
	LateNightMinutes int          `json:"lateNightMinutes"`
	SwitchCount      int          `json:"switchCount"`
	TopApps          []AppMinutes `json:"topApps"`
}
