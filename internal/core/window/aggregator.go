package window

import (
	"fmt"
	"sort"
	"time"

	"github.com/penwyp/go-focus-monitor/internal/core/classify"
	"github.com/penwyp/go-focus-monitor/internal/core/constants"
	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/core/score"
	"github.com/penwyp/go-focus-monitor/internal/core/session"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

// EventSource supplies the raw lifecycle event stream for a window, plus
// the package-independent switch count (resumed events in the raw stream).
// Implementations return model.ErrUnavailable when the underlying data
// cannot be queried at all.
type EventSource interface {
	Events(start, end int64) ([]model.RawEvent, error)
	SwitchCount(start, end int64) (int, error)
}

// Aggregator answers windowed usage queries by reconstructing sessions once
// per window and deriving everything downstream from that single aggregate.
type Aggregator struct {
	source     EventSource
	classifier *classify.Classifier
	now        func() int64
}

func NewAggregator(source EventSource, classifier *classify.Classifier) *Aggregator {
	return &Aggregator{
		source:     source,
		classifier: classifier,
		now:        func() int64 { return time.Now().UnixMilli() },
	}
}

// SetClock overrides the clock, for tests and replay.
func (a *Aggregator) SetClock(now func() int64) {
	a.now = now
}

// NowMillis returns the aggregator's current time. Callers deriving "so
// far today" windows use it so every query shares one clock.
func (a *Aggregator) NowMillis() int64 {
	return a.now()
}

// UsageOverWindow reconstructs per-package usage over [start, end) and
// drops packages the classifier rejects.
func (a *Aggregator) UsageOverWindow(start, end int64) (model.AggregatedUsage, error) {
	w := model.Window{Start: start, End: end}
	if !w.Valid() {
		return model.AggregatedUsage{}, fmt.Errorf("invalid query window [%d, %d)", start, end)
	}

	events, err := a.source.Events(start, end)
	if err != nil {
		return model.AggregatedUsage{}, fmt.Errorf("query events for [%d, %d): %w", start, end, err)
	}

	usage := session.Reconstruct(events, w)
	for pkg := range usage.Durations {
		if !a.classifier.IsTrackable(pkg) {
			delete(usage.Durations, pkg)
		}
	}
	if usage.Discarded > 0 {
		util.LogDebugf("Reconstruction skipped %d malformed intervals in [%d, %d)", usage.Discarded, start, end)
	}
	return usage, nil
}

// DailyTrend returns one DailyUsage per day, oldest first, ending with the
// day starting at referenceDayStart. Percentages are scaled against the
// baseline (the configured limit sum, or the default when none is set).
func (a *Aggregator) DailyTrend(referenceDayStart int64, days, baselineMinutes int) ([]model.DailyUsage, error) {
	if days <= 0 {
		days = constants.DefaultTrendDays
	}
	baseline := score.Baseline(baselineMinutes)

	trend := make([]model.DailyUsage, 0, days)
	for i := days - 1; i >= 0; i-- {
		dayStart := referenceDayStart - int64(i)*constants.MillisPerDay
		usage, err := a.UsageOverWindow(dayStart, dayStart+constants.MillisPerDay)
		if err != nil {
			return nil, err
		}

		minutes := usage.TotalMinutes()
		trend = append(trend, model.DailyUsage{
			Label:   dayLabel(dayStart),
			Minutes: minutes,
			Percent: score.Percent(minutes, baseline),
		})
	}
	return trend, nil
}

// LateNightMinutes sums usage over the day's late-night sub-windows:
// midnight to 6 AM and 10 PM onward, both truncated at the current time.
// Each sub-window is converted to whole minutes before the two are added.
func (a *Aggregator) LateNightMinutes(dayStart int64) (int, error) {
	now := a.now()
	sixAM := dayStart + constants.LateNightMorningEndHour*constants.MillisPerHour
	tenPM := dayStart + constants.LateNightEveningStartHour*constants.MillisPerHour

	total := 0
	if now > dayStart {
		end := sixAM
		if now < end {
			end = now
		}
		usage, err := a.UsageOverWindow(dayStart, end)
		if err != nil {
			return 0, err
		}
		total += usage.TotalMinutes()
	}
	if now > tenPM {
		usage, err := a.UsageOverWindow(tenPM, now)
		if err != nil {
			return 0, err
		}
		total += usage.TotalMinutes()
	}
	return total, nil
}

// SwitchCount counts resumed events across the whole day so far. It reads
// the raw stream directly: switching between two tracked or untracked apps
// counts the same.
func (a *Aggregator) SwitchCount(dayStart int64) (int, error) {
	now := a.now()
	if now <= dayStart {
		return 0, nil
	}
	count, err := a.source.SwitchCount(dayStart, now)
	if err != nil {
		return 0, fmt.Errorf("query switch count: %w", err)
	}
	return count, nil
}

// Snapshot builds the analytics view for the day starting at dayStart:
// total and late-night minutes, switch count, and the top-N apps by usage.
func (a *Aggregator) Snapshot(dayStart int64, topN int) (*model.AnalyticsSnapshot, error) {
	if topN <= 0 {
		topN = constants.DefaultSnapshotN
	}

	now := a.now()
	if now <= dayStart {
		return &model.AnalyticsSnapshot{TopApps: []model.AppMinutes{}}, nil
	}

	usage, err := a.UsageOverWindow(dayStart, now)
	if err != nil {
		return nil, err
	}
	lateNight, err := a.LateNightMinutes(dayStart)
	if err != nil {
		return nil, err
	}
	switches, err := a.SwitchCount(dayStart)
	if err != nil {
		return nil, err
	}

	return &model.AnalyticsSnapshot{
		TotalMinutes:     usage.TotalMinutes(),
		LateNightMinutes: lateNight,
		SwitchCount:      switches,
		TopApps:          a.topApps(usage, topN),
	}, nil
}

func (a *Aggregator) topApps(usage model.AggregatedUsage, topN int) []model.AppMinutes {
	type pkgMillis struct {
		pkg    string
		millis int64
	}
	ranked := make([]pkgMillis, 0, len(usage.Durations))
	for pkg, millis := range usage.Durations {
		ranked = append(ranked, pkgMillis{pkg: pkg, millis: millis})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].millis != ranked[j].millis {
			return ranked[i].millis > ranked[j].millis
		}
		return ranked[i].pkg < ranked[j].pkg
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	top := make([]model.AppMinutes, 0, len(ranked))
	for _, entry := range ranked {
		top = append(top, model.AppMinutes{
			Label:   a.classifier.LabelFor(entry.pkg),
			Minutes: int(entry.millis / constants.MillisPerMinute),
		})
	}
	return top
}

// dayLabel formats the local calendar date of the day window's start as
// "day/month", without zero padding.
func dayLabel(dayStart int64) string {
	t := time.UnixMilli(dayStart).In(util.GetTimeProvider().Location())
	return fmt.Sprintf("%d/%d", t.Day(), int(t.Month()))
}
