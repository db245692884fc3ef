package monitor

import (
	"errors"
	"fmt"

	"github.com/penwyp/go-focus-monitor/internal/core/alert"
	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/core/score"
	"github.com/penwyp/go-focus-monitor/internal/core/window"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

// Engine ties the window aggregator, the score calculator and the alert
// ledger together into the caller-facing operations. It holds no state of
// its own beyond the ledger it was given; every query recomputes from the
// event source.
type Engine struct {
	aggregator *window.Aggregator
	calculator *score.Calculator
	ledger     *alert.Ledger
	dedup      *alert.Deduplicator
}

func NewEngine(aggregator *window.Aggregator, ledger *alert.Ledger) *Engine {
	return &Engine{
		aggregator: aggregator,
		calculator: score.NewCalculator(),
		ledger:     ledger,
		dedup:      alert.NewDeduplicator(ledger),
	}
}

// Ledger exposes the owned limits/alerts aggregate for persistence.
func (e *Engine) Ledger() *alert.Ledger {
	return e.ledger
}

// Deduplicator exposes the alert deduplicator for callers raising their
// own alert types.
func (e *Engine) Deduplicator() *alert.Deduplicator {
	return e.dedup
}

// todayWindow returns [local midnight, now). The zero-length case right at
// midnight reports ok=false.
func (e *Engine) todayWindow() (dayStart, now int64, ok bool) {
	dayStart = util.GetTimeProvider().TodayStartMillis()
	now = e.aggregator.NowMillis()
	return dayStart, now, now > dayStart
}

// ComputeAddictionMetrics derives today's composite metrics from one
// reconstruction pass. When the event source is unavailable it returns the
// error unchanged so callers can distinguish "no data" from zero usage.
func (e *Engine) ComputeAddictionMetrics() (*model.AddictionMetrics, error) {
	dayStart, now, ok := e.todayWindow()
	if !ok {
		metrics := e.calculator.Compute(0, 0, 0, e.ledger.LimitSumMinutes())
		return &metrics, nil
	}

	usage, err := e.aggregator.UsageOverWindow(dayStart, now)
	if err != nil {
		return nil, err
	}
	lateNight, err := e.aggregator.LateNightMinutes(dayStart)
	if err != nil {
		return nil, err
	}
	switches, err := e.aggregator.SwitchCount(dayStart)
	if err != nil {
		return nil, err
	}

	metrics := e.calculator.Compute(usage.TotalMinutes(), lateNight, switches, e.ledger.LimitSumMinutes())
	return &metrics, nil
}

// Trend returns the N-day usage trend ending today, scaled against the
// ledger's configured limit sum.
func (e *Engine) Trend(days int) ([]model.DailyUsage, error) {
	dayStart := util.GetTimeProvider().TodayStartMillis()
	return e.aggregator.DailyTrend(dayStart, days, e.ledger.LimitSumMinutes())
}

// Snapshot returns today's analytics snapshot.
func (e *Engine) Snapshot(topN int) (*model.AnalyticsSnapshot, error) {
	dayStart := util.GetTimeProvider().TodayStartMillis()
	return e.aggregator.Snapshot(dayStart, topN)
}

// RefreshUsage writes today's usage back onto the configured limits and
// evaluates the alert conditions: usage access missing, per-app limits
// exceeded, and no limits configured. It returns the alerts raised by this
// pass; the caller persists the ledger afterwards.
func (e *Engine) RefreshUsage() ([]model.SmartAlert, error) {
	dayStart, now, ok := e.todayWindow()
	if !ok {
		return nil, nil
	}

	usage, err := e.aggregator.UsageOverWindow(dayStart, now)
	if err != nil {
		if errors.Is(err, model.ErrUnavailable) {
			var raised []model.SmartAlert
			if a := e.dedup.RaiseIfMissing(model.AlertUsageAccess, "",
				"Usage access is required to track time used."); a != nil {
				raised = append(raised, *a)
			}
			return raised, err
		}
		return nil, err
	}

	e.ledger.ApplyUsage(usage)

	var raised []model.SmartAlert
	for _, limit := range e.ledger.ExceededLimits() {
		message := fmt.Sprintf("You exceeded your daily limit on %s.", limit.Label)
		if a := e.dedup.RaiseIfMissing(model.AlertLimitExceeded, limit.Label, message); a != nil {
			raised = append(raised, *a)
		}
	}
	if !e.ledger.HasLimits() {
		if a := e.dedup.RaiseIfMissing(model.AlertNoLimits, "",
			"Set daily limits to receive smart alerts."); a != nil {
			raised = append(raised, *a)
		}
	}

	if len(raised) > 0 {
		util.LogInfof("Raised %d new alerts", len(raised))
	}
	return raised, nil
}
