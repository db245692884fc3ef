package alert

import (
	"sync"

	"github.com/penwyp/go-focus-monitor/internal/core/constants"
	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

// Ledger owns the limits and alerts collections as one aggregate. The
// engine treats it as single-writer state: insert-then-persist is not
// atomic across calls, so all mutation goes through the ledger's mutex and
// concurrent callers must still serialize persistence themselves.
type Ledger struct {
	mu     sync.Mutex
	limits []model.AppLimit
	alerts []model.SmartAlert
}

// NewLedger builds a ledger around collections loaded from the durable
// store. Both slices are copied; the caller keeps ownership of its inputs.
func NewLedger(limits []model.AppLimit, alerts []model.SmartAlert) *Ledger {
	l := &Ledger{
		limits: make([]model.AppLimit, len(limits)),
		alerts: make([]model.SmartAlert, len(alerts)),
	}
	copy(l.limits, limits)
	copy(l.alerts, alerts)
	return l
}

// Limits returns a copy of the limit collection.
func (l *Ledger) Limits() []model.AppLimit {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.AppLimit, len(l.limits))
	copy(out, l.limits)
	return out
}

// Alerts returns a copy of the alert collection, most recent first.
func (l *Ledger) Alerts() []model.SmartAlert {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]model.SmartAlert, len(l.alerts))
	copy(out, l.alerts)
	return out
}

// LimitSumMinutes sums the configured daily limits, the raw input to the
// scoring baseline.
func (l *Ledger) LimitSumMinutes() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	sum := 0
	for _, limit := range l.limits {
		sum += limit.UsageLimitInMinutes
	}
	return sum
}

// ApplyUsage writes today's observed minutes back onto each configured
// limit. Packages without usage in the window reset to zero.
func (l *Ledger) ApplyUsage(usage model.AggregatedUsage) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for i := range l.limits {
		millis := usage.Durations[l.limits[i].PackageName]
		l.limits[i].TimeUsedInMinutes = int(millis / constants.MillisPerMinute)
	}
}

// ExceededLimits returns the limits whose configured ceiling is positive
// and currently exceeded.
func (l *Ledger) ExceededLimits() []model.AppLimit {
	l.mu.Lock()
	defer l.mu.Unlock()
	var exceeded []model.AppLimit
	for _, limit := range l.limits {
		if limit.UsageLimitInMinutes > 0 && limit.TimeUsedInMinutes > limit.UsageLimitInMinutes {
			exceeded = append(exceeded, limit)
		}
	}
	return exceeded
}

// HasLimits reports whether any limits are configured.
func (l *Ledger) HasLimits() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.limits) > 0
}

// hasAlert reports whether an alert with the id already exists. Callers
// hold the mutex.
func (l *Ledger) hasAlert(id string) bool {
	for _, a := range l.alerts {
		if a.Id == id {
			return true
		}
	}
	return false
}

// prependAlert inserts the alert at the front so the collection stays
// ordered most recent first. Callers hold the mutex.
func (l *Ledger) prependAlert(a model.SmartAlert) {
	l.alerts = append([]model.SmartAlert{a}, l.alerts...)
}
