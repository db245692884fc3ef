package alert

import (
	"fmt"
	"strings"
	"time"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

// Deduplicator raises alerts against a ledger while guaranteeing at most
// one alert per (type, app, calendar day).
type Deduplicator struct {
	ledger *Ledger
	now    func() time.Time
}

func NewDeduplicator(ledger *Ledger) *Deduplicator {
	return &Deduplicator{
		ledger: ledger,
		now:    func() time.Time { return util.GetTimeProvider().Now() },
	}
}

// SetClock overrides the clock, for tests.
func (d *Deduplicator) SetClock(now func() time.Time) {
	d.now = now
}

// RaiseIfMissing inserts a new alert unless an equivalent one already
// exists for the current calendar day. It returns the new alert for the
// caller to persist, or nil when the alert was suppressed.
func (d *Deduplicator) RaiseIfMissing(alertType, appLabel, message string) *model.SmartAlert {
	now := d.now()
	key := alertKey(alertType, appLabel, now)

	d.ledger.mu.Lock()
	defer d.ledger.mu.Unlock()

	if d.ledger.hasAlert(key) {
		return nil
	}

	raised := model.SmartAlert{
		Id:        key,
		Type:      alertType,
		Message:   message,
		Timestamp: now.UnixMilli(),
		AppLabel:  appLabel,
	}
	d.ledger.prependAlert(raised)
	return &raised
}

// alertKey builds the deduplication id: type, app label (or "global"), and
// the local calendar day. The day key concatenates unpadded year, month and
// day, which is what existing persisted alert ids use.
func alertKey(alertType, appLabel string, now time.Time) string {
	scope := appLabel
	if scope == "" {
		scope = "global"
	}
	dayKey := fmt.Sprintf("%d%d%d", now.Year(), int(now.Month()), now.Day())
	return strings.Join([]string{alertType, scope, dayKey}, "_")
}
