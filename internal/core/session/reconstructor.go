package session

import (
	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

// Reconstruct turns a time-ordered stream of lifecycle events, already
// restricted to the window, into per-package foreground durations.
//
// Reconciliation policy, per package:
//   - resumed opens a session; a second resumed with no intervening close
//     replaces the earlier open timestamp (most recent resume wins, the
//     stale open is discarded).
//   - paused/stopped closes the open session when one exists. The first
//     close with no open and no prior contribution is taken as the tail of
//     a session that began before the window, so it is counted from the
//     window start. Further closes with no open are redundant (a stopped
//     trailing an already-counted paused) and ignored.
//   - sessions still open after the last event are clipped at the window
//     end.
//
// Zero and negative computed intervals never contribute; negative ones are
// counted in Discarded so callers can surface them.
func Reconstruct(events []model.RawEvent, window model.Window) model.AggregatedUsage {
	usage := model.AggregatedUsage{
		Window:    window,
		Durations: make(map[string]int64),
	}
	if !window.Valid() {
		usage.Discarded++
		return usage
	}

	openStarts := make(map[string]int64)
	seen := make(map[string]bool)

	for _, ev := range events {
		switch {
		case ev.Kind == model.KindResumed:
			openStarts[ev.PackageName] = ev.Timestamp

		case ev.Kind.IsClose():
			if start, ok := openStarts[ev.PackageName]; ok {
				delete(openStarts, ev.PackageName)
				usage.Discarded += accumulate(usage.Durations, ev.PackageName, ev.Timestamp-start)
				seen[ev.PackageName] = true
				continue
			}
			if seen[ev.PackageName] {
				// Redundant close for a session already accounted for.
				continue
			}
			// Close with no matching open: session straddles the window
			// start, count from there.
			usage.Discarded += accumulate(usage.Durations, ev.PackageName, ev.Timestamp-window.Start)
			seen[ev.PackageName] = true
		}
	}

	// Sessions still open at the end of the stream run to the window edge.
	for pkg, start := range openStarts {
		usage.Discarded += accumulate(usage.Durations, pkg, window.End-start)
	}

	return usage
}

// accumulate adds a computed interval to the running total for pkg and
// returns the number of intervals discarded as malformed (negative).
func accumulate(durations map[string]int64, pkg string, millis int64) int {
	if millis < 0 {
		return 1
	}
	if millis == 0 {
		return 0
	}
	durations[pkg] += millis
	return 0
}
