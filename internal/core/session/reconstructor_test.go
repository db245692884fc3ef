package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

const minute = int64(60_000)

func window(start, end int64) model.Window {
	return model.Window{Start: start, End: end}
}

func ev(pkg string, ts int64, kind model.EventKind) model.RawEvent {
	return model.RawEvent{PackageName: pkg, Timestamp: ts, Kind: kind}
}

func TestReconstructPairedSession(t *testing.T) {
	// Resumed at 09:00, paused at 09:20 inside a [09:00, 10:00) window.
	w := window(0, 60*minute)
	events := []model.RawEvent{
		ev("com.app.a", 0, model.KindResumed),
		ev("com.app.a", 20*minute, model.KindPaused),
	}

	usage := Reconstruct(events, w)

	assert.Equal(t, map[string]int64{"com.app.a": 20 * minute}, usage.Durations)
	assert.Equal(t, 0, usage.Discarded)
}

func TestReconstructZeroLengthSession(t *testing.T) {
	w := window(0, 60*minute)
	events := []model.RawEvent{
		ev("com.app.a", 5*minute, model.KindResumed),
		ev("com.app.a", 5*minute, model.KindPaused),
	}

	usage := Reconstruct(events, w)

	assert.Empty(t, usage.Durations, "zero-length sessions contribute nothing")
	assert.Equal(t, 0, usage.Discarded)
}

func TestReconstructUnmatchedCloseCountsFromWindowStart(t *testing.T) {
	w := window(0, 60*minute)
	events := []model.RawEvent{
		ev("com.app.a", 15*minute, model.KindPaused),
	}

	usage := Reconstruct(events, w)

	assert.Equal(t, map[string]int64{"com.app.a": 15 * minute}, usage.Durations)
}

func TestReconstructRedundantCloseIgnored(t *testing.T) {
	// A stopped trailing an already-counted paused must not add usage.
	w := window(0, 60*minute)
	events := []model.RawEvent{
		ev("com.app.a", 15*minute, model.KindPaused),
		ev("com.app.a", 16*minute, model.KindStopped),
	}

	usage := Reconstruct(events, w)

	assert.Equal(t, map[string]int64{"com.app.a": 15 * minute}, usage.Durations)
}

func TestReconstructOpenSessionClippedAtWindowEnd(t *testing.T) {
	w := window(0, 60*minute)
	events := []model.RawEvent{
		ev("com.app.a", 45*minute, model.KindResumed),
	}

	usage := Reconstruct(events, w)

	assert.Equal(t, map[string]int64{"com.app.a": 15 * minute}, usage.Durations)
}

func TestReconstructMostRecentResumeWins(t *testing.T) {
	// Two resumes with no close between them: the earlier open is stale.
	w := window(0, 60*minute)
	events := []model.RawEvent{
		ev("com.app.a", 5*minute, model.KindResumed),
		ev("com.app.a", 30*minute, model.KindResumed),
		ev("com.app.a", 40*minute, model.KindPaused),
	}

	usage := Reconstruct(events, w)

	assert.Equal(t, map[string]int64{"com.app.a": 10 * minute}, usage.Durations)
}

func TestReconstructIndependentPackages(t *testing.T) {
	w := window(0, 60*minute)
	events := []model.RawEvent{
		ev("com.app.a", 0, model.KindResumed),
		ev("com.app.b", 10*minute, model.KindResumed),
		ev("com.app.a", 20*minute, model.KindPaused),
		ev("com.app.b", 25*minute, model.KindStopped),
	}

	usage := Reconstruct(events, w)

	assert.Equal(t, map[string]int64{
		"com.app.a": 20 * minute,
		"com.app.b": 15 * minute,
	}, usage.Durations)
}

func TestReconstructDurationsBoundedByWindow(t *testing.T) {
	tests := []struct {
		name   string
		events []model.RawEvent
	}{
		{
			name: "close then reopen to edge",
			events: []model.RawEvent{
				ev("com.app.a", 10*minute, model.KindPaused),
				ev("com.app.a", 20*minute, model.KindResumed),
			},
		},
		{
			name: "many short sessions",
			events: []model.RawEvent{
				ev("com.app.a", 0, model.KindResumed),
				ev("com.app.a", 5*minute, model.KindPaused),
				ev("com.app.a", 10*minute, model.KindResumed),
				ev("com.app.a", 15*minute, model.KindStopped),
				ev("com.app.a", 50*minute, model.KindResumed),
			},
		},
	}

	w := window(0, 60*minute)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			usage := Reconstruct(tt.events, w)
			for pkg, d := range usage.Durations {
				assert.Positive(t, d, pkg)
				assert.LessOrEqual(t, d, w.Duration(), pkg)
			}
		})
	}
}

func TestReconstructMalformedIntervalDiscarded(t *testing.T) {
	// A close event before the window start would yield a negative
	// interval; it must be skipped and counted, not crash or go negative.
	w := window(10*minute, 60*minute)
	events := []model.RawEvent{
		ev("com.app.a", 5*minute, model.KindPaused),
	}

	usage := Reconstruct(events, w)

	assert.Empty(t, usage.Durations)
	assert.Equal(t, 1, usage.Discarded)
}

func TestReconstructInvalidWindow(t *testing.T) {
	usage := Reconstruct([]model.RawEvent{ev("com.app.a", 0, model.KindResumed)}, window(10, 10))

	assert.Empty(t, usage.Durations)
	assert.Equal(t, 1, usage.Discarded)
}
