package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-focus-monitor/internal/core/classify"
	"github.com/penwyp/go-focus-monitor/internal/core/constants"
	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

type fakeSource struct {
	events []model.RawEvent
	err    error
}

func (s *fakeSource) Events(start, end int64) ([]model.RawEvent, error) {
	if s.err != nil {
		return nil, s.err
	}
	var out []model.RawEvent
	for _, ev := range s.events {
		if ev.Timestamp >= start && ev.Timestamp < end {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (s *fakeSource) SwitchCount(start, end int64) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	count := 0
	for _, ev := range s.events {
		if ev.Kind == model.KindResumed && ev.Timestamp >= start && ev.Timestamp < end {
			count++
		}
	}
	return count, nil
}

type openRegistry struct {
	home   map[string]bool
	labels map[string]string
}

func (r *openRegistry) IsLaunchable(pkg string) (bool, error) { return true, nil }
func (r *openRegistry) IsHomeLauncher(pkg string) (bool, error) {
	return r.home[pkg], nil
}
func (r *openRegistry) Label(pkg string) (string, error) {
	return r.labels[pkg], nil
}

func newTestAggregator(source *fakeSource, nowMillis int64) *Aggregator {
	agg := NewAggregator(source, classify.NewClassifier(&openRegistry{
		home:   map[string]bool{"com.android.launcher": true},
		labels: map[string]string{"com.app.a": "Alpha", "com.app.b": "Beta"},
	}))
	agg.SetClock(func() int64 { return nowMillis })
	return agg
}

const minute = constants.MillisPerMinute

func TestUsageOverWindow(t *testing.T) {
	source := &fakeSource{events: []model.RawEvent{
		{PackageName: "com.app.a", Timestamp: 0, Kind: model.KindResumed},
		{PackageName: "com.app.a", Timestamp: 20 * minute, Kind: model.KindPaused},
		{PackageName: "com.android.launcher", Timestamp: 20 * minute, Kind: model.KindResumed},
		{PackageName: "com.android.launcher", Timestamp: 30 * minute, Kind: model.KindPaused},
	}}
	agg := newTestAggregator(source, 60*minute)

	usage, err := agg.UsageOverWindow(0, 60*minute)

	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"com.app.a": 20 * minute}, usage.Durations,
		"launcher usage must be excluded")
}

func TestUsageOverWindowInvalidWindow(t *testing.T) {
	agg := newTestAggregator(&fakeSource{}, 0)

	_, err := agg.UsageOverWindow(100, 100)

	assert.Error(t, err)
}

func TestUsageOverWindowUnavailable(t *testing.T) {
	agg := newTestAggregator(&fakeSource{err: model.ErrUnavailable}, 0)

	_, err := agg.UsageOverWindow(0, 60*minute)

	assert.ErrorIs(t, err, model.ErrUnavailable)
}

func TestDailyTrend(t *testing.T) {
	day := constants.MillisPerDay
	refDay := 10 * day
	source := &fakeSource{events: []model.RawEvent{
		// 90 minutes on the reference day.
		{PackageName: "com.app.a", Timestamp: refDay + 60*minute, Kind: model.KindResumed},
		{PackageName: "com.app.a", Timestamp: refDay + 150*minute, Kind: model.KindPaused},
		// 45 minutes two days earlier.
		{PackageName: "com.app.b", Timestamp: refDay - 2*day, Kind: model.KindResumed},
		{PackageName: "com.app.b", Timestamp: refDay - 2*day + 45*minute, Kind: model.KindStopped},
	}}
	agg := newTestAggregator(source, refDay+12*60*minute)

	trend, err := agg.DailyTrend(refDay, 7, 180)

	require.NoError(t, err)
	require.Len(t, trend, 7)
	assert.Equal(t, 45, trend[4].Minutes)
	assert.Equal(t, 25, trend[4].Percent)
	assert.Equal(t, 90, trend[6].Minutes, "reference day comes last")
	assert.Equal(t, 50, trend[6].Percent)
	for _, dayUsage := range trend {
		assert.GreaterOrEqual(t, dayUsage.Percent, 0)
		assert.LessOrEqual(t, dayUsage.Percent, 100)
		assert.NotEmpty(t, dayUsage.Label)
	}
}

func TestLateNightMinutes(t *testing.T) {
	hour := constants.MillisPerHour
	dayStart := int64(0)
	source := &fakeSource{events: []model.RawEvent{
		// 01:00-02:30: late-night morning window.
		{PackageName: "com.app.a", Timestamp: dayStart + hour, Kind: model.KindResumed},
		{PackageName: "com.app.a", Timestamp: dayStart + 2*hour + 30*minute, Kind: model.KindPaused},
		// 12:00-13:00: daytime, must not count.
		{PackageName: "com.app.a", Timestamp: dayStart + 12*hour, Kind: model.KindResumed},
		{PackageName: "com.app.a", Timestamp: dayStart + 13*hour, Kind: model.KindPaused},
		// 22:30-23:00: late-night evening window.
		{PackageName: "com.app.b", Timestamp: dayStart + 22*hour + 30*minute, Kind: model.KindResumed},
		{PackageName: "com.app.b", Timestamp: dayStart + 23*hour, Kind: model.KindStopped},
	}}
	agg := newTestAggregator(source, dayStart+23*hour+30*minute)

	lateNight, err := agg.LateNightMinutes(dayStart)

	require.NoError(t, err)
	assert.Equal(t, 90+30, lateNight)
}

func TestLateNightMinutesBeforeEvening(t *testing.T) {
	hour := constants.MillisPerHour
	source := &fakeSource{events: []model.RawEvent{
		{PackageName: "com.app.a", Timestamp: hour, Kind: model.KindResumed},
		{PackageName: "com.app.a", Timestamp: 2 * hour, Kind: model.KindPaused},
	}}
	// Mid-afternoon: only the morning sub-window can contribute.
	agg := newTestAggregator(source, 15*hour)

	lateNight, err := agg.LateNightMinutes(0)

	require.NoError(t, err)
	assert.Equal(t, 60, lateNight)
}

func TestSwitchCountCountsRawResumes(t *testing.T) {
	source := &fakeSource{events: []model.RawEvent{
		{PackageName: "com.app.a", Timestamp: minute, Kind: model.KindResumed},
		{PackageName: "com.android.launcher", Timestamp: 2 * minute, Kind: model.KindResumed},
		{PackageName: "com.app.a", Timestamp: 3 * minute, Kind: model.KindPaused},
		{PackageName: "com.app.b", Timestamp: 4 * minute, Kind: model.KindResumed},
	}}
	agg := newTestAggregator(source, 10*minute)

	count, err := agg.SwitchCount(0)

	require.NoError(t, err)
	assert.Equal(t, 3, count, "switch count is package-independent and unclassified")
}

func TestSnapshot(t *testing.T) {
	hour := constants.MillisPerHour
	source := &fakeSource{events: []model.RawEvent{
		{PackageName: "com.app.a", Timestamp: 10 * hour, Kind: model.KindResumed},
		{PackageName: "com.app.a", Timestamp: 12 * hour, Kind: model.KindPaused},
		{PackageName: "com.app.b", Timestamp: 12 * hour, Kind: model.KindResumed},
		{PackageName: "com.app.b", Timestamp: 12*hour + 30*minute, Kind: model.KindStopped},
	}}
	agg := newTestAggregator(source, 13*hour)

	snapshot, err := agg.Snapshot(0, 5)

	require.NoError(t, err)
	assert.Equal(t, 150, snapshot.TotalMinutes)
	assert.Equal(t, 0, snapshot.LateNightMinutes)
	assert.Equal(t, 2, snapshot.SwitchCount)
	require.Len(t, snapshot.TopApps, 2)
	assert.Equal(t, model.AppMinutes{Label: "Alpha", Minutes: 120}, snapshot.TopApps[0])
	assert.Equal(t, model.AppMinutes{Label: "Beta", Minutes: 30}, snapshot.TopApps[1])
}

func TestSnapshotTopNTruncates(t *testing.T) {
	source := &fakeSource{events: []model.RawEvent{
		{PackageName: "com.app.a", Timestamp: 0, Kind: model.KindResumed},
		{PackageName: "com.app.a", Timestamp: 30 * minute, Kind: model.KindPaused},
		{PackageName: "com.app.b", Timestamp: 30 * minute, Kind: model.KindResumed},
		{PackageName: "com.app.b", Timestamp: 50 * minute, Kind: model.KindPaused},
		{PackageName: "com.app.c", Timestamp: 50 * minute, Kind: model.KindResumed},
		{PackageName: "com.app.c", Timestamp: 55 * minute, Kind: model.KindPaused},
	}}
	agg := newTestAggregator(source, 60*minute)

	snapshot, err := agg.Snapshot(0, 2)

	require.NoError(t, err)
	require.Len(t, snapshot.TopApps, 2)
	assert.Equal(t, 30, snapshot.TopApps[0].Minutes)
	assert.Equal(t, 20, snapshot.TopApps[1].Minutes)
}

func TestSnapshotBeforeDayStart(t *testing.T) {
	agg := newTestAggregator(&fakeSource{}, 0)

	snapshot, err := agg.Snapshot(10*minute, 5)

	require.NoError(t, err)
	assert.Equal(t, 0, snapshot.TotalMinutes)
	assert.Empty(t, snapshot.TopApps)
}
