package score

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name  string
		value int
		max   int
		want  int
	}{
		{name: "zero of positive max", value: 0, max: 100, want: 0},
		{name: "half", value: 45, max: 90, want: 50},
		{name: "truncates", value: 1, max: 3, want: 33},
		{name: "saturates at 100", value: 500, max: 100, want: 100},
		{name: "zero max", value: 50, max: 0, want: 0},
		{name: "negative max", value: 50, max: -10, want: 0},
		{name: "negative value clamps to zero", value: -5, max: 100, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.value, tt.max))
		})
	}
}

func TestPercentMonotonic(t *testing.T) {
	prev := 0
	for v := 0; v <= 300; v++ {
		p := Percent(v, 120)
		assert.GreaterOrEqual(t, p, prev)
		assert.LessOrEqual(t, p, 100)
		prev = p
	}
}

func TestBaseline(t *testing.T) {
	assert.Equal(t, 240, Baseline(240))
	assert.Equal(t, 180, Baseline(0), "default when no limits configured")
	assert.Equal(t, 180, Baseline(-5))
}

func TestComputeUsageOnly(t *testing.T) {
	// 270 minutes against a 180-minute baseline: ratio 1.5, usage score 75,
	// composite 75*0.6 = 45.
	metrics := NewCalculator().Compute(270, 0, 0, 180)

	assert.Equal(t, 45, metrics.ScorePercent)
	assert.Equal(t, 100, metrics.ScrollingPercent, "scrolling saturates at 1x baseline")
	assert.Equal(t, 0, metrics.LateNightPercent)
	assert.Equal(t, 0, metrics.SwitchingPercent)
	assert.Equal(t, 0, metrics.MoodDropPercent)
}

func TestComputeSaturatesAtTwiceBaseline(t *testing.T) {
	metrics := NewCalculator().Compute(1000, 0, 0, 180)

	assert.Equal(t, 60, metrics.ScorePercent, "usage score caps at 100, weighted 0.6")
}

func TestComputeAllComponents(t *testing.T) {
	// lateNight 45/90 = 50%, switching 60/120 = 50%,
	// moodDrop = 50*0.6 + 50*0.4 = 50,
	// usage 90/180 ratio 0.5 -> score 25,
	// composite = 25*0.6 + 50*0.2 + 50*0.15 + 50*0.05 = 35.
	metrics := NewCalculator().Compute(90, 45, 60, 180)

	assert.Equal(t, 50, metrics.LateNightPercent)
	assert.Equal(t, 50, metrics.SwitchingPercent)
	assert.Equal(t, 50, metrics.MoodDropPercent)
	assert.Equal(t, 35, metrics.ScorePercent)
}

func TestComputeDefaultBaseline(t *testing.T) {
	// No limits configured: baseline falls back to 180 minutes.
	metrics := NewCalculator().Compute(90, 0, 0, 0)

	assert.Equal(t, 50, metrics.ScrollingPercent)
}

func TestComputeClampedFields(t *testing.T) {
	metrics := NewCalculator().Compute(100000, 100000, 100000, 1)

	for _, v := range []int{
		metrics.ScorePercent,
		metrics.ScrollingPercent,
		metrics.LateNightPercent,
		metrics.SwitchingPercent,
		metrics.MoodDropPercent,
	} {
		assert.GreaterOrEqual(t, v, 0)
		assert.LessOrEqual(t, v, 100)
	}
}
