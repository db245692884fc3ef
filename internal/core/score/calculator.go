package score

import (
	"github.com/penwyp/go-focus-monitor/internal/core/constants"
	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

// Percent scales value against max into an integer percentage clamped to
// [0,100]. A non-positive max always yields 0.
func Percent(value, max int) int {
	if max <= 0 {
		return 0
	}
	return clamp(int(float64(value) / float64(max) * 100))
}

func clamp(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// Baseline returns the daily-minute ceiling usage is normalized against:
// the configured limit sum when positive, otherwise the default.
func Baseline(limitSumMinutes int) int {
	if limitSumMinutes > 0 {
		return limitSumMinutes
	}
	return constants.DefaultBaselineMinutes
}

// Calculator derives the composite addiction metrics from one day's
// aggregated numbers. All conversions truncate toward zero before clamping,
// matching the persisted scoring history.
type Calculator struct{}

func NewCalculator() *Calculator {
	return &Calculator{}
}

// Compute combines total usage, late-night usage and app switching into the
// five metric percentages.
//
// The usage component saturates at twice the baseline (a 2x overshoot maps
// to 100) while scrollingPercent saturates at the baseline itself; both
// ceilings are carried over from the original scoring scheme as-is.
func (c *Calculator) Compute(totalMinutes, lateNightMinutes, switchCount, limitSumMinutes int) model.AddictionMetrics {
	baseline := Baseline(limitSumMinutes)

	scrolling := Percent(totalMinutes, baseline)
	lateNight := Percent(lateNightMinutes, constants.LateNightCeilingMinutes)
	switching := Percent(switchCount, constants.SwitchCountCeiling)
	moodDrop := clamp(int(float64(lateNight)*0.6 + float64(switching)*0.4))

	usageRatio := float64(totalMinutes) / float64(baseline)
	if usageRatio < 0 {
		usageRatio = 0
	}
	if usageRatio > 2 {
		usageRatio = 2
	}
	usageScore := int(usageRatio * 50)

	composite := clamp(int(
		float64(usageScore)*0.6 +
			float64(lateNight)*0.2 +
			float64(switching)*0.15 +
			float64(moodDrop)*0.05))

	return model.AddictionMetrics{
		ScorePercent:     composite,
		ScrollingPercent: scrolling,
		LateNightPercent: lateNight,
		SwitchingPercent: switching,
		MoodDropPercent:  moodDrop,
	}
}
