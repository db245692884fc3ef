package constants

const (
	// Millisecond spans used to carve day and late-night windows.
	MillisPerMinute = int64(60_000)
	MillisPerHour   = 60 * MillisPerMinute
	MillisPerDay    = 24 * MillisPerHour

	// Late-night sub-windows within a day: midnight to 6 AM, 10 PM to midnight.
	LateNightMorningEndHour   = 6
	LateNightEveningStartHour = 22

	// Baseline used when the user has configured no daily limits (3 hours).
	DefaultBaselineMinutes = 180

	// Reference ceilings for the scoring sub-percentages.
	LateNightCeilingMinutes = 90
	SwitchCountCeiling      = 120

	// Default number of days in a usage trend and apps in a snapshot.
	DefaultTrendDays = 7
	DefaultSnapshotN = 5
)
