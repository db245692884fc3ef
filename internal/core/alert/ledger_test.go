package alert

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

func TestLimitSumMinutes(t *testing.T) {
	ledger := NewLedger([]model.AppLimit{
		{PackageName: "com.app.a", UsageLimitInMinutes: 60},
		{PackageName: "com.app.b", UsageLimitInMinutes: 45},
	}, nil)

	assert.Equal(t, 105, ledger.LimitSumMinutes())
	assert.True(t, ledger.HasLimits())
}

func TestLimitSumMinutesEmpty(t *testing.T) {
	ledger := NewLedger(nil, nil)

	assert.Equal(t, 0, ledger.LimitSumMinutes())
	assert.False(t, ledger.HasLimits())
}

func TestApplyUsage(t *testing.T) {
	ledger := NewLedger([]model.AppLimit{
		{PackageName: "com.app.a", Label: "A", UsageLimitInMinutes: 30},
		{PackageName: "com.app.b", Label: "B", UsageLimitInMinutes: 60, TimeUsedInMinutes: 12},
	}, nil)

	ledger.ApplyUsage(model.AggregatedUsage{Durations: map[string]int64{
		"com.app.a": 45 * 60_000,
	}})

	limits := ledger.Limits()
	assert.Equal(t, 45, limits[0].TimeUsedInMinutes)
	assert.Equal(t, 0, limits[1].TimeUsedInMinutes, "no usage in window resets to zero")
}

func TestExceededLimits(t *testing.T) {
	ledger := NewLedger([]model.AppLimit{
		{PackageName: "com.app.a", Label: "A", UsageLimitInMinutes: 30, TimeUsedInMinutes: 45},
		{PackageName: "com.app.b", Label: "B", UsageLimitInMinutes: 60, TimeUsedInMinutes: 60},
		{PackageName: "com.app.c", Label: "C", UsageLimitInMinutes: 0, TimeUsedInMinutes: 500},
	}, nil)

	exceeded := ledger.ExceededLimits()

	assert.Len(t, exceeded, 1)
	assert.Equal(t, "com.app.a", exceeded[0].PackageName)
}

func TestLedgerCopiesInputs(t *testing.T) {
	limits := []model.AppLimit{{PackageName: "com.app.a"}}
	ledger := NewLedger(limits, nil)

	limits[0].PackageName = "mutated"

	assert.Equal(t, "com.app.a", ledger.Limits()[0].PackageName)
}
