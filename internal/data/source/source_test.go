package source

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

func writeEventLog(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0644))
}

func TestEvents(t *testing.T) {
	dir := t.TempDir()
	writeEventLog(t, dir, "day1.jsonl",
		`{"packageName":"com.app.a","timestamp":1000,"kind":"resumed"}
{"packageName":"com.app.a","timestamp":5000,"kind":"paused"}
`)
	writeEventLog(t, dir, "day2.jsonl",
		`{"packageName":"com.app.b","timestamp":3000,"kind":"resumed"}
`)

	events, err := NewFileSource(dir).Events(0, 10000)

	require.NoError(t, err)
	require.Len(t, events, 3)
	assert.Equal(t, int64(1000), events[0].Timestamp)
	assert.Equal(t, int64(3000), events[1].Timestamp, "streams from separate files are merged in time order")
	assert.Equal(t, int64(5000), events[2].Timestamp)
}

func TestEventsWindowRestriction(t *testing.T) {
	dir := t.TempDir()
	writeEventLog(t, dir, "events.jsonl",
		`{"packageName":"com.app.a","timestamp":1000,"kind":"resumed"}
{"packageName":"com.app.a","timestamp":5000,"kind":"paused"}
{"packageName":"com.app.a","timestamp":9000,"kind":"resumed"}
`)

	events, err := NewFileSource(dir).Events(2000, 9000)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(5000), events[0].Timestamp, "window is half-open: 9000 excluded")
}

func TestEventsSkipsMalformedLines(t *testing.T) {
	dir := t.TempDir()
	writeEventLog(t, dir, "events.jsonl",
		`not json at all
{"packageName":"","timestamp":1000,"kind":"resumed"}
{"packageName":"com.app.a","timestamp":2000,"kind":"launched"}
{"packageName":"com.app.a","timestamp":3000,"kind":"resumed"}
`)

	events, err := NewFileSource(dir).Events(0, 10000)

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, int64(3000), events[0].Timestamp)
}

func TestEventsMissingDirUnavailable(t *testing.T) {
	_, err := NewFileSource(filepath.Join(t.TempDir(), "missing")).Events(0, 10000)

	assert.ErrorIs(t, err, model.ErrUnavailable)
}

func TestSwitchCount(t *testing.T) {
	dir := t.TempDir()
	writeEventLog(t, dir, "events.jsonl",
		`{"packageName":"com.app.a","timestamp":1000,"kind":"resumed"}
{"packageName":"com.app.a","timestamp":2000,"kind":"paused"}
{"packageName":"com.app.b","timestamp":3000,"kind":"resumed"}
{"packageName":"com.app.a","timestamp":9000,"kind":"resumed"}
`)

	count, err := NewFileSource(dir).SwitchCount(0, 5000)

	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
