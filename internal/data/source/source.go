package source

import (
	"fmt"
	"os"
	"runtime"
	"sort"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/data/parser"
	"github.com/penwyp/go-focus-monitor/internal/data/scanner"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

// FileSource is an event source backed by a directory of JSONL event logs.
// It satisfies the window aggregator's EventSource contract: time-ordered
// events restricted to the requested window, and a raw resumed-event count.
type FileSource struct {
	dataDir string
	scanner *scanner.FileScanner
	parser  *parser.Parser
}

// NewFileSource builds a source over the given event log directory.
func NewFileSource(dataDir string) *FileSource {
	return &FileSource{
		dataDir: dataDir,
		scanner: scanner.NewFileScanner(dataDir),
		parser:  parser.NewParser(runtime.NumCPU()),
	}
}

// Events returns every event with a timestamp in [start, end), sorted by
// timestamp. An unreadable data directory means usage data cannot be
// queried at all, which is reported as model.ErrUnavailable rather than as
// an empty result.
func (s *FileSource) Events(start, end int64) ([]model.RawEvent, error) {
	all, err := s.load()
	if err != nil {
		return nil, err
	}

	var out []model.RawEvent
	for _, ev := range all {
		if ev.Timestamp >= start && ev.Timestamp < end {
			out = append(out, ev)
		}
	}
	return out, nil
}

// SwitchCount counts resumed events in [start, end) across the raw stream,
// independent of package and of classification.
func (s *FileSource) SwitchCount(start, end int64) (int, error) {
	all, err := s.load()
	if err != nil {
		return 0, err
	}

	count := 0
	for _, ev := range all {
		if ev.Kind == model.KindResumed && ev.Timestamp >= start && ev.Timestamp < end {
			count++
		}
	}
	return count, nil
}

func (s *FileSource) load() ([]model.RawEvent, error) {
	if info, err := os.Stat(s.dataDir); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("event log directory %s: %w", s.dataDir, model.ErrUnavailable)
	}

	files, err := s.scanner.Scan()
	if err != nil {
		return nil, fmt.Errorf("scan event logs: %w", err)
	}

	var events []model.RawEvent
	failed := 0
	for result := range s.parser.ParseFiles(files) {
		if result.Error != nil {
			failed++
			continue
		}
		events = append(events, result.Events...)
	}
	if failed > 0 {
		util.LogWarnf("Skipped %d unreadable event logs under %s", failed, s.dataDir)
	}

	// Per-file streams are sorted by the parser; merge order across files
	// is not, so sort the combined stream once.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})
	return events, nil
}
