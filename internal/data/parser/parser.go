package parser

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"sync"
	"time"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
	"github.com/penwyp/go-focus-monitor/internal/util"
)

// Parser reads raw lifecycle events from JSONL log files. Parsed files are
// cached by identity (modtime/size/inode) so repeated window queries over
// the same logs do not re-read them.
type Parser struct {
	concurrency int
	mu          sync.Mutex
	cache       map[string]cachedFile
}

type cachedFile struct {
	info   *util.FileInfo
	events []model.RawEvent
}

// ParseResult represents the result of parsing a single file.
type ParseResult struct {
	File   string
	Events []model.RawEvent
	Error  error
}

// NewParser creates a new Parser instance.
func NewParser(concurrency int) *Parser {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &Parser{
		concurrency: concurrency,
		cache:       make(map[string]cachedFile),
	}
}

// ParseFile parses the event log at the specified path. Lines that are not
// valid events are skipped, never fatal: a single bad record must not sink
// the whole aggregation.
func (p *Parser) ParseFile(filepath string) ([]model.RawEvent, error) {
	info, _ := util.GetFileInfo(filepath)

	p.mu.Lock()
	if cached, ok := p.cache[filepath]; ok && cached.info.Equal(info) {
		p.mu.Unlock()
		return cached.events, nil
	}
	p.mu.Unlock()

	util.LogDebugf("Start parsing event log: %s", filepath)

	file, err := os.Open(filepath)
	if err != nil {
		util.LogDebugf("Failed to open event log: %s - %v", filepath, err)
		return nil, err
	}
	defer file.Close()

	var events []model.RawEvent
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 10*1024*1024)

	lineCount := 0
	for scanner.Scan() {
		lineCount++
		var ev model.RawEvent
		if err := sonic.Unmarshal(scanner.Bytes(), &ev); err != nil {
			util.LogDebugf("Skip invalid JSON line %s:%d - %v", filepath, lineCount, err)
			continue
		}
		if ev.PackageName == "" || !ev.Kind.Valid() {
			util.LogDebugf("Skip malformed event %s:%d", filepath, lineCount)
			continue
		}
		events = append(events, ev)
	}

	if err := scanner.Err(); err != nil {
		util.LogDebugf("Error scanning event log: %s - %v", filepath, err)
		return nil, err
	}

	// The engine downstream assumes a time-ordered stream. Stable keeps
	// same-timestamp events in capture order.
	sort.SliceStable(events, func(i, j int) bool {
		return events[i].Timestamp < events[j].Timestamp
	})

	if info != nil {
		p.mu.Lock()
		p.cache[filepath] = cachedFile{info: info, events: events}
		p.mu.Unlock()
	}

	return events, nil
}

// ParseFiles parses multiple files concurrently and returns a channel of ParseResult.
func (p *Parser) ParseFiles(files []string) <-chan ParseResult {
	start := time.Now()
	results := make(chan ParseResult, len(files))
	var wg sync.WaitGroup

	util.LogDebugf("Start concurrent parsing of %d files, concurrency: %d", len(files), p.concurrency)

	semaphore := make(chan struct{}, p.concurrency)

	for _, file := range files {
		wg.Add(1)
		go func(f string) {
			defer wg.Done()

			semaphore <- struct{}{}
			defer func() { <-semaphore }()

			events, err := p.ParseFile(f)
			if err != nil {
				util.LogDebugf("Event log parsing failed: %s - %v", f, err)
			}

			results <- ParseResult{
				File:   f,
				Events: events,
				Error:  err,
			}
		}(file)
	}

	go func() {
		wg.Wait()
		close(results)
		util.LogDebug(fmt.Sprintf("Concurrent parsing finished, total duration: %v", time.Since(start)))
	}()

	return results
}
