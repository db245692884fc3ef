package scanner

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/penwyp/go-focus-monitor/internal/util"
)

// FileScanner discovers event log files under the data directory.
type FileScanner struct {
	baseDir string
}

// NewFileScanner creates a new FileScanner instance.
func NewFileScanner(baseDir string) *FileScanner {
	return &FileScanner{baseDir: baseDir}
}

// Scan walks the directory tree and returns every .jsonl file path.
func (s *FileScanner) Scan() ([]string, error) {
	start := time.Now()
	var files []string
	dirCount := 0
	totalCount := 0

	util.LogDebugf("Start scanning directory: %s", s.baseDir)

	err := filepath.Walk(s.baseDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			util.LogDebugf("Skip path (error): %s - %v", path, err)
			return nil
		}

		if info.IsDir() {
			dirCount++
			return nil
		}

		totalCount++
		if strings.HasSuffix(strings.ToLower(path), ".jsonl") {
			files = append(files, path)
		}

		return nil
	})

	util.LogDebugf("File scan completed: duration %v, scanned %d directories, %d files, found %d event logs",
		time.Since(start), dirCount, totalCount, len(files))

	return files, err
}
