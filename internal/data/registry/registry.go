package registry

import (
	"fmt"
	"os"
	"sync"

	"github.com/bytedance/sonic"
)

// Entry describes one installed package as exported from the device's
// package registry.
type Entry struct {
	PackageName  string `json:"packageName"`
	Label        string `json:"label"`
	Launchable   bool   `json:"launchable"`
	HomeLauncher bool   `json:"homeLauncher"`
}

// FileRegistry is a package registry loaded from a JSON export. It backs
// the package classifier when running against captured event logs rather
// than a live device. Unknown packages fail lookups, which the classifier
// resolves to "not trackable".
type FileRegistry struct {
	mu      sync.RWMutex
	entries map[string]Entry
}

// Load reads a registry export: a JSON array of entries.
func Load(path string) (*FileRegistry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read package registry %s: %w", path, err)
	}

	var entries []Entry
	if err := sonic.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("parse package registry %s: %w", path, err)
	}

	return NewFromEntries(entries), nil
}

// NewFromEntries builds a registry from in-memory entries.
func NewFromEntries(entries []Entry) *FileRegistry {
	indexed := make(map[string]Entry, len(entries))
	for _, entry := range entries {
		indexed[entry.PackageName] = entry
	}
	return &FileRegistry{entries: indexed}
}

func (r *FileRegistry) lookup(pkg string) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[pkg]
	if !ok {
		return Entry{}, fmt.Errorf("package %s not in registry", pkg)
	}
	return entry, nil
}

// IsLaunchable reports whether the package has a launch entry point.
func (r *FileRegistry) IsLaunchable(pkg string) (bool, error) {
	entry, err := r.lookup(pkg)
	if err != nil {
		return false, err
	}
	return entry.Launchable, nil
}

// IsHomeLauncher reports whether the package is a home launcher.
func (r *FileRegistry) IsHomeLauncher(pkg string) (bool, error) {
	entry, err := r.lookup(pkg)
	if err != nil {
		return false, err
	}
	return entry.HomeLauncher, nil
}

// Label returns the package's display label.
func (r *FileRegistry) Label(pkg string) (string, error) {
	entry, err := r.lookup(pkg)
	if err != nil {
		return "", err
	}
	return entry.Label, nil
}

// Permissive is a registry that treats every package as a launchable,
// non-launcher app. It is the fallback when no registry export is
// available: better to over-report than to silently drop all usage.
type Permissive struct{}

func (Permissive) IsLaunchable(pkg string) (bool, error)   { return true, nil }
func (Permissive) IsHomeLauncher(pkg string) (bool, error) { return false, nil }
