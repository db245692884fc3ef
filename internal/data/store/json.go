package store

import (
	"fmt"
	"os"

	"github.com/bytedance/sonic"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

// persistedState is the JSON interchange shape. The field names inside the
// records are fixed by pre-existing persisted data and must not change.
type persistedState struct {
	Limits []model.AppLimit  `json:"limits"`
	Alerts []model.SmartAlert `json:"alerts"`
}

// ExportJSON writes the stored collections to a JSON file compatible with
// the records persisted by existing installations.
func (s *Store) ExportJSON(path string) error {
	limits, err := s.LoadLimits()
	if err != nil {
		return err
	}
	alerts, err := s.LoadAlerts()
	if err != nil {
		return err
	}

	data, err := sonic.MarshalIndent(persistedState{Limits: limits, Alerts: alerts}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ImportJSON replaces the stored collections with the contents of a JSON
// export.
func (s *Store) ImportJSON(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var state persistedState
	if err := sonic.Unmarshal(data, &state); err != nil {
		return fmt.Errorf("failed to parse state file %s: %w", path, err)
	}

	if err := s.SaveLimits(state.Limits); err != nil {
		return err
	}
	return s.SaveAlerts(state.Alerts)
}
