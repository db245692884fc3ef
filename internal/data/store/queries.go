package store

import (
	"database/sql"
	"fmt"

	"github.com/penwyp/go-focus-monitor/internal/core/model"
)

// SaveLimits replaces the stored limit collection, preserving order.
func (s *Store) SaveLimits(limits []model.AppLimit) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM app_limits`); err != nil {
		return fmt.Errorf("failed to clear limits: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO app_limits
		(position, package_name, label, usage_limit_minutes, time_used_minutes)
		VALUES (?, ?, ?, ?, ?)
	`
	for i, limit := range limits {
		if _, err := tx.Exec(query, i, limit.PackageName, limit.Label,
			limit.UsageLimitInMinutes, limit.TimeUsedInMinutes); err != nil {
			return fmt.Errorf("failed to insert limit %s: %w", limit.PackageName, err)
		}
	}

	return tx.Commit()
}

// LoadLimits returns the stored limit collection in insertion order.
func (s *Store) LoadLimits() ([]model.AppLimit, error) {
	rows, err := s.db.Query(`
		SELECT package_name, label, usage_limit_minutes, time_used_minutes
		FROM app_limits
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query limits: %w", err)
	}
	defer rows.Close()

	var limits []model.AppLimit
	for rows.Next() {
		var limit model.AppLimit
		if err := rows.Scan(&limit.PackageName, &limit.Label,
			&limit.UsageLimitInMinutes, &limit.TimeUsedInMinutes); err != nil {
			return nil, fmt.Errorf("failed to scan limit: %w", err)
		}
		limits = append(limits, limit)
	}
	return limits, rows.Err()
}

// SaveAlerts replaces the stored alert collection, preserving order
// (most recent first).
func (s *Store) SaveAlerts(alerts []model.SmartAlert) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM smart_alerts`); err != nil {
		return fmt.Errorf("failed to clear alerts: %w", err)
	}

	query := `
		INSERT OR REPLACE INTO smart_alerts
		(position, id, type, message, timestamp, app_label)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for i, alert := range alerts {
		appLabel := sql.NullString{String: alert.AppLabel, Valid: alert.AppLabel != ""}
		if _, err := tx.Exec(query, i, alert.Id, alert.Type, alert.Message,
			alert.Timestamp, appLabel); err != nil {
			return fmt.Errorf("failed to insert alert %s: %w", alert.Id, err)
		}
	}

	return tx.Commit()
}

// LoadAlerts returns the stored alert collection in insertion order.
func (s *Store) LoadAlerts() ([]model.SmartAlert, error) {
	rows, err := s.db.Query(`
		SELECT id, type, message, timestamp, app_label
		FROM smart_alerts
		ORDER BY position
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []model.SmartAlert
	for rows.Next() {
		var alert model.SmartAlert
		var appLabel sql.NullString
		if err := rows.Scan(&alert.Id, &alert.Type, &alert.Message,
			&alert.Timestamp, &appLabel); err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alert.AppLabel = appLabel.String
		alerts = append(alerts, alert)
	}
	return alerts, rows.Err()
}
