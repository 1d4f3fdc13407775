package db

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// Bootstrap initializes the database with default data on first run: one
// active "default" profile with a panel server on 0.0.0.0:8080 and an
// unconfigured assistant row. Called after migrations.
func (db *DB) Bootstrap(ctx context.Context) error {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return fmt.Errorf("failed to check profiles: %w", err)
	}
	if count > 0 {
		return nil // already bootstrapped
	}

	result, err := db.ExecContext(ctx, `
		INSERT INTO profiles (name, timezone, is_active)
		VALUES ('default', ?, 1)
	`, detectTimezone())
	if err != nil {
		return fmt.Errorf("failed to create default profile: %w", err)
	}

	profileID, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get profile ID: %w", err)
	}

	if err := db.SetPanelServer(ctx, profileID, "0.0.0.0", 8080); err != nil {
		return err
	}
	if err := db.SetAssistantKey(ctx, profileID, "", "gemini-2.5-flash"); err != nil {
		return err
	}
	return nil
}

// NeedsBootstrap returns true if the database needs initial setup.
func (db *DB) NeedsBootstrap(ctx context.Context) (bool, error) {
	var count int
	if err := db.QueryRowContext(ctx, `SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		return false, err
	}
	return count == 0, nil
}

// detectTimezone reads the system timezone, falling back to UTC.
func detectTimezone() string {
	if tz := os.Getenv("TZ"); tz != "" {
		return tz
	}
	if data, err := os.ReadFile("/etc/timezone"); err == nil {
		if tz := strings.TrimSpace(string(data)); tz != "" {
			return tz
		}
	}
	if link, err := os.Readlink("/etc/localtime"); err == nil {
		if idx := strings.Index(link, "zoneinfo/"); idx != -1 {
			return link[idx+len("zoneinfo/"):]
		}
	}
	return "UTC"
}
