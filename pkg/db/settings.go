package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrNoActiveProfile = errors.New("no active profile found")
)

// Profile represents a configuration profile (one per household).
type Profile struct {
	ID        int64
	Name      string
	Timezone  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PanelServer is the HTTP listen configuration for a profile.
type PanelServer struct {
	ProfileID int64
	Host      string
	Port      int
}

// Address returns the panel listen address (host:port).
func (p *PanelServer) Address() string {
	return fmt.Sprintf("%s:%d", p.Host, p.Port)
}

// Assistant is the generative-language service configuration for a profile.
// An empty APIKey means the assistant runs in fallback-only mode.
type Assistant struct {
	ProfileID int64
	APIKey    string
	Model     string
}

// Config is the complete runtime configuration for the active profile.
type Config struct {
	Profile   *Profile
	Server    *PanelServer
	Assistant *Assistant
}

// Address returns the panel listen address, with a default when no server
// row exists.
func (c *Config) Address() string {
	if c.Server == nil {
		return "0.0.0.0:8080"
	}
	return c.Server.Address()
}

// ActiveConfig loads the configuration for the active profile.
func (db *DB) ActiveConfig(ctx context.Context) (*Config, error) {
	profile, err := db.ActiveProfile(ctx)
	if err != nil {
		if errors.Is(err, ErrProfileNotFound) {
			return nil, ErrNoActiveProfile
		}
		return nil, fmt.Errorf("failed to get active profile: %w", err)
	}

	cfg := &Config{Profile: profile}

	server := &PanelServer{ProfileID: profile.ID}
	err = db.QueryRowContext(ctx, `
		SELECT host, port FROM panel_servers WHERE profile_id = ?
	`, profile.ID).Scan(&server.Host, &server.Port)
	switch {
	case err == sql.ErrNoRows:
		// No row, caller falls back to the default address.
	case err != nil:
		return nil, fmt.Errorf("failed to get panel server config: %w", err)
	default:
		cfg.Server = server
	}

	asst := &Assistant{ProfileID: profile.ID}
	err = db.QueryRowContext(ctx, `
		SELECT api_key, model FROM assistant_config WHERE profile_id = ?
	`, profile.ID).Scan(&asst.APIKey, &asst.Model)
	switch {
	case err == sql.ErrNoRows:
	case err != nil:
		return nil, fmt.Errorf("failed to get assistant config: %w", err)
	default:
		cfg.Assistant = asst
	}

	return cfg, nil
}

// ActiveProfile returns the profile marked active, or ErrProfileNotFound.
func (db *DB) ActiveProfile(ctx context.Context) (*Profile, error) {
	p := &Profile{}
	var createdAt, updatedAt string
	err := db.QueryRowContext(ctx, `
		SELECT id, name, timezone, is_active, created_at, updated_at
		FROM profiles WHERE is_active = 1 LIMIT 1
	`).Scan(&p.ID, &p.Name, &p.Timezone, &p.IsActive, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	p.CreatedAt, _ = time.Parse(time.DateTime, createdAt)
	p.UpdatedAt, _ = time.Parse(time.DateTime, updatedAt)
	return p, nil
}

// SetAssistantKey stores the assistant API key and model for a profile,
// inserting the row if it does not exist yet.
func (db *DB) SetAssistantKey(ctx context.Context, profileID int64, apiKey, model string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO assistant_config (profile_id, api_key, model)
		VALUES (?, ?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET api_key = excluded.api_key, model = excluded.model
	`, profileID, apiKey, model)
	if err != nil {
		return fmt.Errorf("failed to store assistant config: %w", err)
	}
	return nil
}

// SetPanelServer stores the panel listen address for a profile.
func (db *DB) SetPanelServer(ctx context.Context, profileID int64, host string, port int) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO panel_servers (profile_id, host, port)
		VALUES (?, ?, ?)
		ON CONFLICT(profile_id) DO UPDATE SET host = excluded.host, port = excluded.port
	`, profileID, host, port)
	if err != nil {
		return fmt.Errorf("failed to store panel server config: %w", err)
	}
	return nil
}
