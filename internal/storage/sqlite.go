// Package storage provides SQLite-based persistence for named popover
// presets. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/tui-popover/internal/config"
)

// Store manages the SQLite database connection for preset persistence.
type Store struct {
	db *sql.DB
}

// Preset is a saved popover configuration addressed by name.
type Preset struct {
	ID        int64
	Name      string
	Position  string
	HSpacing  int
	VSpacing  int
	InsetTop  int
	InsetRt   int
	InsetBot  int
	InsetLt   int
	Overlay   bool
	CreatedAt time.Time
}

// Config converts the preset into a loadable configuration.
func (p Preset) Config() config.Config {
	return config.Config{
		Placement: config.PlacementConfig{
			Position: p.Position,
			Spacing: config.SpacingConfig{
				Horizontal: p.HSpacing,
				Vertical:   p.VSpacing,
			},
			Insets: config.InsetsConfig{
				Top:    p.InsetTop,
				Right:  p.InsetRt,
				Bottom: p.InsetBot,
				Left:   p.InsetLt,
			},
		},
		Behavior: config.BehaviorConfig{
			Overlay: p.Overlay,
		},
	}
}

// PresetFromConfig builds a preset row from a configuration.
func PresetFromConfig(name string, cfg config.Config) Preset {
	return Preset{
		Name:     name,
		Position: cfg.Placement.Position,
		HSpacing: cfg.Placement.Spacing.Horizontal,
		VSpacing: cfg.Placement.Spacing.Vertical,
		InsetTop: cfg.Placement.Insets.Top,
		InsetRt:  cfg.Placement.Insets.Right,
		InsetBot: cfg.Placement.Insets.Bottom,
		InsetLt:  cfg.Placement.Insets.Left,
		Overlay:  cfg.Behavior.Overlay,
	}
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS presets (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL UNIQUE,
			position TEXT NOT NULL,
			h_spacing INTEGER NOT NULL DEFAULT 0,
			v_spacing INTEGER NOT NULL DEFAULT 0,
			inset_top INTEGER NOT NULL DEFAULT 0,
			inset_right INTEGER NOT NULL DEFAULT 0,
			inset_bottom INTEGER NOT NULL DEFAULT 0,
			inset_left INTEGER NOT NULL DEFAULT 0,
			overlay INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_presets_name ON presets(name);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SavePreset inserts or replaces a preset by name.
// Returns the ID of the stored record.
func (s *Store) SavePreset(p Preset) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO presets
		 (name, position, h_spacing, v_spacing, inset_top, inset_right, inset_bottom, inset_left, overlay)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET
		   position = excluded.position,
		   h_spacing = excluded.h_spacing,
		   v_spacing = excluded.v_spacing,
		   inset_top = excluded.inset_top,
		   inset_right = excluded.inset_right,
		   inset_bottom = excluded.inset_bottom,
		   inset_left = excluded.inset_left,
		   overlay = excluded.overlay`,
		p.Name, p.Position, p.HSpacing, p.VSpacing,
		p.InsetTop, p.InsetRt, p.InsetBot, p.InsetLt,
		boolToInt(p.Overlay),
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save preset: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// GetPreset retrieves a preset by name.
// Returns nil with no error when the preset does not exist.
func (s *Store) GetPreset(name string) (*Preset, error) {
	var p Preset
	var overlay int
	var createdAt any

	err := s.db.QueryRow(
		`SELECT id, name, position, h_spacing, v_spacing,
		        inset_top, inset_right, inset_bottom, inset_left, overlay, created_at
		 FROM presets
		 WHERE name = ?`,
		name,
	).Scan(
		&p.ID, &p.Name, &p.Position, &p.HSpacing, &p.VSpacing,
		&p.InsetTop, &p.InsetRt, &p.InsetBot, &p.InsetLt, &overlay, &createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query preset: %w", err)
	}

	p.Overlay = overlay != 0
	p.CreatedAt = parseTimestamp(createdAt)

	return &p, nil
}

// ListPresets retrieves all presets ordered by name.
func (s *Store) ListPresets() ([]Preset, error) {
	rows, err := s.db.Query(
		`SELECT id, name, position, h_spacing, v_spacing,
		        inset_top, inset_right, inset_bottom, inset_left, overlay, created_at
		 FROM presets
		 ORDER BY name`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query presets: %w", err)
	}
	defer rows.Close()

	var presets []Preset
	for rows.Next() {
		var p Preset
		var overlay int
		var createdAt any
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Position, &p.HSpacing, &p.VSpacing,
			&p.InsetTop, &p.InsetRt, &p.InsetBot, &p.InsetLt, &overlay, &createdAt,
		); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		p.Overlay = overlay != 0
		p.CreatedAt = parseTimestamp(createdAt)
		presets = append(presets, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return presets, nil
}

// DeletePreset removes a preset by name.
func (s *Store) DeletePreset(name string) error {
	_, err := s.db.Exec("DELETE FROM presets WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("storage: cannot delete preset: %w", err)
	}
	return nil
}

// parseTimestamp handles the driver returning either time.Time or string.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
