package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Settings table - filter thresholds and toggles as key-value pairs
		`CREATE TABLE IF NOT EXISTS settings (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,

		// Bindings table - interaction bindings with their screen regions
		`CREATE TABLE IF NOT EXISTS bindings (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			kind TEXT NOT NULL CHECK(kind IN ('tap', 'drag', 'draw')),
			region_x REAL NOT NULL DEFAULT 0,
			region_y REAL NOT NULL DEFAULT 0,
			region_w REAL NOT NULL DEFAULT 0,
			region_h REAL NOT NULL DEFAULT 0,
			enable_touch INTEGER NOT NULL DEFAULT 0,
			allow_touch_drag INTEGER NOT NULL DEFAULT 0,
			plugin_name TEXT NOT NULL DEFAULT '',
			action_name TEXT NOT NULL DEFAULT '',
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		`CREATE INDEX IF NOT EXISTS idx_bindings_kind ON bindings(kind)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
