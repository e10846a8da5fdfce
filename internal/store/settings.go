package store

import (
	"database/sql"
	"errors"
	"strconv"

	"github.com/ayusman/mudra/internal/pose"
)

// Settings keys for the pose filter thresholds.
const (
	SettingPinchDistance = "pinch_distance"
	SettingHandSize      = "hand_size"
	SettingConfidence    = "confidence"
)

// SettingsRepository provides access to persisted key-value settings.
type SettingsRepository struct {
	db *sql.DB
}

// Settings returns the settings repository for this store.
func (s *Store) Settings() *SettingsRepository {
	return &SettingsRepository{db: s.db}
}

// Get retrieves a setting value by key.
// Returns ErrNotFound if the key has never been set.
func (r *SettingsRepository) Get(key string) (string, error) {
	var value string
	err := r.db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", err
	}
	return value, nil
}

// Set stores a setting value, replacing any previous value.
func (r *SettingsRepository) Set(key, value string) error {
	_, err := r.db.Exec(
		`INSERT INTO settings (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	return err
}

// Thresholds loads the persisted filter thresholds. Keys that were
// never set fall back to the package defaults.
func (r *SettingsRepository) Thresholds() (pose.Thresholds, error) {
	t := pose.DefaultThresholds()

	load := func(key string, dst *float64) error {
		value, err := r.Get(key)
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		f, err := strconv.ParseFloat(value, 64)
		if err != nil {
			// A corrupt value falls back to the default
			return nil
		}
		*dst = f
		return nil
	}

	if err := load(SettingPinchDistance, &t.PinchDistance); err != nil {
		return t, err
	}
	if err := load(SettingHandSize, &t.HandSize); err != nil {
		return t, err
	}
	if err := load(SettingConfidence, &t.Confidence); err != nil {
		return t, err
	}

	return t, nil
}

// SetThresholds persists the filter thresholds.
func (r *SettingsRepository) SetThresholds(t pose.Thresholds) error {
	pairs := map[string]float64{
		SettingPinchDistance: t.PinchDistance,
		SettingHandSize:      t.HandSize,
		SettingConfidence:    t.Confidence,
	}

	for key, value := range pairs {
		if err := r.Set(key, strconv.FormatFloat(value, 'f', -1, 64)); err != nil {
			return err
		}
	}
	return nil
}
