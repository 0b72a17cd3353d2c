package theme

import (
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/quasilyte/gdata"
)

const prefsKey = "theme"

type savedPrefs struct {
	Dark bool `json:"dark"`
}

// Store persists the theme preference in the per-user app data directory.
type Store struct {
	m *gdata.Manager
}

// OpenStore opens the app data storage for appName.
func OpenStore(appName string) (*Store, error) {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		return nil, fmt.Errorf("theme: open storage: %w", err)
	}
	return &Store{m: m}, nil
}

// LoadDark reports the saved preference; ok is false when nothing usable is stored.
func (s *Store) LoadDark() (dark, ok bool) {
	data, err := s.m.LoadItem(prefsKey)
	if err != nil {
		slog.Warn("could not load theme preference", "err", err)
		return false, false
	}
	if data == nil {
		return false, false
	}
	var prefs savedPrefs
	if err := json.Unmarshal(data, &prefs); err != nil {
		slog.Warn("could not parse theme preference", "err", err)
		return false, false
	}
	return prefs.Dark, true
}

// SaveDark writes the preference.
func (s *Store) SaveDark(dark bool) error {
	data, err := json.Marshal(savedPrefs{Dark: dark})
	if err != nil {
		return fmt.Errorf("theme: encode preference: %w", err)
	}
	if err := s.m.SaveItem(prefsKey, data); err != nil {
		return fmt.Errorf("theme: save preference: %w", err)
	}
	return nil
}
