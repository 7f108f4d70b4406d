package stores

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/LilMortal/Feastly-App/internal/models"
	"github.com/LilMortal/Feastly-App/internal/storage"
)

// ThemeStore holds the light/dark preference. The effective theme is exposed
// for the view layer as a styling switch; persistence goes through the
// key-value store under the feastly-theme key.
type ThemeStore struct {
	mu          sync.Mutex
	theme       models.Theme
	store       storage.Store
	prefersDark func() bool
}

// NewThemeStore creates a new ThemeStore. prefersDark reports the host's
// system dark-mode preference; nil means no preference.
func NewThemeStore(store storage.Store, prefersDark func() bool) *ThemeStore {
	if prefersDark == nil {
		prefersDark = func() bool { return false }
	}
	return &ThemeStore{
		theme:       models.ThemeLight,
		store:       store,
		prefersDark: prefersDark,
	}
}

// InitTheme resolves the effective theme: a previously persisted value wins,
// then the system preference, then light. Reading an existing value persists
// nothing new.
func (s *ThemeStore) InitTheme() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if saved, ok := s.readPersisted(); ok {
		s.theme = saved
		return
	}
	if s.prefersDark() {
		s.theme = models.ThemeDark
		return
	}
	s.theme = models.ThemeLight
}

// SetTheme persists and applies an explicit theme. Values outside the two
// enumerated themes are ignored.
func (s *ThemeStore) SetTheme(theme models.Theme) {
	if !theme.Valid() {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.Marshal(theme)
	if err == nil {
		err = s.store.Set(storage.KeyTheme, data)
	}
	if err != nil {
		log.Printf("Failed to persist theme: %v", err)
	}
	s.theme = theme
}

// ToggleTheme flips light and dark, persisting via SetTheme.
func (s *ThemeStore) ToggleTheme() {
	s.SetTheme(s.Theme().Toggle())
}

// Theme returns the current theme.
func (s *ThemeStore) Theme() models.Theme {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.theme
}

// readPersisted loads the stored preference. Storage absence or a corrupt
// value is treated as "no preference".
func (s *ThemeStore) readPersisted() (models.Theme, bool) {
	data, ok, err := s.store.Get(storage.KeyTheme)
	if err != nil {
		log.Printf("Failed to read persisted theme: %v", err)
		return "", false
	}
	if !ok {
		return "", false
	}

	var theme models.Theme
	if err := json.Unmarshal(data, &theme); err != nil || !theme.Valid() {
		return "", false
	}
	return theme, true
}
