package config

import (
	"encoding/json"
	"log"
	"sync"

	"fyne.io/fyne/v2"

	"github.com/dashtab/dashtab/internal/model"
)

// SettingsKey is the single preferences slot holding the JSON settings snapshot
const SettingsKey = "dashtab_settings"

// LanguageKey holds the UI language code. It lives outside the settings
// snapshot so exported files stay portable across languages.
const LanguageKey = "dashtab_language"

// DefaultLanguage is used until the user picks a language
const DefaultLanguage = "en"

// Store owns the durable settings snapshot. It is the sole writer of
// persistent state: editors and codecs propose new Settings values and the
// store persists them atomically as a whole-object overwrite.
type Store struct {
	app fyne.App

	mu      sync.Mutex
	current model.Settings
	loaded  bool

	onChange      []func(model.Settings)
	onThemeChange func(model.Theme)
}

// NewStore creates a settings store backed by the app's preferences
func NewStore(app fyne.App) *Store {
	return &Store{app: app}
}

// SetThemeChangeCallback registers the side effect run when a saved snapshot
// switches the theme. Called once from UI setup.
func (s *Store) SetThemeChangeCallback(callback func(model.Theme)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onThemeChange = callback
}

// OnChange registers a subscriber notified after every successful save.
// The weather poller and the UI both subscribe here.
func (s *Store) OnChange(callback func(model.Settings)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onChange = append(s.onChange, callback)
}

// Load hydrates settings from the durable slot. An absent slot yields the
// hardcoded defaults. A present slot is unmarshalled onto a defaults-filled
// value, so keys missing from an old snapshot keep their defaults; this is
// what lets the schema grow without migration code. A corrupted slot falls
// back to defaults instead of crashing.
func (s *Store) Load() model.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return s.current.Clone()
	}

	settings := model.DefaultSettings()
	if raw := s.app.Preferences().String(SettingsKey); raw != "" {
		if err := json.Unmarshal([]byte(raw), &settings); err != nil {
			log.Printf("Settings slot is corrupted, falling back to defaults: %v", err)
			settings = model.DefaultSettings()
		}
	}

	s.current = settings
	s.loaded = true
	return s.current.Clone()
}

// Current returns the in-memory settings, loading them first if needed
func (s *Store) Current() model.Settings {
	s.mu.Lock()
	loaded := s.loaded
	s.mu.Unlock()

	if !loaded {
		return s.Load()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.Clone()
}

// Language returns the persisted UI language code
func (s *Store) Language() string {
	return s.app.Preferences().StringWithFallback(LanguageKey, DefaultLanguage)
}

// SetLanguage persists the UI language code
func (s *Store) SetLanguage(code string) {
	s.app.Preferences().SetString(LanguageKey, code)
}

// Save replaces the in-memory settings and writes the new durable snapshot.
// No validation happens here; callers are responsible for validity. The theme
// side effect runs only when the theme actually changed.
func (s *Store) Save(newSettings model.Settings) {
	s.mu.Lock()

	themeChanged := !s.loaded || s.current.Theme != newSettings.Theme
	s.current = newSettings.Clone()
	s.loaded = true

	data, err := json.Marshal(s.current)
	if err != nil {
		log.Printf("Failed to serialize settings snapshot: %v", err)
	} else {
		s.app.Preferences().SetString(SettingsKey, string(data))
	}

	themeCallback := s.onThemeChange
	subscribers := make([]func(model.Settings), len(s.onChange))
	copy(subscribers, s.onChange)
	s.mu.Unlock()

	if themeChanged && themeCallback != nil {
		themeCallback(newSettings.Theme)
	}
	for _, subscriber := range subscribers {
		subscriber(newSettings.Clone())
	}
}
