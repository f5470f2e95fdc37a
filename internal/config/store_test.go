package config

import (
	"strings"
	"testing"

	"fyne.io/fyne/v2/test"

	"github.com/dashtab/dashtab/internal/model"
)

func TestStore_LoadDefaults(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	settings := store.Load()
	defaults := model.DefaultSettings()

	if settings.Theme != defaults.Theme {
		t.Errorf("Expected default theme %s, got %s", defaults.Theme, settings.Theme)
	}
	if len(settings.Favorites) != len(defaults.Favorites) {
		t.Errorf("Expected %d seed favorites, got %d", len(defaults.Favorites), len(settings.Favorites))
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	settings := store.Load()
	settings.Theme = model.ThemeLight
	settings.WeatherLocation = "Berlin"
	settings.Favorites = append(settings.Favorites, model.Favorite{
		ID: "42", Name: "Example", URL: "https://example.com",
	})
	store.Save(settings)

	// A fresh store over the same preferences must see the saved snapshot
	reloaded := NewStore(app).Load()
	if reloaded.Theme != model.ThemeLight {
		t.Errorf("Expected theme %s after reload, got %s", model.ThemeLight, reloaded.Theme)
	}
	if reloaded.WeatherLocation != "Berlin" {
		t.Errorf("Expected weather location Berlin, got %q", reloaded.WeatherLocation)
	}
	if len(reloaded.Favorites) != 4 {
		t.Errorf("Expected 4 favorites after reload, got %d", len(reloaded.Favorites))
	}
}

func TestStore_LanguageRoundTrip(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	if lang := store.Language(); lang != DefaultLanguage {
		t.Errorf("Expected default language %q, got %q", DefaultLanguage, lang)
	}

	store.SetLanguage("pt")
	if lang := NewStore(app).Language(); lang != "pt" {
		t.Errorf("Expected persisted language pt, got %q", lang)
	}
}

func TestStore_LanguageOutsideSettingsSnapshot(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	store.SetLanguage("pt")
	store.Save(store.Load())

	// Exports read the settings slot only, so the language must not leak in
	if raw := app.Preferences().String(SettingsKey); strings.Contains(raw, "language") {
		t.Errorf("Language leaked into the settings snapshot: %s", raw)
	}
}

func TestStore_LoadMergesPartialSnapshot(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(SettingsKey, `{"theme":"light"}`)

	settings := NewStore(app).Load()
	defaults := model.DefaultSettings()

	if settings.Theme != model.ThemeLight {
		t.Errorf("Stored key should win: expected theme light, got %s", settings.Theme)
	}
	if settings.WeatherOpacity != defaults.WeatherOpacity {
		t.Errorf("Missing key should keep default: expected opacity %f, got %f",
			defaults.WeatherOpacity, settings.WeatherOpacity)
	}
	if !settings.Weather {
		t.Error("Missing key should keep default: expected weather enabled")
	}
	if len(settings.Favorites) != len(defaults.Favorites) {
		t.Errorf("Missing favorites should keep seed list: expected %d, got %d",
			len(defaults.Favorites), len(settings.Favorites))
	}
}

func TestStore_LoadCorruptedSlotFallsBack(t *testing.T) {
	app := test.NewApp()
	app.Preferences().SetString(SettingsKey, `{not json`)

	settings := NewStore(app).Load()
	defaults := model.DefaultSettings()

	if settings.Theme != defaults.Theme {
		t.Errorf("Corrupted slot should yield defaults, got theme %s", settings.Theme)
	}
	if len(settings.Favorites) != len(defaults.Favorites) {
		t.Errorf("Corrupted slot should yield seed favorites, got %d", len(settings.Favorites))
	}
}

func TestStore_ThemeCallbackFiresOnChangeOnly(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	var calls []model.Theme
	store.SetThemeChangeCallback(func(theme model.Theme) {
		calls = append(calls, theme)
	})

	settings := store.Load()
	settings.Theme = model.ThemeLight
	store.Save(settings)

	// Saving again without a theme change must not re-run the side effect
	settings.WeatherLocation = "Lisbon"
	store.Save(settings)

	if len(calls) != 1 {
		t.Fatalf("Expected 1 theme callback, got %d", len(calls))
	}
	if calls[0] != model.ThemeLight {
		t.Errorf("Expected theme callback with %s, got %s", model.ThemeLight, calls[0])
	}
}

func TestStore_OnChangeNotifiesSubscribers(t *testing.T) {
	app := test.NewApp()
	store := NewStore(app)

	var received []model.Settings
	store.OnChange(func(s model.Settings) {
		received = append(received, s)
	})

	settings := store.Load()
	settings.WeatherLocation = "Tokyo"
	store.Save(settings)

	if len(received) != 1 {
		t.Fatalf("Expected 1 change notification, got %d", len(received))
	}
	if received[0].WeatherLocation != "Tokyo" {
		t.Errorf("Expected notified location Tokyo, got %q", received[0].WeatherLocation)
	}
}
