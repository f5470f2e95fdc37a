package model

import "testing"

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()

	if settings.Theme != ThemeDark {
		t.Errorf("Expected default theme %s, got %s", ThemeDark, settings.Theme)
	}
	if settings.BackgroundType != BackgroundColor {
		t.Errorf("Expected default background type %s, got %s", BackgroundColor, settings.BackgroundType)
	}
	if !settings.Weather {
		t.Error("Expected weather widget to be enabled by default")
	}
	if settings.WeatherOpacity != 1.0 {
		t.Errorf("Expected default weather opacity 1.0, got %f", settings.WeatherOpacity)
	}
	if len(settings.Favorites) != 3 {
		t.Fatalf("Expected 3 seed favorites, got %d", len(settings.Favorites))
	}

	seen := map[string]bool{}
	for _, fav := range settings.Favorites {
		if seen[fav.ID] {
			t.Errorf("Duplicate seed favorite id %q", fav.ID)
		}
		seen[fav.ID] = true
	}
}

func TestSettings_Clone(t *testing.T) {
	original := DefaultSettings()
	clone := original.Clone()

	clone.Favorites[0].Name = "Changed"
	clone.Theme = ThemeLight

	if original.Favorites[0].Name == "Changed" {
		t.Error("Clone() favorites should be independent of the original")
	}
	if original.Theme == ThemeLight {
		t.Error("Clone() scalar fields should be independent of the original")
	}
}
