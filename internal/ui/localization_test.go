package ui

import "testing"

func TestLocalizationSetLanguage(t *testing.T) {
	l := NewLocalization()

	if l.GetCurrentLanguage() != "en" {
		t.Errorf("Expected en as the initial language, got %q", l.GetCurrentLanguage())
	}

	l.SetLanguage("pt")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected pt after SetLanguage, got %q", l.GetCurrentLanguage())
	}
	if got := l.GetText(KeySettings); got != "Configurações" {
		t.Errorf("Expected the Portuguese settings label, got %q", got)
	}

	// Unknown codes leave the current language alone
	l.SetLanguage("xx")
	if l.GetCurrentLanguage() != "pt" {
		t.Errorf("Expected an unknown code to be ignored, got %q", l.GetCurrentLanguage())
	}
}

func TestLocalizationFallsBackToEnglish(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	// A key missing from one table falls back to English, then to the key
	l.texts["en"]["only_english"] = "Only English"

	if got := l.GetText("only_english"); got != "Only English" {
		t.Errorf("Expected the English fallback, got %q", got)
	}
	if got := l.GetText("missing_everywhere"); got != "missing_everywhere" {
		t.Errorf("Expected the key itself as a last resort, got %q", got)
	}
}

func TestLocalizationAvailableLanguages(t *testing.T) {
	languages := NewLocalization().GetAvailableLanguages()

	for _, code := range []string{"en", "pt"} {
		if languages[code] == "" {
			t.Errorf("Expected a display name for %q", code)
		}
	}
}
