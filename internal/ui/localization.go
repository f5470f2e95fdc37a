package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle        = "app_title"
	KeyAddFavorite     = "add_favorite"
	KeyEditFavorite    = "edit_favorite"
	KeyName            = "name"
	KeyURL             = "url"
	KeyIconURL         = "icon_url"
	KeyDetectIcon      = "detect_icon"
	KeyUploadImage     = "upload_image"
	KeyOpenInBrowser   = "open_in_browser"
	KeyCopyURL         = "copy_url"
	KeyEdit            = "edit"
	KeyDelete          = "delete"
	KeyUndo            = "undo"
	KeyFavoriteDeleted = "favorite_deleted"
	KeyURLCopied       = "url_copied"
	KeyURLRequired     = "url_required"
	KeySettings        = "settings"
	KeySave            = "save"
	KeyCancel          = "cancel"
	KeyTheme           = "theme"
	KeyThemeLight      = "theme_light"
	KeyThemeDark       = "theme_dark"
	KeyBackground      = "background"
	KeyBackgroundColor = "background_color"
	KeyBackgroundImage = "background_image"
	KeyReset           = "reset"
	KeyWeather         = "weather"
	KeyWeatherLocation = "weather_location"
	KeyWeatherOpacity  = "weather_opacity"
	KeyWeatherFailed   = "weather_failed"
	KeyLanguage        = "language"
	KeyImportExport    = "import_export"
	KeyScope           = "scope"
	KeyScopeAll        = "scope_all"
	KeyScopeFavorites  = "scope_favorites"
	KeyScopeSettings   = "scope_settings"
	KeyImport          = "import"
	KeyExport          = "export"
	KeyImportDone      = "import_done"
	KeyImportFailed    = "import_failed"
	KeyExportFailed    = "export_failed"
	KeyIconDetectError = "icon_detect_error"
	KeyFirstURLAlert   = "first_url_alert"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:        "DashTab",
		KeyAddFavorite:     "Add favorite",
		KeyEditFavorite:    "Edit favorite",
		KeyName:            "Name",
		KeyURL:             "URL",
		KeyIconURL:         "Icon URL",
		KeyDetectIcon:      "Detect icon",
		KeyUploadImage:     "Upload image",
		KeyOpenInBrowser:   "Open in browser",
		KeyCopyURL:         "Copy URL",
		KeyEdit:            "Edit",
		KeyDelete:          "Delete",
		KeyUndo:            "Undo",
		KeyFavoriteDeleted: "Favorite deleted",
		KeyURLCopied:       "URL copied to clipboard",
		KeyURLRequired:     "A URL is required",
		KeySettings:        "Settings",
		KeySave:            "Save",
		KeyCancel:          "Cancel",
		KeyTheme:           "Theme",
		KeyThemeLight:      "Light",
		KeyThemeDark:       "Dark",
		KeyBackground:      "Background",
		KeyBackgroundColor: "Background color",
		KeyBackgroundImage: "Background image",
		KeyReset:           "Reset",
		KeyWeather:         "Show weather",
		KeyWeatherLocation: "Weather location",
		KeyWeatherOpacity:  "Widget opacity",
		KeyWeatherFailed:   "Weather update failed",
		KeyLanguage:        "Language",
		KeyImportExport:    "Import / Export",
		KeyScope:           "Scope",
		KeyScopeAll:        "Everything",
		KeyScopeFavorites:  "Favorites only",
		KeyScopeSettings:   "Settings only",
		KeyImport:          "Import",
		KeyExport:          "Export",
		KeyImportDone:      "Import completed",
		KeyImportFailed:    "Import failed",
		KeyExportFailed:    "Export failed",
		KeyIconDetectError: "Could not detect an icon",
		KeyFirstURLAlert:   "Right-click a tile to edit it, or use + to add your first site",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:        "DashTab",
		KeyAddFavorite:     "Adicionar favorito",
		KeyEditFavorite:    "Editar favorito",
		KeyName:            "Nome",
		KeyURL:             "URL",
		KeyIconURL:         "URL do ícone",
		KeyDetectIcon:      "Detectar ícone",
		KeyUploadImage:     "Enviar imagem",
		KeyOpenInBrowser:   "Abrir no navegador",
		KeyCopyURL:         "Copiar URL",
		KeyEdit:            "Editar",
		KeyDelete:          "Excluir",
		KeyUndo:            "Desfazer",
		KeyFavoriteDeleted: "Favorito excluído",
		KeyURLCopied:       "URL copiada",
		KeyURLRequired:     "A URL é obrigatória",
		KeySettings:        "Configurações",
		KeySave:            "Salvar",
		KeyCancel:          "Cancelar",
		KeyTheme:           "Tema",
		KeyThemeLight:      "Claro",
		KeyThemeDark:       "Escuro",
		KeyBackground:      "Plano de fundo",
		KeyBackgroundColor: "Cor de fundo",
		KeyBackgroundImage: "Imagem de fundo",
		KeyReset:           "Redefinir",
		KeyWeather:         "Mostrar clima",
		KeyWeatherLocation: "Localização do clima",
		KeyWeatherOpacity:  "Opacidade do widget",
		KeyWeatherFailed:   "Falha ao atualizar o clima",
		KeyLanguage:        "Idioma",
		KeyImportExport:    "Importar / Exportar",
		KeyScope:           "Escopo",
		KeyScopeAll:        "Tudo",
		KeyScopeFavorites:  "Somente favoritos",
		KeyScopeSettings:   "Somente configurações",
		KeyImport:          "Importar",
		KeyExport:          "Exportar",
		KeyImportDone:      "Importação concluída",
		KeyImportFailed:    "Falha na importação",
		KeyExportFailed:    "Falha na exportação",
		KeyIconDetectError: "Não foi possível detectar um ícone",
		KeyFirstURLAlert:   "Clique com o botão direito para editar, ou use + para adicionar seu primeiro site",
	}
}
