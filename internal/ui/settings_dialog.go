package ui

import (
	"io"
	"log"
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"github.com/dashtab/dashtab/internal/config"
	"github.com/dashtab/dashtab/internal/icon"
	"github.com/dashtab/dashtab/internal/model"
	"github.com/dashtab/dashtab/internal/transfer"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	store        *config.Store
	window       fyne.Window
	localization *Localization
	dialog       *dialog.ConfirmDialog

	// UI components
	themeSelect          *widget.RadioGroup
	languageSelect       *widget.Select
	backgroundTypeSelect *widget.Select
	backgroundColorEntry *widget.Entry
	backgroundImageEntry *widget.Entry
	weatherCheck         *widget.Check
	locationEntry        *widget.Entry
	opacitySlider        *widget.Slider
	scopeSelect          *widget.Select

	// Language codes in the order the select shows them
	languageCodes []string

	// Scope labels in the order the select shows them
	scopes []transfer.Scope

	onLanguageChange func(code string)
}

// NewSettingsDialog creates a new settings dialog
func NewSettingsDialog(store *config.Store, window fyne.Window, localization *Localization) *SettingsDialog {
	sd := &SettingsDialog{
		store:        store,
		window:       window,
		localization: localization,
	}

	sd.createUI()
	return sd
}

// SetLanguageChangeCallback registers the side effect run when the saved
// language differs from the current one
func (sd *SettingsDialog) SetLanguageChangeCallback(callback func(code string)) {
	sd.onLanguageChange = callback
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	// Theme selection
	sd.themeSelect = widget.NewRadioGroup([]string{
		sd.localization.GetText(KeyThemeLight),
		sd.localization.GetText(KeyThemeDark),
	}, nil)
	sd.themeSelect.Horizontal = true

	// Language selection
	languages := sd.localization.GetAvailableLanguages()
	sd.languageCodes = make([]string, 0, len(languages))
	for code := range languages {
		sd.languageCodes = append(sd.languageCodes, code)
	}
	sort.Strings(sd.languageCodes)

	languageOptions := make([]string, len(sd.languageCodes))
	for i, code := range sd.languageCodes {
		languageOptions[i] = languages[code]
	}
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	// Background type and color
	sd.backgroundTypeSelect = widget.NewSelect([]string{
		string(model.BackgroundColor),
		string(model.BackgroundImage),
	}, nil)

	sd.backgroundColorEntry = widget.NewEntry()
	sd.backgroundColorEntry.SetPlaceHolder("#1e1e2e")

	// The image entry takes a remote URL; an upload fills it with a data URL
	sd.backgroundImageEntry = widget.NewEntry()
	sd.backgroundImageEntry.SetPlaceHolder("https://example.com/background.jpg")

	uploadBtn := widget.NewButton(sd.localization.GetText(KeyUploadImage), sd.onUploadBackground)
	resetBtn := widget.NewButton(sd.localization.GetText(KeyReset), func() {
		sd.backgroundImageEntry.SetText("")
		sd.backgroundColorEntry.SetText("")
	})
	backgroundRow := container.NewHBox(uploadBtn, resetBtn)

	// Weather
	sd.weatherCheck = widget.NewCheck(sd.localization.GetText(KeyWeather), nil)
	sd.locationEntry = widget.NewEntry()
	sd.locationEntry.SetPlaceHolder("São Paulo")
	sd.opacitySlider = widget.NewSlider(0, 1)
	sd.opacitySlider.Step = 0.05

	// Import / export
	scopeOptions := []string{
		sd.localization.GetText(KeyScopeAll),
		sd.localization.GetText(KeyScopeFavorites),
		sd.localization.GetText(KeyScopeSettings),
	}
	sd.scopes = []transfer.Scope{transfer.ScopeAll, transfer.ScopeFavorites, transfer.ScopeSettings}
	sd.scopeSelect = widget.NewSelect(scopeOptions, nil)
	sd.scopeSelect.SetSelectedIndex(0)

	importBtn := widget.NewButton(sd.localization.GetText(KeyImport), sd.onImport)
	exportBtn := widget.NewButton(sd.localization.GetText(KeyExport), sd.onExport)
	transferRow := container.NewHBox(sd.scopeSelect, importBtn, exportBtn)

	// Create form
	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyTheme)),
		sd.themeSelect,
		widget.NewLabel(sd.localization.GetText(KeyLanguage)),
		sd.languageSelect,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyBackground)),
		sd.backgroundTypeSelect,
		widget.NewLabel(sd.localization.GetText(KeyBackgroundColor)),
		sd.backgroundColorEntry,
		widget.NewLabel(sd.localization.GetText(KeyBackgroundImage)),
		sd.backgroundImageEntry,
		backgroundRow,

		widget.NewSeparator(),
		sd.weatherCheck,
		widget.NewLabel(sd.localization.GetText(KeyWeatherLocation)),
		sd.locationEntry,
		widget.NewLabel(sd.localization.GetText(KeyWeatherOpacity)),
		sd.opacitySlider,

		widget.NewSeparator(),
		widget.NewLabel(sd.localization.GetText(KeyImportExport)),
		transferRow,
	)

	// Create dialog with buttons
	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		container.NewVScroll(form),
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	settings := sd.store.Current()

	if settings.Theme == model.ThemeLight {
		sd.themeSelect.SetSelected(sd.localization.GetText(KeyThemeLight))
	} else {
		sd.themeSelect.SetSelected(sd.localization.GetText(KeyThemeDark))
	}
	for i, code := range sd.languageCodes {
		if code == sd.localization.GetCurrentLanguage() {
			sd.languageSelect.SetSelectedIndex(i)
			break
		}
	}
	sd.backgroundTypeSelect.SetSelected(string(settings.BackgroundType))
	sd.backgroundColorEntry.SetText(settings.BackgroundColor)
	sd.backgroundImageEntry.SetText(settings.BackgroundImage)
	sd.weatherCheck.SetChecked(settings.Weather)
	sd.locationEntry.SetText(settings.WeatherLocation)
	sd.opacitySlider.SetValue(settings.WeatherOpacity)
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	settings := sd.store.Current()

	if sd.themeSelect.Selected == sd.localization.GetText(KeyThemeLight) {
		settings.Theme = model.ThemeLight
	} else {
		settings.Theme = model.ThemeDark
	}
	if sd.backgroundTypeSelect.Selected != "" {
		settings.BackgroundType = model.BackgroundType(sd.backgroundTypeSelect.Selected)
	}
	settings.BackgroundColor = sd.backgroundColorEntry.Text
	settings.BackgroundImage = sd.backgroundImageEntry.Text
	settings.Weather = sd.weatherCheck.Checked
	settings.WeatherLocation = sd.locationEntry.Text
	settings.WeatherOpacity = sd.opacitySlider.Value

	sd.store.Save(settings)
	sd.saveLanguage()
}

// saveLanguage persists a language switch and notifies the UI
func (sd *SettingsDialog) saveLanguage() {
	index := sd.languageSelect.SelectedIndex()
	if index < 0 || index >= len(sd.languageCodes) {
		return
	}

	code := sd.languageCodes[index]
	if code == sd.localization.GetCurrentLanguage() {
		return
	}

	sd.store.SetLanguage(code)
	if sd.onLanguageChange != nil {
		sd.onLanguageChange(code)
	}
}

// onUploadBackground stages an uploaded background image as a data URL
func (sd *SettingsDialog) onUploadBackground() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		dataURL, err := icon.ReadDataURL(reader)
		if err != nil {
			dialog.ShowError(err, sd.window)
			return
		}
		sd.backgroundImageEntry.SetText(dataURL)
		sd.backgroundTypeSelect.SetSelected(string(model.BackgroundImage))
	}, sd.window)
}

// selectedScope maps the scope select onto a transfer scope
func (sd *SettingsDialog) selectedScope() transfer.Scope {
	index := sd.scopeSelect.SelectedIndex()
	if index < 0 || index >= len(sd.scopes) {
		return transfer.ScopeAll
	}
	return sd.scopes[index]
}

// onExport serializes the selected scope to a file of the user's choosing
func (sd *SettingsDialog) onExport() {
	scope := sd.selectedScope()

	payload, err := transfer.Export(sd.store.Current(), scope)
	if err != nil {
		log.Printf("Export failed for scope %s: %v", scope, err)
		dialog.ShowError(err, sd.window)
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()

		if _, err := writer.Write(payload); err != nil {
			log.Printf("Export write failed: %v", err)
			dialog.ShowError(err, sd.window)
		}
	}, sd.window)
	saveDialog.SetFileName(transfer.Filename(scope))
	saveDialog.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	saveDialog.Show()
}

// onImport applies a JSON file to the selected scope. A failed import is
// reported and changes nothing.
func (sd *SettingsDialog) onImport() {
	scope := sd.selectedScope()

	openDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		payload, err := io.ReadAll(reader)
		if err != nil {
			dialog.ShowError(err, sd.window)
			return
		}

		imported, err := transfer.Import(payload, scope, sd.store.Current())
		if err != nil {
			log.Printf("Import failed for scope %s: %v", scope, err)
			dialog.ShowError(err, sd.window)
			return
		}

		sd.store.Save(imported)
		sd.loadCurrentSettings()
		dialog.ShowInformation(sd.localization.GetText(KeyImport),
			sd.localization.GetText(KeyImportDone), sd.window)
	}, sd.window)
	openDialog.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
	openDialog.Show()
}
