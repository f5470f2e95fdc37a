package ui

import (
	"encoding/base64"
	"image/color"
	"log"
	"math"
	"net/url"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/dashtab/dashtab/internal/config"
	"github.com/dashtab/dashtab/internal/favorites"
	"github.com/dashtab/dashtab/internal/icon"
	"github.com/dashtab/dashtab/internal/model"
	"github.com/dashtab/dashtab/internal/platform"
	"github.com/dashtab/dashtab/internal/weather"
)

// RootUI represents the main UI structure
type RootUI struct {
	window fyne.Window
	app    fyne.App

	store        *config.Store
	favoritesSvc *favorites.Service
	poller       *weather.Poller
	discoverer   *icon.Discoverer
	localization *Localization

	// Background layers
	backgroundRect    *canvas.Rectangle
	backgroundImage   *canvas.Image
	backgroundOverlay *canvas.Rectangle

	// Favorites grid
	grid  *fyne.Container
	tiles []*FavoriteTile

	// Weather and clock
	weatherWidget *WeatherWidget

	// First-run hint banner
	firstRunBanner *fyne.Container
	firstRunLabel  *widget.Label

	weatherRunning bool
	lastLocation   string

	favoriteDialog *FavoriteDialog
	settingsDialog *SettingsDialog
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, store *config.Store, favoritesSvc *favorites.Service, poller *weather.Poller) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(store.Language())

	ui := &RootUI{
		window:       window,
		app:          app,
		store:        store,
		favoritesSvc: favoritesSvc,
		poller:       poller,
		discoverer:   icon.NewDiscoverer(),
		localization: localization,
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.favoriteDialog = NewFavoriteDialog(window, localization, ui.discoverer)
	ui.settingsDialog = NewSettingsDialog(store, window, localization)
	ui.settingsDialog.SetLanguageChangeCallback(ui.onLanguageChanged)

	ui.setupUI()

	// Poller callbacks must be in place before applySettings starts polling
	poller.SetOnUpdate(ui.OnWeatherUpdate)
	poller.SetOnError(ui.OnWeatherError)

	// React to every saved snapshot, whichever dialog or service produced it
	store.OnChange(ui.onSettingsChanged)

	settings := store.Load()
	ui.applySettings(settings)
	ui.rebuildGrid(settings)

	log.Printf("Root UI initialized with %d favorites", len(settings.Favorites))
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.backgroundRect = canvas.NewRectangle(color.Transparent)
	ui.backgroundImage = canvas.NewImageFromResource(nil)
	ui.backgroundImage.FillMode = canvas.ImageFillStretch
	ui.backgroundImage.Hide()

	// Dim overlay keeps labels readable over image backgrounds
	ui.backgroundOverlay = canvas.NewRectangle(color.RGBA{A: 80})
	ui.backgroundOverlay.Hide()

	ui.weatherWidget = NewWeatherWidget()

	addBtn := widget.NewButton(IconAdd, ui.onAddFavorite)
	addBtn.Importance = widget.LowImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	topPanel := container.NewBorder(nil, nil,
		container.NewHBox(addBtn, settingsBtn),
		container.NewVBox(ui.weatherWidget),
	)

	// First-run hint, dismissed once and never shown again
	ui.firstRunLabel = widget.NewLabel(ui.localization.GetText(KeyFirstURLAlert))
	bannerClose := widget.NewButton(IconClose, ui.onDismissFirstRunBanner)
	bannerClose.Importance = widget.LowImportance
	ui.firstRunBanner = container.NewHBox(ui.firstRunLabel, bannerClose)
	ui.firstRunBanner.Hide()

	ui.grid = container.NewGridWrap(fyne.NewSize(TileWidth, TileHeight))

	content := container.NewBorder(
		container.NewVBox(topPanel, ui.firstRunBanner), // top
		nil, // bottom
		nil, // left
		nil, // right
		container.NewVScroll(container.NewPadded(ui.grid)),
	)

	ui.window.SetContent(container.NewStack(ui.backgroundRect, ui.backgroundImage, ui.backgroundOverlay, content))

	log.Printf("UI setup completed successfully")
}

// Shutdown stops the clock and the weather poller. Called when the window
// closes.
func (ui *RootUI) Shutdown() {
	ui.weatherWidget.StopClock()
	ui.poller.Stop()
}

// OnWeatherUpdate feeds a fresh reading into the widget. Safe to call from
// the poller goroutine.
func (ui *RootUI) OnWeatherUpdate(data model.WeatherData) {
	fyne.Do(func() {
		ui.weatherWidget.SetData(data)
	})
}

// OnWeatherError surfaces a failed refresh as a transient notice; stale
// conditions stay on screen until a refresh succeeds. Safe to call from the
// poller goroutine.
func (ui *RootUI) OnWeatherError(_ error) {
	fyne.Do(func() {
		ui.showNotice(ui.localization.GetText(KeyWeatherFailed))
	})
}

// onLanguageChanged switches UI texts to the selected language. Dialogs bake
// their labels in at construction, so the settings dialog is rebuilt.
func (ui *RootUI) onLanguageChanged(code string) {
	ui.localization.SetLanguage(code)
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.firstRunLabel.SetText(ui.localization.GetText(KeyFirstURLAlert))

	ui.settingsDialog = NewSettingsDialog(ui.store, ui.window, ui.localization)
	ui.settingsDialog.SetLanguageChangeCallback(ui.onLanguageChanged)
}

// onSettingsChanged re-renders after every saved snapshot
func (ui *RootUI) onSettingsChanged(settings model.Settings) {
	fyne.Do(func() {
		ui.applySettings(settings)
		ui.rebuildGrid(settings)
	})
}

// applySettings renders the presentation side of a snapshot: background,
// weather visibility, opacity and polling location.
func (ui *RootUI) applySettings(settings model.Settings) {
	// Background layers
	if settings.BackgroundType == model.BackgroundImage && settings.BackgroundImage != "" {
		ui.applyBackgroundImage(settings.BackgroundImage)
	} else {
		ui.hideBackgroundImage()
	}
	ui.backgroundRect.FillColor = parseHexColor(settings.BackgroundColor)
	ui.backgroundRect.Refresh()

	// Weather widget. Polling starts and stops on toggle transitions only;
	// a location change while running goes through the debounced path.
	ui.weatherWidget.SetOpacity(settings.WeatherOpacity)
	if settings.Weather {
		ui.weatherWidget.Show()
		if !ui.weatherRunning {
			ui.poller.Start(settings.WeatherLocation)
			ui.weatherRunning = true
		} else if settings.WeatherLocation != ui.lastLocation {
			ui.poller.SetLocation(settings.WeatherLocation)
		}
		ui.lastLocation = settings.WeatherLocation
	} else {
		ui.weatherWidget.Hide()
		if ui.weatherRunning {
			ui.poller.Stop()
			ui.weatherRunning = false
		}
	}

	// First-run hint
	if settings.ShowAddFirstURLAlert {
		ui.firstRunBanner.Show()
	} else {
		ui.firstRunBanner.Hide()
	}
}

// applyBackgroundImage renders an embedded data URL directly and fetches a
// remote URL off the UI thread, like tile icons. A value that cannot be
// loaded clears the image layer instead of leaving a stale one up.
func (ui *RootUI) applyBackgroundImage(value string) {
	if isRemoteImageURL(value) {
		go func() {
			resource, err := fyne.LoadResourceFromURLString(value)
			fyne.Do(func() {
				if err != nil {
					log.Printf("Background image load failed: %v", err)
					ui.hideBackgroundImage()
					return
				}
				ui.showBackgroundImage(resource)
			})
		}()
		return
	}

	resource, ok := backgroundResource(value)
	if !ok {
		ui.hideBackgroundImage()
		return
	}
	ui.showBackgroundImage(resource)
}

func (ui *RootUI) showBackgroundImage(resource fyne.Resource) {
	ui.backgroundImage.Resource = resource
	ui.backgroundImage.Show()
	ui.backgroundOverlay.Show()
	ui.backgroundImage.Refresh()
}

func (ui *RootUI) hideBackgroundImage() {
	ui.backgroundImage.Hide()
	ui.backgroundOverlay.Hide()
}

// rebuildGrid recreates the tiles from the current favorites order
func (ui *RootUI) rebuildGrid(settings model.Settings) {
	ui.tiles = nil
	ui.grid.Objects = nil

	for _, favorite := range settings.Favorites {
		tile := NewFavoriteTile(favorite, ui.localization)
		tile.SetCallbacks(
			ui.onOpenFavorite,
			ui.onEditFavorite,
			ui.onDeleteFavorite,
			ui.onCopyFavoriteURL,
			ui.onTileDragEnd,
		)
		ui.tiles = append(ui.tiles, tile)
		ui.grid.Add(tile)
	}
	ui.grid.Refresh()
}

// onOpenFavorite opens the favorite in the default browser
func (ui *RootUI) onOpenFavorite(favorite model.Favorite) {
	target, err := url.Parse(favorite.URL)
	if err != nil {
		log.Printf("Cannot open favorite %s, bad URL %q: %v", favorite.ID, favorite.URL, err)
		return
	}
	if err := ui.app.OpenURL(target); err != nil {
		log.Printf("Opening %s via app failed, trying the system browser: %v", favorite.URL, err)
		if err := platform.OpenInBrowser(favorite.URL); err != nil {
			log.Printf("Opening %s failed: %v", favorite.URL, err)
		}
	}
}

// onCopyFavoriteURL copies the favorite's URL to the clipboard
func (ui *RootUI) onCopyFavoriteURL(favorite model.Favorite) {
	ui.window.Clipboard().SetContent(favorite.URL)
	widget.ShowPopUp(widget.NewLabel(ui.localization.GetText(KeyURLCopied)), ui.window.Canvas())
}

// onAddFavorite opens the add dialog
func (ui *RootUI) onAddFavorite() {
	ui.favoriteDialog.ShowAdd(func(name, rawURL string) bool {
		_, ok := ui.favoritesSvc.Add(name, rawURL)
		return ok
	})
}

// onEditFavorite opens the edit dialog for a tile
func (ui *RootUI) onEditFavorite(favoriteID string) {
	var favorite model.Favorite
	found := false
	for _, candidate := range ui.store.Current().Favorites {
		if candidate.ID == favoriteID {
			favorite = candidate
			found = true
			break
		}
	}
	if !found {
		return
	}

	ui.favoriteDialog.ShowEdit(favorite, func(patch model.Favorite) bool {
		return ui.favoritesSvc.Edit(favoriteID, patch)
	})
}

// onDeleteFavorite removes the tile immediately and offers an undo toast
func (ui *RootUI) onDeleteFavorite(favoriteID string) {
	token, removed, ok := ui.favoritesSvc.Remove(favoriteID)
	if !ok {
		return
	}
	ui.showUndoToast(removed, token)
}

// onDismissFirstRunBanner hides the first-run hint for good
func (ui *RootUI) onDismissFirstRunBanner() {
	settings := ui.store.Current()
	settings.ShowAddFirstURLAlert = false
	ui.store.Save(settings)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ui.settingsDialog.Show()
}

// onTileDragEnd translates a drop offset into a reorder. The offset is
// converted to a grid cell delta using the wrap layout's column count.
func (ui *RootUI) onTileDragEnd(draggedID string, offset fyne.Position) {
	favoritesList := ui.store.Current().Favorites

	draggedIndex := -1
	for i, favorite := range favoritesList {
		if favorite.ID == draggedID {
			draggedIndex = i
			break
		}
	}
	if draggedIndex < 0 {
		return
	}

	columns := int(ui.grid.Size().Width / TileWidth)
	if columns < 1 {
		columns = 1
	}

	deltaCols := int(math.Round(float64(offset.X / TileWidth)))
	deltaRows := int(math.Round(float64(offset.Y / TileHeight)))

	targetIndex := draggedIndex + deltaRows*columns + deltaCols
	if targetIndex < 0 {
		targetIndex = 0
	}
	if targetIndex >= len(favoritesList) {
		targetIndex = len(favoritesList) - 1
	}
	if targetIndex == draggedIndex {
		return
	}

	ui.favoritesSvc.Reorder(draggedID, favoritesList[targetIndex].ID)
}

// showUndoToast shows a transient toast with an undo action for a deletion
func (ui *RootUI) showUndoToast(removed model.Favorite, token string) {
	titleLabel := widget.NewLabel(ui.localization.GetText(KeyFavoriteDeleted))
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	messageLabel := widget.NewLabel(removed.DisplayName())
	messageLabel.Truncation = fyne.TextTruncateEllipsis

	var toastPopup *widget.PopUp

	undoBtn := widget.NewButton(ui.localization.GetText(KeyUndo), func() {
		if !ui.favoritesSvc.Undo(token) {
			log.Printf("Undo offer %s already expired", token)
		}
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	undoBtn.Importance = widget.HighImportance

	closeBtn := widget.NewButton(IconClose, func() {
		if toastPopup != nil {
			toastPopup.Hide()
		}
	})
	closeBtn.Importance = widget.LowImportance

	header := container.NewBorder(nil, nil, titleLabel, closeBtn)
	content := container.NewVBox(
		header,
		messageLabel,
		container.NewHBox(undoBtn),
	)

	toastPopup = widget.NewPopUp(content, ui.window.Canvas())

	// Position in top-right corner
	canvasSize := ui.window.Canvas().Size()
	toastSize := fyne.NewSize(ToastWidth, ToastHeight)
	toastPos := fyne.NewPos(canvasSize.Width-toastSize.Width-ToastMargin, ToastMargin)

	toastPopup.Resize(toastSize)
	toastPopup.ShowAtPosition(toastPos)

	// Auto-hide alongside the undo window
	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(func() {
			if toastPopup != nil {
				toastPopup.Hide()
			}
		})
	}()
}

// showNotice shows a short-lived message popup in the top-right corner
func (ui *RootUI) showNotice(message string) {
	label := widget.NewLabel(message)
	popup := widget.NewPopUp(label, ui.window.Canvas())

	canvasSize := ui.window.Canvas().Size()
	popup.ShowAtPosition(fyne.NewPos(canvasSize.Width-ToastWidth-ToastMargin, ToastMargin))

	go func() {
		time.Sleep(ToastAutoHide)
		fyne.Do(popup.Hide)
	}()
}

// isRemoteImageURL reports whether a background image value points at the
// network rather than holding embedded data
func isRemoteImageURL(value string) bool {
	return strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://")
}

// parseHexColor parses a #rrggbb value; anything else is transparent so the
// theme background shows through
func parseHexColor(value string) color.Color {
	value = strings.TrimSpace(value)
	if len(value) != 7 || value[0] != '#' {
		return color.Transparent
	}

	var rgb [3]uint8
	for i := 0; i < 3; i++ {
		high, okHigh := hexNibble(value[1+i*2])
		low, okLow := hexNibble(value[2+i*2])
		if !okHigh || !okLow {
			return color.Transparent
		}
		rgb[i] = high<<4 | low
	}
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// backgroundResource decodes an embedded data URL into a renderable resource
func backgroundResource(dataURL string) (fyne.Resource, bool) {
	_, encoded, found := strings.Cut(dataURL, ";base64,")
	if !found {
		return nil, false
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		log.Printf("Background image is not valid base64: %v", err)
		return nil, false
	}
	return fyne.NewStaticResource("background", data), true
}
