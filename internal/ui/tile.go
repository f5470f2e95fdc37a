package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/dashtab/dashtab/internal/icon"
	"github.com/dashtab/dashtab/internal/model"
)

// Interface checks for the gesture surface of a tile
var (
	_ fyne.Tappable          = (*FavoriteTile)(nil)
	_ fyne.SecondaryTappable = (*FavoriteTile)(nil)
	_ fyne.Draggable         = (*FavoriteTile)(nil)
)

// FavoriteTile is one grid cell: icon above label, a primary tap opens the
// site, a secondary tap opens the context menu and a drag reorders the grid.
type FavoriteTile struct {
	widget.BaseWidget

	favorite     model.Favorite
	localization *Localization

	iconImage   *canvas.Image
	letterBadge *canvas.Text
	nameLabel   *widget.Label
	highlight   *canvas.Rectangle

	// Drag state, cleared on DragEnd
	dragOffset fyne.Position
	isDragging bool

	// Callbacks
	onOpen    func(model.Favorite)
	onEdit    func(favoriteID string)
	onDelete  func(favoriteID string)
	onCopyURL func(model.Favorite)
	onDragEnd func(draggedID string, offset fyne.Position)
}

// NewFavoriteTile creates a tile for one favorite
func NewFavoriteTile(favorite model.Favorite, localization *Localization) *FavoriteTile {
	tile := &FavoriteTile{
		favorite:     favorite,
		localization: localization,
	}
	tile.ExtendBaseWidget(tile)
	tile.createUI()
	return tile
}

// SetCallbacks sets the action callbacks
func (f *FavoriteTile) SetCallbacks(
	onOpen func(model.Favorite),
	onEdit func(favoriteID string),
	onDelete func(favoriteID string),
	onCopyURL func(model.Favorite),
	onDragEnd func(draggedID string, offset fyne.Position),
) {
	f.onOpen = onOpen
	f.onEdit = onEdit
	f.onDelete = onDelete
	f.onCopyURL = onCopyURL
	f.onDragEnd = onDragEnd
}

// Favorite returns the favorite this tile renders
func (f *FavoriteTile) Favorite() model.Favorite {
	return f.favorite
}

// createUI builds the tile content and kicks off icon loading. The letter
// badge stands in until an icon arrives, and stays if none ever does.
func (f *FavoriteTile) createUI() {
	f.iconImage = canvas.NewImageFromResource(nil)
	f.iconImage.FillMode = canvas.ImageFillContain
	f.iconImage.SetMinSize(fyne.NewSize(TileIconSize, TileIconSize))
	f.iconImage.Hide()

	f.letterBadge = canvas.NewText(tileInitial(f.favorite.DisplayName()), theme.Color(theme.ColorNameForeground))
	f.letterBadge.TextSize = TileIconSize - 8
	f.letterBadge.TextStyle = fyne.TextStyle{Bold: true}
	f.letterBadge.Alignment = fyne.TextAlignCenter

	f.nameLabel = widget.NewLabel(f.favorite.DisplayName())
	f.nameLabel.Alignment = fyne.TextAlignCenter
	f.nameLabel.Truncation = fyne.TextTruncateEllipsis

	f.highlight = canvas.NewRectangle(theme.Color(theme.ColorNameHover))
	f.highlight.Hide()

	f.loadIcon()
}

// CreateRenderer renders the tile as highlight under icon and label
func (f *FavoriteTile) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewVBox(
		container.NewCenter(container.NewStack(f.letterBadge, f.iconImage)),
		f.nameLabel,
	)
	return widget.NewSimpleRenderer(container.NewStack(f.highlight, container.NewCenter(content)))
}

// MinSize keeps tiles uniform so the wrap grid lines up
func (f *FavoriteTile) MinSize() fyne.Size {
	return fyne.NewSize(TileWidth, TileHeight)
}

// loadIcon fetches the tile icon in the background. A configured icon URL
// wins over the favicon service; either failure keeps the placeholder.
func (f *FavoriteTile) loadIcon() {
	iconURL := f.favorite.IconURL
	if iconURL == "" {
		iconURL = icon.RemoteFaviconURL(f.favorite.URL)
	}
	if iconURL == "" {
		return
	}

	go func() {
		resource, err := fyne.LoadResourceFromURLString(iconURL)
		if err != nil {
			log.Printf("Icon load failed for %s: %v", f.favorite.ID, err)
			return
		}
		fyne.Do(func() {
			f.iconImage.Resource = resource
			f.letterBadge.Hide()
			f.iconImage.Show()
			f.iconImage.Refresh()
		})
	}()
}

// Tapped opens the favorite in the browser
func (f *FavoriteTile) Tapped(_ *fyne.PointEvent) {
	if f.onOpen != nil {
		f.onOpen(f.favorite)
	}
}

// TappedSecondary shows the context menu
func (f *FavoriteTile) TappedSecondary(event *fyne.PointEvent) {
	menu := fyne.NewMenu("",
		fyne.NewMenuItem(f.localization.GetText(KeyOpenInBrowser), func() {
			if f.onOpen != nil {
				f.onOpen(f.favorite)
			}
		}),
		fyne.NewMenuItem(f.localization.GetText(KeyCopyURL), func() {
			if f.onCopyURL != nil {
				f.onCopyURL(f.favorite)
			}
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(f.localization.GetText(KeyEdit), func() {
			if f.onEdit != nil {
				f.onEdit(f.favorite.ID)
			}
		}),
		fyne.NewMenuItem(f.localization.GetText(KeyDelete), func() {
			if f.onDelete != nil {
				f.onDelete(f.favorite.ID)
			}
		}),
	)

	tileCanvas := fyne.CurrentApp().Driver().CanvasForObject(f)
	if tileCanvas == nil {
		return
	}
	widget.ShowPopUpMenuAtPosition(menu, tileCanvas, event.AbsolutePosition)
}

// Dragged accumulates the drag offset and marks the tile as the drag source
func (f *FavoriteTile) Dragged(event *fyne.DragEvent) {
	if !f.isDragging {
		f.isDragging = true
		f.highlight.Show()
		f.Refresh()
	}
	f.dragOffset = f.dragOffset.AddXY(event.Dragged.DX, event.Dragged.DY)
}

// DragEnd hands the accumulated offset to the grid and clears drag state,
// whether or not the drop lands on another tile.
func (f *FavoriteTile) DragEnd() {
	offset := f.dragOffset
	f.dragOffset = fyne.Position{}
	f.isDragging = false
	f.highlight.Hide()
	f.Refresh()

	if f.onDragEnd != nil {
		f.onDragEnd(f.favorite.ID, offset)
	}
}

// tileInitial returns the badge letter for a display name
func tileInitial(name string) string {
	for _, r := range name {
		return string(r)
	}
	return "?"
}
