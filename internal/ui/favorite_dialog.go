package ui

import (
	"context"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/dashtab/dashtab/internal/icon"
	"github.com/dashtab/dashtab/internal/model"
)

const iconDetectTimeout = 10 * time.Second

// FavoriteDialog drives the add and edit forms. Fields are populated fresh
// on every open, so a cancelled edit leaves nothing behind for the next one.
type FavoriteDialog struct {
	window       fyne.Window
	localization *Localization
	discoverer   *icon.Discoverer

	nameEntry *widget.Entry
	urlEntry  *widget.Entry
	iconEntry *widget.Entry
}

// NewFavoriteDialog creates the dialog helper for a window
func NewFavoriteDialog(window fyne.Window, localization *Localization, discoverer *icon.Discoverer) *FavoriteDialog {
	return &FavoriteDialog{
		window:       window,
		localization: localization,
		discoverer:   discoverer,
	}
}

// ShowAdd opens the add form with empty fields. onSubmit reports whether the
// values were accepted; a rejected submit keeps the form open.
func (fd *FavoriteDialog) ShowAdd(onSubmit func(name, rawURL string) bool) {
	fd.nameEntry = widget.NewEntry()
	fd.urlEntry = widget.NewEntry()
	fd.urlEntry.SetPlaceHolder("example.com")

	form := container.NewVBox(
		widget.NewLabel(fd.localization.GetText(KeyName)),
		fd.nameEntry,
		widget.NewLabel(fd.localization.GetText(KeyURL)),
		fd.urlEntry,
	)

	var d *dialog.ConfirmDialog
	d = dialog.NewCustomConfirm(
		fd.localization.GetText(KeyAddFavorite),
		fd.localization.GetText(KeySave),
		fd.localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			if !onSubmit(fd.nameEntry.Text, fd.urlEntry.Text) {
				dialog.ShowInformation(fd.localization.GetText(KeyAddFavorite),
					fd.localization.GetText(KeyURLRequired), fd.window)
				d.Show()
			}
		},
		fd.window,
	)
	d.Resize(fyne.NewSize(FavoriteDialogWidth, FavoriteDialogHeight))
	d.Show()
}

// ShowEdit opens the edit form populated from the favorite. The icon can be
// typed, detected from the page markup or uploaded as an embedded image.
func (fd *FavoriteDialog) ShowEdit(favorite model.Favorite, onSubmit func(patch model.Favorite) bool) {
	fd.nameEntry = widget.NewEntry()
	fd.nameEntry.SetText(favorite.Name)
	fd.urlEntry = widget.NewEntry()
	fd.urlEntry.SetText(favorite.URL)
	fd.iconEntry = widget.NewEntry()
	fd.iconEntry.SetText(favorite.IconURL)

	detectBtn := widget.NewButton(fd.localization.GetText(KeyDetectIcon), fd.onDetectIcon)
	uploadBtn := widget.NewButton(fd.localization.GetText(KeyUploadImage), fd.onUploadIcon)

	form := container.NewVBox(
		widget.NewLabel(fd.localization.GetText(KeyName)),
		fd.nameEntry,
		widget.NewLabel(fd.localization.GetText(KeyURL)),
		fd.urlEntry,
		widget.NewLabel(fd.localization.GetText(KeyIconURL)),
		fd.iconEntry,
		container.NewHBox(detectBtn, uploadBtn),
	)

	var d *dialog.ConfirmDialog
	d = dialog.NewCustomConfirm(
		fd.localization.GetText(KeyEditFavorite),
		fd.localization.GetText(KeySave),
		fd.localization.GetText(KeyCancel),
		form,
		func(confirmed bool) {
			if !confirmed {
				return
			}
			patch := model.Favorite{
				Name:    fd.nameEntry.Text,
				URL:     fd.urlEntry.Text,
				IconURL: fd.iconEntry.Text,
			}
			if !onSubmit(patch) {
				dialog.ShowInformation(fd.localization.GetText(KeyEditFavorite),
					fd.localization.GetText(KeyURLRequired), fd.window)
				d.Show()
			}
		},
		fd.window,
	)
	d.Resize(fyne.NewSize(FavoriteDialogWidth, FavoriteDialogHeight))
	d.Show()
}

// onDetectIcon fetches the page and fills the icon entry with whatever icon
// its markup declares
func (fd *FavoriteDialog) onDetectIcon() {
	pageURL := model.NormalizeURL(fd.urlEntry.Text)

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), iconDetectTimeout)
		defer cancel()

		iconURL, err := fd.discoverer.PageIconURL(ctx, pageURL)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Icon detection failed for %s: %v", pageURL, err)
				dialog.ShowInformation(fd.localization.GetText(KeyDetectIcon),
					fd.localization.GetText(KeyIconDetectError), fd.window)
				return
			}
			fd.iconEntry.SetText(iconURL)
		})
	}()
}

// onUploadIcon embeds a local image file as a data URL in the icon entry
func (fd *FavoriteDialog) onUploadIcon() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()

		dataURL, err := icon.ReadDataURL(reader)
		if err != nil {
			dialog.ShowError(err, fd.window)
			return
		}
		fd.iconEntry.SetText(dataURL)
	}, fd.window)
}
