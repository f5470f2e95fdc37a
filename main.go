package main

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/dashtab/dashtab/internal/config"
	"github.com/dashtab/dashtab/internal/favorites"
	"github.com/dashtab/dashtab/internal/model"
	"github.com/dashtab/dashtab/internal/ui"
	"github.com/dashtab/dashtab/internal/weather"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.dashtab.app"
	AppName = "DashTab"

	WindowWidth  = 1024
	WindowHeight = 720
)

func main() {
	fmt.Printf("%s v%s starting...\n", AppName, version)

	myApp := app.NewWithID(AppID)

	// Initialize services
	store := config.NewStore(myApp)
	settings := store.Load()
	favoritesSvc := favorites.NewService(store)

	// Pin the configured theme and keep it in sync with saved snapshots
	myApp.Settings().SetTheme(ui.NewAppTheme(settings.Theme))
	store.SetThemeChangeCallback(func(theme model.Theme) {
		fyne.Do(func() {
			myApp.Settings().SetTheme(ui.NewAppTheme(theme))
		})
	})

	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// The root UI owns the poller: it registers the update and error
	// callbacks during setup, before polling starts.
	poller := weather.NewPoller(weather.NewClient())

	rootUI := ui.NewRootUI(myWindow, myApp, store, favoritesSvc, poller)
	myWindow.SetOnClosed(rootUI.Shutdown)

	myWindow.ShowAndRun()
}
