package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/playlist-manager/internal/config"
	"github.com/ytget/playlist-manager/internal/controller"
	"github.com/ytget/playlist-manager/internal/logging"
	"github.com/ytget/playlist-manager/internal/playlist"
	"github.com/ytget/playlist-manager/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.playlist-manager"
	AppName = "Music Playlist Manager"
)

func main() {
	logger := logging.New(os.Stderr)
	logger.Info("starting", "app", AppName, "version", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	settings := config.NewSettings(myApp)

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(
		float32(settings.GetWindowWidth()),
		float32(settings.GetWindowHeight()),
	))
	myWindow.CenterOnScreen()

	// Initialize the store and the controller in front of it
	store := playlist.NewService(logger)
	ctrl := controller.New(store, logger)

	// Create and attach the UI
	root := ui.NewRootUI(myWindow, ctrl, settings)
	ctrl.AttachView(root)

	// Show and run
	myWindow.ShowAndRun()
}
