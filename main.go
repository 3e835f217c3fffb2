package main

import (
	"context"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/joshdecs/soundcloud-playlist-converter/internal/config"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/engine"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/logging"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/platform"
	"github.com/joshdecs/soundcloud-playlist-converter/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.joshdecs.soundcloud-playlist-converter"
	AppName = "SoundCloud Playlist Downloader"
)

func main() {
	logging.Init(false)
	log := logging.Component("main")
	log.Info().Str("version", version).Msg("starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(ui.WindowMinWidth, ui.WindowMinHeight))

	// Provision yt-dlp if absent; a system-installed binary also works.
	if err := engine.EnsureInstalled(context.Background()); err != nil {
		log.Warn().Err(err).Msg("yt-dlp provisioning failed, relying on PATH")
	}

	settings := config.NewSettings(myApp)
	if err := platform.CreateDirectoryIfNotExists(settings.GetDownloadDirectory()); err != nil {
		log.Warn().Err(err).Msg("failed to ensure downloads dir")
	}

	ui.NewRootUI(myWindow, myApp, engine.NewYTDLPEngine())

	myWindow.ShowAndRun()
}
