package main

import (
	"flag"
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/vdio/internal/config"
	"github.com/ytget/vdio/internal/download"
	"github.com/ytget/vdio/internal/logging"
	"github.com/ytget/vdio/internal/platform"
	"github.com/ytget/vdio/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.vdio"
	AppName = "VDio"
)

func main() {
	logLevel := flag.String("log-level", "info", "log level (debug, info, warn, error)")
	flag.Parse()

	logging.Setup(*logLevel, nil)
	log := logging.Component("app")
	log.WithField("version", version).Info(AppName + " starting")

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewCompactTheme())
	if icon, err := ui.LoadLogoResource(); err == nil {
		myApp.SetIcon(icon)
	} else {
		log.WithError(err).Debug("App icon not loaded")
	}

	myWindow := myApp.NewWindow(fmt.Sprintf("%s v%s", AppName, version))
	myWindow.Resize(fyne.NewSize(ui.WindowWidth, ui.WindowHeight))

	settings := config.NewSettings(myApp)
	fetcher := download.NewProcessFetcher(settings.Executable())
	fs := platform.NewOSFileSystem(logging.Component("fs"))

	ui.NewRootUI(myWindow, settings, fetcher, fs, logging.Component("ui"))

	myWindow.ShowAndRun()
}
