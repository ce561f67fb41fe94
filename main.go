package main

import (
	"fmt"

	"fyne.io/fyne/v2/app"

	"github.com/ytget/top-destinations/internal/assets"
	"github.com/ytget/top-destinations/internal/config"
	"github.com/ytget/top-destinations/internal/platform"
	"github.com/ytget/top-destinations/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID = "com.ytget.top-destinations"
)

func main() {
	// Log version information
	fmt.Printf("Top Destinations v%s starting...\n", version)

	cfg := config.Default()

	myApp := app.NewWithID(AppID)
	myApp.Settings().SetTheme(ui.NewDestinationTheme(cfg))

	myWindow := myApp.NewWindow(cfg.Window.Title)

	// Thumbnails are loaded synchronously before the event loop starts
	resolver := platform.NewDefaultImageResolver(assets.FS)
	rows := ui.LoadRows(resolver, cfg.Cell)

	ui.NewRootUI(myWindow, cfg, rows)

	// Show and run; returns when the master window is closed
	myWindow.ShowAndRun()
}
