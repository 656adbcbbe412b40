package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/bhashadesk/bhashadesk/internal/api"
	"github.com/bhashadesk/bhashadesk/internal/audio"
	"github.com/bhashadesk/bhashadesk/internal/config"
	"github.com/bhashadesk/bhashadesk/internal/platform"
	"github.com/bhashadesk/bhashadesk/internal/translate"
	"github.com/bhashadesk/bhashadesk/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.bhashadesk.bhashadesk"
	AppName = "BhashaDesk"

	WindowWidth  = 560
	WindowHeight = 620

	StartupLoadTimeout = 10 * time.Second
)

func main() {
	// Log version information
	fmt.Printf("BhashaDesk v%s starting...\n", version)

	// Create new Fyne app
	myApp := app.NewWithID(AppID)

	// Apply compact theme
	myApp.Settings().SetTheme(ui.NewCompactTheme())

	windowTitle := fmt.Sprintf("%s v%s", AppName, version)
	myWindow := myApp.NewWindow(windowTitle)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Initialize services
	settings := config.NewSettings(myApp)
	client := api.NewClient(settings.GetServerURL())

	clipStore, err := audio.NewService(client, platform.ClipCacheDir())
	if err != nil {
		log.Fatalf("failed to create audio cache: %v", err)
	}

	downloadDir := settings.GetDownloadDirectory()
	if err := platform.CreateDirectoryIfNotExists(downloadDir); err != nil {
		log.Printf("failed to ensure download dir: %v", err)
	}

	// Create and wire UI
	rootUI := ui.NewRootUI(myWindow, myApp)
	controller := translate.NewController(client, clipStore, rootUI, settings.GetTargetLanguage())
	rootUI.SetController(controller)

	// Ping the backend and pull its language table in the background so
	// the window shows immediately.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), StartupLoadTimeout)
		defer cancel()
		controller.LoadRemoteData(ctx)
	}()

	// Sweep staged audio clips on shutdown
	myWindow.SetOnClosed(func() {
		clipStore.Cleanup()
	})

	// Show and run
	myWindow.ShowAndRun()
}
