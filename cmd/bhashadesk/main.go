package main

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/bhashadesk/bhashadesk/internal/api"
	"github.com/bhashadesk/bhashadesk/internal/audio"
	"github.com/bhashadesk/bhashadesk/internal/config"
	"github.com/bhashadesk/bhashadesk/internal/platform"
	"github.com/bhashadesk/bhashadesk/internal/translate"
	"github.com/bhashadesk/bhashadesk/internal/ui"
)

func main() {
	// Create new Fyne app
	myApp := app.NewWithID("com.bhashadesk.bhashadesk")
	myWindow := myApp.NewWindow("BhashaDesk")
	myWindow.Resize(fyne.NewSize(560, 620))

	settings := config.NewSettings(myApp)
	client := api.NewClient(settings.GetServerURL())
	clipStore, err := audio.NewService(client, platform.ClipCacheDir())
	if err != nil {
		log.Fatalf("failed to create audio cache: %v", err)
	}

	// Create and wire UI
	rootUI := ui.NewRootUI(myWindow, myApp)
	controller := translate.NewController(client, clipStore, rootUI, settings.GetTargetLanguage())
	rootUI.SetController(controller)

	// Show and run
	myWindow.ShowAndRun()
}
