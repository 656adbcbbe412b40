package config

import (
	"testing"

	"fyne.io/fyne/v2/test"
)

func TestNewSettings(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if settings.app != app {
		t.Error("Settings app reference should match provided app")
	}
}

func TestServerURL(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	// Test default value
	if url := settings.GetServerURL(); url != DefaultServerURL {
		t.Errorf("Expected default server URL %s, got %s", DefaultServerURL, url)
	}

	// Test setting custom value
	settings.SetServerURL("http://translator.local:8080")
	if url := settings.GetServerURL(); url != "http://translator.local:8080" {
		t.Errorf("Expected custom server URL, got %s", url)
	}

	// Trailing slashes are normalized away
	settings.SetServerURL("http://translator.local:8080/")
	if url := settings.GetServerURL(); url != "http://translator.local:8080" {
		t.Errorf("Expected trailing slash trimmed, got %s", url)
	}

	// Empty value self-heals to the default
	settings.SetServerURL("   ")
	if url := settings.GetServerURL(); url != DefaultServerURL {
		t.Errorf("Expected empty URL to reset to default, got %s", url)
	}
}

func TestTargetLanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetTargetLanguage(); lang != DefaultTargetLanguage {
		t.Errorf("Expected default target %s, got %s", DefaultTargetLanguage, lang)
	}

	settings.SetTargetLanguage("ta")
	if lang := settings.GetTargetLanguage(); lang != "ta" {
		t.Errorf("Expected target ta, got %s", lang)
	}

	settings.SetTargetLanguage("")
	if lang := settings.GetTargetLanguage(); lang != DefaultTargetLanguage {
		t.Errorf("Expected empty target to reset to default, got %s", lang)
	}
}

func TestAutoPlay(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if !settings.GetAutoPlay() {
		t.Error("Expected auto-play enabled by default")
	}

	settings.SetAutoPlay(false)
	if settings.GetAutoPlay() {
		t.Error("Expected auto-play disabled after SetAutoPlay(false)")
	}
}

func TestDownloadDirectory(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if dir := settings.GetDownloadDirectory(); dir == "" {
		t.Error("Download directory should not be empty")
	}

	customDir := "/custom/exports"
	settings.SetDownloadDirectory(customDir)
	if dir := settings.GetDownloadDirectory(); dir != customDir {
		t.Errorf("Expected download directory %s, got %s", customDir, dir)
	}
}

func TestUILanguage(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	if lang := settings.GetLanguage(); lang != DefaultLanguage {
		t.Errorf("Expected default UI language %s, got %s", DefaultLanguage, lang)
	}

	settings.SetLanguage("hi")
	if lang := settings.GetLanguage(); lang != "hi" {
		t.Errorf("Expected UI language hi, got %s", lang)
	}
}

func TestTargetLanguageOptions(t *testing.T) {
	app := test.NewApp()
	settings := NewSettings(app)

	options := settings.GetTargetLanguageOptions()
	if len(options) == 0 {
		t.Fatal("Expected non-empty target language options")
	}

	found := false
	for _, code := range options {
		if code == "hi" {
			found = true
		}
	}
	if !found {
		t.Error("Expected hi among target language options")
	}
}
