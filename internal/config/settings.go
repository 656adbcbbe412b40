package config

import (
	"strings"

	"fyne.io/fyne/v2"

	"github.com/bhashadesk/bhashadesk/internal/model"
	"github.com/bhashadesk/bhashadesk/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyServerURL      = "server_url"
	KeyTargetLanguage = "target_language"
	KeyAutoPlay       = "auto_play_audio"
	KeyDownloadDir    = "download_directory"
	KeyLanguage       = "app_language"
)

// Default values
const (
	DefaultServerURL      = "http://localhost:5000"
	DefaultTargetLanguage = "hi"
	DefaultAutoPlay       = true
	DefaultLanguage       = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetServerURL returns the backend base URL
func (s *Settings) GetServerURL() string {
	url := s.app.Preferences().String(KeyServerURL)
	if url == "" {
		s.SetServerURL(DefaultServerURL)
		return DefaultServerURL
	}
	return url
}

// SetServerURL sets the backend base URL
func (s *Settings) SetServerURL(url string) {
	url = strings.TrimSpace(url)
	if url == "" {
		url = DefaultServerURL
	}
	s.app.Preferences().SetString(KeyServerURL, strings.TrimRight(url, "/"))
}

// GetTargetLanguage returns the default target language code
func (s *Settings) GetTargetLanguage() string {
	lang := s.app.Preferences().String(KeyTargetLanguage)
	if lang == "" {
		s.SetTargetLanguage(DefaultTargetLanguage)
		return DefaultTargetLanguage
	}
	return lang
}

// SetTargetLanguage sets the default target language code
func (s *Settings) SetTargetLanguage(code string) {
	if code == "" {
		code = DefaultTargetLanguage
	}
	s.app.Preferences().SetString(KeyTargetLanguage, code)
}

// GetAutoPlay returns whether synthesized audio plays immediately
func (s *Settings) GetAutoPlay() bool {
	return s.app.Preferences().BoolWithFallback(KeyAutoPlay, DefaultAutoPlay)
}

// SetAutoPlay sets whether synthesized audio plays immediately
func (s *Settings) SetAutoPlay(autoPlay bool) {
	s.app.Preferences().SetBool(KeyAutoPlay, autoPlay)
}

// GetDownloadDirectory returns the directory audio exports are saved to
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetHomeDownloadsDir()
		if err != nil {
			defaultDir = platform.FallbackStageRoot
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the audio export directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetLanguage returns the configured UI language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the UI language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetTargetLanguageOptions returns codes offered as default targets
func (s *Settings) GetTargetLanguageOptions() []string {
	codes := make([]string, 0, len(model.BuiltinLanguages))
	for _, l := range model.BuiltinLanguages {
		codes = append(codes, l.Code)
	}
	return codes
}
