package model

import (
	"fmt"
	"strings"
	"time"
)

// Input limits enforced client-side before any network call.
const (
	// MaxInputRunes is the largest text the backend accepts for translation.
	MaxInputRunes = 5000

	// MinDetectRunes is the smallest trimmed text worth sending to /detect.
	MinDetectRunes = 3
)

// TranslationResult is the outcome of a successful translate call. It is
// owned by the controller and replaced wholesale on every new translation.
type TranslationResult struct {
	Original   string // text that was submitted
	Translated string
	SourceLang string // human-readable, e.g. "English"
	SourceCode string // e.g. "en"
	TargetLang string // human-readable, e.g. "Hindi"
	TargetCode string // e.g. "hi"
	ReceivedAt time.Time
}

// DetectionResult is the outcome of a successful detect call. Each result
// replaces the previous one entirely; no history is kept.
type DetectionResult struct {
	Language string // human-readable, e.g. "Bengali"
	Code     string // e.g. "bn"
}

// Display returns the "Name (code)" form shown in the detection label.
func (dr *DetectionResult) Display() string {
	if dr.Language == "" {
		return dr.Code
	}
	if dr.Code == "" {
		return dr.Language
	}
	return fmt.Sprintf("%s (%s)", dr.Language, dr.Code)
}

// AudioClip is a synthesized speech artifact. A clip is valid only for the
// translation that was current when synthesis was requested; a new
// translation hides the old clip before another one is generated.
type AudioClip struct {
	URL       string // backend URL the clip was fetched from
	LocalPath string // temp file holding the fetched bytes, empty until fetched
	LangCode  string // TTS language the clip was synthesized for
	CreatedAt time.Time
}

// ExportFileName returns the filename used when the user saves the clip:
// translation_<langCode>_<timestamp>.mp3.
func (c *AudioClip) ExportFileName() string {
	lang := c.LangCode
	if lang == "" {
		lang = "unknown"
	}
	ts := c.CreatedAt
	if ts.IsZero() {
		ts = time.Now()
	}
	return fmt.Sprintf("translation_%s_%d.mp3", lang, ts.Unix())
}

// CharCount returns the rune count of text as shown by the live counter.
func CharCount(text string) int {
	return len([]rune(text))
}

// OverInputLimit reports whether text exceeds MaxInputRunes.
func OverInputLimit(text string) bool {
	return CharCount(text) > MaxInputRunes
}

// DetectableText trims text and reports whether it is long enough for
// language detection. The trimmed form is what gets sent to the backend.
func DetectableText(text string) (string, bool) {
	trimmed := strings.TrimSpace(text)
	return trimmed, len([]rune(trimmed)) >= MinDetectRunes
}
