package translate

import (
	"context"

	"github.com/bhashadesk/bhashadesk/internal/model"
)

// Backend is the translation service contract consumed by the controller.
// Implemented by api.Client.
type Backend interface {
	Translate(ctx context.Context, text, targetLang string) (*model.TranslationResult, error)
	Detect(ctx context.Context, text string) (*model.DetectionResult, error)
	Synthesize(ctx context.Context, text, lang string) (*model.AudioClip, error)
	Languages(ctx context.Context) ([]model.Language, error)
	Health(ctx context.Context) error
}

// ClipStore fetches and exports synthesized audio clips. Implemented by
// audio.Service.
type ClipStore interface {
	// Fetch downloads the clip bytes and fills in clip.LocalPath.
	Fetch(ctx context.Context, clip *model.AudioClip) error

	// Export copies a fetched clip into dir under its export filename and
	// returns the destination path.
	Export(clip *model.AudioClip, dir string) (string, error)
}

// View is the rendering contract the controller drives. The Fyne layer
// implements it for real; tests use a fake. Implementations are
// responsible for marshalling onto their own UI thread.
type View interface {
	// ShowCharCount updates the live character counter.
	ShowCharCount(count int, overLimit bool)

	// Busy toggles around each network action. Idle restore is guaranteed
	// on every exit path.
	SetTranslateBusy(busy bool)
	SetDetectBusy(busy bool)
	SetSpeakBusy(busy bool)

	// ShowTranslation renders a new result and its derived labels.
	ShowTranslation(result *model.TranslationResult)

	// ShowDetection renders the detected language.
	ShowDetection(result *model.DetectionResult)

	// ShowDetectionTooShort renders the "text too short" placeholder.
	ShowDetectionTooShort()

	// ShowLanguages replaces the target-language options, keeping selected
	// when it is still present.
	ShowLanguages(langs []model.Language, selected string)

	// ShowTargetLanguage updates the derived target-language label.
	ShowTargetLanguage(lang model.Language)

	// SetResultActionsEnabled toggles the speak/copy/download controls.
	SetResultActionsEnabled(enabled bool)

	// ShowAudio reveals the audio row for a fetched clip; HideAudio hides
	// it without deleting the clip file.
	ShowAudio(clip *model.AudioClip)
	HideAudio()

	// PlayClip attempts playback. Playback failure is not a user-facing
	// error; implementations log and move on.
	PlayClip(clip *model.AudioClip)

	// SetClipboard writes text to the system clipboard.
	SetClipboard(text string)

	// ResetAll returns every control to its initial empty state.
	ResetAll()

	// Notify shows a transient message, evicting any current one.
	Notify(message string, kind model.NotificationKind)
}
