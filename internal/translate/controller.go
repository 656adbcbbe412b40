package translate

import (
	"context"
	"errors"
	"log"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/bhashadesk/bhashadesk/internal/model"
)

// User-facing messages produced by the controller. The view renders them
// as transient notifications.
const (
	MsgEnterText          = "Please enter text to translate"
	MsgTooLong            = "Text is too long (maximum 5000 characters)"
	MsgNoTranslation      = "Please translate text first"
	MsgNoAudio            = "Generate speech before saving audio"
	MsgTranslateFailed    = "Translation failed"
	MsgDetectFailed       = "Language detection failed"
	MsgSpeechFailed       = "Speech generation failed"
	MsgAudioSaveFailed    = "Could not save audio file"
	MsgTranslationReady   = "Translation complete"
	MsgCopied             = "Translation copied to clipboard"
	MsgCleared            = "Cleared"
	MsgBackendUnreachable = "Translation service is unreachable"
)

// Controller owns all mutable UI state and orchestrates the backend calls
// behind each user action. Every action method is synchronous; the UI
// layer invokes them on goroutines so the window stays responsive. Each
// action follows Idle -> Busy -> Idle with the idle restore deferred, so
// it runs on success and failure alike.
//
// Overlapping actions are not fenced: the later completion wins on shared
// state, matching the single-attempt, no-cancellation contract.
type Controller struct {
	backend Backend
	clips   ClipStore
	view    View

	detect *debouncer

	mu          sync.Mutex
	languages   *model.LanguageSet
	targetCode  string
	current     *model.TranslationResult
	clip        *model.AudioClip
	autoPlay    bool
	downloadDir string
}

// NewController creates a controller over the built-in language table with
// the given default target language.
func NewController(backend Backend, clips ClipStore, view View, defaultTarget string) *Controller {
	c := &Controller{
		backend:   backend,
		clips:     clips,
		view:      view,
		detect:    newDebouncer(DetectDebounce),
		languages: model.NewLanguageSet(model.BuiltinLanguages),
		autoPlay:  true,
	}
	if !c.languages.Contains(defaultTarget) {
		defaultTarget = model.BuiltinLanguages[0].Code
	}
	c.targetCode = defaultTarget
	return c
}

// SetDetectDelay overrides the detection quiet period. Used by tests.
func (c *Controller) SetDetectDelay(delay time.Duration) {
	c.detect.SetDelay(delay)
}

// SetAutoPlay controls whether a synthesized clip is played immediately.
func (c *Controller) SetAutoPlay(enabled bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.autoPlay = enabled
}

// SetDownloadDir sets the directory audio exports are written to.
func (c *Controller) SetDownloadDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.downloadDir = dir
}

// TargetLanguage returns the current target language code.
func (c *Controller) TargetLanguage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.targetCode
}

// Languages returns the current language table.
func (c *Controller) Languages() *model.LanguageSet {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.languages
}

// CurrentTranslation returns the translation currently held, or nil.
func (c *Controller) CurrentTranslation() *model.TranslationResult {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// CurrentClip returns the audio clip currently held, or nil.
func (c *Controller) CurrentClip() *model.AudioClip {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.clip
}

// SetTargetLanguage records the selection and refreshes the derived label.
// Pure state update, no network call.
func (c *Controller) SetTargetLanguage(code string) {
	c.mu.Lock()
	c.targetCode = code
	lang, ok := c.languages.Get(code)
	c.mu.Unlock()

	if !ok {
		lang = model.Language{Code: code, Name: code}
	}
	c.view.ShowTargetLanguage(lang)
}

// TextChanged handles every input change: it refreshes the character
// counter and re-arms the detection debounce. Text below the detection
// threshold cancels any pending detection and shows the placeholder
// instead of issuing a request.
func (c *Controller) TextChanged(text string) {
	c.view.ShowCharCount(model.CharCount(text), model.OverInputLimit(text))

	trimmed, ok := model.DetectableText(text)
	if !ok {
		c.detect.Cancel()
		c.view.ShowDetectionTooShort()
		return
	}

	c.detect.Schedule(func() {
		c.Detect(trimmed)
	})
}

// Detect runs language detection for text. Called by the debounce timer
// and by the explicit detect control. On failure the previous detection
// display is left untouched.
func (c *Controller) Detect(text string) {
	trimmed, ok := model.DetectableText(text)
	if !ok {
		c.view.ShowDetectionTooShort()
		return
	}

	c.view.SetDetectBusy(true)
	defer c.view.SetDetectBusy(false)

	result, err := c.backend.Detect(context.Background(), trimmed)
	if err != nil {
		log.Printf("Detection failed: %v", err)
		c.view.Notify(userMessage(err, MsgDetectFailed), model.NotifyError)
		return
	}

	c.view.ShowDetection(result)
}

// Translate validates the input and runs a translation. On success the
// held result is replaced, derived displays refresh, the result actions
// enable, and any audio from the previous translation is hidden.
func (c *Controller) Translate(text string) {
	if strings.TrimSpace(text) == "" {
		c.view.Notify(MsgEnterText, model.NotifyError)
		return
	}
	if model.OverInputLimit(text) {
		c.view.Notify(MsgTooLong, model.NotifyError)
		return
	}

	c.view.SetTranslateBusy(true)
	defer c.view.SetTranslateBusy(false)

	c.mu.Lock()
	target := c.targetCode
	c.mu.Unlock()

	result, err := c.backend.Translate(context.Background(), text, target)
	if err != nil {
		log.Printf("Translation to %s failed: %v", target, err)
		c.view.Notify(userMessage(err, MsgTranslateFailed), model.NotifyError)
		return
	}

	c.mu.Lock()
	c.current = result
	// The old clip belonged to the old translation.
	c.clip = nil
	c.mu.Unlock()

	c.view.HideAudio()
	c.view.ShowTranslation(result)
	c.view.SetResultActionsEnabled(true)
	c.view.Notify(MsgTranslationReady, model.NotifySuccess)
}

// Speak synthesizes speech for the current translation, fetches the clip,
// reveals the audio row, and attempts playback when auto-play is on.
// Playback failure is tolerated silently.
func (c *Controller) Speak() {
	c.mu.Lock()
	current := c.current
	autoPlay := c.autoPlay
	c.mu.Unlock()

	if current == nil {
		c.view.Notify(MsgNoTranslation, model.NotifyError)
		return
	}

	c.view.SetSpeakBusy(true)
	defer c.view.SetSpeakBusy(false)

	ttsCode := c.Languages().TTSCode(current.TargetCode)
	clip, err := c.backend.Synthesize(context.Background(), current.Translated, ttsCode)
	if err != nil {
		log.Printf("Speech synthesis for %s failed: %v", ttsCode, err)
		c.view.Notify(userMessage(err, MsgSpeechFailed), model.NotifyError)
		return
	}

	if err := c.clips.Fetch(context.Background(), clip); err != nil {
		log.Printf("Audio fetch failed: %v", err)
		c.view.Notify(userMessage(err, MsgSpeechFailed), model.NotifyError)
		return
	}

	c.mu.Lock()
	c.clip = clip
	c.mu.Unlock()

	c.view.ShowAudio(clip)
	if autoPlay {
		c.view.PlayClip(clip)
	}
}

// Copy writes the current translation to the clipboard.
func (c *Controller) Copy() {
	c.mu.Lock()
	current := c.current
	c.mu.Unlock()

	if current == nil {
		c.view.Notify(MsgNoTranslation, model.NotifyError)
		return
	}

	c.view.SetClipboard(current.Translated)
	c.view.Notify(MsgCopied, model.NotifySuccess)
}

// Download exports the current clip into the download directory.
func (c *Controller) Download() {
	c.mu.Lock()
	clip := c.clip
	dir := c.downloadDir
	c.mu.Unlock()

	if clip == nil {
		c.view.Notify(MsgNoAudio, model.NotifyError)
		return
	}

	path, err := c.clips.Export(clip, dir)
	if err != nil {
		log.Printf("Audio export failed: %v", err)
		c.view.Notify(MsgAudioSaveFailed, model.NotifyError)
		return
	}

	c.view.Notify("Saved "+path, model.NotifySuccess)
}

// Clear unconditionally resets input, results, and audio. Cannot fail.
func (c *Controller) Clear() {
	c.detect.Cancel()

	c.mu.Lock()
	c.current = nil
	c.clip = nil
	c.mu.Unlock()

	c.view.ResetAll()
	c.view.Notify(MsgCleared, model.NotifyInfo)
}

// LoadRemoteData pings the backend and swaps in its language table when
// available. Health failure surfaces one notification; language failure
// silently keeps the built-in table.
func (c *Controller) LoadRemoteData(ctx context.Context) {
	if err := c.backend.Health(ctx); err != nil {
		log.Printf("Backend health check failed: %v", err)
		c.view.Notify(MsgBackendUnreachable, model.NotifyError)
	}

	langs, err := c.backend.Languages(ctx)
	if err != nil {
		log.Printf("Language list fetch failed, keeping built-ins: %v", err)
		return
	}
	if len(langs) == 0 {
		return
	}

	// The wire format is a map, so impose a stable order.
	sort.Slice(langs, func(i, j int) bool { return langs[i].Name < langs[j].Name })

	c.mu.Lock()
	c.languages = model.NewLanguageSet(langs)
	if !c.languages.Contains(c.targetCode) {
		c.targetCode = langs[0].Code
	}
	selected := c.targetCode
	all := c.languages.All()
	c.mu.Unlock()

	log.Printf("Loaded %d languages from backend", len(all))
	c.view.ShowLanguages(all, selected)
}

// userMessage extracts a server-supplied message from err when present,
// otherwise returns fallback.
func userMessage(err error, fallback string) string {
	var um interface{ UserMessage(string) string }
	if errors.As(err, &um) {
		return um.UserMessage(fallback)
	}
	return fallback
}
