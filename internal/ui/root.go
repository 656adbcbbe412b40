package ui

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/bhashadesk/bhashadesk/internal/config"
	"github.com/bhashadesk/bhashadesk/internal/model"
	"github.com/bhashadesk/bhashadesk/internal/platform"
	"github.com/bhashadesk/bhashadesk/internal/translate"
)

// Target languages pinned as one-click shortcut buttons above the selector.
var quickTargets = []string{"hi", "ta", "bn", "te"}

// Example inputs offered as one-click presets under the text area.
var exampleTexts = []string{
	"Hello, how are you?",
	"Good morning",
	"Thank you very much",
}

// RootUI is the main window. It implements translate.View: the controller
// decides what to show and RootUI renders it, marshalling every update
// onto the Fyne UI thread.
type RootUI struct {
	window       fyne.Window
	settings     *config.Settings
	localization *Localization
	controller   *translate.Controller
	toasts       *toastManager

	// Input side
	inputEntry     *widget.Entry
	charCountLabel *widget.Label
	detectionLabel *widget.Label
	targetSelect   *widget.Select
	targetByLabel  map[string]string

	// Action buttons
	translateBtn *widget.Button
	detectBtn    *widget.Button
	clearBtn     *widget.Button
	speakBtn     *widget.Button
	copyBtn      *widget.Button

	// Result side
	resultText      *widget.Label
	directionLabel  *widget.Label
	targetLangLabel *widget.Label

	// Audio row, hidden until a clip exists
	audioRow    *fyne.Container
	audioLabel  *widget.Label
	playBtn     *widget.Button
	downloadBtn *widget.Button
	currentClip *model.AudioClip

	copyFlashTimer *time.Timer
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App) *RootUI {
	// Initialize settings
	settings := config.NewSettings(app)

	// Initialize localization
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:        window,
		settings:      settings,
		localization:  localization,
		toasts:        newToastManager(window),
		targetByLabel: make(map[string]string),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	ui.setupUI()
	return ui
}

// SetController attaches the controller after construction. The controller
// needs the view at its own construction time, so wiring happens in two
// steps.
func (ui *RootUI) SetController(c *translate.Controller) {
	ui.controller = c
	ui.populateLanguages(c.Languages().All(), c.TargetLanguage())
	c.SetAutoPlay(ui.settings.GetAutoPlay())
	c.SetDownloadDir(ui.settings.GetDownloadDirectory())
	log.Printf("RootUI attached to controller, target=%s", c.TargetLanguage())
}

// Settings returns the settings manager backing this UI.
func (ui *RootUI) Settings() *config.Settings {
	return ui.settings
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Input area with live character counter
	ui.inputEntry = widget.NewMultiLineEntry()
	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterText))
	ui.inputEntry.Wrapping = fyne.TextWrapWord
	ui.inputEntry.OnChanged = func(text string) {
		if ui.controller != nil {
			ui.controller.TextChanged(text)
		}
	}

	ui.charCountLabel = widget.NewLabel(fmt.Sprintf(CharCountFormat, 0, model.MaxInputRunes))
	ui.detectionLabel = widget.NewLabel(ui.localization.GetText(KeyDetectedLanguage) + ": " + DashPlaceholder)

	// Example preset buttons
	exampleButtons := make([]fyne.CanvasObject, 0, len(exampleTexts)+1)
	exampleButtons = append(exampleButtons, widget.NewLabel(ui.localization.GetText(KeyExamples)+":"))
	for _, example := range exampleTexts {
		text := example // Capture for closure
		btn := widget.NewButton(text, func() {
			ui.inputEntry.SetText(text)
		})
		btn.Importance = widget.LowImportance
		exampleButtons = append(exampleButtons, btn)
	}

	// Target language selector with quick-pick shortcuts
	ui.targetSelect = widget.NewSelect(nil, func(label string) {
		code, ok := ui.targetByLabel[label]
		if !ok || ui.controller == nil {
			return
		}
		ui.controller.SetTargetLanguage(code)
	})
	ui.targetSelect.PlaceHolder = ui.localization.GetText(KeyTargetLanguage)

	quickButtons := make([]fyne.CanvasObject, 0, len(quickTargets))
	for _, code := range quickTargets {
		qc := code // Capture for closure
		btn := widget.NewButton(qc, func() {
			ui.selectTargetCode(qc)
		})
		btn.Importance = widget.LowImportance
		quickButtons = append(quickButtons, btn)
	}

	targetRow := container.NewBorder(nil, nil,
		widget.NewLabel(IconLanguage+" "+ui.localization.GetText(KeyTargetLanguage)+":"),
		container.NewHBox(quickButtons...),
		ui.targetSelect,
	)

	// Primary actions
	ui.translateBtn = widget.NewButton(ui.localization.GetText(KeyTranslate), ui.onTranslateClick)
	ui.translateBtn.Importance = widget.HighImportance
	ui.detectBtn = widget.NewButton(ui.localization.GetText(KeyDetect), ui.onDetectClick)
	ui.clearBtn = widget.NewButton(ui.localization.GetText(KeyClear), ui.onClearClick)
	actionRow := container.NewHBox(ui.translateBtn, ui.detectBtn, ui.clearBtn)

	// Result panel with its own actions, disabled until a translation lands
	ui.directionLabel = widget.NewLabel(DashPlaceholder)
	ui.targetLangLabel = widget.NewLabel("")
	ui.resultText = widget.NewLabel("")
	ui.resultText.Wrapping = fyne.TextWrapWord

	ui.speakBtn = widget.NewButton(IconSpeak+" "+ui.localization.GetText(KeySpeak), ui.onSpeakClick)
	ui.copyBtn = widget.NewButton(IconCopy+" "+ui.localization.GetText(KeyCopy), ui.onCopyClick)
	ui.speakBtn.Disable()
	ui.copyBtn.Disable()
	resultActions := container.NewHBox(ui.speakBtn, ui.copyBtn)

	titleLabel := widget.NewLabelWithStyle(ui.localization.GetText(KeyTranslationTitle), fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	resultHeader := container.NewBorder(nil, nil,
		container.NewHBox(titleLabel, ui.targetLangLabel),
		ui.directionLabel,
	)

	resultScroll := container.NewVScroll(ui.resultText)
	resultScroll.SetMinSize(fyne.NewSize(0, ResultMinHeight))

	// Audio row stays hidden until speech is synthesized
	ui.audioLabel = widget.NewLabel("")
	ui.audioLabel.Truncation = fyne.TextTruncateEllipsis
	ui.playBtn = widget.NewButton(IconPlay+" "+ui.localization.GetText(KeyPlayAudio), ui.onPlayClick)
	ui.downloadBtn = widget.NewButton(IconDownload+" "+ui.localization.GetText(KeySaveAudio), ui.onDownloadClick)
	ui.audioRow = container.NewBorder(nil, nil, container.NewHBox(ui.playBtn, ui.downloadBtn), nil, ui.audioLabel)
	ui.audioRow.Hide()

	inputScroll := container.NewVScroll(ui.inputEntry)
	inputScroll.SetMinSize(fyne.NewSize(0, InputMinHeight))

	content := container.NewVBox(
		inputScroll,
		container.NewBorder(nil, nil, ui.detectionLabel, ui.charCountLabel),
		container.NewHBox(exampleButtons...),
		widget.NewSeparator(),
		targetRow,
		actionRow,
		widget.NewSeparator(),
		resultHeader,
		resultScroll,
		resultActions,
		ui.audioRow,
	)

	ui.window.SetContent(container.NewPadded(content))
	ui.window.Resize(fyne.NewSize(WindowMinWidth, WindowMinHeight))

	// Ctrl+Enter translates from anywhere in the window
	ui.window.Canvas().AddShortcut(&desktop.CustomShortcut{
		KeyName:  fyne.KeyReturn,
		Modifier: fyne.KeyModifierControl,
	}, func(fyne.Shortcut) {
		ui.onTranslateClick()
	})

	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	// Language submenu
	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	for code, name := range availableLanguages {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})

		// Mark current language
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}

		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

// onLanguageChange handles UI language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()

	// Recreate menu to update checkmarks
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))

	ui.inputEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterText))
	ui.translateBtn.SetText(ui.localization.GetText(KeyTranslate))
	ui.detectBtn.SetText(ui.localization.GetText(KeyDetect))
	ui.clearBtn.SetText(ui.localization.GetText(KeyClear))
	ui.speakBtn.SetText(IconSpeak + " " + ui.localization.GetText(KeySpeak))
	ui.copyBtn.SetText(IconCopy + " " + ui.localization.GetText(KeyCopy))
	ui.playBtn.SetText(IconPlay + " " + ui.localization.GetText(KeyPlayAudio))
	ui.downloadBtn.SetText(IconDownload + " " + ui.localization.GetText(KeySaveAudio))
	ui.targetSelect.PlaceHolder = ui.localization.GetText(KeyTargetLanguage)
	ui.targetSelect.Refresh()
}

// populateLanguages fills the target selector, keeping selected chosen.
func (ui *RootUI) populateLanguages(langs []model.Language, selected string) {
	options := make([]string, 0, len(langs))
	ui.targetByLabel = make(map[string]string, len(langs))

	selectedLabel := ""
	for _, lang := range langs {
		label := lang.DisplayName()
		options = append(options, label)
		ui.targetByLabel[label] = lang.Code
		if lang.Code == selected {
			selectedLabel = label
		}
	}

	ui.targetSelect.Options = options
	if selectedLabel != "" {
		ui.targetSelect.SetSelected(selectedLabel)
	}
	ui.targetSelect.Refresh()
}

// selectTargetCode selects the option whose language code matches code.
func (ui *RootUI) selectTargetCode(code string) {
	for label, c := range ui.targetByLabel {
		if c == code {
			ui.targetSelect.SetSelected(label)
			return
		}
	}
	log.Printf("Quick target %s not in current language table", code)
}

// Button handlers. Controller actions are synchronous and may block on the
// network, so every handler runs them on a goroutine.

func (ui *RootUI) onTranslateClick() {
	if ui.controller == nil {
		return
	}
	text := ui.inputEntry.Text
	go ui.controller.Translate(text)
}

func (ui *RootUI) onDetectClick() {
	if ui.controller == nil {
		return
	}
	text := ui.inputEntry.Text
	go ui.controller.Detect(text)
}

func (ui *RootUI) onSpeakClick() {
	if ui.controller == nil {
		return
	}
	go ui.controller.Speak()
}

func (ui *RootUI) onCopyClick() {
	if ui.controller == nil {
		return
	}
	go ui.controller.Copy()
}

func (ui *RootUI) onDownloadClick() {
	if ui.controller == nil {
		return
	}
	go ui.controller.Download()
}

func (ui *RootUI) onClearClick() {
	if ui.controller == nil {
		return
	}
	go ui.controller.Clear()
}

func (ui *RootUI) onPlayClick() {
	clip := ui.currentClip
	if clip == nil {
		return
	}
	ui.PlayClip(clip)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, ui.localization, func() {
		if ui.controller == nil {
			return
		}
		ui.controller.SetAutoPlay(ui.settings.GetAutoPlay())
		ui.controller.SetDownloadDir(ui.settings.GetDownloadDirectory())
		ui.selectTargetCode(ui.settings.GetTargetLanguage())
	})
}

// translate.View implementation. The controller calls these from its own
// goroutines; each one marshals onto the UI thread with fyne.Do.

// ShowCharCount updates the live character counter.
func (ui *RootUI) ShowCharCount(count int, overLimit bool) {
	fyne.Do(func() {
		ui.charCountLabel.SetText(fmt.Sprintf(CharCountFormat, count, model.MaxInputRunes))
		if overLimit {
			ui.charCountLabel.Importance = widget.DangerImportance
		} else {
			ui.charCountLabel.Importance = widget.MediumImportance
		}
		ui.charCountLabel.Refresh()
	})
}

// SetTranslateBusy toggles the translate button between idle and busy.
func (ui *RootUI) SetTranslateBusy(busy bool) {
	fyne.Do(func() {
		if busy {
			ui.translateBtn.SetText(ui.localization.GetText(KeyTranslating))
			ui.translateBtn.Disable()
		} else {
			ui.translateBtn.SetText(ui.localization.GetText(KeyTranslate))
			ui.translateBtn.Enable()
		}
	})
}

// SetDetectBusy toggles the detect button between idle and busy.
func (ui *RootUI) SetDetectBusy(busy bool) {
	fyne.Do(func() {
		if busy {
			ui.detectBtn.SetText(ui.localization.GetText(KeyDetecting))
			ui.detectBtn.Disable()
		} else {
			ui.detectBtn.SetText(ui.localization.GetText(KeyDetect))
			ui.detectBtn.Enable()
		}
	})
}

// SetSpeakBusy toggles the speak button between idle and busy.
func (ui *RootUI) SetSpeakBusy(busy bool) {
	fyne.Do(func() {
		if busy {
			ui.speakBtn.SetText(IconSpeak + " " + ui.localization.GetText(KeySpeaking))
			ui.speakBtn.Disable()
		} else {
			ui.speakBtn.SetText(IconSpeak + " " + ui.localization.GetText(KeySpeak))
			ui.speakBtn.Enable()
		}
	})
}

// ShowTranslation renders a translation result and its direction label.
func (ui *RootUI) ShowTranslation(result *model.TranslationResult) {
	fyne.Do(func() {
		ui.resultText.SetText(result.Translated)
		ui.directionLabel.SetText(fmt.Sprintf("%s → %s", result.SourceLang, result.TargetLang))
	})
}

// ShowDetection renders the detected language.
func (ui *RootUI) ShowDetection(result *model.DetectionResult) {
	fyne.Do(func() {
		ui.detectionLabel.SetText(ui.localization.GetText(KeyDetectedLanguage) + ": " + result.Display())
	})
}

// ShowDetectionTooShort renders the placeholder for text below the
// detection threshold.
func (ui *RootUI) ShowDetectionTooShort() {
	fyne.Do(func() {
		ui.detectionLabel.SetText(ui.localization.GetText(KeyDetectedLanguage) + ": " + DashPlaceholder)
	})
}

// ShowLanguages replaces the target selector options.
func (ui *RootUI) ShowLanguages(langs []model.Language, selected string) {
	fyne.Do(func() {
		ui.populateLanguages(langs, selected)
	})
}

// ShowTargetLanguage updates the derived target label in the result header.
func (ui *RootUI) ShowTargetLanguage(lang model.Language) {
	fyne.Do(func() {
		ui.targetLangLabel.SetText(lang.DisplayName())
	})
}

// SetResultActionsEnabled toggles the speak and copy buttons.
func (ui *RootUI) SetResultActionsEnabled(enabled bool) {
	fyne.Do(func() {
		if enabled {
			ui.speakBtn.Enable()
			ui.copyBtn.Enable()
		} else {
			ui.speakBtn.Disable()
			ui.copyBtn.Disable()
		}
	})
}

// ShowAudio reveals the audio row for a fetched clip.
func (ui *RootUI) ShowAudio(clip *model.AudioClip) {
	fyne.Do(func() {
		ui.currentClip = clip
		ui.audioLabel.SetText(filepath.Base(clip.LocalPath))
		ui.audioRow.Show()
	})
}

// HideAudio hides the audio row. The staged clip file is left in place;
// the cache is swept on shutdown.
func (ui *RootUI) HideAudio() {
	fyne.Do(func() {
		ui.currentClip = nil
		ui.audioRow.Hide()
	})
}

// PlayClip opens the clip with the default system player. Playback
// problems are logged, never surfaced as errors.
func (ui *RootUI) PlayClip(clip *model.AudioClip) {
	go func() {
		if err := platform.OpenFileWithDefaultApp(clip.LocalPath); err != nil {
			log.Printf("Audio playback failed for %s: %v", clip.LocalPath, err)
		}
	}()
}

// SetClipboard writes text to the system clipboard and flashes the copy
// button as confirmation.
func (ui *RootUI) SetClipboard(text string) {
	fyne.Do(func() {
		fyne.CurrentApp().Clipboard().SetContent(text)

		ui.copyBtn.SetText(IconCopy + " " + ui.localization.GetText(KeyCopied))
		if ui.copyFlashTimer != nil {
			ui.copyFlashTimer.Stop()
		}
		ui.copyFlashTimer = time.AfterFunc(CopyFlashDuration, func() {
			fyne.Do(func() {
				ui.copyBtn.SetText(IconCopy + " " + ui.localization.GetText(KeyCopy))
			})
		})
	})
}

// ResetAll returns every control to its initial empty state.
func (ui *RootUI) ResetAll() {
	fyne.Do(func() {
		ui.inputEntry.SetText("")
		ui.resultText.SetText("")
		ui.directionLabel.SetText(DashPlaceholder)
		ui.detectionLabel.SetText(ui.localization.GetText(KeyDetectedLanguage) + ": " + DashPlaceholder)
		ui.charCountLabel.SetText(fmt.Sprintf(CharCountFormat, 0, model.MaxInputRunes))
		ui.charCountLabel.Importance = widget.MediumImportance
		ui.charCountLabel.Refresh()
		ui.speakBtn.Disable()
		ui.copyBtn.Disable()
		ui.currentClip = nil
		ui.audioRow.Hide()
	})
}

// Notify shows a transient toast, evicting any current one.
func (ui *RootUI) Notify(message string, kind model.NotificationKind) {
	fyne.Do(func() {
		ui.toasts.Show(message, kind)
	})
}
