package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyTranslate         = "translate"
	KeyTranslating       = "translating"
	KeyDetect            = "detect"
	KeyDetecting         = "detecting"
	KeySpeak             = "speak"
	KeySpeaking          = "speaking"
	KeyCopy              = "copy"
	KeyCopied            = "copied"
	KeyClear             = "clear"
	KeySaveAudio         = "save_audio"
	KeyPlayAudio         = "play_audio"
	KeySettings          = "settings"
	KeyFile              = "file"
	KeyLanguage          = "language"
	KeyTargetLanguage    = "target_language"
	KeyDetectedLanguage  = "detected_language"
	KeyEnterText         = "enter_text"
	KeyTypeMore          = "type_more"
	KeyServerURL         = "server_url"
	KeyDownloadDirectory = "download_directory"
	KeyAutoPlay          = "auto_play"
	KeySave              = "save"
	KeyCancel            = "cancel"
	KeyBrowse            = "browse"
	KeySettingsSaved     = "settings_saved"
	KeyExamples          = "examples"
	KeyTranslationTitle  = "translation_title"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"hi": "हिन्दी",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "BhashaDesk",
		KeyTranslate:         "Translate",
		KeyTranslating:       "Translating...",
		KeyDetect:            "Detect Language",
		KeyDetecting:         "Detecting...",
		KeySpeak:             "Speak",
		KeySpeaking:          "Generating...",
		KeyCopy:              "Copy",
		KeyCopied:            "Copied!",
		KeyClear:             "Clear",
		KeySaveAudio:         "Save Audio",
		KeyPlayAudio:         "Play",
		KeySettings:          "Settings",
		KeyFile:              "File",
		KeyLanguage:          "Language",
		KeyTargetLanguage:    "Translate to",
		KeyDetectedLanguage:  "Detected",
		KeyEnterText:         "Type or paste text to translate...",
		KeyTypeMore:          "Type at least 3 characters",
		KeyServerURL:         "Server URL",
		KeyDownloadDirectory: "Audio Save Directory",
		KeyAutoPlay:          "Play audio automatically",
		KeySave:              "Save",
		KeyCancel:            "Cancel",
		KeyBrowse:            "Browse",
		KeySettingsSaved:     "Settings saved successfully!",
		KeyExamples:          "Examples",
		KeyTranslationTitle:  "Translation",
	}

	// Hindi texts
	l.texts["hi"] = map[string]string{
		KeyAppTitle:          "भाषा डेस्क",
		KeyTranslate:         "अनुवाद करें",
		KeyTranslating:       "अनुवाद हो रहा है...",
		KeyDetect:            "भाषा पहचानें",
		KeyDetecting:         "पहचान हो रही है...",
		KeySpeak:             "बोलें",
		KeySpeaking:          "तैयार हो रहा है...",
		KeyCopy:              "कॉपी करें",
		KeyCopied:            "कॉपी हो गया!",
		KeyClear:             "साफ़ करें",
		KeySaveAudio:         "ऑडियो सहेजें",
		KeyPlayAudio:         "चलाएं",
		KeySettings:          "सेटिंग्स",
		KeyFile:              "फ़ाइल",
		KeyLanguage:          "भाषा",
		KeyTargetLanguage:    "अनुवाद की भाषा",
		KeyDetectedLanguage:  "पहचानी गई",
		KeyEnterText:         "अनुवाद के लिए टेक्स्ट लिखें...",
		KeyTypeMore:          "कम से कम 3 अक्षर लिखें",
		KeyServerURL:         "सर्वर URL",
		KeyDownloadDirectory: "ऑडियो सहेजने की जगह",
		KeyAutoPlay:          "ऑडियो स्वतः चलाएं",
		KeySave:              "सहेजें",
		KeyCancel:            "रद्द करें",
		KeyBrowse:            "ब्राउज़ करें",
		KeySettingsSaved:     "सेटिंग्स सहेज ली गईं!",
		KeyExamples:          "उदाहरण",
		KeyTranslationTitle:  "अनुवाद",
	}
}
