package model

import "sort"

// Language describes one supported target language.
type Language struct {
	Code    string // short code, e.g. "hi"
	Name    string // English name, e.g. "Hindi"
	Native  string // native-script name, e.g. "हिन्दी"
	TTSCode string // code accepted by the speech endpoint
}

// DisplayName returns the selector label, e.g. "Hindi (हिन्दी)".
func (l Language) DisplayName() string {
	if l.Native == "" || l.Native == l.Name {
		return l.Name
	}
	return l.Name + " (" + l.Native + ")"
}

// BuiltinLanguages is the language set the client ships with. The backend
// may serve a richer table via /languages; this list is the offline
// fallback and the initial selector content.
var BuiltinLanguages = []Language{
	{Code: "hi", Name: "Hindi", Native: "हिन्दी", TTSCode: "hi"},
	{Code: "bn", Name: "Bengali", Native: "বাংলা", TTSCode: "bn"},
	{Code: "te", Name: "Telugu", Native: "తెలుగు", TTSCode: "te"},
	{Code: "mr", Name: "Marathi", Native: "मराठी", TTSCode: "mr"},
	{Code: "ta", Name: "Tamil", Native: "தமிழ்", TTSCode: "ta"},
	{Code: "ur", Name: "Urdu", Native: "اردو", TTSCode: "ur"},
	{Code: "gu", Name: "Gujarati", Native: "ગુજરાતી", TTSCode: "gu"},
	{Code: "kn", Name: "Kannada", Native: "ಕನ್ನಡ", TTSCode: "kn"},
	{Code: "ml", Name: "Malayalam", Native: "മലയാളം", TTSCode: "ml"},
	{Code: "pa", Name: "Punjabi", Native: "ਪੰਜਾਬੀ", TTSCode: "pa"},
	{Code: "or", Name: "Odia", Native: "ଓଡ଼ିଆ", TTSCode: "or"},
	{Code: "as", Name: "Assamese", Native: "অসমীয়া", TTSCode: "as"},
	{Code: "en", Name: "English", Native: "English", TTSCode: "en"},
}

// LanguageSet is a lookup table over a slice of languages.
type LanguageSet struct {
	byCode map[string]Language
	order  []Language
}

// NewLanguageSet builds a set preserving the given order. Duplicate codes
// keep the first entry.
func NewLanguageSet(langs []Language) *LanguageSet {
	ls := &LanguageSet{byCode: make(map[string]Language, len(langs))}
	for _, l := range langs {
		if _, exists := ls.byCode[l.Code]; exists {
			continue
		}
		ls.byCode[l.Code] = l
		ls.order = append(ls.order, l)
	}
	return ls
}

// Get returns the language for code.
func (ls *LanguageSet) Get(code string) (Language, bool) {
	l, ok := ls.byCode[code]
	return l, ok
}

// Name returns the English name for code, falling back to the code itself
// when unknown.
func (ls *LanguageSet) Name(code string) string {
	if l, ok := ls.byCode[code]; ok {
		return l.Name
	}
	return code
}

// TTSCode returns the speech-endpoint code for code, falling back to the
// code itself when unknown.
func (ls *LanguageSet) TTSCode(code string) string {
	if l, ok := ls.byCode[code]; ok && l.TTSCode != "" {
		return l.TTSCode
	}
	return code
}

// Contains reports whether code is in the set.
func (ls *LanguageSet) Contains(code string) bool {
	_, ok := ls.byCode[code]
	return ok
}

// All returns the languages in insertion order.
func (ls *LanguageSet) All() []Language {
	out := make([]Language, len(ls.order))
	copy(out, ls.order)
	return out
}

// Codes returns the sorted language codes. Useful for stable logging and
// tests.
func (ls *LanguageSet) Codes() []string {
	codes := make([]string, 0, len(ls.byCode))
	for code := range ls.byCode {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
