package model

import "testing"

func TestNewLanguageSet_Dedup(t *testing.T) {
	ls := NewLanguageSet([]Language{
		{Code: "hi", Name: "Hindi"},
		{Code: "hi", Name: "Hindi Again"},
		{Code: "ta", Name: "Tamil"},
	})

	if len(ls.All()) != 2 {
		t.Errorf("Expected 2 languages after dedup, got %d", len(ls.All()))
	}

	if ls.Name("hi") != "Hindi" {
		t.Errorf("Expected first entry to win for duplicate code, got %s", ls.Name("hi"))
	}
}

func TestLanguageSet_Lookups(t *testing.T) {
	ls := NewLanguageSet(BuiltinLanguages)

	if !ls.Contains("hi") {
		t.Error("Expected built-in set to contain hi")
	}

	if ls.Name("bn") != "Bengali" {
		t.Errorf("Name(bn) = %s, expected Bengali", ls.Name("bn"))
	}

	// Unknown codes fall back to the code itself.
	if ls.Name("xx") != "xx" {
		t.Errorf("Name(xx) = %s, expected xx", ls.Name("xx"))
	}
	if ls.TTSCode("xx") != "xx" {
		t.Errorf("TTSCode(xx) = %s, expected xx", ls.TTSCode("xx"))
	}

	if ls.TTSCode("ta") != "ta" {
		t.Errorf("TTSCode(ta) = %s, expected ta", ls.TTSCode("ta"))
	}
}

func TestLanguageSet_OrderPreserved(t *testing.T) {
	ls := NewLanguageSet(BuiltinLanguages)
	all := ls.All()

	if all[0].Code != "hi" {
		t.Errorf("Expected hi first, got %s", all[0].Code)
	}
	if all[len(all)-1].Code != "en" {
		t.Errorf("Expected en last, got %s", all[len(all)-1].Code)
	}
}

func TestLanguage_DisplayName(t *testing.T) {
	tests := []struct {
		lang     Language
		expected string
	}{
		{Language{Code: "hi", Name: "Hindi", Native: "हिन्दी"}, "Hindi (हिन्दी)"},
		{Language{Code: "en", Name: "English", Native: "English"}, "English"},
		{Language{Code: "xx", Name: "Mystery"}, "Mystery"},
	}

	for _, test := range tests {
		if got := test.lang.DisplayName(); got != test.expected {
			t.Errorf("DisplayName(%s) = %q, expected %q", test.lang.Code, got, test.expected)
		}
	}
}
