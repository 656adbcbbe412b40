package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestTranslate_Success(t *testing.T) {
	var gotBody map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathTranslate {
			t.Errorf("Expected path %s, got %s", PathTranslate, r.URL.Path)
		}
		if r.Method != http.MethodPost {
			t.Errorf("Expected POST, got %s", r.Method)
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("Expected JSON content type, got %s", ct)
		}
		if err := json.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Fatalf("Failed to decode request body: %v", err)
		}

		json.NewEncoder(w).Encode(map[string]any{
			"success":         true,
			"translated_text": "Bonjour",
			"source_lang":     "English",
			"source_code":     "en",
			"target_lang":     "French",
			"target_code":     "fr",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Translate(context.Background(), "Hello", "fr")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if gotBody["text"] != "Hello" || gotBody["target_lang"] != "fr" {
		t.Errorf("Unexpected request body: %v", gotBody)
	}

	if result.Translated != "Bonjour" {
		t.Errorf("Expected translated text Bonjour, got %s", result.Translated)
	}
	if result.SourceLang != "English" || result.SourceCode != "en" {
		t.Errorf("Unexpected source: %s/%s", result.SourceLang, result.SourceCode)
	}
	if result.TargetLang != "French" || result.TargetCode != "fr" {
		t.Errorf("Unexpected target: %s/%s", result.TargetLang, result.TargetCode)
	}
	if result.Original != "Hello" {
		t.Errorf("Expected original text to fall back to input, got %s", result.Original)
	}
}

func TestTranslate_ServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   "Translation failed: quota exceeded",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	_, err := client.Translate(context.Background(), "Hello", "fr")
	if err == nil {
		t.Fatal("Expected error for success=false response")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *api.Error, got %T", err)
	}
	if !apiErr.Server {
		t.Error("Expected server-side error")
	}
	if apiErr.UserMessage("fallback") != "Translation failed: quota exceeded" {
		t.Errorf("Expected server message to win, got %s", apiErr.UserMessage("fallback"))
	}
}

func TestTranslate_TransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused from here on

	client := NewClient(server.URL)
	_, err := client.Translate(context.Background(), "Hello", "fr")
	if err == nil {
		t.Fatal("Expected error for unreachable backend")
	}

	var apiErr *Error
	if !errors.As(err, &apiErr) {
		t.Fatalf("Expected *api.Error, got %T", err)
	}
	if apiErr.Server {
		t.Error("Expected transport error, not server error")
	}
	if apiErr.UserMessage("generic fallback") != "generic fallback" {
		t.Errorf("Expected fallback message for transport error, got %s", apiErr.UserMessage("generic fallback"))
	}
}

func TestDetect(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body map[string]string
		json.NewDecoder(r.Body).Decode(&body)
		if body["text"] != "नमस्ते दुनिया" {
			t.Errorf("Unexpected detect text: %q", body["text"])
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success":  true,
			"language": "Hindi",
			"code":     "hi",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	result, err := client.Detect(context.Background(), "नमस्ते दुनिया")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if result.Language != "Hindi" || result.Code != "hi" {
		t.Errorf("Unexpected detection: %+v", result)
	}
}

func TestDetect_Failure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": false})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Detect(context.Background(), "hello"); err == nil {
		t.Fatal("Expected error for success=false")
	}
}

func TestSynthesize_ResolvesRelativeURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"success":   true,
			"audio_url": "/audio/tmp123.mp3",
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	clip, err := client.Synthesize(context.Background(), "Bonjour", "fr")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	expected := server.URL + "/audio/tmp123.mp3"
	if clip.URL != expected {
		t.Errorf("Expected resolved URL %s, got %s", expected, clip.URL)
	}
	if clip.LangCode != "fr" {
		t.Errorf("Expected lang fr, got %s", clip.LangCode)
	}
	if clip.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestSynthesize_MissingAudioURL(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"success": true})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.Synthesize(context.Background(), "x", "en"); err == nil {
		t.Fatal("Expected error when audio_url is missing")
	}
}

func TestLanguages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != PathLanguages {
			t.Errorf("Expected path %s, got %s", PathLanguages, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"languages": map[string]any{
				"hi": map[string]string{"name": "Hindi", "native": "हिन्दी", "tts_lang": "hi"},
				"ta": map[string]string{"name": "Tamil", "native": "தமிழ்", "tts_lang": "ta"},
			},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	langs, err := client.Languages(context.Background())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if len(langs) != 2 {
		t.Fatalf("Expected 2 languages, got %d", len(langs))
	}

	found := false
	for _, l := range langs {
		if l.Code == "hi" && l.Name == "Hindi" && l.TTSCode == "hi" {
			found = true
		}
	}
	if !found {
		t.Errorf("Hindi entry not found in %+v", langs)
	}
}

func TestHealth(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "healthy"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Health(context.Background()); err != nil {
		t.Errorf("Expected healthy backend, got %v", err)
	}
}

func TestHealth_Unhealthy(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"status": "degraded"})
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if err := client.Health(context.Background()); err == nil {
		t.Error("Expected error for degraded status")
	}
}

func TestFetchAudio(t *testing.T) {
	payload := []byte("mp3-bytes")
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(payload)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	data, err := client.FetchAudio(context.Background(), server.URL+"/audio/x.mp3")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if string(data) != string(payload) {
		t.Errorf("Unexpected audio payload: %q", data)
	}
}

func TestFetchAudio_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := NewClient(server.URL)
	if _, err := client.FetchAudio(context.Background(), server.URL+"/audio/gone.mp3"); err == nil {
		t.Error("Expected error for 404 audio")
	}
}

func TestNewClient_TrimsTrailingSlash(t *testing.T) {
	client := NewClient("http://localhost:5000/")
	if client.BaseURL() != "http://localhost:5000" {
		t.Errorf("Expected trimmed base URL, got %s", client.BaseURL())
	}
}
