package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bhashadesk/bhashadesk/internal/model"
)

// Endpoint paths served by the backend.
const (
	PathTranslate = "/translate"
	PathDetect    = "/detect"
	PathTTS       = "/tts"
	PathLanguages = "/languages"
	PathHealth    = "/health"
)

// DefaultTimeout bounds a single backend call. The backend proxies to
// external translation/TTS services, so calls can be slow but never hang
// forever.
const DefaultTimeout = 30 * time.Second

// Client talks to the translation backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the backend at baseURL. A trailing slash
// on baseURL is tolerated.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
}

// NewClientWithHTTP creates a client using the given http.Client. Used by
// tests and by callers that need custom transport settings.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
	}
}

// BaseURL returns the configured backend base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"target_lang"`
}

type translateResponse struct {
	Success        bool   `json:"success"`
	Error          string `json:"error"`
	OriginalText   string `json:"original_text"`
	TranslatedText string `json:"translated_text"`
	SourceLang     string `json:"source_lang"`
	SourceCode     string `json:"source_code"`
	TargetLang     string `json:"target_lang"`
	TargetCode     string `json:"target_code"`
}

// Translate sends text to /translate and returns the translation.
func (c *Client) Translate(ctx context.Context, text, targetLang string) (*model.TranslationResult, error) {
	var resp translateResponse
	if err := c.postJSON(ctx, PathTranslate, translateRequest{Text: text, TargetLang: targetLang}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, serverError(PathTranslate, resp.Error)
	}

	original := resp.OriginalText
	if original == "" {
		original = text
	}
	return &model.TranslationResult{
		Original:   original,
		Translated: resp.TranslatedText,
		SourceLang: resp.SourceLang,
		SourceCode: resp.SourceCode,
		TargetLang: resp.TargetLang,
		TargetCode: resp.TargetCode,
		ReceivedAt: time.Now(),
	}, nil
}

type detectRequest struct {
	Text string `json:"text"`
}

type detectResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	Language string `json:"language"`
	Code     string `json:"code"`
}

// Detect sends text to /detect and returns the detected language.
func (c *Client) Detect(ctx context.Context, text string) (*model.DetectionResult, error) {
	var resp detectResponse
	if err := c.postJSON(ctx, PathDetect, detectRequest{Text: text}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, serverError(PathDetect, resp.Error)
	}
	return &model.DetectionResult{Language: resp.Language, Code: resp.Code}, nil
}

type ttsRequest struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

type ttsResponse struct {
	Success  bool   `json:"success"`
	Error    string `json:"error"`
	AudioURL string `json:"audio_url"`
}

// Synthesize asks /tts for speech and returns a clip pointing at the
// backend audio URL. The clip bytes are fetched separately.
func (c *Client) Synthesize(ctx context.Context, text, lang string) (*model.AudioClip, error) {
	var resp ttsResponse
	if err := c.postJSON(ctx, PathTTS, ttsRequest{Text: text, Lang: lang}, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, serverError(PathTTS, resp.Error)
	}
	if resp.AudioURL == "" {
		return nil, serverError(PathTTS, "no audio URL in response")
	}
	return &model.AudioClip{
		URL:       c.resolveURL(resp.AudioURL),
		LangCode:  lang,
		CreatedAt: time.Now(),
	}, nil
}

type languagesResponse struct {
	Success   bool                `json:"success"`
	Languages map[string]langInfo `json:"languages"`
}

type langInfo struct {
	Name    string `json:"name"`
	Native  string `json:"native"`
	TTSLang string `json:"tts_lang"`
}

// Languages fetches the backend's supported-language table.
func (c *Client) Languages(ctx context.Context) ([]model.Language, error) {
	var resp languagesResponse
	if err := c.getJSON(ctx, PathLanguages, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, serverError(PathLanguages, "")
	}

	langs := make([]model.Language, 0, len(resp.Languages))
	for code, info := range resp.Languages {
		langs = append(langs, model.Language{
			Code:    code,
			Name:    info.Name,
			Native:  info.Native,
			TTSCode: info.TTSLang,
		})
	}
	return langs, nil
}

type healthResponse struct {
	Status string `json:"status"`
}

// Health pings /health and returns an error when the backend is not
// reporting healthy.
func (c *Client) Health(ctx context.Context) error {
	var resp healthResponse
	if err := c.getJSON(ctx, PathHealth, &resp); err != nil {
		return err
	}
	if resp.Status != "healthy" {
		return serverError(PathHealth, fmt.Sprintf("backend reports status %q", resp.Status))
	}
	return nil
}

// FetchAudio downloads the bytes behind an audio URL produced by
// Synthesize.
func (c *Client) FetchAudio(ctx context.Context, audioURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, audioURL, nil)
	if err != nil {
		return nil, transportError("/audio", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError("/audio", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, serverError("/audio", fmt.Sprintf("unexpected status %d", resp.StatusCode))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("/audio", err)
	}
	return data, nil
}

// resolveURL turns a backend-relative audio path into an absolute URL.
func (c *Client) resolveURL(u string) string {
	if strings.HasPrefix(u, "http://") || strings.HasPrefix(u, "https://") {
		return u
	}
	if !strings.HasPrefix(u, "/") {
		u = "/" + u
	}
	return c.baseURL + u
}

// postJSON sends body as JSON to path and decodes the JSON response into
// out. Non-2xx responses are still decoded: the backend returns its error
// payloads with 4xx/5xx statuses.
func (c *Client) postJSON(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return transportError(path, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return transportError(path, err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, path, out)
}

// getJSON issues a GET to path and decodes the JSON response into out.
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return transportError(path, err)
	}
	return c.do(req, path, out)
}

func (c *Client) do(req *http.Request, path string, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return transportError(path, err)
	}
	defer resp.Body.Close()

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return transportError(path, fmt.Errorf("decoding response: %w", err))
	}
	return nil
}
