package audio

import "context"

// Fetcher downloads the bytes behind a backend audio URL. Implemented by
// api.Client.
type Fetcher interface {
	FetchAudio(ctx context.Context, audioURL string) ([]byte, error)
}
