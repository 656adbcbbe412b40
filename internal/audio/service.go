package audio

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/bhashadesk/bhashadesk/internal/model"
	"github.com/bhashadesk/bhashadesk/internal/platform"
)

// File constants
const (
	ClipFilePrefix    = "clip-"
	ClipFileExtension = ".mp3"
	ClipFileMode      = 0644
)

// Service stages fetched clips on disk and exports them on demand.
type Service struct {
	fetcher  Fetcher
	stageDir string
}

// NewService creates an audio service staging clips under stageDir. The
// directory is created when missing.
func NewService(fetcher Fetcher, stageDir string) (*Service, error) {
	if err := platform.CreateDirectoryIfNotExists(stageDir); err != nil {
		return nil, fmt.Errorf("creating stage dir: %w", err)
	}
	return &Service{fetcher: fetcher, stageDir: stageDir}, nil
}

// StageDir returns the staging directory.
func (s *Service) StageDir() string {
	return s.stageDir
}

// Fetch downloads the clip bytes and writes them to a uniquely named file
// in the stage directory, filling in clip.LocalPath.
func (s *Service) Fetch(ctx context.Context, clip *model.AudioClip) error {
	data, err := s.fetcher.FetchAudio(ctx, clip.URL)
	if err != nil {
		return err
	}

	name := ClipFilePrefix + uuid.NewString() + ClipFileExtension
	path := filepath.Join(s.stageDir, name)
	if err := os.WriteFile(path, data, ClipFileMode); err != nil {
		return fmt.Errorf("writing clip file: %w", err)
	}

	clip.LocalPath = path
	log.Printf("Staged audio clip: lang=%s size=%d path=%s", clip.LangCode, len(data), path)
	return nil
}

// Export copies a fetched clip into dir under its export filename and
// returns the destination path.
func (s *Service) Export(clip *model.AudioClip, dir string) (string, error) {
	if clip.LocalPath == "" {
		return "", fmt.Errorf("clip has not been fetched")
	}
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("creating export dir: %w", err)
	}

	dest := filepath.Join(dir, clip.ExportFileName())
	if err := copyFile(clip.LocalPath, dest); err != nil {
		return "", fmt.Errorf("exporting clip: %w", err)
	}

	log.Printf("Exported audio clip to %s", dest)
	return dest, nil
}

// Cleanup removes all staged clip files. Called on shutdown.
func (s *Service) Cleanup() {
	entries, err := os.ReadDir(s.stageDir)
	if err != nil {
		return
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if filepath.Ext(name) != ClipFileExtension {
			continue
		}
		if err := os.Remove(filepath.Join(s.stageDir, name)); err != nil {
			log.Printf("Failed to remove staged clip %s: %v", name, err)
		}
	}
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	return out.Sync()
}
