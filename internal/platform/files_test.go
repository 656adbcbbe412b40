package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestCreateDirectoryIfNotExists(t *testing.T) {
	base := t.TempDir()
	target := filepath.Join(base, "nested", "dir")

	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	info, err := os.Stat(target)
	if err != nil {
		t.Fatalf("Expected directory to exist, got %v", err)
	}
	if !info.IsDir() {
		t.Error("Expected a directory")
	}

	// Idempotent on existing directories.
	if err := CreateDirectoryIfNotExists(target); err != nil {
		t.Errorf("Expected no error for existing directory, got %v", err)
	}
}

func TestClipCacheDir(t *testing.T) {
	dir := ClipCacheDir()

	if !strings.Contains(dir, ClipCacheDirName) {
		t.Errorf("Expected cache dir to contain %s, got %s", ClipCacheDirName, dir)
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("Expected absolute path, got %s", dir)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	dir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !strings.HasSuffix(dir, DownloadsDirName) {
		t.Errorf("Expected path ending in %s, got %s", DownloadsDirName, dir)
	}
}

func TestOpenFileWithDefaultApp_MissingFile(t *testing.T) {
	err := OpenFileWithDefaultApp(filepath.Join(t.TempDir(), "missing.mp3"))
	if err == nil {
		t.Error("Expected error for missing file")
	}
}
