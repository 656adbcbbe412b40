package platform

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand    = "open"
	XDGOpenCommand = "xdg-open"
	CmdCommand     = "cmd"
	StartCommand   = "start"
	WindowsCmdFlag = "/c"
)

// Fallback media players tried on Linux when xdg-open is unavailable.
var LinuxMediaPlayers = []string{"mpv", "vlc", "ffplay", "mplayer"}

// App-specific directory names
const (
	ClipCacheDirName  = "bhashadesk-audio"
	DownloadsDirName  = "Downloads"
	FallbackStageRoot = "/tmp"
)

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// ClipCacheDir returns the directory synthesized audio clips are staged
// in before playback or export.
func ClipCacheDir() string {
	return filepath.Join(os.TempDir(), ClipCacheDirName)
}

// GetHomeDownloadsDir returns the user's Downloads directory, creating the
// path string from the home directory. The directory itself may not exist
// yet.
func GetHomeDownloadsDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, DownloadsDirName), nil
}

// OpenFileWithDefaultApp opens the file with the default system
// application. Used for audio playback; the backend serves mp3, which
// every desktop associates with a player.
func OpenFileWithDefaultApp(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return fmt.Errorf("file does not exist: %v", err)
	}

	absPath, err := filepath.Abs(filePath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return openFileWithDefaultAppMacOS(absPath)
	case OSWindows:
		return openFileWithDefaultAppWindows(absPath)
	case OSLinux:
		return openFileWithDefaultAppLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFileWithDefaultAppMacOS opens file with default app on macOS
func openFileWithDefaultAppMacOS(filePath string) error {
	cmd := exec.Command(OpenCommand, filePath)
	return cmd.Run()
}

// openFileWithDefaultAppWindows opens file with default app on Windows
func openFileWithDefaultAppWindows(filePath string) error {
	cmd := exec.Command(CmdCommand, WindowsCmdFlag, StartCommand, "", filePath)
	return cmd.Run()
}

// openFileWithDefaultAppLinux opens file with default app on Linux
func openFileWithDefaultAppLinux(filePath string) error {
	// Try xdg-open first (most common)
	if _, err := exec.LookPath(XDGOpenCommand); err == nil {
		cmd := exec.Command(XDGOpenCommand, filePath)
		return cmd.Run()
	}

	// Fallback to common media players
	for _, player := range LinuxMediaPlayers {
		if _, err := exec.LookPath(player); err == nil {
			cmd := exec.Command(player, filePath)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable application found to open %s", filepath.Base(filePath))
}
