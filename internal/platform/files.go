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
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// Fallback file managers probed on Linux when xdg-open is unavailable
var LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}

// CreateDirectoryIfNotExists creates the directory (and parents) when absent.
// MkdirAll is idempotent and reports paths blocked by a regular file, so no
// pre-stat is needed.
func CreateDirectoryIfNotExists(dirPath string) error {
	return os.MkdirAll(dirPath, DefaultDirPermissions)
}

// GetDefaultDownloadDir returns <home>/Downloads/<subdir>.
func GetDefaultDownloadDir(subdir string) (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, "Downloads", subdir), nil
}

// ShortFileName returns the base name of a path for display, tolerating both
// separators so engine-reported Windows paths render sensibly anywhere.
func ShortFileName(path string) string {
	if idx := max(lastIndexByte(path, '/'), lastIndexByte(path, '\\')); idx >= 0 {
		return path[idx+1:]
	}
	return path
}

func lastIndexByte(s string, b byte) int {
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// OpenDirInManager opens the directory in the system file manager.
func OpenDirInManager(dirPath string) error {
	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return exec.Command(OpenCommand, absPath).Run()
	case OSWindows:
		return exec.Command(ExplorerCommand, absPath).Run()
	case OSLinux:
		return openDirLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openDirLinux tries xdg-open first and then common file managers.
func openDirLinux(dirPath string) error {
	if err := exec.Command(XDGOpenCommand, dirPath).Run(); err == nil {
		return nil
	}

	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			return exec.Command(fm, dirPath).Run()
		}
	}

	return fmt.Errorf("no file manager found to open %s", dirPath)
}
