package config

import (
	"fmt"
	"os"

	"github.com/ytget/vdio/internal/platform"
)

// Store is the persisted configuration shared by both front-ends
type Store interface {
	// SaveDirectory returns the root directory downloads are saved under
	SaveDirectory() string
	// SetSaveDirectory persists dir if it is an existing directory
	SetSaveDirectory(dir string) error
	// Executable returns the yt-dlp executable name or path
	Executable() string
}

// Default values
const (
	DefaultExecutable     = "yt-dlp"
	FallbackSaveDir       = "downloads"
	DefaultLanguage       = "system"
	ConfigDirName         = "vdio"
	ConfigFileName        = "config.json"
	configFilePermissions = 0644
)

// DefaultSaveDirectory returns ~/Downloads, or a relative fallback when the
// home directory is unknown.
func DefaultSaveDirectory() string {
	dir, err := platform.GetHomeDownloadsDir()
	if err != nil {
		return FallbackSaveDir
	}
	return dir
}

// validateSaveDirectory rejects paths that are not existing directories
func validateSaveDirectory(dir string) error {
	if dir == "" {
		return fmt.Errorf("save directory is empty")
	}
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("save directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("save directory %s is not a directory", dir)
	}
	return nil
}

// resolveSaveDirectory returns stored if it still exists, else the default
func resolveSaveDirectory(stored string) string {
	if platform.IsDirectory(stored) {
		return stored
	}
	return DefaultSaveDirectory()
}
