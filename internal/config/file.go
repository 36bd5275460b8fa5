package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/ytget/vdio/internal/platform"
)

// fileData is the on-disk layout of config.json
type fileData struct {
	SavePath   string `json:"save_path"`
	Executable string `json:"executable,omitempty"`
}

// FileStore keeps the terminal configuration in a JSON file
type FileStore struct {
	path string
	log  *logrus.Entry

	mu   sync.Mutex
	data fileData
}

// DefaultFilePath returns <user config dir>/vdio/config.json
func DefaultFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user config directory: %w", err)
	}
	return filepath.Join(dir, ConfigDirName, ConfigFileName), nil
}

// LoadFileStore reads path. A missing file yields defaults; an unreadable or
// malformed file is logged and ignored.
func LoadFileStore(path string, log *logrus.Entry) *FileStore {
	if log == nil {
		log = logrus.WithField("component", "config")
	}
	s := &FileStore{path: path, log: log}

	raw, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		log.WithError(err).WithField("path", path).Warn("Failed to read config")
	default:
		if err := json.Unmarshal(raw, &s.data); err != nil {
			log.WithError(err).WithField("path", path).Warn("Ignoring malformed config")
			s.data = fileData{}
		}
	}
	return s
}

// Path returns the config file location
func (s *FileStore) Path() string {
	return s.path
}

// SaveDirectory returns the stored save directory, or the default if it no longer exists
func (s *FileStore) SaveDirectory() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return resolveSaveDirectory(s.data.SavePath)
}

// SetSaveDirectory stores dir if it is an existing directory and writes the file
func (s *FileStore) SetSaveDirectory(dir string) error {
	if err := validateSaveDirectory(dir); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.SavePath = dir
	return s.save()
}

// Executable returns the yt-dlp executable
func (s *FileStore) Executable() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if exe := strings.TrimSpace(s.data.Executable); exe != "" {
		return exe
	}
	return DefaultExecutable
}

func (s *FileStore) save() error {
	if err := platform.CreateDirectoryIfNotExists(filepath.Dir(s.path)); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	raw, err := json.MarshalIndent(s.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := os.WriteFile(s.path, raw, configFilePermissions); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}
