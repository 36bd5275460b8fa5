package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeySaveDirectory = "save_path"
	KeyExecutable    = "executable"
	KeyLanguage      = "app_language"
)

// Settings manages desktop configuration in Fyne preferences
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// SaveDirectory returns the stored save directory, or the default if it no longer exists
func (s *Settings) SaveDirectory() string {
	return resolveSaveDirectory(s.app.Preferences().String(KeySaveDirectory))
}

// SetSaveDirectory stores dir if it is an existing directory
func (s *Settings) SetSaveDirectory(dir string) error {
	if err := validateSaveDirectory(dir); err != nil {
		return err
	}
	s.app.Preferences().SetString(KeySaveDirectory, dir)
	return nil
}

// Executable returns the yt-dlp executable
func (s *Settings) Executable() string {
	return s.app.Preferences().StringWithFallback(KeyExecutable, DefaultExecutable)
}

// SetExecutable stores the yt-dlp executable, resetting to default when empty
func (s *Settings) SetExecutable(exe string) {
	exe = strings.TrimSpace(exe)
	if exe == "" {
		s.app.Preferences().RemoveValue(KeyExecutable)
		return
	}
	s.app.Preferences().SetString(KeyExecutable, exe)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	return s.app.Preferences().StringWithFallback(KeyLanguage, DefaultLanguage)
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}
