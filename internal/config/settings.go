package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyToolsDirectory   = "tools_directory"
	KeyWorkingDirectory = "working_directory"
	KeyLastDirectory    = "last_directory"
	KeyLanguage         = "app_language"
)

// Default values
const (
	DefaultToolsDirectory   = "" // PATH only
	DefaultWorkingDirectory = "" // inherit the process working directory
	DefaultLanguage         = "system"
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetToolsDirectory returns the directory searched for the pipeline programs
// before PATH, or "" when only PATH is used
func (s *Settings) GetToolsDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyToolsDirectory, DefaultToolsDirectory)
}

// SetToolsDirectory sets the tools directory; "" means PATH only
func (s *Settings) SetToolsDirectory(dir string) {
	s.app.Preferences().SetString(KeyToolsDirectory, dir)
}

// GetWorkingDirectory returns the directory the pipeline programs run in,
// or "" to inherit the working directory of the app
func (s *Settings) GetWorkingDirectory() string {
	return s.app.Preferences().StringWithFallback(KeyWorkingDirectory, DefaultWorkingDirectory)
}

// SetWorkingDirectory sets the working directory of the pipeline programs
func (s *Settings) SetWorkingDirectory(dir string) {
	s.app.Preferences().SetString(KeyWorkingDirectory, dir)
}

// GetLastDirectory returns the folder the file choosers open in
func (s *Settings) GetLastDirectory() string {
	return s.app.Preferences().String(KeyLastDirectory)
}

// SetLastDirectory remembers the folder of the last picked file
func (s *Settings) SetLastDirectory(dir string) {
	if dir == "" {
		return
	}
	s.app.Preferences().SetString(KeyLastDirectory, dir)
}

// GetLanguage returns the configured language
func (s *Settings) GetLanguage() string {
	lang := s.app.Preferences().String(KeyLanguage)
	if lang == "" {
		s.SetLanguage(DefaultLanguage)
		return DefaultLanguage
	}
	return lang
}

// SetLanguage sets the application language
func (s *Settings) SetLanguage(lang string) {
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"fr":     "Français",
	}
}
