package config

import (
	"fyne.io/fyne/v2"

	"github.com/joshdecs/soundcloud-playlist-converter/internal/platform"
)

// Settings keys for Fyne preferences
const (
	KeyDownloadDir  = "download_directory"
	KeyAudioFormat  = "audio_format"
	KeyAudioQuality = "audio_quality"
	KeyLanguage     = "app_language"
)

// Default values
const (
	DefaultSubdir       = "SoundCloud"
	DefaultAudioFormat  = "mp3"
	DefaultAudioQuality = "192K"
	DefaultLanguage     = "system"

	FallbackDownloadDir = "/tmp/downloads"
)

// Settings manages application configuration backed by Fyne preferences.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetDownloadDirectory returns the configured destination directory,
// defaulting to a SoundCloud subfolder of the user's Downloads.
func (s *Settings) GetDownloadDirectory() string {
	dir := s.app.Preferences().String(KeyDownloadDir)
	if dir == "" {
		defaultDir, err := platform.GetDefaultDownloadDir(DefaultSubdir)
		if err != nil {
			defaultDir = FallbackDownloadDir
		}
		s.SetDownloadDirectory(defaultDir)
		return defaultDir
	}
	return dir
}

// SetDownloadDirectory sets the destination directory
func (s *Settings) SetDownloadDirectory(dir string) {
	s.app.Preferences().SetString(KeyDownloadDir, dir)
}

// GetAudioFormat returns the target codec
func (s *Settings) GetAudioFormat() string {
	format := s.app.Preferences().String(KeyAudioFormat)
	if format == "" {
		s.SetAudioFormat(DefaultAudioFormat)
		return DefaultAudioFormat
	}
	return format
}

// SetAudioFormat sets the target codec
func (s *Settings) SetAudioFormat(format string) {
	if format == "" {
		format = DefaultAudioFormat
	}
	s.app.Preferences().SetString(KeyAudioFormat, format)
}

// GetAudioQuality returns the target bitrate
func (s *Settings) GetAudioQuality() string {
	quality := s.app.Preferences().String(KeyAudioQuality)
	if quality == "" {
		s.SetAudioQuality(DefaultAudioQuality)
		return DefaultAudioQuality
	}
	return quality
}

// SetAudioQuality sets the target bitrate
func (s *Settings) SetAudioQuality(quality string) {
	if quality == "" {
		quality = DefaultAudioQuality
	}
	s.app.Preferences().SetString(KeyAudioQuality, quality)
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

// GetAudioFormatOptions returns available codec targets
func (s *Settings) GetAudioFormatOptions() []string {
	return []string{"mp3", "m4a", "opus"}
}

// GetAudioQualityOptions returns available bitrate targets
func (s *Settings) GetAudioQualityOptions() []string {
	return []string{"128K", "192K", "256K", "320K"}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
	}
}
