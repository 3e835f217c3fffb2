package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyPlaylistURL      = "playlist_url"
	KeyOutputFolder     = "output_folder"
	KeyBrowse           = "browse"
	KeyStartDownload    = "start_download"
	KeyCancel           = "cancel"
	KeyCurrentFile      = "current_file"
	KeyPlaylist         = "playlist"
	KeyStatusIdle       = "status_idle"
	KeyStatusStarting   = "status_starting"
	KeyStatusCancelled  = "status_cancelled"
	KeyMissingURLTitle  = "missing_url_title"
	KeyMissingURLText   = "missing_url_text"
	KeyMissingDirTitle  = "missing_dir_title"
	KeyMissingDirText   = "missing_dir_text"
	KeyFolderErrorTitle = "folder_error_title"
	KeyCancelTitle      = "cancel_title"
	KeyCancelText       = "cancel_text"
	KeySuccessTitle     = "success_title"
	KeySuccessText      = "success_text"
	KeyErrorText        = "error_text"
	KeySave             = "save"
	KeyOpenFolder       = "open_folder"
	KeySettings         = "settings"
	KeySettingsSaved    = "settings_saved"
	KeyAudioFormat      = "audio_format"
	KeyAudioQuality     = "audio_quality"
	KeyLanguage         = "language"
	KeyFile             = "file"
)

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		// Use system locale - simplified to English for now
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetCurrentLanguage returns the active language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "SoundCloud Playlist Downloader",
		KeyPlaylistURL:      "Playlist URL",
		KeyOutputFolder:     "Output Folder",
		KeyBrowse:           "Browse…",
		KeyStartDownload:    "Start Download",
		KeyCancel:           "Cancel",
		KeyCurrentFile:      "Current file",
		KeyPlaylist:         "Playlist",
		KeyStatusIdle:       "Idle.",
		KeyStatusStarting:   "Starting…",
		KeyStatusCancelled:  "Cancellation requested.",
		KeyMissingURLTitle:  "Missing URL",
		KeyMissingURLText:   "Please paste a SoundCloud playlist URL.",
		KeyMissingDirTitle:  "Missing Folder",
		KeyMissingDirText:   "Please choose an output folder.",
		KeyFolderErrorTitle: "Folder Error",
		KeyCancelTitle:      "Cancel",
		KeyCancelText:       "Cancel will stop after the current item finishes.",
		KeySuccessTitle:     "Success",
		KeySuccessText:      "All downloads completed.",
		KeyErrorText:        "The download failed. Check the log.",
		KeySave:             "Save",
		KeyOpenFolder:       "Open Folder",
		KeySettings:         "Settings",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyAudioFormat:      "Audio Format",
		KeyAudioQuality:     "Audio Bitrate",
		KeyLanguage:         "Language",
		KeyFile:             "File",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Загрузчик плейлистов SoundCloud",
		KeyPlaylistURL:      "URL плейлиста",
		KeyOutputFolder:     "Папка назначения",
		KeyBrowse:           "Обзор…",
		KeyStartDownload:    "Начать загрузку",
		KeyCancel:           "Отмена",
		KeyCurrentFile:      "Текущий файл",
		KeyPlaylist:         "Плейлист",
		KeyStatusIdle:       "Ожидание.",
		KeyStatusStarting:   "Запуск…",
		KeyStatusCancelled:  "Запрошена отмена.",
		KeyMissingURLTitle:  "Нет URL",
		KeyMissingURLText:   "Вставьте URL плейлиста SoundCloud.",
		KeyMissingDirTitle:  "Нет папки",
		KeyMissingDirText:   "Выберите папку назначения.",
		KeyFolderErrorTitle: "Ошибка папки",
		KeyCancelTitle:      "Отмена",
		KeyCancelText:       "Отмена остановит загрузку после текущего файла.",
		KeySuccessTitle:     "Готово",
		KeySuccessText:      "Все загрузки завершены.",
		KeyErrorText:        "Загрузка не удалась. Смотрите журнал.",
		KeySave:             "Сохранить",
		KeyOpenFolder:       "Открыть папку",
		KeySettings:         "Настройки",
		KeySettingsSaved:    "Настройки сохранены!",
		KeyAudioFormat:      "Формат аудио",
		KeyAudioQuality:     "Битрейт",
		KeyLanguage:         "Язык",
		KeyFile:             "Файл",
	}
}

// GetAvailableLanguages returns language codes mapped to display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}
