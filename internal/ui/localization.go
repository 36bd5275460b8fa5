package ui

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle          = "app_title"
	KeyURL               = "url"
	KeySave              = "save"
	KeyPaste             = "paste"
	KeyBrowse            = "browse"
	KeyOpenFolder        = "open_folder"
	KeyDownload          = "download"
	KeyChecking          = "checking"
	KeyDownloading       = "downloading"
	KeyLanguage          = "language"
	KeyFile              = "file"
	KeyQuit              = "quit"
	KeyEnterURL          = "enter_url"
	KeyWarning           = "warning"
	KeyError             = "error"
	KeyURLNotSet         = "url_not_set"
	KeyInvalidURL        = "invalid_url"
	KeyInvalidClipboard  = "invalid_clipboard"
	KeyPasteValid        = "paste_valid"
	KeyPasteInvalid      = "paste_invalid"
	KeyToolMissing       = "tool_missing"
	KeyDirectoryNotFound = "directory_not_found"
	KeyOpenedDirectory   = "opened_directory"
	KeyConfigRestored    = "config_restored"
	KeyDownloadCompleted = "download_completed"
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
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
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

	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
	}
}

func (l *Localization) initializeTexts() {
	l.texts["en"] = map[string]string{
		KeyAppTitle:          "VDio",
		KeyURL:               "Url:",
		KeySave:              "Save:",
		KeyPaste:             "Paste",
		KeyBrowse:            "Browse",
		KeyOpenFolder:        "Open folder",
		KeyDownload:          "Download",
		KeyChecking:          "Checking...",
		KeyDownloading:       "Downloading...",
		KeyLanguage:          "Language",
		KeyFile:              "File",
		KeyQuit:              "Quit",
		KeyEnterURL:          "https://...",
		KeyWarning:           "Warning",
		KeyError:             "Error",
		KeyURLNotSet:         "URL not set",
		KeyInvalidURL:        "Invalid URL",
		KeyInvalidClipboard:  "Clipboard contents must start with http:// or https://",
		KeyPasteValid:        "Paste: Valid URL pasted from clipboard.",
		KeyPasteInvalid:      "Paste: Clipboard content is NOT a valid URL.",
		KeyToolMissing:       "%s is not installed or not in PATH.",
		KeyDirectoryNotFound: "Directory not found: %s",
		KeyOpenedDirectory:   "Opened directory: %s",
		KeyConfigRestored:    "Config: Restored save path.",
		KeyDownloadCompleted: "Download completed",
	}

	l.texts["ru"] = map[string]string{
		KeyAppTitle:          "VDio",
		KeyURL:               "Ссылка:",
		KeySave:              "Папка:",
		KeyPaste:             "Вставить",
		KeyBrowse:            "Обзор",
		KeyOpenFolder:        "Открыть папку",
		KeyDownload:          "Скачать",
		KeyChecking:          "Проверка...",
		KeyDownloading:       "Загрузка...",
		KeyLanguage:          "Язык",
		KeyFile:              "Файл",
		KeyQuit:              "Выход",
		KeyEnterURL:          "https://...",
		KeyWarning:           "Внимание",
		KeyError:             "Ошибка",
		KeyURLNotSet:         "Ссылка не указана",
		KeyInvalidURL:        "Неверная ссылка",
		KeyInvalidClipboard:  "Содержимое буфера обмена должно начинаться с http:// или https://",
		KeyPasteValid:        "Вставка: ссылка вставлена из буфера обмена.",
		KeyPasteInvalid:      "Вставка: в буфере обмена нет ссылки.",
		KeyToolMissing:       "%s не установлен или не найден в PATH.",
		KeyDirectoryNotFound: "Папка не найдена: %s",
		KeyOpenedDirectory:   "Открыта папка: %s",
		KeyConfigRestored:    "Настройки: путь сохранения восстановлен.",
		KeyDownloadCompleted: "Загрузка завершена",
	}
}
