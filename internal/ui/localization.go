package ui

import "github.com/ytget/social-downloader/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle         = "app_title"
	KeyDownload         = "download"
	KeySettings         = "settings"
	KeyFile             = "file"
	KeyLanguage         = "language"
	KeyPlatform         = "platform"
	KeyAPIBaseURL       = "api_base_url"
	KeyLegacyClipboard  = "legacy_clipboard"
	KeySave             = "save"
	KeyCancel           = "cancel"
	KeyClear            = "clear"
	KeyEnterURL         = "enter_url"
	KeySettingsSaved    = "settings_saved"
	KeyLoading          = "loading"
	KeyPleaseEnterURL   = "please_enter_url"
	KeyInvalidURL       = "invalid_url"
	KeyCouldNotDetect   = "could_not_detect"
	KeyCopyLink         = "copy_link"
	KeyCopied           = "copied"
	KeyCopyFailed       = "copy_failed"
	KeyOpenFailed       = "open_failed"
	KeySupportedSources = "supported_sources"
)

// validationKeys maps local validation failures to their text keys
var validationKeys = map[model.ValidationReason]string{
	model.ReasonEmpty:      KeyPleaseEnterURL,
	model.ReasonMalformed:  KeyInvalidURL,
	model.ReasonUndetected: KeyCouldNotDetect,
}

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

// ErrorText returns the localized message for validation errors and the
// controller's message verbatim for everything else
func (l *Localization) ErrorText(state model.ViewState) string {
	for reason, key := range validationKeys {
		if model.IsValidation(state.Err, reason) {
			return l.GetText(key)
		}
	}
	return state.Message
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
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:         "Social Downloader",
		KeyDownload:         "Download",
		KeySettings:         "Settings",
		KeyFile:             "File",
		KeyLanguage:         "Language",
		KeyPlatform:         "Platform",
		KeyAPIBaseURL:       "Backend URL",
		KeyLegacyClipboard:  "Fall back to system clipboard tools",
		KeySave:             "Save",
		KeyCancel:           "Cancel",
		KeyClear:            "Clear",
		KeyEnterURL:         "Paste a video or post URL",
		KeySettingsSaved:    "Settings saved successfully!",
		KeyLoading:          "Fetching download links...",
		KeyPleaseEnterURL:   "Please enter a URL",
		KeyInvalidURL:       "Please enter a valid URL",
		KeyCouldNotDetect:   "Could not detect platform. Please select manually.",
		KeyCopyLink:         "Copy Link",
		KeyCopied:           "Copied!",
		KeyCopyFailed:       "Could not copy the link",
		KeyOpenFailed:       "Could not open the link",
		KeySupportedSources: "Supported platforms",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:         "Social Downloader",
		KeyDownload:         "Скачать",
		KeySettings:         "Настройки",
		KeyFile:             "Файл",
		KeyLanguage:         "Язык",
		KeyPlatform:         "Платформа",
		KeyAPIBaseURL:       "Адрес сервера",
		KeyLegacyClipboard:  "Использовать системные утилиты буфера обмена",
		KeySave:             "Сохранить",
		KeyCancel:           "Отмена",
		KeyClear:            "Очистить",
		KeyEnterURL:         "Вставьте ссылку на видео или пост",
		KeySettingsSaved:    "Настройки успешно сохранены!",
		KeyLoading:          "Получение ссылок...",
		KeyPleaseEnterURL:   "Пожалуйста, введите URL",
		KeyInvalidURL:       "Пожалуйста, введите корректный URL",
		KeyCouldNotDetect:   "Не удалось определить платформу. Выберите вручную.",
		KeyCopyLink:         "Копировать ссылку",
		KeyCopied:           "Скопировано!",
		KeyCopyFailed:       "Не удалось скопировать ссылку",
		KeyOpenFailed:       "Не удалось открыть ссылку",
		KeySupportedSources: "Поддерживаемые платформы",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:         "Social Downloader",
		KeyDownload:         "Baixar",
		KeySettings:         "Configurações",
		KeyFile:             "Arquivo",
		KeyLanguage:         "Idioma",
		KeyPlatform:         "Plataforma",
		KeyAPIBaseURL:       "URL do servidor",
		KeyLegacyClipboard:  "Usar ferramentas de área de transferência do sistema",
		KeySave:             "Salvar",
		KeyCancel:           "Cancelar",
		KeyClear:            "Limpar",
		KeyEnterURL:         "Cole a URL de um vídeo ou post",
		KeySettingsSaved:    "Configurações salvas com sucesso!",
		KeyLoading:          "Buscando links de download...",
		KeyPleaseEnterURL:   "Por favor, digite uma URL",
		KeyInvalidURL:       "Por favor, digite uma URL válida",
		KeyCouldNotDetect:   "Não foi possível detectar a plataforma. Selecione manualmente.",
		KeyCopyLink:         "Copiar link",
		KeyCopied:           "Copiado!",
		KeyCopyFailed:       "Não foi possível copiar o link",
		KeyOpenFailed:       "Não foi possível abrir o link",
		KeySupportedSources: "Plataformas suportadas",
	}
}
