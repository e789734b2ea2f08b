package config

import (
	"strings"

	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyAPIBaseURL      = "api_base_url"
	KeyLanguage        = "app_language"
	KeyMetricsAddr     = "metrics_listen_address"
	KeyLegacyClipboard = "legacy_clipboard_fallback"
)

// Default values
const (
	DefaultAPIBaseURL      = "https://downloader-0f5k.onrender.com"
	DefaultLanguage        = "system"
	DefaultMetricsAddr     = ""
	DefaultLegacyClipboard = true
)

// Settings manages application configuration
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// NormalizeBaseURL trims whitespace and trailing slashes; empty means default
func NormalizeBaseURL(raw string) string {
	base := strings.TrimRight(strings.TrimSpace(raw), "/")
	if base == "" {
		return DefaultAPIBaseURL
	}
	return base
}

// GetAPIBaseURL returns the backend base URL
func (s *Settings) GetAPIBaseURL() string {
	base := s.app.Preferences().String(KeyAPIBaseURL)
	if base == "" {
		s.SetAPIBaseURL(DefaultAPIBaseURL)
		return DefaultAPIBaseURL
	}
	return NormalizeBaseURL(base)
}

// SetAPIBaseURL sets the backend base URL
func (s *Settings) SetAPIBaseURL(base string) {
	s.app.Preferences().SetString(KeyAPIBaseURL, NormalizeBaseURL(base))
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

// SetLanguage sets the application language; unknown codes fall back to system
func (s *Settings) SetLanguage(lang string) {
	if _, ok := s.GetLanguageOptions()[lang]; !ok {
		lang = DefaultLanguage
	}
	s.app.Preferences().SetString(KeyLanguage, lang)
}

// GetMetricsAddr returns the metrics listen address; empty disables the endpoint
func (s *Settings) GetMetricsAddr() string {
	return s.app.Preferences().StringWithFallback(KeyMetricsAddr, DefaultMetricsAddr)
}

// SetMetricsAddr sets the metrics listen address
func (s *Settings) SetMetricsAddr(addr string) {
	s.app.Preferences().SetString(KeyMetricsAddr, strings.TrimSpace(addr))
}

// GetLegacyClipboard returns whether copy falls back to OS clipboard commands
func (s *Settings) GetLegacyClipboard() bool {
	return s.app.Preferences().BoolWithFallback(KeyLegacyClipboard, DefaultLegacyClipboard)
}

// SetLegacyClipboard sets whether copy falls back to OS clipboard commands
func (s *Settings) SetLegacyClipboard(enabled bool) {
	s.app.Preferences().SetBool(KeyLegacyClipboard, enabled)
}

// ApplyEnv overrides stored preferences with values present in env
func (s *Settings) ApplyEnv(env Env) {
	if env.APIBaseURL != "" {
		s.SetAPIBaseURL(env.APIBaseURL)
	}
	if env.Language != "" {
		s.SetLanguage(env.Language)
	}
	if env.MetricsAddr != "" {
		s.SetMetricsAddr(env.MetricsAddr)
	}
}

// GetLanguageOptions returns available language options
func (s *Settings) GetLanguageOptions() map[string]string {
	return map[string]string{
		"system": "System Default",
		"en":     "English",
		"ru":     "Русский",
		"pt":     "Português",
	}
}
