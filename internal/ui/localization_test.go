package ui

import (
	"errors"
	"testing"

	"github.com/ytget/social-downloader/internal/model"
)

func TestLocalization_Fallbacks(t *testing.T) {
	l := NewLocalization()

	if got := l.GetText(KeyDownload); got != "Download" {
		t.Errorf("Expected 'Download', got %q", got)
	}

	l.SetLanguage("ru")
	if got := l.GetText(KeyDownload); got != "Скачать" {
		t.Errorf("Expected Russian text, got %q", got)
	}

	l.SetLanguage("de")
	if l.GetCurrentLanguage() != "ru" {
		t.Errorf("Unknown language should be ignored, got %s", l.GetCurrentLanguage())
	}

	l.SetLanguage("system")
	if l.GetCurrentLanguage() != "en" {
		t.Errorf("System should map to English, got %s", l.GetCurrentLanguage())
	}

	if got := l.GetText("missing_key"); got != "missing_key" {
		t.Errorf("Missing key should fall back to itself, got %q", got)
	}
}

func TestLocalization_EveryLanguageHasEveryKey(t *testing.T) {
	l := NewLocalization()
	for lang := range l.GetAvailableLanguages() {
		for key := range l.texts["en"] {
			if _, ok := l.texts[lang][key]; !ok {
				t.Errorf("Language %s is missing key %s", lang, key)
			}
		}
	}
}

func TestLocalization_ErrorText(t *testing.T) {
	l := NewLocalization()
	l.SetLanguage("pt")

	tests := []struct {
		name     string
		state    model.ViewState
		expected string
	}{
		{"empty", model.ViewState{Err: &model.ValidationError{Reason: model.ReasonEmpty}}, "Por favor, digite uma URL"},
		{"undetected", model.ViewState{Err: &model.ValidationError{Reason: model.ReasonUndetected}}, "Não foi possível detectar a plataforma. Selecione manualmente."},
		{"server message", model.ViewState{Err: errors.New("x"), Message: "Video is private"}, "Video is private"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.ErrorText(tt.state); got != tt.expected {
				t.Errorf("ErrorText() = %q, expected %q", got, tt.expected)
			}
		})
	}
}
