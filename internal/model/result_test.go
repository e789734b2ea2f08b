package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestDownloadResult_IsGallery(t *testing.T) {
	tests := []struct {
		name     string
		result   *DownloadResult
		expected bool
	}{
		{"nil result", nil, false},
		{"images with several items", &DownloadResult{Type: ResultTypeImages, Items: make([]MediaItem, 3)}, true},
		{"images with a single item", &DownloadResult{Type: ResultTypeImages, Items: make([]MediaItem, 1)}, false},
		{"video with several items", &DownloadResult{Type: "video", Items: make([]MediaItem, 2)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsGallery(); got != tt.expected {
				t.Errorf("IsGallery() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestDownloadRequest_WireFormat(t *testing.T) {
	req := NewDownloadRequest(PlatformTikTok, "https://www.tiktok.com/@a/video/1")
	if req.ID == "" {
		t.Fatal("Expected request ID to be generated")
	}

	body, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	expected := `{"platform":"tiktok","url":"https://www.tiktok.com/@a/video/1"}`
	if string(body) != expected {
		t.Errorf("Expected body %s, got %s", expected, body)
	}
}

func TestValidationError_Messages(t *testing.T) {
	tests := []struct {
		reason   ValidationReason
		expected string
	}{
		{ReasonEmpty, "Please enter a URL"},
		{ReasonMalformed, "Please enter a valid URL"},
		{ReasonUndetected, "Could not detect platform. Please select manually."},
	}

	for _, test := range tests {
		err := &ValidationError{Reason: test.reason}
		if err.Error() != test.expected {
			t.Errorf("ValidationError(%s) = %q, expected %q", test.reason, err.Error(), test.expected)
		}
	}
}

func TestIsValidation(t *testing.T) {
	wrapped := errors.Join(errors.New("context"), &ValidationError{Reason: ReasonMalformed})

	if !IsValidation(wrapped, ReasonMalformed) {
		t.Error("Expected wrapped malformed error to match")
	}
	if IsValidation(wrapped, ReasonEmpty) {
		t.Error("Reason mismatch should not match")
	}
	if !IsValidation(wrapped, "") {
		t.Error("Empty reason should match any validation error")
	}
	if IsValidation(&ServerError{StatusCode: 500}, "") {
		t.Error("Server error is not a validation error")
	}
}

func TestPlatformTag_SelectableOrder(t *testing.T) {
	tags := SelectablePlatforms()
	if tags[0] != PlatformAuto {
		t.Errorf("Expected auto first, got %s", tags[0])
	}
	for _, tag := range tags[1:] {
		if !tag.IsConcrete() {
			t.Errorf("Selectable tag %s should be concrete", tag)
		}
		back, ok := PlatformFromDisplayName(tag.DisplayName())
		if !ok || back != tag {
			t.Errorf("Display name round trip failed for %s", tag)
		}
	}
	if PlatformUnknown.IsConcrete() || PlatformAuto.IsConcrete() {
		t.Error("auto and unknown must not be concrete")
	}
}
