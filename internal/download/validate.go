package download

import (
	"net/url"
	"strings"

	"github.com/ytget/social-downloader/internal/detect"
	"github.com/ytget/social-downloader/internal/model"
)

// IsWellFormedURL reports whether s is an absolute http(s) URL with a host
func IsWellFormedURL(s string) bool {
	parsed, err := url.Parse(s)
	if err != nil {
		return false
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return false
	}
	return parsed.Host != ""
}

// Prepare validates raw input and resolves the platform. It returns the
// request to send, or a *model.ValidationError; it never touches the network.
func Prepare(rawInput string, selected model.PlatformTag) (*model.DownloadRequest, error) {
	input := strings.TrimSpace(rawInput)
	if input == "" {
		return nil, &model.ValidationError{Reason: model.ReasonEmpty}
	}

	if !IsWellFormedURL(input) {
		return nil, &model.ValidationError{Reason: model.ReasonMalformed}
	}

	platform := selected
	if !platform.IsConcrete() {
		tag, ok := detect.Detect(input)
		if !ok {
			return nil, &model.ValidationError{Reason: model.ReasonUndetected}
		}
		platform = tag
	}

	return model.NewDownloadRequest(platform, input), nil
}

// DetectFromInput is the auto-detection run on every input change: it only
// reports a tag for well-formed URLs that match a rule.
func DetectFromInput(rawInput string) (model.PlatformTag, bool) {
	input := strings.TrimSpace(rawInput)
	if input == "" || !IsWellFormedURL(input) {
		return model.PlatformUnknown, false
	}
	return detect.Detect(input)
}
