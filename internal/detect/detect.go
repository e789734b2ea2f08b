// Package detect infers the source platform of a pasted URL.
package detect

import (
	"strings"

	"github.com/ytget/social-downloader/internal/model"
)

// Rule maps a set of substrings to a platform tag
type Rule struct {
	Patterns []string
	Tag      model.PlatformTag
}

// Rules are evaluated in order and the first match wins. Order matters:
// Instagram reels must be checked before posts, and the broad "t.co" pattern
// must stay after every rule whose host could contain it.
var Rules = []Rule{
	{Patterns: []string{"instagram.com/reel/"}, Tag: model.PlatformReel},
	{Patterns: []string{"instagram.com/p/"}, Tag: model.PlatformIGPost},
	{Patterns: []string{"tiktok.com", "vm.tiktok.com"}, Tag: model.PlatformTikTok},
	{Patterns: []string{"youtube.com", "youtu.be", "m.youtube.com"}, Tag: model.PlatformYouTube},
	{Patterns: []string{"facebook.com", "fb.watch", "m.facebook.com"}, Tag: model.PlatformFacebook},
	{Patterns: []string{"threads.net"}, Tag: model.PlatformThreads},
	{Patterns: []string{"pinterest.com", "pin.it"}, Tag: model.PlatformPinterest},
	{Patterns: []string{"twitter.com", "x.com", "t.co"}, Tag: model.PlatformTwitter},
	{Patterns: []string{"pornhub.com"}, Tag: model.PlatformPornhub},
}

// Detect returns the platform tag for rawURL, or false if no rule matched.
// The input is not validated as a URL.
func Detect(rawURL string) (model.PlatformTag, bool) {
	lower := strings.ToLower(rawURL)
	for _, rule := range Rules {
		for _, pattern := range rule.Patterns {
			if strings.Contains(lower, pattern) {
				return rule.Tag, true
			}
		}
	}
	return model.PlatformUnknown, false
}

// Platform is Detect without the ok flag; unmatched input yields PlatformUnknown
func Platform(rawURL string) model.PlatformTag {
	tag, _ := Detect(rawURL)
	return tag
}
