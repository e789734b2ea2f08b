package ui

import "time"

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Icons (emojis/symbols)
const (
	IconError = "❌"
)

// Platform badges shown in the icon bar
var PlatformBadges = map[string]string{
	"reel":      "IG Reel",
	"igpost":    "IG Post",
	"tiktok":    "TikTok",
	"youtube":   "YouTube",
	"facebook":  "Facebook",
	"threads":   "Threads",
	"pinterest": "Pinterest",
	"twitter":   "X",
	"pornhub":   "PH",
}

// Layout sizing
const (
	ThumbnailWidth     float32 = 160
	ThumbnailHeight    float32 = 90
	PlatformBadgeWidth float32 = 84

	// Touch target minimum sizes (iOS/Android guidelines)
	MinTouchTargetSize float32 = 44
	MobileButtonHeight float32 = 48
)

// Grid columns for image galleries
const (
	DesktopGalleryColumns  = 3
	PortraitGalleryColumns = 2
)

// Settings dialog size
const (
	SettingsDialogWidth  float32 = 480
	SettingsDialogHeight float32 = 280
)

// Delays
const (
	// PasteDetectDelay lets the entry apply pasted text before detection runs
	PasteDetectDelay     = 100 * time.Millisecond
	CopyFeedbackDuration = 2 * time.Second
)
