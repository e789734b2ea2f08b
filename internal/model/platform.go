package model

// PlatformTag identifies a supported source site
type PlatformTag string

const (
	PlatformReel      PlatformTag = "reel"
	PlatformIGPost    PlatformTag = "igpost"
	PlatformTikTok    PlatformTag = "tiktok"
	PlatformYouTube   PlatformTag = "youtube"
	PlatformFacebook  PlatformTag = "facebook"
	PlatformThreads   PlatformTag = "threads"
	PlatformPinterest PlatformTag = "pinterest"
	PlatformTwitter   PlatformTag = "twitter"
	PlatformPornhub   PlatformTag = "pornhub"

	// PlatformAuto asks the classifier to resolve the tag from the URL
	PlatformAuto PlatformTag = "auto"

	// PlatformUnknown is the classifier result when no rule matched
	PlatformUnknown PlatformTag = "unknown"
)

var platformNames = map[PlatformTag]string{
	PlatformAuto:      "Auto-detect",
	PlatformReel:      "Instagram Reel",
	PlatformIGPost:    "Instagram Post",
	PlatformTikTok:    "TikTok",
	PlatformYouTube:   "YouTube",
	PlatformFacebook:  "Facebook",
	PlatformThreads:   "Threads",
	PlatformPinterest: "Pinterest",
	PlatformTwitter:   "Twitter / X",
	PlatformPornhub:   "Pornhub",
	PlatformUnknown:   "Unknown",
}

// String returns the wire representation of the tag
func (p PlatformTag) String() string {
	return string(p)
}

// DisplayName returns a human-friendly name for selectors and icon tooltips
func (p PlatformTag) DisplayName() string {
	if name, ok := platformNames[p]; ok {
		return name
	}
	return string(p)
}

// IsConcrete reports whether the tag names an actual site and can be sent to the backend
func (p PlatformTag) IsConcrete() bool {
	switch p {
	case PlatformReel, PlatformIGPost, PlatformTikTok, PlatformYouTube, PlatformFacebook,
		PlatformThreads, PlatformPinterest, PlatformTwitter, PlatformPornhub:
		return true
	}
	return false
}

// SelectablePlatforms returns the selector options in display order, auto first
func SelectablePlatforms() []PlatformTag {
	return []PlatformTag{
		PlatformAuto,
		PlatformReel,
		PlatformIGPost,
		PlatformTikTok,
		PlatformYouTube,
		PlatformFacebook,
		PlatformThreads,
		PlatformPinterest,
		PlatformTwitter,
		PlatformPornhub,
	}
}

// PlatformFromDisplayName maps a selector label back to its tag
func PlatformFromDisplayName(name string) (PlatformTag, bool) {
	for tag, display := range platformNames {
		if display == name {
			return tag, true
		}
	}
	return "", false
}
