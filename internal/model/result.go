package model

// Result statuses returned by the backend
const (
	ResultStatusSuccess = "success"
	ResultStatusError   = "error"
)

// Media types the renderer treats specially
const (
	ResultTypeImages = "images"
	ItemTypeImage    = "image"
	ItemTypeVideo    = "video"
)

// DownloadResult is the decoded backend response
type DownloadResult struct {
	Status   string      `json:"status"`
	Title    string      `json:"title,omitempty"`
	Platform string      `json:"platform,omitempty"`
	Type     string      `json:"type,omitempty"`
	Message  string      `json:"message,omitempty"`
	Items    []MediaItem `json:"items,omitempty"`
}

// MediaItem is one downloadable asset
type MediaItem struct {
	Type      string `json:"type"`
	URL       string `json:"url,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Label     string `json:"label,omitempty"`
}

// IsSuccess returns true if the backend reported success
func (r *DownloadResult) IsSuccess() bool {
	return r != nil && r.Status == ResultStatusSuccess
}

// IsGallery returns true if the items should be laid out as a grid
func (r *DownloadResult) IsGallery() bool {
	return r != nil && r.Type == ResultTypeImages && len(r.Items) > 1
}

// HasLink returns true if the item carries a direct link
func (m MediaItem) HasLink() bool {
	return m.URL != ""
}

// IsImage returns true for image items
func (m MediaItem) IsImage() bool {
	return m.Type == ItemTypeImage
}
