package download

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ytget/social-downloader/internal/model"
)

// Text fragments used when rendering a result
const (
	DefaultResultTitle = "Download Ready"
	MetaSeparator      = " • "
	CopyLinkLabel      = "Copy Link"
	CopiedLabel        = "Copied!"
)

// Layout selects how result entries are arranged
type Layout int

const (
	LayoutList Layout = iota
	LayoutGrid
)

// String returns the layout name
func (l Layout) String() string {
	if l == LayoutGrid {
		return "grid"
	}
	return "list"
}

// ResultView is the presentation of a successful response
type ResultView struct {
	Title   string
	Meta    string
	Layout  Layout
	Entries []EntryView
}

// EntryView is one rendered media item
type EntryView struct {
	Index        int
	Type         string
	Thumbnail    string // empty when the item has no thumbnail
	Title        string // empty when no title applies
	DurationLine string // empty when the item has no duration
	URL          string // empty when the item carries no direct link
	ActionLabel  string
}

// HasActions reports whether the download and copy actions are shown
func (e EntryView) HasActions() bool {
	return e.URL != ""
}

// BuildResultView maps a successful result to its presentation, preserving
// item order
func BuildResultView(result *model.DownloadResult) ResultView {
	if result == nil {
		return ResultView{Title: DefaultResultTitle}
	}

	view := ResultView{
		Title:   result.Title,
		Meta:    metaLine(result),
		Layout:  LayoutList,
		Entries: make([]EntryView, 0, len(result.Items)),
	}
	if view.Title == "" {
		view.Title = DefaultResultTitle
	}
	if result.IsGallery() {
		view.Layout = LayoutGrid
	}

	total := len(result.Items)
	for i, item := range result.Items {
		view.Entries = append(view.Entries, buildEntry(item, i, total, result.Title))
	}
	return view
}

func buildEntry(item model.MediaItem, index, total int, setTitle string) EntryView {
	entry := EntryView{
		Index:     index,
		Type:      item.Type,
		Thumbnail: item.Thumbnail,
		URL:       item.URL,
	}

	switch {
	case setTitle != "":
		entry.Title = setTitle
	case item.IsImage() && total > 1:
		entry.Title = fmt.Sprintf("Image %d of %d", index+1, total)
	}

	if item.Duration != "" {
		entry.DurationLine = "Duration: " + item.Duration
	}

	if item.HasLink() {
		entry.ActionLabel = ActionLabel(item)
	}
	return entry
}

// ActionLabel is the item's own label or "Download {Type}"
func ActionLabel(item model.MediaItem) string {
	if item.Label != "" {
		return item.Label
	}
	if item.Type == "" {
		return "Download"
	}
	return "Download " + Capitalize(item.Type)
}

// metaLine builds "Platform: X • Type: Y" from whichever parts are present
func metaLine(result *model.DownloadResult) string {
	var parts []string
	if result.Platform != "" {
		parts = append(parts, "Platform: "+Capitalize(result.Platform))
	}
	if result.Type != "" {
		parts = append(parts, "Type: "+strings.ToUpper(strings.Replace(result.Type, "_", " & ", 1)))
	}
	return strings.Join(parts, MetaSeparator)
}

// Capitalize upper-cases the first letter and leaves the rest untouched
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
