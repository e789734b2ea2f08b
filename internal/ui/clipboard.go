package ui

import (
	"context"
	"errors"

	"fyne.io/fyne/v2"

	"github.com/ytget/social-downloader/internal/clipboard"
	"github.com/ytget/social-downloader/internal/platform"
)

// ErrClipboardNotApplied means the native clipboard did not keep the text
var ErrClipboardNotApplied = errors.New("clipboard content was not applied")

// NativeClipboard writes through the Fyne app clipboard
type NativeClipboard struct {
	clipboard fyne.Clipboard
}

// NewNativeClipboard wraps the app clipboard
func NewNativeClipboard(app fyne.App) *NativeClipboard {
	return &NativeClipboard{clipboard: app.Clipboard()}
}

// WriteText sets the clipboard on the UI thread and reads it back
func (c *NativeClipboard) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.clipboard == nil {
		return clipboard.ErrUnavailable
	}

	var content string
	fyne.DoAndWait(func() {
		c.clipboard.SetContent(text)
		content = c.clipboard.Content()
	})

	if content != text {
		return ErrClipboardNotApplied
	}
	return nil
}

// newClipboardWriter prefers the native clipboard and, when enabled, falls
// back to OS clipboard commands
func newClipboardWriter(app fyne.App, legacyEnabled bool) clipboard.Writer {
	var legacy clipboard.Writer
	if legacyEnabled {
		legacy = platform.NewCommandClipboard()
	}
	return clipboard.NewFallback(NewNativeClipboard(app), legacy)
}
