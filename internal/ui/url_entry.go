package ui

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// URLEntry is a single-line entry that reports pastes separately from typing
type URLEntry struct {
	widget.Entry

	// OnPasted is called with the entry text shortly after a paste
	OnPasted func(text string)
}

// NewURLEntry creates a new URL entry
func NewURLEntry() *URLEntry {
	e := &URLEntry{}
	e.ExtendBaseWidget(e)
	return e
}

// TypedShortcut handles shortcuts and schedules paste detection
func (e *URLEntry) TypedShortcut(shortcut fyne.Shortcut) {
	e.Entry.TypedShortcut(shortcut)

	if _, ok := shortcut.(*fyne.ShortcutPaste); !ok || e.OnPasted == nil {
		return
	}
	time.AfterFunc(PasteDetectDelay, func() {
		fyne.Do(func() {
			if e.OnPasted != nil {
				e.OnPasted(e.Text)
			}
		})
	})
}
