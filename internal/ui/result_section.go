package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/social-downloader/internal/download"
	"github.com/ytget/social-downloader/internal/model"
)

// ResultSection shows the title, meta line and media cards of a result
type ResultSection struct {
	localization *Localization
	mobile       *MobileUI
	actions      ItemActions

	titleLabel *widget.Label
	metaLabel  *widget.Label
	items      *fyne.Container
	box        *fyne.Container

	shown  *model.DownloadResult
	cards  []*MediaItemCard
	layout download.Layout
}

// NewResultSection creates a hidden result section
func NewResultSection(localization *Localization, mobile *MobileUI, actions ItemActions) *ResultSection {
	rs := &ResultSection{
		localization: localization,
		mobile:       mobile,
		actions:      actions,
	}

	rs.titleLabel = widget.NewLabel("")
	rs.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	rs.titleLabel.Wrapping = fyne.TextWrapWord
	rs.metaLabel = widget.NewLabel("")
	rs.metaLabel.Importance = widget.LowImportance
	rs.items = container.NewVBox()

	rs.box = container.NewVBox(widget.NewSeparator(), rs.titleLabel, rs.metaLabel, rs.items)
	rs.box.Hide()
	return rs
}

// Container returns the section's canvas object
func (rs *ResultSection) Container() *fyne.Container {
	return rs.box
}

// Show renders result; rendering the same result again is a no-op
func (rs *ResultSection) Show(result *model.DownloadResult) {
	if result == rs.shown {
		rs.box.Show()
		return
	}
	rs.shown = result

	view := download.BuildResultView(result)
	rs.titleLabel.SetText(view.Title)
	rs.metaLabel.SetText(view.Meta)
	if view.Meta == "" {
		rs.metaLabel.Hide()
	} else {
		rs.metaLabel.Show()
	}

	rs.cards = rs.cards[:0]
	objects := make([]fyne.CanvasObject, 0, len(view.Entries))
	for _, entry := range view.Entries {
		card := NewMediaItemCard(entry, rs.actions, rs.localization)
		rs.cards = append(rs.cards, card)
		objects = append(objects, card)
	}

	rs.layout = view.Layout
	if view.Layout == download.LayoutGrid {
		rs.items.Objects = []fyne.CanvasObject{container.NewGridWithColumns(rs.mobile.GalleryColumns(), objects...)}
	} else {
		rs.items.Objects = objects
	}
	rs.items.Refresh()
	rs.box.Show()
}

// Clear hides the section and drops the rendered cards
func (rs *ResultSection) Clear() {
	rs.shown = nil
	rs.cards = nil
	rs.items.Objects = nil
	rs.items.Refresh()
	rs.box.Hide()
}

// Cards returns the rendered cards in item order
func (rs *ResultSection) Cards() []*MediaItemCard {
	return rs.cards
}

// Layout returns how the current cards are arranged
func (rs *ResultSection) Layout() download.Layout {
	return rs.layout
}
