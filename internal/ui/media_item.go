package ui

import (
	"context"
	"log"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/social-downloader/internal/download"
)

// ItemActions are the callbacks a media card invokes
type ItemActions struct {
	Open func(link string) error
	Copy func(ctx context.Context, link string) error
}

// MediaItemCard renders one result entry
type MediaItemCard struct {
	widget.BaseWidget

	entry        download.EntryView
	actions      ItemActions
	localization *Localization

	thumbnail     *canvas.Image
	titleLabel    *widget.Label
	durationLabel *widget.Label
	downloadBtn   *widget.Button
	copyBtn       *widget.Button
	statusLabel   *widget.Label

	copyLabel string
}

// NewMediaItemCard creates a card for entry
func NewMediaItemCard(entry download.EntryView, actions ItemActions, localization *Localization) *MediaItemCard {
	card := &MediaItemCard{
		entry:        entry,
		actions:      actions,
		localization: localization,
		copyLabel:    localization.GetText(KeyCopyLink),
	}
	card.ExtendBaseWidget(card)
	card.createUI()
	return card
}

// createUI creates the UI components
func (c *MediaItemCard) createUI() {
	if c.entry.Thumbnail != "" {
		if uri, err := storage.ParseURI(c.entry.Thumbnail); err == nil {
			c.thumbnail = canvas.NewImageFromURI(uri)
			c.thumbnail.FillMode = canvas.ImageFillContain
			c.thumbnail.SetMinSize(fyne.NewSize(ThumbnailWidth, ThumbnailHeight))
		} else {
			log.Printf("Skipping thumbnail %q: %v", c.entry.Thumbnail, err)
		}
	}

	c.titleLabel = widget.NewLabel(c.entry.Title)
	c.titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	c.titleLabel.Wrapping = fyne.TextWrapWord
	c.titleLabel.Truncation = fyne.TextTruncateEllipsis
	if c.entry.Title == "" {
		c.titleLabel.Hide()
	}

	c.durationLabel = widget.NewLabel(c.entry.DurationLine)
	c.durationLabel.Importance = widget.LowImportance
	if c.entry.DurationLine == "" {
		c.durationLabel.Hide()
	}

	c.statusLabel = widget.NewLabel("")
	c.statusLabel.Importance = widget.DangerImportance
	c.statusLabel.Hide()

	c.downloadBtn = widget.NewButtonWithIcon(c.entry.ActionLabel, theme.DownloadIcon(), c.onDownload)
	c.downloadBtn.Importance = widget.HighImportance
	c.copyBtn = widget.NewButtonWithIcon(c.copyLabel, theme.ContentCopyIcon(), c.onCopy)

	if !c.entry.HasActions() {
		c.downloadBtn.Hide()
		c.copyBtn.Hide()
	}
}

// CreateRenderer creates the renderer for the card
func (c *MediaItemCard) CreateRenderer() fyne.WidgetRenderer {
	details := container.NewVBox(
		c.titleLabel,
		c.durationLabel,
		container.NewHBox(c.downloadBtn, c.copyBtn),
		c.statusLabel,
	)

	var content fyne.CanvasObject = details
	if c.thumbnail != nil {
		content = container.NewVBox(c.thumbnail, details)
	}
	return widget.NewSimpleRenderer(container.NewPadded(content))
}

// onDownload opens the direct link
func (c *MediaItemCard) onDownload() {
	if c.actions.Open == nil || c.entry.URL == "" {
		return
	}
	if err := c.actions.Open(c.entry.URL); err != nil {
		log.Printf("Failed to open %s: %v", c.entry.URL, err)
		c.showStatus(c.localization.GetText(KeyOpenFailed))
	}
}

// onCopy copies the link and shows the confirmation on the button
func (c *MediaItemCard) onCopy() {
	if c.actions.Copy == nil || c.entry.URL == "" {
		return
	}

	link := c.entry.URL
	go func() {
		err := c.actions.Copy(context.Background(), link)
		fyne.Do(func() {
			if err != nil {
				log.Printf("Copy failed for entry %d: %v", c.entry.Index, err)
				c.showStatus(c.localization.GetText(KeyCopyFailed))
				return
			}
			c.showCopied()
		})
	}()
}

// showCopied swaps the copy label for the confirmation and restores it later
func (c *MediaItemCard) showCopied() {
	c.statusLabel.Hide()
	c.copyBtn.SetText(c.localization.GetText(KeyCopied))
	c.copyBtn.SetIcon(theme.ConfirmIcon())

	time.AfterFunc(CopyFeedbackDuration, func() {
		fyne.Do(func() {
			c.copyBtn.SetText(c.copyLabel)
			c.copyBtn.SetIcon(theme.ContentCopyIcon())
		})
	})
}

func (c *MediaItemCard) showStatus(text string) {
	c.statusLabel.SetText(text)
	c.statusLabel.Show()
}

// Entry returns the rendered entry
func (c *MediaItemCard) Entry() download.EntryView {
	return c.entry
}
