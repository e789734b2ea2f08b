package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/social-downloader/internal/download"
)

func TestMediaItemCard_WithoutLinkHasNoActions(t *testing.T) {
	test.NewApp()

	card := NewMediaItemCard(download.EntryView{Title: "Clip"}, ItemActions{}, NewLocalization())

	assert.False(t, card.downloadBtn.Visible())
	assert.False(t, card.copyBtn.Visible())
	assert.True(t, card.titleLabel.Visible())
	assert.False(t, card.durationLabel.Visible())
}

func TestMediaItemCard_Download(t *testing.T) {
	test.NewApp()

	var opened string
	entry := download.EntryView{URL: "https://cdn/v.mp4", ActionLabel: "Download Video", DurationLine: "Duration: 0:42"}
	card := NewMediaItemCard(entry, ItemActions{Open: func(link string) error {
		opened = link
		return nil
	}}, NewLocalization())

	assert.Equal(t, "Download Video", card.downloadBtn.Text)
	assert.True(t, card.durationLabel.Visible())

	test.Tap(card.downloadBtn)
	assert.Equal(t, "https://cdn/v.mp4", opened)
	assert.False(t, card.statusLabel.Visible())
}

func TestMediaItemCard_CopyShowsConfirmation(t *testing.T) {
	test.NewApp()

	copied := make(chan string, 1)
	entry := download.EntryView{URL: "https://cdn/v.mp4", ActionLabel: "Download Video"}
	card := NewMediaItemCard(entry, ItemActions{Copy: func(ctx context.Context, link string) error {
		copied <- link
		return nil
	}}, NewLocalization())

	assert.Equal(t, "Copy Link", card.copyBtn.Text)
	test.Tap(card.copyBtn)

	select {
	case link := <-copied:
		assert.Equal(t, "https://cdn/v.mp4", link)
	case <-time.After(time.Second):
		t.Fatal("copy was not invoked")
	}

	require.Eventually(t, func() bool { return card.copyBtn.Text == "Copied!" }, time.Second, 5*time.Millisecond)
	require.Eventually(t, func() bool { return card.copyBtn.Text == "Copy Link" }, CopyFeedbackDuration+time.Second, 50*time.Millisecond)
}

func TestMediaItemCard_CopyFailure(t *testing.T) {
	test.NewApp()

	card := NewMediaItemCard(download.EntryView{URL: "https://cdn/v.mp4"}, ItemActions{Copy: func(ctx context.Context, link string) error {
		return errors.New("no clipboard")
	}}, NewLocalization())

	test.Tap(card.copyBtn)

	require.Eventually(t, func() bool { return card.statusLabel.Visible() }, time.Second, 5*time.Millisecond)
	assert.Equal(t, "Could not copy the link", card.statusLabel.Text)
	assert.Equal(t, "Copy Link", card.copyBtn.Text)
}
