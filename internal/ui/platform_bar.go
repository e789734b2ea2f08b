package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/social-downloader/internal/model"
)

// PlatformBar is the row of platform shortcuts; tapping one selects it
type PlatformBar struct {
	buttons  map[model.PlatformTag]*widget.Button
	order    []model.PlatformTag
	onSelect func(model.PlatformTag)
	box      *fyne.Container
}

// NewPlatformBar creates one button per concrete platform
func NewPlatformBar(onSelect func(model.PlatformTag)) *PlatformBar {
	pb := &PlatformBar{
		buttons:  make(map[model.PlatformTag]*widget.Button),
		onSelect: onSelect,
	}

	objects := make([]fyne.CanvasObject, 0, len(model.SelectablePlatforms()))
	for _, tag := range model.SelectablePlatforms() {
		if !tag.IsConcrete() {
			continue
		}
		platformTag := tag // Capture for closure
		label := PlatformBadges[string(tag)]
		if label == "" {
			label = tag.DisplayName()
		}

		btn := widget.NewButton(label, func() {
			if pb.onSelect != nil {
				pb.onSelect(platformTag)
			}
		})
		btn.Importance = widget.LowImportance

		pb.buttons[tag] = btn
		pb.order = append(pb.order, tag)
		objects = append(objects, btn)
	}

	pb.box = container.NewGridWrap(fyne.NewSize(PlatformBadgeWidth, MinTouchTargetSize-8), objects...)
	return pb
}

// Container returns the bar's canvas object
func (pb *PlatformBar) Container() *fyne.Container {
	return pb.box
}

// Highlight marks the selected platform's button
func (pb *PlatformBar) Highlight(selected model.PlatformTag) {
	for tag, btn := range pb.buttons {
		importance := widget.LowImportance
		if tag == selected {
			importance = widget.HighImportance
		}
		if btn.Importance != importance {
			btn.Importance = importance
			btn.Refresh()
		}
	}
}

// Button returns the shortcut for tag, or nil
func (pb *PlatformBar) Button(tag model.PlatformTag) *widget.Button {
	return pb.buttons[tag]
}

// SetEnabled enables or disables every shortcut
func (pb *PlatformBar) SetEnabled(enabled bool) {
	for _, btn := range pb.buttons {
		if enabled {
			btn.Enable()
		} else {
			btn.Disable()
		}
	}
}
