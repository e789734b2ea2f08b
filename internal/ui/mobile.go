package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// MobileUI adapts layout decisions to the current device
type MobileUI struct {
	device fyne.Device
}

// NewMobileUI creates a helper for the given device; nil means the current one
func NewMobileUI(device fyne.Device) *MobileUI {
	if device == nil {
		device = fyne.CurrentDevice()
	}
	return &MobileUI{device: device}
}

// IsMobileDevice checks if the app is running on a mobile device
func (m *MobileUI) IsMobileDevice() bool {
	return m.device.IsMobile()
}

// IsPortrait returns true if device is in portrait orientation
func (m *MobileUI) IsPortrait() bool {
	orientation := m.device.Orientation()
	return orientation == fyne.OrientationVertical || orientation == fyne.OrientationVerticalUpsideDown
}

// GalleryColumns returns how many image cells fit side by side
func (m *MobileUI) GalleryColumns() int {
	if m.IsMobileDevice() && m.IsPortrait() {
		return PortraitGalleryColumns
	}
	return DesktopGalleryColumns
}

// FormLayout stacks the form controls on phones and lays them in a row elsewhere
func (m *MobileUI) FormLayout(entry, selector, trigger fyne.CanvasObject) fyne.CanvasObject {
	if m.IsMobileDevice() {
		return container.NewVBox(entry, selector, trigger)
	}
	return container.NewBorder(nil, nil, nil, container.NewHBox(selector, trigger), entry)
}

// TouchButton returns btn padded to the minimum touch target on mobile
func (m *MobileUI) TouchButton(btn *widget.Button) fyne.CanvasObject {
	if !m.IsMobileDevice() {
		return btn
	}
	return container.New(layout.NewGridWrapLayout(fyne.NewSize(MinTouchTargetSize*2, MobileButtonHeight)), btn)
}
