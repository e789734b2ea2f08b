package ui

import (
	"sort"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/social-downloader/internal/config"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	baseURLEntry   *widget.Entry
	languageSelect *widget.Select
	legacyCheck    *widget.Check

	languageCodes map[string]string // display label -> code
}

// NewSettingsDialog creates a new settings dialog; onSaved runs after a save
func NewSettingsDialog(settings *config.Settings, localization *Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	sd.baseURLEntry = widget.NewEntry()
	sd.baseURLEntry.SetPlaceHolder(config.DefaultAPIBaseURL)

	// Language selection, labels sorted for a stable order
	labels := []string{}
	for code, label := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[label] = code
		labels = append(labels, label)
	}
	sort.Strings(labels)
	sd.languageSelect = widget.NewSelect(labels, nil)

	sd.legacyCheck = widget.NewCheck(sd.localization.GetText(KeyLegacyClipboard), nil)

	form := container.NewVBox(
		widget.NewLabel(sd.localization.GetText(KeyAPIBaseURL)+":"),
		sd.baseURLEntry,

		widget.NewLabel(sd.localization.GetText(KeyLanguage)+":"),
		sd.languageSelect,

		widget.NewSeparator(),
		sd.legacyCheck,
	)

	sd.dialog = dialog.NewCustomConfirm(
		sd.localization.GetText(KeySettings),
		sd.localization.GetText(KeySave),
		sd.localization.GetText(KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.baseURLEntry.SetText(sd.settings.GetAPIBaseURL())
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
	sd.legacyCheck.SetChecked(sd.settings.GetLegacyClipboard())
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}

	// Empty input restores the default backend
	sd.settings.SetAPIBaseURL(sd.baseURLEntry.Text)

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}

	sd.settings.SetLegacyClipboard(sd.legacyCheck.Checked)

	if sd.onSaved != nil {
		sd.onSaved()
	}

	dialog.ShowInformation(sd.localization.GetText(KeySettings), sd.localization.GetText(KeySettingsSaved), sd.window)
}
