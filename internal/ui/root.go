package ui

import (
	"context"
	"errors"
	"log"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/social-downloader/internal/clipboard"
	"github.com/ytget/social-downloader/internal/config"
	"github.com/ytget/social-downloader/internal/download"
	"github.com/ytget/social-downloader/internal/model"
	"github.com/ytget/social-downloader/internal/platform"
)

// BaseURLSetter lets the settings dialog repoint the backend client
type BaseURLSetter interface {
	SetBaseURL(baseURL string)
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	form         download.Form
	backend      BaseURLSetter
	settings     *config.Settings
	localization *Localization
	mobile       *MobileUI
	clipboard    clipboard.Writer
	opener       *platform.Opener

	urlEntry       *URLEntry
	clearBtn       *widget.Button
	platformSelect *widget.Select
	platformBar    *PlatformBar
	downloadBtn    *widget.Button
	settingsBtn    *widget.Button
	spinner        *widget.ProgressBarInfinite
	loadingLabel   *widget.Label
	loadingBox     *fyne.Container
	errorLabel     *widget.Label
	results        *ResultSection

	// syncing suppresses selector callbacks while state is being applied
	syncing bool
}

// NewRootUI creates and initializes the main UI
func NewRootUI(window fyne.Window, app fyne.App, form download.Form, settings *config.Settings, backend BaseURLSetter) *RootUI {
	localization := NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	ui := &RootUI{
		window:       window,
		app:          app,
		form:         form,
		backend:      backend,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(nil),
		clipboard:    newClipboardWriter(app, settings.GetLegacyClipboard()),
		opener:       platform.NewOpener(),
	}

	window.SetTitle(localization.GetText(KeyAppTitle))

	// Set up callback for state updates
	ui.form.SetUpdateCallback(ui.onStateUpdate)

	ui.setupUI()
	ui.render(form.State())
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.urlEntry = NewURLEntry()
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.urlEntry.OnChanged = ui.onInputChanged
	ui.urlEntry.OnPasted = ui.onInputChanged
	// Trigger download when user presses Enter in the URL field
	ui.urlEntry.OnSubmitted = func(string) {
		ui.onDownloadClick()
	}

	ui.clearBtn = widget.NewButtonWithIcon("", theme.ContentClearIcon(), ui.onClear)
	ui.clearBtn.Importance = widget.LowImportance
	entryRow := container.NewBorder(nil, nil, nil, ui.clearBtn, ui.urlEntry)

	options := make([]string, 0, len(model.SelectablePlatforms()))
	for _, tag := range model.SelectablePlatforms() {
		options = append(options, tag.DisplayName())
	}
	ui.platformSelect = widget.NewSelect(options, ui.onPlatformSelected)

	ui.downloadBtn = widget.NewButtonWithIcon(ui.localization.GetText(KeyDownload), theme.DownloadIcon(), ui.onDownloadClick)
	ui.downloadBtn.Importance = widget.HighImportance

	ui.settingsBtn = widget.NewButtonWithIcon("", theme.SettingsIcon(), ui.onShowSettings)
	ui.settingsBtn.Importance = widget.LowImportance

	ui.platformBar = NewPlatformBar(func(tag model.PlatformTag) {
		ui.form.SelectPlatform(tag)
	})

	ui.spinner = widget.NewProgressBarInfinite()
	ui.loadingLabel = widget.NewLabel(ui.localization.GetText(KeyLoading))
	ui.loadingBox = container.NewVBox(ui.spinner, ui.loadingLabel)
	ui.loadingBox.Hide()

	ui.errorLabel = widget.NewLabel("")
	ui.errorLabel.Importance = widget.DangerImportance
	ui.errorLabel.Wrapping = fyne.TextWrapWord
	ui.errorLabel.Hide()

	ui.results = NewResultSection(ui.localization, ui.mobile, ItemActions{
		Open: ui.openLink,
		Copy: ui.copyLink,
	})

	top := container.NewVBox(
		container.NewBorder(nil, nil, nil, ui.settingsBtn, ui.mobile.FormLayout(entryRow, ui.platformSelect, ui.mobile.TouchButton(ui.downloadBtn))),
		widget.NewLabel(ui.localization.GetText(KeySupportedSources)),
		ui.platformBar.Container(),
		ui.loadingBox,
		ui.errorLabel,
	)

	content := container.NewBorder(
		top, // top
		nil, // bottom
		nil, // left
		nil, // right
		container.NewVScroll(ui.results.Container()),
	)

	ui.window.SetContent(content)
	log.Printf("UI setup completed successfully")
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem(ui.localization.GetText(KeySettings), ui.onShowSettings)

	languageMenu := fyne.NewMenu(ui.localization.GetText(KeyLanguage))
	for code, name := range ui.localization.GetAvailableLanguages() {
		langCode := code // Capture for closure
		langItem := fyne.NewMenuItem(name, func() {
			ui.onLanguageChange(langCode)
		})
		langItem.Checked = ui.localization.GetCurrentLanguage() == code
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	ui.window.SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(KeyFile), settingsItem),
		languageMenu,
	))
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)
	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(KeyAppTitle))
	ui.urlEntry.SetPlaceHolder(ui.localization.GetText(KeyEnterURL))
	ui.downloadBtn.SetText(ui.localization.GetText(KeyDownload))
	ui.loadingLabel.SetText(ui.localization.GetText(KeyLoading))
	ui.render(ui.form.State())
}

// onInputChanged re-runs platform detection for typed or pasted text
func (ui *RootUI) onInputChanged(text string) {
	ui.form.InputChanged(text)
}

// onPlatformSelected handles a selector change made by the user
func (ui *RootUI) onPlatformSelected(name string) {
	if ui.syncing {
		return
	}
	tag, ok := model.PlatformFromDisplayName(name)
	if !ok {
		return
	}
	ui.form.SelectPlatform(tag)
}

// onDownloadClick submits the current input unless a request is in flight
func (ui *RootUI) onDownloadClick() {
	if ui.form.Busy() {
		return
	}

	input := ui.urlEntry.Text
	selected := ui.form.State().Selected

	go func() {
		_, err := ui.form.Submit(context.Background(), input, selected)
		switch {
		case err == nil:
		case errors.Is(err, model.ErrBusy):
			log.Printf("Submit ignored: %v", err)
		default:
			log.Printf("Submit failed: %v", err)
		}
	}()
}

// onClear empties the entry and resets the form
func (ui *RootUI) onClear() {
	ui.urlEntry.SetText("")
	ui.form.Reset()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

// onSettingsSaved applies changed settings to the running UI
func (ui *RootUI) onSettingsSaved() {
	if ui.backend != nil {
		ui.backend.SetBaseURL(ui.settings.GetAPIBaseURL())
	}
	ui.clipboard = newClipboardWriter(ui.app, ui.settings.GetLegacyClipboard())
	ui.localization.SetLanguage(ui.settings.GetLanguage())
	ui.refreshUITexts()
	ui.createMenu()
}

// onStateUpdate is the controller callback; it may run on any goroutine
func (ui *RootUI) onStateUpdate(state model.ViewState) {
	fyne.Do(func() {
		ui.render(state)
	})
}

// render applies state to the widgets
func (ui *RootUI) render(state model.ViewState) {
	ui.syncing = true
	ui.platformSelect.SetSelected(state.Selected.DisplayName())
	ui.syncing = false
	ui.platformBar.Highlight(state.Selected)

	if state.TriggerEnabled() {
		ui.downloadBtn.Enable()
	} else {
		ui.downloadBtn.Disable()
	}

	if state.Phase.IsActive() {
		ui.spinner.Start()
		ui.loadingBox.Show()
	} else {
		ui.spinner.Stop()
		ui.loadingBox.Hide()
	}

	if state.ShowsError() {
		ui.errorLabel.SetText(IconError + " " + ui.localization.ErrorText(state))
		ui.errorLabel.Show()
	} else {
		ui.errorLabel.SetText("")
		ui.errorLabel.Hide()
	}

	if state.ShowsResult() {
		ui.results.Show(state.Result)
	} else {
		ui.results.Clear()
	}
}

// openLink hands a direct link to the system, falling back to OS commands
func (ui *RootUI) openLink(link string) error {
	parsed, err := url.Parse(link)
	if err == nil {
		if err = ui.app.OpenURL(parsed); err == nil {
			return nil
		}
	}
	log.Printf("App could not open %s: %v; trying system handler", link, err)
	return ui.opener.OpenURL(context.Background(), link)
}

// copyLink places a direct link on the clipboard
func (ui *RootUI) copyLink(ctx context.Context, link string) error {
	return ui.clipboard.WriteText(ctx, link)
}
