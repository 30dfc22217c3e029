package ui

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/playlist-manager/internal/config"
)

// SettingsDialog represents the application settings dialog
type SettingsDialog struct {
	window   fyne.Window
	settings *config.Settings
	onSaved  func()

	widthEntry   *widget.Entry
	heightEntry  *widget.Entry
	timeoutEntry *widget.Entry
}

// ShowSettingsDialog displays the settings dialog. onSaved is invoked after
// the values have been validated and stored.
func ShowSettingsDialog(window fyne.Window, settings *config.Settings, onSaved func()) {
	sd := &SettingsDialog{
		window:   window,
		settings: settings,
		onSaved:  onSaved,
	}
	sd.show()
}

// show builds and presents the dialog
func (sd *SettingsDialog) show() {
	content := sd.createUI()
	sd.loadCurrentSettings()

	d := dialog.NewCustomConfirm("Settings", "Save", "Cancel", content, func(save bool) {
		if save {
			sd.onSave()
		}
	}, sd.window)
	d.Resize(fyne.NewSize(SettingsDialogWidth, SettingsDialogHeight))
	d.Show()
}

// createUI creates the settings form
func (sd *SettingsDialog) createUI() fyne.CanvasObject {
	sd.widthEntry = widget.NewEntry()
	sd.heightEntry = widget.NewEntry()
	sd.timeoutEntry = widget.NewEntry()

	windowSection := widget.NewLabelWithStyle("Window", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	statusSection := widget.NewLabelWithStyle("Status messages", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})

	return container.NewVBox(
		windowSection,
		container.NewGridWithColumns(2,
			widget.NewLabel("Width"), sd.widthEntry,
			widget.NewLabel("Height"), sd.heightEntry,
		),
		widget.NewSeparator(),
		statusSection,
		container.NewGridWithColumns(2,
			widget.NewLabel("Hide after (seconds)"), sd.timeoutEntry,
		),
	)
}

// loadCurrentSettings fills the form with the stored values
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.widthEntry.SetText(strconv.Itoa(sd.settings.GetWindowWidth()))
	sd.heightEntry.SetText(strconv.Itoa(sd.settings.GetWindowHeight()))
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetStatusTimeoutSeconds()))
}

// onSave validates the entered values and stores them
func (sd *SettingsDialog) onSave() {
	width, err := strconv.Atoi(strings.TrimSpace(sd.widthEntry.Text))
	if err != nil {
		dialog.ShowError(fmt.Errorf("window width must be a number"), sd.window)
		return
	}

	height, err := strconv.Atoi(strings.TrimSpace(sd.heightEntry.Text))
	if err != nil {
		dialog.ShowError(fmt.Errorf("window height must be a number"), sd.window)
		return
	}

	timeout, err := strconv.Atoi(strings.TrimSpace(sd.timeoutEntry.Text))
	if err != nil {
		dialog.ShowError(fmt.Errorf("status timeout must be a number"), sd.window)
		return
	}

	// Setters clamp values to their supported ranges
	sd.settings.SetWindowWidth(width)
	sd.settings.SetWindowHeight(height)
	sd.settings.SetStatusTimeoutSeconds(timeout)

	if sd.onSaved != nil {
		sd.onSaved()
	}
}
