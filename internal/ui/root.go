package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/playlist-manager/internal/config"
	"github.com/ytget/playlist-manager/internal/controller"
	"github.com/ytget/playlist-manager/internal/model"
)

// RootUI represents the main application window contents. It renders the
// playlist and forwards every user action to the controller.
type RootUI struct {
	window     fyne.Window
	controller *controller.Controller
	settings   *config.Settings

	// Snapshot of the playlist currently shown in the list
	songs      []model.Song
	selectedID string

	// Add form
	titleEntry  *widget.Entry
	artistEntry *widget.Entry
	genreEntry  *widget.Entry
	addBtn      *widget.Button

	// Song list
	songList   *widget.List
	emptyState *fyne.Container

	// Status line
	statusLabel *widget.Label
	statusTimer *time.Timer
	statusMutex sync.Mutex

	// Edit dialog
	editorPopup      *widget.PopUp
	editTitleEntry   *widget.Entry
	editArtistEntry  *widget.Entry
	editGenreEntry   *widget.Entry
	editorErrorLabel *widget.Label
	editorUpdateBtn  *widget.Button
	editorCancelBtn  *widget.Button
}

// NewRootUI creates the main application UI
func NewRootUI(window fyne.Window, ctrl *controller.Controller, settings *config.Settings) *RootUI {
	ui := &RootUI{
		window:     window,
		controller: ctrl,
		settings:   settings,
	}

	ui.setupUI()
	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	// Add form entries
	ui.titleEntry = widget.NewEntry()
	ui.titleEntry.SetPlaceHolder(PlaceholderTitle)
	ui.watchEntry(ui.titleEntry, model.FieldTitle)

	ui.artistEntry = widget.NewEntry()
	ui.artistEntry.SetPlaceHolder(PlaceholderArtist)
	ui.watchEntry(ui.artistEntry, model.FieldArtist)

	ui.genreEntry = widget.NewEntry()
	ui.genreEntry.SetPlaceHolder(PlaceholderGenre)
	ui.watchEntry(ui.genreEntry, model.FieldGenre)

	// Pressing Enter in any field adds the song
	submit := func(string) { ui.onAddClick() }
	ui.titleEntry.OnSubmitted = submit
	ui.artistEntry.OnSubmitted = submit
	ui.genreEntry.OnSubmitted = submit

	ui.addBtn = widget.NewButton(BtnAdd, ui.onAddClick)
	ui.addBtn.Importance = widget.HighImportance

	settingsBtn := widget.NewButton(IconSettings, ui.onShowSettings)
	settingsBtn.Importance = widget.LowImportance

	// Create logo
	logo, err := LoadLogoResource()
	var logoImage *canvas.Image
	if err == nil {
		logoImage = canvas.NewImageFromResource(logo)
		logoImage.SetMinSize(fyne.NewSize(32, 32))
		logoImage.FillMode = canvas.ImageFillContain
	}

	inputs := container.NewGridWithColumns(3, ui.titleEntry, ui.artistEntry, ui.genreEntry)

	var topPanel *fyne.Container
	if logoImage != nil {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(logoImage, settingsBtn), ui.addBtn, inputs)
	} else {
		topPanel = container.NewBorder(nil, nil, container.NewHBox(settingsBtn), ui.addBtn, inputs)
	}

	// Status line below the list, empty until there is something to say
	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Alignment = fyne.TextAlignLeading
	ui.statusLabel.Wrapping = fyne.TextWrapWord

	// Song list
	ui.songList = widget.NewList(
		func() int {
			return len(ui.songs)
		},
		func() fyne.CanvasObject { return ui.createSongItem() },
		func(id widget.ListItemID, obj fyne.CanvasObject) { ui.updateSongItem(id, obj) },
	)
	ui.songList.OnSelected = ui.onRowSelected

	ui.emptyState = container.NewCenter(widget.NewLabel(EmptyPlaylistText))

	ui.buildEditor()

	content := container.NewBorder(
		topPanel,                            // top
		container.NewPadded(ui.statusLabel), // bottom
		nil,                                 // left
		nil,                                 // right
		container.NewStack(ui.songList, ui.emptyState),
	)

	ui.window.SetContent(content)
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	settingsItem := fyne.NewMenuItem("Settings", ui.onShowSettings)

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu("File", settingsItem),
	)

	ui.window.SetMainMenu(mainMenu)
}

// watchEntry caps the entry length and reports edits to the controller so an
// error naming this field gets dismissed once the user starts fixing it.
func (ui *RootUI) watchEntry(entry *widget.Entry, field model.Field) {
	entry.OnChanged = func(text string) {
		if r := []rune(text); len(r) > MaxInputLength {
			entry.SetText(string(r[:MaxInputLength]))
			return
		}
		ui.controller.InputChanged(field)
	}
}

// onAddClick handles the add button click
func (ui *RootUI) onAddClick() {
	ui.controller.AddSong(ui.titleEntry.Text, ui.artistEntry.Text, ui.genreEntry.Text)
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	ShowSettingsDialog(ui.window, ui.settings, func() {
		ui.window.Resize(fyne.NewSize(
			float32(ui.settings.GetWindowWidth()),
			float32(ui.settings.GetWindowHeight()),
		))
		widget.ShowPopUp(widget.NewLabel("Settings saved"), ui.window.Canvas())
	})
}

// onRowSelected remembers which song the user highlighted
func (ui *RootUI) onRowSelected(id widget.ListItemID) {
	if id < 0 || id >= len(ui.songs) {
		return
	}
	ui.selectedID = ui.songs[id].ID
}

// selectRowByID moves the list selection to the song with the given ID.
// Used when a row opens its context menu, mirroring a click on the row.
func (ui *RootUI) selectRowByID(songID string) {
	if idx := ui.indexOfSong(songID); idx >= 0 {
		ui.songList.Select(idx)
	}
}

// createSongItem creates a reusable song row for the list
func (ui *RootUI) createSongItem() fyne.CanvasObject {
	row := NewSongRow()
	row.SetCallbacks(ui.controller.BeginEdit, ui.controller.DeleteSong, ui.selectRowByID)
	return row
}

// updateSongItem fills a recycled row with current data
func (ui *RootUI) updateSongItem(id widget.ListItemID, item fyne.CanvasObject) {
	if id >= len(ui.songs) {
		return
	}

	row, ok := item.(*SongRow)
	if !ok {
		return
	}

	// Re-set callbacks every time the row is recycled
	row.SetCallbacks(ui.controller.BeginEdit, ui.controller.DeleteSong, ui.selectRowByID)
	row.UpdateSong(ui.songs[id])
}

// buildEditor creates the modal edit dialog shown through ShowEditor. The
// dialog keeps its own buttons so a failed update leaves it open with the
// entered text intact.
func (ui *RootUI) buildEditor() {
	ui.editTitleEntry = widget.NewEntry()
	ui.editTitleEntry.SetPlaceHolder(PlaceholderTitle)
	ui.watchEntry(ui.editTitleEntry, model.FieldTitle)

	ui.editArtistEntry = widget.NewEntry()
	ui.editArtistEntry.SetPlaceHolder(PlaceholderArtist)
	ui.watchEntry(ui.editArtistEntry, model.FieldArtist)

	ui.editGenreEntry = widget.NewEntry()
	ui.editGenreEntry.SetPlaceHolder(PlaceholderGenre)
	ui.watchEntry(ui.editGenreEntry, model.FieldGenre)

	ui.editorErrorLabel = widget.NewLabel("")
	ui.editorErrorLabel.Importance = widget.DangerImportance
	ui.editorErrorLabel.Wrapping = fyne.TextWrapWord
	ui.editorErrorLabel.Hide()

	ui.editorUpdateBtn = widget.NewButton(BtnUpdate, func() {
		ui.controller.SubmitEdit(ui.editTitleEntry.Text, ui.editArtistEntry.Text, ui.editGenreEntry.Text)
	})
	ui.editorUpdateBtn.Importance = widget.HighImportance

	ui.editorCancelBtn = widget.NewButton(BtnCancel, func() {
		ui.controller.CancelEdit()
	})

	form := container.NewVBox(
		widget.NewLabelWithStyle(EditorTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		ui.editTitleEntry,
		ui.editArtistEntry,
		ui.editGenreEntry,
		ui.editorErrorLabel,
		container.NewHBox(layout.NewSpacer(), ui.editorCancelBtn, ui.editorUpdateBtn),
	)

	ui.editorPopup = widget.NewModalPopUp(container.NewPadded(form), ui.window.Canvas())
}

// RefreshSongs replaces the shown playlist with a fresh snapshot
func (ui *RootUI) RefreshSongs(songs []model.Song) {
	ui.songs = songs

	if len(songs) == 0 {
		ui.songList.Hide()
		ui.emptyState.Show()
	} else {
		ui.emptyState.Hide()
		ui.songList.Show()
	}

	// Keep the highlight on the same song when rows shift
	if ui.selectedID != "" {
		if idx := ui.indexOfSong(ui.selectedID); idx >= 0 {
			ui.songList.Select(idx)
		} else {
			ui.selectedID = ""
			ui.songList.UnselectAll()
		}
	}

	ui.songList.Refresh()
}

// ClearInputs empties the add form
func (ui *RootUI) ClearInputs() {
	ui.titleEntry.SetText("")
	ui.artistEntry.SetText("")
	ui.genreEntry.SetText("")
}

// ShowEditor opens the edit dialog pre-filled with the song data
func (ui *RootUI) ShowEditor(song model.Song) {
	ui.editTitleEntry.SetText(song.Title)
	ui.editArtistEntry.SetText(song.Artist)
	ui.editGenreEntry.SetText(song.Genre)
	ui.editorErrorLabel.SetText("")
	ui.editorErrorLabel.Hide()

	ui.editorPopup.Resize(fyne.NewSize(EditorDialogWidth, EditorDialogHeight))
	ui.editorPopup.Show()
	ui.window.Canvas().Focus(ui.editTitleEntry)
}

// CloseEditor hides the edit dialog
func (ui *RootUI) CloseEditor() {
	ui.editorPopup.Hide()
}

// ShowSuccess shows a green status message that hides itself after the
// configured timeout
func (ui *RootUI) ShowSuccess(message string) {
	ui.showStatus(message, widget.SuccessImportance, true)
}

// ShowError shows a red error message. While the edit dialog is open the
// message is shown inside the dialog, otherwise on the status line. Errors
// stay visible until the user edits the named field or the next action
// succeeds.
func (ui *RootUI) ShowError(message string) {
	if ui.editorVisible() {
		ui.editorErrorLabel.SetText(message)
		ui.editorErrorLabel.Show()
		return
	}
	ui.showStatus(message, widget.DangerImportance, false)
}

// ClearStatus removes any shown status or error message
func (ui *RootUI) ClearStatus() {
	ui.stopStatusTimer()
	ui.statusLabel.SetText("")
	ui.editorErrorLabel.SetText("")
	ui.editorErrorLabel.Hide()
}

// editorVisible reports whether the edit dialog is currently shown
func (ui *RootUI) editorVisible() bool {
	return ui.editorPopup != nil && ui.editorPopup.Visible()
}

// indexOfSong returns the position of a song in the shown snapshot, -1 when
// it is gone
func (ui *RootUI) indexOfSong(id string) int {
	for i, song := range ui.songs {
		if song.ID == id {
			return i
		}
	}
	return -1
}

// showStatus sets the status line text and color. When autoHide is set the
// message is cleared again after the configured timeout.
func (ui *RootUI) showStatus(message string, importance widget.Importance, autoHide bool) {
	ui.stopStatusTimer()

	ui.statusLabel.Importance = importance
	ui.statusLabel.SetText(message)

	if !autoHide {
		return
	}

	timeout := time.Duration(ui.settings.GetStatusTimeoutSeconds()) * time.Second
	ui.statusMutex.Lock()
	ui.statusTimer = time.AfterFunc(timeout, func() {
		// The timer fires outside the event loop
		fyne.Do(func() {
			ui.statusLabel.SetText("")
		})
	})
	ui.statusMutex.Unlock()
}

// stopStatusTimer cancels a pending status auto-hide
func (ui *RootUI) stopStatusTimer() {
	ui.statusMutex.Lock()
	if ui.statusTimer != nil {
		ui.statusTimer.Stop()
		ui.statusTimer = nil
	}
	ui.statusMutex.Unlock()
}
