package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/playlist-manager/internal/model"
)

// truncateString shortens s to max runes, appending an ellipsis when cut
func truncateString(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max]) + "…"
}

// SongRow represents a compact song row widget with a per-row context menu
type SongRow struct {
	widget.BaseWidget

	song model.Song

	// UI components
	titleLabel  *widget.Label
	artistLabel *widget.Label
	genreLabel  *widget.Label

	// Long press support for platforms without a secondary tap
	gestures *GestureRecognizer

	// Callbacks
	onEdit     func(songID string)
	onDelete   func(songID string)
	onMenuShow func(songID string)
}

// NewSongRow creates a new song row widget. The row is a reusable template,
// content is filled in through UpdateSong.
func NewSongRow() *SongRow {
	sr := &SongRow{}
	sr.ExtendBaseWidget(sr)
	sr.gestures = NewGestureRecognizer(func(gesture GestureType, pos fyne.Position) {
		if gesture == GestureLongPress {
			sr.showContextMenu(pos)
		}
	})
	sr.createUI()
	return sr
}

// SetCallbacks sets the context menu callbacks. onMenuShow fires right before
// the menu opens so the owning list can move its selection to this row.
func (sr *SongRow) SetCallbacks(onEdit, onDelete, onMenuShow func(songID string)) {
	sr.onEdit = onEdit
	sr.onDelete = onDelete
	sr.onMenuShow = onMenuShow
}

// UpdateSong updates the row with new song data
func (sr *SongRow) UpdateSong(song model.Song) {
	sr.song = song
	sr.updateFromSong()
}

// SongID returns the ID of the song currently shown in the row
func (sr *SongRow) SongID() string {
	return sr.song.ID
}

// createUI creates the row labels
func (sr *SongRow) createUI() {
	sr.titleLabel = widget.NewLabel("")
	sr.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	sr.artistLabel = widget.NewLabel("")
	sr.artistLabel.Importance = widget.LowImportance

	sr.genreLabel = widget.NewLabel("")
	sr.genreLabel.Alignment = fyne.TextAlignTrailing
	sr.genreLabel.TextStyle = fyne.TextStyle{Italic: true}
}

// updateFromSong refreshes the labels from the current song data
func (sr *SongRow) updateFromSong() {
	sr.titleLabel.SetText(IconMusic + " " + truncateString(sr.song.Title, MaxTitleDisplayLength))
	sr.artistLabel.SetText(truncateString(sr.song.Artist, MaxDetailDisplayLength))
	sr.genreLabel.SetText(truncateString(sr.song.Genre, MaxGenreDisplayLength))
}

// TappedSecondary opens the context menu on right click
func (sr *SongRow) TappedSecondary(event *fyne.PointEvent) {
	sr.showContextMenu(event.AbsolutePosition)
}

// TouchDown forwards touch start to the gesture recognizer
func (sr *SongRow) TouchDown(event *mobile.TouchEvent) {
	sr.gestures.TouchDown(event)
}

// TouchUp forwards touch end to the gesture recognizer
func (sr *SongRow) TouchUp(event *mobile.TouchEvent) {
	sr.gestures.TouchUp(event)
}

// TouchCancel forwards touch cancellation to the gesture recognizer
func (sr *SongRow) TouchCancel(event *mobile.TouchEvent) {
	sr.gestures.TouchCancel(event)
}

// showContextMenu opens the Edit/Delete menu for this row
func (sr *SongRow) showContextMenu(pos fyne.Position) {
	targetCanvas := fyne.CurrentApp().Driver().CanvasForObject(sr)
	if targetCanvas == nil {
		return
	}

	if sr.onMenuShow != nil {
		sr.onMenuShow(sr.song.ID)
	}

	editItem := fyne.NewMenuItem(MenuEditItem, func() {
		if sr.onEdit != nil {
			sr.onEdit(sr.song.ID)
		}
	})
	deleteItem := fyne.NewMenuItem(MenuDeleteItem, func() {
		if sr.onDelete != nil {
			sr.onDelete(sr.song.ID)
		}
	})

	menu := fyne.NewMenu("", editItem, deleteItem)
	widget.ShowPopUpMenuAtPosition(menu, targetCanvas, pos)
}

// CreateRenderer creates the widget renderer
func (sr *SongRow) CreateRenderer() fyne.WidgetRenderer {
	return &songRowRenderer{songRow: sr}
}

// songRowRenderer renders the song row widget
type songRowRenderer struct {
	songRow *SongRow
	layout  *fyne.Container
}

// Layout arranges the components
func (r *songRowRenderer) Layout(size fyne.Size) {
	if r.layout == nil {
		r.createLayout()
	}
	if size.Width < RowMinWidth {
		size.Width = RowMinWidth
	}
	if size.Height < RowMinHeight {
		size.Height = RowMinHeight
	}
	r.layout.Resize(size)
}

// MinSize returns the minimum size
func (r *songRowRenderer) MinSize() fyne.Size {
	if r.layout != nil {
		size := r.layout.MinSize()
		if size.Width < RowMinWidth {
			size.Width = RowMinWidth
		}
		if size.Height < RowMinHeight {
			size.Height = RowMinHeight
		}
		return size
	}
	return fyne.NewSize(RowMinWidth, RowMinHeight)
}

// Refresh refreshes the renderer
func (r *songRowRenderer) Refresh() {
	if r.layout == nil {
		r.createLayout()
	}
	r.layout.Refresh()
}

// Objects returns the container objects
func (r *songRowRenderer) Objects() []fyne.CanvasObject {
	if r.layout == nil {
		r.createLayout()
	}
	return []fyne.CanvasObject{r.layout}
}

// Destroy cleans up the renderer
func (r *songRowRenderer) Destroy() {}

// createLayout creates the main layout
func (r *songRowRenderer) createLayout() {
	sr := r.songRow

	// Helper to fix width using a transparent rectangle underneath
	fixedWidth := func(w float32, obj fyne.CanvasObject) fyne.CanvasObject {
		spacer := canvas.NewRectangle(color.RGBA{0, 0, 0, 0})
		spacer.SetMinSize(fyne.NewSize(w, obj.MinSize().Height))
		return container.NewStack(spacer, obj)
	}

	// Left side: title above artist, taking the remaining width
	leftSide := container.NewVBox(sr.titleLabel, sr.artistLabel)

	// Right side: genre badge with a fixed width so rows line up
	rightSide := fixedWidth(GenreLabelWidth, sr.genreLabel)

	mainContent := container.NewBorder(nil, nil, nil, rightSide, leftSide)

	r.layout = container.NewVBox(
		mainContent,
		widget.NewSeparator(),
	)
}
