package controller

import (
	"github.com/ytget/playlist-manager/internal/model"
)

// View defines the interface the controller drives to reflect state changes.
// The Fyne UI implements it; tests substitute a fake with no rendering
// backend.
type View interface {
	// RefreshSongs re-renders the song list from the given snapshot
	RefreshSongs(songs []model.Song)

	// ClearInputs empties the three add-form input buffers
	ClearInputs()

	// ShowEditor opens the edit form pre-populated with the song's values
	ShowEditor(song model.Song)

	// CloseEditor dismisses the edit form, discarding its buffers
	CloseEditor()

	// ShowSuccess displays a transient success message
	ShowSuccess(message string)

	// ShowError displays an error message until cleared
	ShowError(message string)

	// ClearStatus removes any displayed status message
	ClearStatus()
}
