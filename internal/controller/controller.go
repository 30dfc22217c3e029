package controller

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/ytget/playlist-manager/internal/model"
	"github.com/ytget/playlist-manager/internal/playlist"
)

// Status message formats
const (
	MsgAdded   = "Song '%s' added successfully!"
	MsgUpdated = "Song '%s' updated successfully!"
	MsgDeleted = "Song '%s' deleted successfully!"
)

// Controller translates UI events into playlist store operations. It owns
// the single active edit session; only one song can be edited at a time.
type Controller struct {
	store playlist.Store
	view  View
	log   *log.Logger

	editingID string      // ID of the song being edited, empty when idle
	errShown  bool        // an error message is currently displayed
	errField  model.Field // offending field of the displayed error, empty for non-validation errors
}

// New creates a controller bound to the given store. AttachView must be
// called before any event methods are invoked.
func New(store playlist.Store, logger *log.Logger) *Controller {
	return &Controller{
		store: store,
		log:   logger,
	}
}

// AttachView connects the UI, wires store updates to list refreshes, and
// pushes the initial (empty) sequence
func (c *Controller) AttachView(view View) {
	c.view = view
	c.store.SetUpdateCallback(func(model.Song) {
		c.view.RefreshSongs(c.store.Songs())
	})
	c.view.RefreshSongs(c.store.Songs())
}

// AddSong handles the Add Song activation: the store validates and appends,
// the input buffers are cleared on success, and a validation failure is
// surfaced with the offending field named and the buffers left untouched.
func (c *Controller) AddSong(title, artist, genre string) {
	song, err := c.store.Add(title, artist, genre)
	if err != nil {
		c.log.Warn("add rejected", "err", err)
		c.showError(err)
		return
	}

	c.clearErrorState()
	c.view.ClearInputs()
	c.view.ShowSuccess(fmt.Sprintf(MsgAdded, song.Title))
}

// BeginEdit opens an edit session for the song with the given ID. A stale ID
// is a logged no-op. Opening Edit while another session is active implicitly
// cancels the prior session.
func (c *Controller) BeginEdit(id string) {
	song, exists := c.store.GetByID(id)
	if !exists {
		c.log.Warn("edit requested for missing song", "id", id)
		return
	}

	if c.editingID != "" && c.editingID != id {
		c.log.Debug("switching edit session", "from", c.editingID, "to", id)
	}

	c.editingID = song.ID
	c.view.ShowEditor(song)
}

// SubmitEdit applies the edited values to the song being edited. On a
// validation failure the session stays active so the user can correct the
// values; a song that vanished mid-edit ends the session quietly.
func (c *Controller) SubmitEdit(title, artist, genre string) {
	if c.editingID == "" {
		c.log.Warn("edit submitted with no active session")
		return
	}

	if err := c.store.UpdateByID(c.editingID, title, artist, genre); err != nil {
		if errors.Is(err, playlist.ErrSongNotFound) {
			c.log.Warn("edited song no longer exists", "id", c.editingID)
			c.editingID = ""
			c.view.CloseEditor()
			return
		}
		c.log.Warn("update rejected", "id", c.editingID, "err", err)
		c.showError(err)
		return
	}

	song, _ := c.store.GetByID(c.editingID)
	c.editingID = ""
	c.clearErrorState()
	c.view.CloseEditor()
	c.view.ShowSuccess(fmt.Sprintf(MsgUpdated, song.Title))
}

// CancelEdit discards the active edit session without touching the store
func (c *Controller) CancelEdit() {
	if c.editingID == "" {
		return
	}

	c.log.Debug("edit cancelled", "id", c.editingID)
	c.editingID = ""
	c.clearErrorState()
	c.view.CloseEditor()
}

// DeleteSong removes the song with the given ID immediately, with no
// confirmation step. A stale ID is a logged no-op, never a crash.
func (c *Controller) DeleteSong(id string) {
	song, exists := c.store.GetByID(id)
	if !exists {
		c.log.Warn("delete requested for missing song", "id", id)
		return
	}

	if c.editingID == id {
		c.CancelEdit()
	}

	if err := c.store.RemoveByID(id); err != nil {
		c.log.Warn("remove failed", "id", id, "err", err)
		return
	}

	c.clearErrorState()
	c.view.ShowSuccess(fmt.Sprintf(MsgDeleted, song.Title))
}

// InputChanged clears a displayed error once the user starts editing the
// offending field again. Non-validation errors clear on any field change.
func (c *Controller) InputChanged(field model.Field) {
	if !c.errShown {
		return
	}

	if c.errField == "" || c.errField == field {
		c.clearErrorState()
		c.view.ClearStatus()
	}
}

// Songs returns the current sequence for rendering
func (c *Controller) Songs() []model.Song {
	return c.store.Songs()
}

// Editing reports the song ID of the active edit session, if any
func (c *Controller) Editing() (string, bool) {
	return c.editingID, c.editingID != ""
}

// showError surfaces a store error and remembers which field, if any,
// can clear it
func (c *Controller) showError(err error) {
	var validationErr *playlist.ValidationError
	if errors.As(err, &validationErr) {
		c.errField = validationErr.Field
	} else {
		c.errField = ""
	}
	c.errShown = true
	c.view.ShowError(playlist.UserMessage(err))
}

func (c *Controller) clearErrorState() {
	c.errShown = false
	c.errField = ""
}
