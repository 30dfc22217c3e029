package playlist

import (
	"errors"
	"fmt"

	"github.com/ytget/playlist-manager/internal/model"
)

// Sentinel errors for stale references into the song sequence
var (
	// ErrIndexOutOfRange means a positional reference points outside the current sequence
	ErrIndexOutOfRange = errors.New("index out of range")

	// ErrSongNotFound means a song ID is no longer present in the sequence
	ErrSongNotFound = errors.New("song not found")
)

// ValidationError reports a song attribute that is empty after trimming
type ValidationError struct {
	Field model.Field
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s must not be empty", e.Field)
}

// UserMessage converts a store error into the message shown to the user.
// Unknown errors fall through to their raw text.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var validationErr *ValidationError
	if errors.As(err, &validationErr) {
		return fmt.Sprintf("%s must not be empty", validationErr.Field.Label())
	}

	if errors.Is(err, ErrSongNotFound) || errors.Is(err, ErrIndexOutOfRange) {
		return "That song is no longer in the playlist"
	}

	return err.Error()
}
