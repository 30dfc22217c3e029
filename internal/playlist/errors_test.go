package playlist

import (
	"errors"
	"fmt"
	"testing"

	"github.com/ytget/playlist-manager/internal/model"
)

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Field: model.FieldTitle}

	expected := "title must not be empty"
	if err.Error() != expected {
		t.Errorf("Expected '%s', got '%s'", expected, err.Error())
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"nil error", nil, ""},
		{"empty title", &ValidationError{Field: model.FieldTitle}, "Title must not be empty"},
		{"empty artist", &ValidationError{Field: model.FieldArtist}, "Artist must not be empty"},
		{"empty genre", &ValidationError{Field: model.FieldGenre}, "Genre must not be empty"},
		{"stale index", ErrIndexOutOfRange, "That song is no longer in the playlist"},
		{"stale id", ErrSongNotFound, "That song is no longer in the playlist"},
		{"wrapped stale index", fmt.Errorf("remove at index 3: %w", ErrIndexOutOfRange), "That song is no longer in the playlist"},
		{"unknown error", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := UserMessage(tt.err)
			if result != tt.expected {
				t.Errorf("UserMessage() = '%s', expected '%s'", result, tt.expected)
			}
		})
	}
}

func TestValidationError_MatchesThroughWrap(t *testing.T) {
	wrapped := fmt.Errorf("add song: %w", &ValidationError{Field: model.FieldGenre})

	var validationErr *ValidationError
	if !errors.As(wrapped, &validationErr) {
		t.Fatal("Expected errors.As to find ValidationError through wrapping")
	}
	if validationErr.Field != model.FieldGenre {
		t.Errorf("Expected field 'genre', got '%s'", validationErr.Field)
	}
}
