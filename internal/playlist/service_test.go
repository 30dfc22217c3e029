package playlist

import (
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/ytget/playlist-manager/internal/model"
)

func newTestService() *Service {
	return NewService(log.New(io.Discard))
}

func TestNewService(t *testing.T) {
	service := newTestService()

	if service.Len() != 0 {
		t.Errorf("Expected empty sequence, got %d songs", service.Len())
	}

	if len(service.Songs()) != 0 {
		t.Errorf("Expected empty Songs() view, got %d entries", len(service.Songs()))
	}
}

func TestAdd(t *testing.T) {
	service := newTestService()

	song, err := service.Add("Song A", "Artist A", "Rock")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if song.Title != "Song A" {
		t.Errorf("Expected title 'Song A', got '%s'", song.Title)
	}
	if song.Artist != "Artist A" {
		t.Errorf("Expected artist 'Artist A', got '%s'", song.Artist)
	}
	if song.Genre != "Rock" {
		t.Errorf("Expected genre 'Rock', got '%s'", song.Genre)
	}
	if song.ID == "" {
		t.Error("Expected a non-empty song ID")
	}

	if service.Len() != 1 {
		t.Errorf("Expected 1 song, got %d", service.Len())
	}
}

func TestAdd_TrimsWhitespace(t *testing.T) {
	service := newTestService()

	song, err := service.Add(" Title ", " Artist ", " Genre ")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if song.Title != "Title" {
		t.Errorf("Expected trimmed title 'Title', got '%s'", song.Title)
	}
	if song.Artist != "Artist" {
		t.Errorf("Expected trimmed artist 'Artist', got '%s'", song.Artist)
	}
	if song.Genre != "Genre" {
		t.Errorf("Expected trimmed genre 'Genre', got '%s'", song.Genre)
	}
}

func TestAdd_EmptyFields(t *testing.T) {
	tests := []struct {
		name   string
		title  string
		artist string
		genre  string
		field  model.Field
	}{
		{"empty title", "", "x", "y", model.FieldTitle},
		{"empty artist", "x", "", "y", model.FieldArtist},
		{"empty genre", "x", "y", "", model.FieldGenre},
		{"whitespace title", "   ", "x", "y", model.FieldTitle},
		{"whitespace artist", "x", "\t ", "y", model.FieldArtist},
		{"whitespace genre", "x", "y", "  \n", model.FieldGenre},
		{"all empty reports title first", "", "", "", model.FieldTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := newTestService()

			_, err := service.Add(tt.title, tt.artist, tt.genre)
			if err == nil {
				t.Fatal("Expected validation error, got nil")
			}

			var validationErr *ValidationError
			if !errors.As(err, &validationErr) {
				t.Fatalf("Expected ValidationError, got %T: %v", err, err)
			}

			if validationErr.Field != tt.field {
				t.Errorf("Expected offending field '%s', got '%s'", tt.field, validationErr.Field)
			}

			if service.Len() != 0 {
				t.Errorf("Expected sequence unchanged, got %d songs", service.Len())
			}
		})
	}
}

func TestAdd_AllowsDuplicates(t *testing.T) {
	service := newTestService()

	first, err := service.Add("Same Song", "Same Artist", "Pop")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	second, err := service.Add("Same Song", "Same Artist", "Pop")
	if err != nil {
		t.Fatalf("Expected duplicate add to succeed, got %v", err)
	}

	if first.ID == second.ID {
		t.Error("Expected duplicate songs to have distinct IDs")
	}

	if service.Len() != 2 {
		t.Errorf("Expected 2 songs, got %d", service.Len())
	}
}

func TestAdd_InsertionOrder(t *testing.T) {
	service := newTestService()

	titles := []string{"First", "Second", "Third", "Fourth"}
	for _, title := range titles {
		if _, err := service.Add(title, "Artist", "Genre"); err != nil {
			t.Fatalf("Failed to add '%s': %v", title, err)
		}
	}

	songs := service.Songs()
	if len(songs) != len(titles) {
		t.Fatalf("Expected %d songs, got %d", len(titles), len(songs))
	}

	for i, title := range titles {
		if songs[i].Title != title {
			t.Errorf("Expected '%s' at position %d, got '%s'", title, i, songs[i].Title)
		}
	}
}

func TestUpdate(t *testing.T) {
	service := newTestService()

	service.Add("Song A", "Artist A", "Rock")
	middle, _ := service.Add("Song B", "Artist B", "Jazz")
	service.Add("Song C", "Artist C", "Pop")

	err := service.Update(1, "Song B2", "Artist B2", "Blues")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	songs := service.Songs()
	if songs[1].Title != "Song B2" || songs[1].Artist != "Artist B2" || songs[1].Genre != "Blues" {
		t.Errorf("Expected updated song at position 1, got %+v", songs[1])
	}
	if songs[1].ID != middle.ID {
		t.Errorf("Expected song to keep ID '%s', got '%s'", middle.ID, songs[1].ID)
	}

	// Neighbors keep their position and values
	if songs[0].Title != "Song A" {
		t.Errorf("Expected 'Song A' at position 0, got '%s'", songs[0].Title)
	}
	if songs[2].Title != "Song C" {
		t.Errorf("Expected 'Song C' at position 2, got '%s'", songs[2].Title)
	}
}

func TestUpdate_TrimsWhitespace(t *testing.T) {
	service := newTestService()
	service.Add("Song A", "Artist A", "Rock")

	if err := service.Update(0, " New Title ", " New Artist ", " Metal "); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	song, _ := service.Get(0)
	if song.Title != "New Title" || song.Artist != "New Artist" || song.Genre != "Metal" {
		t.Errorf("Expected trimmed values, got %+v", song)
	}
}

func TestUpdate_IndexOutOfRange(t *testing.T) {
	service := newTestService()
	service.Add("Song A", "Artist A", "Rock")

	for _, index := range []int{-1, 1, 99} {
		err := service.Update(index, "X", "Y", "Z")
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Expected ErrIndexOutOfRange for index %d, got %v", index, err)
		}
	}

	song, _ := service.Get(0)
	if song.Title != "Song A" {
		t.Errorf("Expected sequence unchanged, got '%s' at position 0", song.Title)
	}
}

func TestUpdate_Validation(t *testing.T) {
	service := newTestService()
	service.Add("Song A", "Artist A", "Rock")

	err := service.Update(0, "New Title", "  ", "Metal")
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Fatalf("Expected ValidationError, got %T: %v", err, err)
	}
	if validationErr.Field != model.FieldArtist {
		t.Errorf("Expected offending field 'artist', got '%s'", validationErr.Field)
	}

	// Failed update must not touch the stored song
	song, _ := service.Get(0)
	if song.Title != "Song A" || song.Artist != "Artist A" || song.Genre != "Rock" {
		t.Errorf("Expected song unchanged after failed update, got %+v", song)
	}
}

func TestUpdate_IndexCheckedBeforeValidation(t *testing.T) {
	service := newTestService()

	// Both the index and the fields are invalid; the positional error wins
	err := service.Update(5, "", "", "")
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("Expected ErrIndexOutOfRange, got %v", err)
	}
}

func TestRemove(t *testing.T) {
	service := newTestService()

	service.Add("Song A", "Artist A", "Rock")
	service.Add("Song B", "Artist B", "Jazz")
	service.Add("Song C", "Artist C", "Pop")

	err := service.Remove(0)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	songs := service.Songs()
	if len(songs) != 2 {
		t.Fatalf("Expected 2 songs after removal, got %d", len(songs))
	}

	// Subsequent songs shift down by one
	if songs[0].Title != "Song B" {
		t.Errorf("Expected 'Song B' at position 0, got '%s'", songs[0].Title)
	}
	if songs[1].Title != "Song C" {
		t.Errorf("Expected 'Song C' at position 1, got '%s'", songs[1].Title)
	}
}

func TestRemove_IndexOutOfRange(t *testing.T) {
	service := newTestService()
	service.Add("Song A", "Artist A", "Rock")

	for _, index := range []int{-1, 1, 42} {
		err := service.Remove(index)
		if !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Expected ErrIndexOutOfRange for index %d, got %v", index, err)
		}
	}

	if service.Len() != 1 {
		t.Errorf("Expected sequence unchanged, got %d songs", service.Len())
	}
}

func TestUpdateByID(t *testing.T) {
	service := newTestService()

	service.Add("Song A", "Artist A", "Rock")
	target, _ := service.Add("Song B", "Artist B", "Jazz")

	err := service.UpdateByID(target.ID, "Song B2", "Artist B", "Jazz")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	song, exists := service.GetByID(target.ID)
	if !exists {
		t.Fatal("Expected song to still exist")
	}
	if song.Title != "Song B2" {
		t.Errorf("Expected title 'Song B2', got '%s'", song.Title)
	}
}

func TestUpdateByID_NotFound(t *testing.T) {
	service := newTestService()
	service.Add("Song A", "Artist A", "Rock")

	err := service.UpdateByID("song-gone", "X", "Y", "Z")
	if !errors.Is(err, ErrSongNotFound) {
		t.Errorf("Expected ErrSongNotFound, got %v", err)
	}

	song, _ := service.Get(0)
	if song.Title != "Song A" {
		t.Errorf("Expected sequence unchanged, got '%s'", song.Title)
	}
}

func TestRemoveByID(t *testing.T) {
	service := newTestService()

	service.Add("Song A", "Artist A", "Rock")
	target, _ := service.Add("Song B", "Artist B", "Jazz")
	service.Add("Song C", "Artist C", "Pop")

	err := service.RemoveByID(target.ID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if service.Len() != 2 {
		t.Errorf("Expected 2 songs, got %d", service.Len())
	}

	if _, exists := service.GetByID(target.ID); exists {
		t.Error("Expected removed song to be gone")
	}

	songs := service.Songs()
	if songs[0].Title != "Song A" || songs[1].Title != "Song C" {
		t.Errorf("Expected remaining order [Song A, Song C], got [%s, %s]", songs[0].Title, songs[1].Title)
	}
}

func TestRemoveByID_NotFound(t *testing.T) {
	service := newTestService()
	service.Add("Song A", "Artist A", "Rock")

	err := service.RemoveByID("song-gone")
	if !errors.Is(err, ErrSongNotFound) {
		t.Errorf("Expected ErrSongNotFound, got %v", err)
	}

	if service.Len() != 1 {
		t.Errorf("Expected sequence unchanged, got %d songs", service.Len())
	}
}

func TestIndexOf(t *testing.T) {
	service := newTestService()

	first, _ := service.Add("Song A", "Artist A", "Rock")
	second, _ := service.Add("Song B", "Artist B", "Jazz")

	index, exists := service.IndexOf(second.ID)
	if !exists || index != 1 {
		t.Errorf("Expected index 1, got %d (exists=%v)", index, exists)
	}

	// Removing the first song shifts the second one down
	service.Remove(0)

	index, exists = service.IndexOf(second.ID)
	if !exists || index != 0 {
		t.Errorf("Expected index 0 after removal, got %d (exists=%v)", index, exists)
	}

	if _, exists := service.IndexOf(first.ID); exists {
		t.Error("Expected removed song to have no index")
	}
}

func TestSongs_ReturnsCopies(t *testing.T) {
	service := newTestService()
	service.Add("Song A", "Artist A", "Rock")

	songs := service.Songs()
	songs[0].Title = "Mutated"

	song, _ := service.Get(0)
	if song.Title != "Song A" {
		t.Errorf("Expected stored song untouched, got '%s'", song.Title)
	}
}

func TestUpdateCallback(t *testing.T) {
	service := newTestService()

	var updates []model.Song
	service.SetUpdateCallback(func(song model.Song) {
		updates = append(updates, song)
	})

	added, err := service.Add("Song A", "Artist A", "Rock")
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(updates) != 1 {
		t.Fatalf("Expected 1 update after add, got %d", len(updates))
	}
	if updates[0].ID != added.ID {
		t.Errorf("Expected update for song '%s', got '%s'", added.ID, updates[0].ID)
	}

	service.Update(0, "Song A2", "Artist A", "Rock")
	if len(updates) != 2 {
		t.Fatalf("Expected 2 updates after update, got %d", len(updates))
	}
	if updates[1].Title != "Song A2" {
		t.Errorf("Expected updated title in callback, got '%s'", updates[1].Title)
	}

	service.Remove(0)
	if len(updates) != 3 {
		t.Fatalf("Expected 3 updates after remove, got %d", len(updates))
	}

	// Failed operations must not fire the callback
	service.Add("", "x", "y")
	service.Remove(99)
	if len(updates) != 3 {
		t.Errorf("Expected no updates for failed operations, got %d", len(updates))
	}
}

func TestEndToEndFlow(t *testing.T) {
	service := newTestService()

	if _, err := service.Add("Song A", "Artist A", "Rock"); err != nil {
		t.Fatalf("Failed to add Song A: %v", err)
	}
	if _, err := service.Add("Song B", "Artist B", "Jazz"); err != nil {
		t.Fatalf("Failed to add Song B: %v", err)
	}

	songs := service.Songs()
	if len(songs) != 2 {
		t.Fatalf("Expected 2 songs, got %d", len(songs))
	}
	if songs[0].Title != "Song A" || songs[0].Artist != "Artist A" || songs[0].Genre != "Rock" {
		t.Errorf("Unexpected first song: %+v", songs[0])
	}
	if songs[1].Title != "Song B" || songs[1].Artist != "Artist B" || songs[1].Genre != "Jazz" {
		t.Errorf("Unexpected second song: %+v", songs[1])
	}

	if err := service.Update(0, "Song A2", "Artist A", "Rock"); err != nil {
		t.Fatalf("Failed to update: %v", err)
	}
	if song, _ := service.Get(0); song.Title != "Song A2" {
		t.Errorf("Expected title 'Song A2', got '%s'", song.Title)
	}

	if err := service.Remove(0); err != nil {
		t.Fatalf("Failed to remove: %v", err)
	}

	songs = service.Songs()
	if len(songs) != 1 {
		t.Fatalf("Expected 1 song, got %d", len(songs))
	}
	if songs[0].Title != "Song B" || songs[0].Artist != "Artist B" || songs[0].Genre != "Jazz" {
		t.Errorf("Expected only Song B to remain, got %+v", songs[0])
	}
}
