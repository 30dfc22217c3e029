package playlist

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/ytget/playlist-manager/internal/model"
)

// Service owns the ordered song sequence. Insertion order is display order.
// All validation happens here, at the mutation boundary.
type Service struct {
	songs      []*model.Song
	songsMutex sync.RWMutex
	onUpdate   func(model.Song) // callback for UI updates
	log        *log.Logger
}

// NewService creates a new playlist service. The sequence starts empty and
// is discarded at process exit; nothing is persisted.
func NewService(logger *log.Logger) *Service {
	return &Service{
		songs: make([]*model.Song, 0),
		log:   logger,
	}
}

// SetUpdateCallback sets the callback function for song list updates
func (s *Service) SetUpdateCallback(callback func(model.Song)) {
	s.onUpdate = callback
}

// Add validates and appends a new song to the end of the sequence.
// Duplicate songs are permitted.
func (s *Service) Add(title, artist, genre string) (*model.Song, error) {
	title, artist, genre, err := normalizeFields(title, artist, genre)
	if err != nil {
		s.log.Debug("rejected song", "reason", err)
		return nil, err
	}

	s.songsMutex.Lock()
	song := model.NewSong(title, artist, genre)
	s.songs = append(s.songs, song)
	total := len(s.songs)
	s.songsMutex.Unlock()

	s.log.Info("song added", "id", song.ID, "title", song.Title, "total", total)
	s.notifyUpdate(*song)
	return song, nil
}

// Update replaces the three attributes of the song at index in place,
// preserving its position and identifier.
func (s *Service) Update(index int, title, artist, genre string) error {
	s.songsMutex.Lock()
	if index < 0 || index >= len(s.songs) {
		s.songsMutex.Unlock()
		return fmt.Errorf("update at index %d: %w", index, ErrIndexOutOfRange)
	}

	title, artist, genre, err := normalizeFields(title, artist, genre)
	if err != nil {
		s.songsMutex.Unlock()
		s.log.Debug("rejected update", "index", index, "reason", err)
		return err
	}

	song := s.songs[index]
	song.ApplyUpdate(title, artist, genre)
	updated := *song
	s.songsMutex.Unlock()

	s.log.Info("song updated", "id", updated.ID, "title", updated.Title, "index", index)
	s.notifyUpdate(updated)
	return nil
}

// Remove deletes the song at index, shifting subsequent songs down by one
func (s *Service) Remove(index int) error {
	s.songsMutex.Lock()
	if index < 0 || index >= len(s.songs) {
		s.songsMutex.Unlock()
		return fmt.Errorf("remove at index %d: %w", index, ErrIndexOutOfRange)
	}

	removed := *s.songs[index]
	s.songs = append(s.songs[:index], s.songs[index+1:]...)
	remaining := len(s.songs)
	s.songsMutex.Unlock()

	s.log.Info("song removed", "id", removed.ID, "title", removed.Title, "remaining", remaining)
	s.notifyUpdate(removed)
	return nil
}

// UpdateByID updates the song with the given ID regardless of its current
// position. Stale IDs fail with ErrSongNotFound.
func (s *Service) UpdateByID(id, title, artist, genre string) error {
	s.songsMutex.Lock()
	index := s.indexOfLocked(id)
	if index < 0 {
		s.songsMutex.Unlock()
		return fmt.Errorf("update song %s: %w", id, ErrSongNotFound)
	}

	title, artist, genre, err := normalizeFields(title, artist, genre)
	if err != nil {
		s.songsMutex.Unlock()
		s.log.Debug("rejected update", "id", id, "reason", err)
		return err
	}

	song := s.songs[index]
	song.ApplyUpdate(title, artist, genre)
	updated := *song
	s.songsMutex.Unlock()

	s.log.Info("song updated", "id", updated.ID, "title", updated.Title, "index", index)
	s.notifyUpdate(updated)
	return nil
}

// RemoveByID deletes the song with the given ID regardless of its current
// position. Stale IDs fail with ErrSongNotFound.
func (s *Service) RemoveByID(id string) error {
	s.songsMutex.Lock()
	index := s.indexOfLocked(id)
	if index < 0 {
		s.songsMutex.Unlock()
		return fmt.Errorf("remove song %s: %w", id, ErrSongNotFound)
	}

	removed := *s.songs[index]
	s.songs = append(s.songs[:index], s.songs[index+1:]...)
	remaining := len(s.songs)
	s.songsMutex.Unlock()

	s.log.Info("song removed", "id", removed.ID, "title", removed.Title, "remaining", remaining)
	s.notifyUpdate(removed)
	return nil
}

// Songs returns value copies of the sequence in insertion order. Mutating
// the returned slice has no effect on the store.
func (s *Service) Songs() []model.Song {
	s.songsMutex.RLock()
	defer s.songsMutex.RUnlock()

	songs := make([]model.Song, len(s.songs))
	for i, song := range s.songs {
		songs[i] = *song
	}
	return songs
}

// Get returns a copy of the song at index
func (s *Service) Get(index int) (model.Song, bool) {
	s.songsMutex.RLock()
	defer s.songsMutex.RUnlock()

	if index < 0 || index >= len(s.songs) {
		return model.Song{}, false
	}
	return *s.songs[index], true
}

// GetByID returns a copy of the song with the given ID
func (s *Service) GetByID(id string) (model.Song, bool) {
	s.songsMutex.RLock()
	defer s.songsMutex.RUnlock()

	index := s.indexOfLocked(id)
	if index < 0 {
		return model.Song{}, false
	}
	return *s.songs[index], true
}

// IndexOf returns the current position of the song with the given ID
func (s *Service) IndexOf(id string) (int, bool) {
	s.songsMutex.RLock()
	defer s.songsMutex.RUnlock()

	index := s.indexOfLocked(id)
	if index < 0 {
		return 0, false
	}
	return index, true
}

// Len returns the number of songs in the sequence
func (s *Service) Len() int {
	s.songsMutex.RLock()
	defer s.songsMutex.RUnlock()

	return len(s.songs)
}

// indexOfLocked returns the position of the song with the given ID, or -1.
// Callers must hold songsMutex.
func (s *Service) indexOfLocked(id string) int {
	for i, song := range s.songs {
		if song.ID == id {
			return i
		}
	}
	return -1
}

// notifyUpdate notifies the UI about a song list change
func (s *Service) notifyUpdate(song model.Song) {
	if s.onUpdate != nil {
		s.onUpdate(song)
	}
}

// normalizeFields trims surrounding whitespace from the three attributes and
// reports the first one left empty, in title, artist, genre order.
func normalizeFields(title, artist, genre string) (string, string, string, error) {
	title = strings.TrimSpace(title)
	artist = strings.TrimSpace(artist)
	genre = strings.TrimSpace(genre)

	if title == "" {
		return "", "", "", &ValidationError{Field: model.FieldTitle}
	}
	if artist == "" {
		return "", "", "", &ValidationError{Field: model.FieldArtist}
	}
	if genre == "" {
		return "", "", "", &ValidationError{Field: model.FieldGenre}
	}
	return title, artist, genre, nil
}
