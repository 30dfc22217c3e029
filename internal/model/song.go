package model

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// ID constants
const (
	SongIDPrefix = "song-"
)

// Song represents a single entry in the playlist
type Song struct {
	ID        string
	Title     string
	Artist    string
	Genre     string
	AddedAt   time.Time // when the song was added to the playlist
	UpdatedAt time.Time // last time any attribute changed
}

// NewSong creates a new song with a stable identifier and timestamps.
// Attribute validation happens at the playlist boundary, not here.
func NewSong(title, artist, genre string) *Song {
	now := time.Now()
	return &Song{
		ID:        generateSongID(),
		Title:     title,
		Artist:    artist,
		Genre:     genre,
		AddedAt:   now,
		UpdatedAt: now,
	}
}

// ApplyUpdate replaces the three song attributes in place, preserving the
// identifier and AddedAt
func (s *Song) ApplyUpdate(title, artist, genre string) {
	s.Title = title
	s.Artist = artist
	s.Genre = genre
	s.UpdatedAt = time.Now()
}

// generateSongID generates a unique song ID using UUID v7 for better uniqueness and time ordering
func generateSongID() string {
	// Use UUID v7 which includes timestamp and is naturally ordered
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(SongIDPrefix+"%d", time.Now().UnixNano())
	}
	return SongIDPrefix + id.String()
}
