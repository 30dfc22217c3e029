package playlist

import (
	"github.com/ytget/playlist-manager/internal/model"
)

// Store defines the interface for the playlist service.
type Store interface {
	SetUpdateCallback(func(model.Song))
	Add(title, artist, genre string) (*model.Song, error)
	Update(index int, title, artist, genre string) error
	Remove(index int) error
	UpdateByID(id, title, artist, genre string) error
	RemoveByID(id string) error
	Songs() []model.Song
	Get(index int) (model.Song, bool)
	GetByID(id string) (model.Song, bool)
	IndexOf(id string) (int, bool)
	Len() int
}
