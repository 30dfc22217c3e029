package model

// Field identifies one of the three song attributes
type Field string

const (
	// FieldTitle is the song title attribute
	FieldTitle Field = "title"

	// FieldArtist is the performing artist attribute
	FieldArtist Field = "artist"

	// FieldGenre is the musical genre attribute
	FieldGenre Field = "genre"
)

// String returns the string representation of Field
func (f Field) String() string {
	return string(f)
}

// Label returns the capitalized display name used in user-facing messages
func (f Field) Label() string {
	switch f {
	case FieldTitle:
		return "Title"
	case FieldArtist:
		return "Artist"
	case FieldGenre:
		return "Genre"
	default:
		return "Unknown"
	}
}
