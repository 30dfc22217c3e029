package ui

// UI constants for icons and labels
const (
	IconSettings = "⚙️"
	IconMusic    = "🎵"
)

// Dialog titles
const (
	EditorTitle = "Edit Song"
)

// Button and menu labels
const (
	BtnAdd         = "Add Song"
	BtnUpdate      = "Update"
	BtnCancel      = "Cancel"
	MenuEditItem   = "Edit"
	MenuDeleteItem = "Delete"
)

// Input field placeholders
const (
	PlaceholderTitle  = "Title"
	PlaceholderArtist = "Artist"
	PlaceholderGenre  = "Genre"
)

// Text display constants
const (
	EmptyPlaylistText = "Playlist is empty"
)

// Input constraints
const (
	// MaxInputLength caps text field input, counted in runes
	MaxInputLength = 255
	// MaxTitleDisplayLength is the longest title shown in a row before truncation
	MaxTitleDisplayLength = 60
	// MaxDetailDisplayLength is the longest artist line shown before truncation
	MaxDetailDisplayLength = 80
	// MaxGenreDisplayLength is the longest genre shown in the row badge
	MaxGenreDisplayLength = 20
)

// Row layout constants
const (
	RowMinWidth     float32 = 360
	RowMinHeight    float32 = 48
	GenreLabelWidth float32 = 110
)

// Dialog layout constants
const (
	SettingsDialogWidth  float32 = 380
	SettingsDialogHeight float32 = 260
	EditorDialogWidth    float32 = 420
	EditorDialogHeight   float32 = 300
)
