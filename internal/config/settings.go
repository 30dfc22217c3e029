package config

import (
	"fyne.io/fyne/v2"
)

// Settings keys for Fyne preferences
const (
	KeyWindowWidth   = "window_width"
	KeyWindowHeight  = "window_height"
	KeyStatusTimeout = "status_message_timeout_seconds"
)

// Default values
const (
	DefaultWindowWidth   = 800
	DefaultWindowHeight  = 600
	DefaultStatusTimeout = 4
)

// Window size limits
const (
	MinWindowWidth  = 640
	MaxWindowWidth  = 3840
	MinWindowHeight = 480
	MaxWindowHeight = 2160
)

// Status message timeout limits in seconds
const (
	MinStatusTimeout = 1
	MaxStatusTimeout = 30
)

// Settings manages application configuration. Only UI preferences are
// persisted; the playlist itself never leaves memory.
type Settings struct {
	app fyne.App
}

// NewSettings creates a new settings manager
func NewSettings(app fyne.App) *Settings {
	return &Settings{app: app}
}

// GetWindowWidth returns the configured window width
func (s *Settings) GetWindowWidth() int {
	value := s.app.Preferences().Int(KeyWindowWidth)
	if value <= 0 {
		s.SetWindowWidth(DefaultWindowWidth)
		return DefaultWindowWidth
	}
	return value
}

// SetWindowWidth sets the window width, clamped to the supported range
func (s *Settings) SetWindowWidth(width int) {
	if width < MinWindowWidth {
		width = MinWindowWidth
	}
	if width > MaxWindowWidth {
		width = MaxWindowWidth
	}
	s.app.Preferences().SetInt(KeyWindowWidth, width)
}

// GetWindowHeight returns the configured window height
func (s *Settings) GetWindowHeight() int {
	value := s.app.Preferences().Int(KeyWindowHeight)
	if value <= 0 {
		s.SetWindowHeight(DefaultWindowHeight)
		return DefaultWindowHeight
	}
	return value
}

// SetWindowHeight sets the window height, clamped to the supported range
func (s *Settings) SetWindowHeight(height int) {
	if height < MinWindowHeight {
		height = MinWindowHeight
	}
	if height > MaxWindowHeight {
		height = MaxWindowHeight
	}
	s.app.Preferences().SetInt(KeyWindowHeight, height)
}

// GetStatusTimeoutSeconds returns how long status messages stay visible
func (s *Settings) GetStatusTimeoutSeconds() int {
	value := s.app.Preferences().Int(KeyStatusTimeout)
	if value <= 0 {
		s.SetStatusTimeoutSeconds(DefaultStatusTimeout)
		return DefaultStatusTimeout
	}
	return value
}

// SetStatusTimeoutSeconds sets how long status messages stay visible,
// clamped to the supported range
func (s *Settings) SetStatusTimeoutSeconds(seconds int) {
	if seconds < MinStatusTimeout {
		seconds = MinStatusTimeout
	}
	if seconds > MaxStatusTimeout {
		seconds = MaxStatusTimeout
	}
	s.app.Preferences().SetInt(KeyStatusTimeout, seconds)
}
