package ui

// Package ui contains the Fyne-based desktop user interface for the application.
// It wires user interactions to the playlist controller and renders the song
// list, the add form, the edit dialog, status messages, and settings.
