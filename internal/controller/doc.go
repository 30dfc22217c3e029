package controller

// Package controller translates discrete UI events (add, edit, delete,
// editor confirm/cancel) into playlist store calls. It owns the single
// active edit session and the rules for surfacing success and error
// messages, keeping the Fyne layer free of domain decisions.
