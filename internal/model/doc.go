package model

// Package model defines domain data structures used across the app: the song
// entity with its stable identifier and the field enum used to name song
// attributes in validation messages. Structures are designed for direct
// rendering in the UI.
