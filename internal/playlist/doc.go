package playlist

// Package playlist implements the in-memory store that owns the ordered song
// sequence. It enforces trim-then-nonempty validation at the add/update
// boundary, resolves songs by stable ID as well as by position, and pushes
// every successful mutation to the UI through an update callback.
