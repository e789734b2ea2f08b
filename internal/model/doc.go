package model

// Package model defines domain data structures used across the app: platform
// tags, the download request sent to the backend, the result it returns, the
// UI view state and the error taxonomy. Structures are plain values so the UI
// and the CLI can render them without extra conversion.
