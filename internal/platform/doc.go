package platform

// Package platform contains OS integration glue: the command-line clipboard
// used as the legacy copy path, and opening links with the system handler.
