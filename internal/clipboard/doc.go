// Package clipboard defines the copy-to-clipboard capability and the
// native-then-legacy fallback used by the copy actions.
package clipboard
