// Package store defines the note store contract shared by every backend.
package store

import (
	"fmt"
	"unicode/utf8"

	"github.com/idilsaglam/reminders/internal/apperr"
)

// Namespace is the single preferences namespace holding all reminders.
const Namespace = "Reminders"

// NoteStore is a flat string key/value map.
//
// Get returns def when key is absent; absence is not an error. Set and Remove
// are durable before they return. Removing an absent key is a no-op. Set
// rejects values that are not valid UTF-8 with apperr.ErrInvalidText and
// leaves the stored value alone. Other errors only report that the backing
// medium could not be opened or accessed.
type NoteStore interface {
	Get(key, def string) (string, error)
	Set(key, value string) error
	Remove(key string) error
}

// CheckText is the value check every backend runs before writing.
func CheckText(key, value string) error {
	if !utf8.ValidString(value) {
		return fmt.Errorf("%w: %q", apperr.ErrInvalidText, key)
	}
	return nil
}
