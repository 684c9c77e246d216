// Package binding keeps one category's rows in step with the note store.
//
// Rows are addressed by their store key once selected. A position is only
// used to find the key at selection time, and is checked against the key the
// caller saw so a shifted row is never acted on.
package binding

import (
	"fmt"
	"log/slog"

	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/store"
)

type List struct {
	category model.Category
	store    store.NoteStore
	entries  []model.NoteEntry
	log      *slog.Logger
}

// New binds a category to a store. Call Load before reading rows.
func New(category model.Category, s store.NoteStore, log *slog.Logger) *List {
	if log == nil {
		log = slog.Default()
	}
	return &List{
		category: category,
		store:    s,
		log:      log.With(slog.String("category", category.Name)),
	}
}

// Category is the bound category.
func (l *List) Category() model.Category { return l.category }

// Load rebuilds the rows from the catalog and reads every value from the store.
func (l *List) Load() error {
	entries := make([]model.NoteEntry, 0, len(l.category.Slots))
	for _, slot := range l.category.Slots {
		text, err := l.store.Get(slot.Key, "")
		if err != nil {
			return fmt.Errorf("binding: load %q: %w", slot.Key, err)
		}
		entries = append(entries, model.NoteEntry{Key: slot.Key, Text: text, Icon: slot.Icon})
	}
	l.entries = entries
	l.log.Debug("rows loaded", slog.Int("count", len(entries)))
	return nil
}

// Entries returns a copy of the rows in display order.
func (l *List) Entries() []model.NoteEntry {
	return append([]model.NoteEntry(nil), l.entries...)
}

func (l *List) Len() int { return len(l.entries) }

// Entry returns the row at position i.
func (l *List) Entry(i int) (model.NoteEntry, bool) {
	if i < 0 || i >= len(l.entries) {
		return model.NoteEntry{}, false
	}
	return l.entries[i], true
}

// Resolve maps a selection to its entry. The selection is valid only if
// position index still holds key; otherwise there is no target.
func (l *List) Resolve(index int, key string) (model.NoteEntry, bool) {
	e, ok := l.Entry(index)
	if !ok || e.Key != key {
		l.log.Debug("stale selection ignored", slog.Int("index", index), slog.String("key", key))
		return model.NoteEntry{}, false
	}
	return e, true
}

// Prefill reads the current value straight from the store, not from the row.
func (l *List) Prefill(key string) (string, error) {
	v, err := l.store.Get(key, "")
	if err != nil {
		return "", fmt.Errorf("binding: prefill %q: %w", key, err)
	}
	return v, nil
}

// Confirm writes text for key and then mirrors it into the row.
// The row is left untouched when the write fails.
func (l *List) Confirm(key, text string) error {
	if err := l.store.Set(key, text); err != nil {
		return fmt.Errorf("binding: set %q: %w", key, err)
	}
	l.replace(key, text)
	l.log.Debug("reminder saved", slog.String("key", key))
	return nil
}

// Clear removes key from the store and empties the row.
func (l *List) Clear(key string) error {
	if err := l.store.Remove(key); err != nil {
		return fmt.Errorf("binding: remove %q: %w", key, err)
	}
	l.replace(key, "")
	l.log.Debug("reminder cleared", slog.String("key", key))
	return nil
}

// Index finds the current position of key, or -1.
func (l *List) Index(key string) int {
	for i, e := range l.entries {
		if e.Key == key {
			return i
		}
	}
	return -1
}

func (l *List) replace(key, text string) {
	if i := l.Index(key); i >= 0 {
		l.entries[i] = l.entries[i].WithText(text)
	}
}
