package model

// Icon is an opaque image handle for a row or a tab.
// Glyph is what the terminal draws; ASCII is used when the theme is mono.
type Icon struct {
	Glyph string
	ASCII string
}

// Render picks the glyph or its ASCII fallback.
func (i Icon) Render(ascii bool) string {
	if ascii {
		return i.ASCII
	}
	return i.Glyph
}

// NoteEntry is one reminder row. Key is both the label and the store key.
// An empty Text means the reminder is unset.
type NoteEntry struct {
	Key  string `json:"key" yaml:"key"`
	Text string `json:"text" yaml:"text"`
	Icon Icon   `json:"-" yaml:"-"`
}

// Label is what the row shows as its heading.
func (e NoteEntry) Label() string { return e.Key }

// IsSet reports whether the entry carries a note.
func (e NoteEntry) IsSet() bool { return e.Text != "" }

// WithText returns a copy with the text replaced; key and icon never change.
func (e NoteEntry) WithText(text string) NoteEntry {
	e.Text = text
	return e
}
