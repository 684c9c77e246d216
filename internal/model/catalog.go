package model

import "strings"

// Slot is a catalog position: the store key and its static icon.
type Slot struct {
	Key  string
	Icon Icon
}

// Category is one tab worth of reminders.
type Category struct {
	Name  string
	Icon  Icon
	Slots []Slot
}

// Keys returns the category's store keys in display order.
func (c Category) Keys() []string {
	out := make([]string, 0, len(c.Slots))
	for _, s := range c.Slots {
		out = append(out, s.Key)
	}
	return out
}

// The key strings are the persisted schema. Saved values from earlier
// installs are found by these exact strings, so they must not change.
var catalog = []Category{
	{
		Name: "Personal",
		Icon: Icon{Glyph: "👤", ASCII: "[P]"},
		Slots: []Slot{
			{Key: "Phone Password", Icon: Icon{Glyph: "📱", ASCII: "ph"}},
			{Key: "UPI Pin", Icon: Icon{Glyph: "💳", ASCII: "up"}},
			{Key: "Bike Lock", Icon: Icon{Glyph: "🚲", ASCII: "bk"}},
			{Key: "Metro Card", Icon: Icon{Glyph: "🚇", ASCII: "mc"}},
		},
	},
	{
		Name: "Work",
		Icon: Icon{Glyph: "💼", ASCII: "[W]"},
		Slots: []Slot{
			{Key: "Roll NO.", Icon: Icon{Glyph: "🎓", ASCII: "rn"}},
			{Key: "Student ID", Icon: Icon{Glyph: "🪪", ASCII: "id"}},
		},
	},
	{
		Name: "Family",
		Icon: Icon{Glyph: "👪", ASCII: "[F]"},
		Slots: []Slot{
			{Key: "Door Lock", Icon: Icon{Glyph: "🚪", ASCII: "dl"}},
			{Key: "Wifi Password", Icon: Icon{Glyph: "📶", ASCII: "wf"}},
		},
	},
}

// Categories returns the fixed tab order: Personal, Work, Family.
// The returned slice is a copy; callers may not alter the catalog.
func Categories() []Category {
	out := make([]Category, len(catalog))
	for i, c := range catalog {
		c.Slots = append([]Slot(nil), c.Slots...)
		out[i] = c
	}
	return out
}

// Lookup finds a category by name, ignoring case.
func Lookup(name string) (Category, bool) {
	for _, c := range Categories() {
		if strings.EqualFold(c.Name, name) {
			return c, true
		}
	}
	return Category{}, false
}

// KnownKey reports whether key belongs to any category.
func KnownKey(key string) bool {
	for _, c := range catalog {
		for _, s := range c.Slots {
			if s.Key == key {
				return true
			}
		}
	}
	return false
}

// AllKeys lists every store key, category by category.
func AllKeys() []string {
	var out []string
	for _, c := range catalog {
		out = append(out, c.Keys()...)
	}
	return out
}
