package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/reminders/internal/binding"
	"github.com/idilsaglam/reminders/internal/model"
)

// rowItem adapts a NoteEntry to bubbles/list.Item.
type rowItem struct {
	entry model.NoteEntry
}

func (r rowItem) FilterValue() string { return r.entry.Key }

// rowDelegate draws a two-line card: icon and label, then the note.
type rowDelegate struct {
	styles Styles
}

func (d rowDelegate) Height() int                               { return 2 }
func (d rowDelegate) Spacing() int                              { return 1 }
func (d rowDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d rowDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(rowItem)
	if !ok {
		return
	}
	icon := it.entry.Icon.Render(d.styles.ASCII)
	label := d.styles.Label.Render(it.entry.Label())

	text := d.styles.Text.Render(it.entry.Text)
	if !it.entry.IsSet() {
		text = d.styles.Unset.Render("not set")
	}

	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s  %s\n", prefix, icon, label)
	fmt.Fprintf(w, "%s%s", strings.Repeat(" ", 2+lipgloss.Width(icon)+2), text)
}

// Page is one category tab hosting a row list.
type Page struct {
	index   int
	binding *binding.List
	list    list.Model
	styles  Styles
	active  bool
}

func NewPage(index int, b *binding.List, st Styles) Page {
	l := list.New(nil, rowDelegate{styles: st}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.PaginationStyle = st.Help
	return Page{index: index, binding: b, list: l, styles: st}
}

func (p Page) Category() model.Category { return p.binding.Category() }
func (p Page) Active() bool              { return p.active }

// Activate loads current values from the store and rebuilds the rows.
func (p Page) Activate() (Page, error) {
	if err := p.binding.Load(); err != nil {
		return p, err
	}
	entries := p.binding.Entries()
	items := make([]list.Item, 0, len(entries))
	for _, e := range entries {
		items = append(items, rowItem{entry: e})
	}
	p.list.SetItems(items)
	p.active = true
	return p, nil
}

// Release drops view state. Data stays in the store.
func (p Page) Release() Page {
	p.list.SetItems(nil)
	p.active = false
	return p
}

// Selected captures the highlighted row as an editor target.
func (p Page) Selected() (Target, bool) {
	it, ok := p.list.SelectedItem().(rowItem)
	if !ok {
		return Target{}, false
	}
	return Target{Page: p.index, Index: p.list.Index(), Key: it.entry.Key}, true
}

// Resolve checks that the target still points at the row it was captured on.
func (p Page) Resolve(t Target) (model.NoteEntry, bool) {
	if t.Page != p.index {
		return model.NoteEntry{}, false
	}
	return p.binding.Resolve(t.Index, t.Key)
}

// Prefill reads the editor's starting text from the store.
func (p Page) Prefill(key string) (string, error) {
	return p.binding.Prefill(key)
}

// Confirm stores text for key and updates the visible row.
func (p Page) Confirm(key, text string) (Page, error) {
	if err := p.binding.Confirm(key, text); err != nil {
		return p, err
	}
	return p.refresh(key), nil
}

// Clear removes key from the store and empties the visible row.
func (p Page) Clear(key string) (Page, error) {
	if err := p.binding.Clear(key); err != nil {
		return p, err
	}
	return p.refresh(key), nil
}

func (p Page) refresh(key string) Page {
	i := p.binding.Index(key)
	if i < 0 {
		return p
	}
	e, _ := p.binding.Entry(i)
	p.list.SetItem(i, rowItem{entry: e})
	return p
}

func (p Page) SetSize(w, h int) Page {
	p.list.SetSize(w, h)
	return p
}

func (p Page) Update(msg tea.Msg) (Page, tea.Cmd) {
	var cmd tea.Cmd
	p.list, cmd = p.list.Update(msg)
	return p, cmd
}

func (p Page) View() string {
	if len(p.list.Items()) == 0 {
		return p.styles.Muted.Render("no reminders")
	}
	return p.list.View()
}
