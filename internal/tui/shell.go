package tui

import (
	"fmt"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/reminders/internal/binding"
	"github.com/idilsaglam/reminders/internal/model"
	"github.com/idilsaglam/reminders/internal/store"
)

// Options tune the interactive program.
type Options struct {
	Theme  string
	Logger *slog.Logger
}

type statusKind int

const (
	statusInfo statusKind = iota
	statusOK
	statusErr
)

// Shell hosts the three category pages as tabs and owns the only editor.
type Shell struct {
	pages  []Page
	active int
	editor Editor

	keys   keyMap
	help   help.Model
	styles Styles
	log    *slog.Logger

	status     string
	statusKind statusKind

	width, height int
}

// New builds the shell over s. The first tab is activated immediately;
// the others load the first time they are shown.
func New(s store.NoteStore, opt Options) (Shell, error) {
	log := opt.Logger
	if log == nil {
		log = slog.Default()
	}
	st := NewStyles(opt.Theme)

	var pages []Page
	for i, c := range model.Categories() {
		pages = append(pages, NewPage(i, binding.New(c, s, log), st))
	}

	sh := Shell{
		pages:  pages,
		editor: NewEditor(st),
		keys:   defaultKeys(),
		help:   help.New(),
		styles: st,
		log:    log,
		width:  80,
		height: 24,
	}
	sh = sh.resize()
	if err := sh.activate(0); err != nil {
		return sh, err
	}
	return sh, nil
}

// Run starts the full-screen program and blocks until the user quits.
func Run(s store.NoteStore, opt Options) error {
	sh, err := New(s, opt)
	if err != nil {
		return err
	}
	p := tea.NewProgram(sh, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	if fs, ok := final.(Shell); ok {
		fs.Release()
	}
	return nil
}

func (m Shell) Init() tea.Cmd { return nil }

// ActiveTab is the index of the visible page.
func (m Shell) ActiveTab() int { return m.active }

// EditorOpen reports whether the modal editor has input focus.
func (m Shell) EditorOpen() bool { return m.editor.IsOpen() }

// Rows returns what the given tab currently shows.
func (m Shell) Rows(tab int) []model.NoteEntry {
	if tab < 0 || tab >= len(m.pages) || !m.pages[tab].active {
		return nil
	}
	return m.pages[tab].binding.Entries()
}

// Release drops every page's view state.
func (m Shell) Release() {
	for i := range m.pages {
		m.pages[i] = m.pages[i].Release()
	}
}

func (m Shell) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m = m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.editor.IsOpen() {
			if msg.String() == "ctrl+c" {
				return m, tea.Quit
			}
			var (
				d   *Decision
				cmd tea.Cmd
			)
			m.editor, d, cmd = m.editor.Update(msg)
			if d != nil {
				m = m.apply(*d)
			}
			return m, cmd
		}

		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			return m.switchTo((m.active + 1) % len(m.pages)), nil
		case key.Matches(msg, m.keys.PrevTab):
			return m.switchTo((m.active - 1 + len(m.pages)) % len(m.pages)), nil
		case key.Matches(msg, m.keys.Tab1):
			return m.switchTo(0), nil
		case key.Matches(msg, m.keys.Tab2):
			return m.switchTo(1), nil
		case key.Matches(msg, m.keys.Tab3):
			return m.switchTo(2), nil
		case key.Matches(msg, m.keys.Open):
			return m.openEditor()
		}
	}

	if m.editor.IsOpen() {
		var cmd tea.Cmd
		m.editor, _, cmd = m.editor.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.pages[m.active], cmd = m.pages[m.active].Update(msg)
	return m, cmd
}

func (m Shell) switchTo(i int) Shell {
	if i == m.active {
		return m
	}
	if err := m.activate(i); err != nil {
		m.setStatus(statusErr, "load failed: "+err.Error())
		m.log.Error("page load failed", slog.String("category", m.pages[i].Category().Name), slog.Any("error", err))
		return m
	}
	m.active = i
	m.status = ""
	return m
}

func (m *Shell) activate(i int) error {
	if m.pages[i].active {
		return nil
	}
	p, err := m.pages[i].Activate()
	if err != nil {
		return err
	}
	m.pages[i] = p
	return nil
}

// openEditor captures the highlighted row. A row that moved since it was
// drawn is treated as no target and the request is dropped.
func (m Shell) openEditor() (tea.Model, tea.Cmd) {
	page := m.pages[m.active]
	t, ok := page.Selected()
	if !ok {
		return m, nil
	}
	if _, ok := page.Resolve(t); !ok {
		return m, nil
	}
	text, err := page.Prefill(t.Key)
	if err != nil {
		m.setStatus(statusErr, "read failed: "+err.Error())
		m.log.Error("prefill failed", slog.String("key", t.Key), slog.Any("error", err))
		return m, nil
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Open(t, text)
	return m, cmd
}

// apply performs the store write and the row update in one step.
func (m Shell) apply(d Decision) Shell {
	t := d.Target
	if t.Page < 0 || t.Page >= len(m.pages) {
		return m
	}
	var err error
	switch d.Action {
	case ActionConfirm:
		m.pages[t.Page], err = m.pages[t.Page].Confirm(t.Key, d.Text)
		if err == nil {
			m.setStatus(statusOK, "✔ saved "+t.Key)
		}
	case ActionClear:
		m.pages[t.Page], err = m.pages[t.Page].Clear(t.Key)
		if err == nil {
			m.setStatus(statusOK, "✔ cleared "+t.Key)
		}
	case ActionCancel:
		m.setStatus(statusInfo, "edit cancelled")
	}
	if err != nil {
		m.setStatus(statusErr, "✖ "+err.Error())
		m.log.Error("editor action failed", slog.String("action", d.Action.String()), slog.String("key", t.Key), slog.Any("error", err))
	}
	return m
}

func (m *Shell) setStatus(kind statusKind, msg string) {
	m.statusKind = kind
	m.status = msg
}

// resize gives every page the space left after the chrome.
func (m Shell) resize() Shell {
	w, h := m.pageSize()
	for i := range m.pages {
		m.pages[i] = m.pages[i].SetSize(w, h)
	}
	m.help.Width = w
	return m
}

func (m Shell) pageSize() (int, int) {
	// title, blank, tabs, blank, status, help, frame borders
	h := m.height - 8
	if h < 3 {
		h = 3
	}
	w := m.width - 4
	if w < 10 {
		w = 10
	}
	return w, h
}

func (m Shell) tabRow() string {
	tabs := make([]string, 0, 2*len(m.pages)-1)
	for i, p := range m.pages {
		if i > 0 {
			tabs = append(tabs, m.styles.Muted.Render(m.styles.Separator))
		}
		c := p.Category()
		name := fmt.Sprintf("%s %s", c.Icon.Render(m.styles.ASCII), c.Name)
		if i == m.active {
			tabs = append(tabs, m.styles.TabOn.Render(name))
		} else {
			tabs = append(tabs, m.styles.Tab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Shell) View() string {
	header := m.styles.Title.Render("Reminders")

	content := m.pages[m.active].View()
	if m.editor.IsOpen() {
		w, h := m.pageSize()
		content = lipgloss.Place(w, h, lipgloss.Center, lipgloss.Center, m.editor.View())
	}

	var status string
	switch m.statusKind {
	case statusOK:
		status = m.styles.Success.Render(m.status)
	case statusErr:
		status = m.styles.Error.Render(m.status)
	default:
		status = m.styles.Muted.Render(m.status)
	}

	footer := m.styles.Help.Render(m.help.View(m.keys))
	if m.editor.IsOpen() {
		footer = m.styles.Help.Render("editing " + m.editor.Target().Key)
	}

	return m.styles.Frame.Render(lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		m.tabRow(),
		"",
		content,
		status,
		footer,
	))
}
