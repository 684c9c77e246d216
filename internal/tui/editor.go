package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Action is what the user decided in the editor.
type Action int

const (
	ActionNone Action = iota
	ActionConfirm
	ActionCancel
	ActionClear
)

func (a Action) String() string {
	switch a {
	case ActionConfirm:
		return "confirm"
	case ActionCancel:
		return "cancel"
	case ActionClear:
		return "clear"
	default:
		return "none"
	}
}

// Target identifies the row an editor was opened for. Index is informational;
// the key is what the decision is applied to.
type Target struct {
	Page  int
	Index int
	Key   string
}

// Decision is returned once, when the editor closes.
type Decision struct {
	Action Action
	Target Target
	Text   string
}

type focusArea int

const (
	focusField focusArea = iota
	focusOK
	focusCancel
	focusClear
	focusCount
)

// Editor is the modal prompt: a text field and OK / Cancel / Clear.
// Closed -> Open -> (Confirm | Cancel | Clear) -> Closed.
type Editor struct {
	open   bool
	target Target
	input  textinput.Model
	focus  focusArea
	keys   editorKeyMap
	help   help.Model
	styles Styles
}

func NewEditor(st Styles) Editor {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Type a note..."
	ti.Width = 36
	return Editor{
		input:  ti,
		keys:   defaultEditorKeys(),
		help:   help.New(),
		styles: st,
	}
}

// Open shows the editor for target, prefilled with text.
func (e Editor) Open(target Target, text string) (Editor, tea.Cmd) {
	e.open = true
	e.target = target
	e.focus = focusField
	e.input.SetValue(text)
	e.input.CursorEnd()
	return e, e.input.Focus()
}

func (e Editor) IsOpen() bool   { return e.open }
func (e Editor) Target() Target { return e.target }
func (e Editor) Value() string  { return e.input.Value() }

// Update handles input while open. A non-nil decision means the editor has
// closed and the caller must apply it.
func (e Editor) Update(msg tea.Msg) (Editor, *Decision, tea.Cmd) {
	if !e.open {
		return e, nil, nil
	}
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		e.input, cmd = e.input.Update(msg)
		return e, nil, cmd
	}

	switch {
	case key.Matches(km, e.keys.Cancel):
		return e.decide(ActionCancel)
	case key.Matches(km, e.keys.Clear):
		return e.decide(ActionClear)
	case key.Matches(km, e.keys.Next):
		return e.moveFocus(1), nil, nil
	case key.Matches(km, e.keys.Prev):
		return e.moveFocus(-1), nil, nil
	case key.Matches(km, e.keys.Confirm):
		switch e.focus {
		case focusCancel:
			return e.decide(ActionCancel)
		case focusClear:
			return e.decide(ActionClear)
		default:
			return e.decide(ActionConfirm)
		}
	}

	if e.focus != focusField {
		return e, nil, nil
	}
	var cmd tea.Cmd
	e.input, cmd = e.input.Update(msg)
	return e, nil, cmd
}

func (e Editor) decide(a Action) (Editor, *Decision, tea.Cmd) {
	d := &Decision{Action: a, Target: e.target}
	if a == ActionConfirm {
		d.Text = e.input.Value()
	}
	e.open = false
	e.focus = focusField
	e.input.Blur()
	e.input.SetValue("")
	return e, d, nil
}

func (e Editor) moveFocus(delta int) Editor {
	e.focus = focusArea((int(e.focus) + delta + int(focusCount)) % int(focusCount))
	if e.focus == focusField {
		e.input.Focus()
	} else {
		e.input.Blur()
	}
	return e
}

func (e Editor) View() string {
	if !e.open {
		return ""
	}
	button := func(label string, f focusArea) string {
		if e.focus == f {
			return e.styles.ButtonOn.Render(label)
		}
		return e.styles.Button.Render(label)
	}
	buttons := lipgloss.JoinHorizontal(lipgloss.Top,
		button("OK", focusOK), " ",
		button("Cancel", focusCancel), " ",
		button("Clear", focusClear),
	)
	body := lipgloss.JoinVertical(lipgloss.Left,
		e.styles.Label.Render(e.target.Key),
		"",
		e.input.View(),
		"",
		buttons,
		"",
		e.styles.Help.Render(e.help.ShortHelpView(e.keys.ShortHelp())),
	)
	return e.styles.Dialog.Render(body)
}
