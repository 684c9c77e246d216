package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles is the Lip Gloss palette for one theme.
type Styles struct {
	ASCII bool // draw ASCII icons instead of emoji

	Title    lipgloss.Style
	Tab      lipgloss.Style
	TabOn    lipgloss.Style
	Label    lipgloss.Style
	Text     lipgloss.Style
	Unset    lipgloss.Style
	Selected lipgloss.Style
	Success  lipgloss.Style
	Error    lipgloss.Style
	Muted    lipgloss.Style
	Help     lipgloss.Style

	Dialog    lipgloss.Style
	Button    lipgloss.Style
	ButtonOn  lipgloss.Style
	Frame     lipgloss.Style
	Separator string
}

// NewStyles builds the palette for classic, neon or mono. Unknown names fall
// back to classic.
func NewStyles(theme string) Styles {
	base := lipgloss.NewStyle()
	switch strings.ToLower(theme) {
	case "mono":
		return Styles{
			ASCII:     true,
			Title:     base.Bold(true),
			Tab:       base.Padding(0, 1),
			TabOn:     base.Padding(0, 1).Reverse(true).Bold(true),
			Label:     base.Bold(true),
			Text:      base,
			Unset:     base.Faint(true),
			Selected:  base.Bold(true),
			Success:   base,
			Error:     base.Bold(true),
			Muted:     base.Faint(true),
			Help:      base.Faint(true),
			Dialog:    base.Border(lipgloss.NormalBorder()).Padding(1, 2),
			Button:    base.Padding(0, 1),
			ButtonOn:  base.Padding(0, 1).Reverse(true),
			Frame:     base.Border(lipgloss.NormalBorder()).Padding(0, 1),
			Separator: " | ",
		}
	case "neon":
		return Styles{
			Title:     base.Bold(true).Foreground(lipgloss.Color("201")),
			Tab:       base.Foreground(lipgloss.Color("51")).Background(lipgloss.Color("236")).Padding(0, 1),
			TabOn:     base.Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("201")).Padding(0, 1),
			Label:     base.Bold(true).Foreground(lipgloss.Color("51")),
			Text:      base.Foreground(lipgloss.Color("229")),
			Unset:     base.Faint(true).Italic(true),
			Selected:  base.Bold(true).Foreground(lipgloss.Color("201")),
			Success:   base.Foreground(lipgloss.Color("46")),
			Error:     base.Foreground(lipgloss.Color("196")).Bold(true),
			Muted:     base.Faint(true),
			Help:      base.Faint(true),
			Dialog:    base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("201")).Padding(1, 2),
			Button:    base.Foreground(lipgloss.Color("51")).Padding(0, 1),
			ButtonOn:  base.Bold(true).Foreground(lipgloss.Color("16")).Background(lipgloss.Color("51")).Padding(0, 1),
			Frame:     base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("201")).Padding(0, 1),
			Separator: " • ",
		}
	default:
		return Styles{
			Title:     base.Bold(true),
			Tab:       base.Bold(true).Foreground(lipgloss.Color("39")).Background(lipgloss.Color("236")).Padding(0, 1),
			TabOn:     base.Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")).Padding(0, 1),
			Label:     base.Bold(true).Foreground(lipgloss.Color("12")),
			Text:      base,
			Unset:     base.Faint(true).Italic(true),
			Selected:  base.Bold(true).Reverse(true),
			Success:   base.Foreground(lipgloss.Color("42")),
			Error:     base.Foreground(lipgloss.Color("9")).Bold(true),
			Muted:     base.Faint(true),
			Help:      base.Faint(true),
			Dialog:    base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("214")).Padding(1, 2),
			Button:    base.Foreground(lipgloss.Color("12")).Padding(0, 1),
			ButtonOn:  base.Bold(true).Reverse(true).Padding(0, 1),
			Frame:     base.Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8")).Padding(0, 1),
			Separator: " • ",
		}
	}
}
