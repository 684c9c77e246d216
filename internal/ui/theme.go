package ui

import "strings"

// Theme bundles palette + symbols + box borders.
// All UI helpers pull from `current`.
type Theme struct {
	Name                                   string
	Title, Muted, Accent, Success, Pending string
	CornerTL, CornerTR, CornerBL, CornerBR string
	H, V                                   string
	SymSet, SymUnset                       string
	ASCII                                  bool
}

var current Theme

func init() { SetTheme("classic") }

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		themePlain = false
		current = Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Pending: "\033[93m",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymSet: "◼", SymUnset: "◻",
		}
	case "mono":
		themePlain = true
		current = Theme{
			Name:  "mono",
			Title: "", Muted: "", Accent: "", Success: "", Pending: "",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymSet: "[x]", SymUnset: "[ ]",
			ASCII: true,
		}
	default: // classic
		themePlain = false
		current = Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Pending: fgYellow,
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymSet: "☑", SymUnset: "☐",
		}
	}
}

// Expose what renderers need
func Current() Theme { return current }

// Dim is the faint style used for hints.
func Dim() string { return dim }
