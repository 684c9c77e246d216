package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

var (
	reset = "\033[0m"
	bold  = "\033[1m"
	dim   = "\033[2m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"

	symCheck = "✔"
	symCross = "✖"
)

// Color modes accepted by SetColorMode.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var (
	themePlain bool // the mono theme never colors
	useColor   = isTerminal(os.Stdout)
)

// SetColorMode decides whether C emits escapes. In auto mode that depends on
// w being a terminal, so pass the writer the output actually goes to.
func SetColorMode(mode string, w io.Writer) error {
	switch mode {
	case ColorAuto, "":
		useColor = isTerminal(w)
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", mode)
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// C wraps s in color when color is on for this run.
func C(color, s string) string {
	if themePlain || color == "" || !useColor {
		return s
	}
	return color + s + reset
}

func OK(w io.Writer, msg string)   { fmt.Fprintln(w, C(fgGreen, symCheck+" "+msg)) }
func Fail(w io.Writer, msg string) { fmt.Fprintln(w, C(fgRed, symCross+" "+msg)) }
