// Package prompt provides the interactive selection and text prompts used
// by the CLI flows. One logical prompt operation has multiple renderers: a
// cursor-based TUI backend when an interactive terminal is available, and
// a plain line-oriented backend otherwise. The backend is chosen once at
// startup by probing the terminal, never per call.
package prompt

import "os"

// Prompter answers interactive prompts. The boolean return is false when
// the user cancelled; cancellation unwinds the current interactive step
// and is expected control flow, not an error.
type Prompter interface {
	SelectOne(message string, options []string, defaultOption string) (string, bool)
	SelectMany(message string, options []string, defaults []string) ([]string, bool)
	PromptText(message string, defaultValue string) (string, bool)
}

const (
	singleSelectHint = "Use ↑/↓, Enter to select, q to quit"
	multiSelectHint  = "Use ↑/↓, Space to toggle, Enter to confirm, q to quit"
)

// New probes the terminal once and returns the richest prompter it can
// drive: the cursor-based backend on an interactive terminal, the plain
// numbered-menu backend otherwise.
func New() Prompter {
	if isTTY() {
		return NewTUI()
	}
	return NewPlain(os.Stdin, os.Stdout)
}

func isTTY() bool {
	// Simple heuristic - if STDIN and STDOUT are TTYs, we assume we have
	// good terminal support
	for _, f := range []*os.File{os.Stdin, os.Stdout} {
		info, err := f.Stat()
		if err != nil || info.Mode()&os.ModeCharDevice == 0 {
			return false
		}
	}
	return true
}
