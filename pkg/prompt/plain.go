package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Plain is the line-oriented prompter backend used when no interactive
// terminal is available: numbered menus and free-text prompts over a
// reader/writer pair.
type Plain struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPlain creates the line-oriented prompter backend.
func NewPlain(in io.Reader, out io.Writer) *Plain {
	return &Plain{in: bufio.NewReader(in), out: out}
}

func (p *Plain) readLine() (string, bool) {
	line, err := p.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimSpace(line), true
}

func isQuit(input string) bool {
	switch strings.ToLower(input) {
	case "q", "quit", "exit":
		return true
	default:
		return false
	}
}

// SelectOne shows a numbered menu and accepts a number or an exact option
// name. Empty input picks the default when one is set.
func (p *Plain) SelectOne(message string, options []string, defaultOption string) (string, bool) {
	if len(options) == 0 {
		return "", false
	}

	fmt.Fprintf(p.out, "\n%s\n%s\n", message, singleSelectHint)
	for i, option := range options {
		marker := ""
		if defaultOption != "" && option == defaultOption {
			marker = " (default)"
		}
		fmt.Fprintf(p.out, "  %d) %s%s\n", i+1, option, marker)
	}
	fmt.Fprintln(p.out, "  q) Quit")

	for {
		fmt.Fprint(p.out, "Select an option (number or name): ")
		input, ok := p.readLine()
		if !ok {
			return "", false
		}
		if isQuit(input) {
			return "", false
		}
		if input == "" && defaultOption != "" {
			return defaultOption, true
		}
		if option, ok := matchOption(input, options); ok {
			return option, true
		}
		fmt.Fprintln(p.out, "Invalid choice. Enter a number, exact option name, or 'q' to quit.")
	}
}

// SelectMany shows a numbered menu and accepts numbers or names separated
// by spaces or commas. Empty input picks the defaults when set.
func (p *Plain) SelectMany(message string, options []string, defaults []string) ([]string, bool) {
	if len(options) == 0 {
		return nil, false
	}

	fmt.Fprintf(p.out, "\n%s\n%s\n", message, multiSelectHint)
	for i, option := range options {
		marker := ""
		if contains(defaults, option) {
			marker = " (default)"
		}
		fmt.Fprintf(p.out, "  %d) %s%s\n", i+1, option, marker)
	}
	fmt.Fprintln(p.out, "  q) Quit")

	for {
		fmt.Fprint(p.out, "Select options (numbers or names separated by spaces/comma): ")
		input, ok := p.readLine()
		if !ok {
			return nil, false
		}
		if isQuit(input) {
			return nil, false
		}
		if input == "" {
			if len(defaults) > 0 {
				return append([]string{}, defaults...), true
			}
			fmt.Fprintln(p.out, "Enter at least one option or 'q' to quit.")
			continue
		}

		tokens := strings.Fields(strings.ReplaceAll(input, ",", " "))
		var selected []string
		seen := make(map[string]struct{})
		invalid := false
		for _, token := range tokens {
			option, ok := matchOption(token, options)
			if !ok {
				invalid = true
				break
			}
			if _, dup := seen[option]; dup {
				continue
			}
			seen[option] = struct{}{}
			selected = append(selected, option)
		}
		if invalid {
			fmt.Fprintln(p.out, "One of the selections was invalid. Try again or 'q' to quit.")
			continue
		}
		if len(selected) > 0 {
			return selected, true
		}
	}
}

// PromptText asks for free text. Empty input yields the default.
func (p *Plain) PromptText(message string, defaultValue string) (string, bool) {
	if defaultValue != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", message, defaultValue)
	} else {
		fmt.Fprintf(p.out, "%s: ", message)
	}

	input, ok := p.readLine()
	if !ok {
		return "", false
	}
	if input == "" {
		return defaultValue, true
	}
	return input, true
}

// matchOption resolves a 1-based index or an exact option name.
func matchOption(input string, options []string) (string, bool) {
	if idx, err := strconv.Atoi(input); err == nil {
		if idx >= 1 && idx <= len(options) {
			return options[idx-1], true
		}
		return "", false
	}
	for _, option := range options {
		if option == input {
			return option, true
		}
	}
	return "", false
}

func contains(items []string, target string) bool {
	for _, item := range items {
		if item == target {
			return true
		}
	}
	return false
}
