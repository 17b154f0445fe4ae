package prompt

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TUI is the cursor-based prompter backend built on bubbletea.
type TUI struct{}

// NewTUI creates the cursor-based prompter backend.
func NewTUI() *TUI {
	return &TUI{}
}

type promptStyles struct {
	message lipgloss.Style
	cursor  lipgloss.Style
	hint    lipgloss.Style
}

func newPromptStyles() promptStyles {
	return promptStyles{
		message: lipgloss.NewStyle().Bold(true),
		cursor:  lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true),
		hint:    lipgloss.NewStyle().Faint(true),
	}
}

// SelectOne renders a single-choice cursor menu.
func (t *TUI) SelectOne(message string, options []string, defaultOption string) (string, bool) {
	if len(options) == 0 {
		return "", false
	}

	cursor := 0
	for i, option := range options {
		if option == defaultOption {
			cursor = i
			break
		}
	}

	model := selectModel{
		message: message,
		options: options,
		cursor:  cursor,
		styles:  newPromptStyles(),
	}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", false
	}

	result := final.(selectModel)
	if result.cancelled {
		return "", false
	}
	return result.options[result.cursor], true
}

// SelectMany renders a checkbox-style multi-choice cursor menu.
func (t *TUI) SelectMany(message string, options []string, defaults []string) ([]string, bool) {
	if len(options) == 0 {
		return nil, false
	}

	selected := make(map[int]struct{})
	for _, d := range defaults {
		for i, option := range options {
			if option == d {
				selected[i] = struct{}{}
			}
		}
	}

	model := multiSelectModel{
		message:  message,
		options:  options,
		selected: selected,
		styles:   newPromptStyles(),
	}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, false
	}

	result := final.(multiSelectModel)
	if result.cancelled {
		return nil, false
	}

	picked := make([]string, 0, len(result.selected))
	for i, option := range result.options {
		if _, ok := result.selected[i]; ok {
			picked = append(picked, option)
		}
	}
	return picked, true
}

// PromptText renders a free-text input.
func (t *TUI) PromptText(message string, defaultValue string) (string, bool) {
	input := textinput.New()
	input.Placeholder = defaultValue
	input.Prompt = "❯ "
	input.Width = 60
	input.Focus()

	model := textPromptModel{
		message: message,
		input:   input,
		styles:  newPromptStyles(),
	}
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return "", false
	}

	result := final.(textPromptModel)
	if result.cancelled {
		return "", false
	}

	value := strings.TrimSpace(result.input.Value())
	if value == "" {
		return defaultValue, true
	}
	return value, true
}

type selectModel struct {
	message   string
	options   []string
	cursor    int
	cancelled bool
	styles    promptStyles
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(m.options)
		case "enter":
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m selectModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.message.Render(m.message))
	b.WriteString("\n\n")
	for i, option := range m.options {
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> " + option))
		} else {
			b.WriteString("  " + option)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render(singleSelectHint))
	b.WriteString("\n")
	return b.String()
}

type multiSelectModel struct {
	message   string
	options   []string
	cursor    int
	selected  map[int]struct{}
	cancelled bool
	styles    promptStyles
}

func (m multiSelectModel) Init() tea.Cmd {
	return nil
}

func (m multiSelectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "up", "k":
			m.cursor = (m.cursor - 1 + len(m.options)) % len(m.options)
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(m.options)
		case " ":
			if _, ok := m.selected[m.cursor]; ok {
				delete(m.selected, m.cursor)
			} else {
				m.selected[m.cursor] = struct{}{}
			}
		case "enter":
			return m, tea.Quit
		case "q", "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m multiSelectModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.message.Render(m.message))
	b.WriteString("\n\n")
	for i, option := range m.options {
		marker := "[ ]"
		if _, ok := m.selected[i]; ok {
			marker = "[x]"
		}
		line := marker + " " + option
		if i == m.cursor {
			b.WriteString(m.styles.cursor.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.styles.hint.Render(multiSelectHint))
	b.WriteString("\n")
	return b.String()
}

type textPromptModel struct {
	message   string
	input     textinput.Model
	cancelled bool
	styles    promptStyles
}

func (m textPromptModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textPromptModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter":
			return m, tea.Quit
		case "esc", "ctrl+c":
			m.cancelled = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m textPromptModel) View() string {
	var b strings.Builder
	b.WriteString(m.styles.message.Render(m.message))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	return b.String()
}
