package main

import (
	"fmt"
	"strings"

	"cratews/internal/scaffold"
	"cratews/internal/workspace"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true)
	errStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	selectedStyle = lipgloss.NewStyle().Bold(true).Underline(true)
)

// --- inputModel: bubbletea model for text input with validation ---

type inputModel struct {
	textInput textinput.Model
	title     string
	validate  func(string) error
	errMsg    string
	done      bool
	aborted   bool
}

func (m inputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m inputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			val := m.textInput.Value()
			if m.validate != nil {
				if err := m.validate(val); err != nil {
					m.errMsg = err.Error()
					return m, nil
				}
			}
			m.done = true
			return m, tea.Quit
		}
	}
	m.errMsg = ""
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m inputModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render(m.title) + "\n")
	b.WriteString(m.textInput.View() + "\n")
	if m.errMsg != "" {
		b.WriteString(errStyle.Render(m.errMsg) + "\n")
	}
	return b.String()
}

// --- pickModel: bubbletea model for choosing one of a few options ---

type pickModel struct {
	title   string
	options []string
	index   int
	done    bool
	aborted bool
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		case "enter":
			m.done = true
			return m, tea.Quit
		case "left", "h":
			m.index = (m.index + len(m.options) - 1) % len(m.options)
		case "right", "tab", "l":
			m.index = (m.index + 1) % len(m.options)
		}
	}
	return m, nil
}

func (m pickModel) View() string {
	if m.done {
		return ""
	}
	parts := make([]string, len(m.options))
	for i, opt := range m.options {
		if i == m.index {
			parts[i] = selectedStyle.Render(" " + opt + " ")
		} else {
			parts[i] = " " + opt + " "
		}
	}
	return fmt.Sprintf("%s %s\n", titleStyle.Render(m.title), strings.Join(parts, "/"))
}

// --- prompt helpers ---

func promptInput(title, placeholder string, validate func(string) error) (string, error) {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Focus()

	m := inputModel{
		textInput: ti,
		title:     title,
		validate:  validate,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(inputModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.textInput.Value(), nil
}

func promptPick(title string, options []string) (string, error) {
	m := pickModel{
		title:   title,
		options: options,
	}

	result, err := tea.NewProgram(m).Run()
	if err != nil {
		return "", err
	}
	rm := result.(pickModel)
	if rm.aborted {
		return "", fmt.Errorf("user aborted")
	}
	return rm.options[rm.index], nil
}

// interactiveAddMember collects a member name, kind, and link targets from
// the user. Link targets are restricted to members that exist on disk, so
// nothing entered here can end up skipped later.
func interactiveAddMember(ctx *workspace.Context) (string, scaffold.Kind, []string, error) {
	existing, err := ctx.Members()
	if err != nil {
		return "", "", nil, err
	}
	existingSet := make(map[string]bool, len(existing))
	for _, m := range existing {
		existingSet[m] = true
	}

	name, err := promptInput("New member name", "my-crate", memberNameValidator(existingSet))
	if err != nil {
		return "", "", nil, err
	}
	name = strings.TrimSpace(name)

	kindStr, err := promptPick("Member kind", []string{string(scaffold.KindLib), string(scaffold.KindBin)})
	if err != nil {
		return "", "", nil, err
	}
	kind, err := scaffold.ParseKind(kindStr)
	if err != nil {
		return "", "", nil, err
	}

	var links []string
	if len(existing) > 0 {
		links, err = promptLinkTargets(name, existing, existingSet)
		if err != nil {
			return "", "", nil, err
		}
	}

	return name, kind, links, nil
}

// promptLinkTargets loops until the user submits an empty line.
func promptLinkTargets(name string, existing []string, existingSet map[string]bool) ([]string, error) {
	var links []string
	chosen := make(map[string]bool)

	for {
		target, err := promptInput(
			fmt.Sprintf("Depend on sibling (%s; empty to finish)", strings.Join(existing, ", ")),
			"",
			func(s string) error {
				s = strings.TrimSpace(s)
				if s == "" {
					return nil
				}
				if s == name {
					return fmt.Errorf("a member cannot depend on itself")
				}
				if !existingSet[s] {
					return fmt.Errorf("no member named %q on disk", s)
				}
				if chosen[s] {
					return fmt.Errorf("%q is already selected", s)
				}
				return nil
			},
		)
		if err != nil {
			return nil, err
		}
		target = strings.TrimSpace(target)
		if target == "" {
			return links, nil
		}
		chosen[target] = true
		links = append(links, target)
	}
}

// memberNameValidator rejects invalid names and names already on disk.
func memberNameValidator(existingSet map[string]bool) func(string) error {
	return func(s string) error {
		s = strings.TrimSpace(s)
		if err := workspace.ValidateMemberName(s); err != nil {
			return err
		}
		if existingSet[s] {
			return fmt.Errorf("member %q already exists", s)
		}
		return nil
	}
}
