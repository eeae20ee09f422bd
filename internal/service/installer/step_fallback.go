package installer

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// FallbackStep asks whether the generative fallback should be enabled.
type FallbackStep struct {
	choices []string
	cursor  int
}

func NewFallbackStep() Step {
	return &FallbackStep{
		choices: []string{"No — templates and learned answers only", "Yes — use an OpenAI-compatible model"},
		cursor:  0,
	}
}

func (s *FallbackStep) Init() tea.Cmd {
	return nil
}

func (s *FallbackStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.choices)-1 {
				s.cursor++
			}
		case "enter":
			if s.cursor == 1 {
				state.EnvVars["LAPAK_ENABLE_FALLBACK"] = "true"
			} else {
				state.EnvVars["LAPAK_ENABLE_FALLBACK"] = "false"
			}
			return nil, nil
		}
	}
	return s, nil
}

func (s *FallbackStep) View(state *InstallState) string {
	var b strings.Builder
	b.WriteString("Answer unknown questions with a generative model?\n\n")
	for i, choice := range s.choices {
		cursor := " "
		if s.cursor == i {
			cursor = "❯"
			b.WriteString(selStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		} else {
			b.WriteString(itemStyle.Render(fmt.Sprintf("%s %s", cursor, choice)) + "\n")
		}
	}
	b.WriteString("\n(press ctrl+c to quit)\n")
	return b.String()
}

// LLMKeyStep collects the API key. Skipped automatically when the
// fallback is disabled.
type LLMKeyStep struct {
	input textinput.Model
}

func NewLLMKeyStep() Step {
	ti := textinput.New()
	ti.Focus()
	ti.CharLimit = 255
	ti.Width = 40
	ti.Placeholder = "sk-..."
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'

	return &LLMKeyStep{
		input: ti,
	}
}

func (s *LLMKeyStep) Init() tea.Cmd {
	return textinput.Blink
}

func (s *LLMKeyStep) Update(msg tea.Msg, state *InstallState, width, height int) (Step, tea.Cmd) {
	if state.EnvVars["LAPAK_ENABLE_FALLBACK"] != "true" {
		return nil, nil
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "enter" {
			state.EnvVars["LLM_API_KEY"] = s.input.Value()
			return nil, nil
		}
	}
	return s, cmd
}

func (s *LLMKeyStep) View(state *InstallState) string {
	return "Enter your LLM API key:\n\n" +
		s.input.View() + "\n\n" +
		"(press enter to confirm)\n"
}
