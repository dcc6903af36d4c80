package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// cheatForm collects a new cheat's description and code. Codes are not
// validated here; the engine decides what a malformed code means when the
// entry is first asserted.
type cheatForm struct {
	inputs     []textinput.Model
	focusIndex int
	errMsg     string
}

func newCheatForm() cheatForm {
	description := textinput.New()
	description.Placeholder = "Infinite lives"
	description.CharLimit = 128
	description.Width = 40
	description.Focus()

	code := textinput.New()
	code.Placeholder = "01FF56D3 or ABC-DEF-GHI"
	code.CharLimit = 16
	code.Width = 40

	return cheatForm{inputs: []textinput.Model{description, code}}
}

func (f cheatForm) Update(msg tea.Msg) (cheatForm, tea.Cmd) {
	var cmd tea.Cmd
	f.inputs[f.focusIndex], cmd = f.inputs[f.focusIndex].Update(msg)
	return f, cmd
}

func (f cheatForm) updateFocus(key string) cheatForm {
	f.inputs[f.focusIndex].Blur()
	switch key {
	case "tab", "down":
		f.focusIndex++
		if f.focusIndex >= len(f.inputs) {
			f.focusIndex = 0
		}
	case "shift+tab", "up":
		f.focusIndex--
		if f.focusIndex < 0 {
			f.focusIndex = len(f.inputs) - 1
		}
	}
	f.inputs[f.focusIndex].Focus()
	return f
}

func (f cheatForm) values() (description, code string, err error) {
	description = strings.TrimSpace(f.inputs[0].Value())
	code = strings.TrimSpace(f.inputs[1].Value())
	if description == "" {
		return "", "", fmt.Errorf("description is required")
	}
	if code == "" {
		return "", "", fmt.Errorf("code is required")
	}
	return description, code, nil
}
