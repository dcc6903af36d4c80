package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rivergale/cheatdeck/internal/config"
)

type configField struct {
	key      string
	label    string
	required bool
}

type configForm struct {
	fields     []configField
	inputs     []textinput.Model
	focusIndex int
	errMsg     string
}

func newConfigForm(cfg *config.Config) configForm {
	fields := []configField{
		{key: "library.roms_dir", label: "ROMs directory", required: true},
		{key: "library.cheats_dir", label: "Cheats directory", required: true},
		{key: "emulator.command", label: "Emulator command"},
		{key: "emulator.args", label: "Emulator args (comma)"},
		{key: "log.file", label: "Log file"},
	}

	inputs := make([]textinput.Model, len(fields))
	for i, field := range fields {
		input := textinput.New()
		input.CharLimit = 512
		input.Width = 50
		input.SetValue(getFieldValue(cfg, field.key))
		inputs[i] = input
	}

	if len(inputs) > 0 {
		inputs[0].Focus()
	}

	return configForm{fields: fields, inputs: inputs, focusIndex: 0}
}

func (f configForm) Update(msg tea.Msg) (configForm, tea.Cmd) {
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focusIndex {
			f.inputs[i], cmd = f.inputs[i].Update(msg)
			return f, cmd
		}
	}
	return f, nil
}

func (f configForm) updateFocus(key string) configForm {
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

func (f configForm) toConfig() (*config.Config, error) {
	cfg := config.Default()
	for i, field := range f.fields {
		value := strings.TrimSpace(f.inputs[i].Value())
		if field.required && value == "" {
			return nil, fmt.Errorf("%s is required", field.label)
		}
		setFieldValue(cfg, field.key, value)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func getFieldValue(cfg *config.Config, key string) string {
	switch key {
	case "library.roms_dir":
		return cfg.Library.ROMsDir
	case "library.cheats_dir":
		return cfg.Library.CheatsDir
	case "emulator.command":
		return cfg.Emulator.Command
	case "emulator.args":
		return strings.Join(cfg.Emulator.Args, ",")
	case "log.file":
		return cfg.Log.File
	default:
		return ""
	}
}

func setFieldValue(cfg *config.Config, key, value string) {
	switch key {
	case "library.roms_dir":
		cfg.Library.ROMsDir = value
	case "library.cheats_dir":
		cfg.Library.CheatsDir = value
	case "emulator.command":
		cfg.Emulator.Command = value
	case "emulator.args":
		cfg.Emulator.Args = splitCSV(value)
	case "log.file":
		if value != "" {
			cfg.Log.File = value
		}
	}
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
