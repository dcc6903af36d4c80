package tui

import tea "github.com/charmbracelet/bubbletea"

type configMenuItem struct{}

func (configMenuItem) Title() string {
	return "Edit config"
}

func (configMenuItem) Description() string {
	return "ROM library, cheats directory, emulator command"
}

func (configMenuItem) OnSelect(m *model) (tea.Model, tea.Cmd) {
	m.configForm = newConfigForm(m.cfg)
	m.state = stateConfig
	return *m, nil
}
