package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rivergale/cheatdeck/internal/library"
)

type cheatsMenuItem struct{}

func (cheatsMenuItem) Title() string {
	return "Cheats"
}

func (cheatsMenuItem) Description() string {
	return "Browse ROMs and manage their cheat lists"
}

func (cheatsMenuItem) OnSelect(m *model) (tea.Model, tea.Cmd) {
	roms, err := library.Scan(m.cfg.Library.ROMsDir)
	if err != nil {
		m.lastError = err.Error()
		return *m, nil
	}
	if len(roms) == 0 {
		m.lastError = "no ROMs found in " + m.cfg.Library.ROMsDir
		return *m, nil
	}

	entries := make([]menuEntry, len(roms))
	for i, rom := range roms {
		entries[i] = romMenuItem{rom: rom}
	}
	m.pushMenu(newMenuModel(entries))
	return *m, nil
}

type romMenuItem struct {
	rom library.ROM
}

func (r romMenuItem) Title() string {
	return r.rom.Title
}

func (r romMenuItem) Description() string {
	return r.rom.Path
}

func (r romMenuItem) OnSelect(m *model) (tea.Model, tea.Cmd) {
	return m.openCheatPanel(r.rom)
}
