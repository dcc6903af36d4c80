package tui

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/rivergale/cheatdeck/internal/cheat"
	"github.com/rivergale/cheatdeck/internal/config"
	"github.com/rivergale/cheatdeck/internal/engine"
	"github.com/rivergale/cheatdeck/internal/library"
	"github.com/rivergale/cheatdeck/internal/store"
)

type appState int

const (
	stateMenu appState = iota
	stateCheats
	stateAddCheat
	stateConfig
	stateLogs
)

type taskDoneMsg struct {
	label string
	err   error
}

type logTailMsg struct {
	line string
}

type model struct {
	state        appState
	menu         list.Model
	menuStack    []list.Model
	panel        *cheatPanel
	addForm      cheatForm
	configForm   configForm
	spinner      spinner.Model
	logger       *zap.Logger
	logWriter    io.Writer
	logCloser    io.Closer
	logPath      string
	configPath   string
	cfg          *config.Config
	busy         bool
	busyLabel    string
	windowWidth  int
	windowHeight int
	lastError    string
	lastLogLine  string
}

func Run() {
	p := tea.NewProgram(newModel(), tea.WithAltScreen())
	if err := p.Start(); err != nil {
		fmt.Println("TUI error:", err)
		os.Exit(1)
	}
}

func newModel() model {
	menu := newMenuModel(rootMenuEntries())

	spin := spinner.New()
	spin.Spinner = spinner.Line

	configPath := defaultConfigPath()
	cfg := loadConfigOrDefault(configPath)

	logger, logWriter, logCloser, logPath, logErr := newLogger(cfg.Log.File)

	m := model{
		state:      stateMenu,
		menu:       menu,
		spinner:    spin,
		logger:     logger,
		logWriter:  logWriter,
		logCloser:  logCloser,
		logPath:    logPath,
		configPath: configPath,
		cfg:        cfg,
	}

	if logErr != nil {
		m.lastError = logErr.Error()
	}
	return m
}

func (m model) Init() tea.Cmd {
	return tickLogTail(m.logPath)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.state {
		case stateMenu:
			return m.updateMenu(msg)
		case stateCheats:
			return m.updateCheats(msg)
		case stateAddCheat:
			return m.updateAddCheat(msg)
		case stateConfig:
			return m.updateConfig(msg)
		case stateLogs:
			return m.updateLogScreen(msg)
		}
	case tea.WindowSizeMsg:
		m.windowWidth = msg.Width
		m.windowHeight = msg.Height
		m.resizeMenus(msg.Width, msg.Height)
		if m.panel != nil {
			m.panel.rows.SetSize(msg.Width, menuHeight(msg.Height))
		}
	case spinner.TickMsg:
		if m.busy {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	case logTailMsg:
		if msg.line != "" {
			m.lastLogLine = msg.line
		}
		return m, tickLogTail(m.logPath)
	case taskDoneMsg:
		m.busy = false
		m.busyLabel = ""
		if msg.err != nil {
			m.lastError = msg.label + ": " + msg.err.Error()
		} else {
			m.lastError = ""
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateMenu:
		if m.busy {
			return m, nil
		}
		m.menu, cmd = m.menu.Update(msg)
	case stateCheats:
		m.panel.rows, cmd = m.panel.rows.Update(msg)
	case stateAddCheat:
		m.addForm, cmd = m.addForm.Update(msg)
	case stateConfig:
		m.configForm, cmd = m.configForm.Update(msg)
	case stateLogs:
		return m, nil
	}

	return m, cmd
}

func (m model) View() string {
	switch m.state {
	case stateCheats:
		return m.viewCheats()
	case stateAddCheat:
		return m.viewAddCheat()
	case stateConfig:
		return m.viewConfig()
	case stateLogs:
		return m.viewLogScreen()
	default:
		return m.viewMenu()
	}
}

func (m model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.closeLogFile()
		return m, tea.Quit
	case "esc":
		m.popMenu()
		return m, nil
	case "enter":
		if m.busy {
			m.lastError = "busy: " + m.busyLabel
			return m, nil
		}
		item, ok := m.menu.SelectedItem().(menuListItem)
		if !ok {
			return m, nil
		}
		return item.entry.OnSelect(&m)
	}

	var cmd tea.Cmd
	m.menu, cmd = m.menu.Update(msg)
	return m, cmd
}

func (m model) updateCheats(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		m.closeLogFile()
		return m, tea.Quit
	case "esc", "q":
		m.panel = nil
		m.state = stateMenu
		return m, nil
	case " ", "enter":
		if item, ok := m.panel.selected(); ok {
			m.panel.toggle(item.entry.ID)
		}
		return m, nil
	case "d", "x":
		if item, ok := m.panel.selected(); ok {
			m.panel.remove(item.entry.ID)
		}
		return m, nil
	case "a":
		m.addForm = newCheatForm()
		m.state = stateAddCheat
		return m, nil
	case "c":
		if item, ok := m.panel.selected(); ok {
			if err := clipboard.WriteAll(item.entry.Code); err != nil {
				m.lastError = err.Error()
			} else {
				m.panel.status = "code copied to clipboard"
			}
		}
		return m, nil
	case "l":
		return m.launchEmulator()
	}

	var cmd tea.Cmd
	m.panel.rows, cmd = m.panel.rows.Update(msg)
	return m, cmd
}

func (m model) updateAddCheat(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateCheats
		return m, nil
	case "enter":
		if m.addForm.focusIndex == len(m.addForm.inputs)-1 {
			description, code, err := m.addForm.values()
			if err != nil {
				m.addForm.errMsg = err.Error()
				return m, nil
			}
			m.panel.add(description, code)
			m.state = stateCheats
			return m, nil
		}
		m.addForm = m.addForm.updateFocus("tab")
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.addForm = m.addForm.updateFocus(msg.String())
		return m, nil
	}

	var cmd tea.Cmd
	m.addForm, cmd = m.addForm.Update(msg)
	return m, cmd
}

func (m model) updateConfig(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = stateMenu
		return m, nil
	case "enter":
		if m.configForm.focusIndex == len(m.configForm.inputs)-1 {
			cfg, err := m.configForm.toConfig()
			if err != nil {
				m.configForm.errMsg = err.Error()
				return m, nil
			}
			if err := writeConfig(m.configPath, cfg); err != nil {
				m.configForm.errMsg = err.Error()
				return m, nil
			}
			m.cfg = cfg
			m.lastError = ""
			m.state = stateMenu
			return m, nil
		}
		m.configForm = m.configForm.updateFocus("tab")
		return m, nil
	case "tab", "shift+tab", "up", "down":
		m.configForm = m.configForm.updateFocus(msg.String())
		return m, nil
	}

	var cmd tea.Cmd
	m.configForm, cmd = m.configForm.Update(msg)
	return m, cmd
}

func (m model) updateLogScreen(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.state = stateMenu
		return m, nil
	}

	return m, nil
}

func (m *model) openCheatPanel(rom library.ROM) (tea.Model, tea.Cmd) {
	st := store.New(m.cfg.Library.CheatsDir)
	cheats, err := st.Load(rom.Path)
	if err != nil {
		m.lastError = err.Error()
		return *m, nil
	}

	romData, err := os.ReadFile(rom.Path)
	if err != nil {
		m.logger.Warn("read ROM for cheat engine", zap.String("rom", rom.Path), zap.Error(err))
	}
	eng := engine.NewMemEngine(m.logger, engine.NewBus(romData))

	persist := func(l *cheat.List) error {
		return st.Persist(rom.Path, l)
	}

	m.panel = newCheatPanel(rom, cheats, eng, persist, m.logger)
	m.panel.rows.SetSize(m.windowWidth, menuHeight(m.windowHeight))
	m.state = stateCheats
	return *m, nil
}

func (m model) launchEmulator() (tea.Model, tea.Cmd) {
	if m.cfg.Emulator.Command == "" {
		m.lastError = "emulator.command is not configured"
		return m, nil
	}
	if m.busy {
		m.lastError = "busy: " + m.busyLabel
		return m, nil
	}
	m.busy = true
	m.busyLabel = "Emulator"
	return m, tea.Batch(m.runLaunchCmd(m.panel.rom.Path), m.spinner.Tick)
}

func (m model) runLaunchCmd(romPath string) tea.Cmd {
	return func() tea.Msg {
		if err := runCommandStreaming(m.logWriter, emulatorCommand(m.cfg, romPath)); err != nil {
			return taskDoneMsg{label: "Emulator", err: err}
		}
		return taskDoneMsg{label: "Emulator", err: nil}
	}
}

func (m *model) closeLogFile() {
	if m.logCloser != nil {
		_ = m.logCloser.Close()
		m.logCloser = nil
	}
}
