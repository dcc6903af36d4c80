package tui

func rootMenuEntries() []menuEntry {
	return []menuEntry{
		cheatsMenuItem{},
		configMenuItem{},
		viewLogsMenuItem{},
		quitMenuItem{},
	}
}
