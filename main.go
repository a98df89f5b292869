package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"boxedit/internal/document"
	"boxedit/internal/editor"
	"boxedit/internal/logger"
)

func main() {
	configPath := flag.String("config", "", fmt.Sprintf("Path to TOML configuration file (default %s)", defaultConfigPath()))
	logLevel := flag.String("loglevel", "", "Log level (debug, info, warn, error) - overrides config file")
	logFile := flag.String("logfile", "", "Path to write log file (use '-' for stderr) - overrides config file")
	typing := flag.String("typing", "", "Undo granularity for typing: edit or keystroke - overrides config file")
	flag.Parse()

	path := *configPath
	if path == "" {
		path = defaultConfigPath()
	}
	cfg, warnings, err := loadConfig(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "loglevel":
			cfg.Logger.Level = *logLevel
		case "logfile":
			cfg.Logger.File = *logFile
		case "typing":
			cfg.Editor.Typing = *typing
		}
	})
	warnings = append(warnings, cfg.validate()...)

	out, closeLog, err := logger.Open(cfg.Logger.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
	defer closeLog()
	logger.Init(logger.ParseLevel(cfg.Logger.Level), out)
	for _, w := range warnings {
		logger.Warnf("config %s: %s", path, w)
	}
	logger.Infof("starting, typing=%s history_limit=%d", cfg.TypingMode(), cfg.Editor.HistoryLimit)

	m := initialModel(cfg)
	defer m.editor.Close()
	p := tea.NewProgram(
		m,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Errorf("program exited: %v", err)
		fmt.Fprintf(os.Stderr, "%s: %v\n", appName, err)
		os.Exit(1)
	}
}

func initialModel(cfg *Config) model {
	m := model{
		mode:   ModeNormal,
		config: cfg,
		editor: editor.New(
			editor.WithHistoryLimit(cfg.Editor.HistoryLimit),
			editor.WithTypingMode(cfg.TypingMode()),
			editor.WithLogger(logger.Get()),
		),
	}
	if cfg.Editor.SystemClipboard {
		m.readClipboard = readSystemClipboard
		m.writeClipboard = writeSystemClipboard
	}
	return m
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case exportDoneMsg:
		m.handleExportDone(msg)
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		m.errorMessage = ""
		m.successMessage = ""
		if m.help {
			switch msg.String() {
			case "esc", "q", "?":
				m.help = false
			}
			return m, nil
		}
		if m.mode == ModeEditing {
			m.handleEditKey(msg)
			return m, nil
		}
		return m.handleNormalKey(msg)
	}
	return m, nil
}

func (m *model) handleMouse(msg tea.MouseMsg) {
	at := m.screenToCanvas(msg.X, msg.Y)
	switch msg.Type {
	case tea.MouseLeft:
		if m.editor.Dragging() {
			m.editor.PointerMove(at)
			return
		}
		if msg.Y < headerHeight || msg.Y >= headerHeight+m.canvasRows() {
			return
		}
		id := m.boxAt(msg.X, msg.Y)
		if m.mode == ModeEditing && id != m.editor.EditingID() {
			m.leaveEditMode()
		}
		m.editor.PointerDown(id, at)
	case tea.MouseMotion:
		m.editor.PointerMove(at)
	case tea.MouseRelease:
		if m.editor.PointerUp() {
			logger.Debugf("drag committed")
		}
	}
}

func (m model) handleNormalKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "?":
		m.help = true
	case "a":
		m.editor.AddBox()
	case "u", "ctrl+z":
		m.undo()
	case "r", "ctrl+y":
		m.redo()
	case "tab":
		m.editor.CycleSelection()
	case "esc":
		m.editor.SetActive(document.NoID)
	case "b":
		m.requireActive(m.editor.ToggleBold())
	case "i":
		m.requireActive(m.editor.ToggleItalic())
	case "_":
		m.requireActive(m.editor.ToggleUnderline())
	case "f":
		m.requireActive(m.editor.CycleFontFamily())
	case "+", "=":
		m.requireActive(m.editor.StepFontSize(1))
	case "-":
		m.requireActive(m.editor.StepFontSize(-1))
	case "<":
		m.requireActive(m.editor.SetAlignment(document.AlignLeft))
	case "|":
		m.requireActive(m.editor.SetAlignment(document.AlignCenter))
	case ">":
		m.requireActive(m.editor.SetAlignment(document.AlignRight))
	case "e", "enter":
		m.enterEditMode()
	case "y":
		m.copyActive()
	case "p":
		m.pasteIntoActive()
	case "x":
		if len(m.editor.Document()) == 0 {
			m.errorMessage = "Nothing to export"
			return m, nil
		}
		return m, m.exportPNG()
	case "h", "j", "k", "l", "left", "right", "up", "down",
		"H", "J", "K", "L", "shift+left", "shift+right", "shift+up", "shift+down":
		m.handleNudge(key, m.getMoveSpeed(key))
	}
	return m, nil
}

func (m *model) requireActive(ok bool) {
	if !ok {
		m.successMessage = "No box selected"
	}
}

func (m *model) enterEditMode() {
	id := m.editor.ActiveID()
	if !m.editor.BeginEdit(id) {
		m.successMessage = "No box selected"
		return
	}
	b, _ := m.editor.Box(id)
	m.mode = ModeEditing
	m.editCursor = len([]rune(b.Content))
}

func (m *model) handleEditKey(msg tea.KeyMsg) {
	id := m.editor.EditingID()
	b, ok := m.editor.Box(id)
	if !ok {
		m.leaveEditMode()
		return
	}
	runes := []rune(b.Content)
	if m.editCursor > len(runes) {
		m.editCursor = len(runes)
	}

	insert := func(rs []rune) {
		next := make([]rune, 0, len(runes)+len(rs))
		next = append(next, runes[:m.editCursor]...)
		next = append(next, rs...)
		next = append(next, runes[m.editCursor:]...)
		m.editCursor += len(rs)
		m.editor.Type(id, string(next))
	}

	switch msg.String() {
	case "enter", "esc":
		if m.editor.EndEdit() {
			m.successMessage = "Edit committed"
		}
		m.leaveEditMode()
	case "alt+enter", "ctrl+j":
		insert([]rune{'\n'})
	case "backspace":
		if m.editCursor > 0 {
			next := append(append([]rune{}, runes[:m.editCursor-1]...), runes[m.editCursor:]...)
			m.editCursor--
			m.editor.Type(id, string(next))
		}
	case "delete":
		if m.editCursor < len(runes) {
			next := append(append([]rune{}, runes[:m.editCursor]...), runes[m.editCursor+1:]...)
			m.editor.Type(id, string(next))
		}
	case "left":
		if m.editCursor > 0 {
			m.editCursor--
		}
	case "right":
		if m.editCursor < len(runes) {
			m.editCursor++
		}
	case "home", "ctrl+a":
		m.editCursor = 0
	case "end", "ctrl+e":
		m.editCursor = len(runes)
	case "ctrl+z":
		m.undo()
	case "ctrl+y":
		m.redo()
	default:
		switch msg.Type {
		case tea.KeySpace:
			insert([]rune{' '})
		case tea.KeyRunes:
			insert(msg.Runes)
		}
	}
}

func (m *model) copyActive() {
	b, ok := m.editor.ActiveBox()
	if !ok {
		m.successMessage = "No box selected"
		return
	}
	m.clipboard = b.Content
	if m.writeClipboard != nil {
		if err := m.writeClipboard(b.Content); err != nil {
			logger.Warnf("system clipboard write failed: %v", err)
		}
	}
	m.successMessage = "Copied"
}

func (m *model) pasteIntoActive() {
	b, ok := m.editor.ActiveBox()
	if !ok {
		m.successMessage = "No box selected"
		return
	}
	text := m.clipboard
	if m.readClipboard != nil {
		if sys, err := m.readClipboard(); err == nil && sys != "" {
			text = sys
		} else if err != nil {
			logger.Warnf("system clipboard read failed: %v", err)
		}
	}
	text = cleanClipboardText(text)
	if text == "" {
		m.errorMessage = "Clipboard is empty"
		return
	}
	m.editor.UpdateBox(b.ID, document.SetContent(text))
	m.successMessage = "Pasted"
}
