package main

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"boxedit/internal/export"
	"boxedit/internal/logger"
)

// exportPNG snapshots the document and renders it off the event loop.
func (m *model) exportPNG() tea.Cmd {
	doc := m.editor.Document()
	name := fmt.Sprintf("%s-%s.png", m.config.Export.Filename, time.Now().Format("20060102-150405"))
	path, err := m.config.GetSavePath(name)
	if err != nil {
		return func() tea.Msg { return exportDoneMsg{err: err} }
	}
	opts := export.DefaultOptions()
	opts.Borders = m.config.Export.Borders
	return func() tea.Msg {
		if err := export.PNG(doc, path, opts); err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		return exportDoneMsg{path: path}
	}
}

func (m *model) handleExportDone(msg exportDoneMsg) {
	if msg.err != nil {
		logger.Errorf("export %s: %v", msg.path, msg.err)
		m.errorMessage = fmt.Sprintf("Export failed: %v", msg.err)
		return
	}
	logger.Infof("exported %s", msg.path)
	m.successMessage = "Exported " + msg.path
}
