package main

import "boxedit/internal/editor"

type model struct {
	width  int
	height int
	mode   Mode
	help   bool

	editor *editor.Editor
	config *Config

	// editCursor is a rune offset into the edited box's content.
	editCursor int

	// clipboard backs copy/paste when the system clipboard is disabled or
	// unavailable.
	clipboard string

	errorMessage   string
	successMessage string

	readClipboard  func() (string, error)
	writeClipboard func(string) error
}

type exportDoneMsg struct {
	path string
	err  error
}
