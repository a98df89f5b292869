package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEditing
)

const (
	headerHeight = 1
	footerHeight = 1

	// boxChromeWidth is border plus one column of padding on each side.
	boxChromeWidth  = 4
	boxChromeHeight = 2
	minBoxInner     = 3
)

// Style slots used by the canvas cell grid.
const (
	stylePlain = iota
	styleBorder
	styleBorderActive
	styleBorderDragged
	styleCursor
)
