package gui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/qnkhuat/blockterm/pkg/mino"
)

// Terminal safe color palette is available here
// https://upload.wikimedia.org/wikipedia/commons/1/15/Xterm_256color_chart.svg

// Theme is used for coloring everything except the blocks, which carry their
// own color.
type Theme struct {
	Name    string
	Border  tcell.Color
	Empty   tcell.Color
	Label   tcell.Color
	Value   tcell.Color
	Paused  tcell.Color
	Blurred tcell.Color
}

// ThemeBasic is the default theme
var ThemeBasic = Theme{
	"basic",            // Name
	tcell.Color247,     // Border
	tcell.ColorDefault, // Empty
	tcell.Color247,     // Label
	tcell.ColorDefault, // Value
	tcell.Color226,     // Paused
	tcell.Color240,     // Blurred
}

func blockColor(c mino.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
