// Package tcellui drives the game directly on the terminal through tcell,
// without the Bubble Tea runtime.
package tcellui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/vovakirdan/tui-rockfall/internal/core"
)

// palette maps core colors to the same 256-color indices the Bubble Tea
// renderer uses.
var palette = map[core.Color]tcell.Style{
	core.ColorDefault:     tcell.StyleDefault,
	core.ColorRed:         tcell.StyleDefault.Foreground(tcell.PaletteColor(1)),
	core.ColorYellow:      tcell.StyleDefault.Foreground(tcell.PaletteColor(3)),
	core.ColorCyan:        tcell.StyleDefault.Foreground(tcell.PaletteColor(6)),
	core.ColorWhite:       tcell.StyleDefault.Foreground(tcell.PaletteColor(7)),
	core.ColorBrightRed:   tcell.StyleDefault.Foreground(tcell.PaletteColor(9)),
	core.ColorBrightCyan:  tcell.StyleDefault.Foreground(tcell.PaletteColor(14)),
	core.ColorBrightWhite: tcell.StyleDefault.Foreground(tcell.PaletteColor(15)).Bold(true),
	core.ColorOrange:      tcell.StyleDefault.Foreground(tcell.PaletteColor(208)),
	core.ColorGray:        tcell.StyleDefault.Foreground(tcell.PaletteColor(245)),
}

// StyleFor returns the tcell style for a core color.
func StyleFor(c core.Color) tcell.Style {
	if s, ok := palette[c]; ok {
		return s
	}
	return tcell.StyleDefault
}

// Surface adapts a tcell.Screen to core.Surface.
// Cells are written to tcell's back buffer and become visible on Commit.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps an initialized screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// SetCell writes a single cell. Out-of-range cells are ignored by tcell.
func (s *Surface) SetCell(x, y int, r rune, c core.Color) {
	s.screen.SetContent(x, y, r, nil, StyleFor(c))
}

// Commit flushes pending cells to the terminal.
func (s *Surface) Commit() {
	s.screen.Show()
}
