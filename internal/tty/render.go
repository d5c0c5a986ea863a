package tty

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

var (
	shipStyle        = tcell.StyleDefault.Foreground(tcell.ColorGreen).Bold(true)
	explosionStyle   = tcell.StyleDefault.Foreground(tcell.ColorOrange)
	playerBoltStyle  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	alienBoltStyle   = tcell.StyleDefault.Foreground(tcell.ColorPurple)
	defenseLineStyle = tcell.StyleDefault.Foreground(tcell.ColorRed)
	textStyle        = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// alienGlyphs and alienStyles are indexed by alien variant.
var (
	alienGlyphs = [...]rune{'Ж', 'Ѫ', 'Ѡ'}
	alienStyles = [...]tcell.Style{
		tcell.StyleDefault.Foreground(tcell.ColorAqua),
		tcell.StyleDefault.Foreground(tcell.ColorFuchsia),
		tcell.StyleDefault.Foreground(tcell.ColorYellow),
	}
)

// explosionGlyphs animates the eight destruction frames.
var explosionGlyphs = [...]rune{'#', '%', '*', '*', '+', '+', '.', '.'}

// cellRenderer draws a wave onto a cols x rows block of terminal cells.
// The playfield is scaled to fit and y is flipped so row 0 is the top.
type cellRenderer struct {
	screen     tcell.Screen
	cols, rows int
	width      float64 // playfield width in world units
	height     float64
	exploding  bool
}

// cell maps a world point to a terminal cell, clamped to the grid.
func (r *cellRenderer) cell(x, y float64) (int, int) {
	cx := int(x / r.width * float64(r.cols))
	cy := int((r.height - y) / r.height * float64(r.rows))
	return clamp(cx, 0, r.cols-1), clamp(cy, 0, r.rows-1)
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// fill sets every cell touched by b.
func (r *cellRenderer) fill(b invaders.Rect, ch rune, style tcell.Style) {
	x0, y0 := r.cell(b.Left, b.Top())
	x1, y1 := r.cell(b.Right(), b.Bottom)
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			r.screen.SetContent(x, y, ch, nil, style)
		}
	}
}

func (r *cellRenderer) DrawShip(s *invaders.Ship) {
	if r.exploding {
		g := explosionGlyphs[clamp(s.Frame, 0, len(explosionGlyphs)-1)]
		r.fill(s.Bounds(), g, explosionStyle)
		return
	}
	b := s.Bounds()
	x0, y := r.cell(b.Left, b.Bottom)
	x1, _ := r.cell(b.Right(), b.Bottom)
	for x := x0; x <= x1; x++ {
		r.screen.SetContent(x, y, '▀', nil, shipStyle)
	}
	cx, cy := r.cell(s.X, b.Top())
	if cy < y {
		r.screen.SetContent(cx, cy, '▲', nil, shipStyle)
	}
}

func (r *cellRenderer) DrawAlien(a *invaders.Alien) {
	v := a.Variant % len(alienGlyphs)
	cx, cy := r.cell(a.Left+a.Width/2, a.Top-a.Height/2)
	r.screen.SetContent(cx, cy, alienGlyphs[v], nil, alienStyles[v])
}

func (r *cellRenderer) DrawDefenseLine(y, width float64) {
	_, cy := r.cell(0, y)
	x1, _ := r.cell(width, y)
	for x := 0; x <= x1; x++ {
		r.screen.SetContent(x, cy, '─', nil, defenseLineStyle)
	}
}

func (r *cellRenderer) DrawBolt(b *invaders.Bolt) {
	style := alienBoltStyle
	if b.IsPlayerOwned() {
		style = playerBoltStyle
	}
	cx, cy := r.cell(b.Left+b.Width/2, b.Bottom+b.Height/2)
	r.screen.SetContent(cx, cy, '|', nil, style)
}

// drawText writes s starting at column x of row y.
func drawText(screen tcell.Screen, x, y int, s string, style tcell.Style) {
	for _, ch := range s {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
