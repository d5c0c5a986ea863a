package game

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

var (
	shipColor        = color.RGBA{R: 90, G: 220, B: 110, A: 255}
	playerBoltColor  = color.RGBA{R: 255, G: 230, B: 40, A: 255}
	alienBoltColor   = color.RGBA{R: 170, G: 60, B: 220, A: 255}
	defenseLineColor = color.RGBA{R: 220, G: 40, B: 40, A: 255}
	alienEyeColor    = color.RGBA{R: 10, G: 10, B: 20, A: 255}
	playfieldColor   = color.RGBA{R: 6, G: 6, B: 14, A: 255}
	windowColor      = color.RGBA{R: 14, G: 14, B: 24, A: 255}
	borderColor      = color.RGBA{R: 60, G: 60, B: 110, A: 255}
)

// alienColors is indexed by alien variant: cyan, magenta, amber.
var alienColors = [...]color.RGBA{
	{R: 80, G: 220, B: 230, A: 255},
	{R: 230, G: 90, B: 200, A: 255},
	{R: 240, G: 180, B: 60, A: 255},
}

const (
	explosionShards = 8 // fragments drawn per frame
	sheetFrames     = 8 // frames in the 2x4 destruction sheet
)

// screenRenderer draws wave objects onto an ebiten image. World y grows
// upward, screen y grows downward, so every position is flipped against the
// playfield height.
type screenRenderer struct {
	dst       *ebiten.Image
	offX      float32
	offY      float32
	height    float64
	exploding bool
}

// rect converts a world rectangle to screen x, y, width and height.
func (r *screenRenderer) rect(b invaders.Rect) (x, y, w, h float32) {
	return r.offX + float32(b.Left), r.offY + float32(r.height-b.Top()), float32(b.Width), float32(b.Height)
}

func (r *screenRenderer) DrawShip(s *invaders.Ship) {
	x, y, w, h := r.rect(s.Bounds())
	if r.exploding {
		r.drawExplosion(x+w/2, y+h/2, w, s.Frame)
		return
	}
	// Hull, turret, barrel.
	vector.FillRect(r.dst, x, y+h*0.55, w, h*0.45, shipColor, false)
	vector.FillRect(r.dst, x+w*0.3, y+h*0.3, w*0.4, h*0.3, shipColor, false)
	vector.FillRect(r.dst, x+w*0.45, y, w*0.1, h*0.35, shipColor, false)
}

// drawExplosion renders sprite frame 0..7 of the destruction sequence as a
// ring of shards that spreads and fades.
func (r *screenRenderer) drawExplosion(cx, cy, size float32, frame int) {
	progress := float64(frame+1) / sheetFrames
	radius := float32(progress) * size * 0.8
	shard := size / 6 * float32(1-progress*0.6)
	fade := uint8(255 * (1 - progress*0.7))
	col := color.RGBA{R: 255, G: uint8(220 * (1 - progress)), B: 40, A: fade}
	for i := 0; i < explosionShards; i++ {
		a := float64(i)*2*math.Pi/explosionShards + float64(frame)*0.3
		sx := cx + radius*float32(math.Cos(a)) - shard/2
		sy := cy + radius*float32(math.Sin(a)) - shard/2
		vector.FillRect(r.dst, sx, sy, shard, shard, col, false)
	}
	if frame < 4 {
		vector.FillCircle(r.dst, cx, cy, size/4*float32(4-frame)/4, color.RGBA{R: 255, G: 255, B: 200, A: fade}, false)
	}
}

func (r *screenRenderer) DrawAlien(a *invaders.Alien) {
	x, y, w, h := r.rect(a.Bounds())
	col := alienColors[a.Variant%len(alienColors)]
	switch a.Variant % len(alienColors) {
	case 0: // squid: narrow head, wide tentacles
		vector.FillRect(r.dst, x+w*0.25, y, w*0.5, h*0.6, col, false)
		vector.FillRect(r.dst, x, y+h*0.6, w, h*0.15, col, false)
		for i := 0; i < 4; i++ {
			lx := x + w*(0.1+0.27*float32(i))
			vector.StrokeLine(r.dst, lx, y+h*0.75, lx, y+h, 2, col, false)
		}
	case 1: // crab: body with raised claws
		vector.FillRect(r.dst, x+w*0.1, y+h*0.2, w*0.8, h*0.55, col, false)
		vector.StrokeLine(r.dst, x, y, x+w*0.15, y+h*0.3, 2, col, false)
		vector.StrokeLine(r.dst, x+w, y, x+w*0.85, y+h*0.3, 2, col, false)
		vector.StrokeLine(r.dst, x+w*0.2, y+h*0.75, x+w*0.05, y+h, 2, col, false)
		vector.StrokeLine(r.dst, x+w*0.8, y+h*0.75, x+w*0.95, y+h, 2, col, false)
	default: // octopus: round dome
		vector.FillCircle(r.dst, x+w/2, y+h*0.45, w*0.45, col, false)
		vector.FillRect(r.dst, x+w*0.05, y+h*0.45, w*0.9, h*0.3, col, false)
		vector.StrokeLine(r.dst, x+w*0.2, y+h*0.75, x+w*0.1, y+h, 2, col, false)
		vector.StrokeLine(r.dst, x+w*0.5, y+h*0.75, x+w*0.5, y+h, 2, col, false)
		vector.StrokeLine(r.dst, x+w*0.8, y+h*0.75, x+w*0.9, y+h, 2, col, false)
	}
	vector.FillRect(r.dst, x+w*0.3, y+h*0.3, w*0.12, h*0.12, alienEyeColor, false)
	vector.FillRect(r.dst, x+w*0.58, y+h*0.3, w*0.12, h*0.12, alienEyeColor, false)
}

func (r *screenRenderer) DrawDefenseLine(y, width float64) {
	sy := r.offY + float32(r.height-y)
	vector.StrokeLine(r.dst, r.offX, sy, r.offX+float32(width), sy, 2, defenseLineColor, false)
}

func (r *screenRenderer) DrawBolt(b *invaders.Bolt) {
	col := alienBoltColor
	if b.IsPlayerOwned() {
		col = playerBoltColor
	}
	x, y, w, h := r.rect(b.Rect)
	vector.FillRect(r.dst, x, y, w, h, col, false)
}
