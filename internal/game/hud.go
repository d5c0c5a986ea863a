package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

// messageScale enlarges the 7x13 bitmap font for state messages.
const messageScale = 3

var (
	messageFace  = text.NewGoXFace(basicfont.Face7x13)
	messageColor = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	messageShade = color.RGBA{R: 0, G: 0, B: 0, A: 170}
)

// drawMessage centres msg over the playfield.
func (g *Game) drawMessage(screen *ebiten.Image, msg string) {
	if msg == "" {
		return
	}
	w, h := text.Measure(msg, messageFace, 0)
	w *= messageScale
	h *= messageScale
	cx := float64(g.offX) + float64(g.cfg.GameWidth)/2
	cy := float64(g.offY) + float64(g.cfg.GameHeight)/2

	pad := 12.0
	vector.FillRect(screen, float32(cx-w/2-pad), float32(cy-h/2-pad), float32(w+2*pad), float32(h+2*pad), messageShade, false)

	op := &text.DrawOptions{}
	op.GeoM.Scale(messageScale, messageScale)
	op.GeoM.Translate(cx-w/2, cy-h/2)
	op.ColorScale.ScaleWithColor(messageColor)
	text.Draw(screen, msg, messageFace, op)
}

// drawHUD prints lives, state and the key legend above the playfield.
func (g *Game) drawHUD(screen *ebiten.Image) {
	lives := g.cfg.Lives
	aliens := g.cfg.AlienRows * g.cfg.AliensInRow
	if w := g.session.Wave(); w != nil {
		lives = w.Lives()
		aliens = w.Formation().Remaining()
	}
	status := fmt.Sprintf("LIVES %d   ALIENS %d   STATE %s   SEED %d", lives, aliens, g.session.State(), g.seed)
	ebitenutil.DebugPrintAt(screen, status, g.offX, 4)

	if g.showHUD {
		legend := "[<-/A] left  [->/D] right  [UP/W/SPACE] fire  [TAB] event log  [H] hide legend"
		if g.session.State() == invaders.StateComplete {
			legend += "  [C] copy report"
		}
		ebitenutil.DebugPrintAt(screen, legend, g.offX, g.offY+int(g.cfg.GameHeight)+6)
	}
	if g.notice != "" && g.noticeTicks > 0 {
		ebitenutil.DebugPrintAt(screen, g.notice, g.offX+int(g.cfg.GameWidth)-len(g.notice)*6-4, 4)
	}
}
