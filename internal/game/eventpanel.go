package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

const (
	panelWidth      = 300
	panelMaxEntries = 60
	panelLineHeight = 14
)

// categoryColors tags each event category in the panel.
var categoryColors = map[string]color.RGBA{
	invaders.CatShip:      {R: 90, G: 220, B: 110, A: 255},
	invaders.CatAlien:     {R: 80, G: 220, B: 230, A: 255},
	invaders.CatBolt:      {R: 255, G: 230, B: 40, A: 255},
	invaders.CatFormation: {R: 170, G: 60, B: 220, A: 255},
	invaders.CatWave:      {R: 220, G: 40, B: 40, A: 255},
	invaders.CatState:     {R: 200, G: 200, B: 200, A: 255},
}

// eventPanel is a ring buffer of the latest wave events rendered beside the
// playfield. It follows an EventLog and copies whatever was added since the
// previous sync.
type eventPanel struct {
	entries []invaders.Event
	head    int
	count   int
	seen    int // log entries already copied
}

func newEventPanel() *eventPanel {
	return &eventPanel{entries: make([]invaders.Event, panelMaxEntries)}
}

func (p *eventPanel) add(e invaders.Event) {
	p.entries[p.head] = e
	p.head = (p.head + 1) % panelMaxEntries
	if p.count < panelMaxEntries {
		p.count++
	}
}

// sync copies new log entries into the panel.
func (p *eventPanel) sync(log *invaders.EventLog) {
	all := log.Entries()
	for _, e := range all[p.seen:] {
		p.add(e)
	}
	p.seen = len(all)
}

// recent returns entries oldest first.
func (p *eventPanel) recent() []invaders.Event {
	out := make([]invaders.Event, p.count)
	for i := 0; i < p.count; i++ {
		out[i] = p.entries[(p.head-p.count+i+panelMaxEntries)%panelMaxEntries]
	}
	return out
}

func (p *eventPanel) draw(screen *ebiten.Image, panelX, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, panelWidth, float32(panelH), color.RGBA{R: 10, G: 10, B: 18, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1, borderColor, false)
	vector.FillRect(screen, float32(panelX), 0, panelWidth, 16, color.RGBA{R: 20, G: 20, B: 40, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "EVENT LOG", panelX+8, 0)

	entries := p.recent()
	maxVisible := (panelH - 24) / panelLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}
	y := 20
	for i, e := range entries {
		if i >= len(entries)-3 {
			vector.FillRect(screen, float32(panelX+2), float32(y), panelWidth-4, panelLineHeight, color.RGBA{R: 30, G: 30, B: 55, A: 160}, false)
		}
		if col, ok := categoryColors[e.Category]; ok {
			vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, col, false)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%5d %s %s", e.Tick, e.Key, e.Value), panelX+12, y)
		y += panelLineHeight
	}
}
