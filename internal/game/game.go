// Package game runs an Alien Invaders session in an ebiten window.
package game

import (
	"fmt"
	"log"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

// borderWidth is the pixel gap between the window edge and the playfield.
const borderWidth = 24

// noticeDuration is how many ticks a HUD notice stays visible.
const noticeDuration = 120

// Game is an ebiten.Game that plays one session in a window beside an
// event log panel.
type Game struct {
	cfg     invaders.Config
	seed    int64
	session *invaders.Session
	events  *invaders.EventLog
	panel   *eventPanel

	width  int
	height int
	offX   int // pixel offset from window left to playfield left
	offY   int // pixel offset from window top to playfield top

	showHUD   bool // key legend
	showPanel bool // event log panel
	prevKeys  map[ebiten.Key]bool
	keyBuf    []ebiten.Key
	lastState invaders.State

	notice      string
	noticeTicks int

	// copyText puts the end-of-wave report on the clipboard.
	copyText func(string) error
}

// New creates a game for cfg, seeding the wave's randomness with seed.
func New(cfg invaders.Config, seed int64) (*Game, error) {
	events := invaders.NewEventLog(false)
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	session, err := invaders.NewSession(cfg, rng, invaders.WithSessionLog(events))
	if err != nil {
		return nil, fmt.Errorf("new game: %w", err)
	}
	g := &Game{
		cfg:       cfg,
		seed:      seed,
		session:   session,
		events:    events,
		panel:     newEventPanel(),
		width:     borderWidth + int(cfg.GameWidth) + borderWidth + panelWidth,
		height:    borderWidth + int(cfg.GameHeight) + borderWidth,
		offX:      borderWidth,
		offY:      borderWidth,
		showHUD:   true,
		showPanel: true,
		prevKeys:  make(map[ebiten.Key]bool),
		lastState: session.State(),
		copyText:  copyToClipboard,
	}
	return g, nil
}

// Update reads the keyboard and steps the session one frame.
func (g *Game) Update() error {
	g.keyBuf = pollKeys(g.keyBuf)
	g.handleInput(g.keyBuf)

	dt := 1 / float64(ebiten.TPS())
	if err := g.session.Step(snapshotKeys(g.keyBuf), dt); err != nil {
		return err
	}
	if st := g.session.State(); st != g.lastState {
		log.Printf("state %s -> %s", g.lastState, st)
		if st == invaders.StateComplete {
			log.Printf("wave over: %s", g.session.Outcome())
		}
		g.lastState = st
	}
	g.panel.sync(g.events)
	if g.noticeTicks > 0 {
		g.noticeTicks--
	}
	return nil
}

// handleInput processes window toggles (edge-triggered). Gameplay keys are
// read by the session from the same snapshot.
func (g *Game) handleInput(pressed []ebiten.Key) {
	currentKeys := make(map[ebiten.Key]bool, len(pressed))
	for _, k := range pressed {
		currentKeys[k] = true
	}
	justPressed := func(k ebiten.Key) bool { return currentKeys[k] && !g.prevKeys[k] }

	// Tab: toggle the event log panel.
	if justPressed(ebiten.KeyTab) {
		g.showPanel = !g.showPanel
	}
	// H: toggle the key legend.
	if justPressed(ebiten.KeyH) {
		g.showHUD = !g.showHUD
	}
	// C: copy the wave report once the wave is over.
	if justPressed(ebiten.KeyC) && g.session.State() == invaders.StateComplete {
		g.copyReport()
	}

	g.prevKeys = currentKeys
}

func (g *Game) setNotice(msg string) {
	g.notice = msg
	g.noticeTicks = noticeDuration
}

// Draw renders the playfield, messages, HUD and panel.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowColor)

	ox := float32(g.offX)
	oy := float32(g.offY)
	gw := float32(g.cfg.GameWidth)
	gh := float32(g.cfg.GameHeight)
	vector.FillRect(screen, ox-2, oy-2, gw+4, gh+4, borderColor, false)
	vector.FillRect(screen, ox, oy, gw, gh, playfieldColor, false)

	r := &screenRenderer{
		dst:    screen,
		offX:   ox,
		offY:   oy,
		height: g.cfg.GameHeight,
	}
	if w := g.session.Wave(); w != nil {
		r.exploding = w.Exploding()
	}
	g.session.Draw(r)

	g.drawMessage(screen, g.session.Message())
	g.drawHUD(screen)

	if g.showPanel {
		g.panel.draw(screen, g.offX+int(g.cfg.GameWidth)+borderWidth, g.height)
	}
}

// Layout keeps a fixed logical size regardless of the window.
func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Size returns the window size the game lays out for.
func (g *Game) Size() (int, int) {
	return g.width, g.height
}
