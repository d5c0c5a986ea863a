package main

import (
	"context"
	"log"
	"math/rand"
	"os"
	"os/signal"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/Alien-Invaders/internal/config"
	"github.com/Garsondee/Alien-Invaders/internal/invaders"
	"github.com/Garsondee/Alien-Invaders/internal/tty"
)

func main() {
	cfg, seed, err := config.Game(time.Now().UnixNano())
	if err != nil {
		log.Fatal(err)
	}
	events := invaders.NewEventLog(false)
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay randomness
	session, err := invaders.NewSession(cfg, rng, invaders.WithSessionLog(events))
	if err != nil {
		log.Fatal(err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("screen init: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := tty.New(screen, session).Run(ctx)
	stop()
	screen.Fini()

	if runErr != nil && runErr != context.Canceled {
		log.Fatal(runErr)
	}
	if session.State() == invaders.StateComplete {
		log.Printf("seed %d\n%s", seed, invaders.Summarize(session, events))
	}
}
