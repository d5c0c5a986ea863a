package main

import (
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/Alien-Invaders/internal/config"
	"github.com/Garsondee/Alien-Invaders/internal/game"
)

func main() {
	cfg, seed, err := config.Game(time.Now().UnixNano())
	if err != nil {
		log.Fatal(err)
	}
	g, err := game.New(cfg, seed)
	if err != nil {
		log.Fatal(err)
	}
	w, h := g.Size()
	ebiten.SetWindowTitle("Alien Invaders")
	ebiten.SetWindowSize(w, h)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
