package game

import (
	"fmt"
	"log"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/Garsondee/Alien-Invaders/internal/invaders"
)

func copyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// report formats the end-of-wave summary for sharing.
func (g *Game) report() string {
	var b strings.Builder
	fmt.Fprintf(&b, "--- Alien Invaders wave report ---\n")
	fmt.Fprintf(&b, "seed=%d frames=%d\n", g.seed, g.session.Frame())
	b.WriteString(invaders.Summarize(g.session, g.events).String())
	return b.String()
}

func (g *Game) copyReport() {
	if err := g.copyText(g.report()); err != nil {
		log.Printf("copy report: %v", err)
		g.setNotice("copy failed")
		return
	}
	g.setNotice("report copied")
}
