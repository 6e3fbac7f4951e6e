package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

func (g *Game) drawUI(screen *ebiten.Image) {
	g.hud.Draw(screen)

	h := g.cfg.Window.Height
	if g.paused {
		ebitenutil.DebugPrintAt(screen, "paused, P to resume", 10, h-60)
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("TPS: %0.2f", ebiten.ActualTPS()), 10, h-40)
	ebitenutil.DebugPrintAt(screen, "WASD to move, arrows or Q/E to turn, M for map, ESC to exit", 10, h-20)
}
