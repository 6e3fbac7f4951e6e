package main

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"gridcaster/level"
	"gridcaster/raycast"
)

const (
	minimapScale  = 6
	minimapMargin = 10
)

var (
	minimapFloor  = color.RGBA{40, 40, 40, 200}
	minimapPlayer = color.RGBA{0, 255, 255, 255}
)

// generateMinimap draws the grid once; it never changes during a session.
func (g *Game) generateMinimap() {
	grid := g.session.Grid()
	palette := g.cfg.Palette()

	g.minimap = ebiten.NewImage(grid.Cols()*minimapScale, grid.Rows()*minimapScale)
	for row := 0; row < grid.Rows(); row++ {
		for col := 0; col < grid.Cols(); col++ {
			c := minimapFloor
			if t := grid.At(row, col); t != level.Empty {
				c = palette.Color(t, raycast.FaceX)
			}
			vector.DrawFilledRect(g.minimap, float32(col*minimapScale), float32(row*minimapScale), minimapScale, minimapScale, c, false)
		}
	}
}

func (g *Game) drawMinimap(screen *ebiten.Image) {
	originX := float32(g.cfg.Window.Width - g.minimap.Bounds().Dx() - minimapMargin)
	originY := float32(minimapMargin)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(originX), float64(originY))
	screen.DrawImage(g.minimap, op)

	cam := g.session.Camera()
	pos, dir := cam.Position(), cam.Dir()
	px := originX + float32(pos.X*minimapScale)
	py := originY + float32(pos.Y*minimapScale)
	vector.DrawFilledCircle(screen, px, py, minimapScale/2, minimapPlayer, false)
	vector.StrokeLine(screen, px, py, px+float32(dir.X*minimapScale*2), py+float32(dir.Y*minimapScale*2), 1, minimapPlayer, false)
}
