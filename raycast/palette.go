package raycast

import (
	"image/color"

	"gridcaster/level"
)

// Shade is the pair of colors for one tile value. Y is the darker face.
type Shade struct {
	X, Y color.RGBA
}

// Palette colors a hit by tile value and face.
type Palette map[level.Tile]Shade

var fallback = color.RGBA{160, 160, 160, 255}

func DefaultPalette() Palette {
	return Palette{
		1: Halved(color.RGBA{255, 0, 0, 255}),
		2: Halved(color.RGBA{0, 255, 0, 255}),
		3: Halved(color.RGBA{0, 0, 255, 255}),
	}
}

// Halved pairs c with a half-brightness copy for the Y face.
func Halved(c color.RGBA) Shade {
	return Shade{X: c, Y: color.RGBA{c.R / 2, c.G / 2, c.B / 2, c.A}}
}

func (p Palette) Color(v level.Tile, face Face) color.RGBA {
	s, ok := p[v]
	if !ok {
		s = Halved(fallback)
	}
	if face == FaceY {
		return s.Y
	}
	return s.X
}
