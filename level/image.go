package level

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"io"
)

// Palette maps map-image pixel colors to tiles.
type Palette map[color.RGBA]Tile

// DefaultPalette reads white as empty and the primaries as materials 1-3.
func DefaultPalette() Palette {
	return Palette{
		{255, 255, 255, 255}: Empty,
		{255, 0, 0, 255}:     1,
		{0, 255, 0, 255}:     2,
		{0, 0, 255, 255}:     3,
		{0, 0, 0, 255}:       1,
	}
}

// FromImage builds a grid with one cell per pixel, pixel y being the row.
func FromImage(img image.Image, palette Palette) (*Grid, error) {
	bounds := img.Bounds()
	g, err := New(bounds.Dy(), bounds.Dx())
	if err != nil {
		return nil, err
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			t, ok := palette[c]
			if !ok {
				return nil, fmt.Errorf("level: unknown map color %v at (%d,%d)", c, x, y)
			}
			g.set(y-bounds.Min.Y, x-bounds.Min.X, t)
		}
	}

	return g, nil
}

// Decode reads a PNG map image and converts it with palette.
func Decode(r io.Reader, palette Palette) (*Grid, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("level: decode map: %w", err)
	}
	return FromImage(img, palette)
}
