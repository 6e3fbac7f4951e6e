package main

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"gridcaster/render"
)

// upperHalf draws the top pixel in the foreground color and the bottom pixel
// in the background color, giving two pixel rows per terminal row.
const upperHalf = '▀'

// sample returns the frame pixels shown by cell (x, y) of a cols x rows
// terminal area, nearest-neighbour.
func sample(f *render.Frame, x, y, cols, rows int) (top, bottom color.RGBA) {
	fx := x * f.Width() / cols
	topY := (2 * y) * f.Height() / (2 * rows)
	bottomY := (2*y + 1) * f.Height() / (2 * rows)
	return f.At(fx, topY), f.At(fx, bottomY)
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// present scales the frame onto all but the last line of the screen.
func present(screen tcell.Screen, f *render.Frame) {
	cols, rows := screen.Size()
	rows--
	if cols <= 0 || rows <= 0 {
		return
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			top, bottom := sample(f, x, y, cols, rows)
			style := tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
			screen.SetContent(x, y, upperHalf, nil, style)
		}
	}
}

// drawStatus writes the diagnostics on the last line of the screen.
func drawStatus(screen tcell.Screen, lines []string) {
	cols, rows := screen.Size()
	if rows <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	x := 0
	for i, line := range lines {
		if i > 0 {
			line = "  " + line
		}
		for _, r := range line {
			if x >= cols {
				return
			}
			screen.SetContent(x, rows-1, r, nil, style)
			x++
		}
	}
	for ; x < cols; x++ {
		screen.SetContent(x, rows-1, ' ', nil, style)
	}
}
