package render

import (
	"image"
	"image/color"
)

// Frame is a width x height RGBA pixel buffer laid out row-major, four bytes
// per pixel, the layout ebiten's WritePixels expects.
type Frame struct {
	pixels []byte
	width  int
	height int
}

func NewFrame(width, height int) *Frame {
	return &Frame{
		pixels: make([]byte, width*height*4),
		width:  width,
		height: height,
	}
}

func (f *Frame) Width() int  { return f.width }
func (f *Frame) Height() int { return f.height }

// Pix exposes the backing buffer. It is overwritten by the next render.
func (f *Frame) Pix() []byte { return f.pixels }

func (f *Frame) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return
	}
	i := (y*f.width + x) * 4
	f.pixels[i] = c.R
	f.pixels[i+1] = c.G
	f.pixels[i+2] = c.B
	f.pixels[i+3] = c.A
}

func (f *Frame) At(x, y int) color.RGBA {
	if x < 0 || x >= f.width || y < 0 || y >= f.height {
		return color.RGBA{}
	}
	i := (y*f.width + x) * 4
	return color.RGBA{f.pixels[i], f.pixels[i+1], f.pixels[i+2], f.pixels[i+3]}
}

// Fill clears the whole frame to c.
func (f *Frame) Fill(c color.RGBA) {
	if len(f.pixels) == 0 {
		return
	}
	f.pixels[0], f.pixels[1], f.pixels[2], f.pixels[3] = c.R, c.G, c.B, c.A
	for filled := 4; filled < len(f.pixels); filled *= 2 {
		copy(f.pixels[filled:], f.pixels[:filled])
	}
}

// FillColumn paints rows [top, bottom) of column x.
func (f *Frame) FillColumn(x, top, bottom int, c color.RGBA) {
	if top < 0 {
		top = 0
	}
	if bottom > f.height {
		bottom = f.height
	}
	for y := top; y < bottom; y++ {
		f.Set(x, y, c)
	}
}

// Image returns a copy of the frame as an image.RGBA.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.width, f.height))
	copy(img.Pix, f.pixels)
	return img
}
