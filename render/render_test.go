package render

import (
	"bytes"
	"image/color"
	"math/rand"
	"testing"

	"gridcaster/level"
	"gridcaster/model"
)

var (
	black   = color.RGBA{0, 0, 0, 255}
	darkRed = color.RGBA{127, 0, 0, 255}
)

func mustRenderer(t *testing.T, opts Options) *Renderer {
	t.Helper()
	r, err := New(opts)
	if err != nil {
		t.Fatal(err)
	}
	return r
}

func mustGrid(t *testing.T, rows [][]level.Tile) *level.Grid {
	t.Helper()
	g, err := level.FromRows(rows)
	if err != nil {
		t.Fatal(err)
	}
	return g
}

// top returns the first row of column x that is not background, or -1.
func top(f *Frame, x int, bg color.RGBA) int {
	for y := 0; y < f.Height(); y++ {
		if f.At(x, y) != bg {
			return y
		}
	}
	return -1
}

func TestFrameSetAndFill(t *testing.T) {
	f := NewFrame(3, 2)
	f.Fill(color.RGBA{1, 2, 3, 255})
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			if got := f.At(x, y); got != (color.RGBA{1, 2, 3, 255}) {
				t.Fatalf("At(%d,%d)=%v after Fill", x, y, got)
			}
		}
	}

	f.Set(2, 1, darkRed)
	f.Set(5, 5, darkRed)
	if f.At(2, 1) != darkRed {
		t.Errorf("At(2,1)=%v, want %v", f.At(2, 1), darkRed)
	}
	if len(f.Pix()) != 3*2*4 {
		t.Errorf("len(Pix())=%d, want 24", len(f.Pix()))
	}
	if got := f.Image().RGBAAt(2, 1); got != darkRed {
		t.Errorf("Image().RGBAAt(2,1)=%v, want %v", got, darkRed)
	}
}

func TestFrameFillColumnClamps(t *testing.T) {
	f := NewFrame(2, 4)
	f.Fill(black)
	f.FillColumn(1, -3, 9, darkRed)
	for y := 0; y < 4; y++ {
		if f.At(1, y) != darkRed || f.At(0, y) != black {
			t.Fatalf("row %d: got %v %v", y, f.At(0, y), f.At(1, y))
		}
	}
}

func TestLambda(t *testing.T) {
	r := mustRenderer(t, DefaultOptions())
	tests := []struct {
		x, width int
		want     float64
	}{
		{0, 5, -1},
		{2, 5, 0},
		{4, 5, 1},
		{0, 1, 0},
	}
	for _, tt := range tests {
		if got := r.Lambda(tt.x, tt.width); got != tt.want {
			t.Errorf("Lambda(%d,%d)=%v, want %v", tt.x, tt.width, got, tt.want)
		}
	}
}

func TestNewRejectsBadOptions(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Options)
	}{
		{"lambda", func(o *Options) { o.LambdaMax = 0 }},
		{"height scale", func(o *Options) { o.HeightScale = -1 }},
		{"max distance", func(o *Options) { o.Cast.MaxDistance = 0 }},
		{"min distance", func(o *Options) { o.Cast.MinDistance = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.modify(&opts)
			if _, err := New(opts); err == nil {
				t.Error("New accepted invalid options")
			}
		})
	}
}

func TestRenderCentreColumn(t *testing.T) {
	g := mustGrid(t, [][]level.Tile{
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 1, 0, 0},
		{0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0},
	})
	cam := model.NewCamera(2.5, 0.5, 0)
	f := NewFrame(5, 100)
	mustRenderer(t, DefaultOptions()).Render(f, g, cam)

	// Distance 1.5 gives a strip 33.3 rows tall through the Y face.
	for y, want := range map[int]color.RGBA{32: black, 33: darkRed, 65: darkRed, 66: black} {
		if got := f.At(2, y); got != want {
			t.Errorf("At(2,%d)=%v, want %v", y, got, want)
		}
	}
}

func TestRenderEmptyGridIsBackground(t *testing.T) {
	g, err := level.New(6, 6)
	if err != nil {
		t.Fatal(err)
	}
	opts := DefaultOptions()
	opts.Background = color.RGBA{10, 20, 30, 255}
	f := NewFrame(16, 12)
	f.Fill(darkRed)
	mustRenderer(t, opts).Render(f, g, model.NewCamera(3, 3, 1))
	for x := 0; x < 16; x++ {
		if y := top(f, x, opts.Background); y != -1 {
			t.Fatalf("column %d drawn from row %d on an empty grid", x, y)
		}
	}
}

func TestRenderParallelMatchesSequential(t *testing.T) {
	g, err := level.Generate(25, 25, level.DefaultWeights(), rand.New(rand.NewSource(255)), level.Cell{Row: 12, Col: 12})
	if err != nil {
		t.Fatal(err)
	}
	cam := model.NewCamera(12.5, 12.5, 0.7)

	seq := NewFrame(97, 60)
	mustRenderer(t, DefaultOptions()).Render(seq, g, cam)

	for _, workers := range []int{2, 4, 7, 500} {
		opts := DefaultOptions()
		opts.Workers = workers
		par := NewFrame(97, 60)
		mustRenderer(t, opts).Render(par, g, cam)
		if !bytes.Equal(seq.Pix(), par.Pix()) {
			t.Errorf("workers=%d: frame differs from sequential render", workers)
		}
	}
}

func TestRenderFisheyeCorrection(t *testing.T) {
	g := mustGrid(t, [][]level.Tile{
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1},
	})
	cam := model.NewCamera(3.5, 0.3, 0)

	opts := DefaultOptions()
	opts.Fisheye = true
	f := NewFrame(9, 100)
	mustRenderer(t, opts).Render(f, g, cam)
	for x := 0; x < 9; x++ {
		if y := top(f, x, black); y != 40 {
			t.Errorf("corrected column %d starts at %d, want 40", x, y)
		}
	}

	f = NewFrame(9, 100)
	mustRenderer(t, DefaultOptions()).Render(f, g, cam)
	if centre, edge := top(f, 4, black), top(f, 0, black); edge <= centre {
		t.Errorf("uncorrected edge column starts at %d, want below centre %d", edge, centre)
	}
}
