package render

import (
	"errors"
	"fmt"
	"image/color"

	"github.com/sourcegraph/conc/pool"

	"gridcaster/model"
	"gridcaster/raycast"
)

type Options struct {
	// LambdaMax scales the plane vector at the outermost columns.
	LambdaMax float64

	// Fisheye enables perpendicular-distance projection.
	Fisheye bool

	Background  color.RGBA
	Cast        raycast.Options
	HeightScale float64
	Palette     raycast.Palette

	// Workers above one renders column bands concurrently.
	Workers int
}

func DefaultOptions() Options {
	return Options{
		LambdaMax:   1.0,
		Background:  color.RGBA{0, 0, 0, 255},
		Cast:        raycast.DefaultOptions(),
		HeightScale: raycast.DefaultHeightScale,
		Palette:     raycast.DefaultPalette(),
		Workers:     1,
	}
}

// Renderer draws a first-person view of a grid into a Frame one column at a
// time.
type Renderer struct {
	opts Options
}

func New(opts Options) (*Renderer, error) {
	var errs []error
	if opts.LambdaMax <= 0 {
		errs = append(errs, fmt.Errorf("lambda max %v must be positive", opts.LambdaMax))
	}
	if opts.HeightScale <= 0 {
		errs = append(errs, fmt.Errorf("height scale %v must be positive", opts.HeightScale))
	}
	if opts.Cast.MaxDistance <= 0 {
		errs = append(errs, fmt.Errorf("max distance %v must be positive", opts.Cast.MaxDistance))
	}
	if opts.Cast.MinDistance <= 0 {
		errs = append(errs, fmt.Errorf("min distance %v must be positive", opts.Cast.MinDistance))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &Renderer{opts: opts}, nil
}

// Lambda is the plane offset of column x in a frame of the given width.
func (r *Renderer) Lambda(x, width int) float64 {
	if width <= 1 {
		return 0
	}
	return ((2*float64(x))/float64(width-1) - 1) * r.opts.LambdaMax
}

// Render clears f to the background and draws every column as seen from cam.
func (r *Renderer) Render(f *Frame, g raycast.Grid, cam *model.Camera) {
	f.Fill(r.opts.Background)

	workers := r.opts.Workers
	if workers > f.width {
		workers = f.width
	}
	if workers <= 1 {
		r.columns(f, g, cam, 0, f.width)
		return
	}

	p := pool.New().WithMaxGoroutines(workers)
	band := (f.width + workers - 1) / workers
	for start := 0; start < f.width; start += band {
		start, end := start, min(start+band, f.width)
		p.Go(func() {
			r.columns(f, g, cam, start, end)
		})
	}
	p.Wait()
}

func (r *Renderer) columns(f *Frame, g raycast.Grid, cam *model.Camera, from, to int) {
	proj := raycast.Projection{
		Height:      f.height,
		HeightScale: r.opts.HeightScale,
		Palette:     r.opts.Palette,
	}
	origin := cam.Position()
	for x := from; x < to; x++ {
		lam := r.Lambda(x, f.width)
		hit := raycast.Cast(g, origin, cam.RayDir(lam), r.opts.Cast)
		if r.opts.Fisheye {
			hit = raycast.Perpendicular(hit, lam)
		}
		col, ok := raycast.Project(hit, proj)
		if !ok {
			continue
		}
		f.FillColumn(x, col.Top, col.Bottom, col.Color)
	}
}
