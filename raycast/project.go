package raycast

import (
	"image/color"
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// DefaultHeightScale makes a wall one unit away fill half the viewport.
const DefaultHeightScale = 0.5

type Projection struct {
	// Height is the viewport height in pixels.
	Height int
	// HeightScale is k in height = k*Height/distance.
	HeightScale float64
	Palette     Palette
}

// Column is a vertical strip covering rows [Top, Bottom).
type Column struct {
	Top, Bottom int
	Color       color.RGBA
}

// Project converts a cast result into the strip to draw. It returns false for
// a miss.
func Project(r Result, p Projection) (Column, bool) {
	if !r.Hit || r.Distance <= 0 {
		return Column{}, false
	}

	h := float64(p.Height)
	columnHeight := p.HeightScale * h / r.Distance
	top := geom.Clamp(math.Trunc(h/2-columnHeight/2), 0, h)
	bottom := geom.Clamp(math.Trunc(h/2+columnHeight/2), 0, h)

	return Column{
		Top:    int(top),
		Bottom: int(bottom),
		Color:  p.Palette.Color(r.Value, r.Face),
	}, true
}

// Perpendicular returns r with its distance measured along the view direction
// instead of along the ray, for a ray at column offset lam. Projecting the
// result removes the fisheye bulge.
func Perpendicular(r Result, lam float64) Result {
	r.Distance /= math.Hypot(1, lam)
	return r
}
