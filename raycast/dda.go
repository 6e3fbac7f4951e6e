package raycast

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"

	"gridcaster/level"
)

const (
	DefaultMinDistance = 0.1
	DefaultMaxDistance = 1000.0
)

// Grid is the read-only occupancy view the caster walks.
type Grid interface {
	InBounds(row, col int) bool
	At(row, col int) level.Tile
}

// Face is the axis whose cell boundary the ray crossed last.
type Face int

const (
	FaceNone Face = iota
	// FaceX is a boundary perpendicular to the x axis: the column changed.
	FaceX
	// FaceY is a boundary perpendicular to the y axis: the row changed.
	FaceY
)

func (f Face) String() string {
	switch f {
	case FaceX:
		return "X"
	case FaceY:
		return "Y"
	default:
		return "none"
	}
}

type Result struct {
	Hit      bool
	Distance float64
	Face     Face
	Value    level.Tile
	Row, Col int
}

type Options struct {
	MinDistance float64
	MaxDistance float64
}

func DefaultOptions() Options {
	return Options{MinDistance: DefaultMinDistance, MaxDistance: DefaultMaxDistance}
}

// axis holds the traversal state along one grid axis.
type axis struct {
	cell int
	step int
	// delta is the ray length between two boundaries on this axis.
	delta float64
	// side is the ray length to the next boundary on this axis.
	side float64
}

func newAxis(o, d, length float64) axis {
	a := axis{cell: int(math.Floor(o))}
	if d == 0 {
		a.delta = math.Inf(1)
		a.side = math.Inf(1)
		return a
	}
	a.delta = length / math.Abs(d)
	if d < 0 {
		a.step = -1
		a.side = (o - math.Floor(o)) * a.delta
	} else {
		a.step = 1
		a.side = (math.Floor(o) + 1 - o) * a.delta
	}
	return a
}

// Cast walks the grid cells crossed by the ray from origin along dir and
// reports the first occupied one. The origin cell itself is never tested.
// Distances are Euclidean in grid units and do not depend on the length of
// dir. A zero dir is a miss.
func Cast(g Grid, origin, dir geom.Vector2, opts Options) Result {
	length := math.Hypot(dir.X, dir.Y)
	if length == 0 || math.IsNaN(length) {
		return Result{Distance: opts.MinDistance}
	}

	x := newAxis(origin.X, dir.X, length)
	y := newAxis(origin.Y, dir.Y, length)

	dist := 0.0
	face := FaceNone
	for dist < opts.MaxDistance {
		if x.side <= y.side {
			x.cell += x.step
			dist = x.side
			face = FaceX
			x.side += x.delta
		} else {
			y.cell += y.step
			dist = y.side
			face = FaceY
			y.side += y.delta
		}

		if !g.InBounds(y.cell, x.cell) {
			return miss(dist, opts)
		}
		if v := g.At(y.cell, x.cell); v != level.Empty {
			return Result{
				Hit:      true,
				Distance: math.Max(dist, opts.MinDistance),
				Face:     face,
				Value:    v,
				Row:      y.cell,
				Col:      x.cell,
			}
		}
	}

	return miss(dist, opts)
}

func miss(dist float64, opts Options) Result {
	return Result{Distance: math.Max(dist, opts.MinDistance)}
}
