package model

import (
	"github.com/harbdog/raycaster-go/geom"

	"gridcaster/level"
)

// Grid is the occupancy view movement needs.
type Grid interface {
	InBounds(row, col int) bool
	At(row, col int) level.Tile
}

// AttemptMove moves the camera by (dx, dy) if the destination cell is inside
// the grid and empty. The move is applied whole or not at all.
func AttemptMove(c *Camera, g Grid, dx, dy float64) bool {
	next := geom.Vector2{X: c.position.X + dx, Y: c.position.Y + dy}
	row, col := cellOf(next.X, next.Y)
	if !g.InBounds(row, col) || g.At(row, col) != level.Empty {
		return false
	}
	c.position = next
	return true
}

// Move applies a forward displacement along dir and a strafe displacement
// along plane as two separate attempts, so a wall blocking one still lets the
// other through.
func Move(c *Camera, g Grid, forward, strafe float64) (movedForward, movedStrafe bool) {
	if forward != 0 {
		movedForward = AttemptMove(c, g, c.dir.X*forward, c.dir.Y*forward)
	}
	if strafe != 0 {
		movedStrafe = AttemptMove(c, g, c.plane.X*strafe, c.plane.Y*strafe)
	}
	return movedForward, movedStrafe
}
