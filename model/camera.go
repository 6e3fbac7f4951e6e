package model

import (
	"math"

	"github.com/harbdog/raycaster-go/geom"
)

// Camera is the viewer: a continuous grid position and a facing angle with
// the forward and plane vectors derived from it. x indexes columns and y
// indexes rows.
type Camera struct {
	position geom.Vector2
	angle    float64
	dir      geom.Vector2
	plane    geom.Vector2
}

func NewCamera(x, y, angle float64) *Camera {
	c := &Camera{position: geom.Vector2{X: x, Y: y}}
	c.SetAngle(angle)
	return c
}

// SetAngle is the only place dir and plane are computed; they stay unit
// length and perpendicular.
func (c *Camera) SetAngle(angle float64) {
	c.angle = angle
	sin, cos := math.Sincos(angle)
	c.dir = geom.Vector2{X: sin, Y: cos}
	c.plane = geom.Vector2{X: -cos, Y: sin}
}

// Rotate turns the camera by delta radians. Turning is never blocked.
func (c *Camera) Rotate(delta float64) {
	c.SetAngle(c.angle + delta)
}

func (c *Camera) Position() geom.Vector2 { return c.position }
func (c *Camera) Angle() float64         { return c.angle }
func (c *Camera) Dir() geom.Vector2      { return c.dir }
func (c *Camera) Plane() geom.Vector2    { return c.plane }

// Cell returns the (row, col) of the cell holding the camera.
func (c *Camera) Cell() (row, col int) {
	return cellOf(c.position.X, c.position.Y)
}

// RayDir returns dir + lam*plane, the ray through a column at offset lam.
func (c *Camera) RayDir(lam float64) geom.Vector2 {
	return geom.Vector2{
		X: c.dir.X + lam*c.plane.X,
		Y: c.dir.Y + lam*c.plane.Y,
	}
}

func cellOf(x, y float64) (row, col int) {
	return int(math.Floor(y)), int(math.Floor(x))
}
