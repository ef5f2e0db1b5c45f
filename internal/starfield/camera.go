package starfield

import (
	"math"

	"starfolio.dev/internal/models"
)

// Camera is a perspective camera with an XYZ-ordered Euler rotation
type Camera struct {
	FOV      float64 // vertical field of view in degrees
	Aspect   float64
	Near     float64
	Far      float64
	Position models.Vec3
	Rotation models.Vec3

	projection [16]float64
}

// NewCamera creates a camera and computes its projection matrix
func NewCamera(fov, aspect, near, far float64) *Camera {
	c := &Camera{FOV: fov, Aspect: aspect, Near: near, Far: far}
	c.UpdateProjection()
	return c
}

// UpdateProjection recomputes the projection matrix from FOV, Aspect, Near and Far.
// Must be called after any of them change.
func (c *Camera) UpdateProjection() {
	f := c.focal()
	depth := c.Near - c.Far

	// column-major, matching WebGL conventions
	c.projection = [16]float64{
		f / c.Aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, (c.Far + c.Near) / depth, -1,
		0, 0, 2 * c.Far * c.Near / depth, 0,
	}
}

// Projection returns the current projection matrix
func (c *Camera) Projection() [16]float64 {
	return c.projection
}

// State returns the serializable camera description
func (c *Camera) State() models.CameraState {
	return models.CameraState{
		FOV:      c.FOV,
		Aspect:   c.Aspect,
		Near:     c.Near,
		Far:      c.Far,
		Position: c.Position,
		Rotation: c.Rotation,
	}
}

// Project maps a point of an object rotated by rotationY about its Y axis
// to pixel coordinates on vp. ok is false when the point falls outside the
// view frustum.
func (c *Camera) Project(p models.Vec3, rotationY float64, vp models.Viewport) (x, y float64, ok bool) {
	if !vp.Valid() {
		return 0, 0, false
	}

	world := rotateY(p, rotationY)
	v := models.Vec3{
		X: world.X - c.Position.X,
		Y: world.Y - c.Position.Y,
		Z: world.Z - c.Position.Z,
	}

	// inverse of Rx*Ry*Rz
	v = rotateX(v, -c.Rotation.X)
	v = rotateY(v, -c.Rotation.Y)
	v = rotateZ(v, -c.Rotation.Z)

	depth := -v.Z
	if depth < c.Near || depth > c.Far {
		return 0, 0, false
	}

	f := c.focal()
	ndcX := f / c.Aspect * v.X / depth
	ndcY := f * v.Y / depth
	if ndcX < -1 || ndcX > 1 || ndcY < -1 || ndcY > 1 {
		return 0, 0, false
	}

	x = (ndcX + 1) / 2 * float64(vp.Width)
	y = (1 - ndcY) / 2 * float64(vp.Height)
	return x, y, true
}

func (c *Camera) focal() float64 {
	return 1 / math.Tan(c.FOV*math.Pi/360)
}

func rotateX(v models.Vec3, a float64) models.Vec3 {
	s, cs := math.Sincos(a)
	return models.Vec3{X: v.X, Y: v.Y*cs - v.Z*s, Z: v.Y*s + v.Z*cs}
}

func rotateY(v models.Vec3, a float64) models.Vec3 {
	s, cs := math.Sincos(a)
	return models.Vec3{X: v.X*cs + v.Z*s, Y: v.Y, Z: -v.X*s + v.Z*cs}
}

func rotateZ(v models.Vec3, a float64) models.Vec3 {
	s, cs := math.Sincos(a)
	return models.Vec3{X: v.X*cs - v.Y*s, Y: v.X*s + v.Y*cs, Z: v.Z}
}
