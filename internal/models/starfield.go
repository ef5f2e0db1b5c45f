package models

// Vec3 is a point or direction in world space
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Viewport is the size of an output surface in pixels
type Viewport struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Valid reports whether the viewport has a drawable area
func (v Viewport) Valid() bool {
	return v.Width > 0 && v.Height > 0
}

// Aspect returns width divided by height
func (v Viewport) Aspect() float64 {
	return float64(v.Width) / float64(v.Height)
}

// CameraState describes a perspective camera as sent to clients
type CameraState struct {
	FOV      float64 `json:"fov"`
	Aspect   float64 `json:"aspect"`
	Near     float64 `json:"near"`
	Far      float64 `json:"far"`
	Position Vec3    `json:"position"`
	Rotation Vec3    `json:"rotation"`
}

// SceneSnapshot is the full starfield scene for client-side rendering
type SceneSnapshot struct {
	Camera       CameraState `json:"camera"`
	Positions    []float32   `json:"positions"`
	Color        string      `json:"color"`
	PointSize    float64     `json:"point_size"`
	Rotation     Vec3        `json:"rotation"`
	RotationStep float64     `json:"rotation_step"`
}
