package starfield

import (
	"math"

	"starfolio.dev/internal/generation"
	"starfolio.dev/internal/models"
)

// Options configures the starfield scene
type Options struct {
	Count        int
	Extent       float64
	Seed         uint64
	FOV          float64
	Near         float64
	Far          float64
	CameraZ      float64
	Pitch        float64
	RotationStep float64
	Color        string
	PointSize    float64
}

// DefaultOptions returns the stock starfield settings
func DefaultOptions() Options {
	return Options{
		Count:        generation.DefaultStarCount,
		Extent:       generation.DefaultStarExtent,
		FOV:          60,
		Near:         1,
		Far:          1000,
		CameraZ:      1,
		Pitch:        math.Pi / 2,
		RotationStep: 0.0002,
		Color:        "#aaaaaa",
		PointSize:    0.7,
	}
}

// PointCloud is a point primitive built from a flat xyz coordinate buffer
type PointCloud struct {
	Positions []float32
	Color     string
	Size      float64
}

// Len returns the number of points in the cloud
func (pc *PointCloud) Len() int {
	return len(pc.Positions) / 3
}

// Point returns the i-th point
func (pc *PointCloud) Point(i int) models.Vec3 {
	return models.Vec3{
		X: float64(pc.Positions[i*3]),
		Y: float64(pc.Positions[i*3+1]),
		Z: float64(pc.Positions[i*3+2]),
	}
}

// Scene holds the point cloud and its rigid-body rotation
type Scene struct {
	Cloud    *PointCloud
	Rotation models.Vec3
}

// Surface is the output target a renderer draws into
type Surface interface {
	Viewport() models.Viewport
}

// FixedSurface is a surface with a known, constant size
type FixedSurface models.Viewport

// Viewport returns the surface size
func (s FixedSurface) Viewport() models.Viewport {
	return models.Viewport(s)
}

// NewScene generates the point cloud described by opts
func NewScene(opts Options) *Scene {
	return &Scene{
		Cloud: &PointCloud{
			Positions: generation.GenerateStarfield(generation.StarfieldConfig{
				Seed:   opts.Seed,
				Count:  opts.Count,
				Extent: opts.Extent,
			}),
			Color: opts.Color,
			Size:  opts.PointSize,
		},
	}
}

// NewSceneCamera builds the camera described by opts for the given viewport
func NewSceneCamera(opts Options, vp models.Viewport) *Camera {
	cam := NewCamera(opts.FOV, vp.Aspect(), opts.Near, opts.Far)
	cam.Position.Z = opts.CameraZ
	cam.Rotation.X = opts.Pitch
	return cam
}

// Snapshot captures a scene and camera for client-side rendering
func Snapshot(scene *Scene, cam *Camera, rotationStep float64) *models.SceneSnapshot {
	return &models.SceneSnapshot{
		Camera:       cam.State(),
		Positions:    scene.Cloud.Positions,
		Color:        scene.Cloud.Color,
		PointSize:    scene.Cloud.Size,
		Rotation:     scene.Rotation,
		RotationStep: rotationStep,
	}
}
