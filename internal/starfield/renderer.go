// Package starfield drives the decorative point-cloud background: a camera,
// a rotating point cloud and a pluggable rendering backend.
package starfield

import (
	"errors"
	"fmt"

	"starfolio.dev/internal/models"
)

var (
	// ErrUnavailable is returned when the backend or the surface is missing,
	// or when the renderer has not been initialized
	ErrUnavailable = errors.New("starfield: rendering unavailable")

	// ErrInvalidViewport is returned for viewports without a drawable area
	ErrInvalidViewport = errors.New("starfield: invalid viewport")
)

// Backend is the rendering backend a Renderer draws through
type Backend interface {
	// Upload builds the point-cloud primitive from its coordinate buffer
	Upload(cloud *PointCloud) error
	// Render draws the scene from the camera
	Render(scene *Scene, cam *Camera) error
	// SetSize resizes the output surface
	SetSize(vp models.Viewport) error
}

// Renderer owns the starfield scene graph. It is not safe for concurrent
// use; while a Loop runs, only the loop goroutine may touch it.
type Renderer struct {
	backend  Backend
	opts     Options
	camera   *Camera
	scene    *Scene
	viewport models.Viewport
	frames   uint64
	ready    bool
}

// NewRenderer creates a renderer drawing through backend
func NewRenderer(backend Backend, opts Options) *Renderer {
	return &Renderer{backend: backend, opts: opts}
}

// Initialize builds the camera and point cloud and sizes the surface.
// Returns ErrUnavailable, leaving the renderer disabled, when the backend
// or the surface is missing.
func (r *Renderer) Initialize(surface Surface) error {
	if r.backend == nil || surface == nil {
		return ErrUnavailable
	}
	vp := surface.Viewport()
	if !vp.Valid() {
		return ErrUnavailable
	}

	scene := NewScene(r.opts)
	if err := r.backend.Upload(scene.Cloud); err != nil {
		return fmt.Errorf("%w: upload point cloud: %v", ErrUnavailable, err)
	}
	if err := r.backend.SetSize(vp); err != nil {
		return fmt.Errorf("%w: size surface: %v", ErrUnavailable, err)
	}

	r.scene = scene
	r.camera = NewSceneCamera(r.opts, vp)
	r.viewport = vp
	r.ready = true
	return nil
}

// RenderFrame advances the rotation by one step and draws the scene
func (r *Renderer) RenderFrame() error {
	if !r.ready {
		return ErrUnavailable
	}
	r.scene.Rotation.Y += r.opts.RotationStep
	r.frames++
	return r.backend.Render(r.scene, r.camera)
}

// HandleResize matches the camera aspect and surface size to vp
func (r *Renderer) HandleResize(vp models.Viewport) error {
	if !r.ready {
		return ErrUnavailable
	}
	if !vp.Valid() {
		return fmt.Errorf("%w: %dx%d", ErrInvalidViewport, vp.Width, vp.Height)
	}
	r.camera.Aspect = vp.Aspect()
	r.camera.UpdateProjection()
	r.viewport = vp
	return r.backend.SetSize(vp)
}

// Ready reports whether Initialize succeeded
func (r *Renderer) Ready() bool { return r.ready }

// Camera returns the scene camera, nil before Initialize
func (r *Renderer) Camera() *Camera { return r.camera }

// Scene returns the scene, nil before Initialize
func (r *Renderer) Scene() *Scene { return r.scene }

// Viewport returns the current surface size
func (r *Renderer) Viewport() models.Viewport { return r.viewport }

// Frames returns the number of frames rendered
func (r *Renderer) Frames() uint64 { return r.frames }
