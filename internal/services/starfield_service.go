package services

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"starfolio.dev/internal/config"
	"starfolio.dev/internal/models"
	"starfolio.dev/internal/starfield"
)

// StarfieldService hands out the background scene and per-client render sessions
type StarfieldService struct {
	opts          starfield.Options
	scene         *starfield.Scene
	frameInterval time.Duration
	logger        *zap.Logger
}

// NewStarfieldService creates a new StarfieldService. A zero seed is replaced
// by a random one so every client of this process sees the same sky.
func NewStarfieldService(cfg config.StarfieldConfig, frameRate int, logger *zap.Logger) *StarfieldService {
	opts := StarfieldOptions(cfg)
	if opts.Seed == 0 {
		opts.Seed = rand.Uint64()
	}
	if frameRate <= 0 {
		frameRate = 60
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &StarfieldService{
		opts:          opts,
		scene:         starfield.NewScene(opts),
		frameInterval: time.Second / time.Duration(frameRate),
		logger:        logger,
	}
}

// StarfieldOptions converts configuration into renderer options
func StarfieldOptions(cfg config.StarfieldConfig) starfield.Options {
	return starfield.Options{
		Count:        cfg.Count,
		Extent:       cfg.Extent,
		Seed:         cfg.Seed,
		FOV:          cfg.FOV,
		Near:         cfg.Near,
		Far:          cfg.Far,
		CameraZ:      cfg.CameraZ,
		Pitch:        cfg.Pitch,
		RotationStep: cfg.RotationStep,
		Color:        cfg.Color,
		PointSize:    cfg.PointSize,
	}
}

// Options returns the resolved renderer options
func (s *StarfieldService) Options() starfield.Options {
	return s.opts
}

// FrameInterval returns the time between streamed frames
func (s *StarfieldService) FrameInterval() time.Duration {
	return s.frameInterval
}

// Snapshot returns the scene with a camera fitted to vp
func (s *StarfieldService) Snapshot(vp models.Viewport) (*models.SceneSnapshot, error) {
	if !vp.Valid() {
		return nil, fmt.Errorf("%w: %dx%d", starfield.ErrInvalidViewport, vp.Width, vp.Height)
	}
	return starfield.Snapshot(s.scene, starfield.NewSceneCamera(s.opts, vp), s.opts.RotationStep), nil
}

// Session is one client's animation stream
type Session struct {
	ID       string
	Renderer *starfield.Renderer

	interval time.Duration
	logger   *zap.Logger
}

// NewSession initializes a renderer streaming to w
func (s *StarfieldService) NewSession(w starfield.FrameWriter, vp models.Viewport) (*Session, error) {
	r := starfield.NewRenderer(starfield.NewWireBackend(w, s.opts.RotationStep), s.opts)
	if err := r.Initialize(starfield.FixedSurface(vp)); err != nil {
		return nil, err
	}

	id := uuid.NewString()
	return &Session{
		ID:       id,
		Renderer: r,
		interval: s.frameInterval,
		logger:   s.logger.With(zap.String("session", id)),
	}, nil
}

// Stream renders frames at the service frame rate until ctx is done or a
// write fails. Viewports received on resizes are applied between frames.
func (sess *Session) Stream(ctx context.Context, resizes <-chan models.Viewport) error {
	ticker := time.NewTicker(sess.interval)
	defer ticker.Stop()

	loop, err := sess.Renderer.Start(ctx, ticker.C, resizes)
	if err != nil {
		return err
	}
	sess.logger.Debug("Starfield stream started", zap.Duration("interval", sess.interval))

	<-loop.Done()
	sess.logger.Debug("Starfield stream stopped", zap.Uint64("frames", sess.Renderer.Frames()))
	return loop.Err()
}
