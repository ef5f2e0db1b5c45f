// Package window shows the starfield in a desktop window.
package window

import (
	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"starfolio.dev/internal/models"
	"starfolio.dev/internal/preview"
	"starfolio.dev/internal/starfield"
)

// Run opens a resizable window animating a starfield built from opts. It
// blocks until the window closes.
func Run(opts starfield.Options, size models.Viewport, logger *zap.Logger) error {
	raster := preview.NewRaster()
	r := starfield.NewRenderer(raster, opts)
	if err := r.Initialize(starfield.FixedSurface(size)); err != nil {
		return err
	}

	g := &game{renderer: r, raster: raster, logger: logger}
	ebiten.SetWindowTitle("Starfield")
	ebiten.SetWindowSize(size.Width, size.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(60)
	return ebiten.RunGame(g)
}

type game struct {
	renderer *starfield.Renderer
	raster   *preview.Raster
	frame    *ebiten.Image
	logger   *zap.Logger
}

func (g *game) Update() error {
	return g.renderer.RenderFrame()
}

func (g *game) Draw(screen *ebiten.Image) {
	img := g.raster.Image()
	if img == nil {
		return
	}
	b := img.Bounds()
	if g.frame == nil || g.frame.Bounds() != b {
		if g.frame != nil {
			g.frame.Deallocate()
		}
		g.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.frame.WritePixels(img.Pix)
	screen.DrawImage(g.frame, nil)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	vp := models.Viewport{Width: outsideWidth, Height: outsideHeight}
	if vp != g.renderer.Viewport() {
		if err := g.renderer.HandleResize(vp); err != nil {
			g.logger.Debug("Ignoring resize", zap.Int("width", vp.Width), zap.Int("height", vp.Height), zap.Error(err))
			return g.renderer.Viewport().Width, g.renderer.Viewport().Height
		}
	}
	return vp.Width, vp.Height
}
