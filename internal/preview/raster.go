// Package preview draws the starfield into an in-memory image, for the
// desktop preview window and for headless snapshots.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"starfolio.dev/internal/models"
	"starfolio.dev/internal/starfield"
)

// Background is the color behind the stars
var Background = color.RGBA{R: 0x0b, G: 0x10, B: 0x20, A: 0xff}

// Raster is a starfield.Backend that rasterizes one pixel per visible star
type Raster struct {
	img   *image.RGBA
	vp    models.Viewport
	cloud *starfield.PointCloud
	star  color.RGBA
	drawn int
}

// NewRaster creates an empty raster backend
func NewRaster() *Raster {
	return &Raster{}
}

// Upload keeps the cloud and resolves its color
func (r *Raster) Upload(cloud *starfield.PointCloud) error {
	if cloud == nil {
		return fmt.Errorf("nil point cloud")
	}
	c, err := ParseHexColor(cloud.Color)
	if err != nil {
		return err
	}
	r.cloud = cloud
	r.star = c
	return nil
}

// SetSize reallocates the image for vp
func (r *Raster) SetSize(vp models.Viewport) error {
	if !vp.Valid() {
		return fmt.Errorf("%w: %dx%d", starfield.ErrInvalidViewport, vp.Width, vp.Height)
	}
	if r.img == nil || r.vp != vp {
		r.img = image.NewRGBA(image.Rect(0, 0, vp.Width, vp.Height))
	}
	r.vp = vp
	return nil
}

// Render clears the image and plots every star inside the frustum
func (r *Raster) Render(scene *starfield.Scene, cam *starfield.Camera) error {
	if r.img == nil || r.cloud == nil {
		return starfield.ErrUnavailable
	}

	pix := r.img.Pix
	for i := 0; i+3 < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = Background.R, Background.G, Background.B, Background.A
	}

	r.drawn = 0
	for i := 0; i < r.cloud.Len(); i++ {
		x, y, ok := cam.Project(r.cloud.Point(i), scene.Rotation.Y, r.vp)
		if !ok {
			continue
		}
		px, py := int(x), int(y)
		if px >= r.vp.Width || py >= r.vp.Height {
			continue
		}
		r.img.SetRGBA(px, py, r.star)
		r.drawn++
	}
	return nil
}

// Image returns the last rendered frame
func (r *Raster) Image() *image.RGBA { return r.img }

// Drawn returns how many stars the last frame plotted
func (r *Raster) Drawn() int { return r.drawn }

// ParseHexColor parses #rgb or #rrggbb
func ParseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")

	var err error
	switch len(hex) {
	case 6:
		_, err = fmt.Sscanf(hex, "%2x%2x%2x", &c.R, &c.G, &c.B)
	case 3:
		_, err = fmt.Sscanf(hex, "%1x%1x%1x", &c.R, &c.G, &c.B)
		c.R *= 0x11
		c.G *= 0x11
		c.B *= 0x11
	default:
		err = fmt.Errorf("bad length")
	}
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c, nil
}
