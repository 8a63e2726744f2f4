package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	xdraw "golang.org/x/image/draw"

	"github.com/jmylchreest/colorprism/pkg/colour"
	"github.com/jmylchreest/colorprism/pkg/geometry"
)

// DefaultSupersample is the number of samples per output pixel along each
// axis.
const DefaultSupersample = 4

// Renderer rasterises samplers into images.
type Renderer struct {
	logger      hclog.Logger
	supersample int
	background  colour.RGBA
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithSupersample sets the samples per pixel along each axis. Values below 1
// are treated as 1.
func WithSupersample(n int) Option {
	return func(r *Renderer) { r.supersample = max(1, n) }
}

// WithBackground fills pixels where the sampler draws nothing.
func WithBackground(c colour.RGBA) Option {
	return func(r *Renderer) { r.background = c }
}

// New creates a Renderer. A nil logger discards output.
func New(logger hclog.Logger, opts ...Option) *Renderer {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	r := &Renderer{
		logger:      logger,
		supersample: DefaultSupersample,
		background:  colour.Transparent,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Render samples s over a width x height widget and returns the image. Widget
// coordinates map one to one onto output pixels.
func (r *Renderer) Render(s Sampler, width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image size %dx%d", width, height)
	}

	start := time.Now()
	ss := r.supersample
	src := image.NewNRGBA(image.Rect(0, 0, width*ss, height*ss))
	for y := range height * ss {
		for x := range width * ss {
			p := geometry.Pt((float64(x)+0.5)/float64(ss), (float64(y)+0.5)/float64(ss))
			c, ok := s.Sample(p)
			if !ok {
				c = r.background
			}
			src.SetNRGBA(x, y, c.NRGBA())
		}
	}

	if ss == 1 {
		r.logger.Debug("rendered", "width", width, "height", height, "elapsed", time.Since(start))
		return src, nil
	}

	// Scale in premultiplied space so transparent samples do not darken edges.
	scaled := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(scaled, scaled.Bounds(), src, src.Bounds(), xdraw.Src, nil)

	dst := image.NewNRGBA(scaled.Bounds())
	xdraw.Draw(dst, dst.Bounds(), scaled, image.Point{}, xdraw.Src)

	r.logger.Debug("rendered",
		"width", width,
		"height", height,
		"supersample", ss,
		"elapsed", time.Since(start))
	return dst, nil
}

// WritePNG renders s and encodes it to w.
func (r *Renderer) WritePNG(w io.Writer, s Sampler, width, height int) error {
	img, err := r.Render(s, width, height)
	if err != nil {
		return err
	}
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("failed to encode png: %w", err)
	}
	return nil
}

// WriteFile renders s to a PNG file at path. Nothing is created when
// rendering fails, and a partly written file is removed.
func (r *Renderer) WriteFile(path string, s Sampler, width, height int) error {
	img, err := r.Render(s, width, height)
	if err != nil {
		return err
	}

	file, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := png.Encode(file, img); err != nil {
		file.Close()
		os.Remove(path)
		return fmt.Errorf("failed to encode png: %w", err)
	}
	if err := file.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to write output file: %w", err)
	}

	r.logger.Info("wrote image", "path", path, "width", width, "height", height)
	return nil
}

// At converts a pixel of a rendered image back to a colour.
func At(img image.Image, x, y int) colour.RGBA {
	return colour.FromColor(img.At(x, y))
}
