// Package raster renders filled polygons into flat grayscale intensity buffers
package raster

import "github.com/pkg/errors"

// ImageSize is the default side of the square canvas in pixels
const ImageSize = 100

// Background is the intensity of an empty pixel, ink has intensity 0
const Background = 255

// ErrSize is returned for a canvas without pixels
var ErrSize = errors.New("raster: canvas size must be positive")

// Canvas is a single use pixel grid. Coordinates are device pixels with the
// origin in the top left corner.
type Canvas interface {
	// FillPolygon fills the closed polygon in solid black
	FillPolygon(xs, ys []float64) error

	// Intensity stores one channel per pixel in row-major order into dst
	Intensity(dst []float64)

	// Close releases the canvas
	Close() error
}

// Backend allocates canvases, the canvas starts white
type Backend interface {
	NewCanvas(size int, antialias bool) (Canvas, error)
}

// Noise is the source of the additive pixel noise
type Noise interface {
	Float64() float64
}

// Options configure a Renderer
type Options struct {
	Size      int  // canvas side in pixels, ImageSize when zero
	Antialias bool // keep partial edge coverage, otherwise the image is bilevel
}

// Renderer draws shapes of the logical [0, figsize] square onto fresh canvases
type Renderer struct {
	backend   Backend
	size      int
	antialias bool
}

// New creates a Renderer, a nil backend selects the Vector backend
func New(backend Backend, o Options) *Renderer {
	if backend == nil {
		backend = Vector{}
	}
	if o.Size == 0 {
		o.Size = ImageSize
	}
	return &Renderer{
		backend:   backend,
		size:      o.Size,
		antialias: o.Antialias,
	}
}

// Size returns the canvas side in pixels
func (r *Renderer) Size() int {
	return r.size
}

// Pixels returns the length of a rendered buffer
func (r *Renderer) Pixels() int {
	return r.size * r.size
}

// Render fills the polygon (U, V) given in [0, figsize] coordinates and
// returns the flat intensity buffer with noise*rng.Float64() added to every
// pixel. The noise numbers are drawn even when noise is zero. Geometry
// outside of the square is clipped by the canvas.
func (r *Renderer) Render(rng Noise, figsize float64, U, V []float64, noise float64) ([]float64, error) {
	img, err := r.Draw(figsize, U, V)
	if err != nil {
		return nil, err
	}
	for i := range img {
		img[i] += noise * rng.Float64()
	}
	return img, nil
}

// Draw is Render without noise and without consuming random numbers
func (r *Renderer) Draw(figsize float64, U, V []float64) (img []float64, err error) {
	if r.size <= 0 {
		return nil, ErrSize
	}
	if len(U) != len(V) {
		return nil, errors.Errorf("raster: %d x coordinates but %d y coordinates", len(U), len(V))
	}
	canvas, err := r.backend.NewCanvas(r.size, r.antialias)
	if err != nil {
		return nil, errors.Wrap(err, "raster: new canvas")
	}
	defer func() {
		if cerr := canvas.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "raster: close canvas")
		}
	}()

	xs, ys := r.toDevice(figsize, U, V)
	if err = canvas.FillPolygon(xs, ys); err != nil {
		return nil, errors.Wrap(err, "raster: fill polygon")
	}
	img = make([]float64, r.Pixels())
	canvas.Intensity(img)
	return img, nil
}

// toDevice maps logical coordinates to pixels, the logical y axis points up
func (r *Renderer) toDevice(figsize float64, U, V []float64) (xs, ys []float64) {
	xs = make([]float64, len(U))
	ys = make([]float64, len(V))
	var k = float64(r.size) / figsize
	for i := range U {
		xs[i] = U[i] * k
		ys[i] = (figsize - V[i]) * k
	}
	return
}
