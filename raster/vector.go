package raster

import "image"
import "image/draw"
import "golang.org/x/image/vector"

// Vector is the default backend, it scan converts polygons with golang.org/x/image/vector
type Vector struct{}

type vectorCanvas struct {
	z         *vector.Rasterizer
	coverage  *image.Alpha
	antialias bool
}

// NewCanvas implements Backend
func (Vector) NewCanvas(size int, antialias bool) (Canvas, error) {
	if size <= 0 {
		return nil, ErrSize
	}
	return &vectorCanvas{
		z:         vector.NewRasterizer(size, size),
		coverage:  image.NewAlpha(image.Rect(0, 0, size, size)),
		antialias: antialias,
	}, nil
}

func (c *vectorCanvas) FillPolygon(xs, ys []float64) error {
	if len(xs) == 0 {
		return nil
	}
	c.z.Reset(c.coverage.Rect.Dx(), c.coverage.Rect.Dy())
	c.z.DrawOp = draw.Over
	c.z.MoveTo(float32(xs[0]), float32(ys[0]))
	for i := 1; i < len(xs); i++ {
		c.z.LineTo(float32(xs[i]), float32(ys[i]))
	}
	c.z.ClosePath()
	c.z.Draw(c.coverage, c.coverage.Bounds(), image.Opaque, image.Point{})
	return nil
}

func (c *vectorCanvas) Intensity(dst []float64) {
	for i, a := range c.coverage.Pix {
		dst[i] = ink(a, c.antialias)
	}
}

func (c *vectorCanvas) Close() error {
	c.z = nil
	c.coverage = nil
	return nil
}

// ink converts 8 bit coverage into intensity
func ink(coverage uint8, antialias bool) float64 {
	if antialias {
		return float64(Background - int(coverage))
	}
	if coverage >= 0x80 {
		return 0
	}
	return Background
}
