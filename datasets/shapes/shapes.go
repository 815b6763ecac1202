// Package shapes implements the synthetic rectangle, disk and triangle image datasets
package shapes

import "github.com/pkg/errors"

import "github.com/neurlang/shapes/datasets"
import "github.com/neurlang/shapes/raster"
import "github.com/neurlang/shapes/shape"

// Classes is the width of the one-hot classification labels
const Classes = shape.Classes

// TargetWidth is the width of the regression labels
const TargetWidth = 6

// ErrSamples is returned for a negative number of samples
var ErrSamples = errors.New("shapes: negative number of samples")

// Config configures a Generator
type Config struct {
	ImageSize     int            // canvas side in pixels, raster.ImageSize when zero
	Antialias     bool           // keep gray edge pixels instead of bilevel images
	Backend       raster.Backend // polygon filler, raster.Vector when nil
	ProgressEvery int            // log a progress marker every this many samples, 10 when zero
}

// Generator draws shapes, renders them and assembles datasets
type Generator struct {
	renderer      *raster.Renderer
	progressEvery int
}

// NewGenerator creates a Generator
func NewGenerator(c Config) *Generator {
	if c.ProgressEvery <= 0 {
		c.ProgressEvery = 10
	}
	return &Generator{
		renderer: raster.New(c.Backend, raster.Options{
			Size:      c.ImageSize,
			Antialias: c.Antialias,
		}),
		progressEvery: c.ProgressEvery,
	}
}

// Pixels returns the number of values per image
func (g *Generator) Pixels() int {
	return g.renderer.Pixels()
}

// Renderer returns the renderer used for the images
func (g *Generator) Renderer() *raster.Renderer {
	return g.renderer
}

// Image renders one shape with noise. The shape must have been drawn from
// rng right before, pixel noise follows the shape parameters.
func (g *Generator) Image(rng shape.Source, s *shape.Shape, noise float64) ([]float64, error) {
	return g.renderer.Render(rng, shape.FigSize, s.U, s.V, noise)
}

// Classification generates n samples of uniformly chosen kinds labeled by
// their category id. Per sample the kind is drawn first, then the shape,
// then the pixel noise. The images are normalized with datasets.Normalize.
func (g *Generator) Classification(rng shape.Source, n int, noise float64, free bool) (*datasets.Dataset, error) {
	if n < 0 {
		return nil, ErrSamples
	}
	var d = &datasets.Dataset{
		X:      make([][]float64, n),
		Labels: make([]uint16, n),
		Noise:  noise,
	}
	var counts [Classes]int
	for i := 0; i < n; i++ {
		g.progress(i, n)
		s := shape.Random(rng, free)
		img, err := g.Image(rng, &s, noise)
		if err != nil {
			return nil, errors.Wrapf(err, "shapes: sample %d", i)
		}
		d.X[i] = img
		d.Labels[i] = uint16(s.Kind)
		counts[s.Kind]++
	}
	datasets.Normalize(d.X, noise)
	Logger().Info("classification set",
		"samples", n, "noise", noise, "free", free,
		shape.Rectangle.String(), counts[shape.Rectangle],
		shape.Disk.String(), counts[shape.Disk],
		shape.Triangle.String(), counts[shape.Triangle])
	return d, nil
}

// Regression generates n free triangles labeled by their flattened vertices
func (g *Generator) Regression(rng shape.Source, n int, noise float64) (*datasets.Dataset, error) {
	if n < 0 {
		return nil, ErrSamples
	}
	var d = &datasets.Dataset{
		X:       make([][]float64, n),
		Targets: make([][TargetWidth]float64, n),
		Noise:   noise,
	}
	var degenerate int
	for i := 0; i < n; i++ {
		g.progress(i, n)
		s := shape.NewTriangle(rng, true)
		img, err := g.Image(rng, &s, noise)
		if err != nil {
			return nil, errors.Wrapf(err, "shapes: sample %d", i)
		}
		d.X[i] = img
		copy(d.Targets[i][:], s.Vertices())
		if s.Area() == 0 {
			degenerate++
		}
	}
	datasets.Normalize(d.X, noise)
	Logger().Info("regression set", "samples", n, "noise", noise, "degenerate", degenerate)
	return d, nil
}

func (g *Generator) progress(i, n int) {
	if i%g.progressEvery == 0 {
		Logger().Debug("creating data", "sample", i, "of", n)
	}
}
