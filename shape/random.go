package shape

import "math"

// Source is the randomness used to draw shapes, *rand.Rand satisfies it.
// The order of the draws is fixed for every generator below, so a seeded
// source reproduces the same shapes.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// DiskSegments is the number of boundary samples of the disk polygon
const DiskSegments = 50

// scale maps an uniform draw into [0.3, 1.0)
func scale(rng Source) float64 {
	return 0.3 + 0.7*rng.Float64()
}

// NewRectangle draws a rectangle. Centered squares use one draw, free
// rectangles use four draws paired as min/max, which does not sample all
// rectangles uniformly.
func NewRectangle(rng Source, free bool) Shape {
	var top, bottom, left, right float64
	if free {
		var c [4]float64
		for i := range c {
			c[i] = rng.Float64()
		}
		top = math.Max(c[0], c[1])
		bottom = math.Min(c[0], c[1])
		left = math.Min(c[2], c[3])
		right = math.Max(c[2], c[3])
	} else {
		side := scale(rng) * FigSize
		top = FigSize/2 + side/2
		bottom = FigSize/2 - side/2
		left = bottom
		right = top
	}
	return Shape{
		Kind: Rectangle,
		U:    []float64{top, top, bottom, bottom},
		V:    []float64{left, right, right, left},
	}
}

// NewDisk draws a disk approximated by DiskSegments points. The free center
// is drawn before the radius.
func NewDisk(rng Source, free bool) Shape {
	var cx, cy = FigSize / 2, FigSize / 2
	if free {
		cx = rng.Float64()
		cy = rng.Float64()
	}
	radius := scale(rng) * FigSize / 2

	var s = Shape{
		Kind: Disk,
		U:    make([]float64, DiskSegments),
		V:    make([]float64, DiskSegments),
	}
	for i := 0; i < DiskSegments; i++ {
		// first and last sample coincide
		t := 2 * math.Pi * float64(i) / float64(DiskSegments-1)
		s.U[i] = cx + math.Cos(t)*radius
		s.V[i] = cy + math.Sin(t)*radius
	}
	return s
}

// NewTriangle draws a triangle. Free triangles take the three x coordinates
// first and then the three y coordinates; collinear triangles are kept.
func NewTriangle(rng Source, free bool) Shape {
	var s = Shape{
		Kind: Triangle,
		U:    make([]float64, 3),
		V:    make([]float64, 3),
	}
	if free {
		for i := range s.U {
			s.U[i] = rng.Float64()
		}
		for i := range s.V {
			s.V[i] = rng.Float64()
		}
		return s
	}
	size := scale(rng) * FigSize / 2
	middle := FigSize / 2
	s.U[0], s.U[1], s.U[2] = middle, middle+size, middle-size
	s.V[0], s.V[1], s.V[2] = middle+size, middle-size, middle-size
	return s
}

// New draws a shape of the given kind
func New(kind Kind, rng Source, free bool) Shape {
	switch kind {
	case Rectangle:
		return NewRectangle(rng, free)
	case Disk:
		return NewDisk(rng, free)
	default:
		return NewTriangle(rng, free)
	}
}

// Random draws the kind uniformly and then the shape
func Random(rng Source, free bool) Shape {
	return New(Kind(rng.Intn(Classes)), rng, free)
}
