// Package shape implements the random geometry of the rectangle, disk and triangle shapes
package shape

import "math"
import "github.com/jbeda/geom"

// FigSize is the logical side of the unit square canvas
const FigSize = 1.0

// Kind is the shape category, its value is the category id used as label
type Kind uint16

const (
	Rectangle Kind = iota
	Disk
	Triangle
)

// Classes is the number of shape categories
const Classes = 3

func (k Kind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case Disk:
		return "disk"
	case Triangle:
		return "triangle"
	default:
		return "unknown"
	}
}

// Shape is a closed polygon in unit square coordinates, U are the x and V the y coordinates
type Shape struct {
	Kind Kind
	U, V []float64
}

// Len returns the number of polygon vertices
func (s *Shape) Len() int {
	return len(s.U)
}

// Points returns the polygon vertices
func (s *Shape) Points() (ret []geom.Coord) {
	ret = make([]geom.Coord, len(s.U))
	for i := range s.U {
		ret[i] = geom.Coord{X: s.U[i], Y: s.V[i]}
	}
	return
}

// Bounds returns the bounding box of the polygon vertices
func (s *Shape) Bounds() geom.Rect {
	if len(s.U) == 0 {
		return geom.Rect{}
	}
	var first = geom.Coord{X: s.U[0], Y: s.V[0]}
	var r = geom.Rect{Min: first, Max: first}
	for i := 1; i < len(s.U); i++ {
		r.ExpandToContainCoord(geom.Coord{X: s.U[i], Y: s.V[i]})
	}
	return r
}

// Vertices flattens the vertices as x0, y0, x1, y1, ...
func (s *Shape) Vertices() []float64 {
	var ret = make([]float64, 0, 2*len(s.U))
	for i := range s.U {
		ret = append(ret, s.U[i], s.V[i])
	}
	return ret
}

// Area is the absolute shoelace area, zero for degenerate polygons
func (s *Shape) Area() float64 {
	var sum float64
	for i := range s.U {
		j := (i + 1) % len(s.U)
		sum += s.U[i]*s.V[j] - s.U[j]*s.V[i]
	}
	return math.Abs(sum) / 2
}

// FromVertices builds a triangle back from its flattened 6 element label
func FromVertices(v [6]float64) Shape {
	return Shape{
		Kind: Triangle,
		U:    []float64{v[0], v[2], v[4]},
		V:    []float64{v[1], v[3], v[5]},
	}
}
