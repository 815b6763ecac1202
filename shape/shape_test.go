package shape

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jbeda/geom"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how many numbers were drawn
type countingSource struct {
	*rand.Rand
	draws int
}

func (c *countingSource) Float64() float64 {
	c.draws++
	return c.Rand.Float64()
}

func (c *countingSource) Intn(n int) int {
	c.draws++
	return c.Rand.Intn(n)
}

func TestRectangleCentered(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		s := NewRectangle(rng, false)
		require.Equal(t, Rectangle, s.Kind)
		require.Equal(t, 4, s.Len())

		b := s.Bounds()
		side := b.Width()
		require.GreaterOrEqual(t, side, 0.3*FigSize)
		require.Less(t, side, 1.0*FigSize)
		require.InDelta(t, side, b.Height(), 1e-12)

		assert.InDelta(t, FigSize/2, (b.Min.X+b.Max.X)/2, 1e-12)
		assert.InDelta(t, FigSize/2, (b.Min.Y+b.Max.Y)/2, 1e-12)
	}
}

func TestRectangleFreePairing(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ref := rand.New(rand.NewSource(7))
	s := NewRectangle(rng, true)

	c0, c1, c2, c3 := ref.Float64(), ref.Float64(), ref.Float64(), ref.Float64()
	assert.Equal(t, []float64{math.Max(c0, c1), math.Max(c0, c1), math.Min(c0, c1), math.Min(c0, c1)}, s.U)
	assert.Equal(t, []float64{math.Min(c2, c3), math.Max(c2, c3), math.Max(c2, c3), math.Min(c2, c3)}, s.V)
}

func TestDiskBoundary(t *testing.T) {
	for _, free := range []bool{false, true} {
		for seed := int64(0); seed < 200; seed++ {
			src := &countingSource{Rand: rand.New(rand.NewSource(seed))}
			ref := rand.New(rand.NewSource(seed))
			s := NewDisk(src, free)
			require.Equal(t, DiskSegments, s.Len())

			center := geom.Coord{X: FigSize / 2, Y: FigSize / 2}
			if free {
				center.X = ref.Float64()
				center.Y = ref.Float64()
				require.Equal(t, 3, src.draws)
			} else {
				require.Equal(t, 1, src.draws)
			}
			radius := (0.3 + 0.7*ref.Float64()) * FigSize / 2
			require.GreaterOrEqual(t, radius, 0.15*FigSize)
			require.Less(t, radius, 0.5*FigSize)

			points := s.Points()
			for _, p := range points {
				require.InDelta(t, radius, p.DistanceFrom(center), 1e-9)
			}
			require.InDelta(t, points[0].X, points[DiskSegments-1].X, 1e-12)
			require.InDelta(t, points[0].Y, points[DiskSegments-1].Y, 1e-12)
		}
	}
}

func TestTriangleCentered(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	s := NewTriangle(rng, false)
	require.Equal(t, 3, s.Len())
	assert.Equal(t, FigSize/2, s.U[0])
	assert.InDelta(t, s.U[1]-FigSize/2, FigSize/2-s.U[2], 1e-12)
	assert.Equal(t, s.V[1], s.V[2])
	assert.Greater(t, s.Area(), 0.0)
}

func TestTriangleFreeDrawOrder(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	ref := rand.New(rand.NewSource(11))
	s := NewTriangle(rng, true)

	var want [6]float64
	for i := 0; i < 3; i++ {
		want[2*i] = ref.Float64()
	}
	for i := 0; i < 3; i++ {
		want[2*i+1] = ref.Float64()
	}
	assert.Equal(t, want[:], s.Vertices())

	back := FromVertices(want)
	assert.Equal(t, s, back)
}

func TestDegenerateTriangleKept(t *testing.T) {
	s := FromVertices([6]float64{0.1, 0.1, 0.5, 0.5, 0.9, 0.9})
	assert.Equal(t, 0.0, s.Area())
}

func TestRandomKinds(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	var counts [Classes]int
	for i := 0; i < 300; i++ {
		s := Random(rng, true)
		require.Less(t, int(s.Kind), Classes)
		counts[s.Kind]++
	}
	for k, c := range counts {
		assert.NotZero(t, c, Kind(k).String())
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "rectangle", Rectangle.String())
	assert.Equal(t, "disk", Disk.String())
	assert.Equal(t, "triangle", Triangle.String())
	assert.Equal(t, "unknown", Kind(9).String())
}
