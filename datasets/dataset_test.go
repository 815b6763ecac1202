package datasets

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeBounds(t *testing.T) {
	for _, noise := range []float64{0, 1, 20, 100} {
		X := [][]float64{{0, 255, 255 + noise}, {127, noise, 3}}
		Normalize(X, noise)
		lo := noise / (255 + 2*noise)
		hi := 1.0
		for _, row := range X {
			for _, v := range row {
				require.GreaterOrEqual(t, v, lo-1e-12)
				require.LessOrEqual(t, v, hi+1e-12)
				require.GreaterOrEqual(t, v, 0.0)
				require.LessOrEqual(t, v, 1.0)
			}
		}
		assert.InDelta(t, lo, X[0][0], 1e-12)
		assert.InDelta(t, hi, X[0][2], 1e-12)
	}
}

func TestOneHot(t *testing.T) {
	Y := OneHot([]uint16{0, 2, 1, 2}, 3)
	assert.Equal(t, [][]float64{{1, 0, 0}, {0, 0, 1}, {0, 1, 0}, {0, 0, 1}}, Y)
	for i, row := range Y {
		assert.Equal(t, []uint16{0, 2, 1, 2}[i], uint16(ArgMax(row)))
	}
}

func TestTensorShapes(t *testing.T) {
	X := [][]float64{{1, 2, 3, 4}, {5, 6, 7, 8}}

	flat, err := Tensor(X, false)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, []int(flat.Shape()))

	withChannel, err := Tensor(X, true)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 1}, []int(withChannel.Shape()))

	back, err := Rows(withChannel)
	require.NoError(t, err)
	assert.Equal(t, X, back)

	_, err = Tensor([][]float64{{1}, {1, 2}}, false)
	require.ErrorIs(t, err, ErrRagged)

	_, err = Tensor(nil, false)
	require.ErrorIs(t, err, ErrEmpty)
}

func TestDatasetY(t *testing.T) {
	c := Dataset{X: [][]float64{{0}, {1}}, Labels: []uint16{1, 0}}
	require.NoError(t, c.Validate())
	assert.False(t, c.IsRegression())
	assert.Equal(t, [][]float64{{0, 1, 0}, {1, 0, 0}}, c.Y(3))

	r := Dataset{X: [][]float64{{0}}, Targets: [][6]float64{{1, 2, 3, 4, 5, 6}}}
	require.NoError(t, r.Validate())
	assert.True(t, r.IsRegression())
	assert.Equal(t, [][]float64{{1, 2, 3, 4, 5, 6}}, r.Y(3))

	bad := Dataset{X: [][]float64{{0}, {1}}, Labels: []uint16{1}}
	require.Error(t, bad.Validate())
}

func TestCompressedRoundTrip(t *testing.T) {
	d := &Dataset{
		X:       [][]float64{{0.25, 0.5}, {0.75, 1}},
		Targets: [][6]float64{{0.1, 0.2, 0.3, 0.4, 0.5, 0.6}, {0, 0, 1, 1, 0, 1}},
		Noise:   20,
	}
	var buf bytes.Buffer
	require.NoError(t, d.WriteCompressed(&buf))
	back, err := ReadCompressed(&buf)
	require.NoError(t, err)
	assert.Equal(t, d, back)

	name := filepath.Join(t.TempDir(), "set.json.lzw")
	c := &Dataset{X: [][]float64{{1, 0}}, Labels: []uint16{2}}
	require.NoError(t, c.WriteCompressedToFile(name))
	back, err = ReadCompressedFromFile(name)
	require.NoError(t, err)
	assert.Equal(t, c, back)
}
