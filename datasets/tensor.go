package datasets

import "github.com/pkg/errors"
import "gorgonia.org/tensor"

// ErrRagged is returned when the rows of a matrix differ in length
var ErrRagged = errors.New("datasets: rows differ in length")

// ErrEmpty is returned for a matrix without rows
var ErrEmpty = errors.New("datasets: no rows")

// Tensor copies the rows into a dense (samples, width) tensor, or a
// (samples, width, 1) tensor when channel is set, as consumed by 1D
// convolution models.
func Tensor(X [][]float64, channel bool) (*tensor.Dense, error) {
	if len(X) == 0 {
		return nil, ErrEmpty
	}
	var width = len(X[0])
	for i := range X {
		if len(X[i]) != width {
			return nil, errors.Wrapf(ErrRagged, "row %d has %d values, want %d", i, len(X[i]), width)
		}
	}
	var backing = Flatten(X)
	if channel {
		return tensor.New(tensor.WithShape(len(X), width, 1), tensor.WithBacking(backing)), nil
	}
	return tensor.New(tensor.WithShape(len(X), width), tensor.WithBacking(backing)), nil
}

// Rows copies a 2D tensor back into rows
func Rows(t *tensor.Dense) ([][]float64, error) {
	shape := t.Shape()
	if len(shape) < 2 {
		return nil, errors.Errorf("datasets: tensor of shape %v has no rows", shape)
	}
	data, ok := t.Data().([]float64)
	if !ok {
		return nil, errors.Errorf("datasets: tensor of %v, want float64", t.Dtype())
	}
	var width = shape.TotalSize() / shape[0]
	var ret = make([][]float64, shape[0])
	for i := range ret {
		ret[i] = append([]float64(nil), data[i*width:(i+1)*width]...)
	}
	return ret, nil
}
