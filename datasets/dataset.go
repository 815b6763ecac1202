// Package datasets implements the labeled sample matrix handed to the models
package datasets

import "github.com/pkg/errors"

// Dataset is a matrix of samples with either category labels or coordinate targets
type Dataset struct {
	// X holds one normalized image per row
	X [][]float64 `json:"x"`

	// Labels are the category ids, for classification sets
	Labels []uint16 `json:"labels,omitempty"`

	// Targets are the flattened triangle vertices, for regression sets
	Targets [][6]float64 `json:"targets,omitempty"`

	// Noise is the noise level the images were generated and normalized with
	Noise float64 `json:"noise"`
}

// Len returns the number of samples
func (d *Dataset) Len() int {
	return len(d.X)
}

// Width returns the number of values per sample
func (d *Dataset) Width() int {
	if len(d.X) == 0 {
		return 0
	}
	return len(d.X[0])
}

// IsRegression reports whether the samples carry coordinate targets
func (d *Dataset) IsRegression() bool {
	return d.Targets != nil
}

// Y returns the label matrix, one-hot rows of the given width for
// classification sets or raw coordinate rows for regression sets
func (d *Dataset) Y(classes int) [][]float64 {
	if d.IsRegression() {
		var ret = make([][]float64, len(d.Targets))
		for i := range d.Targets {
			ret[i] = append([]float64(nil), d.Targets[i][:]...)
		}
		return ret
	}
	return OneHot(d.Labels, classes)
}

// Validate checks that every sample has exactly one label
func (d *Dataset) Validate() error {
	var labels = len(d.Labels)
	if d.IsRegression() {
		labels = len(d.Targets)
	}
	if labels != len(d.X) {
		return errors.Errorf("datasets: %d samples but %d labels", len(d.X), labels)
	}
	for i := range d.X {
		if len(d.X[i]) != d.Width() {
			return errors.Wrapf(ErrRagged, "sample %d", i)
		}
	}
	return nil
}
