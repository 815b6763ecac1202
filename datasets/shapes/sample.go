package shapes

import "github.com/neurlang/shapes/datasets"

// Sample is one classification image quantized to bytes, usable as the
// input and output of the hashtron classifiers
type Sample struct {
	Pixels []byte
	Size   int
	Label  uint16
}

// Feature packs the 2x2 pixel block at position n into one number
func (s *Sample) Feature(n int) uint32 {
	n %= (s.Size - 1) * (s.Size - 1)
	n += n / (s.Size - 1) // skip the last column
	return uint32(s.Pixels[n]) | uint32(s.Pixels[n+1])<<8 |
		uint32(s.Pixels[n+s.Size])<<16 | uint32(s.Pixels[n+1+s.Size])<<24
}

// Parity is zero, the classes are not balanced
func (s *Sample) Parity() uint16 {
	return 0
}

// Output is the category id
func (s *Sample) Output() uint16 {
	return s.Label
}

// Dataslice exposes a classification dataset sample by sample
type Dataslice struct {
	Set  *datasets.Dataset
	Size int // image side in pixels
}

// Get quantizes sample n
func (d Dataslice) Get(n int) Sample {
	var row = d.Set.X[n]
	var pixels = make([]byte, len(row))
	for i, v := range row {
		switch {
		case v <= 0:
			pixels[i] = 0
		case v >= 1:
			pixels[i] = 255
		default:
			pixels[i] = byte(v*255 + 0.5)
		}
	}
	return Sample{Pixels: pixels, Size: d.Size, Label: d.Set.Labels[n]}
}

// Len returns the number of samples
func (d Dataslice) Len() int {
	return d.Set.Len()
}
