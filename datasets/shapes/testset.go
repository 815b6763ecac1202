package shapes

import "math/rand"

import "github.com/neurlang/shapes/datasets"
import "github.com/neurlang/shapes/parallel"

// TestSet describes a reproducible held out set. The source is seeded right
// before generating, so equal TestSets give identical samples.
type TestSet struct {
	Seed         int64   // seed of the random source
	Samples      int     // number of samples
	Noise        float64 // pixel noise level
	FreeLocation bool    // place the classification shapes freely, regression triangles are always free
}

// DefaultTestSet is the canonical held out set: 300 noisy freely placed shapes with seed 42
func DefaultTestSet() TestSet {
	return TestSet{
		Seed:         42,
		Samples:      300,
		Noise:        20,
		FreeLocation: true,
	}
}

func (t TestSet) source() *rand.Rand {
	return rand.New(rand.NewSource(t.Seed))
}

// Classification returns the images and one-hot labels of width Classes
func (t TestSet) Classification(g *Generator) (X, Y [][]float64, err error) {
	d, err := g.Classification(t.source(), t.Samples, t.Noise, t.FreeLocation)
	if err != nil {
		return nil, nil, err
	}
	return d.X, d.Y(Classes), nil
}

// Regression returns the images and the raw vertex coordinates of width TargetWidth
func (t TestSet) Regression(g *Generator) (X, Y [][]float64, err error) {
	d, err := g.Regression(t.source(), t.Samples, t.Noise)
	if err != nil {
		return nil, nil, err
	}
	return d.X, d.Y(Classes), nil
}

// TestSetClassification generates the default classification test set
func TestSetClassification() (X, Y [][]float64) {
	X, Y, err := DefaultTestSet().Classification(NewGenerator(Config{}))
	if err != nil {
		panic(err.Error())
	}
	return X, Y
}

// TestSetRegression generates the default regression test set
func TestSetRegression() (X, Y [][]float64) {
	X, Y, err := DefaultTestSet().Regression(NewGenerator(Config{}))
	if err != nil {
		panic(err.Error())
	}
	return X, Y
}

// Fingerprint digests the images and the labels, equal sets have equal fingerprints
func Fingerprint(X, Y [][]float64, workers int) [32]byte {
	h := parallel.NewHasher(len(X) + len(Y))
	parallel.ForEach(len(X)+len(Y), workers, func(i int) {
		if i < len(X) {
			h.MustPutFloats(i, X[i])
		} else {
			h.MustPutFloats(i, Y[i-len(X)])
		}
	})
	return h.Sum()
}

// FingerprintDataset digests the images and labels of a dataset
func FingerprintDataset(d *datasets.Dataset, workers int) [32]byte {
	return Fingerprint(d.X, d.Y(Classes), workers)
}
