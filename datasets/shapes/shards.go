package shapes

import "math/rand"

import "github.com/pkg/errors"

import "github.com/neurlang/shapes/datasets"
import "github.com/neurlang/shapes/hash"
import "github.com/neurlang/shapes/parallel"

// Shards splits a large generation into independent single threaded parts.
// Shard k draws from its own source seeded with hash.Seed(Seed, k), the parts
// are joined in shard order, so the result does not depend on Workers.
type Shards struct {
	Seed     int64
	Count    int // number of shards
	PerShard int // samples per shard
	Workers  int // shards generated at once
}

func (s Shards) run(gen func(shard int, rng *rand.Rand) (*datasets.Dataset, error)) ([]*datasets.Dataset, error) {
	if s.Count < 0 || s.PerShard < 0 {
		return nil, ErrSamples
	}
	var parts = make([]*datasets.Dataset, s.Count)
	err := parallel.ForEachErr(s.Count, s.Workers, func(k int) error {
		d, err := gen(k, rand.New(rand.NewSource(hash.Seed(s.Seed, k))))
		if err != nil {
			return errors.Wrapf(err, "shapes: shard %d", k)
		}
		parts[k] = d
		Logger().Info("shard done", "shard", k, "samples", d.Len())
		return nil
	})
	return parts, err
}

// Classification generates Count*PerShard classification samples
func (s Shards) Classification(g *Generator, noise float64, free bool) (*datasets.Dataset, error) {
	parts, err := s.run(func(_ int, rng *rand.Rand) (*datasets.Dataset, error) {
		return g.Classification(rng, s.PerShard, noise, free)
	})
	if err != nil {
		return nil, err
	}
	return join(parts, noise), nil
}

// Regression generates Count*PerShard regression samples
func (s Shards) Regression(g *Generator, noise float64) (*datasets.Dataset, error) {
	parts, err := s.run(func(_ int, rng *rand.Rand) (*datasets.Dataset, error) {
		return g.Regression(rng, s.PerShard, noise)
	})
	if err != nil {
		return nil, err
	}
	d := join(parts, noise)
	if d.Targets == nil {
		d.Targets = [][TargetWidth]float64{}
	}
	return d, nil
}

func join(parts []*datasets.Dataset, noise float64) *datasets.Dataset {
	var d = &datasets.Dataset{Noise: noise}
	for _, p := range parts {
		d.X = append(d.X, p.X...)
		d.Labels = append(d.Labels, p.Labels...)
		d.Targets = append(d.Targets, p.Targets...)
	}
	return d
}
