package main

import "flag"
import "fmt"
import "log/slog"
import "math/rand"
import "os"

import "github.com/klauspost/cpuid/v2"

import "github.com/neurlang/shapes/datasets"
import "github.com/neurlang/shapes/datasets/shapes"
import "github.com/neurlang/shapes/raster"
import "github.com/neurlang/shapes/shape"

func backend(name string) raster.Backend {
	switch name {
	case "vector":
		return raster.Vector{}
	case "gg":
		return raster.GG{}
	}
	panic("unknown backend: " + name)
}

func main() {
	task := flag.String("task", "classification", "classification or regression")
	samples := flag.Int("samples", 300, "number of samples (per shard when sharded)")
	noise := flag.Float64("noise", 20, "pixel noise level")
	free := flag.Bool("free", true, "place classification shapes freely")
	seed := flag.Int64("seed", 42, "random seed")
	testset := flag.Bool("testset", false, "generate the canonical test set, ignores samples, noise, free and seed")
	shards := flag.Int("shards", 0, "split generation into this many seeded shards")
	threads := flag.Int("threads", 0, "shards generated at once, all logical cores when zero")
	size := flag.Int("size", raster.ImageSize, "image side in pixels")
	antialias := flag.Bool("antialias", false, "keep gray edge pixels")
	back := flag.String("backend", "vector", "polygon filler: vector or gg")
	dst := flag.String("dst", "", "dataset destination .json.lzw file")
	verbose := flag.Bool("v", false, "log progress markers")
	flag.Parse()

	var level = slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	shapes.SetLogger(logger)

	workers := *threads
	if workers <= 0 {
		workers = cpuid.CPU.LogicalCores
	}
	if workers <= 0 {
		workers = 1
	}
	logger.Info("cpu", "brand", cpuid.CPU.BrandName, "cores", cpuid.CPU.PhysicalCores, "workers", workers)

	gen := shapes.NewGenerator(shapes.Config{
		ImageSize: *size,
		Antialias: *antialias,
		Backend:   backend(*back),
	})

	if *testset {
		ts := shapes.DefaultTestSet()
		*seed, *samples, *noise, *free = ts.Seed, ts.Samples, ts.Noise, ts.FreeLocation
		*shards = 0
	}

	var set *datasets.Dataset
	var err error
	switch {
	case *shards > 0:
		sh := shapes.Shards{Seed: *seed, Count: *shards, PerShard: *samples, Workers: workers}
		if *task == "regression" {
			set, err = sh.Regression(gen, *noise)
		} else {
			set, err = sh.Classification(gen, *noise, *free)
		}
	case *task == "regression":
		set, err = gen.Regression(rand.New(rand.NewSource(*seed)), *samples, *noise)
	default:
		set, err = gen.Classification(rand.New(rand.NewSource(*seed)), *samples, *noise, *free)
	}
	if err != nil {
		panic(err.Error())
	}

	tensor, err := datasets.Tensor(set.X, true)
	if err == nil {
		fmt.Println("X:", tensor.Shape())
	}
	if set.IsRegression() {
		fmt.Println("Y:", set.Len(), "x", shapes.TargetWidth)
	} else {
		var counts [shape.Classes]int
		for _, l := range set.Labels {
			counts[l]++
		}
		for k, c := range counts {
			fmt.Printf("%s: %d\n", shape.Kind(k), c)
		}
	}
	fmt.Printf("fingerprint: %x\n", shapes.FingerprintDataset(set, workers))

	if *dst != "" {
		if err := set.WriteCompressedToFile(*dst); err != nil {
			panic(err.Error())
		}
		logger.Info("written", "file", *dst)
	}
}
