package main

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/evilmucedin/SIMDNumber/hwy/contrib/ftrl"
)

type benchOptions struct {
	Features   int
	Iterations int
	Seed       uint64
	Config     ftrl.Config
}

type benchResult struct {
	FillTime   time.Duration
	VectorTime time.Duration
	ScalarTime time.Duration

	// Sums of every weight after every pass, as a checksum of the run.
	VectorSum float64
	ScalarSum float64

	// Feature updates rejected across all passes.
	VectorRejected int
	ScalarRejected int

	MaxWeightDiff float32
}

// bench fills a table with uniform [0,1) states and gradients, then runs
// the same gradients through a vector copy and a scalar copy of it.
func bench(opts benchOptions) (benchResult, error) {
	var res benchResult
	if opts.Features < 0 || opts.Iterations < 0 {
		return res, fmt.Errorf("features and iterations must be >= 0, got %d and %d", opts.Features, opts.Iterations)
	}

	start := time.Now()
	table, err := ftrl.NewTable(opts.Features, opts.Config)
	if err != nil {
		return res, err
	}
	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0x9e3779b97f4a7c15))
	gradients := make([]float32, opts.Features)
	for i := range gradients {
		gradients[i] = rng.Float32()
		table.SetState(i, ftrl.FeatureState{
			Z:      rng.Float32(),
			N:      rng.Float32(),
			Weight: rng.Float32(),
		})
	}
	res.FillTime = time.Since(start)

	vec := table.Clone()
	start = time.Now()
	for range opts.Iterations {
		n, err := rejected(vec.Apply(gradients))
		if err != nil {
			return res, err
		}
		res.VectorRejected += n
		res.VectorSum += float64(vec.WeightSum())
	}
	res.VectorTime = time.Since(start)

	sca := table.Clone()
	start = time.Now()
	for range opts.Iterations {
		n, err := rejected(sca.ApplyScalar(gradients))
		if err != nil {
			return res, err
		}
		res.ScalarRejected += n
		res.ScalarSum += float64(sca.WeightSum())
	}
	res.ScalarTime = time.Since(start)

	res.MaxWeightDiff, err = vec.MaxWeightDiff(sca)
	return res, err
}

// rejected counts the features of a *ftrl.BatchError. Any other error is
// returned as is.
func rejected(err error) (int, error) {
	if err == nil {
		return 0, nil
	}
	var be *ftrl.BatchError
	if errors.As(err, &be) {
		return len(be.Features), nil
	}
	return 0, err
}
