// Package autotune searches a grid of lzss.Config values for the one that
// best balances compression ratio against throughput over a set of sample
// buffers. It is grounded on the original LZSS implementation's parameter
// tuner: benchmark every (window, min-match) pair against every sample,
// average ratio and speed, and score each pair by a caller-weighted
// combination of the two.
//
// Tune has no concept of state carried between calls: one call is one
// self-contained grid search, consistent with the codec's own no-streaming,
// single-shot design.
package autotune

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kestrelcodec/lzss"
)

// Trial is one (Config, all samples) measurement.
type Trial struct {
	Config               lzss.Config
	Ratio                float64 // compressed/original, averaged across samples and runs
	CompressThroughput   float64 // bytes/sec
	DecompressThroughput float64 // bytes/sec
	Score                float64 // higher is better; see TuneOptions.RatioPriority
}

// Result is the outcome of one Tune call.
type Result struct {
	Best      Trial // highest combined score
	BestRatio Trial // lowest Ratio regardless of speed
	BestSpeed Trial // highest average throughput regardless of ratio
	Trials    []Trial
}

// TuneOptions configures the parameter grid and scoring of a Tune call.
type TuneOptions struct {
	// WindowSizes and MinMatchLengths form the grid of lzss.Config values
	// tried; every combination is benchmarked. Defaults to DefaultOptions's
	// values when left nil.
	WindowSizes     []uint32
	MinMatchLengths []uint32

	// RatioPriority weights compression ratio against throughput when
	// picking Result.Best: 1.0 scores by ratio alone, 0.0 by speed alone.
	RatioPriority float64

	// Concurrency bounds how many configurations are benchmarked at once;
	// each configuration runs over all samples within a single trial.
	Concurrency int

	// Runs is how many times each sample is compressed and decompressed
	// per configuration, to smooth out timing noise.
	Runs int
}

// DefaultOptions returns the grid and weights the reference tuner used.
func DefaultOptions() TuneOptions {
	return TuneOptions{
		WindowSizes:     []uint32{256, 512, 1024, 2048, 4096, 8192, 16384, 32768, 65535},
		MinMatchLengths: []uint32{3, 4, 5, 6, 8},
		RatioPriority:   0.5,
		Concurrency:     4,
		Runs:            3,
	}
}

// Tune benchmarks every (window, min-match) combination in opts against
// every sample and returns the best configurations found. Trials run
// concurrently, bounded by opts.Concurrency; a cancelled ctx stops
// dispatching new trials and Tune returns ctx.Err().
func Tune(ctx context.Context, samples [][]byte, opts TuneOptions) (Result, error) {
	if len(samples) == 0 {
		return Result{}, fmt.Errorf("autotune: no samples provided")
	}

	defaults := DefaultOptions()
	if opts.WindowSizes == nil {
		opts.WindowSizes = defaults.WindowSizes
	}
	if opts.MinMatchLengths == nil {
		opts.MinMatchLengths = defaults.MinMatchLengths
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = defaults.Concurrency
	}
	if opts.Runs <= 0 {
		opts.Runs = defaults.Runs
	}

	type job struct {
		window, minMatch uint32
	}
	var jobs []job
	for _, w := range opts.WindowSizes {
		for _, m := range opts.MinMatchLengths {
			jobs = append(jobs, job{w, m})
		}
	}

	trials := make([]Trial, len(jobs))
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(opts.Concurrency)

	for i, j := range jobs {
		i, j := i, j
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			cfg, err := lzss.New(j.window, j.minMatch)
			if err != nil {
				return fmt.Errorf("autotune: %w", err)
			}
			trial, err := benchmarkConfig(cfg, samples, opts.Runs)
			if err != nil {
				return fmt.Errorf("autotune: trial window=%d min-match=%d: %w", j.window, j.minMatch, err)
			}
			trials[i] = trial
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return Result{}, err
	}

	return summarize(trials, opts.RatioPriority), nil
}

func benchmarkConfig(cfg lzss.Config, samples [][]byte, runs int) (Trial, error) {
	var totalIn, totalOut int
	var compressElapsed, decompressElapsed time.Duration

	for _, sample := range samples {
		for r := 0; r < runs; r++ {
			start := time.Now()
			enc, err := lzss.Compress(cfg, sample)
			if err != nil {
				return Trial{}, err
			}
			compressElapsed += time.Since(start)

			start = time.Now()
			if _, err := lzss.Decompress(cfg, enc); err != nil {
				return Trial{}, err
			}
			decompressElapsed += time.Since(start)

			totalIn += len(sample)
			totalOut += len(enc)
		}
	}

	ratio := 1.0
	if totalIn > 0 {
		ratio = float64(totalOut) / float64(totalIn)
	}

	return Trial{
		Config:               cfg,
		Ratio:                ratio,
		CompressThroughput:   throughput(totalIn, compressElapsed),
		DecompressThroughput: throughput(totalIn, decompressElapsed),
	}, nil
}

func throughput(bytes int, d time.Duration) float64 {
	if d <= 0 {
		return 0
	}
	return float64(bytes) / d.Seconds()
}

// summarize scores every trial and picks the best-by-score, best-by-ratio,
// and best-by-speed trials. Scoring matches the reference tuner: invert
// ratio so lower (better compression) scores higher, normalize speed to a
// comparable range, and blend the two by ratioPriority.
func summarize(trials []Trial, ratioPriority float64) Result {
	var res Result
	bestScore, bestRatio, bestSpeed := -1.0, -1.0, -1.0

	for i := range trials {
		t := &trials[i]

		ratioScore := 0.0
		if t.Ratio > 0 {
			ratioScore = 1.0 / t.Ratio
		}
		avgSpeed := (t.CompressThroughput + t.DecompressThroughput) / 2
		speedScore := avgSpeed / 100.0
		t.Score = ratioScore*ratioPriority + speedScore*(1-ratioPriority)

		if t.Score > bestScore {
			bestScore = t.Score
			res.Best = *t
		}
		if bestRatio < 0 || t.Ratio < bestRatio {
			bestRatio = t.Ratio
			res.BestRatio = *t
		}
		if avgSpeed > bestSpeed {
			bestSpeed = avgSpeed
			res.BestSpeed = *t
		}
	}

	res.Trials = trials
	return res
}
