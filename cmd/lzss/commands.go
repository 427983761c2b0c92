package main

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/kestrelcodec/lzss"
	"github.com/kestrelcodec/lzss/autotune"
)

// Context is bound into every subcommand's Run method by kong.
type Context struct {
	Logger zerolog.Logger
}

// CompressCmd compresses a single file.
type CompressCmd struct {
	In       string `kong:"arg,required,type=existingfile,help='Input file to compress.'"`
	Out      string `kong:"arg,required,type=path,help='Output file for the compressed container.'"`
	Window   uint32 `kong:"name=window,default=4096,help='Sliding window size (1-65535).'"`
	MinMatch uint32 `kong:"name=min-match,default=3,help='Minimum match length (>=3).'"`
}

func (c *CompressCmd) Run(ctx *Context) error {
	cfg, err := lzss.New(c.Window, c.MinMatch)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	input, err := os.ReadFile(c.In)
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", c.In)
	}

	out, err := lzss.Compress(cfg, input)
	if err != nil {
		return errors.Wrap(err, "compress failed")
	}

	if err := os.WriteFile(c.Out, out, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %q", c.Out)
	}

	ctx.Logger.Info().
		Str("in", c.In).
		Str("out", c.Out).
		Int("original_size", len(input)).
		Int("compressed_size", len(out)).
		Msg("compressed")

	return nil
}

// DecompressCmd decompresses a single container file.
type DecompressCmd struct {
	In       string `kong:"arg,required,type=existingfile,help='Input LZSS container.'"`
	Out      string `kong:"arg,required,type=path,help='Output file for the decompressed bytes.'"`
	Window   uint32 `kong:"name=window,default=4096,help='Sliding window size used at compression time.'"`
	MinMatch uint32 `kong:"name=min-match,default=3,help='Minimum match length used at compression time.'"`
}

func (c *DecompressCmd) Run(ctx *Context) error {
	cfg, err := lzss.New(c.Window, c.MinMatch)
	if err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	input, err := os.ReadFile(c.In)
	if err != nil {
		return errors.Wrapf(err, "failed to read %q", c.In)
	}

	out, err := lzss.Decompress(cfg, input)
	if err != nil {
		return errors.Wrap(err, "decompress failed")
	}

	if err := os.WriteFile(c.Out, out, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write %q", c.Out)
	}

	ctx.Logger.Info().
		Str("in", c.In).
		Str("out", c.Out).
		Uint64("declared_size", lzss.PeekOriginalSize(input)).
		Int("decompressed_size", len(out)).
		Msg("decompressed")

	return nil
}

// TuneCmd searches sample files for a good window/min-match configuration.
type TuneCmd struct {
	Sample        []string `kong:"arg,required,type=existingfile,help='Sample file(s) to benchmark against.'"`
	RatioPriority float64  `kong:"name=ratio-priority,default=0.5,help='Weight of ratio vs throughput (1.0=ratio only, 0.0=speed only).'"`
	Concurrency   int      `kong:"name=concurrency,default=4,help='Number of trials to run concurrently.'"`
}

func (c *TuneCmd) Run(ctx *Context) error {
	samples := make([][]byte, 0, len(c.Sample))
	for _, path := range c.Sample {
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.Wrapf(err, "failed to read sample %q", path)
		}
		samples = append(samples, data)
	}

	opts := autotune.DefaultOptions()
	opts.RatioPriority = c.RatioPriority
	opts.Concurrency = c.Concurrency

	result, err := autotune.Tune(context.Background(), samples, opts)
	if err != nil {
		return errors.Wrap(err, "tuning failed")
	}

	ctx.Logger.Info().
		Uint32("window", result.Best.Config.Window()).
		Uint32("min_match", result.Best.Config.MinMatch()).
		Float64("ratio", result.Best.Ratio).
		Float64("score", result.Best.Score).
		Msgf("best configuration out of %d trials", len(result.Trials))

	fmt.Printf("window=%d min-match=%d ratio=%.4f compress=%.0fB/s decompress=%.0fB/s\n",
		result.Best.Config.Window(), result.Best.Config.MinMatch(), result.Best.Ratio,
		result.Best.CompressThroughput, result.Best.DecompressThroughput)

	return nil
}
