package autotune

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/kestrelcodec/lzss"
)

func sampleSet() [][]byte {
	return [][]byte{
		bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 64),
		bytes.Repeat([]byte("abcabcabcabc"), 256),
	}
}

func TestTuneFindsAWorkingConfig(t *testing.T) {
	opts := TuneOptions{
		WindowSizes:     []uint32{256, 4096},
		MinMatchLengths: []uint32{3, 5},
		RatioPriority:   0.5,
		Concurrency:     2,
		Runs:            1,
	}

	result, err := Tune(context.Background(), sampleSet(), opts)
	require.NoError(t, err)
	require.Len(t, result.Trials, 4)
	require.NotZero(t, result.Best.Config.Window())

	enc, err := lzss.Compress(result.Best.Config, sampleSet()[0])
	require.NoError(t, err)
	dec, err := lzss.Decompress(result.Best.Config, enc)
	require.NoError(t, err)
	require.True(t, bytes.Equal(dec, sampleSet()[0]))
}

func TestTuneRejectsEmptySamples(t *testing.T) {
	_, err := Tune(context.Background(), nil, DefaultOptions())
	require.Error(t, err)
}

func TestTuneHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Tune(ctx, sampleSet(), DefaultOptions())
	require.Error(t, err)
}

func TestTuneBestRatioIsNoWorseThanAnyTrial(t *testing.T) {
	opts := TuneOptions{
		WindowSizes:     []uint32{256, 1024, 4096},
		MinMatchLengths: []uint32{3, 4},
		RatioPriority:   1.0,
		Concurrency:     4,
		Runs:            1,
	}
	result, err := Tune(context.Background(), sampleSet(), opts)
	require.NoError(t, err)

	for _, trial := range result.Trials {
		require.LessOrEqual(t, result.BestRatio.Ratio, trial.Ratio)
	}
}

func TestDefaultOptionsAreUsableDirectly(t *testing.T) {
	opts := DefaultOptions()
	require.NotEmpty(t, opts.WindowSizes)
	require.NotEmpty(t, opts.MinMatchLengths)
	require.Positive(t, opts.Concurrency)
	require.Positive(t, opts.Runs)
}

func TestTuneCompletesWithinReasonableTime(t *testing.T) {
	start := time.Now()
	opts := TuneOptions{
		WindowSizes:     []uint32{256, 1024},
		MinMatchLengths: []uint32{3},
		Concurrency:     2,
		Runs:            1,
	}
	_, err := Tune(context.Background(), sampleSet(), opts)
	require.NoError(t, err)
	require.Less(t, time.Since(start), 10*time.Second)
}
