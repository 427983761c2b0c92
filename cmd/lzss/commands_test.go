package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestCompressDecompressRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	compressed := filepath.Join(dir, "out.lzss")
	out := filepath.Join(dir, "roundtrip.txt")

	content := []byte("round trip through the cli commands, repeated. round trip through the cli commands, repeated.")
	require.NoError(t, os.WriteFile(in, content, 0o644))

	ctx := &Context{Logger: zerolog.Nop()}

	compressCmd := &CompressCmd{In: in, Out: compressed, Window: 4096, MinMatch: 3}
	require.NoError(t, compressCmd.Run(ctx))

	decompressCmd := &DecompressCmd{In: compressed, Out: out, Window: 4096, MinMatch: 3}
	require.NoError(t, decompressCmd.Run(ctx))

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Equal(t, content, got)
}

func TestCompressCmdRejectsMissingInput(t *testing.T) {
	ctx := &Context{Logger: zerolog.Nop()}
	cmd := &CompressCmd{In: "/nonexistent/path/does-not-exist", Out: filepath.Join(t.TempDir(), "out"), Window: 4096, MinMatch: 3}
	require.Error(t, cmd.Run(ctx))
}

func TestCompressCmdRejectsInvalidConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "input.txt")
	require.NoError(t, os.WriteFile(in, []byte("x"), 0o644))

	ctx := &Context{Logger: zerolog.Nop()}
	cmd := &CompressCmd{In: in, Out: filepath.Join(dir, "out"), Window: 0, MinMatch: 3}
	require.Error(t, cmd.Run(ctx))
}

func TestTuneCmdProducesAConfig(t *testing.T) {
	dir := t.TempDir()
	sample := filepath.Join(dir, "sample.txt")
	require.NoError(t, os.WriteFile(sample, []byte("the quick brown fox jumps over the lazy dog, repeatedly, repeatedly, repeatedly."), 0o644))

	ctx := &Context{Logger: zerolog.Nop()}
	cmd := &TuneCmd{Sample: []string{sample}, RatioPriority: 0.5, Concurrency: 2}
	require.NoError(t, cmd.Run(ctx))
}
