package lzss

import "fmt"

// Config holds the immutable parameters shared by Compress and Decompress:
// the sliding-window size the encoder searches within, and the minimum
// match length both sides use to recover back-reference lengths from the
// 1-byte length code. A Config is safe to share across goroutines and
// across many independent encode/decode calls.
type Config struct {
	window   uint32
	minMatch uint32
}

// New validates window and minMatch and returns an immutable Config.
//
// window must be in [1, MaxWindow]; minMatch must be in [MinMatchFloor,
// MaxMinMatch]. Both bounds come from the wire format: distance is a
// nonzero 16-bit field, and length is a 1-byte code added to minMatch.
func New(window, minMatch uint32) (Config, error) {
	if window == 0 || window > MaxWindow {
		return Config{}, fmt.Errorf("%w: window must be in [1,%d], got %d", ErrInvalidConfig, MaxWindow, window)
	}
	if minMatch < MinMatchFloor || minMatch > MaxMinMatch {
		return Config{}, fmt.Errorf("%w: minMatch must be in [%d,%d], got %d", ErrInvalidConfig, MinMatchFloor, MaxMinMatch, minMatch)
	}
	return Config{window: window, minMatch: minMatch}, nil
}

// Default returns the historical baseline configuration: a 4096-byte
// window and a minimum match length of 3.
func Default() Config {
	cfg, err := New(4096, MinMatchFloor)
	if err != nil {
		panic(err) // unreachable: constants satisfy New's own bounds
	}
	return cfg
}

// Window returns the configured sliding-window size.
func (c Config) Window() uint32 { return c.window }

// MinMatch returns the configured minimum match length.
func (c Config) MinMatch() uint32 { return c.minMatch }
