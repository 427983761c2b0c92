package lzss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	ErrInvalidConfig    = errors.New("lzss: invalid configuration")
	ErrInvalidInput     = errors.New("lzss: compressed input shorter than header")
	ErrTruncated        = errors.New("lzss: truncated token stream")
	ErrInvalidReference = errors.New("lzss: invalid back-reference")
	ErrInternal         = errors.New("lzss: internal encoder error")
)
