package lzss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf with %w
// when values are needed.
var (
	ErrOutOfData = errors.New("read past end of compressed data")
	ErrCorrupt   = errors.New("compressed data is corrupt")
	ErrBadConfig = errors.New("invalid configuration")
)
