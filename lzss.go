// Package lzss implements LZSS compression with a bit-packed token stream.
//
// The compressed format is a sequence of bits, most-significant first
// within each byte: a varint length prefix, then one token per literal or
// back-reference until that many bytes have been produced. A literal is a
// 0 bit followed by the byte; a back-reference is a 1 bit followed by a
// fixed-width distance and a fixed-width length. The field widths and the
// minimum match length come from a Config that the encoder and decoder
// must agree on out of band; the format carries no self-describing header.
//
// Match finding and encoding are separate stages connected by a stream of
// Match values, so the exhaustive reference search can be swapped for the
// faster hash-based one without touching the format.
package lzss

import "fmt"

// A Config fixes the token geometry of a compressed stream: how many bits
// encode a back-reference distance and length, and the shortest run worth
// encoding as a reference. It has no internal mutable state and may be
// copied freely.
type Config struct {
	offsetBits uint8
	lengthBits uint8
	minLength  uint32
	maxOffset  uint32
	maxLength  uint32
}

// NewConfig returns a Config with the given distance and length field
// widths and minimum match length. Both widths must be at least 1 and a
// whole back-reference token (flag + distance + length) must fit in 32
// bits; minLength must be at least 1.
func NewConfig(offsetBits, lengthBits uint8, minLength uint32) (Config, error) {
	if offsetBits < 1 || lengthBits < 1 || int(offsetBits)+int(lengthBits)+1 > 32 {
		return Config{}, fmt.Errorf("%w: token of 1+%d+%d bits must fit in 32", ErrBadConfig, offsetBits, lengthBits)
	}
	if minLength < 1 {
		return Config{}, fmt.Errorf("%w: minimum match length must be at least 1", ErrBadConfig)
	}
	return Config{
		offsetBits: offsetBits,
		lengthBits: lengthBits,
		minLength:  minLength,
		maxOffset:  1<<offsetBits - 1,
		maxLength:  1<<lengthBits - 1,
	}, nil
}

// Default returns the conventional configuration: 10-bit distances (window
// of 1023 bytes), 6-bit lengths (matches up to 63 bytes), minimum match
// length 2.
func Default() Config {
	c, _ := NewConfig(10, 6, 2)
	return c
}

// MaxOffset returns the largest encodable back-reference distance.
func (c Config) MaxOffset() uint32 { return c.maxOffset }

// MaxLength returns the largest encodable match length.
func (c Config) MaxLength() uint32 { return c.maxLength }

// MinLength returns the shortest run encoded as a back-reference.
func (c Config) MinLength() uint32 { return c.minLength }

// UpperBound returns the worst-case encoded size in bytes for n input
// bytes: every byte emitted as a literal token (9 bits each) plus an
// allowance for the length prefix.
func (c Config) UpperBound(n int) int {
	return (32 + 9*n + 7) / 8
}

// OriginalLength reads the decompressed length from the front of a
// compressed stream without decoding the rest.
func (c Config) OriginalLength(src []byte) (uint32, error) {
	return NewBitReader(src).ReadUvarint()
}
