package lzss

import (
	"encoding/binary"
	"math/bits"
	"runtime"
)

// This file is based on code from github.com/golang/snappy.

//Copyright (c) 2011 The Snappy-Go Authors. All rights reserved.
//
//Redistribution and use in source and binary forms, with or without
//modification, are permitted provided that the following conditions are
//met:
//
//   * Redistributions of source code must retain the above copyright
//notice, this list of conditions and the following disclaimer.
//   * Redistributions in binary form must reproduce the above
//copyright notice, this list of conditions and the following disclaimer
//in the documentation and/or other materials provided with the
//distribution.
//   * Neither the name of Google Inc. nor the names of its
//contributors may be used to endorse or promote products derived from
//this software without specific prior written permission.
//
//THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
//"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
//LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
//A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
//OWNER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
//SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
//LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
//DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
//THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
//(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
//OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

const inputMargin = 16 - 1

const (
	maxTableSize = 1 << 14
	shift        = 32 - 14
	// tableMask is redundant, but helps the compiler eliminate bounds
	// checks.
	tableMask = maxTableSize - 1
)

// HashMatchFinder is an implementation of the MatchFinder interface based
// on the algorithm used by snappy. It only finds matches of at least 4
// bytes, so its token stream differs from BruteForceMatchFinder's, but it
// runs in roughly linear time and Decode reproduces the same input either
// way. Distances and lengths are kept within the Config's field widths.
type HashMatchFinder struct {
	maxDistance int
	maxLength   int

	table [maxTableSize]uint32
}

// NewHashMatchFinder returns a HashMatchFinder whose matches fit c.
func NewHashMatchFinder(c Config) *HashMatchFinder {
	maxLength := int(c.maxLength)
	if maxLength < 8 {
		// The split loop in FindMatches needs room to keep pieces at least
		// 4 bytes long; BitEncoder re-splits anything over the field width.
		maxLength = 8
	}
	return &HashMatchFinder{
		maxDistance: int(c.maxOffset),
		maxLength:   maxLength,
	}
}

// Reset clears the hash table, preparing the finder for new input.
func (q *HashMatchFinder) Reset() {
	q.table = [maxTableSize]uint32{}
}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (q *HashMatchFinder) FindMatches(dst []Match, src []byte) []Match {
	// sLimit is when to stop looking for offset/length copies; the
	// inputMargin keeps the 32- and 64-bit loads below in bounds.
	sLimit := len(src) - inputMargin
	if sLimit < 1 {
		if len(src) > 0 {
			dst = append(dst, Match{Unmatched: len(src)})
		}
		return dst
	}

	// nextEmit is where in src the next unmatched run starts from.
	nextEmit := 0

	// The encoded form must start with a literal, as there are no previous
	// bytes to copy, so we start looking for hash matches at s == 1.
	s := 1
	nextHash := hash(binary.LittleEndian.Uint32(src[s:]))

	for {
		// Heuristic match skipping: if 32 bytes are scanned with no matches
		// found, start looking only at every other byte, then every third,
		// and so on, so incompressible input is abandoned quickly.
		skip := 32

		nextS := s
		candidate := 0
		for {
			s = nextS
			bytesBetweenHashLookups := skip >> 5
			nextS = s + bytesBetweenHashLookups
			skip += bytesBetweenHashLookups
			if nextS > sLimit {
				goto emitRemainder
			}
			candidate = int(q.table[nextHash&tableMask])
			q.table[nextHash&tableMask] = uint32(s)
			nextHash = hash(binary.LittleEndian.Uint32(src[nextS:]))
			if candidate == 0 || candidate >= s {
				continue
			}
			if s-candidate <= q.maxDistance && binary.LittleEndian.Uint32(src[s:]) == binary.LittleEndian.Uint32(src[candidate:]) {
				break
			}
		}

		// A 4-byte match has been found. Extend it, emit it (split into
		// field-width-sized pieces if needed), and keep emitting matches
		// for the data immediately after until there is no match there.
		for {
			base := s
			s = extendMatch(src, candidate+4, s+4)

			for s-base > q.maxLength {
				// The match is too long; break it up into shorter matches.
				length := q.maxLength
				if s-base < q.maxLength+4 {
					length = s - base - 4
				}
				dst = append(dst, Match{
					Unmatched: base - nextEmit,
					Length:    length,
					Distance:  base - candidate,
				})
				base += length
				candidate += length
				nextEmit = base
			}

			dst = append(dst, Match{
				Unmatched: base - nextEmit,
				Length:    s - base,
				Distance:  base - candidate,
			})
			nextEmit = s
			if s >= sLimit {
				goto emitRemainder
			}

			// Check for an immediate match at s, updating the hash table at
			// s-1 and s along the way.
			x := binary.LittleEndian.Uint64(src[s-1:])
			prevHash := hash(uint32(x >> 0))
			q.table[prevHash&tableMask] = uint32(s - 1)
			currHash := hash(uint32(x >> 8))
			candidate = int(q.table[currHash&tableMask])
			q.table[currHash&tableMask] = uint32(s)
			if candidate == 0 || candidate >= s ||
				s-candidate > q.maxDistance ||
				uint32(x>>8) != binary.LittleEndian.Uint32(src[candidate:]) {
				nextHash = hash(uint32(x >> 16))
				s++
				break
			}
		}
	}

emitRemainder:
	if nextEmit < len(src) {
		dst = append(dst, Match{
			Unmatched: len(src) - nextEmit,
		})
	}
	return dst
}

func hash(u uint32) uint32 {
	return (u * 0x1e35a7bd) >> shift
}

// extendMatch returns the largest k such that k <= len(src) and that
// src[i:i+k-j] and src[j:k] have the same contents.
//
// It assumes that:
//	0 <= i && i < j && j <= len(src)
func extendMatch(src []byte, i, j int) int {
	switch runtime.GOARCH {
	case "amd64":
		// As long as we are 8 or more bytes before the end of src, we can load and
		// compare 8 bytes at a time. If those 8 bytes are equal, repeat.
		for j+8 < len(src) {
			iBytes := binary.LittleEndian.Uint64(src[i:])
			jBytes := binary.LittleEndian.Uint64(src[j:])
			if iBytes != jBytes {
				// If those 8 bytes were not equal, XOR the two 8 byte values, and return
				// the index of the first byte that differs. The BSF instruction finds the
				// least significant 1 bit, the amd64 architecture is little-endian, and
				// the shift by 3 converts a bit index to a byte index.
				return j + bits.TrailingZeros64(iBytes^jBytes)>>3
			}
			i, j = i+8, j+8
		}
	case "386":
		// On a 32-bit CPU, we do it 4 bytes at a time.
		for j+4 < len(src) {
			iBytes := binary.LittleEndian.Uint32(src[i:])
			jBytes := binary.LittleEndian.Uint32(src[j:])
			if iBytes != jBytes {
				return j + bits.TrailingZeros32(iBytes^jBytes)>>3
			}
			i, j = i+4, j+4
		}
	}
	for ; j < len(src) && src[i] == src[j]; i, j = i+1, j+1 {
	}
	return j
}
