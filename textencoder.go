package lzss

import "fmt"

// A TextEncoder is an Encoder that produces a human-readable view of the
// compression instead of the bit-packed format. Matches are replaced with
// <Length,Distance> symbols. Useful for inspecting what a MatchFinder did
// with the input.
type TextEncoder struct{}

// Reset clears any internal state. TextEncoder keeps none.
func (t TextEncoder) Reset() {}

// Encode appends the text rendering of src and matches to dst.
func (t TextEncoder) Encode(dst []byte, src []byte, matches []Match) []byte {
	pos := 0
	for _, m := range matches {
		if m.Unmatched > 0 {
			dst = append(dst, src[pos:pos+m.Unmatched]...)
			pos += m.Unmatched
		}
		if m.Length > 0 {
			dst = append(dst, []byte(fmt.Sprintf("<%d,%d>", m.Length, m.Distance))...)
			pos += m.Length
		}
	}
	if pos < len(src) {
		dst = append(dst, src[pos:]...)
	}
	return dst
}
