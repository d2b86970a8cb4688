package lzss

// BruteForceMatchFinder is the reference MatchFinder. At each position it
// scans every candidate in the window for the longest common prefix, so it
// costs O(window × match length) per position: fine for small inputs, a
// throughput bottleneck on large ones (use HashMatchFinder there). Its
// output is deterministic for a given Config, which the back-reference
// tests rely on.
type BruteForceMatchFinder struct {
	Config Config
}

// Reset clears any internal state. BruteForceMatchFinder keeps none.
func (b *BruteForceMatchFinder) Reset() {}

// FindMatches looks for matches in src, appends them to dst, and returns dst.
func (b *BruteForceMatchFinder) FindMatches(dst []Match, src []byte) []Match {
	minLength := b.Config.minLength
	unmatched := 0
	for i := 0; i < len(src); {
		distance, length := b.longestMatch(src, i)
		if length >= minLength {
			dst = append(dst, Match{
				Unmatched: unmatched,
				Length:    int(length),
				Distance:  int(distance),
			})
			unmatched = 0
			i += int(length)
		} else {
			unmatched++
			i++
		}
	}
	if unmatched > 0 {
		dst = append(dst, Match{Unmatched: unmatched})
	}
	return dst
}

// longestMatch scans the window before index for the longest prefix of
// src[index:] that repeats earlier data. Candidates are visited left to
// right and replace the best on length >= best, so among equal-length
// matches the one nearest the cursor wins. Positions with no more than
// minLength bytes of lookahead are never searched.
func (b *BruteForceMatchFinder) longestMatch(src []byte, index int) (distance, length uint32) {
	c := b.Config
	n := len(src)
	if index+int(c.minLength) >= n {
		return 0, 0
	}

	bestOffset := 0
	bestLength := 0
	offset := 0
	if index > int(c.maxOffset) {
		offset = index - int(c.maxOffset)
	}
	for ; offset < index; offset++ {
		l := 0
		for offset+l < n && index+l < n && src[offset+l] == src[index+l] {
			l++
		}
		if l >= bestLength {
			bestLength = l
			bestOffset = offset
		}
	}

	if uint32(bestLength) > c.maxLength {
		bestLength = int(c.maxLength)
	}
	return uint32(index - bestOffset), uint32(bestLength)
}
