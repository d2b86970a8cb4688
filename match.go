package lzss

// A Match is the basic unit of LZSS compression.
type Match struct {
	Unmatched int // the number of unmatched bytes since the previous match
	Length    int // the number of bytes in the matched string; it may be 0 at the end of the input
	Distance  int // how far back in the stream to copy from
}

// A MatchFinder performs the dictionary stage of compression, looking for
// matches.
type MatchFinder interface {
	// FindMatches looks for matches in src, appends them to dst, and returns dst.
	FindMatches(dst []Match, src []byte) []Match

	// Reset clears any internal state, preparing the MatchFinder to be used with
	// new input.
	Reset()
}

// An Encoder encodes a match stream in its final format.
type Encoder interface {
	// Encode appends the encoded form of src to dst, using the match
	// information from matches.
	Encode(dst []byte, src []byte, matches []Match) []byte

	// Reset clears any internal state, preparing the Encoder to be used with
	// new input.
	Reset()
}
