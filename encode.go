package lzss

// Encode compresses src using the exhaustive reference match finder. The
// result decodes with Decode on the same Config.
func (c Config) Encode(src []byte) []byte {
	return c.EncodeWith(&BruteForceMatchFinder{Config: c}, src)
}

// EncodeWith compresses src using matches from f. Matches that do not fit
// the configured field widths are split or demoted to literals, so any
// MatchFinder implementation yields a stream Decode can reverse.
func (c Config) EncodeWith(f MatchFinder, src []byte) []byte {
	e := BitEncoder{Config: c}
	return e.Encode(nil, src, f.FindMatches(nil, src))
}

// A BitEncoder packs a match stream into the wire format: a varint length
// prefix, then a 0 bit + 8-bit byte per literal and a 1 bit + distance +
// length per back-reference, zero-padded to a byte boundary at the end.
type BitEncoder struct {
	Config Config
}

// Reset clears any internal state. BitEncoder keeps none.
func (e BitEncoder) Reset() {}

// Encode appends the compressed form of src to dst.
func (e BitEncoder) Encode(dst []byte, src []byte, matches []Match) []byte {
	c := e.Config
	w := NewBitWriter(c.UpperBound(len(src)))
	w.WriteUvarint(uint32(len(src)))

	pos := 0
	for _, m := range matches {
		for i := 0; i < m.Unmatched; i++ {
			w.WriteBit(false)
			w.WriteBits(uint32(src[pos+i]), 8)
		}
		pos += m.Unmatched

		usable := m.Length > 0 && m.Distance > 0 && uint32(m.Distance) <= c.maxOffset
		for remaining := m.Length; remaining > 0; {
			piece := remaining
			if piece > int(c.maxLength) {
				piece = int(c.maxLength)
			}
			if usable && uint32(piece) >= c.minLength {
				w.WriteBit(true)
				w.WriteBits(uint32(m.Distance), c.offsetBits)
				w.WriteBits(uint32(piece), c.lengthBits)
			} else {
				for i := 0; i < piece; i++ {
					w.WriteBit(false)
					w.WriteBits(uint32(src[pos+i]), 8)
				}
			}
			pos += piece
			remaining -= piece
		}
	}

	// A well-formed match stream covers all of src, but a foreign
	// MatchFinder may stop short of the end.
	for ; pos < len(src); pos++ {
		w.WriteBit(false)
		w.WriteBits(uint32(src[pos]), 8)
	}

	w.Flush()
	return append(dst, w.Bytes()...)
}
