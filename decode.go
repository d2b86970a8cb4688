package lzss

import "fmt"

// Decode decompresses a stream produced by Encode or EncodeWith on the
// same Config. It assumes the stream was produced by a matching encoder;
// on malformed input it returns ErrOutOfData or ErrCorrupt rather than
// wrong data, but makes no attempt at recovery.
func (c Config) Decode(src []byte) ([]byte, error) {
	if len(src) == 0 {
		return []byte{}, nil
	}

	r := NewBitReader(src)
	origLen, err := r.ReadUvarint()
	if err != nil {
		return nil, err
	}
	if err := c.checkDecodedSize(origLen, len(src)); err != nil {
		return nil, err
	}

	out := make([]byte, origLen)
	for index := uint32(0); index < origLen; {
		isRef, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if isRef {
			distance, err := r.ReadBits(c.offsetBits)
			if err != nil {
				return nil, err
			}
			length, err := r.ReadBits(c.lengthBits)
			if err != nil {
				return nil, err
			}
			if length == 0 || distance == 0 || distance > index || length > origLen-index {
				return nil, fmt.Errorf("%w: back-reference (distance %d, length %d) at output position %d",
					ErrCorrupt, distance, length, index)
			}
			// Byte-by-byte on purpose: distance may be smaller than length,
			// and each copied byte must be visible to the reads that follow
			// (the self-referential run-length case).
			for i := uint32(0); i < length; i++ {
				out[index+i] = out[index-distance+i]
			}
			index += length
		} else {
			literal, err := r.ReadBits(8)
			if err != nil {
				return nil, err
			}
			out[index] = byte(literal)
			index++
		}
	}
	return out, nil
}

// checkDecodedSize rejects length prefixes no valid stream of encodedLen
// bytes could have produced, before allocating the output buffer. A
// reference token yields at most maxLength bytes, a literal token yields
// one byte per 9 bits; output is bounded by whichever is denser.
func (c Config) checkDecodedSize(origLen uint32, encodedLen int) error {
	tokenBits := 1 + uint64(c.offsetBits) + uint64(c.lengthBits)
	encodedBits := uint64(encodedLen) * 8
	maxOut := encodedBits / tokenBits * uint64(c.maxLength)
	if lit := encodedBits / 9; lit > maxOut {
		maxOut = lit
	}
	if uint64(origLen) > maxOut {
		return fmt.Errorf("%w: length prefix %d exceeds the %d bytes that %d encoded bytes could produce",
			ErrCorrupt, origLen, maxOut, encodedLen)
	}
	return nil
}
