package lzss

// A BitReader consumes bits most-significant first from a byte slice,
// mirroring BitWriter's layout. The slice is borrowed, not copied; the
// caller must not modify it while the reader is in use.
type BitReader struct {
	buf  []byte
	pos  int
	cur  byte
	nbit uint8 // unread bits left in cur, always 0-7 between calls
}

// NewBitReader returns a BitReader positioned at the start of buf.
func NewBitReader(buf []byte) *BitReader {
	return &BitReader{buf: buf}
}

// ReadBit returns the next bit of the stream. It returns ErrOutOfData when
// a fresh byte is needed and the buffer is exhausted.
func (r *BitReader) ReadBit() (bool, error) {
	if r.nbit == 0 {
		if r.pos >= len(r.buf) {
			return false, ErrOutOfData
		}
		r.cur = r.buf[r.pos]
		r.pos++
		r.nbit = 8
	}
	r.nbit--
	return r.cur&(1<<r.nbit) != 0, nil
}

// ReadBits reads a width-bit unsigned integer, most-significant bit first.
func (r *BitReader) ReadBits(width uint8) (uint32, error) {
	var v uint32
	for i := uint8(0); i < width; i++ {
		bit, err := r.ReadBit()
		if err != nil {
			return 0, err
		}
		v <<= 1
		if bit {
			v |= 1
		}
	}
	return v, nil
}

// ReadUvarint reads an integer written by WriteUvarint. Decoding stops on a
// clear continuation flag, or after five groups so a corrupt stream with
// the flag stuck on cannot loop forever.
func (r *BitReader) ReadUvarint() (uint32, error) {
	var v uint32
	shift := uint(0)
	for {
		group, err := r.ReadBits(8)
		if err != nil {
			return 0, err
		}
		v |= (group & 0x7f) << shift
		shift += 7
		if group&0x80 == 0 || shift > 32 {
			break
		}
	}
	return v, nil
}
