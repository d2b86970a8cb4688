package lzss

// A BitWriter accumulates individual bits into a growing byte buffer,
// most-significant bit first within each byte. The zero value is ready to
// use; NewBitWriter pre-sizes the buffer when the output size is known.
type BitWriter struct {
	buf  []byte
	cur  byte
	nbit uint8 // bits held in cur, always 0-7 between calls
}

// NewBitWriter returns a BitWriter whose buffer has room for sizeHint bytes.
func NewBitWriter(sizeHint int) *BitWriter {
	return &BitWriter{buf: make([]byte, 0, sizeHint)}
}

// WriteBit appends a single bit to the stream.
func (w *BitWriter) WriteBit(bit bool) {
	w.cur <<= 1
	if bit {
		w.cur |= 1
	}
	w.nbit++
	if w.nbit == 8 {
		w.buf = append(w.buf, w.cur)
		w.cur = 0
		w.nbit = 0
	}
}

// WriteBits appends the low width bits of v, most-significant bit first.
// Bits of v above width are ignored.
func (w *BitWriter) WriteBits(v uint32, width uint8) {
	for i := width; i > 0; i-- {
		w.WriteBit(v&(1<<(i-1)) != 0)
	}
}

// WriteUvarint appends v as a sequence of 7-bit groups, least-significant
// group first, with the high bit of each group byte flagging that another
// group follows. Zero is encoded as a single zero byte.
func (w *BitWriter) WriteUvarint(v uint32) {
	for v > 127 {
		w.WriteBits(0x80|v&0x7f, 8)
		v >>= 7
	}
	w.WriteBits(v, 8)
}

// Flush byte-aligns the stream: pending bits become the most-significant
// bits of a final byte, zero-filled on the right. Flushing an aligned
// writer is a no-op.
func (w *BitWriter) Flush() {
	if w.nbit == 0 {
		return
	}
	w.buf = append(w.buf, w.cur<<(8-w.nbit))
	w.cur = 0
	w.nbit = 0
}

// Bytes returns the bytes written so far. Flush first if the stream may
// end off a byte boundary.
func (w *BitWriter) Bytes() []byte {
	return w.buf
}

// Len returns the number of complete bytes written so far.
func (w *BitWriter) Len() int {
	return len(w.buf)
}
