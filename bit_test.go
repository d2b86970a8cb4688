package lzss

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bitWord is a single value to write and read back, with the number of
// bits it occupies on the wire.
type bitWord struct {
	width uint8
	v     uint32
}

func genBitWords(r *rand.Rand, maxCount, maxWidth int) []bitWord {
	count := r.Intn(maxCount) + 1
	words := make([]bitWord, count)
	for i := range words {
		width := 1 + r.Intn(maxWidth)
		words[i] = bitWord{
			width: uint8(width),
			v:     uint32(r.Int63()) & uint32(uint64(1)<<width-1),
		}
	}
	return words
}

func TestBitRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for round := 0; round < 200; round++ {
		words := genBitWords(r, 50, 32)

		w := NewBitWriter(0)
		totalBits := 0
		for _, word := range words {
			w.WriteBits(word.v, word.width)
			totalBits += int(word.width)
		}
		w.Flush()
		require.Equal(t, (totalBits+7)/8, w.Len(), "flushed byte count")

		rd := NewBitReader(w.Bytes())
		for i, word := range words {
			got, err := rd.ReadBits(word.width)
			require.NoError(t, err)
			require.Equal(t, word.v, got, "word %d of %d", i, len(words))
		}

		// Only padding is left, always fewer than 8 bits of it.
		_, err := rd.ReadBits(8)
		assert.ErrorIs(t, err, ErrOutOfData)
	}
}

func TestWriteBitOrder(t *testing.T) {
	w := NewBitWriter(0)
	for _, bit := range []bool{true, false, true} {
		w.WriteBit(bit)
	}
	w.Flush()
	// Three bits left-aligned into one byte: 101 padded with zeros.
	require.Equal(t, []byte{0b10100000}, w.Bytes())

	// Flush with nothing pending must not add a byte.
	w.Flush()
	assert.Equal(t, 1, w.Len())
}

func TestWriteBitsTruncates(t *testing.T) {
	a := NewBitWriter(0)
	a.WriteBits(0x1ff, 4)
	a.Flush()

	b := NewBitWriter(0)
	b.WriteBits(0xf, 4)
	b.Flush()

	assert.Equal(t, b.Bytes(), a.Bytes())
}

func TestUvarintEncoding(t *testing.T) {
	cases := []struct {
		v    uint32
		want []byte
	}{
		{0, []byte{0x00}},
		{1, []byte{0x01}},
		{127, []byte{0x7f}},
		{128, []byte{0x80, 0x01}},
		{300, []byte{0xac, 0x02}},
		{1<<32 - 1, []byte{0xff, 0xff, 0xff, 0xff, 0x0f}},
	}
	for _, tc := range cases {
		w := NewBitWriter(0)
		w.WriteUvarint(tc.v)
		w.Flush()
		require.Equal(t, tc.want, w.Bytes(), "encoding of %d", tc.v)

		got, err := NewBitReader(w.Bytes()).ReadUvarint()
		require.NoError(t, err)
		require.Equal(t, tc.v, got, "round trip of %d", tc.v)
	}
}

func TestUvarintUnaligned(t *testing.T) {
	// A varint written after a stray bit still round-trips: the groups are
	// bit-packed, not byte-aligned.
	w := NewBitWriter(0)
	w.WriteBit(true)
	w.WriteUvarint(123456)
	w.Flush()

	r := NewBitReader(w.Bytes())
	bit, err := r.ReadBit()
	require.NoError(t, err)
	require.True(t, bit)
	got, err := r.ReadUvarint()
	require.NoError(t, err)
	assert.Equal(t, uint32(123456), got)
}

func TestReadPastEnd(t *testing.T) {
	r := NewBitReader(nil)
	_, err := r.ReadBit()
	assert.ErrorIs(t, err, ErrOutOfData)

	r = NewBitReader([]byte{0xff})
	_, err = r.ReadBits(9)
	assert.ErrorIs(t, err, ErrOutOfData)

	_, err = NewBitReader([]byte{0x80}).ReadUvarint()
	assert.ErrorIs(t, err, ErrOutOfData)
}
