package lzss

import (
	"bytes"
	"io/ioutil"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/golang/snappy"
	"github.com/klauspost/compress/flate"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// benchData is compressible text with some structure, long enough to keep
// the hash finder's tables warm but small enough that the brute-force
// finder finishes in reasonable time.
var benchData = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua. "), 256)

func BenchmarkEncode(b *testing.B) {
	c := Default()
	data := benchData[:8192] // the exhaustive search is quadratic-ish
	b.ReportAllocs()
	b.SetBytes(int64(len(data)))
	b.ReportMetric(float64(len(data))/float64(len(c.Encode(data))), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Encode(data)
	}
}

func BenchmarkEncodeHash(b *testing.B) {
	c := Default()
	f := NewHashMatchFinder(c)
	b.ReportAllocs()
	b.SetBytes(int64(len(benchData)))
	b.ReportMetric(float64(len(benchData))/float64(len(c.EncodeWith(f, benchData))), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		f.Reset()
		c.EncodeWith(f, benchData)
	}
}

func BenchmarkDecode(b *testing.B) {
	c := Default()
	enc := c.EncodeWith(NewHashMatchFinder(c), benchData)
	b.ReportAllocs()
	b.SetBytes(int64(len(benchData)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Decode(enc); err != nil {
			b.Fatal(err)
		}
	}
}

// The remaining benchmarks compress the same data with other formats, for
// a rough speed and ratio comparison.

func BenchmarkEncodeGolangSnappy(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchData)))
	buf := new(bytes.Buffer)
	w := snappy.NewBufferedWriter(buf)
	w.Write(benchData)
	w.Close()
	b.ReportMetric(float64(len(benchData))/float64(buf.Len()), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(ioutil.Discard)
		w.Write(benchData)
		w.Close()
	}
}

func BenchmarkEncodeKlauspostFlate(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchData)))
	buf := new(bytes.Buffer)
	w, err := flate.NewWriter(buf, flate.DefaultCompression)
	if err != nil {
		b.Fatal(err)
	}
	w.Write(benchData)
	w.Close()
	b.ReportMetric(float64(len(benchData))/float64(buf.Len()), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(ioutil.Discard)
		w.Write(benchData)
		w.Close()
	}
}

func BenchmarkEncodeKlauspostZstd(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchData)))
	buf := new(bytes.Buffer)
	w, err := zstd.NewWriter(buf)
	if err != nil {
		b.Fatal(err)
	}
	w.Write(benchData)
	w.Close()
	b.ReportMetric(float64(len(benchData))/float64(buf.Len()), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(ioutil.Discard)
		w.Write(benchData)
		w.Close()
	}
}

func BenchmarkEncodeBrotli(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchData)))
	buf := new(bytes.Buffer)
	w := brotli.NewWriter(buf)
	w.Write(benchData)
	w.Close()
	b.ReportMetric(float64(len(benchData))/float64(buf.Len()), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(ioutil.Discard)
		w.Write(benchData)
		w.Close()
	}
}

func BenchmarkEncodeLz4(b *testing.B) {
	b.ReportAllocs()
	b.SetBytes(int64(len(benchData)))
	buf := new(bytes.Buffer)
	w := lz4.NewWriter(buf)
	w.Write(benchData)
	w.Close()
	b.ReportMetric(float64(len(benchData))/float64(buf.Len()), "ratio")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		w.Reset(ioutil.Discard)
		w.Write(benchData)
		w.Close()
	}
}
