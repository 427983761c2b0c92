package lzss

import (
	"bytes"
	"fmt"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)

func BenchmarkCompress(b *testing.B) {
	data := benchInput
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Compress(Default(), data)
	}
}

func BenchmarkCompressWindowSizes(b *testing.B) {
	data := benchInput
	windows := []uint32{256, 1024, 4096, 16384, 65535}
	for _, w := range windows {
		w := w
		cfg, err := New(w, MinMatchFloor)
		if err != nil {
			b.Fatal(err)
		}
		b.Run(fmt.Sprintf("Window=%d", w), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = Compress(cfg, data)
			}
		})
	}
}

func BenchmarkDecompress(b *testing.B) {
	data := benchInput
	enc, err := Compress(Default(), data)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decompress(Default(), enc)
	}
}
