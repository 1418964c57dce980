// Package gzip implements the GZIP parquet compression codec.
//
// Two implementations are available: a fast path (gzip_fast.go) built on
// klauspost/compress/gzip, and a portable fallback (gzip_purego.go) built
// on the standard library's compress/gzip. Selection happens at compile
// time via the purego build tag; Codec's exported surface is identical
// either way, so callers never see the difference (spec.md §4.3, §6).
package gzip

import (
	"io"
	"strings"

	"github.com/rionmonster/parquetcore/compress"
)

const emptyGzip = "\x1f\x8b\b\x00\x00\x00\x00\x00\x02\xff\x01\x00\x00\xff\xff\x00\x00\x00\x00\x00\x00\x00\x00"

// Codec is the GZIP parquet compression codec.
type Codec struct {
	d compress.Decompressor
}

func (c *Codec) String() string { return "GZIP" }

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return c.d.Decode(dst, src, newReader)
}

func emptyGzipReader() io.Reader {
	return strings.NewReader(emptyGzip)
}
