// Package zstd implements the ZSTD parquet compression codec.
package zstd

import (
	"sync"

	"github.com/klauspost/compress/zstd"
)

// Codec is the ZSTD parquet compression codec. Unlike the other codecs this
// one doesn't go through compress.Decompressor's io.Reader pooling: zstd's
// decoder keeps its own internal buffer pools and is safe, and fast, to reuse
// directly via DecodeAll. The decoder is built lazily since construction
// isn't free, and a single Codec may be shared across the fleet's concurrent
// background workers, so init happens once under sync.Once.
type Codec struct {
	once    sync.Once
	decoder *zstd.Decoder
	initErr error
}

func (c *Codec) String() string { return "ZSTD" }

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	c.once.Do(func() {
		c.decoder, c.initErr = zstd.NewReader(nil)
	})
	if c.initErr != nil {
		return nil, c.initErr
	}
	return c.decoder.DecodeAll(src, dst[:0])
}
