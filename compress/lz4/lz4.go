// Package lz4 implements the LZ4_RAW parquet compression codec.
package lz4

import (
	"github.com/pierrec/lz4/v4"
)

type Codec struct{}

func (c *Codec) String() string { return "LZ4_RAW" }

// Decode grows dst until it is large enough to hold the uncompressed block;
// LZ4_RAW carries no frame header to learn the size from up front, so the
// teacher's trial-and-grow loop is the idiomatic shape here.
func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	if cap(dst) == 0 {
		dst = make([]byte, 4*len(src)+64)
	} else {
		dst = dst[:cap(dst)]
	}
	for {
		n, err := lz4.UncompressBlock(src, dst)
		if err == nil {
			return dst[:n], nil
		}
		if err != lz4.ErrInvalidSourceShortBuffer {
			return nil, err
		}
		dst = make([]byte, 2*len(dst))
	}
}
