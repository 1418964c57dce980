// Package snappy implements the SNAPPY parquet compression codec.
//
// Parquet uses raw snappy blocks rather than the framed streaming format,
// so unlike the other codecs this one talks to golang/snappy's block API
// directly instead of going through compress.Decompressor's io.Reader
// adapter.
package snappy

import (
	"github.com/golang/snappy"
)

type Codec struct{}

func (c *Codec) String() string { return "SNAPPY" }

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	return snappy.Decode(dst[:0], src)
}
