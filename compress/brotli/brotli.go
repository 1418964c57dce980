// Package brotli implements the BROTLI parquet compression codec.
package brotli

import (
	"bytes"
	"io"

	"github.com/andybalholm/brotli"
)

type Codec struct{}

func (c *Codec) String() string { return "BROTLI" }

func (c *Codec) Decode(dst, src []byte) ([]byte, error) {
	r := brotli.NewReader(bytes.NewReader(src))
	out := bytes.NewBuffer(dst[:0])
	if _, err := io.Copy(out, r); err != nil {
		return out.Bytes(), err
	}
	return out.Bytes(), nil
}
