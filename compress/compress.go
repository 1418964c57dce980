// Package compress provides the generic APIs implemented by parquet
// compression codecs in its sub-packages.
//
// https://github.com/apache/parquet-format/blob/master/Compression.md
package compress

import (
	"bytes"
	"io"
	"sync"
)

// Codec is implemented by the compression algorithms registered in the
// codec layer (gzip, snappy, lz4, brotli, zstd, uncompressed).
//
// Codec instances must be safe to use concurrently from multiple goroutines.
type Codec interface {
	// String returns a human-readable name for the codec.
	String() string

	// Decode writes the uncompressed version of src to dst and returns it,
	// reallocating the destination buffer if its capacity is too small.
	Decode(dst, src []byte) ([]byte, error)
}

// Reader is implemented by the streaming decompressors sub-packages build
// on top of (stdlib or third-party); Decompressor pools them so that
// scanning many pages of the same codec doesn't pay for a new decompressor
// on every page.
type Reader interface {
	io.ReadCloser
	Reset(io.Reader) error
}

// Decompressor adapts a streaming Reader to the byte-slice Codec.Decode
// contract, pooling readers across calls.
type Decompressor struct {
	readers sync.Pool
}

func (d *Decompressor) Decode(dst, src []byte, newReader func(io.Reader) (Reader, error)) ([]byte, error) {
	input := bytes.NewReader(src)

	r, _ := d.readers.Get().(Reader)
	if r != nil {
		if err := r.Reset(input); err != nil {
			return dst, err
		}
	} else {
		var err error
		if r, err = newReader(input); err != nil {
			return dst, err
		}
	}

	defer func() {
		if err := r.Reset(nil); err == nil {
			d.readers.Put(r)
		}
	}()

	output := bytes.NewBuffer(dst[:0])
	_, err := output.ReadFrom(r)
	return output.Bytes(), err
}
