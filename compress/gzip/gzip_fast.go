//go:build !purego

package gzip

import (
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/rionmonster/parquetcore/compress"
)

func newReader(r io.Reader) (compress.Reader, error) {
	z, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return fastReader{z}, nil
}

type fastReader struct{ *gzip.Reader }

func (r fastReader) Reset(rr io.Reader) error {
	if rr == nil {
		rr = emptyGzipReader()
	}
	return r.Reader.Reset(rr)
}
