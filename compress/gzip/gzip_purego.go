//go:build purego

package gzip

import (
	"compress/gzip"
	"io"

	"github.com/rionmonster/parquetcore/compress"
)

func newReader(r io.Reader) (compress.Reader, error) {
	z, err := gzip.NewReader(r)
	if err != nil {
		return nil, err
	}
	return portableReader{z}, nil
}

type portableReader struct{ *gzip.Reader }

func (r portableReader) Reset(rr io.Reader) error {
	if rr == nil {
		rr = emptyGzipReader()
	}
	return r.Reader.Reset(rr)
}
