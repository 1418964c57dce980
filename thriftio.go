package parquetcore

import (
	"bytes"
	"io"

	"github.com/apache/thrift/lib/go/thrift"
)

// countingReader wraps an io.Reader and tracks total bytes read, so callers
// can learn how many leading bytes of a buffer a thrift-compact struct
// consumed without the library reporting it directly.
type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)
	return n, err
}

// newThriftReader builds a TCompactProtocol reader over buf, returning the
// counter alongside so the caller can read back bytesRead after unmarshaling
// a struct (grounded on the teacher's internal/thrift.Reader, which wraps
// apache/thrift's TCompactProtocolFactory the same way).
func newThriftReader(buf []byte) (thrift.TProtocol, *countingReader) {
	cr := &countingReader{r: bytes.NewReader(buf)}
	// An unbuffered transport, so cr.n counts only the bytes the protocol
	// actually consumed (NewStreamTransportR would add a read-ahead buffer).
	transport := &thrift.StreamTransport{Reader: cr}
	return thrift.NewTCompactProtocol(transport), cr
}
