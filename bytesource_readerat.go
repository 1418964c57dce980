package parquetcore

import (
	"io"
	"os"
)

// readerAtByteSource backs ByteSource with any io.ReaderAt: network object
// stores, in-memory buffers, or test fixtures, anywhere mmap isn't available
// or desired (spec.md §4.1 names the mapping as the typical, not the only,
// backing store).
type readerAtByteSource struct {
	r      io.ReaderAt
	closer io.Closer
	size   int64
}

// OpenReaderAt wraps an *os.File as a ByteSource, stat'ing it for the total
// size up front.
func OpenReaderAt(f *os.File) (ByteSource, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, Errorf(MalformedFile, err, "stat file")
	}
	return &readerAtByteSource{r: f, closer: f, size: info.Size()}, nil
}

// OpenReaderAtSize wraps r as a ByteSource of the given total size. Used for
// backing stores that don't expose Stat (network ranges, in-memory buffers).
func OpenReaderAtSize(r io.ReaderAt, size int64, closer io.Closer) ByteSource {
	return &readerAtByteSource{r: r, closer: closer, size: size}
}

func (s *readerAtByteSource) Size() int64 { return s.size }

func (s *readerAtByteSource) Slice(offset, length int64) ([]byte, error) {
	if err := checkRange(s.size, offset, length); err != nil {
		return nil, err
	}
	buf := make([]byte, length)
	if _, err := s.r.ReadAt(buf, offset); err != nil {
		return nil, Errorf(MalformedFile, err, "read range [%d, %d)", offset, offset+length)
	}
	return buf, nil
}

func (s *readerAtByteSource) Close() error {
	if s.closer != nil {
		return s.closer.Close()
	}
	return nil
}
