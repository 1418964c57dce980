//go:build unix

package parquetcore

import (
	"os"

	"golang.org/x/sys/unix"

	"github.com/rionmonster/parquetcore/internal/debug"
)

// mmapByteSource backs ByteSource with a read-only memory mapping of a
// regular file, giving slice() true zero-copy semantics. Grounded on the
// teacher's existing (indirect) golang.org/x/sys dependency, promoted here
// to a direct import for the one place spec.md calls out mmap explicitly
// (§4.1's "typically a memory mapping").
type mmapByteSource struct {
	file *os.File
	data []byte
}

// OpenMmap maps f's entire contents into memory for random access.
func OpenMmap(f *os.File) (ByteSource, error) {
	info, err := f.Stat()
	if err != nil {
		return nil, Errorf(MalformedFile, err, "stat file")
	}
	size := info.Size()
	if size == 0 {
		return &mmapByteSource{file: f, data: nil}, nil
	}
	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_SHARED)
	if err != nil {
		return nil, Errorf(MalformedFile, err, "mmap file")
	}
	debug.Format("parquetcore: mmap %d bytes", size)
	return &mmapByteSource{file: f, data: data}, nil
}

func (s *mmapByteSource) Size() int64 { return int64(len(s.data)) }

func (s *mmapByteSource) Slice(offset, length int64) ([]byte, error) {
	if err := checkRange(s.Size(), offset, length); err != nil {
		return nil, err
	}
	return s.data[offset : offset+length : offset+length], nil
}

func (s *mmapByteSource) Close() error {
	if s.data != nil {
		if err := unix.Munmap(s.data); err != nil {
			return err
		}
		s.data = nil
	}
	return s.file.Close()
}
