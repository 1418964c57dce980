//go:build !unix

package parquetcore

import "os"

// OpenMmap falls back to the io.ReaderAt-backed source on platforms where
// unix.Mmap isn't available.
func OpenMmap(f *os.File) (ByteSource, error) {
	return OpenReaderAt(f)
}
