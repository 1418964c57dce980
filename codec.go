package parquetcore

import (
	"github.com/rionmonster/parquetcore/compress"
	"github.com/rionmonster/parquetcore/compress/brotli"
	"github.com/rionmonster/parquetcore/compress/gzip"
	"github.com/rionmonster/parquetcore/compress/lz4"
	"github.com/rionmonster/parquetcore/compress/snappy"
	"github.com/rionmonster/parquetcore/compress/uncompressed"
	"github.com/rionmonster/parquetcore/compress/zstd"
	"github.com/rionmonster/parquetcore/internal/format"
)

// codecRegistry maps a chunk's declared compression codec tag to the Codec
// implementation that decompresses it (spec.md §4.3, §6's "Codec registry"
// collaborator). Each entry is its own package so the capability-detection
// split (gzip_fast.go / gzip_purego.go) stays local to the codec it applies
// to.
var codecRegistry = map[format.CompressionCodec]compress.Codec{
	format.Uncompressed: &uncompressed.Codec{},
	format.Gzip:         &gzip.Codec{},
	format.Snappy:       &snappy.Codec{},
	format.LZ4Raw:       &lz4.Codec{},
	format.Brotli:       &brotli.Codec{},
	format.Zstd:         &zstd.Codec{},
}

// decompress dispatches by codec tag and verifies the produced length
// matches expectedSize, failing with CorruptPage otherwise (spec.md §4.3).
func decompress(codec format.CompressionCodec, input []byte, expectedSize int) ([]byte, error) {
	c, ok := codecRegistry[codec]
	if !ok {
		return nil, Errorf(UnsupportedCodec, nil, "unsupported compression codec %s", codec)
	}
	dst := make([]byte, 0, expectedSize)
	out, err := c.Decode(dst, input)
	if err != nil {
		return nil, Errorf(CorruptPage, err, "decompressing %s page body", codec)
	}
	if len(out) != expectedSize {
		return nil, Errorf(CorruptPage, nil, "%s decompressed to %d bytes, expected %d", codec, len(out), expectedSize)
	}
	return out, nil
}
