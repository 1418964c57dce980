package parquetcore

import "github.com/rionmonster/parquetcore/internal/format"

// ColumnChunkDescriptor locates one column's bytes within one row group
// (spec.md §3).
type ColumnChunkDescriptor struct {
	Column                *ColumnNode
	Codec                 format.CompressionCodec
	HasDictionaryPage     bool
	DictionaryPageOffset  int64
	FirstDataPageOffset   int64
	TotalCompressedSize   int64
	TotalUncompressedSize int64
	NumValues             int64
	Encodings             []format.Encoding
}

func newColumnChunkDescriptor(node *ColumnNode, cc *format.ColumnChunk) *ColumnChunkDescriptor {
	md := cc.MetaData
	return &ColumnChunkDescriptor{
		Column:                node,
		Codec:                 md.Codec,
		HasDictionaryPage:     md.HasDictionaryPageOffset,
		DictionaryPageOffset:  md.DictionaryPageOffset,
		FirstDataPageOffset:   md.DataPageOffset,
		TotalCompressedSize:   md.TotalCompressedSize,
		TotalUncompressedSize: md.TotalUncompressedSize,
		NumValues:             md.NumValues,
		Encodings:             md.Encodings,
	}
}

// chunkEnd returns the first byte offset past this chunk's data, derived
// from whichever of dictionary/first-data offset starts earliest plus the
// chunk's total compressed size (parquet chunks are laid out contiguously).
func (d *ColumnChunkDescriptor) chunkEnd() int64 {
	start := d.FirstDataPageOffset
	if d.HasDictionaryPage && d.DictionaryPageOffset < start {
		start = d.DictionaryPageOffset
	}
	return start + d.TotalCompressedSize
}
