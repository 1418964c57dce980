package parquetcore

import (
	"os"

	"github.com/rionmonster/parquetcore/internal/format"
)

// RowGroupPages is one row group's scanned page descriptors for a single
// column, paired with the ColumnChunkDescriptor (codec, dictionary page
// offset) that applies to exactly those pages. Row groups in the same file
// can use different codecs, so a column's pages must stay grouped by row
// group rather than flattened into one list sharing one descriptor.
type RowGroupPages struct {
	Chunk *ColumnChunkDescriptor
	Pages []*PageInfo
}

// FileState is the parsed, shareable state of one open file: its byte
// source, metadata, schema, and per-column, per-row-group page descriptor
// lists. It's the unit a FileFleet hands to column cursors for extension
// (spec.md §5).
type FileState struct {
	Path              string
	Source            ByteSource
	Meta              *format.FileMetaData
	Schema            *FileSchema
	PageInfosByColumn map[int][]RowGroupPages
}

// OpenFileState opens path, parses its footer and schema, and scans every
// projected column's pages across all row groups, returning shared,
// read-only state for the cursors built on top of it.
func OpenFileState(path string, columns []int) (*FileState, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Errorf(MalformedFile, err, "opening %s", path)
	}
	source, err := OpenMmap(f)
	if err != nil {
		f.Close()
		return nil, err
	}
	return newFileState(path, source, columns)
}

func newFileState(path string, source ByteSource, columns []int) (*FileState, error) {
	meta, err := readFooter(source)
	if err != nil {
		source.Close()
		return nil, err
	}
	schema, err := ResolveSchema(meta)
	if err != nil {
		source.Close()
		return nil, err
	}
	if columns == nil {
		for i := range schema.Leaves() {
			columns = append(columns, i)
		}
	}

	state := &FileState{
		Path:              path,
		Source:            source,
		Meta:              meta,
		Schema:            schema,
		PageInfosByColumn: make(map[int][]RowGroupPages),
	}

	for _, colIdx := range columns {
		leaf := schema.Leaf(colIdx)
		var groups []RowGroupPages
		for _, rg := range meta.RowGroups {
			if colIdx >= len(rg.Columns) {
				source.Close()
				return nil, Error(MalformedFile, "row group has fewer columns than schema", nil)
			}
			cc := rg.Columns[colIdx]
			chunk := newColumnChunkDescriptor(leaf, &cc)
			chunkPages, err := scanPages(chunk, source)
			if err != nil {
				source.Close()
				return nil, err
			}
			groups = append(groups, RowGroupPages{Chunk: chunk, Pages: chunkPages})
		}
		state.PageInfosByColumn[colIdx] = groups
	}

	return state, nil
}

// Close releases the file's byte source.
func (s *FileState) Close() error {
	return s.Source.Close()
}
