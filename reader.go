package parquetcore

import (
	"github.com/rionmonster/parquetcore/internal/debug"
	"github.com/rionmonster/parquetcore/internal/format"
)

// FileReader opens one parquet file and exposes its parsed metadata, schema,
// and row reader construction (spec.md §6's "open(path) -> FileReader").
type FileReader struct {
	state  *FileState
	config *ReaderConfig
}

// Open opens path, parses its footer/schema, and scans the projected
// columns' pages (all columns, unless narrowed with WithColumns).
func Open(path string, opts ...Option) (*FileReader, error) {
	cfg := newReaderConfig(opts)
	debug.Format("open %s", path)
	state, err := OpenFileState(path, cfg.Columns)
	if err != nil {
		return nil, err
	}
	return &FileReader{state: state, config: cfg}, nil
}

// FileMetaData returns the parsed Thrift footer.
func (r *FileReader) FileMetaData() *format.FileMetaData { return r.state.Meta }

// FileSchema returns the resolved schema tree.
func (r *FileReader) FileSchema() *FileSchema { return r.state.Schema }

// CreateRowReader builds a RowReader over this file's projected columns.
// Consuming a RowReader destructively releases the underlying PageInfo
// slots (spec.md §4.6), so only one RowReader should be drawn from a given
// FileReader at a time.
func (r *FileReader) CreateRowReader() (*RowReader, error) {
	schema := r.state.Schema
	cursors := make(map[int]*ColumnChunkCursor, len(r.state.PageInfosByColumn))
	for idx, groups := range r.state.PageInfosByColumn {
		leaf := schema.Leaf(idx)
		pcs := make([]*PageCursor, len(groups))
		for i, g := range groups {
			pcs[i] = NewPageCursor(r.state.Source, leaf, g.Chunk, g.Pages)
		}
		cursors[idx] = NewColumnChunkCursor(leaf, pcs...)
	}
	assembler := NewRowAssembler(schema, cursors)
	return &RowReader{assembler: assembler, cursors: cursors, schema: schema}, nil
}

// Close releases the file's byte source.
func (r *FileReader) Close() error { return r.state.Close() }

// RowReader iterates materialized rows over a set of projected columns
// (spec.md §6). Extend feeds in a subsequent file's prefetched PageInfo so a
// single RowReader can stream rows across a FileFleet's files without the
// caller re-opening anything.
type RowReader struct {
	assembler   *RowAssembler
	cursors     map[int]*ColumnChunkCursor
	schema      *FileSchema
	extraStates []*FileState
	closed      bool
}

// HasNext reports whether another row is available.
func (r *RowReader) HasNext() bool {
	if r.closed {
		return false
	}
	ok, _ := r.assembler.HasNext()
	return ok
}

// Next materializes and returns the next row.
func (r *RowReader) Next() (*Row, error) {
	if r.closed {
		return nil, Error(Closed, "row reader is closed", nil)
	}
	return r.assembler.Next()
}

// ColumnCount returns the number of top-level schema fields.
func (r *RowReader) ColumnCount() int { return len(r.schema.Root.Children) }

// ColumnName returns the name of the i'th top-level field.
func (r *RowReader) ColumnName(i int) (string, error) {
	if i < 0 || i >= len(r.schema.Root.Children) {
		return "", Errorf(IndexOutOfRange, nil, "column index %d out of range", i)
	}
	return r.schema.Root.Children[i].Name, nil
}

// Extend appends a subsequent file's scanned page descriptors into this
// reader's column cursors, the handoff a FileFleet performs as it prepares
// upcoming files off the hot path (spec.md §5). The passed FileState's
// schema must be identical in column layout to the reader's own.
func (r *RowReader) Extend(state *FileState) error {
	if r.closed {
		return Error(Closed, "row reader is closed", nil)
	}
	for idx, cur := range r.cursors {
		leaf := state.Schema.Leaf(idx)
		groups := state.PageInfosByColumn[idx]
		pcs := make([]*PageCursor, len(groups))
		for i, g := range groups {
			pcs[i] = NewPageCursor(state.Source, leaf, g.Chunk, g.Pages)
		}
		cur.Extend(pcs...)
	}
	r.extraStates = append(r.extraStates, state)
	return nil
}

// Close releases every column cursor and any FileState this reader took
// ownership of via Extend. It does not close the FileReader's own byte
// source; the FileReader that created this RowReader still owns that.
func (r *RowReader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	var firstErr error
	for _, cur := range r.cursors {
		if err := cur.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	for _, st := range r.extraStates {
		if err := st.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
