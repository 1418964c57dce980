package parquetcore

// ColumnChunkCursor concatenates page cursors across all row groups and
// files for one projected column (spec.md §4.7). It prefers a queue of
// per-file page cursors over concatenating every file's descriptors up
// front, so live descriptor memory stays proportional to the active file
// window rather than the whole fleet (spec.md §9's cross-file extension
// note).
type ColumnChunkCursor struct {
	column  *ColumnNode
	queue   []*PageCursor
	current int
}

// NewColumnChunkCursor builds a cursor from an initial set of per-row-group
// page cursors for one file.
func NewColumnChunkCursor(column *ColumnNode, cursors ...*PageCursor) *ColumnChunkCursor {
	return &ColumnChunkCursor{column: column, queue: cursors}
}

// Extend enqueues a subsequent file's page cursors for this column, handed
// in by the fleet as it prefetches FileState batches (spec.md §5).
func (c *ColumnChunkCursor) Extend(cursors ...*PageCursor) {
	c.queue = append(c.queue, cursors...)
}

// HasNext reports whether any queued cursor still has pages, advancing past
// exhausted cursors.
func (c *ColumnChunkCursor) HasNext() bool {
	for c.current < len(c.queue) {
		if c.queue[c.current].HasNext() {
			return true
		}
		c.current++
	}
	return false
}

// NextPage pulls the next DecodedPage from the active cursor, advancing to
// the next queued cursor when the current one is exhausted.
func (c *ColumnChunkCursor) NextPage() (*DecodedPage, error) {
	if !c.HasNext() {
		return nil, Error(IndexOutOfRange, "no more pages in column chunk cursor", nil)
	}
	return c.queue[c.current].NextPage()
}

// Close closes every cursor still queued.
func (c *ColumnChunkCursor) Close() error {
	var firstErr error
	for _, pc := range c.queue {
		if err := pc.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.queue = nil
	return firstErr
}
