package parquetcore

import "github.com/rionmonster/parquetcore/internal/format"

// PageCursor is a single-column iterator over a chunk's PageInfo list
// (spec.md §4.6). It materializes pages on demand and releases each
// descriptor's slot immediately after decode so a long scan's memory stays
// bounded by the active page, not the full list.
type PageCursor struct {
	source ByteSource
	column *ColumnNode
	chunk  *ColumnChunkDescriptor
	pages  []*PageInfo
	index  int
	dict   *DecodedPage
	closed bool
}

// NewPageCursor builds a cursor over pages, a scan result for one column
// chunk (spec.md §4.2's scanner output feeds directly into this).
func NewPageCursor(source ByteSource, column *ColumnNode, chunk *ColumnChunkDescriptor, pages []*PageInfo) *PageCursor {
	return &PageCursor{source: source, column: column, chunk: chunk, pages: pages}
}

// HasNext reports whether an unconsumed PageInfo remains at or after the
// cursor's index.
func (c *PageCursor) HasNext() bool {
	for i := c.index; i < len(c.pages); i++ {
		if c.pages[i] != nil {
			return true
		}
	}
	return false
}

// NextPage materializes a DecodedPage for the current PageInfo: resolves
// the chunk's dictionary on first use, decompresses, decodes levels and
// values, nulls the consumed slot, and advances. The list's length is
// preserved; only slot contents are released (spec.md §4.6, §8).
func (c *PageCursor) NextPage() (*DecodedPage, error) {
	if c.closed {
		return nil, Error(Closed, "page cursor is closed", nil)
	}
	for c.index < len(c.pages) && c.pages[c.index] == nil {
		c.index++
	}
	if c.index >= len(c.pages) {
		return nil, Error(IndexOutOfRange, "no more pages in cursor", nil)
	}

	info := c.pages[c.index]

	if info.Kind == DictionaryPageKind {
		dict, err := decodePage(c.source, c.column, c.chunk, info, nil)
		if err != nil {
			return nil, err
		}
		c.dict = dict
		c.pages[c.index] = nil
		c.index++
		return c.NextPage()
	}

	if info.ValueEncoding == format.RLEDictionary {
		info.Dictionary = c.dict
	}
	page, err := decodePage(c.source, c.column, c.chunk, info, c.dict)
	if err != nil {
		return nil, err
	}

	c.pages[c.index] = nil
	c.index++
	return page, nil
}

// Slot returns the PageInfo at index i in the cursor's working list. An index
// outside the list, or a slot that has already been released, returns an
// IndexOutOfRange error (spec.md §9's Open Question resolution: IndexOutOfRange).
func (c *PageCursor) Slot(i int) (*PageInfo, error) {
	if i < 0 || i >= len(c.pages) {
		return nil, Error(IndexOutOfRange, "page slot index out of range", nil)
	}
	if c.pages[i] == nil {
		return nil, Error(IndexOutOfRange, "page slot already released", nil)
	}
	return c.pages[i], nil
}

// Len returns the working list's length, preserved across slot release.
func (c *PageCursor) Len() int { return len(c.pages) }

// Close releases the cursor's cached dictionary. The byte source is owned by
// the caller (typically a FileState) and outlives the cursor.
func (c *PageCursor) Close() error {
	c.closed = true
	c.dict = nil
	c.pages = nil
	return nil
}
