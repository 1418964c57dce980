package parquetcore

import "github.com/rionmonster/parquetcore/internal/format"

// PageKind distinguishes dictionary pages from v1/v2 data pages (spec.md §3).
type PageKind int8

const (
	DictionaryPageKind PageKind = iota
	DataPageV1Kind
	DataPageV2Kind
)

// PageInfo locates and types a page within a column chunk's byte range,
// without its decoded contents. Produced by the page scanner, owned by the
// page cursor's working list, and released (slot nulled) once materialized
// (spec.md §3, §4.6).
type PageInfo struct {
	Kind             PageKind
	Offset           int64
	HeaderSize       int64
	CompressedSize   int64
	UncompressedSize int64
	ValueCount       int64

	ValueEncoding      format.Encoding
	RepetitionEncoding format.Encoding
	DefinitionEncoding format.Encoding

	// V2-only fields.
	RepetitionLevelsByteLength int32
	DefinitionLevelsByteLength int32
	IsCompressed               bool

	// Dictionary is non-nil for DATA_V1/DATA_V2 pages whose ValueEncoding is
	// RLE_DICTIONARY; it's filled in by the page cursor when it resolves the
	// chunk's dictionary page, not by the scanner.
	Dictionary *DecodedPage
}

// DecodedPage is a materialized page: value count plus parallel,
// already-decoded level and value arrays ready for assembly (spec.md §3).
type DecodedPage struct {
	Kind PageKind

	// ValueCount is the number of logical slots in this page (including
	// nulls); it equals len(DefinitionLevels) when that array is present.
	ValueCount int

	// DefinitionLevels has length ValueCount, or is nil if every value in
	// the page is at the column's max definition level (no nulls possible).
	DefinitionLevels []uint8

	// RepetitionLevels has length ValueCount, or is nil if every value
	// starts a new record (the column has no repeated ancestor).
	RepetitionLevels []uint8

	// Values holds the non-null, materialized values, one per position
	// where DefinitionLevels[i] == column.MaxDefinitionLevel (or every
	// position, if DefinitionLevels is nil). Its type matches the column's
	// PhysicalType; RLE_DICTIONARY pages have already been resolved against
	// the dictionary, so Values always holds final decoded values, never
	// raw indices.
	Values []Value
}
