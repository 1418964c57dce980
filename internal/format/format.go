// Package format mirrors the subset of the parquet.thrift IDL this reader
// needs: the footer FileMetaData tree and the per-page PageHeader. Structs
// implement Read(thrift.TProtocol) by hand rather than through a generated
// thrift codec, grounded on the teacher's internal/thrift.Reader.Unmarshal
// convention (Unmarshalable.Read(iprot) error).
package format

// Type is the physical storage type of a column, matching parquet.thrift's
// Type enum.
type Type int32

const (
	Boolean Type = iota
	Int32
	Int64
	Int96
	Float
	Double
	ByteArray
	FixedLenByteArray
)

func (t Type) String() string {
	switch t {
	case Boolean:
		return "BOOLEAN"
	case Int32:
		return "INT32"
	case Int64:
		return "INT64"
	case Int96:
		return "INT96"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case ByteArray:
		return "BYTE_ARRAY"
	case FixedLenByteArray:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

// FieldRepetitionType matches parquet.thrift's FieldRepetitionType enum.
type FieldRepetitionType int32

const (
	Required FieldRepetitionType = iota
	Optional
	Repeated
)

func (r FieldRepetitionType) String() string {
	switch r {
	case Required:
		return "REQUIRED"
	case Optional:
		return "OPTIONAL"
	case Repeated:
		return "REPEATED"
	default:
		return "UNKNOWN"
	}
}

// ConvertedType matches parquet.thrift's ConvertedType enum, the legacy
// logical-type annotation that LogicalType superseded.
type ConvertedType int32

const (
	UTF8 ConvertedType = iota
	Map
	MapKeyValue
	List
	Enum
	Decimal
	Date
	TimeMillis
	TimeMicros
	TimestampMillis
	TimestampMicros
	Uint8
	Uint16
	Uint32
	Uint64
	Int8
	Int16
	Int32Converted
	Int64Converted
	JSON
	BSON
	Interval
)

// Encoding matches parquet.thrift's Encoding enum.
type Encoding int32

const (
	Plain Encoding = iota
	_ // 1 is not used by the format.
	// PLAIN_DICTIONARY is deprecated; dictionary pages are always PLAIN.
	PlainDictionary
	RLE
	BitPacked // deprecated
	DeltaBinaryPacked
	DeltaLengthByteArray
	DeltaByteArray
	RLEDictionary
	ByteStreamSplit
)

func (e Encoding) String() string {
	switch e {
	case Plain:
		return "PLAIN"
	case PlainDictionary:
		return "PLAIN_DICTIONARY"
	case RLE:
		return "RLE"
	case BitPacked:
		return "BIT_PACKED"
	case DeltaBinaryPacked:
		return "DELTA_BINARY_PACKED"
	case DeltaLengthByteArray:
		return "DELTA_LENGTH_BYTE_ARRAY"
	case DeltaByteArray:
		return "DELTA_BYTE_ARRAY"
	case RLEDictionary:
		return "RLE_DICTIONARY"
	case ByteStreamSplit:
		return "BYTE_STREAM_SPLIT"
	default:
		return "UNKNOWN"
	}
}

// CompressionCodec matches parquet.thrift's CompressionCodec enum.
type CompressionCodec int32

const (
	Uncompressed CompressionCodec = iota
	Snappy
	Gzip
	LZODeprecated
	Brotli
	LZ4Deprecated
	Zstd
	LZ4Raw
)

func (c CompressionCodec) String() string {
	switch c {
	case Uncompressed:
		return "UNCOMPRESSED"
	case Snappy:
		return "SNAPPY"
	case Gzip:
		return "GZIP"
	case Brotli:
		return "BROTLI"
	case Zstd:
		return "ZSTD"
	case LZ4Raw:
		return "LZ4_RAW"
	default:
		return "UNKNOWN"
	}
}

// PageType matches parquet.thrift's PageType enum.
type PageType int32

const (
	DataPage PageType = iota
	IndexPage
	DictionaryPage
	DataPageV2
)

func (p PageType) String() string {
	switch p {
	case DataPage:
		return "DATA_PAGE"
	case IndexPage:
		return "INDEX_PAGE"
	case DictionaryPage:
		return "DICTIONARY_PAGE"
	case DataPageV2:
		return "DATA_PAGE_V2"
	default:
		return "UNKNOWN"
	}
}

// KeyValue is a single entry of FileMetaData's key_value_metadata list.
type KeyValue struct {
	Key   string
	Value string
}

// SchemaElement is one node of FileMetaData's flattened schema tree.
type SchemaElement struct {
	Type           Type
	TypeLength     int32
	HasType        bool
	HasTypeLength  bool
	RepetitionType FieldRepetitionType
	HasRepetition  bool
	Name           string
	NumChildren    int32
	HasNumChildren bool
	ConvertedType  ConvertedType
	HasConverted   bool
	Scale          int32
	Precision      int32
	LogicalType    *LogicalType
}

// LogicalType matches parquet.thrift's LogicalType union; only the fields
// this reader's schema resolver surfaces are kept (STRING/DATE/TIMESTAMP/
// DECIMAL/ENUM/UUID cover spec.md's logical annotation list).
type LogicalType struct {
	IsString    bool
	IsDate      bool
	IsEnum      bool
	IsUUID      bool
	IsDecimal   bool
	DecimalScale     int32
	DecimalPrecision int32
	IsTimestamp bool
	TimestampUnit    string // "MILLIS", "MICROS", "NANOS"
	TimestampIsAdjustedToUTC bool
}

// Statistics matches parquet.thrift's Statistics struct. This reader never
// prunes on statistics (spec Non-goal) but still parses them so callers can
// inspect a chunk's declared null_count/min/max for diagnostics.
type Statistics struct {
	Min      []byte
	Max      []byte
	NullCount      int64
	HasNullCount   bool
	DistinctCount  int64
	HasDistinctCount bool
}

// ColumnMetaData matches parquet.thrift's ColumnMetaData struct.
type ColumnMetaData struct {
	Type                  Type
	Encodings             []Encoding
	PathInSchema          []string
	Codec                 CompressionCodec
	NumValues             int64
	TotalUncompressedSize int64
	TotalCompressedSize   int64
	DataPageOffset        int64
	HasDictionaryPageOffset bool
	DictionaryPageOffset  int64
	Statistics            Statistics
	HasStatistics         bool
}

// ColumnChunk matches parquet.thrift's ColumnChunk struct.
type ColumnChunk struct {
	FileOffset int64
	MetaData   ColumnMetaData
}

// RowGroup matches parquet.thrift's RowGroup struct.
type RowGroup struct {
	Columns   []ColumnChunk
	TotalByteSize int64
	NumRows   int64
}

// FileMetaData matches parquet.thrift's FileMetaData struct: the footer
// content between the PAR1 magic bytes.
type FileMetaData struct {
	Version          int32
	Schema           []SchemaElement
	NumRows          int64
	RowGroups        []RowGroup
	KeyValueMetadata []KeyValue
	CreatedBy        string
}

// PageHeader matches parquet.thrift's PageHeader struct.
type PageHeader struct {
	Type                 PageType
	UncompressedPageSize int32
	CompressedPageSize   int32
	DataPageHeader       *DataPageHeader
	DictionaryPageHeader *DictionaryPageHeader
	DataPageHeaderV2     *DataPageHeaderV2
}

// DataPageHeader matches parquet.thrift's DataPageHeader struct (page v1).
type DataPageHeader struct {
	NumValues               int32
	Encoding                 Encoding
	DefinitionLevelEncoding  Encoding
	RepetitionLevelEncoding  Encoding
	Statistics               Statistics
	HasStatistics            bool
}

// DataPageHeaderV2 matches parquet.thrift's DataPageHeaderV2 struct.
type DataPageHeaderV2 struct {
	NumValues                  int32
	NumNulls                   int32
	NumRows                    int32
	Encoding                   Encoding
	DefinitionLevelsByteLength int32
	RepetitionLevelsByteLength int32
	IsCompressed               bool
	HasIsCompressed            bool
	Statistics                 Statistics
	HasStatistics              bool
}

// DictionaryPageHeader matches parquet.thrift's DictionaryPageHeader struct.
type DictionaryPageHeader struct {
	NumValues int32
	Encoding  Encoding
	IsSorted  bool
}
