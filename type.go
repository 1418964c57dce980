package parquetcore

import "github.com/rionmonster/parquetcore/internal/format"

// PhysicalType is the storage-level type of a column's values, one of the
// eight kinds the parquet format defines.
type PhysicalType int8

const (
	BooleanType PhysicalType = iota
	Int32Type
	Int64Type
	Int96Type
	FloatType
	DoubleType
	ByteArrayType
	FixedLenByteArrayType
)

func (t PhysicalType) String() string {
	switch t {
	case BooleanType:
		return "BOOLEAN"
	case Int32Type:
		return "INT32"
	case Int64Type:
		return "INT64"
	case Int96Type:
		return "INT96"
	case FloatType:
		return "FLOAT"
	case DoubleType:
		return "DOUBLE"
	case ByteArrayType:
		return "BYTE_ARRAY"
	case FixedLenByteArrayType:
		return "FIXED_LEN_BYTE_ARRAY"
	default:
		return "UNKNOWN"
	}
}

func physicalTypeFromFormat(t format.Type) PhysicalType {
	switch t {
	case format.Boolean:
		return BooleanType
	case format.Int32:
		return Int32Type
	case format.Int64:
		return Int64Type
	case format.Int96:
		return Int96Type
	case format.Float:
		return FloatType
	case format.Double:
		return DoubleType
	case format.ByteArray:
		return ByteArrayType
	case format.FixedLenByteArray:
		return FixedLenByteArrayType
	default:
		return BooleanType
	}
}

// LogicalType annotates a PhysicalType with its semantic interpretation. The
// zero value means "no annotation"; decode behavior never depends on it,
// only the typed row accessors' pretty-printing and TypeMismatch checks do
// (spec.md §3's Type node).
type LogicalType struct {
	Kind             LogicalKind
	TimestampUnit    string // "MILLIS", "MICROS", "NANOS"
	TimestampIsUTC   bool
	DecimalScale     int32
	DecimalPrecision int32
}

// LogicalKind enumerates the logical annotations spec.md names: STRING,
// DATE, TIMESTAMP, DECIMAL, ENUM, UUID.
type LogicalKind int8

const (
	NoLogicalType LogicalKind = iota
	StringLogicalType
	DateLogicalType
	TimestampLogicalType
	DecimalLogicalType
	EnumLogicalType
	UUIDLogicalType
)

func (k LogicalKind) String() string {
	switch k {
	case StringLogicalType:
		return "STRING"
	case DateLogicalType:
		return "DATE"
	case TimestampLogicalType:
		return "TIMESTAMP"
	case DecimalLogicalType:
		return "DECIMAL"
	case EnumLogicalType:
		return "ENUM"
	case UUIDLogicalType:
		return "UUID"
	default:
		return ""
	}
}

func logicalTypeFromFormat(se *format.SchemaElement) LogicalType {
	if lt := se.LogicalType; lt != nil {
		switch {
		case lt.IsString:
			return LogicalType{Kind: StringLogicalType}
		case lt.IsDate:
			return LogicalType{Kind: DateLogicalType}
		case lt.IsTimestamp:
			return LogicalType{Kind: TimestampLogicalType, TimestampUnit: lt.TimestampUnit, TimestampIsUTC: lt.TimestampIsAdjustedToUTC}
		case lt.IsDecimal:
			return LogicalType{Kind: DecimalLogicalType, DecimalScale: lt.DecimalScale, DecimalPrecision: lt.DecimalPrecision}
		case lt.IsEnum:
			return LogicalType{Kind: EnumLogicalType}
		case lt.IsUUID:
			return LogicalType{Kind: UUIDLogicalType}
		}
	}
	if se.HasConverted {
		switch se.ConvertedType {
		case format.UTF8:
			return LogicalType{Kind: StringLogicalType}
		case format.Date:
			return LogicalType{Kind: DateLogicalType}
		case format.TimestampMillis:
			return LogicalType{Kind: TimestampLogicalType, TimestampUnit: "MILLIS", TimestampIsUTC: true}
		case format.TimestampMicros:
			return LogicalType{Kind: TimestampLogicalType, TimestampUnit: "MICROS", TimestampIsUTC: true}
		case format.Decimal:
			return LogicalType{Kind: DecimalLogicalType, DecimalScale: se.Scale, DecimalPrecision: se.Precision}
		case format.Enum:
			return LogicalType{Kind: EnumLogicalType}
		}
	}
	return LogicalType{}
}
