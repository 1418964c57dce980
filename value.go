package parquetcore

import (
	"fmt"

	"github.com/rionmonster/parquetcore/deprecated"
)

// Value is a single decoded parquet value plus repetition/definition level
// fields. Values built by the page decoder leave both levels at 0; a page's
// levels live in the DecodedPage's level arrays. Unlike the teacher's Value (an unsafe
// pointer/word union used to keep values copyable without heap escapes),
// this reader's decode contract already produces flat, typed arrays per
// page (spec.md §3's DecodedPage), so Value here is a plain tagged struct:
// it is only materialized transiently, while the row assembler walks a
// page's values, not kept around as the hot-path representation.
type Value struct {
	typ             PhysicalType
	boolean         bool
	int32           int32
	int64           int64
	int96           deprecated.Int96
	float           float32
	double          float64
	bytes           []byte
	definitionLevel uint8
	repetitionLevel uint8
	null            bool
}

func NullValue(definitionLevel, repetitionLevel uint8) Value {
	return Value{null: true, definitionLevel: definitionLevel, repetitionLevel: repetitionLevel}
}

func (v Value) IsNull() bool { return v.null }

func (v Value) DefinitionLevel() uint8 { return v.definitionLevel }

func (v Value) RepetitionLevel() uint8 { return v.repetitionLevel }

func (v Value) Type() PhysicalType { return v.typ }

func (v Value) Boolean() bool {
	v.mustBe(BooleanType)
	return v.boolean
}

func (v Value) Int32() int32 {
	v.mustBe(Int32Type)
	return v.int32
}

func (v Value) Int64() int64 {
	v.mustBe(Int64Type)
	return v.int64
}

func (v Value) Int96() deprecated.Int96 {
	v.mustBe(Int96Type)
	return v.int96
}

func (v Value) Float() float32 {
	v.mustBe(FloatType)
	return v.float
}

func (v Value) Double() float64 {
	v.mustBe(DoubleType)
	return v.double
}

func (v Value) ByteArray() []byte {
	if v.typ != ByteArrayType && v.typ != FixedLenByteArrayType {
		panic(Error(TypeMismatch, fmt.Sprintf("value has type %s, not a byte array type", v.typ), nil))
	}
	return v.bytes
}

func (v Value) mustBe(t PhysicalType) {
	if v.typ != t {
		panic(Error(TypeMismatch, fmt.Sprintf("value has type %s, expected %s", v.typ, t), nil))
	}
}

func (v Value) String() string {
	if v.null {
		return "<null>"
	}
	switch v.typ {
	case BooleanType:
		return fmt.Sprint(v.boolean)
	case Int32Type:
		return fmt.Sprint(v.int32)
	case Int64Type:
		return fmt.Sprint(v.int64)
	case Int96Type:
		return v.int96.String()
	case FloatType:
		return fmt.Sprint(v.float)
	case DoubleType:
		return fmt.Sprint(v.double)
	case ByteArrayType, FixedLenByteArrayType:
		return string(v.bytes)
	default:
		return "<invalid>"
	}
}

func BooleanValue(x bool, def, rep uint8) Value {
	return Value{typ: BooleanType, boolean: x, definitionLevel: def, repetitionLevel: rep}
}

func Int32Value(x int32, def, rep uint8) Value {
	return Value{typ: Int32Type, int32: x, definitionLevel: def, repetitionLevel: rep}
}

func Int64Value(x int64, def, rep uint8) Value {
	return Value{typ: Int64Type, int64: x, definitionLevel: def, repetitionLevel: rep}
}

func Int96Value(x deprecated.Int96, def, rep uint8) Value {
	return Value{typ: Int96Type, int96: x, definitionLevel: def, repetitionLevel: rep}
}

func FloatValue(x float32, def, rep uint8) Value {
	return Value{typ: FloatType, float: x, definitionLevel: def, repetitionLevel: rep}
}

func DoubleValue(x float64, def, rep uint8) Value {
	return Value{typ: DoubleType, double: x, definitionLevel: def, repetitionLevel: rep}
}

func ByteArrayValue(x []byte, def, rep uint8) Value {
	return Value{typ: ByteArrayType, bytes: x, definitionLevel: def, repetitionLevel: rep}
}

func FixedLenByteArrayValue(x []byte, def, rep uint8) Value {
	return Value{typ: FixedLenByteArrayType, bytes: x, definitionLevel: def, repetitionLevel: rep}
}
