package parquetcore

import (
	"github.com/rionmonster/parquetcore/deprecated"
	"github.com/rionmonster/parquetcore/encoding/bytestreamsplit"
	"github.com/rionmonster/parquetcore/encoding/delta"
	"github.com/rionmonster/parquetcore/encoding/plain"
	"github.com/rionmonster/parquetcore/encoding/rle"
	"github.com/rionmonster/parquetcore/internal/format"
)

// decodePage materializes a DecodedPage for info, given the column it
// belongs to, the chunk it's part of, and the chunk's cached dictionary (nil
// when no dictionary page has been decoded; only consulted for
// dictionary-encoded values).
func decodePage(source ByteSource, node *ColumnNode, chunk *ColumnChunkDescriptor, info *PageInfo, dict *DecodedPage) (*DecodedPage, error) {
	raw, err := source.Slice(info.Offset, info.CompressedSize)
	if err != nil {
		return nil, err
	}

	switch info.Kind {
	case DictionaryPageKind:
		body, err := decompressWhole(chunk.Codec, raw, int(info.UncompressedSize))
		if err != nil {
			return nil, err
		}
		values, err := decodeValues(node, info.ValueEncoding, body, int(info.ValueCount), nil)
		if err != nil {
			return nil, err
		}
		return &DecodedPage{Kind: DictionaryPageKind, ValueCount: int(info.ValueCount), Values: values}, nil

	case DataPageV1Kind:
		body, err := decompressWhole(chunk.Codec, raw, int(info.UncompressedSize))
		if err != nil {
			return nil, err
		}
		return decodeDataPageV1(node, info, body, dict)

	case DataPageV2Kind:
		return decodeDataPageV2(node, chunk, info, raw, dict)

	default:
		return nil, Errorf(UnsupportedPage, nil, "unknown page kind")
	}
}

func decompressWhole(codec format.CompressionCodec, raw []byte, expectedSize int) ([]byte, error) {
	if codec == format.Uncompressed {
		if len(raw) != expectedSize {
			return nil, Errorf(CorruptPage, nil, "uncompressed page body is %d bytes, expected %d", len(raw), expectedSize)
		}
		return raw, nil
	}
	return decompress(codec, raw, expectedSize)
}

func decodeDataPageV1(node *ColumnNode, info *PageInfo, body []byte, dict *DecodedPage) (*DecodedPage, error) {
	count := int(info.ValueCount)

	repLevels, rest, err := decodeLevelsV1(body, node.MaxRepetitionLevel, count)
	if err != nil {
		return nil, err
	}
	defLevels, rest, err := decodeLevelsV1(rest, node.MaxDefinitionLevel, count)
	if err != nil {
		return nil, err
	}

	nonNullCount := count
	if defLevels != nil {
		nonNullCount = countEqual(defLevels, node.MaxDefinitionLevel)
	}

	values, err := decodeValues(node, info.ValueEncoding, rest, nonNullCount, dict)
	if err != nil {
		return nil, err
	}

	return &DecodedPage{
		Kind:             DataPageV1Kind,
		ValueCount:       count,
		DefinitionLevels: defLevels,
		RepetitionLevels: repLevels,
		Values:           values,
	}, nil
}

func decodeDataPageV2(node *ColumnNode, chunk *ColumnChunkDescriptor, info *PageInfo, raw []byte, dict *DecodedPage) (*DecodedPage, error) {
	count := int(info.ValueCount)
	repLen := int(info.RepetitionLevelsByteLength)
	defLen := int(info.DefinitionLevelsByteLength)
	if repLen+defLen > len(raw) {
		return nil, Error(MalformedPage, "v2 level lengths exceed page body", nil)
	}
	repBytes := raw[:repLen]
	defBytes := raw[repLen : repLen+defLen]
	valuesRaw := raw[repLen+defLen:]

	repLevels, err := decodeLevelsV2(repBytes, node.MaxRepetitionLevel, count)
	if err != nil {
		return nil, err
	}
	defLevels, err := decodeLevelsV2(defBytes, node.MaxDefinitionLevel, count)
	if err != nil {
		return nil, err
	}

	nonNullCount := count
	if defLevels != nil {
		nonNullCount = countEqual(defLevels, node.MaxDefinitionLevel)
	}

	expectedValuesSize := int(info.UncompressedSize) - repLen - defLen
	var valuesBody []byte
	if info.IsCompressed {
		valuesBody, err = decompressWhole(chunk.Codec, valuesRaw, expectedValuesSize)
	} else {
		if len(valuesRaw) != expectedValuesSize {
			err = Errorf(CorruptPage, nil, "v2 uncompressed values are %d bytes, expected %d", len(valuesRaw), expectedValuesSize)
		}
		valuesBody = valuesRaw
	}
	if err != nil {
		return nil, err
	}

	values, err := decodeValues(node, info.ValueEncoding, valuesBody, nonNullCount, dict)
	if err != nil {
		return nil, err
	}

	return &DecodedPage{
		Kind:             DataPageV2Kind,
		ValueCount:       count,
		DefinitionLevels: defLevels,
		RepetitionLevels: repLevels,
		Values:           values,
	}, nil
}

func countEqual(levels []uint8, v uint8) int {
	n := 0
	for _, l := range levels {
		if l == v {
			n++
		}
	}
	return n
}

// decodeValues dispatches value decoding by encoding (spec.md §4.5). count
// is the number of non-null values to produce (or the full dictionary size
// for a dictionary page). dict is the chunk's decoded dictionary page, used
// only when encoding is RLE_DICTIONARY.
func decodeValues(node *ColumnNode, encoding format.Encoding, body []byte, count int, dict *DecodedPage) ([]Value, error) {
	switch encoding {
	case format.Plain, format.PlainDictionary:
		return decodePlainValues(node, body, count)

	case format.RLE, format.RLEDictionary:
		if dict == nil {
			return nil, Error(CorruptPage, "RLE_DICTIONARY page with no resolved dictionary", nil)
		}
		indices, err := rle.DecodeDictionaryIndices(body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding dictionary indices")
		}
		values := make([]Value, count)
		for i, idx := range indices {
			if int(idx) >= len(dict.Values) {
				return nil, Errorf(CorruptPage, nil, "dictionary index %d out of range (dictionary has %d entries)", idx, len(dict.Values))
			}
			values[i] = dict.Values[idx]
		}
		return values, nil

	case format.DeltaBinaryPacked:
		return decodeDeltaBinaryPacked(node, body, count)

	case format.DeltaLengthByteArray:
		arrays, err := delta.DecodeLengthByteArray(body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding DELTA_LENGTH_BYTE_ARRAY")
		}
		return byteArraysToValues(arrays), nil

	case format.DeltaByteArray:
		arrays, err := delta.DecodeByteArray(body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding DELTA_BYTE_ARRAY")
		}
		return byteArraysToValues(arrays), nil

	case format.ByteStreamSplit:
		return decodeByteStreamSplit(node, body, count)

	default:
		return nil, Errorf(UnsupportedEncoding, nil, "unsupported value encoding %s", encoding)
	}
}

func decodePlainValues(node *ColumnNode, body []byte, count int) ([]Value, error) {
	switch node.Physical {
	case BooleanType:
		bs, err := plain.DecodeBoolean(make([]bool, 0, count), body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding PLAIN boolean")
		}
		return boolsToValues(bs), nil
	case Int32Type:
		vs, err := plain.DecodeInt32(make([]int32, 0, count), body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding PLAIN int32")
		}
		return int32sToValues(vs), nil
	case Int64Type:
		vs, err := plain.DecodeInt64(make([]int64, 0, count), body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding PLAIN int64")
		}
		return int64sToValues(vs), nil
	case Int96Type:
		vs, err := plain.DecodeInt96(make([]deprecated.Int96, 0, count), body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding PLAIN int96")
		}
		out := make([]Value, len(vs))
		for i, v := range vs {
			out[i] = Int96Value(v, 0, 0)
		}
		return out, nil
	case FloatType:
		vs, err := plain.DecodeFloat(make([]float32, 0, count), body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding PLAIN float")
		}
		return floatsToValues(vs), nil
	case DoubleType:
		vs, err := plain.DecodeDouble(make([]float64, 0, count), body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding PLAIN double")
		}
		return doublesToValues(vs), nil
	case ByteArrayType:
		arrays, err := plain.DecodeByteArray(body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding PLAIN byte array")
		}
		return byteArraysToValues(arrays), nil
	case FixedLenByteArrayType:
		arrays, err := plain.DecodeFixedLenByteArray(body, count, fixedLenByteArrayLength(node))
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding PLAIN fixed-length byte array")
		}
		out := make([]Value, len(arrays))
		for i, a := range arrays {
			out[i] = FixedLenByteArrayValue(a, 0, 0)
		}
		return out, nil
	default:
		return nil, Errorf(UnsupportedEncoding, nil, "PLAIN decoding not implemented for physical type %s", node.Physical)
	}
}

func decodeDeltaBinaryPacked(node *ColumnNode, body []byte, count int) ([]Value, error) {
	switch node.Physical {
	case Int32Type:
		vs, err := delta.DecodeInt32(body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding DELTA_BINARY_PACKED int32")
		}
		return int32sToValues(vs), nil
	case Int64Type:
		vs, err := delta.DecodeInt64(body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding DELTA_BINARY_PACKED int64")
		}
		return int64sToValues(vs), nil
	default:
		return nil, Errorf(UnsupportedEncoding, nil, "DELTA_BINARY_PACKED not valid for physical type %s", node.Physical)
	}
}

func decodeByteStreamSplit(node *ColumnNode, body []byte, count int) ([]Value, error) {
	switch node.Physical {
	case FloatType:
		vs, err := bytestreamsplit.DecodeFloat(body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding BYTE_STREAM_SPLIT float")
		}
		return floatsToValues(vs), nil
	case DoubleType:
		vs, err := bytestreamsplit.DecodeDouble(body, count)
		if err != nil {
			return nil, Errorf(CorruptPage, err, "decoding BYTE_STREAM_SPLIT double")
		}
		return doublesToValues(vs), nil
	default:
		return nil, Errorf(UnsupportedEncoding, nil, "BYTE_STREAM_SPLIT not valid for physical type %s", node.Physical)
	}
}

func fixedLenByteArrayLength(node *ColumnNode) int {
	return int(node.TypeLength)
}

func boolsToValues(bs []bool) []Value {
	out := make([]Value, len(bs))
	for i, b := range bs {
		out[i] = BooleanValue(b, 0, 0)
	}
	return out
}

func int32sToValues(vs []int32) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Int32Value(v, 0, 0)
	}
	return out
}

func int64sToValues(vs []int64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = Int64Value(v, 0, 0)
	}
	return out
}

func floatsToValues(vs []float32) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = FloatValue(v, 0, 0)
	}
	return out
}

func doublesToValues(vs []float64) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = DoubleValue(v, 0, 0)
	}
	return out
}

func byteArraysToValues(arrays [][]byte) []Value {
	out := make([]Value, len(arrays))
	for i, a := range arrays {
		out[i] = ByteArrayValue(a, 0, 0)
	}
	return out
}
