package format

import (
	"context"
	"fmt"

	"github.com/apache/thrift/lib/go/thrift"
)

// ctx is passed through every thrift call site; none of these structs block
// on I/O beyond the underlying transport, so a background context is enough.
var ctx = context.Background()

// ReadFileMetaData decodes a FileMetaData struct (the parquet footer) from a
// thrift compact-protocol reader.
func ReadFileMetaData(iprot thrift.TProtocol) (*FileMetaData, error) {
	m := &FileMetaData{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, fmt.Errorf("FileMetaData: %w", err)
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, fmt.Errorf("FileMetaData: field header: %w", err)
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			m.Version = v
		case 2:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return nil, err
			}
			m.Schema = make([]SchemaElement, size)
			for i := 0; i < size; i++ {
				se, err := readSchemaElement(iprot)
				if err != nil {
					return nil, err
				}
				m.Schema[i] = *se
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return nil, err
			}
		case 3:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			m.NumRows = v
		case 4:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return nil, err
			}
			m.RowGroups = make([]RowGroup, size)
			for i := 0; i < size; i++ {
				rg, err := readRowGroup(iprot)
				if err != nil {
					return nil, err
				}
				m.RowGroups[i] = *rg
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return nil, err
			}
		case 5:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return nil, err
			}
			m.KeyValueMetadata = make([]KeyValue, size)
			for i := 0; i < size; i++ {
				kv, err := readKeyValue(iprot)
				if err != nil {
					return nil, err
				}
				m.KeyValueMetadata[i] = *kv
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return nil, err
			}
		case 6:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return nil, err
			}
			m.CreatedBy = v
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	if err := iprot.ReadStructEnd(ctx); err != nil {
		return nil, err
	}
	return m, nil
}

func readSchemaElement(iprot thrift.TProtocol) (*SchemaElement, error) {
	se := &SchemaElement{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			se.Type, se.HasType = Type(v), true
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			se.TypeLength, se.HasTypeLength = v, true
		case 3:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			se.RepetitionType, se.HasRepetition = FieldRepetitionType(v), true
		case 4:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return nil, err
			}
			se.Name = v
		case 5:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			se.NumChildren, se.HasNumChildren = v, true
		case 6:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			se.ConvertedType, se.HasConverted = ConvertedType(v), true
		case 7:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			se.Scale = v
		case 8:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			se.Precision = v
		case 10:
			lt, err := readLogicalType(iprot)
			if err != nil {
				return nil, err
			}
			se.LogicalType = lt
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return se, iprot.ReadStructEnd(ctx)
}

func readLogicalType(iprot thrift.TProtocol) (*LogicalType, error) {
	lt := &LogicalType{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			lt.IsString = true
			if err := skipEmptyStruct(iprot); err != nil {
				return nil, err
			}
		case 4:
			lt.IsEnum = true
			if err := skipEmptyStruct(iprot); err != nil {
				return nil, err
			}
		case 5:
			lt.IsDecimal = true
			if err := readDecimalType(iprot, lt); err != nil {
				return nil, err
			}
		case 6:
			lt.IsDate = true
			if err := skipEmptyStruct(iprot); err != nil {
				return nil, err
			}
		case 8:
			lt.IsTimestamp = true
			if err := readTimestampType(iprot, lt); err != nil {
				return nil, err
			}
		case 14:
			lt.IsUUID = true
			if err := skipEmptyStruct(iprot); err != nil {
				return nil, err
			}
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return lt, iprot.ReadStructEnd(ctx)
}

func skipEmptyStruct(iprot thrift.TProtocol) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, typeID, _, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if typeID == thrift.STOP {
			break
		}
		if err := iprot.Skip(ctx, typeID); err != nil {
			return err
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func readDecimalType(iprot thrift.TProtocol, lt *LogicalType) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			lt.DecimalScale = v
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return err
			}
			lt.DecimalPrecision = v
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func readTimestampType(iprot thrift.TProtocol, lt *LogicalType) error {
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadBool(ctx)
			if err != nil {
				return err
			}
			lt.TimestampIsAdjustedToUTC = v
		case 2:
			unit, err := readTimeUnit(iprot)
			if err != nil {
				return err
			}
			lt.TimestampUnit = unit
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return err
		}
	}
	return iprot.ReadStructEnd(ctx)
}

func readTimeUnit(iprot thrift.TProtocol) (string, error) {
	unit := "MILLIS"
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return "", err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return "", err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			unit = "MILLIS"
			if err := skipEmptyStruct(iprot); err != nil {
				return "", err
			}
		case 2:
			unit = "MICROS"
			if err := skipEmptyStruct(iprot); err != nil {
				return "", err
			}
		case 3:
			unit = "NANOS"
			if err := skipEmptyStruct(iprot); err != nil {
				return "", err
			}
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return "", err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return "", err
		}
	}
	return unit, iprot.ReadStructEnd(ctx)
}

func readRowGroup(iprot thrift.TProtocol) (*RowGroup, error) {
	rg := &RowGroup{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return nil, err
			}
			rg.Columns = make([]ColumnChunk, size)
			for i := 0; i < size; i++ {
				cc, err := readColumnChunk(iprot)
				if err != nil {
					return nil, err
				}
				rg.Columns[i] = *cc
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return nil, err
			}
		case 2:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			rg.TotalByteSize = v
		case 3:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			rg.NumRows = v
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return rg, iprot.ReadStructEnd(ctx)
}

func readColumnChunk(iprot thrift.TProtocol) (*ColumnChunk, error) {
	cc := &ColumnChunk{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 2:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			cc.FileOffset = v
		case 3:
			md, err := readColumnMetaData(iprot)
			if err != nil {
				return nil, err
			}
			cc.MetaData = *md
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return cc, iprot.ReadStructEnd(ctx)
}

func readColumnMetaData(iprot thrift.TProtocol) (*ColumnMetaData, error) {
	md := &ColumnMetaData{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			md.Type = Type(v)
		case 2:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return nil, err
			}
			md.Encodings = make([]Encoding, size)
			for i := 0; i < size; i++ {
				v, err := iprot.ReadI32(ctx)
				if err != nil {
					return nil, err
				}
				md.Encodings[i] = Encoding(v)
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return nil, err
			}
		case 3:
			_, size, err := iprot.ReadListBegin(ctx)
			if err != nil {
				return nil, err
			}
			md.PathInSchema = make([]string, size)
			for i := 0; i < size; i++ {
				v, err := iprot.ReadString(ctx)
				if err != nil {
					return nil, err
				}
				md.PathInSchema[i] = v
			}
			if err := iprot.ReadListEnd(ctx); err != nil {
				return nil, err
			}
		case 4:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			md.Codec = CompressionCodec(v)
		case 5:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			md.NumValues = v
		case 6:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			md.TotalUncompressedSize = v
		case 7:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			md.TotalCompressedSize = v
		case 9:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			md.DataPageOffset = v
		case 11:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			md.DictionaryPageOffset, md.HasDictionaryPageOffset = v, true
		case 12:
			st, err := readStatistics(iprot)
			if err != nil {
				return nil, err
			}
			md.Statistics, md.HasStatistics = *st, true
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return md, iprot.ReadStructEnd(ctx)
}

func readStatistics(iprot thrift.TProtocol) (*Statistics, error) {
	st := &Statistics{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadBinary(ctx)
			if err != nil {
				return nil, err
			}
			st.Max = v
		case 2:
			v, err := iprot.ReadBinary(ctx)
			if err != nil {
				return nil, err
			}
			st.Min = v
		case 3:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			st.NullCount, st.HasNullCount = v, true
		case 4:
			v, err := iprot.ReadI64(ctx)
			if err != nil {
				return nil, err
			}
			st.DistinctCount, st.HasDistinctCount = v, true
		case 5:
			v, err := iprot.ReadBinary(ctx)
			if err != nil {
				return nil, err
			}
			st.Max = v
		case 6:
			v, err := iprot.ReadBinary(ctx)
			if err != nil {
				return nil, err
			}
			st.Min = v
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return st, iprot.ReadStructEnd(ctx)
}

func readKeyValue(iprot thrift.TProtocol) (*KeyValue, error) {
	kv := &KeyValue{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return nil, err
			}
			kv.Key = v
		case 2:
			v, err := iprot.ReadString(ctx)
			if err != nil {
				return nil, err
			}
			kv.Value = v
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return kv, iprot.ReadStructEnd(ctx)
}

// ReadPageHeader decodes a PageHeader struct from a thrift compact-protocol
// reader. Page headers are read one at a time off the byte source at each
// page boundary (spec.md §4.2).
func ReadPageHeader(iprot thrift.TProtocol) (*PageHeader, error) {
	ph := &PageHeader{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, fmt.Errorf("PageHeader: %w", err)
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, fmt.Errorf("PageHeader: field header: %w", err)
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			ph.Type = PageType(v)
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			ph.UncompressedPageSize = v
		case 3:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			ph.CompressedPageSize = v
		case 5:
			dph, err := readDataPageHeader(iprot)
			if err != nil {
				return nil, err
			}
			ph.DataPageHeader = dph
		case 7:
			dph, err := readDictionaryPageHeader(iprot)
			if err != nil {
				return nil, err
			}
			ph.DictionaryPageHeader = dph
		case 8:
			dph, err := readDataPageHeaderV2(iprot)
			if err != nil {
				return nil, err
			}
			ph.DataPageHeaderV2 = dph
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return ph, iprot.ReadStructEnd(ctx)
}

func readDataPageHeader(iprot thrift.TProtocol) (*DataPageHeader, error) {
	dph := &DataPageHeader{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.NumValues = v
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.Encoding = Encoding(v)
		case 3:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.DefinitionLevelEncoding = Encoding(v)
		case 4:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.RepetitionLevelEncoding = Encoding(v)
		case 5:
			st, err := readStatistics(iprot)
			if err != nil {
				return nil, err
			}
			dph.Statistics, dph.HasStatistics = *st, true
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return dph, iprot.ReadStructEnd(ctx)
}

func readDataPageHeaderV2(iprot thrift.TProtocol) (*DataPageHeaderV2, error) {
	dph := &DataPageHeaderV2{IsCompressed: true}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.NumValues = v
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.NumNulls = v
		case 3:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.NumRows = v
		case 4:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.Encoding = Encoding(v)
		case 5:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.DefinitionLevelsByteLength = v
		case 6:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.RepetitionLevelsByteLength = v
		case 7:
			v, err := iprot.ReadBool(ctx)
			if err != nil {
				return nil, err
			}
			dph.IsCompressed, dph.HasIsCompressed = v, true
		case 8:
			st, err := readStatistics(iprot)
			if err != nil {
				return nil, err
			}
			dph.Statistics, dph.HasStatistics = *st, true
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return dph, iprot.ReadStructEnd(ctx)
}

func readDictionaryPageHeader(iprot thrift.TProtocol) (*DictionaryPageHeader, error) {
	dph := &DictionaryPageHeader{}
	if _, err := iprot.ReadStructBegin(ctx); err != nil {
		return nil, err
	}
	for {
		_, typeID, id, err := iprot.ReadFieldBegin(ctx)
		if err != nil {
			return nil, err
		}
		if typeID == thrift.STOP {
			break
		}
		switch id {
		case 1:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.NumValues = v
		case 2:
			v, err := iprot.ReadI32(ctx)
			if err != nil {
				return nil, err
			}
			dph.Encoding = Encoding(v)
		case 3:
			v, err := iprot.ReadBool(ctx)
			if err != nil {
				return nil, err
			}
			dph.IsSorted = v
		default:
			if err := iprot.Skip(ctx, typeID); err != nil {
				return nil, err
			}
		}
		if err := iprot.ReadFieldEnd(ctx); err != nil {
			return nil, err
		}
	}
	return dph, iprot.ReadStructEnd(ctx)
}
