package parquetcore

import "github.com/rionmonster/parquetcore/internal/format"

// maxPageHeaderSize bounds how much we read speculatively before parsing a
// page header; real headers are well under a kilobyte.
const maxPageHeaderSize = 8192

// scanPages walks a column chunk's page headers from the byte source,
// producing an ordered PageInfo list (spec.md §4.2). It starts at the
// dictionary page offset if present, otherwise the first data page offset,
// and stops once the cumulative data value count reaches the chunk's
// declared total or the next offset exits the chunk's byte span.
func scanPages(chunk *ColumnChunkDescriptor, source ByteSource) ([]*PageInfo, error) {
	offset := chunk.FirstDataPageOffset
	if chunk.HasDictionaryPage {
		offset = chunk.DictionaryPageOffset
	}
	end := chunk.chunkEnd()

	var pages []*PageInfo
	var seenValues int64
	for offset < end && seenValues < chunk.NumValues {
		readLen := maxPageHeaderSize
		if remain := end - offset; int64(readLen) > remain {
			readLen = int(remain)
		}
		buf, err := source.Slice(offset, int64(readLen))
		if err != nil {
			return nil, err
		}
		iprot, counter := newThriftReader(buf)
		header, err := format.ReadPageHeader(iprot)
		if err != nil {
			return nil, Errorf(MalformedPage, err, "parsing page header at offset %d", offset)
		}
		headerSize := counter.n
		if header.CompressedPageSize <= 0 {
			return nil, Errorf(MalformedPage, nil, "page at offset %d has non-positive compressed size", offset)
		}

		info := &PageInfo{
			Offset:           offset + headerSize,
			HeaderSize:       headerSize,
			CompressedSize:   int64(header.CompressedPageSize),
			UncompressedSize: int64(header.UncompressedPageSize),
		}

		switch header.Type {
		case format.DictionaryPage:
			if header.DictionaryPageHeader == nil {
				return nil, Errorf(MalformedPage, nil, "DICTIONARY page missing dictionary_page_header")
			}
			info.Kind = DictionaryPageKind
			info.ValueCount = int64(header.DictionaryPageHeader.NumValues)
			info.ValueEncoding = header.DictionaryPageHeader.Encoding

		case format.DataPage:
			dph := header.DataPageHeader
			if dph == nil {
				return nil, Errorf(MalformedPage, nil, "DATA_PAGE missing data_page_header")
			}
			info.Kind = DataPageV1Kind
			info.ValueCount = int64(dph.NumValues)
			info.ValueEncoding = dph.Encoding
			info.DefinitionEncoding = dph.DefinitionLevelEncoding
			info.RepetitionEncoding = dph.RepetitionLevelEncoding
			seenValues += info.ValueCount

		case format.DataPageV2:
			dph := header.DataPageHeaderV2
			if dph == nil {
				return nil, Errorf(MalformedPage, nil, "DATA_PAGE_V2 missing data_page_header_v2")
			}
			info.Kind = DataPageV2Kind
			info.ValueCount = int64(dph.NumValues)
			info.ValueEncoding = dph.Encoding
			info.RepetitionLevelsByteLength = dph.RepetitionLevelsByteLength
			info.DefinitionLevelsByteLength = dph.DefinitionLevelsByteLength
			info.IsCompressed = !dph.HasIsCompressed || dph.IsCompressed
			seenValues += info.ValueCount

		default:
			return nil, Errorf(UnsupportedPage, nil, "unsupported page type %s", header.Type)
		}

		pages = append(pages, info)
		offset += headerSize + info.CompressedSize
	}
	return pages, nil
}
