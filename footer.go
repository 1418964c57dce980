package parquetcore

import (
	"encoding/binary"

	"github.com/rionmonster/parquetcore/internal/format"
)

const magic = "PAR1"

// readFooter parses the parquet footer: PAR1 magic, Thrift-compact
// FileMetaData, 4-byte little-endian footer length, PAR1 (spec.md §6).
func readFooter(source ByteSource) (*format.FileMetaData, error) {
	size := source.Size()
	if size < int64(len(magic))*2+4 {
		return nil, Error(MalformedFile, "file too small to contain a parquet footer", nil)
	}
	head, err := source.Slice(0, int64(len(magic)))
	if err != nil {
		return nil, err
	}
	if string(head) != magic {
		return nil, Error(MalformedFile, "missing leading PAR1 magic", nil)
	}
	tail, err := source.Slice(size-int64(len(magic)), int64(len(magic)))
	if err != nil {
		return nil, err
	}
	if string(tail) != magic {
		return nil, Error(MalformedFile, "missing trailing PAR1 magic", nil)
	}
	lengthBytes, err := source.Slice(size-8, 4)
	if err != nil {
		return nil, err
	}
	footerLength := int64(binary.LittleEndian.Uint32(lengthBytes))
	if footerLength < 0 || footerLength > size-8 {
		return nil, Error(MalformedFile, "footer length out of range", nil)
	}
	metaBytes, err := source.Slice(size-8-footerLength, footerLength)
	if err != nil {
		return nil, err
	}
	iprot, _ := newThriftReader(metaBytes)
	meta, err := format.ReadFileMetaData(iprot)
	if err != nil {
		return nil, Errorf(MalformedFile, err, "parsing FileMetaData")
	}
	return meta, nil
}
