package parquetcore

import (
	"bytes"
	"encoding/binary"

	"github.com/rionmonster/parquetcore/internal/format"
)

// rleRun is one run-length-encoded run (no bit-packed runs needed for these
// fixtures): value, repeated count times.
type rleRun struct {
	Value uint32
	Count int
}

// encodeRLERuns hand-encodes a hybrid RLE/bit-packed stream using only the
// run-length (non-bit-packed) branch, matching the format rle.DecodeUint32
// expects: a varint header (runLength<<1) followed by byteCount(bitWidth)
// little-endian bytes of the repeated value.
func encodeRLERuns(bitWidth uint, runs []rleRun) []byte {
	var buf bytes.Buffer
	byteWidth := int((bitWidth + 7) / 8)
	header := make([]byte, binary.MaxVarintLen64)
	for _, r := range runs {
		n := binary.PutUvarint(header, uint64(r.Count)<<1)
		buf.Write(header[:n])
		for i := 0; i < byteWidth; i++ {
			buf.WriteByte(byte(r.Value >> (8 * uint(i))))
		}
	}
	return buf.Bytes()
}

// encodeLevelStreamV1 wraps an RLE-encoded level run set with the 4-byte
// little-endian length prefix a v1 data page stores it with.
func encodeLevelStreamV1(bitWidth uint, runs []rleRun) []byte {
	body := encodeRLERuns(bitWidth, runs)
	var buf bytes.Buffer
	var lenPrefix [4]byte
	binary.LittleEndian.PutUint32(lenPrefix[:], uint32(len(body)))
	buf.Write(lenPrefix[:])
	buf.Write(body)
	return buf.Bytes()
}

// encodePlainInt32 encodes values as PLAIN little-endian int32s.
func encodePlainInt32(values []int32) []byte {
	buf := make([]byte, 4*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	return buf
}

// encodePlainByteArray encodes values as PLAIN length-prefixed byte arrays.
func encodePlainByteArray(values []string) []byte {
	var buf bytes.Buffer
	var lenPrefix [4]byte
	for _, v := range values {
		binary.LittleEndian.PutUint32(lenPrefix[:], uint32(len(v)))
		buf.Write(lenPrefix[:])
		buf.WriteString(v)
	}
	return buf.Bytes()
}

// leafNode builds a REQUIRED or OPTIONAL leaf ColumnNode for tests that
// construct schema trees by hand rather than via ResolveSchema.
func leafNode(name string, physical PhysicalType, rep Repetition, maxDef, maxRep uint8) *ColumnNode {
	return &ColumnNode{
		Name:               name,
		Physical:           physical,
		HasPhysical:        true,
		Repetition:         rep,
		MaxDefinitionLevel: maxDef,
		MaxRepetitionLevel: maxRep,
		ColumnIndex:        -1,
	}
}

// memorySource wraps an in-memory byte slice as a ByteSource, for tests that
// hand-craft page bytes without a real parquet file.
func memorySource(data []byte) ByteSource {
	return OpenReaderAtSize(bytes.NewReader(data), int64(len(data)), nil)
}

// newTestColumnChunk builds a minimal ColumnChunkDescriptor for decodePage
// tests that don't exercise the page scanner.
func newTestColumnChunk(node *ColumnNode, codec format.CompressionCodec) *ColumnChunkDescriptor {
	return &ColumnChunkDescriptor{Column: node, Codec: codec}
}

// assignLeafIndexes numbers nodes' ColumnIndex fields depth-first, the way
// ResolveSchema numbers real schema leaves, so hand-built trees can be used
// with the row assembler (which keys leaf streams by ColumnIndex).
func assignLeafIndexes(root *ColumnNode) {
	idx := 0
	var walk func(*ColumnNode)
	walk = func(n *ColumnNode) {
		if n.IsLeaf() {
			n.ColumnIndex = idx
			idx++
			return
		}
		for _, c := range n.Children {
			c.Parent = n
			walk(c)
		}
	}
	walk(root)
}
