// Package delta implements the DELTA_BINARY_PACKED, DELTA_LENGTH_BYTE_ARRAY
// and DELTA_BYTE_ARRAY decoders.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#delta-encoding-delta_binary_packed--5
//
// Decode-only, byte-slice-in/byte-slice-out, grounded on the teacher's
// encoding/delta/binary_packed_decoder.go block/miniblock walk, adapted away
// from its io.Reader/bufio state machine since this reader's pages are
// already materialized []byte bodies by the time value decoding runs.
package delta

import (
	"encoding/binary"
	"fmt"
)

// DecodeInt64 decodes a DELTA_BINARY_PACKED stream of count int64 values.
func DecodeInt64(src []byte, count int) ([]int64, error) {
	values, _, err := DecodeInt64Prefix(src, count)
	return values, err
}

// DecodeInt64Prefix is DecodeInt64 but also reports how many leading bytes
// of src the stream consumed, for callers (DELTA_LENGTH_BYTE_ARRAY,
// DELTA_BYTE_ARRAY) that have more data packed after it with no outer
// framing to mark the boundary.
func DecodeInt64Prefix(src []byte, count int) (values []int64, consumed int, err error) {
	r := byteReader{buf: src}
	blockSize, numMiniBlocks, totalValues, firstValue, err := decodeHeader(&r)
	if err != nil {
		return nil, 0, err
	}
	if totalValues != count {
		return nil, 0, fmt.Errorf("delta: header declares %d values, page expects %d", totalValues, count)
	}
	out := make([]int64, 0, totalValues)
	if totalValues == 0 {
		return out, r.pos, nil
	}
	out = append(out, firstValue)
	last := firstValue
	miniBlockSize := blockSize / numMiniBlocks

	for len(out) < totalValues {
		minDelta, err := r.readVarint()
		if err != nil {
			return nil, 0, fmt.Errorf("delta: reading min delta: %w", err)
		}
		bitWidths := make([]byte, numMiniBlocks)
		if err := r.readFull(bitWidths); err != nil {
			return nil, 0, fmt.Errorf("delta: reading bit widths: %w", err)
		}
		for _, bw := range bitWidths {
			if len(out) >= totalValues {
				break
			}
			n := miniBlockSize
			if remain := totalValues - len(out); n > remain {
				n = remain
			}
			if bw == 0 {
				for i := 0; i < n; i++ {
					last += minDelta
					out = append(out, last)
				}
				continue
			}
			bitReader := newBitReader(&r, int(bw), miniBlockSize)
			for i := 0; i < n; i++ {
				v, err := bitReader.next()
				if err != nil {
					return nil, 0, fmt.Errorf("delta: reading mini-block: %w", err)
				}
				last += minDelta + int64(v)
				out = append(out, last)
			}
			// Consume any remaining packed values in the mini-block that
			// weren't needed, to keep the byte cursor aligned for the next
			// mini-block/block.
			for i := n; i < miniBlockSize; i++ {
				if _, err := bitReader.next(); err != nil {
					return nil, 0, fmt.Errorf("delta: draining mini-block: %w", err)
				}
			}
		}
	}
	return out, r.pos, nil
}

// DecodeInt32 decodes a DELTA_BINARY_PACKED stream of count int32 values.
func DecodeInt32(src []byte, count int) ([]int32, error) {
	v64, err := DecodeInt64(src, count)
	if err != nil {
		return nil, err
	}
	out := make([]int32, len(v64))
	for i, v := range v64 {
		out[i] = int32(v)
	}
	return out, nil
}

// decodeInt32Prefix decodes a DELTA_BINARY_PACKED int32 stream and reports
// how many bytes of src it consumed.
func decodeInt32Prefix(src []byte, count int) ([]int32, int, error) {
	v64, consumed, err := DecodeInt64Prefix(src, count)
	if err != nil {
		return nil, 0, err
	}
	out := make([]int32, len(v64))
	for i, v := range v64 {
		out[i] = int32(v)
	}
	return out, consumed, nil
}

func decodeHeader(r *byteReader) (blockSize, numMiniBlocks, totalValues int, firstValue int64, err error) {
	u, err := r.readUvarint()
	if err != nil {
		return 0, 0, 0, 0, fmt.Errorf("delta: reading block size: %w", err)
	}
	blockSize = int(u)
	if u, err = r.readUvarint(); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("delta: reading mini block count: %w", err)
	}
	numMiniBlocks = int(u)
	if u, err = r.readUvarint(); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("delta: reading total values: %w", err)
	}
	totalValues = int(u)
	if firstValue, err = r.readVarint(); err != nil {
		return 0, 0, 0, 0, fmt.Errorf("delta: reading first value: %w", err)
	}
	if numMiniBlocks == 0 || blockSize <= 0 || blockSize%numMiniBlocks != 0 {
		return 0, 0, 0, 0, fmt.Errorf("delta: invalid block header (block_size=%d, mini_blocks=%d)", blockSize, numMiniBlocks)
	}
	return blockSize, numMiniBlocks, totalValues, firstValue, nil
}

// byteReader is a minimal cursor over a []byte supporting the varint/zigzag
// primitives DELTA_BINARY_PACKED's header needs.
type byteReader struct {
	buf []byte
	pos int
}

func (r *byteReader) readUvarint() (uint64, error) {
	v, n := binary.Uvarint(r.buf[r.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("malformed varint")
	}
	r.pos += n
	return v, nil
}

func (r *byteReader) readVarint() (int64, error) {
	v, n := binary.Varint(r.buf[r.pos:])
	if n <= 0 {
		return 0, fmt.Errorf("malformed zigzag varint")
	}
	r.pos += n
	return v, nil
}

func (r *byteReader) readFull(dst []byte) error {
	if r.pos+len(dst) > len(r.buf) {
		return fmt.Errorf("unexpected end of input")
	}
	copy(dst, r.buf[r.pos:])
	r.pos += len(dst)
	return nil
}

// bitReader unpacks fixed-width bit-packed integers directly out of a
// byteReader's backing buffer, advancing the byteReader's cursor by exactly
// the mini-block's declared byte length once exhausted.
type bitReader struct {
	r         *byteReader
	bitWidth  int
	remaining int
	acc       uint64
	accBits   int
}

func newBitReader(r *byteReader, bitWidth, miniBlockSize int) *bitReader {
	return &bitReader{r: r, bitWidth: bitWidth, remaining: byteCount(bitWidth * miniBlockSize)}
}

func (b *bitReader) next() (uint64, error) {
	for b.accBits < b.bitWidth {
		if b.remaining == 0 {
			return 0, fmt.Errorf("mini-block exhausted")
		}
		if b.r.pos >= len(b.r.buf) {
			return 0, fmt.Errorf("unexpected end of input")
		}
		b.acc |= uint64(b.r.buf[b.r.pos]) << b.accBits
		b.r.pos++
		b.remaining--
		b.accBits += 8
	}
	mask := uint64(1)<<b.bitWidth - 1
	v := b.acc & mask
	b.acc >>= b.bitWidth
	b.accBits -= b.bitWidth
	return v, nil
}

func byteCount(bits int) int { return (bits + 7) / 8 }
