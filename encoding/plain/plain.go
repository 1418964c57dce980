// Package plain implements the PLAIN encoding: fixed-width little-endian for
// numeric types, length-prefixed for BYTE_ARRAY, LSB-first bit-packed for
// BOOLEAN.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#plain-plain--0
package plain

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/rionmonster/parquetcore/deprecated"
)

func DecodeBoolean(dst []bool, src []byte, count int) ([]bool, error) {
	need := (count + 7) / 8
	if len(src) < need {
		return nil, fmt.Errorf("plain: boolean stream truncated: need %d bytes, have %d", need, len(src))
	}
	out := dst[:0]
	for i := 0; i < count; i++ {
		b := src[i/8]
		out = append(out, (b>>(uint(i)%8))&1 != 0)
	}
	return out, nil
}

func DecodeInt32(dst []int32, src []byte, count int) ([]int32, error) {
	if len(src) < count*4 {
		return nil, fmt.Errorf("plain: int32 stream truncated: need %d bytes, have %d", count*4, len(src))
	}
	out := dst[:0]
	for i := 0; i < count; i++ {
		out = append(out, int32(binary.LittleEndian.Uint32(src[i*4:])))
	}
	return out, nil
}

func DecodeInt64(dst []int64, src []byte, count int) ([]int64, error) {
	if len(src) < count*8 {
		return nil, fmt.Errorf("plain: int64 stream truncated: need %d bytes, have %d", count*8, len(src))
	}
	out := dst[:0]
	for i := 0; i < count; i++ {
		out = append(out, int64(binary.LittleEndian.Uint64(src[i*8:])))
	}
	return out, nil
}

func DecodeInt96(dst []deprecated.Int96, src []byte, count int) ([]deprecated.Int96, error) {
	if len(src) < count*12 {
		return nil, fmt.Errorf("plain: int96 stream truncated: need %d bytes, have %d", count*12, len(src))
	}
	out := dst[:0]
	for i := 0; i < count; i++ {
		b := src[i*12:]
		out = append(out, deprecated.Int96{
			binary.LittleEndian.Uint32(b[0:4]),
			binary.LittleEndian.Uint32(b[4:8]),
			binary.LittleEndian.Uint32(b[8:12]),
		})
	}
	return out, nil
}

func DecodeFloat(dst []float32, src []byte, count int) ([]float32, error) {
	if len(src) < count*4 {
		return nil, fmt.Errorf("plain: float stream truncated: need %d bytes, have %d", count*4, len(src))
	}
	out := dst[:0]
	for i := 0; i < count; i++ {
		out = append(out, math.Float32frombits(binary.LittleEndian.Uint32(src[i*4:])))
	}
	return out, nil
}

func DecodeDouble(dst []float64, src []byte, count int) ([]float64, error) {
	if len(src) < count*8 {
		return nil, fmt.Errorf("plain: double stream truncated: need %d bytes, have %d", count*8, len(src))
	}
	out := dst[:0]
	for i := 0; i < count; i++ {
		out = append(out, math.Float64frombits(binary.LittleEndian.Uint64(src[i*8:])))
	}
	return out, nil
}

// DecodeByteArray decodes count length-prefixed byte arrays, returning
// slices that reference src directly (no copy).
func DecodeByteArray(src []byte, count int) ([][]byte, error) {
	out := make([][]byte, count)
	pos := 0
	for i := 0; i < count; i++ {
		if pos+4 > len(src) {
			return nil, fmt.Errorf("plain: byte array length prefix truncated at value %d", i)
		}
		n := int(binary.LittleEndian.Uint32(src[pos:]))
		pos += 4
		if n < 0 || pos+n > len(src) {
			return nil, fmt.Errorf("plain: byte array value %d length %d exceeds remaining input", i, n)
		}
		out[i] = src[pos : pos+n : pos+n]
		pos += n
	}
	return out, nil
}

// DecodeFixedLenByteArray slices count consecutive length-byte arrays out of
// src without copying.
func DecodeFixedLenByteArray(src []byte, count, length int) ([][]byte, error) {
	if len(src) < count*length {
		return nil, fmt.Errorf("plain: fixed-length byte array stream truncated: need %d bytes, have %d", count*length, len(src))
	}
	out := make([][]byte, count)
	for i := 0; i < count; i++ {
		out[i] = src[i*length : (i+1)*length : (i+1)*length]
	}
	return out, nil
}
