// Package bytestreamsplit implements the BYTE_STREAM_SPLIT encoding used
// for FLOAT and DOUBLE columns: the k-th byte of every value is stored
// contiguously in its own stream, improving downstream compression.
// Reassembly interleaves the N parallel byte streams back into values.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#byte-stream-split-byte_stream_split--9
package bytestreamsplit

import (
	"fmt"
	"math"
)

func DecodeFloat(src []byte, count int) ([]float32, error) {
	const width = 4
	if len(src) < count*width {
		return nil, fmt.Errorf("bytestreamsplit: float stream truncated: need %d bytes, have %d", count*width, len(src))
	}
	out := make([]float32, count)
	for i := 0; i < count; i++ {
		var b [width]byte
		for k := 0; k < width; k++ {
			b[k] = src[k*count+i]
		}
		out[i] = math.Float32frombits(uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24)
	}
	return out, nil
}

func DecodeDouble(src []byte, count int) ([]float64, error) {
	const width = 8
	if len(src) < count*width {
		return nil, fmt.Errorf("bytestreamsplit: double stream truncated: need %d bytes, have %d", count*width, len(src))
	}
	out := make([]float64, count)
	for i := 0; i < count; i++ {
		var bits uint64
		for k := 0; k < width; k++ {
			bits |= uint64(src[k*count+i]) << (8 * k)
		}
		out[i] = math.Float64frombits(bits)
	}
	return out, nil
}
