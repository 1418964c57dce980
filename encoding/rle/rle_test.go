package rle

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBitWidth(t *testing.T) {
	assert.Equal(t, uint(0), BitWidth(0))
	assert.Equal(t, uint(1), BitWidth(1))
	assert.Equal(t, uint(2), BitWidth(2))
	assert.Equal(t, uint(2), BitWidth(3))
	assert.Equal(t, uint(3), BitWidth(4))
}

func runLengthRun(value uint32, count int, byteWidth int) []byte {
	header := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(header, uint64(count)<<1)
	out := append([]byte{}, header[:n]...)
	for i := 0; i < byteWidth; i++ {
		out = append(out, byte(value>>(8*uint(i))))
	}
	return out
}

func TestDecodeUint32RunLength(t *testing.T) {
	src := runLengthRun(3, 5, 1)
	out, err := DecodeUint32(nil, src, 3, 5)
	require.NoError(t, err)
	assert.Equal(t, []uint32{3, 3, 3, 3, 3}, out)
}

func TestDecodeUint32BitPacked(t *testing.T) {
	// bit width 3, 8 values packed into 3 bytes: 0,1,2,3,4,5,6,7.
	values := []uint32{0, 1, 2, 3, 4, 5, 6, 7}
	var word uint64
	for i, v := range values {
		word |= uint64(v) << (3 * uint(i))
	}
	packed := []byte{byte(word), byte(word >> 8), byte(word >> 16)}
	header := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(header, uint64(1<<1)|1) // 1 group, bit-packed flag set.
	src := append(header[:n], packed...)

	out, err := DecodeUint32(nil, src, 3, 8)
	require.NoError(t, err)
	assert.Equal(t, values, out)
}

func TestDecodeDictionaryIndices(t *testing.T) {
	body := runLengthRun(2, 4, 1)
	src := append([]byte{1}, body...) // leading bit-width byte.
	out, err := DecodeDictionaryIndices(src, 4)
	require.NoError(t, err)
	assert.Equal(t, []uint32{2, 2, 2, 2}, out)
}

func TestDecodeDictionaryIndicesZeroWidth(t *testing.T) {
	out, err := DecodeDictionaryIndices([]byte{0}, 3)
	require.NoError(t, err)
	assert.Equal(t, []uint32{0, 0, 0}, out)
}

func TestDecodeUint32TruncatedFails(t *testing.T) {
	_, err := DecodeUint32(nil, []byte{}, 1, 5)
	require.Error(t, err)
}
