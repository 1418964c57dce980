package delta

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func appendUvarint(buf []byte, v uint64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutUvarint(scratch[:], v)
	return append(buf, scratch[:n]...)
}

func appendVarint(buf []byte, v int64) []byte {
	var scratch [binary.MaxVarintLen64]byte
	n := binary.PutVarint(scratch[:], v)
	return append(buf, scratch[:n]...)
}

// buildArithmeticSequence builds a full DELTA_BINARY_PACKED stream for
// totalValues values starting at firstValue and increasing by delta each
// step, using a single block/mini-block with bit width 0 (all deltas equal
// the block's min delta, so no bit-packed payload is needed).
func buildArithmeticSequence(blockSize, numMiniBlocks, totalValues int, firstValue, delta int64) []byte {
	var buf []byte
	buf = appendUvarint(buf, uint64(blockSize))
	buf = appendUvarint(buf, uint64(numMiniBlocks))
	buf = appendUvarint(buf, uint64(totalValues))
	buf = appendVarint(buf, firstValue)

	buf = appendVarint(buf, delta) // minDelta
	for i := 0; i < numMiniBlocks; i++ {
		buf = append(buf, 0) // bit width 0 for every mini-block
	}
	return buf
}

func TestDecodeInt64ArithmeticSequence(t *testing.T) {
	src := buildArithmeticSequence(8, 1, 5, 10, 3)
	out, err := DecodeInt64(src, 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 13, 16, 19, 22}, out)
}

func TestDecodeInt64PrefixReportsConsumedBytes(t *testing.T) {
	src := buildArithmeticSequence(8, 1, 5, 10, 3)
	trailer := []byte{0xDE, 0xAD}
	out, consumed, err := DecodeInt64Prefix(append(src, trailer...), 5)
	require.NoError(t, err)
	assert.Equal(t, []int64{10, 13, 16, 19, 22}, out)
	assert.Equal(t, len(src), consumed)
}

func TestDecodeInt32ArithmeticSequence(t *testing.T) {
	src := buildArithmeticSequence(8, 1, 3, -5, 2)
	out, err := DecodeInt32(src, 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{-5, -3, -1}, out)
}

func TestDecodeInt64HeaderMismatchFails(t *testing.T) {
	src := buildArithmeticSequence(8, 1, 5, 10, 3)
	_, err := DecodeInt64(src, 4)
	require.Error(t, err)
}

func TestDecodeInt64InvalidBlockHeaderFails(t *testing.T) {
	var buf []byte
	buf = appendUvarint(buf, 7) // block size not divisible by mini blocks
	buf = appendUvarint(buf, 2)
	buf = appendUvarint(buf, 1)
	buf = appendVarint(buf, 0)
	_, err := DecodeInt64(buf, 1)
	require.Error(t, err)
}
