package plain

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeBoolean(t *testing.T) {
	// bits LSB-first: 1,0,1,1,0 -> byte 0b00001101
	out, err := DecodeBoolean(nil, []byte{0x0D}, 5)
	require.NoError(t, err)
	assert.Equal(t, []bool{true, false, true, true, false}, out)
}

func TestDecodeInt32(t *testing.T) {
	src := make([]byte, 12)
	binary.LittleEndian.PutUint32(src[0:], uint32(int32(-1)))
	binary.LittleEndian.PutUint32(src[4:], 0)
	binary.LittleEndian.PutUint32(src[8:], 42)

	out, err := DecodeInt32(nil, src, 3)
	require.NoError(t, err)
	assert.Equal(t, []int32{-1, 0, 42}, out)
}

func TestDecodeInt32Truncated(t *testing.T) {
	_, err := DecodeInt32(nil, []byte{1, 2, 3}, 1)
	require.Error(t, err)
}

func TestDecodeInt64(t *testing.T) {
	src := make([]byte, 8)
	binary.LittleEndian.PutUint64(src, uint64(int64(-9999)))
	out, err := DecodeInt64(nil, src, 1)
	require.NoError(t, err)
	assert.Equal(t, []int64{-9999}, out)
}

func TestDecodeFloatAndDouble(t *testing.T) {
	fsrc := make([]byte, 4)
	binary.LittleEndian.PutUint32(fsrc, math.Float32bits(3.5))
	fout, err := DecodeFloat(nil, fsrc, 1)
	require.NoError(t, err)
	assert.Equal(t, []float32{3.5}, fout)

	dsrc := make([]byte, 8)
	binary.LittleEndian.PutUint64(dsrc, math.Float64bits(-2.25))
	dout, err := DecodeDouble(nil, dsrc, 1)
	require.NoError(t, err)
	assert.Equal(t, []float64{-2.25}, dout)
}

func TestDecodeByteArray(t *testing.T) {
	var src []byte
	for _, v := range []string{"a", "bcd", ""} {
		lp := make([]byte, 4)
		binary.LittleEndian.PutUint32(lp, uint32(len(v)))
		src = append(src, lp...)
		src = append(src, v...)
	}

	out, err := DecodeByteArray(src, 3)
	require.NoError(t, err)
	require.Len(t, out, 3)
	assert.Equal(t, "a", string(out[0]))
	assert.Equal(t, "bcd", string(out[1]))
	assert.Equal(t, "", string(out[2]))
}

func TestDecodeByteArrayLengthExceedsInputFails(t *testing.T) {
	lp := make([]byte, 4)
	binary.LittleEndian.PutUint32(lp, 10)
	_, err := DecodeByteArray(lp, 1)
	require.Error(t, err)
}

func TestDecodeFixedLenByteArray(t *testing.T) {
	src := []byte{1, 2, 3, 4, 5, 6}
	out, err := DecodeFixedLenByteArray(src, 3, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]byte{{1, 2}, {3, 4}, {5, 6}}, out)
}
