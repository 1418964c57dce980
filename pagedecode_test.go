package parquetcore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rionmonster/parquetcore/internal/format"
)

func TestDecodePageV1FlatRequiredInt32(t *testing.T) {
	node := leafNode("id", Int32Type, Required, 0, 0)
	body := encodePlainInt32([]int32{1, 2, 3})
	source := memorySource(body)
	chunk := newTestColumnChunk(node, format.Uncompressed)
	info := &PageInfo{
		Kind:             DataPageV1Kind,
		Offset:           0,
		CompressedSize:   int64(len(body)),
		UncompressedSize: int64(len(body)),
		ValueCount:       3,
		ValueEncoding:    format.Plain,
	}

	page, err := decodePage(source, node, chunk, info, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, page.ValueCount)
	assert.Nil(t, page.DefinitionLevels)
	assert.Nil(t, page.RepetitionLevels)
	require.Len(t, page.Values, 3)
	assert.Equal(t, int32(1), page.Values[0].Int32())
	assert.Equal(t, int32(2), page.Values[1].Int32())
	assert.Equal(t, int32(3), page.Values[2].Int32())
}

func TestDecodePageV1OptionalStringWithNulls(t *testing.T) {
	node := leafNode("name", ByteArrayType, Optional, 1, 0)
	defStream := encodeLevelStreamV1(1, []rleRun{{Value: 1, Count: 1}, {Value: 0, Count: 1}, {Value: 1, Count: 1}})
	values := encodePlainByteArray([]string{"hello", "world"})
	body := append(append([]byte{}, defStream...), values...)

	source := memorySource(body)
	chunk := newTestColumnChunk(node, format.Uncompressed)
	info := &PageInfo{
		Kind:             DataPageV1Kind,
		Offset:           0,
		CompressedSize:   int64(len(body)),
		UncompressedSize: int64(len(body)),
		ValueCount:       3,
		ValueEncoding:    format.Plain,
	}

	page, err := decodePage(source, node, chunk, info, nil)
	require.NoError(t, err)
	assert.Equal(t, 3, page.ValueCount)
	require.Equal(t, []uint8{1, 0, 1}, page.DefinitionLevels)
	assert.Nil(t, page.RepetitionLevels)
	require.Len(t, page.Values, 2)
	assert.Equal(t, "hello", string(page.Values[0].ByteArray()))
	assert.Equal(t, "world", string(page.Values[1].ByteArray()))
}

func TestDecodePageDictionary(t *testing.T) {
	node := leafNode("id", Int32Type, Required, 0, 0)
	body := encodePlainInt32([]int32{10, 20, 30})
	source := memorySource(body)
	chunk := newTestColumnChunk(node, format.Uncompressed)
	info := &PageInfo{
		Kind:             DictionaryPageKind,
		Offset:           0,
		CompressedSize:   int64(len(body)),
		UncompressedSize: int64(len(body)),
		ValueCount:       3,
		ValueEncoding:    format.Plain,
	}

	page, err := decodePage(source, node, chunk, info, nil)
	require.NoError(t, err)
	assert.Equal(t, DictionaryPageKind, page.Kind)
	require.Len(t, page.Values, 3)
	assert.Equal(t, int32(20), page.Values[1].Int32())
}

func TestDecodePageRLEDictionaryResolvesAgainstDictionary(t *testing.T) {
	node := leafNode("id", Int32Type, Required, 0, 0)
	dict := &DecodedPage{Kind: DictionaryPageKind, ValueCount: 3, Values: int32sToValues([]int32{100, 200, 300})}

	indexBody := append([]byte{2}, encodeRLERuns(2, []rleRun{{Value: 1, Count: 4}})...)
	source := memorySource(indexBody)
	chunk := newTestColumnChunk(node, format.Uncompressed)
	info := &PageInfo{
		Kind:             DataPageV1Kind,
		Offset:           0,
		CompressedSize:   int64(len(indexBody)),
		UncompressedSize: int64(len(indexBody)),
		ValueCount:       4,
		ValueEncoding:    format.RLEDictionary,
	}

	page, err := decodePage(source, node, chunk, info, dict)
	require.NoError(t, err)
	require.Len(t, page.Values, 4)
	for _, v := range page.Values {
		assert.Equal(t, int32(200), v.Int32())
	}
}

func TestDecodePageUncompressedSizeMismatchFails(t *testing.T) {
	node := leafNode("id", Int32Type, Required, 0, 0)
	body := encodePlainInt32([]int32{1, 2, 3})
	source := memorySource(body)
	chunk := newTestColumnChunk(node, format.Uncompressed)
	info := &PageInfo{
		Kind:             DataPageV1Kind,
		Offset:           0,
		CompressedSize:   int64(len(body)),
		UncompressedSize: int64(len(body)) + 1,
		ValueCount:       3,
		ValueEncoding:    format.Plain,
	}

	_, err := decodePage(source, node, chunk, info, nil)
	require.Error(t, err)
	assert.True(t, Is(err, CorruptPage))
}
