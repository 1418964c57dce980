package parquetcore

import (
	"encoding/binary"

	"github.com/rionmonster/parquetcore/encoding/rle"
)

// decodeLevelsV1 decodes a length-prefixed RLE/bit-packed level stream as
// found inline in a v1 data page body (the 4-byte little-endian length
// precedes the stream). maxLevel == 0 means every value is implicitly at
// level 0 and no bytes are consumed.
func decodeLevelsV1(src []byte, maxLevel uint8, valueCount int) (levels []uint8, rest []byte, err error) {
	if maxLevel == 0 {
		return nil, src, nil
	}
	if len(src) < 4 {
		return nil, nil, Error(MalformedPage, "truncated level stream length prefix", nil)
	}
	n := int(binary.LittleEndian.Uint32(src))
	if n < 0 || 4+n > len(src) {
		return nil, nil, Error(MalformedPage, "level stream length exceeds page body", nil)
	}
	body := src[4 : 4+n]
	rest = src[4+n:]
	levels, err = decodeLevels(body, maxLevel, valueCount)
	return levels, rest, err
}

// decodeLevelsV2 decodes a v2 data page's level stream, whose byte length
// comes from the page header rather than an inline prefix, and which is
// always RLE even when the page body is compressed (spec.md §4.5).
func decodeLevelsV2(src []byte, maxLevel uint8, valueCount int) ([]uint8, error) {
	if maxLevel == 0 {
		return nil, nil
	}
	return decodeLevels(src, maxLevel, valueCount)
}

func decodeLevels(body []byte, maxLevel uint8, valueCount int) ([]uint8, error) {
	bitWidth := rle.BitWidth(int(maxLevel))
	raw, err := rle.DecodeUint32(make([]uint32, 0, valueCount), body, bitWidth, valueCount)
	if err != nil {
		return nil, Errorf(CorruptPage, err, "decoding level stream")
	}
	levels := make([]uint8, len(raw))
	for i, v := range raw {
		levels[i] = uint8(v)
	}
	return levels, nil
}
