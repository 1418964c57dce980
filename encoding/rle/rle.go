// Package rle implements the hybrid RLE/bit-packed decoder used for
// repetition/definition levels and RLE_DICTIONARY indices.
//
// https://github.com/apache/parquet-format/blob/master/Encodings.md#run-length-encoding--bit-packing-hybrid-rle--3
//
// This reader only ever decodes (spec.md §1 scopes out writing parquet), so
// unlike the teacher's encoding/rle package this one drops the Encoder side
// entirely and works directly against byte slices rather than io.Reader, to
// match spec.md's DecodedPage model: a page body is already a fully
// materialized []byte by the time level/value decoding runs.
package rle

import (
	"encoding/binary"
	"fmt"
	"io"
)

// DecodeUint32 decodes a hybrid RLE/bit-packed stream of values no wider
// than bitWidth bits each, appending count decoded values to dst.
func DecodeUint32(dst []uint32, src []byte, bitWidth uint, count int) ([]uint32, error) {
	if bitWidth > 32 {
		return dst, fmt.Errorf("rle: invalid bit width %d", bitWidth)
	}
	i := 0
	for count > 0 && i < len(src) {
		u, n := binary.Uvarint(src[i:])
		if n <= 0 {
			return dst, fmt.Errorf("rle: malformed run header: %w", io.ErrUnexpectedEOF)
		}
		i += n

		runLength, isBitPacked := int(u>>1), (u&1) != 0
		if isBitPacked {
			// runLength counts full groups of 8 packed values; the stream
			// always stores every group, even if the trailing group holds
			// padding beyond the logical value count, so the byte cursor
			// must advance by the full run regardless of how many of its
			// values we still need.
			// A group of 8 values of bitWidth bits occupies bitWidth bytes.
			groups := runLength
			groupBytes := int(bitWidth)
			need := groups * groupBytes
			if i+need > len(src) {
				return dst, fmt.Errorf("rle: bit-packed run truncated: %w", io.ErrUnexpectedEOF)
			}
			numValues := groups * 8
			if numValues > count {
				numValues = count
			}
			produced := 0
			for g := 0; g < groups; g++ {
				chunk := src[i : i+groupBytes]
				for k := 0; k < 8; k++ {
					if produced < numValues {
						var v uint64
						for b := uint(0); b < bitWidth; b++ {
							bit := uint(k)*bitWidth + b
							v |= uint64(chunk[bit/8]>>(bit%8)&1) << b
						}
						dst = append(dst, uint32(v))
						produced++
					}
				}
				i += groupBytes
			}
			count -= numValues
		} else {
			if bitWidth != 0 {
				need := byteCount(bitWidth)
				if i+need > len(src) {
					return dst, fmt.Errorf("rle: run-length value truncated: %w", io.ErrUnexpectedEOF)
				}
				var word uint64
				for k, b := range src[i : i+need] {
					word |= uint64(b) << (8 * k)
				}
				i += need
				n := runLength
				if n > count {
					n = count
				}
				for k := 0; k < n; k++ {
					dst = append(dst, uint32(word))
				}
				count -= n
			} else {
				n := runLength
				if n > count {
					n = count
				}
				for k := 0; k < n; k++ {
					dst = append(dst, 0)
				}
				count -= n
			}
		}
	}
	if count > 0 {
		return dst, fmt.Errorf("rle: input exhausted with %d values still pending: %w", count, io.ErrUnexpectedEOF)
	}
	return dst, nil
}

// byteCount returns the minimum number of bytes needed to hold bitWidth
// bits, matching the teacher's internal/bits.ByteCount helper.
func byteCount(bitWidth uint) int {
	return int((bitWidth + 7) / 8)
}

// DecodeDictionaryIndices decodes an RLE_DICTIONARY data page body: a
// leading byte gives the bit width, followed by a hybrid RLE/bit-packed
// stream of count indices into the chunk's dictionary page.
func DecodeDictionaryIndices(src []byte, count int) ([]uint32, error) {
	if len(src) < 1 {
		return nil, fmt.Errorf("rle: dictionary index stream missing bit-width byte")
	}
	bitWidth := uint(src[0])
	if bitWidth > 32 {
		return nil, fmt.Errorf("rle: invalid dictionary index bit width %d", bitWidth)
	}
	if bitWidth == 0 {
		out := make([]uint32, count)
		return out, nil
	}
	return DecodeUint32(make([]uint32, 0, count), src[1:], bitWidth, count)
}

// BitWidth returns ceil(log2(maxValue+1)), the bit width needed to encode
// any value in [0, maxValue] (spec.md §4.4's level bit-width rule, also
// used to size RLE_DICTIONARY index streams against a dictionary's value
// count).
func BitWidth(maxValue int) uint {
	width := uint(0)
	for (1 << width) <= maxValue {
		width++
	}
	return width
}
