package delta

import "fmt"

// DecodeLengthByteArray decodes a DELTA_LENGTH_BYTE_ARRAY stream: a
// DELTA_BINARY_PACKED stream of count lengths, followed by the concatenated
// value bytes.
func DecodeLengthByteArray(src []byte, count int) ([][]byte, error) {
	lengths, rest, err := decodeLengthPrefix(src, count)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, count)
	pos := 0
	for i, n := range lengths {
		if n < 0 || pos+n > len(rest) {
			return nil, fmt.Errorf("delta: byte array length %d exceeds remaining input", n)
		}
		out[i] = rest[pos : pos+n : pos+n]
		pos += n
	}
	return out, nil
}

// DecodeByteArray decodes a DELTA_BYTE_ARRAY stream: two DELTA_BINARY_PACKED
// streams (prefix lengths, then suffix lengths) followed by the concatenated
// suffix bytes. Each value is reconstructed as previous[:prefix] ++ suffix.
func DecodeByteArray(src []byte, count int) ([][]byte, error) {
	prefixLengths, rest, err := decodeLengthPrefix(src, count)
	if err != nil {
		return nil, err
	}
	suffixLengths, rest, err := decodeLengthPrefix(rest, count)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, count)
	pos := 0
	var prev []byte
	for i := 0; i < count; i++ {
		p, s := prefixLengths[i], suffixLengths[i]
		if p < 0 || p > len(prev) {
			return nil, fmt.Errorf("delta: prefix length %d exceeds previous value", p)
		}
		if s < 0 || pos+s > len(rest) {
			return nil, fmt.Errorf("delta: suffix length %d exceeds remaining input", s)
		}
		value := make([]byte, p+s)
		copy(value, prev[:p])
		copy(value[p:], rest[pos:pos+s])
		pos += s
		out[i] = value
		prev = value
	}
	return out, nil
}

// decodeLengthPrefix decodes a DELTA_BINARY_PACKED int32 stream of count
// lengths and returns the bytes following it. There is no outer framing
// that tells us where the length stream ends; we rely on decodeInt32Prefix
// to report how many bytes it consumed.
func decodeLengthPrefix(src []byte, count int) (lengths []int32, rest []byte, err error) {
	lengths, n, err := decodeInt32Prefix(src, count)
	if err != nil {
		return nil, nil, err
	}
	return lengths, src[n:], nil
}
