// Package deprecated holds the INT96 physical type, retained by the parquet
// format for backward compatibility with legacy timestamp encodings. The
// spec this reader implements decodes INT96 as 12 raw bytes and leaves
// timestamp interpretation to the logical type layer.
package deprecated

import (
	"math/big"
	"unsafe"
)

// Int96 is an implementation of the deprecated INT96 parquet type: three
// little-endian uint32 words, the high word carrying the sign.
type Int96 [3]uint32

// Negative returns true if i is a negative value.
func (i Int96) Negative() bool {
	return (i[2] >> 31) != 0
}

// Less returns true if i < j, using a signed comparison between operands.
func (i Int96) Less(j Int96) bool {
	if i.Negative() {
		if !j.Negative() {
			return true
		}
	} else {
		if j.Negative() {
			return false
		}
	}
	for k := 2; k >= 0; k-- {
		a, b := i[k], j[k]
		switch {
		case a < b:
			return true
		case a > b:
			return false
		}
	}
	return false
}

// Int converts i to a big.Int representation.
func (i Int96) Int() *big.Int {
	z := new(big.Int)
	z.Or(z, big.NewInt(int64(int32(i[2]))))
	z.Lsh(z, 32)
	z.Or(z, big.NewInt(int64(i[1])))
	z.Lsh(z, 32)
	z.Or(z, big.NewInt(int64(i[0])))
	return z
}

// String returns a string representation of i.
func (i Int96) String() string {
	return i.Int().String()
}

// Int96ToBytes converts the slice of Int96 values to a slice of bytes sharing
// the same backing array.
func Int96ToBytes(data []Int96) []byte {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&data[0])), 12*len(data))
}

// BytesToInt96 is the inverse of Int96ToBytes: it reinterprets a byte slice
// whose length is a multiple of 12 as a slice of Int96 values, sharing the
// same backing array.
func BytesToInt96(data []byte) []Int96 {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Slice((*Int96)(unsafe.Pointer(&data[0])), len(data)/12)
}
