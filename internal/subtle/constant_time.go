// Package subtle implements the constant-time helpers used by
// the codec.
package subtle

import "crypto/subtle"

// ConstantTimeByteEq returns 1 if x == y and 0 otherwise.
func ConstantTimeByteEq(x, y uint8) int {
	return subtle.ConstantTimeByteEq(x, y)
}

// ConstantTimeSelect returns x if v == 1 and y if v == 0.
// Its behavior is undefined if v takes any other value.
func ConstantTimeSelect(v, x, y int) int {
	return subtle.ConstantTimeSelect(v, x, y)
}

// ConstantTimeFilter copies every byte of src for which drop
// returns 0 to the front of dst and returns the number of bytes
// copied. dst must be at least as long as src, and may be the
// same slice.
//
// drop must return 0 or 1 and must itself run in constant time.
// The time taken is then a function of len(src) only.
func ConstantTimeFilter(dst, src []byte, drop func(byte) int) int {
	offset := 0
	for _, b := range src {
		dst[offset] = b
		offset += drop(b) ^ 1
	}
	return offset
}
