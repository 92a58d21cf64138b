package base64

import (
	"github.com/subtlecodec/b64/internal/subtle"
)

// StdPadding is the padding character.
const StdPadding = '='

// Codec is the standard padded Base64 encoding.
//
// It uses the following table:
//
//    ABCDEFGHIJKLMNOPQRSTUVWXYZ
//    abcdefghijklmnopqrstuvwxyz
//    0123456789
//    +/
//
// A Codec is safe for concurrent use.
type Codec struct {
	strict bool
}

var (
	// StdCodec ignores non-zero unused bits in the final group.
	StdCodec = &Codec{}
	// StrictCodec requires the unused bits in the final group to
	// be zero (see section 3.5 of RFC 4648).
	StrictCodec = &Codec{strict: true}
)

// EncodedLen returns the size in bytes of the Base64 encoding
// of n source bytes.
func EncodedLen(n int) int {
	return (n + 2) / 3 * 4
}

// DecodedLen returns the maximum length in bytes of n bytes of
// Base64-encoded data.
//
// The exact length depends on the padding and is returned by
// Decode.
func DecodedLen(n int) int {
	return n / 4 * 3
}

// Encode encodes src using StdCodec.
func Encode(dst, src []byte) int {
	return StdCodec.Encode(dst, src)
}

// EncodeToString encodes src using StdCodec.
func EncodeToString(src []byte) string {
	return StdCodec.EncodeToString(src)
}

// Decode decodes src using StdCodec.
func Decode(dst, src []byte) (int, error) {
	return StdCodec.Decode(dst, src)
}

// DecodeString decodes s using StdCodec.
func DecodeString(s string) ([]byte, error) {
	return StdCodec.DecodeString(s)
}

// EncodedLen is the same as the package-level EncodedLen.
func (c *Codec) EncodedLen(n int) int {
	return EncodedLen(n)
}

// DecodedLen is the same as the package-level DecodedLen.
func (c *Codec) DecodedLen(n int) int {
	return DecodedLen(n)
}

// Encode encodes src, writing EncodedLen(len(src)) bytes to
// dst. It returns the number of bytes written.
//
// Encode panics if dst is shorter than EncodedLen(len(src)).
//
// Encode runs in constant time for the length of src.
func (c *Codec) Encode(dst, src []byte) int {
	if len(src) == 0 {
		return 0
	}
	n := EncodedLen(len(src))
	_ = dst[n-1]

	for len(src) >= 3 {
		v := uint(src[0])<<16 | uint(src[1])<<8 | uint(src[2])
		dst[0] = lookup(v >> 18 & 0x3f)
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[2] = lookup(v >> 6 & 0x3f)
		dst[3] = lookup(v & 0x3f)
		src = src[3:]
		dst = dst[4:]
	}

	switch len(src) {
	case 2:
		v := uint(src[0])<<16 | uint(src[1])<<8
		dst[0] = lookup(v >> 18 & 0x3f)
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[2] = lookup(v >> 6 & 0x3f)
		dst[3] = StdPadding
	case 1:
		v := uint(src[0]) << 16
		dst[0] = lookup(v >> 18 & 0x3f)
		dst[1] = lookup(v >> 12 & 0x3f)
		dst[2] = StdPadding
		dst[3] = StdPadding
	}
	return n
}

// EncodeToString encodes src.
//
// EncodeToString runs in constant time for the length of src.
func (c *Codec) EncodeToString(src []byte) string {
	dst := make([]byte, EncodedLen(len(src)))
	c.Encode(dst, src)
	return string(dst)
}

// Decode decodes src, writing at most DecodedLen(len(src))
// bytes to dst. It returns the exact number of bytes written.
//
// If src is not valid padded Base64, Decode returns (0,
// *InvalidInputError). Unless the reason is BadLength, it also
// clears the first DecodedLen(len(src)) bytes of dst.
//
// Decode panics if dst is shorter than DecodedLen(len(src)).
//
// Decode runs in constant time for the length of src.
func (c *Codec) Decode(dst, src []byte) (int, error) {
	if len(src)%4 != 0 {
		return 0, &InvalidInputError{Reason: BadLength}
	}
	if len(src) == 0 {
		return 0, nil
	}
	out := dst[:DecodedLen(len(src))]

	// The third character is only padding if the fourth one is
	// too, so "AB=C" keeps all four characters and fails below.
	p4 := subtle.ConstantTimeByteEq(src[len(src)-1], StdPadding)
	p3 := subtle.ConstantTimeByteEq(src[len(src)-2], StdPadding) & p4
	src = src[:len(src)-p3-p4]

	var (
		n        int
		failed   byte // 0xff if any character is outside the alphabet
		pad      int  // 1 if any remaining character is padding
		nonCanon int  // 1 if the trailing bits are non-zero
	)
	for len(src) >= 4 {
		c0 := revLookup(uint(src[0]))
		c1 := revLookup(uint(src[1]))
		c2 := revLookup(uint(src[2]))
		c3 := revLookup(uint(src[3]))

		dst[n+0] = c0<<2 | c1>>4
		dst[n+1] = c1<<4 | c2>>2
		dst[n+2] = c2<<6 | c3

		failed |= c0 | c1 | c2 | c3
		pad |= isPad(src[0]) | isPad(src[1]) | isPad(src[2]) | isPad(src[3])

		src = src[4:]
		n += 3
	}

	// Only 0, 2, or 3 characters can remain since at most two
	// padding characters were removed.
	switch len(src) {
	case 3:
		c0 := revLookup(uint(src[0]))
		c1 := revLookup(uint(src[1]))
		c2 := revLookup(uint(src[2]))

		dst[n+0] = c0<<2 | c1>>4
		dst[n+1] = c1<<4 | c2>>2

		failed |= c0 | c1 | c2
		pad |= isPad(src[0]) | isPad(src[1]) | isPad(src[2])
		// The low two bits of c2 are unused.
		nonCanon = subtle.ConstantTimeByteEq(c2&0x3, 0) ^ 1
		n += 2
	case 2:
		c0 := revLookup(uint(src[0]))
		c1 := revLookup(uint(src[1]))

		dst[n+0] = c0<<2 | c1>>4

		failed |= c0 | c1
		pad |= isPad(src[0]) | isPad(src[1])
		// The low four bits of c1 are unused.
		nonCanon = subtle.ConstantTimeByteEq(c1&0xf, 0) ^ 1
		n++
	}
	if !c.strict {
		nonCanon = 0
	}

	// Pick the most specific reason without branching on which
	// of the checks failed.
	bad := subtle.ConstantTimeByteEq(failed, 0xff)
	reason := subtle.ConstantTimeSelect(nonCanon, int(NonCanonical), 0)
	reason = subtle.ConstantTimeSelect(bad, int(BadCharacter), reason)
	reason = subtle.ConstantTimeSelect(pad, int(BadPadding), reason)
	if reason != 0 {
		subtle.Wipe(out)
		return 0, &InvalidInputError{Reason: Reason(reason)}
	}
	return n, nil
}

// DecodeString decodes s.
//
// It returns nil and an *InvalidInputError if s is not valid
// padded Base64.
//
// DecodeString runs in constant time for the length of s.
func (c *Codec) DecodeString(s string) ([]byte, error) {
	dst := make([]byte, DecodedLen(len(s)))
	n, err := c.Decode(dst, []byte(s))
	if err != nil {
		return nil, err
	}
	return dst[:n], nil
}

// isPad returns 1 if c is the padding character and 0 otherwise.
func isPad(c byte) int {
	return subtle.ConstantTimeByteEq(c, StdPadding)
}
