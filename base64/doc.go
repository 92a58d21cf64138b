// Package base64 implements constant-time padded Base64 encoding
// and decoding using the standard alphabet from RFC 4648,
// section 4.
//
// Buffers
//
// Encode and Decode write into a caller-provided buffer that must
// be sized with EncodedLen and DecodedLen. Passing a shorter
// buffer is a programming error and panics.
//
// Comparison to encoding/base64
//
// Unlike encoding/base64, this package rejects the newline
// characters '\r' and '\n'.
//
// Unlike encoding/base64, this package never returns partially
// decoded data. If the input is invalid, Decode returns (0,
// *InvalidInputError) and clears whatever it wrote to dst:
//
//    src := []byte("aGVsb?8=")
//    base64.StdEncoding.Decode(dst, src) // encoding/base64: 3, CorruptInputError(5)
//    Decode(dst, src)                    // this package: 0, bad character
//
// Canonical encodings
//
// By default the unused bits of a padded final group are ignored,
// so both "Zg==" and "Zh==" decode to "f". StrictCodec rejects
// the latter with the reason NonCanonical.
package base64
