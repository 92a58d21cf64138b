package base64

// lookup converts the 6-bit value c to its corresponding base64
// character.
//
// c must be in [0, 63].
//
// See http://0x80.pl/notesen/2016-01-12-sse-base64-encoding.html
func lookup(c uint) byte {
	// Start with an initial guess that c is in [0, 25], making
	// the shift 'A' (65).
	s := uint('A')

	// If c is greater than 25, guess that c is in [26, 51] and
	// adjust the shift by adding 6 since
	//    'a' - (26+'A') = 6
	// The shift is now 71.
	s += (26 - c - 1) >> 8 & 6

	// If c is greater than 51, guess that c is in [52, 61] and
	// adjust the shift by subtracting 75 since
	//    '0' - (52+71) = -75
	// The shift is now -4 mod 2^64.
	s -= (52 - c - 1) >> 8 & 75

	// If c is greater than 61, then c == 62 or c == 63. Adjust
	// the shift by subtracting 15 since
	//    '+' - (62-4) = -15
	// The shift is now -19 mod 2^64.
	s -= (62 - c - 1) >> 8 & 15

	// If c is greater than 62, then c == 63. Adjust the shift by
	// adding 3 since
	//    '/' - (63-19) = 3
	// The shift is now -16 mod 2^64.
	s += (63 - c - 1) >> 8 & 3

	return byte(c + s)
}

// revLookup converts the base64 character c to its 6-bit binary
// value.
//
// If the character is invalid, including the padding character,
// revLookup returns 0xff.
func revLookup(c uint) byte {
	// (lo - c) & (c - hi) has its high bits set only if
	// lo < c < hi. Each range contributes the shift that maps it
	// onto [0, 63]:
	//
	//    'A' ... 'Z'  191 ≡ -65 mod 256
	//    'a' ... 'z'  185 ≡ -71 mod 256
	//    '0' ... '9'  4
	//    '+'          19
	//    '/'          16
	//
	// At most one range matches, so XOR works as OR.
	s := ((((64 - c) & (c - 91)) >> 8) & 191) ^
		((((96 - c) & (c - 123)) >> 8) & 185) ^
		((((47 - c) & (c - 58)) >> 8) & 4) ^
		((((42 - c) & (c - 44)) >> 8) & 19) ^
		((((46 - c) & (c - 48)) >> 8) & 16)

	// If s == 0 then c is not in the alphabet. 0-s sets bits
	// [63:8] only when s != 0, so the second term is 0x00 for a
	// valid character and 0xff otherwise.
	return byte((s+c)&0x3f | ((((0 - s) >> 8) & 0xff) ^ 0xff))
}
