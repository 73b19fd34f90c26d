package utfconv

// DecodeUTF16 decodes the codepoint starting at src[i] and returns it together
// with the number of units consumed (1 or 2).
// Ill-formed surrogates decode to Replacement and consume a single unit, so the
// unit following an unpaired high surrogate is examined again by the next call.
// i must be a valid index into src.
func DecodeUTF16(src []uint16, i int) (Codepoint, int) {
	high := src[i]

	// BMP character
	if high&surrogateMask != surrogateValue {
		return Codepoint(high), 1
	}

	// unmatched low surrogate
	if high&pairMask != highSurrogate {
		return Replacement, 1
	}

	// trailing high surrogate
	if i+1 >= len(src) {
		return Replacement, 1
	}

	low := src[i+1]
	if low&pairMask != lowSurrogate {
		return Replacement, 1
	}

	c := Codepoint(high&surrogateBitsMask)<<surrogateBits | Codepoint(low&surrogateBitsMask)
	c += surrogateBias

	// A pair carrying a BMP value is overlong.
	if c <= BMPEnd {
		return Replacement, 2
	}
	return c, 2
}

// UTF16Len returns the number of UTF-16 units EncodeUTF16 writes for c.
func UTF16Len(c Codepoint) int {
	if c > BMPEnd && c <= MaxCodepoint {
		return 2
	}
	return 1
}

// EncodeUTF16 writes the UTF-16 encoding of c into dst starting at i and returns
// the number of units written. If dst cannot hold the whole encoding nothing is
// written and 0 is returned. Values that are not scalar values are written as
// Replacement.
func EncodeUTF16(c Codepoint, dst []uint16, i int) int {
	c = c.scalar()
	n := UTF16Len(c)
	if i < 0 || i+n > len(dst) {
		return 0
	}

	if n == 1 {
		dst[i] = uint16(c)
		return 1
	}

	c -= surrogateBias
	dst[i] = highSurrogate | uint16(c>>surrogateBits)&surrogateBitsMask
	dst[i+1] = lowSurrogate | uint16(c)&surrogateBitsMask
	return 2
}
