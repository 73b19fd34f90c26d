package utfconv

// utf8SequenceLen classifies a leading byte and returns the length of the
// sequence it starts, or 0 if b cannot lead a sequence.
func utf8SequenceLen(b byte) int {
	for i, p := range utf8Leading {
		if b&p.mask == p.value {
			return i + 1
		}
	}
	return 0
}

// DecodeUTF8 decodes the codepoint starting at src[i] and returns it together
// with the number of bytes consumed (1 to 4).
//
// An invalid leading byte, a truncated sequence or a malformed continuation
// byte decodes to Replacement and consumes only the leading byte. A well-formed
// sequence that is overlong, encodes a surrogate or exceeds MaxCodepoint decodes
// to Replacement and consumes the whole sequence.
// i must be a valid index into src.
func DecodeUTF8(src []byte, i int) (Codepoint, int) {
	lead := src[i]
	n := utf8SequenceLen(lead)
	switch {
	case n == 0:
		return Replacement, 1
	case n == 1:
		return Codepoint(lead), 1
	case i+n > len(src):
		return Replacement, 1
	}

	c := Codepoint(lead &^ utf8Leading[n-1].mask)
	for _, b := range src[i+1 : i+n] {
		if b&continuationMask != continuationValue {
			return Replacement, 1
		}
		c = c<<continuationBits | Codepoint(b&^continuationMask)
	}

	if c <= utf8Max[n-2] || !c.Valid() {
		return Replacement, n
	}
	return c, n
}

// UTF8Len returns the number of bytes EncodeUTF8 writes for c.
func UTF8Len(c Codepoint) int {
	c = c.scalar()
	switch {
	case c <= utf8Max[0]:
		return 1
	case c <= utf8Max[1]:
		return 2
	case c <= utf8Max[2]:
		return 3
	default:
		return 4
	}
}

// EncodeUTF8 writes the UTF-8 encoding of c into dst starting at i and returns
// the number of bytes written. If dst cannot hold the whole encoding nothing is
// written and 0 is returned. Values that are not scalar values are written as
// Replacement.
func EncodeUTF8(c Codepoint, dst []byte, i int) int {
	c = c.scalar()
	n := UTF8Len(c)
	if i < 0 || i+n > len(dst) {
		return 0
	}

	// continuation bytes, last to first
	for k := n - 1; k > 0; k-- {
		dst[i+k] = byte(c)&^continuationMask | continuationValue
		c >>= continuationBits
	}

	p := utf8Leading[n-1]
	dst[i] = byte(c)&^p.mask | p.value
	return n
}
