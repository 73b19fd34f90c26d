package utfconv

// Codepoint is a single Unicode scalar value, 0 to 0x10FFFF.
// Values in the surrogate range only ever appear as UTF-16 encoding artifacts.
type Codepoint uint32

const (
	// BMPEnd is the last codepoint of the Basic Multilingual Plane, the part of
	// Unicode that UTF-16 encodes without surrogates.
	BMPEnd Codepoint = 0xFFFF

	// MaxCodepoint is the highest valid Unicode codepoint.
	MaxCodepoint Codepoint = 0x10FFFF

	// Replacement is substituted for every invalid or malformed input sequence.
	Replacement Codepoint = 0xFFFD

	minSurrogate Codepoint = 0xD800
	maxSurrogate Codepoint = 0xDFFF
)

// UTF-16 surrogate layout.
const (
	// A unit masked with surrogateMask equals surrogateValue for any surrogate.
	surrogateMask  = 0xF800
	surrogateValue = 0xD800

	// A surrogate masked with pairMask tells high from low.
	pairMask      = 0xFC00
	highSurrogate = 0xD800
	lowSurrogate  = 0xDC00

	// Each surrogate carries 10 bits of the pair's offset from BMPEnd+1.
	surrogateBitsMask = 0x03FF
	surrogateBits     = 10
	surrogateBias     = BMPEnd + 1
)

// UTF-8 continuation byte layout: 10xxxxxx.
const (
	continuationMask  = 0xC0
	continuationValue = 0x80
	continuationBits  = 6
)

// utf8Pattern is a bit pattern a UTF-8 byte is set to or checked against.
type utf8Pattern struct {
	mask  byte // applied before comparing with value
	value byte
}

// utf8Leading holds the leading byte pattern of an N-byte sequence at index N-1.
var utf8Leading = [4]utf8Pattern{
	{mask: 0x80, value: 0x00}, // 0xxxxxxx
	{mask: 0xE0, value: 0xC0}, // 110xxxxx
	{mask: 0xF0, value: 0xE0}, // 1110xxxx
	{mask: 0xF8, value: 0xF0}, // 11110xxx
}

// utf8Max holds the highest codepoint an N-byte sequence encodes, at index N-1.
// utf8Max[N-2]+1 is the lowest codepoint an N-byte sequence may carry.
var utf8Max = [4]Codepoint{0x7F, 0x7FF, 0xFFFF, 0x10FFFF}

// IsSurrogate reports whether c lies in the UTF-16 surrogate range.
func (c Codepoint) IsSurrogate() bool {
	return c >= minSurrogate && c <= maxSurrogate
}

// Valid reports whether c is a Unicode scalar value.
func (c Codepoint) Valid() bool {
	return c <= MaxCodepoint && !c.IsSurrogate()
}

// scalar returns c, or Replacement when c is not a scalar value.
func (c Codepoint) scalar() Codepoint {
	if c.Valid() {
		return c
	}
	return Replacement
}
