package utfconv

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// decoder reads one codepoint from src at i and reports the units consumed.
type decoder[S constraints.Unsigned] func(src []S, i int) (Codepoint, int)

// encoder writes one codepoint into dst at i and reports the units written.
type encoder[D constraints.Unsigned] func(c Codepoint, dst []D, i int) int

// transcode runs decode and encode across the whole of src.
//
// With an empty dst it only measures, summing size over every decoded codepoint.
// Otherwise it fills dst from offset 0. A character that does not fit is skipped
// and the conversion goes on; the returned error then wraps ErrShortBuffer and
// names the first skipped character.
func transcode[S, D constraints.Unsigned](src []S, dst []D, decode decoder[S], size func(Codepoint) int, encode encoder[D]) (int, error) {
	var (
		n   int // next destination offset, or required length when measuring
		err error
	)

	if len(dst) == 0 {
		for i := 0; i < len(src); {
			c, adv := decode(src, i)
			i += adv
			n += size(c)
		}
		return n, nil
	}

	for i := 0; i < len(src); {
		c, adv := decode(src, i)
		w := encode(c, dst, n)
		if w == 0 && err == nil {
			err = fmt.Errorf("%w: U+%04X at source offset %d needs %d units at destination offset %d, capacity %d",
				ErrShortBuffer, uint32(c), i, size(c), n, len(dst))
		}
		n += w
		i += adv
	}
	return n, err
}

// UTF16ToUTF8 converts UTF-16 src to UTF-8.
//
// If dst is empty (nil or zero length) it returns the exact number of bytes the
// conversion needs and writes nothing. Otherwise it writes into dst and returns
// the number of bytes written; characters that do not fit are skipped and
// reported through an error wrapping ErrShortBuffer.
// Invalid input never fails: ill-formed surrogates become U+FFFD.
func UTF16ToUTF8(src []uint16, dst []byte) (int, error) {
	return transcode(src, dst, DecodeUTF16, UTF8Len, EncodeUTF8)
}

// UTF8ToUTF16 converts UTF-8 src to UTF-16.
//
// If dst is empty (nil or zero length) it returns the exact number of units the
// conversion needs and writes nothing. Otherwise it writes into dst and returns
// the number of units written; characters that do not fit are skipped and
// reported through an error wrapping ErrShortBuffer.
// Invalid input never fails: malformed sequences become U+FFFD.
func UTF8ToUTF16(src []byte, dst []uint16) (int, error) {
	return transcode(src, dst, DecodeUTF8, UTF16Len, EncodeUTF16)
}

// ToUTF8 measures and converts src in one call, returning a new UTF-8 slice.
func ToUTF8(src []uint16) []byte {
	n, _ := UTF16ToUTF8(src, nil)
	if n == 0 {
		return nil
	}
	dst := make([]byte, n)
	// A measured destination always fits.
	_, _ = UTF16ToUTF8(src, dst)
	return dst
}

// ToUTF16 measures and converts src in one call, returning a new UTF-16 slice.
func ToUTF16(src []byte) []uint16 {
	n, _ := UTF8ToUTF16(src, nil)
	if n == 0 {
		return nil
	}
	dst := make([]uint16, n)
	_, _ = UTF8ToUTF16(src, dst)
	return dst
}
