package utfconv

import (
	"encoding/binary"
	"fmt"
)

// Mode names the encoding of a conversion's input. The output is always in the
// other encoding.
type Mode string

const (
	ModeUTF8  Mode = "utf8"
	ModeUTF16 Mode = "utf16"
)

// ParseMode accepts "utf8" or "utf16", case-sensitive.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModeUTF8, ModeUTF16:
		return m, nil
	}
	return "", fmt.Errorf("%w: got %q", ErrInvalidMode, s)
}

// Target returns the output encoding of a conversion from m.
func (m Mode) Target() Mode {
	if m == ModeUTF8 {
		return ModeUTF16
	}
	return ModeUTF8
}

// Description names the direction, e.g. "UTF-16 to UTF-8".
func (m Mode) Description() string {
	if m == ModeUTF8 {
		return "UTF-8 to UTF-16"
	}
	return "UTF-16 to UTF-8"
}

// NewText wraps a whole input in m as the Codec whose binary form is the
// target encoding: Size measures the conversion and MarshalTo fills it.
func NewText(m Mode, input []byte, order binary.ByteOrder) (Codec, error) {
	switch m {
	case ModeUTF8:
		return &UTF8{Bytes: input, Order: order}, nil
	case ModeUTF16:
		return &UTF16{Units: DecodeUnits(input, order)}, nil
	}
	return nil, fmt.Errorf("%w: got %q", ErrInvalidMode, string(m))
}

// Measure returns the size in bytes of converting input from m. UTF-16 is
// serialized in order.
func Measure(m Mode, input []byte, order binary.ByteOrder) (int, error) {
	t, err := NewText(m, input, order)
	if err != nil {
		return 0, err
	}
	return t.Size(), nil
}

// Convert converts a whole input from m into a newly allocated output. UTF-16
// input and output are serialized in order; a nil order means Order.
func Convert(m Mode, input []byte, order binary.ByteOrder) ([]byte, error) {
	t, err := NewText(m, input, order)
	if err != nil {
		return nil, err
	}
	out := make([]byte, t.Size())
	n, err := t.MarshalTo(out)
	if err != nil {
		return nil, err
	}
	return out[:n], nil
}
