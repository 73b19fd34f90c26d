package utfconv

import (
	"encoding/binary"
	"fmt"
	"io"
)

// UTF16 is UTF-16 text whose binary form is UTF-8.
// Marshaling converts Units to UTF-8; unmarshaling decodes UTF-8 into Units.
type UTF16 struct {
	Units []uint16
}

// UTF8 is UTF-8 text whose binary form is UTF-16 serialized in Order.
// Marshaling converts Bytes to UTF-16; unmarshaling decodes serialized UTF-16
// into Bytes. A nil Order means the package default Order.
type UTF8 struct {
	Bytes []byte
	Order binary.ByteOrder
}

var (
	_ Codec = (*UTF16)(nil)
	_ Codec = (*UTF8)(nil)
)

// Size returns the length of the UTF-8 encoding of t in bytes.
func (t *UTF16) Size() int {
	n, _ := UTF16ToUTF8(t.Units, nil)
	return n
}

// MarshalTo writes the UTF-8 encoding of t into p.
// p must hold at least Size() bytes; otherwise nothing is written.
func (t *UTF16) MarshalTo(p []byte) (int, error) {
	size := t.Size()
	if len(p) < size {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrShortBuffer, size, len(p))
	}
	if size == 0 {
		return 0, nil
	}
	return UTF16ToUTF8(t.Units, p[:size])
}

// MarshalBinary returns the UTF-8 encoding of t in a new slice.
func (t *UTF16) MarshalBinary() ([]byte, error) {
	buf := make([]byte, t.Size())
	n, err := t.MarshalTo(buf)
	if err != nil {
		return nil, err
	}
	return buf[:n], nil
}

// WriteTo writes the UTF-8 encoding of t to w.
func (t *UTF16) WriteTo(w io.Writer) (int64, error) {
	bw, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	for i := 0; i < len(t.Units); {
		c, n := DecodeUTF16(t.Units, i)
		bw.WriteUTF8(c)
		i += n
	}
	return bw.Result()
}

// UnmarshalBinary decodes UTF-8 data into t.Units. Malformed sequences are
// replaced with U+FFFD.
func (t *UTF16) UnmarshalBinary(data []byte) error {
	t.Units = ToUTF16(data)
	return nil
}

// ReadFrom reads r to EOF and decodes it as UTF-8.
func (t *UTF16) ReadFrom(r io.Reader) (int64, error) {
	return ReadFromGeneric(t, r)
}

// String returns t as a Go string.
func (t *UTF16) String() string {
	return string(ToUTF8(t.Units))
}

func (t *UTF8) order() binary.ByteOrder {
	if t.Order == nil {
		return Order
	}
	return t.Order
}

// Len returns the number of UTF-16 units t converts to.
func (t *UTF8) Len() int {
	n, _ := UTF8ToUTF16(t.Bytes, nil)
	return n
}

// Size returns the length of the serialized UTF-16 encoding of t in bytes.
func (t *UTF8) Size() int {
	return 2 * t.Len()
}

// MarshalTo writes the serialized UTF-16 encoding of t into p.
// p must hold at least Size() bytes; otherwise nothing is written.
func (t *UTF8) MarshalTo(p []byte) (int, error) {
	return MarshalToGeneric(t, p)
}

// MarshalBinary returns the serialized UTF-16 encoding of t in a new slice.
func (t *UTF8) MarshalBinary() ([]byte, error) {
	return MarshalBinaryGeneric(t)
}

// WriteTo writes the serialized UTF-16 encoding of t to w.
func (t *UTF8) WriteTo(w io.Writer) (int64, error) {
	bw, err := NewWriter(w)
	if err != nil {
		return 0, err
	}
	bw.WithByteOrder(t.order())
	for i := 0; i < len(t.Bytes); {
		c, n := DecodeUTF8(t.Bytes, i)
		bw.WriteUTF16(c)
		i += n
	}
	return bw.Result()
}

// UnmarshalBinary decodes serialized UTF-16 data into t.Bytes. Ill-formed
// surrogates are replaced with U+FFFD; a dangling odd byte is dropped.
func (t *UTF8) UnmarshalBinary(data []byte) error {
	t.Bytes = ToUTF8(DecodeUnits(data, t.order()))
	return nil
}

// ReadFrom reads r to EOF and decodes it as serialized UTF-16.
func (t *UTF8) ReadFrom(r io.Reader) (int64, error) {
	return ReadFromGeneric(t, r)
}

// String returns t as a Go string.
func (t *UTF8) String() string {
	return string(t.Bytes)
}
