package utfconv

import (
	"encoding"
	"io"
)

// Sizer is an interface for types that can report their binary size.
// This is the measure half of a conversion: callers allocate Size() bytes
// before encoding.
type Sizer interface {
	// Size returns the size of the type in bytes when binary encoded.
	Size() int
}

// Marshaler defines the core methods for encoding a text value into its
// binary form.
type Marshaler interface {
	// encoding.BinaryMarshaler allocates and returns a new byte slice.
	encoding.BinaryMarshaler // Method: MarshalBinary() ([]byte, error)
	// io.WriterTo writes the binary form into a stream.
	io.WriterTo // Method: WriteTo(writer io.Writer) (int64, error)

	// MarshalTo is the fill half of a conversion. It encodes into a
	// pre-allocated buffer, returning an error wrapping ErrShortBuffer
	// if the buffer is smaller than Size().
	MarshalTo(buf []byte) (int, error)
}

// Unmarshaler defines the core methods for decoding a binary form back into
// a text value.
type Unmarshaler interface {
	// encoding.BinaryUnmarshaler decodes data from a byte slice.
	encoding.BinaryUnmarshaler // Method: UnmarshalBinary(data []byte) error
	// io.ReaderFrom reads the whole stream and decodes it.
	io.ReaderFrom // Method: ReadFrom(r io.Reader) (int64, error)
}

// Codec aggregates all binary serialization and deserialization interfaces.
// A type implementing Codec is a complete, self-sizing binary encoder/decoder.
type Codec interface {
	Sizer
	Marshaler
	Unmarshaler
}
