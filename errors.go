package utfconv

import "errors"

var (
	// ErrShortBuffer indicates that a fill-mode conversion skipped at least one
	// character because the destination was too small. Callers should measure
	// first and allocate the measured length.
	ErrShortBuffer = errors.New("utfconv: destination buffer too small")

	// ErrNilIO indicates that NewWriter was called with a nil io.Writer.
	ErrNilIO = errors.New("utfconv: NewWriter called with a nil io.Writer")

	// ErrAlreadyBuffered indicates that NewWriter was called with an already-buffered
	// writer, which would lead to unpredictable behavior and performance issues.
	ErrAlreadyBuffered = errors.New("utfconv: writer is already buffered")

	// ErrInvalidWrite indicates that an io.Writer returned an invalid (negative) count from Write.
	ErrInvalidWrite = errors.New("utfconv: writer returned invalid count from Write")

	// ErrInvalidMode indicates an input encoding other than "utf8" or "utf16".
	ErrInvalidMode = errors.New("utfconv: mode must be either 'utf8' or 'utf16'")

	// ErrInvalidByteOrder indicates a UTF-16 byte order other than "le" or "be".
	ErrInvalidByteOrder = errors.New("utfconv: byte order must be either 'le' or 'be'")

	// ErrEmptyInput indicates a conversion of an empty input file.
	ErrEmptyInput = errors.New("utfconv: input is empty")

	// ErrMismatch indicates that a converted output differs from the expected content.
	ErrMismatch = errors.New("utfconv: output does not match expected content")
)
