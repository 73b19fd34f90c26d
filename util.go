package utfconv

import (
	"encoding/binary"
	"fmt"
	"strings"
)

var (
	BE = binary.BigEndian
	LE = binary.LittleEndian
	// Order is the default byte order of serialized UTF-16.
	Order binary.ByteOrder = LE
)

// ParseByteOrder maps "le"/"be" (case-insensitive) to a byte order.
func ParseByteOrder(s string) (binary.ByteOrder, error) {
	switch strings.ToLower(s) {
	case "le", "little", "":
		return LE, nil
	case "be", "big":
		return BE, nil
	}
	return nil, fmt.Errorf("%w: got %q", ErrInvalidByteOrder, s)
}

// DecodeUnits reinterprets serialized UTF-16 bytes as code units in the given
// byte order. A dangling odd byte cannot form a unit and is dropped. A byte
// order mark is kept as ordinary data.
func DecodeUnits(b []byte, order binary.ByteOrder) []uint16 {
	if order == nil {
		order = Order
	}
	n := len(b) / 2
	if n == 0 {
		return nil
	}
	units := make([]uint16, n)
	for i := range units {
		units[i] = order.Uint16(b[2*i:])
	}
	return units
}
