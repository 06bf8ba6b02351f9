package endian

import (
	"encoding/binary"
	"unsafe"
)

// IsBig reports whether multi-byte integers are stored most significant byte first.
func IsBig() bool { return isBig }

// Probe inspects the memory layout of a known uint16.
// It panics on a layout that is neither big nor little endian.
func Probe() binary.ByteOrder {
	var x uint16 = 0xABCD
	b := *(*[2]byte)(unsafe.Pointer(&x))

	switch b {
	case [2]byte{0xCD, 0xAB}:
		return binary.LittleEndian
	case [2]byte{0xAB, 0xCD}:
		return binary.BigEndian
	default:
		panic("endian: mixed-endian layout not supported")
	}
}

func init() {
	if (Probe() == binary.BigEndian) != isBig {
		panic("endian: endian values don't agree")
	}
}
