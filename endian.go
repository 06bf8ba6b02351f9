package sysprim

import (
	"encoding/binary"

	"github.com/hupe1980/sysprim/internal/endian"
)

// IsBigEndianSystem reports whether the executing CPU stores multi-byte
// integers most significant byte first.
func IsBigEndianSystem() bool {
	return endian.IsBig()
}

// NativeByteOrder returns the byte order of the executing CPU.
func NativeByteOrder() binary.ByteOrder {
	return endian.Native()
}
