//go:build s390x || ppc64 || mips || mips64

package endian

import "encoding/binary"

const isBig = true

// Native returns the byte order of the common big-endian Go ports.
func Native() binary.ByteOrder { return binary.BigEndian }
