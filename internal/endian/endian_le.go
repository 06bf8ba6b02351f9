//go:build amd64 || arm64 || 386 || riscv64 || ppc64le || mips64le || mipsle || loong64 || wasm || arm

package endian

import "encoding/binary"

const isBig = false

// Native returns the byte order of the common little-endian Go ports.
func Native() binary.ByteOrder { return binary.LittleEndian }
