//go:build !amd64 && !arm64 && !386 && !riscv64 && !ppc64le && !mips64le && !mipsle && !loong64 && !wasm && !arm && !s390x && !ppc64 && !mips && !mips64

package endian

import "encoding/binary"

var native = Probe()

var isBig = native == binary.BigEndian

// Native returns the probed byte order on ports without a build-tag entry.
func Native() binary.ByteOrder { return native }
