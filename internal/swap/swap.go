package swap

import (
	"encoding/binary"
	"math/bits"
	"unsafe"
)

// Integer is the set of types whose byte order can be reversed as a value.
type Integer interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// InPlace reverses the bytes of each of the numElems elements of elemSize
// bytes at the start of buf.
func InPlace(buf []byte, elemSize, numElems int) {
	if elemSize <= 1 || numElems <= 0 {
		return
	}
	n := elemSize * numElems
	b := buf[:n]

	// A little-endian load followed by a big-endian store reverses the
	// element; the compiler lowers the pair to a single bswap.
	switch elemSize {
	case 2:
		for i := 0; i+1 < n; i += 2 {
			b[i], b[i+1] = b[i+1], b[i]
		}
	case 4:
		for i := 0; i+4 <= n; i += 4 {
			binary.BigEndian.PutUint32(b[i:], binary.LittleEndian.Uint32(b[i:]))
		}
	case 8:
		for i := 0; i+8 <= n; i += 8 {
			binary.BigEndian.PutUint64(b[i:], binary.LittleEndian.Uint64(b[i:]))
		}
	default:
		for off := 0; off < n; off += elemSize {
			reverse(b[off : off+elemSize])
		}
	}
}

// Copy writes the byte-swapped elements of src into dst. dst may be src
// itself but must not partially overlap it.
func Copy(dst, src []byte, elemSize, numElems int) {
	if elemSize <= 0 || numElems <= 0 {
		return
	}
	if elemSize == 1 {
		copy(dst[:numElems], src[:numElems])
		return
	}
	n := elemSize * numElems
	d, s := dst[:n], src[:n]

	switch elemSize {
	case 2:
		for i := 0; i+1 < n; i += 2 {
			d[i], d[i+1] = s[i+1], s[i]
		}
	case 4:
		for i := 0; i+4 <= n; i += 4 {
			binary.BigEndian.PutUint32(d[i:], binary.LittleEndian.Uint32(s[i:]))
		}
	case 8:
		for i := 0; i+8 <= n; i += 8 {
			binary.BigEndian.PutUint64(d[i:], binary.LittleEndian.Uint64(s[i:]))
		}
	default:
		half := elemSize >> 1
		for off := 0; off < n; off += elemSize {
			for j := 0; j < half; j++ {
				lo, hi := off+j, off+elemSize-1-j
				a, z := s[lo], s[hi]
				d[lo], d[hi] = z, a
			}
			if elemSize&1 == 1 {
				d[off+half] = s[off+half]
			}
		}
	}
}

func reverse(e []byte) {
	for i, j := 0, len(e)-1; i < j; i, j = i+1, j-1 {
		e[i], e[j] = e[j], e[i]
	}
}

// Value returns v with its bytes reversed.
func Value[T Integer](v T) T {
	switch unsafe.Sizeof(v) {
	case 2:
		return T(bits.ReverseBytes16(uint16(v)))
	case 4:
		return T(bits.ReverseBytes32(uint32(v)))
	case 8:
		return T(bits.ReverseBytes64(uint64(v)))
	default:
		return v
	}
}
