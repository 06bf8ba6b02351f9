package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestNativeReturnsValidByteOrder(t *testing.T) {
	b := Native()
	if b != binary.BigEndian && b != binary.LittleEndian {
		t.Fatalf("unexpected byte order: %T", b)
	}
}

func TestIsBigMatchesManualProbe(t *testing.T) {
	var one uint32 = 1
	first := *(*byte)(unsafe.Pointer(&one))

	assert.Equal(t, first == 0, IsBig())
	assert.Equal(t, Probe(), Native())
}

func TestNativeRoundTripsKnownConstant(t *testing.T) {
	const v uint64 = 0x0102030405060708
	x := v
	raw := unsafe.Slice((*byte)(unsafe.Pointer(&x)), 8)

	assert.Equal(t, v, Native().Uint64(raw))
	if IsBig() {
		assert.Equal(t, byte(0x01), raw[0])
	} else {
		assert.Equal(t, byte(0x08), raw[0])
	}
}
