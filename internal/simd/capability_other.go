//go:build !amd64 && !386 && !arm64

package simd

func init() {
	initCapabilities()
}
