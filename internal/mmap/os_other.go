//go:build !unix && !windows

package mmap

const supported = false

func osMapAnon(int) ([]byte, func([]byte) error, error) {
	return nil, nil, ErrUnsupported
}
