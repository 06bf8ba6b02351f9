package mem

import (
	"unsafe"

	"github.com/hupe1980/sysprim/internal/conv"
	"github.com/hupe1980/sysprim/internal/mmap"
)

// Block is an aligned region together with the state needed to release it.
type Block struct {
	data      []byte
	ptr       unsafe.Pointer
	raw       []byte
	mapping   *mmap.Mapping
	alignment int
}

// Bytes returns the aligned region; len and cap both equal the requested size.
func (b *Block) Bytes() []byte { return b.data }

// Pointer returns the aligned base address. It is valid even for a zero-size block.
func (b *Block) Pointer() unsafe.Pointer { return b.ptr }

// Alignment returns the alignment the block was allocated with.
func (b *Block) Alignment() int { return b.alignment }

// Paged reports whether the block came from an anonymous mapping.
func (b *Block) Paged() bool { return b.mapping != nil }

// Reserved returns the bytes held from the facility, including slack.
func (b *Block) Reserved() int {
	if b.mapping != nil {
		return b.mapping.Size()
	}
	return len(b.raw)
}

// Release returns the block to the facility that produced it.
// Heap blocks drop their references and are reclaimed by the runtime.
func (b *Block) Release() error {
	b.data, b.raw, b.ptr = nil, nil, nil
	if b.mapping != nil {
		m := b.mapping
		b.mapping = nil
		return m.Close()
	}
	return nil
}

// AllocHeap allocates size bytes from the Go heap aligned to alignment.
// The returned slice starts at a memory address divisible by alignment.
func AllocHeap(size, alignment int) (*Block, error) {
	if err := ValidateAlignment(alignment); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}
	// One byte more than the worst-case shift keeps the aligned start inside
	// raw, so a zero-size block still has an address.
	total, err := conv.AddInt(size, alignment)
	if err != nil {
		return nil, ErrInvalidSize
	}
	raw := make([]byte, total)

	addr := uintptr(unsafe.Pointer(&raw[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := offsetFor(addr, alignment)

	return &Block{
		data:      raw[offset : offset+size : offset+size],
		ptr:       unsafe.Pointer(&raw[offset]), //nolint:gosec // unsafe is required for memory alignment
		raw:       raw,
		alignment: alignment,
	}, nil
}

// AllocPages allocates size bytes from an anonymous mapping aligned to alignment.
func AllocPages(size, alignment int) (*Block, error) {
	if err := ValidateAlignment(alignment); err != nil {
		return nil, err
	}
	if size < 0 {
		return nil, ErrInvalidSize
	}

	page := mmap.PageSize()
	length := max(size, 1)
	if alignment > page {
		var err error
		if length, err = conv.AddInt(length, alignment-page); err != nil {
			return nil, ErrInvalidSize
		}
	}

	m, err := mmap.MapAnon(length)
	if err != nil {
		return nil, err
	}

	mapped := m.Bytes()
	offset := offsetFor(uintptr(unsafe.Pointer(&mapped[0])), alignment) //nolint:gosec // unsafe is required for memory alignment

	return &Block{
		data:      mapped[offset : offset+size : offset+size],
		ptr:       unsafe.Pointer(&mapped[offset]), //nolint:gosec // unsafe is required for memory alignment
		mapping:   m,
		alignment: alignment,
	}, nil
}

// View reinterprets an aligned byte slice as a slice of T.
// The caller guarantees b is suitably aligned for T.
func View[T any](b []byte) []T {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if size == 0 || len(b) < size {
		return nil
	}
	n := len(b) / size
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n) //nolint:gosec // unsafe is required for memory alignment
}
