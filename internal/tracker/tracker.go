// Package tracker keeps the set of live allocation IDs.
//
// IDs are 32-bit and held in a roaring bitmap, so a registry with millions
// of outstanding buffers stays compact. ID 0 is never issued.
package tracker

import (
	"sync"

	"github.com/RoaringBitmap/roaring/v2"
)

// Registry records which allocation IDs are outstanding.
// It is safe for concurrent use.
type Registry struct {
	mu   sync.Mutex
	live *roaring.Bitmap
	next uint32
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{live: roaring.New()}
}

// Register issues a fresh ID and marks it live.
func (r *Registry) Register() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	for {
		r.next++
		if r.next == 0 {
			continue
		}
		// After wrap-around an ID may still be held by a long-lived buffer.
		if r.live.CheckedAdd(r.next) {
			return r.next
		}
	}
}

// Release marks id as no longer live. It returns false if id was not live,
// which means it was released before or never issued by this registry.
func (r *Registry) Release(id uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live.CheckedRemove(id)
}

// Live reports whether id is outstanding.
func (r *Registry) Live(id uint32) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live.Contains(id)
}

// Len returns the number of outstanding IDs.
func (r *Registry) Len() uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.live.GetCardinality()
}
