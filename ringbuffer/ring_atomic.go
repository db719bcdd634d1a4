// ring_atomic.go
//
// Acquire/release helpers for the cursor words. sync/atomic is sequentially
// consistent, a superset of the ordering the cursors need. atomic.Uint64 is
// used instead of a bare uint64 so the cursors stay 8-byte aligned even when
// a Ring is embedded in a caller struct on 32-bit targets.

package ringbuffer

import "sync/atomic"

// loadAcquire is an acquire load of *p.
//
//go:nosplit
func loadAcquire(p *atomic.Uint64) uint64 {
	return p.Load()
}

// storeRelease is a release store to *p.
//
//go:nosplit
func storeRelease(p *atomic.Uint64, v uint64) {
	p.Store(v)
}
