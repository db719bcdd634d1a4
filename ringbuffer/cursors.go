// cursors.go
//
// Index arithmetic shared by Ring[T] and Bytes. This is the only place the
// wrap-around and overflow policy lives; the renditions only copy payloads
// between the slot a cursor names and the caller.
//
// Producer owns write, consumer owns read. Each side reads its own cursor
// with a plain atomic load and the opposite cursor with an acquire load,
// then publishes its own advance with a release store.

package ringbuffer

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/sys/cpu"
)

// cursors holds the read/write positions of one buffer. read and write are
// isolated on their own cache lines so the producer and consumer never
// false-share.
type cursors struct {
	_     cpu.CacheLinePad
	read  atomic.Uint64 // next slot to read, consumer-owned
	_     cpu.CacheLinePad
	write atomic.Uint64 // next slot to write, producer-owned
	_     cpu.CacheLinePad

	capacity uint64 // slot count including the sacrificed slot
}

func (c *cursors) bind(capacity int) {
	c.capacity = uint64(capacity)
	storeRelease(&c.read, 0)
	storeRelease(&c.write, 0)
}

// next returns i+1 wrapped into [0, capacity).
//
//go:nosplit
func (c *cursors) next(i uint64) uint64 {
	if i++; i == c.capacity {
		return 0
	}
	return i
}

// claimWrite returns the slot the producer writes next together with the
// read cursor observed at entry.
//
//go:nosplit
func (c *cursors) claimWrite() (w, r uint64) {
	return c.write.Load(), loadAcquire(&c.read)
}

// publishWrite advances write past slot w and reports whether the advance
// landed on r, the read cursor snapshotted by claimWrite. That collision is
// the best-effort overflow signal.
//
//go:nosplit
func (c *cursors) publishWrite(w, r uint64) bool {
	n := c.next(w)
	storeRelease(&c.write, n)
	return n == r
}

// claimRead returns the slot the consumer reads next and whether the buffer
// looked non-empty at entry.
//
//go:nosplit
func (c *cursors) claimRead() (r uint64, ok bool) {
	r = c.read.Load()
	return r, loadAcquire(&c.write) != r
}

//go:nosplit
func (c *cursors) publishRead(r uint64) {
	storeRelease(&c.read, c.next(r))
}

// hasRoom reports whether writing slot w would leave read == write, i.e.
// whether a guarded push must refuse.
//
//go:nosplit
func (c *cursors) hasRoom(w, r uint64) bool {
	return c.next(w) != r
}

// span is the occupancy for a (read, write) snapshot.
//
//go:nosplit
func (c *cursors) span(r, w uint64) uint64 {
	return (w + c.capacity - r) % c.capacity
}

// IsEmpty reports whether read == write.
func (c *cursors) IsEmpty() bool {
	return loadAcquire(&c.read) == loadAcquire(&c.write)
}

// Count returns the number of elements written but not yet read, in
// [0, Capacity()-1].
func (c *cursors) Count() int {
	return int(c.span(loadAcquire(&c.read), loadAcquire(&c.write)))
}

// Free returns Capacity() - Count() - 1: how many pushes fit before the
// next one would overwrite unread data.
func (c *cursors) Free() int {
	return int(c.capacity) - c.Count() - 1
}

// Capacity returns the slot count the buffer was initialised with,
// including the sacrificed slot.
func (c *cursors) Capacity() int {
	return int(c.capacity)
}

// ReadIndex returns the consumer cursor.
func (c *cursors) ReadIndex() int {
	return int(loadAcquire(&c.read))
}

// WriteIndex returns the producer cursor.
func (c *cursors) WriteIndex() int {
	return int(loadAcquire(&c.write))
}

// SetReadIndex forces the consumer cursor. Only the consumer may call it.
// Panics if i is outside [0, Capacity()).
func (c *cursors) SetReadIndex(i int) {
	storeRelease(&c.read, c.checkIndex("read", i))
}

// SetWriteIndex forces the producer cursor. Only the producer may call it.
// Panics if i is outside [0, Capacity()).
func (c *cursors) SetWriteIndex(i int) {
	storeRelease(&c.write, c.checkIndex("write", i))
}

// Reset sets both cursors to 0, leaving the buffer empty. Storage contents
// are left untouched. Not safe while a producer or consumer is active.
func (c *cursors) Reset() {
	storeRelease(&c.read, 0)
	storeRelease(&c.write, 0)
}

func (c *cursors) checkIndex(name string, i int) uint64 {
	if i < 0 || uint64(i) >= c.capacity {
		panic(fmt.Sprintf("ringbuffer: %s index %d outside [0, %d)", name, i, c.capacity))
	}
	return uint64(i)
}

// stats takes one snapshot of both cursors so Count and Free agree.
func (c *cursors) stats(elementSize int) Stats {
	r, w := loadAcquire(&c.read), loadAcquire(&c.write)
	n := c.span(r, w)
	return Stats{
		Capacity:    int(c.capacity),
		ElementSize: elementSize,
		Read:        int(r),
		Write:       int(w),
		Count:       int(n),
		Free:        int(c.capacity - n - 1),
	}
}
