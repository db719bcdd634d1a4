// ring.go
//
// Typed SPSC ring over caller-supplied []T storage. The element type is
// known statically, so slot copies are plain assignments and there is no
// byte-stride arithmetic to get wrong. Cursor queries (IsEmpty, Count,
// Free, Capacity, ReadIndex, WriteIndex, SetReadIndex, SetWriteIndex,
// Reset) are promoted from the shared cursor pair.

package ringbuffer

import "unsafe"

// Ring is a fixed-capacity circular buffer dedicated to one producer and
// one consumer. The zero value is unusable until Init binds it to storage.
type Ring[T any] struct {
	cursors
	buf      []T
	elemSize int
}

// New binds a fresh Ring to storage with the given capacity. storage must
// provide at least capacity elements; only the first capacity are used.
func New[T any](storage []T, capacity int) (*Ring[T], error) {
	r := new(Ring[T])
	if err := r.Init(storage, capacity); err != nil {
		return nil, err
	}
	return r, nil
}

// MustNew is New for call sites that treat a bad geometry as fatal.
func MustNew[T any](storage []T, capacity int) *Ring[T] {
	r, err := New(storage, capacity)
	if err != nil {
		panic(err)
	}
	return r
}

// FromArray binds a Ring to the whole of storage: capacity is len(storage)
// and the element size is the size of T. Pass arr[:] to use a fixed array;
// the ring aliases the array's memory.
func FromArray[T any](storage []T) (*Ring[T], error) {
	return New(storage, len(storage))
}

// Init (re)binds r to storage with the given capacity and resets both
// cursors. It performs no allocation. Init must not race with Push or Pop.
func (r *Ring[T]) Init(storage []T, capacity int) error {
	var zero T
	size := int(unsafe.Sizeof(zero))
	if err := checkGeometry(capacity, size, len(storage)); err != nil {
		return err
	}
	r.buf = storage[:capacity:capacity]
	r.elemSize = size
	r.bind(capacity)
	return nil
}

// ElementSize returns the size in bytes of one T.
func (r *Ring[T]) ElementSize() int {
	return r.elemSize
}

// Storage returns the view of caller storage the ring writes into. Its
// first element aliases the storage passed to Init.
func (r *Ring[T]) Storage() []T {
	return r.buf
}

// Push copies *item into the slot at the write cursor and advances it.
//
// The result is true when the advance made write equal to the read cursor
// observed at entry: this push wrapped onto unread data and the buffer now
// reads as empty. The signal is computed from one load of the read cursor
// and may be stale if the consumer moves concurrently. Push never refuses;
// use TryPush to avoid overwriting unread elements.
func (r *Ring[T]) Push(item *T) bool {
	w, rd := r.claimWrite()
	r.buf[w] = *item
	return r.publishWrite(w, rd)
}

// Pop copies the slot at the read cursor into *dst and advances the cursor.
//
// The result is true when the buffer was non-empty at entry. When it was
// empty Pop still copies the (stale) slot and still advances, which leaves
// the read cursor ahead of the write cursor; callers must discard dst and
// should prefer TryPop when emptiness is possible.
func (r *Ring[T]) Pop(dst *T) bool {
	rd, ok := r.claimRead()
	*dst = r.buf[rd]
	r.publishRead(rd)
	return ok
}

// TryPush writes *item only if that leaves at least one unread slot
// untouched, i.e. Free() > 0. It returns false without side effects
// otherwise.
func (r *Ring[T]) TryPush(item *T) bool {
	w, rd := r.claimWrite()
	if !r.hasRoom(w, rd) {
		return false
	}
	r.buf[w] = *item
	r.publishWrite(w, rd)
	return true
}

// TryPop reads into *dst only if the buffer is non-empty. It returns false
// and leaves both *dst and the read cursor alone otherwise.
func (r *Ring[T]) TryPop(dst *T) bool {
	rd, ok := r.claimRead()
	if !ok {
		return false
	}
	*dst = r.buf[rd]
	r.publishRead(rd)
	return true
}

// PushWait spins until TryPush succeeds, yielding the thread every
// spinBudget misses (every miss when GOMAXPROCS is 1).
func (r *Ring[T]) PushWait(item *T) {
	var s spinner
	for !r.TryPush(item) {
		s.wait()
	}
}

// PopWait spins until TryPop succeeds, with the same backoff as PushWait.
func (r *Ring[T]) PopWait(dst *T) {
	var s spinner
	for !r.TryPop(dst) {
		s.wait()
	}
}

// Stats snapshots the ring's geometry and cursors.
func (r *Ring[T]) Stats() Stats {
	return r.stats(r.elemSize)
}
