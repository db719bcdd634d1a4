// bytes.go
//
// Untyped rendition: fixed-size records laid out back to back in a
// caller-supplied []byte region. Slot i occupies
// storage[i*elementSize : (i+1)*elementSize].

package ringbuffer

// Bytes is a Ring over raw records of ElementSize bytes each. The zero
// value is unusable until Init binds it to storage.
type Bytes struct {
	cursors
	buf  []byte
	size int
}

// NewBytes binds a fresh Bytes ring to storage. storage must hold at least
// capacity*elementSize bytes; bytes past that are never touched.
func NewBytes(storage []byte, elementSize, capacity int) (*Bytes, error) {
	b := new(Bytes)
	if err := b.Init(storage, elementSize, capacity); err != nil {
		return nil, err
	}
	return b, nil
}

// Init (re)binds b to storage and resets both cursors. It performs no
// allocation. Init must not race with Push or Pop.
func (b *Bytes) Init(storage []byte, elementSize, capacity int) error {
	slots := 0
	if elementSize > 0 {
		slots = len(storage) / elementSize
	}
	if err := checkGeometry(capacity, elementSize, slots); err != nil {
		return err
	}
	n := capacity * elementSize
	b.buf = storage[:n:n]
	b.size = elementSize
	b.bind(capacity)
	return nil
}

// ElementSize returns the record size in bytes.
func (b *Bytes) ElementSize() int {
	return b.size
}

// Storage returns the view of caller storage the ring writes into.
func (b *Bytes) Storage() []byte {
	return b.buf
}

// Slot returns the bytes of slot i without copying. Panics if i is outside
// [0, Capacity()).
func (b *Bytes) Slot(i int) []byte {
	off := int(b.checkIndex("slot", i)) * b.size
	return b.buf[off : off+b.size : off+b.size]
}

// Push copies item into the slot at the write cursor and advances it. The
// result has the same best-effort overflow meaning as Ring.Push.
// Panics if len(item) != ElementSize().
func (b *Bytes) Push(item []byte) bool {
	b.checkLen(item)
	w, rd := b.claimWrite()
	copy(b.slot(w), item)
	return b.publishWrite(w, rd)
}

// Pop copies the slot at the read cursor into dst and advances the cursor,
// with the same empty-buffer quirk as Ring.Pop.
// Panics if len(dst) != ElementSize().
func (b *Bytes) Pop(dst []byte) bool {
	b.checkLen(dst)
	rd, ok := b.claimRead()
	copy(dst, b.slot(rd))
	b.publishRead(rd)
	return ok
}

// TryPush is the guarded form of Push; see Ring.TryPush.
func (b *Bytes) TryPush(item []byte) bool {
	b.checkLen(item)
	w, rd := b.claimWrite()
	if !b.hasRoom(w, rd) {
		return false
	}
	copy(b.slot(w), item)
	b.publishWrite(w, rd)
	return true
}

// TryPop is the guarded form of Pop; see Ring.TryPop.
func (b *Bytes) TryPop(dst []byte) bool {
	b.checkLen(dst)
	rd, ok := b.claimRead()
	if !ok {
		return false
	}
	copy(dst, b.slot(rd))
	b.publishRead(rd)
	return true
}

// Stats snapshots the ring's geometry and cursors.
func (b *Bytes) Stats() Stats {
	return b.stats(b.size)
}

func (b *Bytes) slot(i uint64) []byte {
	off := int(i) * b.size
	return b.buf[off : off+b.size]
}

func (b *Bytes) checkLen(p []byte) {
	if len(p) != b.size {
		panic("ringbuffer: record length differs from element size")
	}
}
