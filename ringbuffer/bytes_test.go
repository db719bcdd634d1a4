package ringbuffer

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func le32(v uint32) []byte {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	return b[:]
}

func TestBytesSentinelScenario(t *testing.T) {
	storage := bytes.Repeat([]byte{0xFF}, 32) // 8 records of 4 bytes
	r, err := NewBytes(storage, 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	if r.Capacity() != 4 || r.ElementSize() != 4 {
		t.Fatalf("geometry = (%d,%d), want (4,4)", r.Capacity(), r.ElementSize())
	}

	item := le32(1000)
	got := make([]byte, 4)

	if r.Push(item) {
		t.Fatal("first push signalled overflow")
	}
	if !bytes.Equal(storage[0:4], item) {
		t.Fatalf("slot 0 = %x, want %x", storage[0:4], item)
	}
	if !r.Pop(got) || !bytes.Equal(got, item) {
		t.Fatalf("Pop = %x, want %x", got, item)
	}
	if r.ReadIndex() != 1 || r.WriteIndex() != 1 {
		t.Fatalf("cursors = (%d,%d), want (1,1)", r.ReadIndex(), r.WriteIndex())
	}

	for i := 0; i < 2*r.Capacity(); i++ {
		if r.Push(item) {
			t.Fatalf("iteration %d: overflow signal", i)
		}
		if !r.Pop(got) || !bytes.Equal(got, item) {
			t.Fatalf("iteration %d: Pop = %x", i, got)
		}
	}
	if !bytes.Equal(r.Slot(3), item) {
		t.Errorf("slot 3 = %x, want %x", r.Slot(3), item)
	}
	for i := 16; i < len(storage); i++ {
		if storage[i] != 0xFF {
			t.Fatalf("byte %d = %#x, spill past capacity", i, storage[i])
		}
	}

	r.Reset()
	if !r.IsEmpty() || r.Count() != 0 || r.Free() != 3 {
		t.Fatalf("after reset: empty=%v count=%d free=%d", r.IsEmpty(), r.Count(), r.Free())
	}
}

func TestBytesRejectsBadGeometry(t *testing.T) {
	cases := []struct {
		name                  string
		storage, size, slotsN int
		want                  error
	}{
		{"zero_size", 16, 0, 4, ErrElementSize},
		{"negative_size", 16, -4, 4, ErrElementSize},
		{"capacity_one", 16, 4, 1, ErrCapacity},
		{"short_storage", 15, 4, 4, ErrStorageTooSmall},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBytes(make([]byte, tc.storage), tc.size, tc.slotsN)
			if !errors.Is(err, tc.want) {
				t.Fatalf("err = %v, want %v", err, tc.want)
			}
		})
	}
}

func TestBytesPanicsOnRecordLength(t *testing.T) {
	r, err := NewBytes(make([]byte, 16), 4, 4)
	if err != nil {
		t.Fatal(err)
	}
	ops := map[string]func(){
		"Push":    func() { r.Push(make([]byte, 3)) },
		"Pop":     func() { r.Pop(make([]byte, 5)) },
		"TryPush": func() { r.TryPush(nil) },
		"TryPop":  func() { r.TryPop(make([]byte, 8)) },
	}
	for name, op := range ops {
		t.Run(name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("%s with wrong length should panic", name)
				}
			}()
			op()
		})
	}
}

func TestBytesGuardedOps(t *testing.T) {
	r, err := NewBytes(make([]byte, 9), 3, 3)
	if err != nil {
		t.Fatal(err)
	}
	a, b, c := []byte("abc"), []byte("def"), []byte("ghi")
	if !r.TryPush(a) || !r.TryPush(b) {
		t.Fatal("TryPush below capacity failed")
	}
	if r.TryPush(c) {
		t.Fatal("TryPush into full ring succeeded")
	}

	got := make([]byte, 3)
	for _, want := range [][]byte{a, b} {
		if !r.TryPop(got) || !bytes.Equal(got, want) {
			t.Fatalf("TryPop = %q, want %q", got, want)
		}
	}
	if r.TryPop(got) {
		t.Fatal("TryPop on empty ring succeeded")
	}
	if r.Stats() != (Stats{Capacity: 3, ElementSize: 3, Read: 2, Write: 2, Count: 0, Free: 2}) {
		t.Fatalf("Stats = %+v", r.Stats())
	}
}

func TestBytesPopOnEmptyAdvances(t *testing.T) {
	r, err := NewBytes([]byte("xxyyzz"), 2, 3)
	if err != nil {
		t.Fatal(err)
	}
	got := make([]byte, 2)
	if r.Pop(got) {
		t.Fatal("Pop on empty returned true")
	}
	if string(got) != "xx" || r.ReadIndex() != 1 {
		t.Fatalf("got %q read=%d, want stale \"xx\" read=1", got, r.ReadIndex())
	}
}
