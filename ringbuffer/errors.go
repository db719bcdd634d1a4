package ringbuffer

import (
	"errors"
	"fmt"
)

// Construction errors. Init, New, NewBytes and FromArray wrap these with the
// offending values; match them with errors.Is.
var (
	ErrCapacity        = errors.New("ringbuffer: capacity must be greater than 1")
	ErrElementSize     = errors.New("ringbuffer: element size must be greater than 0")
	ErrStorageTooSmall = errors.New("ringbuffer: storage smaller than capacity")
)

// checkGeometry validates a capacity against the element size and the number
// of whole slots the storage region provides.
func checkGeometry(capacity, elementSize, slots int) error {
	if elementSize <= 0 {
		return fmt.Errorf("%w: element size %d", ErrElementSize, elementSize)
	}
	if capacity < 2 {
		return fmt.Errorf("%w: capacity %d", ErrCapacity, capacity)
	}
	if slots < capacity {
		return fmt.Errorf("%w: %d slots available, capacity %d", ErrStorageTooSmall, slots, capacity)
	}
	return nil
}
