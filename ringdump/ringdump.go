// ════════════════════════════════════════════════════════════════════════════════════════════════
// Ring Diagnostics Dump
// ────────────────────────────────────────────────────────────────────────────────────────────────
// Component: Cold-path reporting
//
// Description:
//   Renders ring Stats and soak reports for humans and machines. JSON goes
//   through sonnet; the one-line form is built by concatenation so it can
//   be handed straight to debug.DropMessage.
//
// ════════════════════════════════════════════════════════════════════════════════════════════════

package ringdump

import (
	"fmt"

	"spscring/ringbuffer"
	"spscring/utils"

	"github.com/sugawarayuuta/sonnet"
)

// Line renders s as "cap=4 elem=4 read=1 write=2 count=1 free=2".
func Line(s ringbuffer.Stats) string {
	return "cap=" + utils.Itoa(s.Capacity) +
		" elem=" + utils.Itoa(s.ElementSize) +
		" read=" + utils.Itoa(s.Read) +
		" write=" + utils.Itoa(s.Write) +
		" count=" + utils.Itoa(s.Count) +
		" free=" + utils.Itoa(s.Free)
}

// Marshal encodes v as compact JSON.
func Marshal(v any) ([]byte, error) {
	b, err := sonnet.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("ringdump: marshal: %w", err)
	}
	return b, nil
}

// DecodeStats parses a Stats document produced by Marshal and checks that
// it describes a reachable ring state.
func DecodeStats(b []byte) (ringbuffer.Stats, error) {
	var s ringbuffer.Stats
	if err := sonnet.Unmarshal(b, &s); err != nil {
		return s, fmt.Errorf("ringdump: decode stats: %w", err)
	}
	if err := Validate(s); err != nil {
		return s, err
	}
	return s, nil
}

// Validate reports whether s satisfies the ring invariants: cursors inside
// [0, capacity), count+free == capacity-1 and count matching the cursors.
func Validate(s ringbuffer.Stats) error {
	switch {
	case s.Capacity < 2:
		return fmt.Errorf("ringdump: capacity %d < 2", s.Capacity)
	case s.ElementSize <= 0:
		return fmt.Errorf("ringdump: element size %d <= 0", s.ElementSize)
	case s.Read < 0 || s.Read >= s.Capacity || s.Write < 0 || s.Write >= s.Capacity:
		return fmt.Errorf("ringdump: cursors (%d,%d) outside [0,%d)", s.Read, s.Write, s.Capacity)
	case s.Count != (s.Write+s.Capacity-s.Read)%s.Capacity:
		return fmt.Errorf("ringdump: count %d disagrees with cursors (%d,%d)", s.Count, s.Read, s.Write)
	case s.Count+s.Free != s.Capacity-1:
		return fmt.Errorf("ringdump: count %d + free %d != capacity-1", s.Count, s.Free)
	}
	return nil
}
