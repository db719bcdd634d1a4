// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: constants.go - soak harness tunables
//
// Purpose:
//   - Ring geometry, run lengths, core placement and journal location for
//     the spscring binary.
//
// ⚠️ No runtime logic here - all values must be compile-time resolvable
// ─────────────────────────────────────────────────────────────────────────────

package constants

// ───────────────────────────── Ring Geometry ──────────────────────────────

const (
	// RingSlots is the capacity of the soak ring, sacrificed slot included:
	// 1023 usable slots of 32-byte records ≈ 32 KiB, L1/L2 resident.
	RingSlots = 1024
)

// ───────────────────────────── Soak Lengths ───────────────────────────────

const (
	// StrictItems is the record count for the guarded, concurrent run.
	StrictItems = 1 << 22

	// OverwriteItems is the record count for the unguarded burst run.
	OverwriteItems = 1 << 16

	// OverwriteBurst is how many records the overwrite run pushes before
	// each drain. Larger than RingSlots-1 so every burst laps the reader.
	OverwriteBurst = RingSlots + RingSlots/2
)

// ─────────────────────────── Core Placement ───────────────────────────────

const (
	ProducerCore = 0
	ConsumerCore = 1
)

// ───────────────────────────── Coordination ───────────────────────────────

const (
	// CooldownNs is how long the hot flag survives without producer
	// activity before PollCooldown clears it.
	CooldownNs = 1_000_000_000

	// ActivityEvery is how many records the producer pushes between
	// activity signals.
	ActivityEvery = 1 << 12
)

// ───────────────────────────── Persistence ────────────────────────────────

const (
	// JournalPath is the sqlite database the binary appends runs to.
	JournalPath = "spscring_runs.db"
)
