// Package ringbuffer implements a fixed-capacity single-producer /
// single-consumer circular buffer over caller-supplied storage.
//
// The buffer never allocates on its operation paths and never frees the
// storage it is given. Two renditions share one cursor implementation:
//
//   - Ring[T] stores typed elements in a []T view.
//   - Bytes stores fixed-size records in a []byte view with an explicit
//     element size.
//
// Capacity semantics: one slot is always left unused so that
// read == write unambiguously means "empty". A buffer of capacity N holds
// at most N-1 elements, so size storage as (wanted slots + 1).
//
// Concurrency contract:
//   - Exactly one goroutine calls the producer operations (Push, TryPush,
//     PushWait, SetWriteIndex) and exactly one calls the consumer
//     operations (Pop, TryPop, PopWait, SetReadIndex).
//   - The read and write cursors live on separate cache lines and are
//     published with release stores and observed with acquire loads, so
//     slot contents are visible before the cursor that covers them.
//   - The booleans returned by Push and Pop are best-effort signals derived
//     from a single load of the opposite cursor. Under concurrent use they
//     may be stale in either direction.
//
// ⚠️ Push never refuses a write. A push into a full buffer lands in the
// sacrificed slot and moves the write cursor onto the read cursor, so the
// unread elements are still in storage but the buffer reads as empty.
// Later pushes then overwrite that unread data one slot at a time. Pop never
// refuses a read either: popping an empty buffer copies stale slot contents
// and still advances the read cursor. Callers that need guarded behavior
// use TryPush and TryPop.
package ringbuffer
