// pinned_consumer.go
//
// Low-latency SPSC consumer.
//
//   - Dedicated OS thread pinned to `core`.
//   - Stays in hot-spin (tight loop, no cpuRelax) while new work arrived
//     within hotWindow or the producer keeps *hot != 0.
//   - Past the grace window and once *hot == 0 it drops to cold-spin:
//     cpuRelax every miss and a scheduler yield every spinBudget misses.
//   - With GOMAXPROCS == 1 every miss yields, hot or cold; the producer
//     shares the only P.
//   - Exits when *stop != 0, after one final drain, and closes done. The
//     goroutine exits still locked, so the runtime retires the pinned
//     thread instead of reusing it.
//
// hot flag contract:
//
//	Producer             Consumer
//	--------             ------------------------------
//	Store 1  ─────────▶  read (wake / stay hot-spin)
//	...push items…
//	(optionally) Store 0  ◀─ consumer never writes
//
// The consumer only ever uses TryPop, so it never moves the read cursor
// past the write cursor.

package ringbuffer

import (
	"runtime"
	"sync/atomic"
	"time"
)

const (
	spinBudget = 224             // cold misses before yielding the thread
	hotWindow  = 5 * time.Second // hot-spin grace after the last hit
)

// PinnedConsumer drains r on a dedicated goroutine until *stop is set.
// handler receives a pointer to a consumer-local copy that is reused for
// the next element; copy it if it must outlive the call.
func PinnedConsumer[T any](
	core int,
	r *Ring[T],
	stop, hot *uint32,
	handler func(*T),
	done chan<- struct{},
) {
	PinnedConsumerWithIdle(core, r, stop, hot, handler, nil, done)
}

// PinnedConsumerWithIdle is PinnedConsumer with an idle hook invoked on
// every empty poll, typically control.PollCooldown so the consumer core
// also retires the global hot flag.
func PinnedConsumerWithIdle[T any](
	core int,
	r *Ring[T],
	stop, hot *uint32,
	handler func(*T),
	idle func(),
	done chan<- struct{},
) {
	go func() {
		runtime.LockOSThread() // never unlocked; see header
		setAffinity(core)      // stub on non-Linux
		defer close(done)

		var (
			v    T
			spin spinner
		)
		single := uniprocessor()
		last := time.Now()

		for {
			if r.TryPop(&v) {
				handler(&v)
				last, spin.miss = time.Now(), 0
				continue
			}

			if atomic.LoadUint32(stop) != 0 {
				// Pushes that raced the stop store are visible now.
				for r.TryPop(&v) {
					handler(&v)
				}
				return
			}

			if idle != nil {
				idle()
			}

			if atomic.LoadUint32(hot) != 0 || time.Since(last) <= hotWindow {
				if single {
					runtime.Gosched()
				}
				continue
			}

			spin.wait()
		}
	}()
}

// LockToCore locks the calling goroutine to its OS thread and pins that
// thread to core. There is no unlock. Call it from a goroutine that ends
// while locked; the runtime then terminates the pinned thread instead of
// reusing it.
func LockToCore(core int) {
	runtime.LockOSThread()
	setAffinity(core)
}
