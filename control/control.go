// control.go - process-wide hot/stop flags for pinned ring consumers
//
// Producers mark activity with SignalActivity; a consumer core calls
// PollCooldown from its idle path to retire the hot flag once the producer
// has been quiet for constants.CooldownNs. Shutdown raises the stop flag
// that producers poll to abort a run.
//
// All flags are accessed atomically; the pointers returned by Flags stay
// valid for the life of the process.

package control

import (
	"sync/atomic"
	"time"

	"spscring/constants"
)

var (
	hot  uint32 // 1 = producer active, consumers stay in hot-spin
	stop uint32 // 1 = abort requested

	lastHot int64 // UnixNano of the last SignalActivity
)

// SignalActivity marks the producer side active.
func SignalActivity() {
	atomic.StoreInt64(&lastHot, time.Now().UnixNano())
	atomic.StoreUint32(&hot, 1)
}

// PollCooldown clears the hot flag once no activity has been signalled for
// constants.CooldownNs. Cheap enough to call on every empty poll.
func PollCooldown() {
	if atomic.LoadUint32(&hot) == 1 &&
		time.Now().UnixNano()-atomic.LoadInt64(&lastHot) > constants.CooldownNs {
		atomic.StoreUint32(&hot, 0)
	}
}

// Shutdown raises the stop flag.
func Shutdown() {
	atomic.StoreUint32(&stop, 1)
}

// Reset lowers both flags.
func Reset() {
	atomic.StoreUint32(&hot, 0)
	atomic.StoreUint32(&stop, 0)
	atomic.StoreInt64(&lastHot, 0)
}

// Flags returns pointers to the stop and hot flags for PinnedConsumer and
// soak.Config.
func Flags() (stopFlag, hotFlag *uint32) {
	return &stop, &hot
}
