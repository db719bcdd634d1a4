// setaffinity_stub.go - no-op for non-Linux or TinyGo builds.

//go:build !linux || tinygo

package ringbuffer

// setAffinity is a no-op where sched_setaffinity is unavailable.
func setAffinity(core int) {}
