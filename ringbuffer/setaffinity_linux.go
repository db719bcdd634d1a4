// setaffinity_linux.go
//
// Linux binding for sched_setaffinity(2) that pins the calling OS thread to
// one logical CPU. Errors are swallowed: under cgroup or container limits
// the call may fail with EPERM/EINVAL and the fall-back is simply "no pin".

//go:build linux && !tinygo

package ringbuffer

import "golang.org/x/sys/unix"

// setAffinity pins the current thread to core. Out-of-range indices are
// ignored.
func setAffinity(core int) {
	if core < 0 {
		return
	}
	var set unix.CPUSet
	set.Set(core) // no-op past the mask width
	if set.Count() == 0 {
		return
	}
	_ = unix.SchedSetaffinity(0, &set)
}
