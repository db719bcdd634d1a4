//go:build linux

package soak

import (
	"runtime"
	"sync"
	"testing"

	"golang.org/x/sys/unix"
)

// TestStrictRunRetiresPinnedThreads pins both ends of a strict run to one
// core and then checks that none of the runtime's threads kept that mask.
func TestStrictRunRetiresPinnedThreads(t *testing.T) {
	var orig unix.CPUSet
	if err := unix.SchedGetaffinity(0, &orig); err != nil {
		t.Skipf("sched_getaffinity: %v", err)
	}
	if orig.Count() < 2 {
		t.Skip("needs at least two usable cores")
	}
	core := -1
	for i := 0; core < 0; i++ {
		if orig.IsSet(i) {
			core = i
		}
	}

	res, err := Run(Config{Mode: ModeStrict, Slots: 8, Items: 1000, ProducerCore: core, ConsumerCore: core})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Intact() {
		t.Fatalf("run not intact: %+v", res)
	}

	// Hold every goroutine on its own thread until all have checked, so the
	// runtime has to hand out every idle thread it owns.
	const workers = 32
	var (
		checked sync.WaitGroup
		release = make(chan struct{})
		counts  = make([]int, workers)
	)
	checked.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			runtime.LockOSThread()
			defer runtime.UnlockOSThread()
			var set unix.CPUSet
			if err := unix.SchedGetaffinity(0, &set); err == nil {
				counts[w] = set.Count()
			}
			checked.Done()
			<-release
		}(w)
	}
	checked.Wait()
	close(release)

	for w, n := range counts {
		if n != orig.Count() {
			t.Fatalf("worker %d runs on a thread pinned to %d cores, want %d", w, n, orig.Count())
		}
	}
}
