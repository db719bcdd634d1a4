// spin.go
//
// Backoff for the blocking ring operations. A waiter relaxes the CPU on
// each miss and hands its P back to the scheduler every spinBudget misses.
// With a single P the other end of the ring cannot run until the waiter
// yields, so there the budget collapses to one miss.

package ringbuffer

import "runtime"

type spinner struct {
	miss   int
	budget int
}

// uniprocessor reports whether the scheduler has a single P.
func uniprocessor() bool {
	return runtime.GOMAXPROCS(0) == 1
}

// wait is called once per failed attempt.
func (s *spinner) wait() {
	if s.budget == 0 {
		s.budget = spinBudget
		if uniprocessor() {
			s.budget = 1
		}
	}
	if s.miss++; s.miss >= s.budget {
		s.miss = 0
		runtime.Gosched()
		return
	}
	cpuRelax()
}
