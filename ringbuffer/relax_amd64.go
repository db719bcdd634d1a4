// relax_amd64.go
//
// cpuRelax on amd64 emits PAUSE so busy-wait loops back off politely on
// SMT cores while staying in userspace.

//go:build amd64 && cgo && !noasm

package ringbuffer

/*
static inline void cpu_pause(void) {
    __asm__ __volatile__("pause" ::: "memory");
}
*/
import "C"

// cpuRelax executes the x86-64 PAUSE instruction.
func cpuRelax() {
	C.cpu_pause()
}
