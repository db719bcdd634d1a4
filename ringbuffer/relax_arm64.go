// relax_arm64.go
//
// cpuRelax on arm64 emits YIELD, the spin-wait hint for ARM cores.

//go:build arm64 && cgo && !noasm

package ringbuffer

/*
static inline void cpu_yield(void) {
    __asm__ __volatile__("yield" ::: "memory");
}
*/
import "C"

// cpuRelax executes the ARM64 YIELD instruction.
func cpuRelax() {
	C.cpu_yield()
}
