// relax_stub.go
//
// Portable fall-back for targets without a spin-wait hint, for cgo-less
// builds and for builds with the noasm tag.

//go:build !(amd64 || arm64) || !cgo || noasm

package ringbuffer

// cpuRelax is a no-op on unsupported targets.
func cpuRelax() {}
