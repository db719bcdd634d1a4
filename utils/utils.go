package utils

import (
	"io"
	"os"
	"unsafe"
)

///////////////////////////////////////////////////////////////////////////////
// Conversion Utilities - Zero-Alloc Casts
///////////////////////////////////////////////////////////////////////////////

// B2s converts a []byte to a string **without** allocation.
// ⚠️ Caller must ensure the input slice remains valid and unchanged.
// Used for human-readable print paths.
func B2s(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(&b[0], len(b))
}

// Itoa formats n in base 10 using a stack buffer; the only allocation is
// the returned string.
func Itoa(n int) string {
	var buf [20]byte
	i := len(buf)
	u := uint64(n)
	if n < 0 {
		u = uint64(-n)
	}
	for {
		i--
		buf[i] = byte('0' + u%10)
		if u /= 10; u == 0 {
			break
		}
	}
	if n < 0 {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}

///////////////////////////////////////////////////////////////////////////////
// Cold-Path Output
///////////////////////////////////////////////////////////////////////////////

// Output sinks; swapped by tests.
var (
	infoOut    io.Writer = os.Stdout
	warningOut io.Writer = os.Stderr
)

// RedirectOutput points PrintInfo and PrintWarning at info and warning (nil
// keeps the current sink) and returns a func that restores the previous
// sinks.
func RedirectOutput(info, warning io.Writer) (restore func()) {
	prevInfo, prevWarning := infoOut, warningOut
	if info != nil {
		infoOut = info
	}
	if warning != nil {
		warningOut = warning
	}
	return func() { infoOut, warningOut = prevInfo, prevWarning }
}

// PrintInfo writes msg to stdout verbatim. Callers pre-concatenate; there
// is no formatting here.
func PrintInfo(msg string) {
	_, _ = io.WriteString(infoOut, msg)
}

// PrintWarning writes msg to stderr verbatim.
func PrintWarning(msg string) {
	_, _ = io.WriteString(warningOut, msg)
}

///////////////////////////////////////////////////////////////////////////////
// Hashing
///////////////////////////////////////////////////////////////////////////////

// Mix64 applies a Murmur3-style avalanche to a 64-bit value. Used to derive
// deterministic payloads from sequence numbers.
func Mix64(x uint64) uint64 {
	x ^= x >> 33
	x *= 0xff51afd7ed558ccd
	x ^= x >> 33
	x *= 0xc4ceb9fe1a85ec53
	x ^= x >> 33
	return x
}
