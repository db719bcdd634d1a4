// ─────────────────────────────────────────────────────────────────────────────
// [Filename]: debug.go - cold-path diagnostics
//
// Purpose:
//   - Reports setup failures, soak outcomes and journal errors.
//   - Pre-concatenates strings; no fmt, no interfaces on the print path.
//
// ⚠️ Never invoke from a producer or consumer hot loop.
// ─────────────────────────────────────────────────────────────────────────────

package debug

import "spscring/utils"

// DropError logs "<prefix>: <err>" to stderr, or just "<prefix>" when err is
// nil (used as a cheap trace tag).
func DropError(prefix string, err error) {
	if err != nil {
		utils.PrintWarning(prefix + ": " + err.Error() + "\n")
		return
	}
	utils.PrintWarning(prefix + "\n")
}

// DropMessage logs "<prefix>: <message>" to stderr.
func DropMessage(prefix, message string) {
	utils.PrintWarning(prefix + ": " + message + "\n")
}
