package debug

import (
	"bytes"
	"errors"
	"testing"

	"spscring/utils"
)

func captureWarnings(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	t.Cleanup(utils.RedirectOutput(nil, &buf))
	return &buf
}

func TestDropError(t *testing.T) {
	tests := []struct {
		name   string
		prefix string
		err    error
		want   string
	}{
		{"with_error", "JOURNAL", errors.New("disk full"), "JOURNAL: disk full\n"},
		{"nil_error", "TRACE_TAG", nil, "TRACE_TAG\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := captureWarnings(t)
			DropError(tt.prefix, tt.err)
			if got := out.String(); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDropMessage(t *testing.T) {
	out := captureWarnings(t)
	DropMessage("SOAK", "strict run intact")
	if got, want := out.String(), "SOAK: strict run intact\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}
