package ui

import (
	"io"
	"os"
	"strings"
	"testing"
)

// captureFile swaps *target for a pipe while fn runs and returns what was written.
func captureFile(t *testing.T, target **os.File, fn func()) string {
	t.Helper()
	old := *target
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatalf("os.Pipe: %v", err)
	}
	*target = w
	defer func() { *target = old }()

	fn()
	w.Close()

	out, err := io.ReadAll(r)
	if err != nil {
		t.Fatalf("read pipe: %v", err)
	}
	return string(out)
}

func TestWarnWritesToStderr(t *testing.T) {
	var stdout string
	stderr := captureFile(t, &os.Stderr, func() {
		stdout = captureFile(t, &os.Stdout, func() { Warn("display.format reset") })
	})

	if stdout != "" {
		t.Errorf("Warn wrote to stdout: %q", stdout)
	}
	if !strings.Contains(stderr, "display.format reset") {
		t.Errorf("stderr missing warning: %q", stderr)
	}
}
