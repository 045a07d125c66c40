package ui

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/mattn/go-isatty"
)

// IsStdoutTTY returns true when stdout is connected to a terminal.
func IsStdoutTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// IsStdinTTY returns true when stdin is connected to a terminal.
func IsStdinTTY() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// MarkdownWriter buffers markdown and renders it with glamour on Flush when
// the destination is a terminal. Otherwise writes pass straight through.
type MarkdownWriter struct {
	out   io.Writer
	buf   bytes.Buffer
	isTTY bool
}

// NewMarkdownWriter creates a MarkdownWriter targeting out.
func NewMarkdownWriter(out io.Writer) *MarkdownWriter {
	tty := false
	if f, ok := out.(*os.File); ok {
		tty = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return &MarkdownWriter{out: out, isTTY: tty}
}

func (m *MarkdownWriter) Write(p []byte) (int, error) {
	if !m.isTTY {
		return m.out.Write(p)
	}
	return m.buf.Write(p)
}

// Flush renders buffered markdown to the underlying writer. If rendering
// fails the raw markdown is written instead.
func (m *MarkdownWriter) Flush() error {
	if !m.isTTY || m.buf.Len() == 0 {
		return nil
	}
	defer m.buf.Reset()

	rendered, err := renderMarkdown(m.buf.String())
	if err != nil {
		fmt.Fprintln(os.Stderr, Muted.Render("  (markdown rendering unavailable, showing raw output)"))
		_, werr := m.out.Write(m.buf.Bytes())
		return werr
	}
	_, err = io.WriteString(m.out, rendered)
	return err
}

func renderMarkdown(md string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", err
	}
	return r.Render(md)
}
