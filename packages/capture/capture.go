// Package capture records text written to an output sink so it can be
// returned as a string, as lines, or as a single-column block.
package capture

import (
	"io"
	"strings"
	"sync"

	"github.com/vogtb/go-block/packages/block"
)

// Capture is an io.Writer that keeps everything written to it and
// optionally passes it through to an underlying writer
type Capture struct {
	mu          sync.Mutex
	buf         strings.Builder
	passthrough io.Writer // nil when output is suppressed
}

// New returns a Capture. when includePrint is true every write is also
// forwarded to out.
func New(out io.Writer, includePrint bool) *Capture {
	c := &Capture{}
	if includePrint {
		c.passthrough = out
	}
	return c
}

// Write records p and forwards it when passthrough is enabled
func (c *Capture) Write(p []byte) (int, error) {
	c.mu.Lock()
	c.buf.Write(p)
	c.mu.Unlock()

	if c.passthrough != nil {
		return c.passthrough.Write(p)
	}
	return len(p), nil
}

// Redirect points *sink at a Capture that forwards to the current *sink
// (unless includePrint is false) and returns the capture together with a
// function restoring the original writer. callers should defer the restore.
//
//	c, restore := capture.Redirect(&out, true)
//	defer restore()
func Redirect(sink *io.Writer, includePrint bool) (*Capture, func()) {
	original := *sink
	c := New(original, includePrint)
	*sink = c
	return c, func() { *sink = original }
}

// String returns everything captured so far
func (c *Capture) String() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.buf.String()
}

// Lines returns the captured text split into lines without terminators
func (c *Capture) Lines() []string {
	text := strings.TrimSuffix(c.String(), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

// Block returns the captured lines as a single-column block, one line per
// row. blank lines become empty cells.
func (c *Capture) Block() *block.Block {
	// FromValue only fails on explicit capacity overrides
	b, _ := block.FromValue(c.Lines(), block.ColumnLike())
	return b
}

// Clear discards everything captured so far
func (c *Capture) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.buf.Reset()
}
