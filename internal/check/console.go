package check

import (
	"bytes"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"
)

// Emitter receives report events as they happen. Implementations must
// not reorder: output order is evaluation order.
type Emitter interface {
	Section(id int, name string)
	BeginControl(Control)
	Result(Result)
	EndControl(Tally)
}

// NopEmitter discards all events. Used when the console report is
// replaced by a structured output format.
type NopEmitter struct{}

func (NopEmitter) Section(int, string) {}

func (NopEmitter) BeginControl(Control) {}

func (NopEmitter) Result(Result) {}

func (NopEmitter) EndControl(Tally) {}

var (
	passTag    = color.New(color.FgGreen).SprintFunc()
	failTag    = color.New(color.FgRed).SprintFunc()
	unknownTag = color.New(color.FgYellow).SprintFunc()
)

// ConsoleEmitter renders the line-oriented operator report: a section
// banner, a control banner, one tagged line per target with indented
// details, and the trailing tally block.
type ConsoleEmitter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleEmitter builds an emitter writing to w.
func NewConsoleEmitter(w io.Writer) *ConsoleEmitter {
	return &ConsoleEmitter{w: w}
}

func (e *ConsoleEmitter) Section(id int, name string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintf(e.w, "\n=== Section %d: %s ===\n", id, name)
}

func (e *ConsoleEmitter) BeginControl(c Control) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintf(e.w, "\n%s %s (%s)\n", c.ID, c.Title, c.Severity)
}

func (e *ConsoleEmitter) Result(r Result) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintf(e.w, "- %s: %s\n", r.Target, tagFor(r.Status))
	for _, d := range r.Details {
		fmt.Fprintf(e.w, "    %s\n", d)
	}
}

func (e *ConsoleEmitter) EndControl(t Tally) {
	e.mu.Lock()
	defer e.mu.Unlock()
	fmt.Fprintf(e.w, "Passed: %d\nFailed: %d\nUnknown: %d\n", t.Passed, t.Failed, t.Unknown)
}

func tagFor(s Status) string {
	switch s {
	case StatusPass:
		return passTag(string(StatusPass))
	case StatusFail:
		return failTag(string(StatusFail))
	default:
		return unknownTag(string(StatusUnknown))
	}
}

// BlockEmitter buffers one control's output so parallel evaluations can
// each render an atomic block, flushed in declaration order.
type BlockEmitter struct {
	buf   bytes.Buffer
	inner *ConsoleEmitter
}

// NewBlockEmitter builds an emitter whose output accumulates until
// FlushTo is called.
func NewBlockEmitter() *BlockEmitter {
	b := &BlockEmitter{}
	b.inner = NewConsoleEmitter(&b.buf)
	return b
}

func (b *BlockEmitter) Section(id int, name string) { b.inner.Section(id, name) }

func (b *BlockEmitter) BeginControl(c Control) { b.inner.BeginControl(c) }

func (b *BlockEmitter) Result(r Result) { b.inner.Result(r) }

func (b *BlockEmitter) EndControl(t Tally) { b.inner.EndControl(t) }

// FlushTo writes the buffered block to w.
func (b *BlockEmitter) FlushTo(w io.Writer) error {
	_, err := w.Write(b.buf.Bytes())
	return err
}
