package console

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/npillmayer/consolemark/maybe"
)

// --- Recorder --------------------------------------------------------------

// Invocation is a recorded console call.
type Invocation struct {
	Method Method
	Args   []any
}

// Format returns the format string of a call, if the first argument is
// a string.
func (inv Invocation) Format() maybe.Maybe[string] {
	if len(inv.Args) == 0 {
		return maybe.Nothing[string]()
	}
	f, ok := inv.Args[0].(string)
	return maybe.FromOK(f, ok)
}

// Styles returns the string arguments following the format string.
func (inv Invocation) Styles() []string {
	if len(inv.Args) < 2 {
		return nil
	}
	styles := make([]string, 0, len(inv.Args)-1)
	for _, a := range inv.Args[1:] {
		if s, ok := a.(string); ok {
			styles = append(styles, s)
		}
	}
	return styles
}

// Recorder is a target which records every call. It is safe for
// concurrent use. The zero value is ready to use.
type Recorder struct {
	mu    sync.Mutex
	calls []Invocation
}

// Call records a call.
func (r *Recorder) Call(m Method, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	a := make([]any, len(args))
	copy(a, args)
	r.calls = append(r.calls, Invocation{Method: m, Args: a})
}

// Calls returns the recorded calls, oldest first.
func (r *Recorder) Calls() []Invocation {
	r.mu.Lock()
	defer r.mu.Unlock()
	calls := make([]Invocation, len(r.calls))
	copy(calls, r.calls)
	return calls
}

// Len returns the number of recorded calls.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

// Last returns the most recent call, if any.
func (r *Recorder) Last() maybe.Maybe[Invocation] {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		return maybe.Nothing[Invocation]()
	}
	return maybe.Just(r.calls[len(r.calls)-1])
}

// Reset forgets all recorded calls.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
}

var _ Target = &Recorder{}

// --- Plain writer ----------------------------------------------------------

// Writer is a target which prints calls as plain text lines, without any
// styling. Warnings and errors go to a separate error stream.
type Writer struct {
	mu  sync.Mutex
	out io.Writer
	err io.Writer
}

// NewWriter creates a plain target printing to out and errout.
// Either may be nil, in which case os.Stdout or os.Stderr is used.
func NewWriter(out, errout io.Writer) *Writer {
	if out == nil {
		out = os.Stdout
	}
	if errout == nil {
		errout = os.Stderr
	}
	return &Writer{out: out, err: errout}
}

// Stdout returns a plain target on the standard streams.
func Stdout() *Writer {
	return NewWriter(os.Stdout, os.Stderr)
}

// Call prints a call as one line of text.
func (w *Writer) Call(m Method, args ...any) {
	w.mu.Lock()
	defer w.mu.Unlock()
	out := w.out
	if m == Warn || m == Error {
		out = w.err
	}
	line := Prefix(m) + Plain(args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	if _, err := io.WriteString(out, line); err != nil {
		tracer().Errorf("cannot write console output: %v", err)
	}
}

var _ Target = &Writer{}

// Prefix is the line prefix plain targets print for a method.
func Prefix(m Method) string {
	switch m {
	case Warn:
		return "warn: "
	case Error:
		return "error: "
	case Trace:
		return "Trace: "
	case Group:
		return "▼ "
	case GroupCollapsed:
		return "▶ "
	case Log, Info, Debug:
		return ""
	}
	return fmt.Sprintf("%s: ", m)
}
