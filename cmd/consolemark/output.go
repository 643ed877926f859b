package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/npillmayer/consolemark/console"
	"github.com/npillmayer/consolemark/console/term"
	"github.com/npillmayer/consolemark/console/zlog"
)

// Output formats of the command.
const (
	outputAuto  = "auto"
	outputTerm  = "term"
	outputPlain = "plain"
	outputJSON  = "json"
	outputRaw   = "raw"
)

// newTarget creates the console target for an output format.
func newTarget(output, color string, out, errout io.Writer) (console.Target, error) {
	switch strings.ToLower(output) {
	case outputAuto, "":
		if color == "always" || (color != "never" && isTerminal(out)) {
			return newTarget(outputTerm, color, out, errout)
		}
		return console.NewWriter(out, errout), nil
	case outputTerm, "terminal":
		t := term.New(out)
		switch color {
		case "never":
			t.SetColorProfile(termenv.Ascii)
		case "always":
			if t.Renderer().ColorProfile() == termenv.Ascii {
				t.SetColorProfile(termenv.ANSI256)
			}
		}
		return t, nil
	case outputPlain, "text":
		return console.NewWriter(out, errout), nil
	case outputJSON:
		return zlog.NewJSON(out), nil
	case outputRaw:
		return &rawTarget{out: out}, nil
	}
	return nil, fmt.Errorf("unknown output format: %s", output)
}

// isTerminal is true for a character device which supports colours.
func isTerminal(w io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return false
	}
	return termenv.ColorProfile() != termenv.Ascii
}

// rawTarget prints calls the way they would be written in source code:
//
//	log("%cHello", "font-weight:bolder;")
type rawTarget struct {
	mu  sync.Mutex
	out io.Writer
}

func (t *rawTarget) Call(m console.Method, args ...any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	parts := make([]string, len(args))
	for i, a := range args {
		switch x := a.(type) {
		case string:
			parts[i] = fmt.Sprintf("%q", x)
		case error:
			parts[i] = fmt.Sprintf("Error(%q)", x.Error())
		default:
			parts[i] = fmt.Sprintf("%v", x)
		}
	}
	fmt.Fprintf(t.out, "%s(%s)\n", m, strings.Join(parts, ", "))
}

// failureTracker remembers whether an error value has been reported to
// the wrapped target.
type failureTracker struct {
	console.Target
	failed error
}

func (ft *failureTracker) Call(m console.Method, args ...any) {
	if m == console.Error && len(args) == 1 {
		if err, ok := args[0].(error); ok {
			ft.failed = err
		}
	}
	ft.Target.Call(m, args...)
}
