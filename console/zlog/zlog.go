/*
Package zlog implements a console target that writes structured log
events with zerolog.

Each console call becomes one event at the level of its method. The
plain text of the call is the event message; format string and styles
are kept as fields, so the styled form can be reconstructed:

	{"level":"info","method":"log","format":"%cHi","styles":["color:red;"],"message":"Hi"}

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package zlog

import (
	"io"

	"github.com/npillmayer/consolemark/console"
	"github.com/rs/zerolog"
)

// Target writes console calls as zerolog events.
type Target struct {
	logger zerolog.Logger
}

// New creates a target for a logger.
func New(logger zerolog.Logger) *Target {
	return &Target{logger: logger}
}

// NewJSON creates a target writing JSON lines with timestamps to w.
func NewJSON(w io.Writer) *Target {
	return New(zerolog.New(w).With().Timestamp().Logger())
}

// Level maps an output method to a log level.
func Level(m console.Method) zerolog.Level {
	switch m {
	case console.Debug:
		return zerolog.DebugLevel
	case console.Warn:
		return zerolog.WarnLevel
	case console.Error:
		return zerolog.ErrorLevel
	case console.Trace:
		return zerolog.TraceLevel
	}
	return zerolog.InfoLevel
}

// Call logs a console call as one event.
func (t *Target) Call(m console.Method, args ...any) {
	ev := t.logger.WithLevel(Level(m)).Str("method", m.String())
	if len(args) == 1 {
		if err, ok := args[0].(error); ok {
			ev.Err(err).Msg(err.Error())
			return
		}
	}
	if len(args) > 0 {
		if format, ok := args[0].(string); ok {
			ev = ev.Str("format", format)
			styles := make([]string, 0, len(args)-1)
			for _, a := range args[1:] {
				if s, ok := a.(string); ok {
					styles = append(styles, s)
				}
			}
			if len(styles) > 0 {
				ev = ev.Strs("styles", styles)
			}
		}
	}
	if m == console.Group || m == console.GroupCollapsed {
		ev = ev.Bool("group", true).Bool("collapsed", m == console.GroupCollapsed)
	}
	ev.Msg(console.Plain(args...))
}

var _ console.Target = &Target{}
