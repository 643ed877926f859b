package console

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"
)

// Method is a console output method.
type Method uint8

// Output methods of a console. The zero value is not a valid method.
const (
	NoMethod Method = iota
	Log
	Info
	Debug
	Warn
	Error
	Group
	GroupCollapsed
	Trace
)

var methodNames = [...]string{
	NoMethod:       "<none>",
	Log:            "log",
	Info:           "info",
	Debug:          "debug",
	Warn:           "warn",
	Error:          "error",
	Group:          "group",
	GroupCollapsed: "groupCollapsed",
	Trace:          "trace",
}

func (m Method) String() string {
	if int(m) < len(methodNames) {
		return methodNames[m]
	}
	return fmt.Sprintf("Method(%d)", m)
}

// IsValid is a predicate: is m one of the output methods?
func (m Method) IsValid() bool {
	return m >= Log && m <= Trace
}

// ErrUnknownMethod is returned for names and values which do not denote an
// output method.
var ErrUnknownMethod = errors.New("console: unknown output method")

// ParseMethod finds a method by name. Names are matched exactly, as
// methods are identifiers ("groupCollapsed").
func ParseMethod(name string) (Method, error) {
	for _, m := range Methods() {
		if methodNames[m] == name {
			return m, nil
		}
	}
	return NoMethod, fmt.Errorf("%w: %q", ErrUnknownMethod, name)
}

// Methods returns all valid output methods.
func Methods() []Method {
	return []Method{Log, Info, Debug, Warn, Error, Group, GroupCollapsed, Trace}
}

// Set implements pflag.Value, so methods may be used as command line flags.
func (m *Method) Set(name string) error {
	method, err := ParseMethod(name)
	if err != nil {
		return err
	}
	*m = method
	return nil
}

// Type implements pflag.Value.
func (m *Method) Type() string {
	return "method"
}

// --- Targets ---------------------------------------------------------------

// Target receives console calls.
type Target interface {
	Call(m Method, args ...any)
}

// TargetFunc is an adapter to use ordinary functions as targets.
type TargetFunc func(m Method, args ...any)

// Call calls f(m, args...).
func (f TargetFunc) Call(m Method, args ...any) {
	f(m, args...)
}
