/*
Package console models the output side of a console: named output methods
and targets which receive calls.

Overview

A console call consists of a method (log, info, warn, …) and a list of
arguments. If the first argument is a string it is a format string, where
"%c" consumes the next argument as a CSS declaration string for the text
following it:

	target.Call(console.Log, "%cHello, %cChris", "font-weight:bolder;", "color:red;")

Targets decide what to do with the styles. The plain Writer drops them,
package console/term translates them into ANSI sequences and package
console/zlog records them as structured log fields. A Recorder keeps all
calls for later inspection.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package console

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'consolemark.console'.
func tracer() tracing.Trace {
	return tracing.Select("consolemark.console")
}
