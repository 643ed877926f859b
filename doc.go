/*
Package consolemark renders inline markup into a single styled console
call.

Overview

A markup description (package markup) is turned into a host tree of
inline elements and text (package dom) by a small reconciliation engine
(package reconciler). Every element gets its resolved style at creation
time: the default style of its tag, then matching rules of user
stylesheets, then the explicit style of the description. Once the tree
is complete, it is flattened (package flatten) into a format string
with one "%c" marker per text run and a list of CSS declaration strings,
one per marker. These are handed to a console target in one call:

	err := consolemark.Render(
		markup.El("strong", markup.Txt("Hello, "), markup.El("em", markup.Txt("Chris"))),
		consolemark.WithMethod(console.Info),
	)

is delivered as

	target.Call(console.Info, "%cHello, %cChris",
		"font-weight:bolder;", "font-weight:bolder;font-style:italic;")

A render is one-shot. Structural errors, e.g. a block-level tag like "div",
do not escape the render call. They are reported through the error
method of the target instead. Compile runs the same pipeline but returns
the message, or the error, to the caller.

Type Console wraps a target and intercepts calls with a single markup
argument, rendering it with the method of the call. All other calls are
passed through unchanged.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package consolemark

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'consolemark.render'.
func tracer() tracing.Trace {
	return tracing.Select("consolemark.render")
}
