/*
Package style holds style mappings for inline elements and converts them
to CSS declaration strings.

Overview

A style mapping (type Map) is an ordered collection of CSS properties.
Property names are kept in camel-case form ("fontWeight"), the way they
are written in element descriptions. CSS text ("font-weight: bold") is
converted on the way in, so both spellings address the same property.
Serialize converts a mapping back into a single CSS declaration string
with hyphenated property names, e.g. "font-weight:bolder;color:blue;".

Style mappings are merged, never shared: Merge returns a new mapping where
properties of the second operand win on collision. This replaces any
notion of a prototype chain of styles.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'consolemark.style'
func tracer() tracing.Trace {
	return tracing.Select("consolemark.style")
}
