/*
Package inline implements the policy for inline elements.

Overview

Only inline elements, i.e. tags restricted to text-flow styling, may be
rendered to a console. This package holds the fixed allow-list of tags,
the default style of every tag and the traversal override used when
flattening an element:

	br    contributes a newline, never a styled run
	img   contributes a single styled space
	a     appends its target after its content
	…     all other tags descend into their children

The policy is a lookup table keyed by HTML atoms. Adding a tag is an edit
of the table in policy.go.

Anchors are styled blue by default, and images are supported.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package inline

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'consolemark.inline'.
func tracer() tracing.Trace {
	return tracing.Select("consolemark.inline")
}
