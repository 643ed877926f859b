/*
Package dom implements the host tree of a render pass.

Overview

A render pass builds a small tree of host nodes: element nodes for inline
tags and text nodes for raw strings. Element nodes are created with their
resolved style computed once, at creation time. Children are appended
during construction only; when the pass commits, the tree is sealed.

Tree Implementation

Host nodes are implemented on top of the general purpose tree type of
package tree. In Go we resort to composition, thus including a generic tree
node in every host node. The payload of the generic node always references
the host node itself, and function NodeFromTreeNode provides the adapter
from the generic type to the host node.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'consolemark.dom'
func tracer() tracing.Trace {
	return tracing.Select("consolemark.dom")
}
