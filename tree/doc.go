/*
Package tree implements a small all-purpose tree type for host trees.

Trees of this package are built once and then committed: children are
appended during construction, after which a node may be sealed. A sealed
node refuses further children. This matches the life cycle of a render
pass, where a tree is constructed bottom-up, handed over in one commit and
then only read.

Nodes carry a payload of a type parameter. Clients usually compose a tree
node into their own node type and let the payload point back to the
enclosing node (see package dom).

Children slices are protected by a mutex, so a committed tree may be
inspected from more than one goroutine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'consolemark.tree'.
func tracer() tracing.Trace {
	return tracing.Select("consolemark.tree")
}
