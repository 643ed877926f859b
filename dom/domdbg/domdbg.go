/*
Package domdbg implements helpers to debug a host tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/consolemark/dom"
	tp "github.com/xlab/treeprint"
)

// Print returns a textual diagram of a forest of host nodes, such as the
// committed children of a render pass. Elements are printed with their
// attributes as meta information and their resolved style; text nodes are
// printed quoted.
//
//    .
//    └── [style="font-weight:bolder;"] <strong>
//        └── [style="font-style:italic;color:#21a0a0;"] <em>
//            └── "Chris"
//
func Print(nodes []*dom.Node) string {
	root := tp.New()
	for _, n := range nodes {
		addNode(root, n)
	}
	return root.String()
}

func addNode(branch tp.Tree, n *dom.Node) {
	if n == nil {
		return
	}
	if n.IsText() {
		branch.AddNode(fmt.Sprintf("%q", shortText(n.Text())))
		return
	}
	meta := fmt.Sprintf("style=%q", n.Style().String())
	var attrs []string
	for _, a := range n.Attrs() {
		attrs = append(attrs, fmt.Sprintf("%s=%q", a.Key, a.Val))
	}
	label := "<" + n.Tag() + ">"
	if len(attrs) > 0 {
		label = "<" + n.Tag() + " " + strings.Join(attrs, " ") + ">"
	}
	children := n.ChildNodes()
	if len(children) == 0 {
		branch.AddMetaNode(meta, label)
		return
	}
	sub := branch.AddMetaBranch(meta, label)
	for _, ch := range children {
		addNode(sub, ch)
	}
}

// Dump is a helper for testing. It logs the diagram of a host forest
// to the test log.
func Dump(nodes []*dom.Node, t *testing.T) {
	t.Logf("host tree =\n%s", Print(nodes))
}

func shortText(s string) string {
	const maxlen = 24
	r := []rune(s)
	if len(r) > maxlen {
		return string(r[:maxlen-1]) + "…"
	}
	return s
}
