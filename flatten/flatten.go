/*
Package flatten compiles a committed host tree into a console message.

Overview

A console message is a format string with one "%c" marker per text run,
plus a parallel list of CSS declaration strings, one per marker, in the
order the markers appear:

	Format: "%cHello, %cChris"
	Styles: ["font-weight:bolder;", "font-weight:bolder;font-style:italic;"]

Flatten walks the host tree depth-first, left to right, threading the style
inherited from the ancestors downward. Every element merges its own
resolved style over the inherited one (its own properties win) before its
children are visited. Text leaves consume the inherited style at their
position. Line breaks, images and anchors are handled according to their
inline.Traversal.

Text is copied verbatim. A text run which itself contains "%c" will
produce more markers than styles.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flatten

import (
	"strings"

	"github.com/npillmayer/consolemark/dom"
	"github.com/npillmayer/consolemark/inline"
	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'consolemark.flatten'.
func tracer() tracing.Trace {
	return tracing.Select("consolemark.flatten")
}

// Marker is the substitution token consumed by one style argument.
const Marker = "%c"

// Message is the result of a flatten pass.
type Message struct {
	Format string   // format string with one Marker per styled run
	Styles []string // CSS declarations, one per Marker, in order
}

// Args returns the arguments of a console call: the format string
// followed by all styles.
func (m Message) Args() []any {
	args := make([]any, 0, len(m.Styles)+1)
	args = append(args, m.Format)
	for _, s := range m.Styles {
		args = append(args, s)
	}
	return args
}

// Markers counts the markers in the format string.
func (m Message) Markers() int {
	return strings.Count(m.Format, Marker)
}

// Accumulator collects the format string and the styles of one flatten
// pass. The zero value is ready to use.
type Accumulator struct {
	format strings.Builder
	styles []string
}

// Run appends a styled text run.
func (acc *Accumulator) Run(text string, s style.Map) {
	acc.styles = append(acc.styles, style.Serialize(s))
	acc.format.WriteString(Marker)
	acc.format.WriteString(text)
}

// Literal appends text outside of any styled run. No style slot is
// consumed; the text continues the preceding run.
func (acc *Accumulator) Literal(text string) {
	acc.format.WriteString(text)
}

// Message returns the accumulated message.
func (acc *Accumulator) Message() Message {
	styles := make([]string, len(acc.styles))
	copy(styles, acc.styles)
	return Message{Format: acc.format.String(), Styles: styles}
}

// Flatten compiles a sequence of host nodes into a message, starting with
// an inherited style (usually empty).
func Flatten(children []*dom.Node, inherited style.Map) Message {
	acc := &Accumulator{}
	acc.Flatten(children, inherited)
	msg := acc.Message()
	tracer().Debugf("flattened %d nodes into %d runs", len(children), len(msg.Styles))
	return msg
}

// Flatten appends a sequence of host nodes to the accumulator.
func (acc *Accumulator) Flatten(children []*dom.Node, inherited style.Map) {
	for _, ch := range children {
		acc.node(ch, inherited)
	}
}

func (acc *Accumulator) node(n *dom.Node, inherited style.Map) {
	if n == nil {
		return
	}
	if n.IsText() {
		acc.Run(n.Text(), inherited)
		return
	}
	switch n.Traversal() {
	case inline.LineBreak:
		acc.Literal("\n")
	case inline.Image:
		acc.Run(" ", inherited.Merge(n.Style()))
	case inline.Anchor:
		acc.Flatten(n.ChildNodes(), inherited.Merge(n.Style()))
		var href string
		switch m := n.Attr("href").Match(); m {
		case m.Just(&href):
			acc.Literal(" " + href)
		case m.Nothing():
		}
	default:
		acc.Flatten(n.ChildNodes(), inherited.Merge(n.Style()))
	}
}

// Slots counts the style slots a sequence of host nodes will consume:
// one per text leaf and one per image. Line breaks, image children and
// anchor targets consume none.
func Slots(children []*dom.Node) int {
	count := 0
	for _, n := range children {
		switch {
		case n == nil:
		case n.IsText():
			count++
		case n.Traversal() == inline.LineBreak:
		case n.Traversal() == inline.Image:
			count++
		default:
			count += Slots(n.ChildNodes())
		}
	}
	return count
}
