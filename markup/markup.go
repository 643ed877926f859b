/*
Package markup describes renderable trees of inline elements.

Overview

Clients compose a description of what to render from elements, text,
fragments and components:

	msg := markup.El("strong",
		markup.Txt("Hello, "),
		markup.El("em", markup.Txt("Chris")).WithStyle(style.Of("color", "#21a0a0")),
	)

A description is not validated while it is built. Tags are checked against
the inline allow-list when a reconciler creates host nodes from it.

Descriptions may also be parsed from HTML text, see Parse.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package markup

import (
	"fmt"

	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'consolemark.markup'.
func tracer() tracing.Trace {
	return tracing.Select("consolemark.markup")
}

// Kind tells the different types of markup nodes apart.
type Kind uint8

const (
	ElementKind Kind = iota + 1
	TextKind
	FragmentKind
	ComponentKind
)

// Node is a node of a markup description.
type Node interface {
	Kind() Kind
}

// Component is a node which expands to another description when it is
// rendered. Implementations return ComponentKind from Kind.
type Component interface {
	Node
	Render() Node
}

// --- Elements --------------------------------------------------------------

// Element describes an inline element.
type Element struct {
	Tag      string
	Attrs    []html.Attribute // static attributes, without "style"
	Style    style.Map        // explicit style override
	Children []Node
}

// El creates an element description.
func El(tag string, children ...Node) *Element {
	return &Element{Tag: tag, Children: children}
}

// Kind is ElementKind.
func (e *Element) Kind() Kind {
	return ElementKind
}

// WithAttr sets an attribute and returns e for chaining.
// Setting "style" parses the value as CSS declarations into the style
// override; declarations which cannot be parsed are dropped.
func (e *Element) WithAttr(key, value string) *Element {
	if key == "style" {
		m, err := style.ParseDeclarations(value)
		if err != nil {
			tracer().Errorf("element <%s>: %v", e.Tag, err)
		}
		e.Style = e.Style.Merge(m)
		return e
	}
	for i, a := range e.Attrs {
		if a.Namespace == "" && a.Key == key {
			e.Attrs[i].Val = value
			return e
		}
	}
	e.Attrs = append(e.Attrs, html.Attribute{Key: key, Val: value})
	return e
}

// WithStyle merges a style override into e and returns e for chaining.
func (e *Element) WithStyle(s style.Map) *Element {
	e.Style = e.Style.Merge(s)
	return e
}

func (e *Element) String() string {
	return fmt.Sprintf("<%s> #ch=%d", e.Tag, len(e.Children))
}

// A creates an anchor with a target.
func A(href string, children ...Node) *Element {
	return El("a", children...).WithAttr("href", href)
}

// Img creates an image. width and height are CSS dimensions, e.g. "64px".
func Img(src, width, height string) *Element {
	return El("img").WithAttr("src", src).WithAttr("width", width).WithAttr("height", height)
}

// Br creates a line break.
func Br() *Element {
	return El("br")
}

// --- Text, fragments and components ----------------------------------------

// Text is a raw string leaf.
type Text string

// Txt creates a text node.
func Txt(s string) Text {
	return Text(s)
}

// Textf creates a text node from a format string.
func Textf(format string, args ...any) Text {
	return Text(fmt.Sprintf(format, args...))
}

// Kind is TextKind.
func (t Text) Kind() Kind {
	return TextKind
}

// Fragment groups nodes without a host element of its own.
type Fragment []Node

// Frag creates a fragment.
func Frag(children ...Node) Fragment {
	return Fragment(children)
}

// Kind is FragmentKind.
func (f Fragment) Kind() Kind {
	return FragmentKind
}

// ComponentFunc adapts a function to the Component interface.
type ComponentFunc func() Node

// Kind is ComponentKind.
func (f ComponentFunc) Kind() Kind {
	return ComponentKind
}

// Render calls f.
func (f ComponentFunc) Render() Node {
	return f()
}

var _ Component = ComponentFunc(nil)

// IsRenderable is a predicate: may v be handed to a render call?
// Elements, fragments and components are renderable. Plain text is not:
// a string passed to a console method is logged as it is.
func IsRenderable(v any) bool {
	n, ok := v.(Node)
	if !ok || n == nil {
		return false
	}
	switch x := n.(type) {
	case *Element:
		return x != nil
	case Fragment:
		return true
	case Component:
		return true
	}
	return false
}
