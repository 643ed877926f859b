package markup

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/consolemark/style/cssom"
	"github.com/npillmayer/consolemark/style/cssom/douceuradapter"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses a fragment of HTML into a markup description:
//
//     markup.Parse(`<strong><em style="color:#21a0a0">Chris</em></strong>`)
//
// The fragment is parsed in the context of a <body> element. A single
// top-level node is returned as is, several are wrapped into a Fragment.
// Comments are dropped. Tags are not checked against the inline allow-list.
func Parse(src string) (Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(src), context)
	if err != nil {
		return nil, fmt.Errorf("markup: cannot parse %q: %w", src, err)
	}
	return forest(nodes), nil
}

// MustParse is like Parse but panics on error.
func MustParse(src string) Node {
	n, err := Parse(src)
	if err != nil {
		panic(err)
	}
	return n
}

// ParseDocument parses a complete HTML document. The content of <body>
// is returned as markup description, together with the stylesheets found
// in <style> elements of the document.
func ParseDocument(r io.Reader) (Node, []cssom.StyleSheet, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, nil, fmt.Errorf("markup: cannot parse document: %w", err)
	}
	var sheets []cssom.StyleSheet
	for _, s := range douceuradapter.ExtractStyleElements(doc) {
		sheets = append(sheets, s)
	}
	body := findBody(doc)
	if body == nil {
		return Fragment{}, sheets, nil
	}
	var nodes []*html.Node
	for ch := body.FirstChild; ch != nil; ch = ch.NextSibling {
		nodes = append(nodes, ch)
	}
	return forest(nodes), sheets, nil
}

func forest(nodes []*html.Node) Node {
	var children []Node
	for _, h := range nodes {
		if n := convert(h); n != nil {
			children = append(children, n)
		}
	}
	if len(children) == 1 {
		return children[0]
	}
	return Fragment(children)
}

func convert(h *html.Node) Node {
	switch h.Type {
	case html.TextNode:
		return Text(h.Data)
	case html.ElementNode:
		if h.DataAtom == atom.Style || h.DataAtom == atom.Script {
			return nil
		}
		e := El(h.Data)
		for _, a := range h.Attr {
			if a.Namespace != "" {
				e.Attrs = append(e.Attrs, a)
				continue
			}
			e.WithAttr(a.Key, a.Val)
		}
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			if n := convert(ch); n != nil {
				e.Children = append(e.Children, n)
			}
		}
		return e
	}
	tracer().Debugf("markup: dropping HTML node of type %d", h.Type)
	return nil
}

func findBody(h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.Type == html.ElementNode && h.DataAtom == atom.Body {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if b := findBody(ch); b != nil {
			return b
		}
	}
	return nil
}
