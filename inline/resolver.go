package inline

import (
	"fmt"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/consolemark/style/cssom"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Resolver computes the resolved style of an element: the tag's default
// style, overridden by matching stylesheet rules (in source order),
// overridden by the element's explicit style. Declarations marked as
// important in a stylesheet win over the explicit style.
//
// A nil *Resolver is valid and uses no stylesheets.
type Resolver struct {
	rules []compiledRule
}

type compiledRule struct {
	selector  cascadia.Selector
	decls     style.Map
	important style.Map
}

// NewResolver creates a resolver for a set of user stylesheets.
// Nil stylesheets are ignored. An error is returned if a selector of any
// rule cannot be compiled.
func NewResolver(sheets ...cssom.StyleSheet) (*Resolver, error) {
	r := &Resolver{}
	for _, sheet := range sheets {
		if sheet == nil || sheet.Empty() {
			continue
		}
		for _, rule := range sheet.Rules() {
			sel, err := cascadia.Compile(rule.Selector())
			if err != nil {
				return nil, fmt.Errorf("inline: invalid selector %q: %w", rule.Selector(), err)
			}
			cr := compiledRule{selector: sel}
			for _, key := range rule.Properties() {
				if rule.IsImportant(key) {
					cr.important.Set(key, rule.Value(key))
				} else {
					cr.decls.Set(key, rule.Value(key))
				}
			}
			r.rules = append(r.rules, cr)
		}
	}
	tracer().Debugf("style resolver with %d rules", len(r.rules))
	return r, nil
}

// Resolve returns the policy for tag and the resolved style of an element.
// Tags outside the allow-list fail with an *InvalidElementError.
func (r *Resolver) Resolve(tag string, attrs []html.Attribute, override style.Map) (Policy, style.Map, error) {
	p, err := Lookup(tag)
	if err != nil {
		return p, style.Map{}, err
	}
	resolved := p.DefaultStyle(attrs)
	if r != nil && len(r.rules) > 0 {
		node := elementNode(p.Atom, attrs)
		var important style.Map
		for _, rule := range r.rules {
			if !rule.selector.Match(node) {
				continue
			}
			resolved = resolved.Merge(rule.decls)
			important = important.Merge(rule.important)
		}
		resolved = resolved.Merge(override).Merge(important)
		return p, resolved, nil
	}
	return p, resolved.Merge(override), nil
}

// elementNode creates a detached HTML node for selector matching.
func elementNode(a atom.Atom, attrs []html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}
