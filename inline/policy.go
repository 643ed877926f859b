package inline

import (
	"sort"
	"strings"

	"github.com/npillmayer/consolemark/style"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Traversal is the structural override a tag applies during flattening.
type Traversal uint8

const (
	// Descend recurses into the children with the merged style.
	Descend Traversal = iota
	// LineBreak contributes a newline; children are ignored and no style
	// slot is consumed.
	LineBreak
	// Image contributes a single space styled with the image's style;
	// children are ignored.
	Image
	// Anchor recurses into the children, then appends an unstyled
	// " " + href if the element has a target.
	Anchor
)

func (t Traversal) String() string {
	switch t {
	case LineBreak:
		return "line-break"
	case Image:
		return "image"
	case Anchor:
		return "anchor"
	}
	return "descend"
}

// StyleProvider computes the default style of a tag, given the element's
// attributes.
type StyleProvider func(attrs []html.Attribute) style.Map

// Policy is the entry of the tag table for one inline element.
type Policy struct {
	Atom      atom.Atom
	Traversal Traversal
	defaults  StyleProvider
}

// Tag returns the tag name of a policy.
func (p Policy) Tag() string {
	return p.Atom.String()
}

// DefaultStyle returns the default style for an element governed by p.
func (p Policy) DefaultStyle(attrs []html.Attribute) style.Map {
	if p.defaults == nil {
		return style.Map{}
	}
	return p.defaults(attrs)
}

// policies is the allow-list of inline elements.
var policies = map[atom.Atom]Policy{
	atom.A:      {atom.A, Anchor, anchorStyle},
	atom.Abbr:   {atom.Abbr, Descend, abbrStyle},
	atom.B:      {atom.B, Descend, boldStyle},
	atom.Bdi:    {atom.Bdi, Descend, nil},
	atom.Bdo:    {atom.Bdo, Descend, nil},
	atom.Br:     {atom.Br, LineBreak, nil},
	atom.Cite:   {atom.Cite, Descend, nil},
	atom.Code:   {atom.Code, Descend, nil},
	atom.Data:   {atom.Data, Descend, nil},
	atom.Del:    {atom.Del, Descend, strikeStyle},
	atom.Dfn:    {atom.Dfn, Descend, nil},
	atom.Em:     {atom.Em, Descend, italicStyle},
	atom.I:      {atom.I, Descend, italicStyle},
	atom.Img:    {atom.Img, Image, imageStyle},
	atom.Ins:    {atom.Ins, Descend, underlineStyle},
	atom.Kbd:    {atom.Kbd, Descend, nil},
	atom.Mark:   {atom.Mark, Descend, markStyle},
	atom.Q:      {atom.Q, Descend, nil},
	atom.Rb:     {atom.Rb, Descend, nil},
	atom.Rp:     {atom.Rp, Descend, nil},
	atom.Rt:     {atom.Rt, Descend, nil},
	atom.Rtc:    {atom.Rtc, Descend, nil},
	atom.Ruby:   {atom.Ruby, Descend, nil},
	atom.S:      {atom.S, Descend, strikeStyle},
	atom.Samp:   {atom.Samp, Descend, nil},
	atom.Small:  {atom.Small, Descend, smallStyle},
	atom.Span:   {atom.Span, Descend, nil},
	atom.Strong: {atom.Strong, Descend, boldStyle},
	atom.Sub:    {atom.Sub, Descend, subStyle},
	atom.Sup:    {atom.Sup, Descend, supStyle},
	atom.Time:   {atom.Time, Descend, nil},
	atom.U:      {atom.U, Descend, underlineStyle},
	atom.Var:    {atom.Var, Descend, nil},
	atom.Wbr:    {atom.Wbr, Descend, nil},
}

// Lookup returns the policy for a tag name. Tag names are case-insensitive.
// For tags outside of the allow-list an *InvalidElementError is returned.
func Lookup(tag string) (Policy, error) {
	a := atom.Lookup([]byte(strings.ToLower(tag)))
	if p, ok := policies[a]; ok && a != 0 {
		return p, nil
	}
	tracer().Debugf("tag %q is not an inline element", tag)
	return Policy{}, &InvalidElementError{Tag: tag}
}

// IsInline is a predicate: is tag a member of the inline allow-list?
func IsInline(tag string) bool {
	_, err := Lookup(tag)
	return err == nil
}

// Tags returns the names of all inline elements, sorted.
func Tags() []string {
	tags := make([]string, 0, len(policies))
	for a := range policies {
		tags = append(tags, a.String())
	}
	sort.Strings(tags)
	return tags
}
