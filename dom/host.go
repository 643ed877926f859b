package dom

import (
	"github.com/npillmayer/consolemark/inline"
	"github.com/npillmayer/consolemark/style"
	"golang.org/x/net/html"
)

// Host creates host nodes for a reconciler. It validates tags against the
// inline allow-list and resolves element styles with a style resolver.
type Host struct {
	resolver *inline.Resolver
}

// NewHost creates a host for a style resolver. resolver may be nil, in
// which case elements get their default style plus override.
func NewHost(resolver *inline.Resolver) *Host {
	return &Host{resolver: resolver}
}

// CreateInstance creates an element node. Tags outside of the inline
// allow-list fail with an *inline.InvalidElementError.
func (h *Host) CreateInstance(tag string, attrs []html.Attribute, override style.Map) (*Node, error) {
	policy, resolved, err := h.resolver.Resolve(tag, attrs, override)
	if err != nil {
		tracer().Errorf("cannot create instance: %v", err)
		return nil, err
	}
	tracer().Debugf("create <%s> style=%q", policy.Tag(), resolved.String())
	return NewElement(policy, attrs, resolved), nil
}

// CreateTextInstance creates a text node.
func (h *Host) CreateTextInstance(text string) (*Node, error) {
	return NewText(text), nil
}

// AppendInitialChild appends a child during initial construction.
func (h *Host) AppendInitialChild(parent, child *Node) error {
	return parent.AppendChild(child)
}

// FinalizeInitialChildren is called once all children of n have been
// appended. It seals n.
func (h *Host) FinalizeInitialChildren(n *Node) error {
	n.Seal()
	return nil
}
