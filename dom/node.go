package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/consolemark/inline"
	"github.com/npillmayer/consolemark/maybe"
	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/consolemark/tree"
	"golang.org/x/net/html"
)

// TextNodeName is the node name of text nodes, as in the W3C DOM.
const TextNodeName = "#text"

// Node is a host node, the building block of the host tree.
// It is either an element node or a text node.
type Node struct {
	tree.Node[*Node] // we build on top of general purpose tree
	policy           inline.Policy
	attrs            []html.Attribute
	resolved         style.Map
	text             string
	isText           bool
}

func newNode() *Node {
	n := &Node{}
	n.Payload = n // Payload will always reference the node itself
	return n
}

// NewText creates a text node.
func NewText(text string) *Node {
	n := newNode()
	n.isText = true
	n.text = text
	return n
}

// NewElement creates an element node with a given policy, attributes and
// resolved style. Most clients will call Host.CreateInstance instead, which
// validates the tag and resolves the style.
func NewElement(policy inline.Policy, attrs []html.Attribute, resolved style.Map) *Node {
	n := newNode()
	n.policy = policy
	n.attrs = attrs
	n.resolved = resolved
	return n
}

// NodeFromTreeNode gets the host node from a generic tree node.
func NodeFromTreeNode(n *tree.Node[*Node]) (*Node, error) {
	if n == nil {
		return nil, errors.New("dom: tree node is nil")
	}
	if n.Payload == nil {
		return nil, errors.New("dom: tree node has no host node payload")
	}
	return n.Payload, nil
}

// TreeNode returns the generic tree node of a host node.
func (n *Node) TreeNode() *tree.Node[*Node] {
	return &n.Node
}

func (n *Node) String() string {
	if n.isText {
		return fmt.Sprintf("%s %q", TextNodeName, n.text)
	}
	return fmt.Sprintf("<%s> #ch=%d", n.Tag(), n.ChildCount())
}

// NodeName is "#text" for text nodes and the tag name for elements.
func (n *Node) NodeName() string {
	if n.isText {
		return TextNodeName
	}
	return n.Tag()
}

// IsText is a predicate: is n a text node?
func (n *Node) IsText() bool {
	return n.isText
}

// Text returns the raw string of a text node; elements return "".
func (n *Node) Text() string {
	return n.text
}

// Tag returns the tag name of an element; text nodes return "".
func (n *Node) Tag() string {
	if n.isText {
		return ""
	}
	return n.policy.Tag()
}

// Traversal returns the flattening override of an element's tag.
func (n *Node) Traversal() inline.Traversal {
	return n.policy.Traversal
}

// Attrs returns the attributes of an element. The slice must not be
// modified.
func (n *Node) Attrs() []html.Attribute {
	return n.attrs
}

// Attr looks up an attribute of an element.
func (n *Node) Attr(key string) maybe.Maybe[string] {
	return inline.Attr(n.attrs, key)
}

// Style returns the resolved style of an element. Text nodes do not have
// a style of their own and return an empty map.
func (n *Node) Style() style.Map {
	return n.resolved
}

// AppendChild appends a host node as the last child of n.
// Text nodes cannot have children.
func (n *Node) AppendChild(ch *Node) error {
	if ch == nil {
		return nil
	}
	if n.isText {
		return fmt.Errorf("dom: cannot append %v to text node", ch)
	}
	n.AddChild(&ch.Node)
	return nil
}

// ChildNodes returns the host children of n, in insertion order.
func (n *Node) ChildNodes() []*Node {
	children := n.Children()
	nodes := make([]*Node, 0, len(children))
	for _, ch := range children {
		if ch != nil && ch.Payload != nil {
			nodes = append(nodes, ch.Payload)
		}
	}
	return nodes
}
