package dom

import (
	"github.com/npillmayer/consolemark/tree"
)

// NodeIsText is a predicate to match text-nodes of a host tree.
// It is intended to be used with tree.Collect.
var NodeIsText = func(n *tree.Node[*Node]) (bool, error) {
	domnode, err := NodeFromTreeNode(n)
	if err != nil {
		return false, err
	}
	return domnode.NodeName() == TextNodeName, nil
}

// NodeIsElement returns a predicate to match elements with a given tag.
func NodeIsElement(tag string) tree.Predicate[*Node] {
	return func(n *tree.Node[*Node]) (bool, error) {
		domnode, err := NodeFromTreeNode(n)
		if err != nil {
			return false, err
		}
		return !domnode.IsText() && domnode.Tag() == tag, nil
	}
}

// TextContent concatenates the text of all text nodes below and including n,
// in document order.
func TextContent(n *Node) (string, error) {
	texts, err := tree.Collect(n.TreeNode(), NodeIsText)
	if err != nil {
		return "", err
	}
	s := ""
	for _, t := range texts {
		s += t.Payload.Text()
	}
	return s, nil
}
