package tree

// Predicate is a function type to match against nodes of a tree.
// It is used as an argument for Collect to gather a selection of nodes.
type Predicate[T comparable] func(test *Node[T]) (match bool, err error)

// Whatever is a predicate to match anything.
func Whatever[T comparable]() Predicate[T] {
	return func(*Node[T]) (bool, error) {
		return true, nil
	}
}

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T comparable]() Predicate[T] {
	return func(test *Node[T]) (bool, error) {
		return test.ChildCount() == 0, nil
	}
}

// Walk visits node and all of its descendents depth-first, left to right,
// calling visit before descending into the children of a node (pre-order).
// If visit returns false, the children of that node are skipped.
// The first error returned by visit stops the walk.
func Walk[T comparable](node *Node[T], visit func(*Node[T]) (bool, error)) error {
	if node == nil {
		return nil
	}
	descend, err := visit(node)
	if err != nil || !descend {
		return err
	}
	for _, ch := range node.Children() {
		if err = Walk(ch, visit); err != nil {
			return err
		}
	}
	return nil
}

// Collect returns all nodes below and including node which match a predicate,
// in document order.
func Collect[T comparable](node *Node[T], predicate Predicate[T]) ([]*Node[T], error) {
	var selection []*Node[T]
	err := Walk(node, func(n *Node[T]) (bool, error) {
		match, err := predicate(n)
		if err != nil {
			return false, err
		}
		if match {
			selection = append(selection, n)
		}
		return true, nil
	})
	return selection, err
}
