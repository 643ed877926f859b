package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // mutex-protected slice of children nodes
	Payload  T                // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a new child node to the list of children.
// The newly inserted node is connected to this node as its parent.
// It returns the parent node to allow for chaining.
//
// Adding a child to a sealed node is a programming error and will panic.
// This operation is concurrency-safe.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		if err := node.children.addChild(ch, node); err != nil {
			tracer().Errorf(err.Error())
			panic(err)
		}
	}
	return node
}

// Seal freezes the children of this node. Sealing is not recursive;
// see SealAll.
func (node *Node[T]) Seal() {
	node.children.seal()
}

// SealAll seals this node and every descendent.
func (node *Node[T]) SealAll() {
	node.Seal()
	for _, ch := range node.Children() {
		ch.SealAll()
	}
}

// IsSealed is a predicate: has node been sealed?
func (node *Node[T]) IsSealed() bool {
	return node.children.isSealed()
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a slice with all children of a node, in insertion order.
// The slice is a copy; modifying it does not alter the tree.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of its parent. ch may not be nil.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.Children() {
		if ch == child {
			return i
		}
	}
	return -1
}

// --- Slices of concurrency-safe sets of children ----------------------

// ErrSealed is raised if a child is added to a node which has already
// been committed.
var ErrSealed = fmt.Errorf("tree: node is sealed, cannot add children")

type childrenSlice[T comparable] struct {
	sync.RWMutex
	slice  []*Node[T]
	sealed bool
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

func (chs *childrenSlice[T]) addChild(child *Node[T], parent *Node[T]) error {
	chs.Lock()
	defer chs.Unlock()
	if chs.sealed {
		return ErrSealed
	}
	chs.slice = append(chs.slice, child)
	child.parent = parent
	return nil
}

func (chs *childrenSlice[T]) seal() {
	chs.Lock()
	defer chs.Unlock()
	chs.sealed = true
}

func (chs *childrenSlice[T]) isSealed() bool {
	chs.RLock()
	defer chs.RUnlock()
	return chs.sealed
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
