/*
Package reconciler builds host trees from markup descriptions.

Overview

The reconciler is independent of any concrete host node type. Clients
supply a HostConfig, which knows how to create host instances and how to
connect them, and a Container, which receives the top-level instances and
the commit signal. This decouples the construction algorithm from the
host tree of package dom in the same way a styling engine is decoupled
from a concrete styled tree.

A mount runs to completion synchronously:

 1. components are expanded and fragments are dissolved,
 2. instances are created bottom-up: all children of an element are
    appended before the element itself is handed to its parent,
 3. the top-level instances are appended to the container,
 4. Container.Commit is called exactly once.

If any step fails, the mount is aborted before the commit.
There are no updates: every mount builds a fresh tree.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package reconciler

import (
	"errors"
	"fmt"

	"github.com/npillmayer/consolemark/markup"
	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/net/html"
)

// tracer traces with key 'consolemark.reconciler'.
func tracer() tracing.Trace {
	return tracing.Select("consolemark.reconciler")
}

// ErrUnknownNode is returned for markup nodes of an unknown type.
var ErrUnknownNode = errors.New("reconciler: unknown markup node")

// ErrTooDeep is returned if components expand into each other beyond
// the maximum depth of an engine.
var ErrTooDeep = errors.New("reconciler: maximum component depth exceeded")

// DefaultMaxDepth is the default limit for nested component expansion.
const DefaultMaxDepth = 64

// HostConfig creates and connects host instances of type I.
type HostConfig[I any] interface {
	CreateInstance(tag string, attrs []html.Attribute, override style.Map) (I, error)
	CreateTextInstance(text string) (I, error)
	AppendInitialChild(parent, child I) error
	FinalizeInitialChildren(instance I) error
}

// Container is the mount target of a reconciler.
type Container[I any] interface {
	AppendChild(child I) error
	Commit() // signals that the tree is complete
}

// Engine mounts markup descriptions onto containers.
type Engine[I any] struct {
	host     HostConfig[I]
	maxDepth int
}

// New creates an engine for a host configuration.
func New[I any](host HostConfig[I]) *Engine[I] {
	return &Engine[I]{host: host, maxDepth: DefaultMaxDepth}
}

// WithMaxDepth sets the limit for nested component expansion.
func (e *Engine[I]) WithMaxDepth(depth int) *Engine[I] {
	if depth > 0 {
		e.maxDepth = depth
	}
	return e
}

// Mount builds the host tree for root and commits it to container.
func (e *Engine[I]) Mount(root markup.Node, container Container[I]) error {
	instances, err := e.build(root, 0)
	if err != nil {
		return err
	}
	for _, inst := range instances {
		if err = container.AppendChild(inst); err != nil {
			return err
		}
	}
	tracer().Debugf("mounted %d top-level instances, committing", len(instances))
	container.Commit()
	return nil
}

// Mount is a shortcut for New(host).Mount(root, container).
func Mount[I any](root markup.Node, host HostConfig[I], container Container[I]) error {
	return New(host).Mount(root, container)
}

func (e *Engine[I]) build(n markup.Node, depth int) ([]I, error) {
	if n == nil {
		return nil, nil
	}
	switch x := n.(type) {
	case markup.Text:
		inst, err := e.host.CreateTextInstance(string(x))
		if err != nil {
			return nil, err
		}
		return []I{inst}, nil
	case *markup.Element:
		if x == nil {
			return nil, nil
		}
		return e.element(x, depth)
	case markup.Fragment:
		var instances []I
		for _, ch := range x {
			sub, err := e.build(ch, depth)
			if err != nil {
				return nil, err
			}
			instances = append(instances, sub...)
		}
		return instances, nil
	case markup.Component:
		if depth >= e.maxDepth {
			return nil, ErrTooDeep
		}
		return e.build(x.Render(), depth+1)
	}
	return nil, fmt.Errorf("%w: %T", ErrUnknownNode, n)
}

func (e *Engine[I]) element(el *markup.Element, depth int) ([]I, error) {
	inst, err := e.host.CreateInstance(el.Tag, el.Attrs, el.Style)
	if err != nil {
		return nil, err
	}
	for _, ch := range el.Children {
		sub, err := e.build(ch, depth)
		if err != nil {
			return nil, err
		}
		for _, s := range sub {
			if err = e.host.AppendInitialChild(inst, s); err != nil {
				return nil, err
			}
		}
	}
	if err = e.host.FinalizeInitialChildren(inst); err != nil {
		return nil, err
	}
	return []I{inst}, nil
}
