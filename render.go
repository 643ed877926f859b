package consolemark

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/consolemark/console"
	"github.com/npillmayer/consolemark/dom"
	"github.com/npillmayer/consolemark/flatten"
	"github.com/npillmayer/consolemark/inline"
	"github.com/npillmayer/consolemark/markup"
	"github.com/npillmayer/consolemark/reconciler"
	"github.com/npillmayer/consolemark/result"
	"github.com/npillmayer/consolemark/style"
)

// ErrCommitted is returned when a host node is appended to a session that
// has already delivered its output.
var ErrCommitted = errors.New("consolemark: render session already committed")

// ErrNotCommitted is returned if the reconciler finishes without signalling
// that the tree is complete.
var ErrNotCommitted = errors.New("consolemark: render session never committed")

// ErrPanic wraps a panic recovered during a render.
var ErrPanic = errors.New("consolemark: render panicked")

// session is the mount container of one render. It collects the top-level
// host nodes and delivers them at most once.
type session struct {
	children  []*dom.Node
	committed bool
	deliver   func([]*dom.Node)
}

func newSession(deliver func([]*dom.Node)) *session {
	return &session{deliver: deliver}
}

// flattened adapts a message consumer to a session, flattening the
// committed nodes with an empty inherited style.
func flattened(consume func(flatten.Message)) func([]*dom.Node) {
	return func(children []*dom.Node) {
		msg := flatten.Flatten(children, style.Map{})
		tracer().Debugf("commit: %q with %d styles", msg.Format, len(msg.Styles))
		consume(msg)
	}
}

// AppendChild is part of interface reconciler.Container.
func (s *session) AppendChild(n *dom.Node) error {
	if s.committed {
		return ErrCommitted
	}
	s.children = append(s.children, n)
	return nil
}

// Commit is part of interface reconciler.Container. A second call is a
// no-op.
func (s *session) Commit() {
	if s.committed {
		tracer().Debugf("session already committed, ignoring signal")
		return
	}
	s.committed = true
	children := s.children
	s.children = nil
	for _, n := range children {
		n.SealAll()
	}
	s.deliver(children)
}

var _ reconciler.Container[*dom.Node] = &session{}

// mount builds the host tree for root and commits it. Panics are recovered
// into errors wrapping ErrPanic.
func (s *session) mount(root markup.Node, c config) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = fmt.Errorf("%w: %w", ErrPanic, e)
			} else {
				err = fmt.Errorf("%w: %v", ErrPanic, r)
			}
		}
	}()
	resolver, err := inline.NewResolver(c.sheets...)
	if err != nil {
		return err
	}
	return reconciler.Mount[*dom.Node](root, dom.NewHost(resolver), s)
}

// Render renders a markup tree into one call of the configured target.
//
// An invalid method or a missing target is returned as an error before any
// output happens. Every other failure, as well as a recovered panic, is
// reported by calling the target's error method with the error; Render
// returns nil in this case.
func Render(root markup.Node, opts ...Option) error {
	c := configure(opts)
	if err := c.validate(); err != nil {
		return err
	}
	s := newSession(flattened(func(msg flatten.Message) {
		c.target.Call(c.method, msg.Args()...)
	}))
	if err := s.mount(root, c); err != nil {
		tracer().Errorf("render failed: %v", err)
		report(c.target, err)
	}
	return nil
}

// Compile runs the render pipeline without any output and returns the
// message. Construction errors, e.g. an *inline.InvalidElementError, are
// returned to the caller. Target and method options are ignored.
func Compile(root markup.Node, opts ...Option) (flatten.Message, error) {
	c := configure(opts)
	res := result.Err[flatten.Message](ErrNotCommitted)
	s := newSession(flattened(func(msg flatten.Message) {
		res = result.Ok(msg)
	}))
	if err := s.mount(root, c); err != nil {
		return flatten.Message{}, err
	}
	return res.Get()
}

// Build constructs and commits the host tree for root and returns its
// top-level nodes, without flattening them. All nodes are sealed.
// Target and method options are ignored.
func Build(root markup.Node, opts ...Option) ([]*dom.Node, error) {
	c := configure(opts)
	res := result.Err[[]*dom.Node](ErrNotCommitted)
	s := newSession(func(children []*dom.Node) {
		res = result.Ok(children)
	})
	if err := s.mount(root, c); err != nil {
		return nil, err
	}
	return res.Get()
}

// report calls the error method of target. A target which panics while
// reporting is not called again.
func report(target console.Target, err error) {
	defer func() {
		if r := recover(); r != nil {
			tracer().Errorf("target panicked while reporting %v: %v", err, r)
		}
	}()
	target.Call(console.Error, err)
}
