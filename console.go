package consolemark

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"github.com/npillmayer/consolemark/console"
	"github.com/npillmayer/consolemark/markup"
)

// Console intercepts console calls. A call with exactly one argument which
// is a renderable markup node is rendered with the method of the call.
// Every other call is passed to the wrapped target unchanged.
//
// Console is itself a console.Target, so consoles may be stacked.
type Console struct {
	target console.Target
	opts   []Option
}

// NewConsole wraps a target. If target is nil, plain text output on
// standard output is used. Options apply to every intercepted render;
// target and method options are overridden per call.
func NewConsole(target console.Target, opts ...Option) *Console {
	if target == nil {
		target = console.Stdout()
	}
	return &Console{target: target, opts: opts}
}

// Target returns the wrapped target.
func (c *Console) Target() console.Target {
	return c.target
}

// Call is the interception entry point for all methods.
func (c *Console) Call(m console.Method, args ...any) {
	if len(args) == 1 && markup.IsRenderable(args[0]) {
		opts := make([]Option, 0, len(c.opts)+2)
		opts = append(opts, c.opts...)
		opts = append(opts, WithTarget(c.target), WithMethod(m))
		if err := Render(args[0].(markup.Node), opts...); err != nil {
			tracer().Errorf("cannot render %v: %v", m, err)
			report(c.target, err)
		}
		return
	}
	c.target.Call(m, args...)
}

// Log intercepts console.Log calls.
func (c *Console) Log(args ...any) { c.Call(console.Log, args...) }

// Info intercepts console.Info calls.
func (c *Console) Info(args ...any) { c.Call(console.Info, args...) }

// Debug intercepts console.Debug calls.
func (c *Console) Debug(args ...any) { c.Call(console.Debug, args...) }

// Warn intercepts console.Warn calls.
func (c *Console) Warn(args ...any) { c.Call(console.Warn, args...) }

// Error intercepts console.Error calls.
func (c *Console) Error(args ...any) { c.Call(console.Error, args...) }

// Group intercepts console.Group calls.
func (c *Console) Group(args ...any) { c.Call(console.Group, args...) }

// GroupCollapsed intercepts console.GroupCollapsed calls.
func (c *Console) GroupCollapsed(args ...any) { c.Call(console.GroupCollapsed, args...) }

// Trace intercepts console.Trace calls.
func (c *Console) Trace(args ...any) { c.Call(console.Trace, args...) }

var _ console.Target = &Console{}
