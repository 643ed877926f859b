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
	"github.com/npillmayer/consolemark/style/cssom"
)

// ErrNoTarget is returned if a render is configured without an output
// target.
var ErrNoTarget = errors.New("consolemark: no output target")

// Option configures Render, Compile and NewConsole.
type Option func(*config)

type config struct {
	target console.Target
	method console.Method
	sheets []cssom.StyleSheet
}

// WithTarget sets the output target. The default target prints plain text
// on standard output.
func WithTarget(target console.Target) Option {
	return func(c *config) {
		c.target = target
	}
}

// WithMethod sets the output method. The default is console.Log.
func WithMethod(m console.Method) Option {
	return func(c *config) {
		c.method = m
	}
}

// WithStylesheet adds user stylesheets. Their rules apply to elements
// after the tag defaults and before explicit styles.
func WithStylesheet(sheets ...cssom.StyleSheet) Option {
	return func(c *config) {
		for _, s := range sheets {
			if s != nil {
				c.sheets = append(c.sheets, s)
			}
		}
	}
}

func configure(opts []Option) config {
	c := config{
		target: console.Stdout(),
		method: console.Log,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

func (c config) validate() error {
	if !c.method.IsValid() {
		return fmt.Errorf("%w: %v", console.ErrUnknownMethod, c.method)
	}
	if c.target == nil {
		return ErrNoTarget
	}
	return nil
}
