/*
Package cssom provides user stylesheets for inline elements.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.

Overview

Every inline element comes with a default style. Clients may adjust these
defaults with a stylesheet, e.g.

    strong { color: crimson }
    a[href^="https:"] { color: green }

CSS handling is de-coupled by introducing interfaces StyleSheet and Rule.
A concrete implementation on top of douceur may be found in sub-package
douceuradapter. Selector matching is not part of this package; see
package inline.

Rules are applied to an element in isolation, at the time the element is
created. Selectors using combinators (descendant, child, sibling) therefore
never match.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/consolemark/style"

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// resolution of element styles, we introduce an interface
// for CSS stylesheets. Clients will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface Rule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []Rule          // all the rules of a stylesheet
}

// Rule is the type stylesheets consists of.
//
// See interface StyleSheet.
type Rule interface {
	Selector() string            // the prelude / selectors of the rule
	Properties() []string        // property keys, e.g. "margin-top"
	Value(string) style.Property // property value for key, e.g. "15px"
	IsImportant(string) bool     // is property key marked as important?
}

// Declarations collects the properties of a rule into a style mapping,
// in declaration order. Property names are converted to camel-case.
func Declarations(r Rule) style.Map {
	m := style.Map{}
	for _, key := range r.Properties() {
		m.Set(key, r.Value(key))
	}
	return m
}
