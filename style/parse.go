package style

import (
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ParseDeclarations parses CSS declaration text, as found in an HTML
// style attribute, into a style mapping:
//
//     ParseDeclarations("color: #21a0a0; font-weight: bold")
//
// Property names are converted to camel-case. "!important" markers are
// accepted and dropped, as inline styles have no cascade to win against.
func ParseDeclarations(text string) (Map, error) {
	m := Map{}
	if strings.TrimSpace(text) == "" {
		return m, nil
	}
	// douceur drops the value of a final declaration without ';'
	if !strings.HasSuffix(strings.TrimSpace(text), ";") {
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return m, fmt.Errorf("style: cannot parse declarations %q: %w", text, err)
	}
	for _, d := range decls {
		if d.Property == "" {
			continue
		}
		tracer().Debugf("style declaration %s = %s", d.Property, d.Value)
		m.Set(d.Property, Property(d.Value))
	}
	return m, nil
}

// MustParse is like ParseDeclarations but panics on error.
// It is intended for statically known style text.
func MustParse(text string) Map {
	m, err := ParseDeclarations(text)
	if err != nil {
		panic(err)
	}
	return m
}
