package style

import (
	"strings"
	"unicode"
)

// Serialize converts a style mapping into a single CSS declaration string.
// For each property, in iteration order, it appends
//
//     property-name:value;
//
// where the property name is hyphenated (see Hyphenate). No escaping is
// performed: callers are responsible for well-formed CSS values.
func Serialize(m Map) string {
	if m.IsEmpty() {
		return ""
	}
	var b strings.Builder
	for _, kv := range m.entries {
		b.WriteString(Hyphenate(kv.Key))
		b.WriteByte(':')
		b.WriteString(kv.Value.String())
		b.WriteByte(';')
	}
	return b.String()
}

// Hyphenate converts a camel-case property identifier into a CSS property
// name: a hyphen is inserted before every upper-case letter, then the
// whole name is lower-cased.
//
//     fontWeight      => font-weight
//     WebkitAppearance => -webkit-appearance
//
// Custom properties ("--main-color") are returned unchanged.
func Hyphenate(name string) string {
	if strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name) + 4)
	for _, r := range name {
		if unicode.IsUpper(r) {
			b.WriteByte('-')
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// Camelize is the inverse of Hyphenate: it converts a CSS property name into
// the camel-case form used as keys of Map. Names without hyphens are
// returned unchanged, as are custom properties ("--main-color").
//
//     font-weight        => fontWeight
//     -webkit-appearance => WebkitAppearance
func Camelize(name string) string {
	name = strings.TrimSpace(name)
	if !strings.Contains(name, "-") || strings.HasPrefix(name, "--") {
		return name
	}
	var b strings.Builder
	b.Grow(len(name))
	upper := false
	for _, r := range strings.ToLower(name) {
		if r == '-' {
			upper = true
			continue
		}
		if upper {
			r = unicode.ToUpper(r)
			upper = false
		}
		b.WriteRune(r)
	}
	return b.String()
}
