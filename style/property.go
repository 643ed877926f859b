package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     color: black
//
// a property value of "black" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient type conversion functions and other helpers.
//
// Property values are never case-folded: url(…) values are case sensitive.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

// --- Style Map --------------------------------------------------------

// Map is an ordered mapping of CSS property names to values.
// The zero value is an empty map, ready to use.
//
// Iteration order is insertion order. Setting an existing property
// replaces its value but keeps its position.
type Map struct {
	entries []KeyValue
	index   map[string]int
}

// NewMap creates a map from key-value pairs, given in order.
// Keys may be given in camel-case or in hyphenated CSS form.
func NewMap(kvs ...KeyValue) Map {
	m := Map{}
	for _, kv := range kvs {
		m.Set(kv.Key, kv.Value)
	}
	return m
}

// Of creates a map from alternating key and value strings:
//
//     style.Of("fontWeight", "bolder", "color", "blue")
//
// An odd trailing key is ignored.
func Of(keysAndValues ...string) Map {
	m := Map{}
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		m.Set(keysAndValues[i], Property(keysAndValues[i+1]))
	}
	return m
}

// Len returns the number of properties in m.
func (m Map) Len() int {
	return len(m.entries)
}

// IsEmpty is a predicate: does m hold no properties?
func (m Map) IsEmpty() bool {
	return len(m.entries) == 0
}

// Get returns a property value, together with an indicator
// wether it has been found in the map.
func (m Map) Get(key string) (Property, bool) {
	i, ok := m.index[Camelize(key)]
	if !ok {
		return NullStyle, false
	}
	return m.entries[i].Value, true
}

// Set a property's value. Overwrites an existing value, if present.
// Set mutates m; use it while building a map, before handing it out.
// Copies of a Map share storage, so derive new maps with With or Merge.
func (m *Map) Set(key string, p Property) {
	key = Camelize(key)
	if key == "" {
		return
	}
	if m.index == nil {
		m.index = make(map[string]int)
	}
	if i, ok := m.index[key]; ok {
		m.entries[i].Value = p
		return
	}
	m.index[key] = len(m.entries)
	m.entries = append(m.entries, KeyValue{Key: key, Value: p})
}

// With returns a copy of m with one property set.
func (m Map) With(key string, p Property) Map {
	c := m.clone()
	c.Set(key, p)
	return c
}

// Entries returns the properties of m in iteration order.
// The slice is a copy.
func (m Map) Entries() []KeyValue {
	r := make([]KeyValue, len(m.entries))
	copy(r, m.entries)
	return r
}

// Merge returns a new map holding all properties of m, overridden and
// extended by the properties of other. On collision the value of other
// wins; the property stays at the position it had in m. Neither operand
// is modified.
func (m Map) Merge(other Map) Map {
	if other.IsEmpty() {
		return m.clone()
	}
	r := m.clone()
	for _, kv := range other.entries {
		r.Set(kv.Key, kv.Value)
	}
	return r
}

// Merge merges any number of maps from left to right, later maps winning.
func Merge(maps ...Map) Map {
	r := Map{}
	for _, m := range maps {
		r = r.Merge(m)
	}
	return r
}

// Equals compares two maps, including iteration order.
func (m Map) Equals(other Map) bool {
	if len(m.entries) != len(other.entries) {
		return false
	}
	for i, kv := range m.entries {
		if other.entries[i] != kv {
			return false
		}
	}
	return true
}

// String is the serialized form of m; see Serialize.
func (m Map) String() string {
	return Serialize(m)
}

// GoString is used for debugging, e.g. with "%#v".
func (m Map) GoString() string {
	var b strings.Builder
	b.WriteString("style.Map{")
	for i, kv := range m.entries {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s: %q", kv.Key, kv.Value)
	}
	b.WriteString("}")
	return b.String()
}

func (m Map) clone() Map {
	if len(m.entries) == 0 {
		return Map{}
	}
	c := Map{
		entries: make([]KeyValue, len(m.entries), len(m.entries)+4),
		index:   make(map[string]int, len(m.entries)+4),
	}
	copy(c.entries, m.entries)
	for k, v := range m.index {
		c.index[k] = v
	}
	return c
}
