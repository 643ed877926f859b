package console

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

// Segment is a run of output text together with the CSS declarations
// in effect for it. Unstyled text has an empty Style.
type Segment struct {
	Text  string
	Style string
}

// Segments splits the arguments of a console call into styled runs.
//
// If the first argument is a string, it is interpreted as a format string:
// "%c" starts a new run styled by the next argument, "%s", "%d", "%i",
// "%f", "%o" and "%O" are substituted by the next argument and "%%" is a
// literal '%'. Arguments which are not consumed by the format string are
// appended as unstyled text, separated by blanks. Without a format string
// all arguments are printed unstyled, separated by blanks.
func Segments(args ...any) []Segment {
	if len(args) == 0 {
		return nil
	}
	format, ok := args[0].(string)
	if !ok {
		return []Segment{{Text: join(args)}}
	}
	args = args[1:]
	var segs []Segment
	var b strings.Builder
	cur := ""
	next := func() (any, bool) {
		if len(args) == 0 {
			return nil, false
		}
		a := args[0]
		args = args[1:]
		return a, true
	}
	for i := 0; i < len(format); i++ {
		if format[i] != '%' || i+1 == len(format) {
			b.WriteByte(format[i])
			continue
		}
		verb := format[i+1]
		switch verb {
		case '%':
			b.WriteByte('%')
		case 'c':
			a, ok := next()
			if !ok {
				b.WriteString("%c")
				break
			}
			if b.Len() > 0 {
				segs = append(segs, Segment{Text: b.String(), Style: cur})
				b.Reset()
			}
			cur = fmt.Sprint(a)
		case 's', 'o', 'O':
			a, ok := next()
			if !ok {
				b.WriteByte('%')
				b.WriteByte(verb)
				break
			}
			fmt.Fprint(&b, a)
		case 'd', 'i':
			a, ok := next()
			if !ok {
				b.WriteByte('%')
				b.WriteByte(verb)
				break
			}
			b.WriteString(formatInt(a))
		case 'f':
			a, ok := next()
			if !ok {
				b.WriteString("%f")
				break
			}
			fmt.Fprintf(&b, "%v", a)
		default:
			b.WriteByte('%')
			b.WriteByte(verb)
		}
		i++
	}
	if b.Len() > 0 {
		segs = append(segs, Segment{Text: b.String(), Style: cur})
	}
	if len(args) > 0 {
		segs = append(segs, Segment{Text: " " + join(args)})
	}
	return segs
}

// Plain returns the text of a console call with all styles dropped.
func Plain(args ...any) string {
	var b strings.Builder
	for _, seg := range Segments(args...) {
		b.WriteString(seg.Text)
	}
	return b.String()
}

func join(args []any) string {
	parts := make([]string, len(args))
	for i, a := range args {
		parts[i] = fmt.Sprint(a)
	}
	return strings.Join(parts, " ")
}

func formatInt(a any) string {
	switch x := a.(type) {
	case float32:
		return fmt.Sprintf("%d", int64(x))
	case float64:
		return fmt.Sprintf("%d", int64(x))
	}
	return fmt.Sprint(a)
}
