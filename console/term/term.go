/*
Package term implements a console target for ANSI terminals.

Every styled run of a console call is translated into a lipgloss style.
The translation covers the CSS properties a terminal can express:

	font-weight     bold, bolder, 600–900 → bold, lighter, 100–300 → faint
	font-style      italic, oblique → italic
	text-decoration underline, line-through
	color           foreground colour
	background      first colour of the shorthand → background colour

All other properties are ignored. The colour depth is taken from the
termenv profile of the renderer and may be adjusted with SetColorProfile.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package term

import (
	"io"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/npillmayer/consolemark/console"
	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'consolemark.term'.
func tracer() tracing.Trace {
	return tracing.Select("consolemark.term")
}

// Target prints console calls with ANSI styling.
type Target struct {
	mu       sync.Mutex
	out      io.Writer
	renderer *lipgloss.Renderer
	styles   map[string]lipgloss.Style // cache, keyed by declaration text
}

// New creates a terminal target writing to out.
func New(out io.Writer) *Target {
	return &Target{
		out:      out,
		renderer: lipgloss.NewRenderer(out),
		styles:   make(map[string]lipgloss.Style),
	}
}

// Renderer returns the lipgloss renderer of t.
func (t *Target) Renderer() *lipgloss.Renderer {
	return t.renderer
}

// SetColorProfile sets the colour depth, e.g. termenv.Ascii to suppress
// all escape sequences.
func (t *Target) SetColorProfile(p termenv.Profile) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.renderer.SetColorProfile(p)
	t.styles = make(map[string]lipgloss.Style)
}

// Call prints a call as one line of styled text.
func (t *Target) Call(m console.Method, args ...any) {
	line := t.prefix(m) + t.Render(args...)
	if !strings.HasSuffix(line, "\n") {
		line += "\n"
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, err := io.WriteString(t.out, line); err != nil {
		tracer().Errorf("cannot write to terminal: %v", err)
	}
}

// Render renders the arguments of a console call into a string with ANSI
// escape sequences.
func (t *Target) Render(args ...any) string {
	var b strings.Builder
	for _, seg := range console.Segments(args...) {
		if seg.Style == "" {
			b.WriteString(seg.Text)
			continue
		}
		b.WriteString(t.Style(seg.Style).Render(seg.Text))
	}
	return b.String()
}

// Style translates a CSS declaration string into a lipgloss style.
// Declarations which cannot be parsed yield a plain style.
func (t *Target) Style(decls string) lipgloss.Style {
	t.mu.Lock()
	defer t.mu.Unlock()
	if s, ok := t.styles[decls]; ok {
		return s
	}
	s := t.renderer.NewStyle()
	m, err := style.ParseDeclarations(decls)
	if err != nil {
		tracer().Errorf("ignoring style: %v", err)
	} else {
		s = Translate(s, m)
	}
	t.styles[decls] = s
	return s
}

// Translate applies the properties of a style mapping to a lipgloss style.
func Translate(s lipgloss.Style, m style.Map) lipgloss.Style {
	for _, kv := range m.Entries() {
		v := strings.ToLower(strings.TrimSpace(kv.Value.String()))
		switch kv.Key {
		case "fontWeight":
			switch weight(v) {
			case 1:
				s = s.Bold(true).Faint(false)
			case -1:
				s = s.Faint(true).Bold(false)
			default:
				s = s.Bold(false).Faint(false)
			}
		case "fontStyle":
			s = s.Italic(v == "italic" || strings.HasPrefix(v, "oblique"))
		case "textDecoration", "textDecorationLine":
			s = s.Underline(strings.Contains(v, "underline")).
				Strikethrough(strings.Contains(v, "line-through"))
		case "color":
			if c, ok := kv.Value.Color(); ok {
				s = s.Foreground(lipgloss.Color(style.HexColor(c)))
			}
		case "background", "backgroundColor":
			if c, ok := kv.Value.FirstColor(); ok {
				s = s.Background(lipgloss.Color(style.HexColor(c)))
			}
		}
	}
	return s
}

// weight classifies a font-weight value: 1 for bold, -1 for light, 0 for
// normal.
func weight(v string) int {
	switch v {
	case "bold", "bolder":
		return 1
	case "lighter":
		return -1
	case "normal", "initial", "inherit", "":
		return 0
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0
	}
	switch {
	case n >= 600:
		return 1
	case n <= 300:
		return -1
	}
	return 0
}

func (t *Target) prefix(m console.Method) string {
	p := console.Prefix(m)
	if p == "" {
		return ""
	}
	s := t.renderer.NewStyle()
	switch m {
	case console.Warn:
		s = s.Foreground(lipgloss.Color("3")).Bold(true)
	case console.Error:
		s = s.Foreground(lipgloss.Color("1")).Bold(true)
	case console.Trace:
		s = s.Faint(true)
	default:
		s = s.Bold(true)
	}
	return s.Render(p)
}

var _ console.Target = &Target{}
