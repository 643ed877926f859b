package inline

import (
	"errors"
	"testing"

	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/consolemark/style/cssom"
	"github.com/npillmayer/consolemark/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestLookupAllowList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.inline")
	defer teardown()
	//
	for _, tag := range Tags() {
		_, err := Lookup(tag)
		assert.NoError(t, err, "tag %s", tag)
	}
	assert.Len(t, Tags(), 34)
	assert.True(t, IsInline("STRONG"), "tag names are case-insensitive")
	p, _ := Lookup("br")
	assert.Equal(t, LineBreak, p.Traversal)
	p, _ = Lookup("img")
	assert.Equal(t, Image, p.Traversal)
	p, _ = Lookup("a")
	assert.Equal(t, Anchor, p.Traversal)
	assert.Equal(t, "a", p.Tag())
}

func TestLookupInvalidElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.inline")
	defer teardown()
	//
	for _, tag := range []string{"div", "p", "foo", ""} {
		_, err := Lookup(tag)
		var invalid *InvalidElementError
		require.True(t, errors.As(err, &invalid), "expected %q to be invalid", tag)
		assert.Equal(t, tag, invalid.Tag)
	}
	_, err := Lookup("div")
	assert.EqualError(t, err, "Invalid element: div is not an inline element.")
}

func TestDefaultStyles(t *testing.T) {
	for tag, css := range map[string]string{
		"strong": "font-weight:bolder;",
		"b":      "font-weight:bolder;",
		"em":     "font-style:italic;",
		"del":    "text-decoration:line-through;",
		"u":      "text-decoration:underline;",
		"mark":   "background:yellow;color:black;",
		"sub":    "font-size:smaller;vertical-align:sub;",
		"sup":    "font-size:smaller;vertical-align:super;",
		"abbr":   "text-decoration:underline dotted;font-style:italic;font-weight:lighter;",
		"a":      "color:blue;",
		"span":   "",
		"br":     "",
		"div":    "",
	} {
		assert.Equal(t, css, style.Serialize(ResolveDefaultStyle(tag, nil)), "tag %s", tag)
	}
}

func TestImageStyle(t *testing.T) {
	attrs := []html.Attribute{
		{Key: "src", Val: "https://example.com/cat.png"},
		{Key: "width", Val: "64"},
		{Key: "height", Val: "32px"},
	}
	s := style.Serialize(ResolveDefaultStyle("img", attrs))
	assert.Equal(t, "font-size:0;padding:16px 32px;"+
		"background:url(https://example.com/cat.png) no-repeat;background-size:64px 32px;", s)
	s = style.Serialize(ResolveDefaultStyle("img", []html.Attribute{{Key: "width", Val: "huge"}}))
	assert.Equal(t, "font-size:0;padding:8px 8px;", s)
	s = style.Serialize(ResolveDefaultStyle("img", []html.Attribute{
		{Key: "src", Val: "x.png"}, {Key: "width", Val: "1e30"}, {Key: "height", Val: "10"},
	}))
	assert.Equal(t, "font-size:0;padding:5px 8px;background:url(x.png) no-repeat;background-size:16px 10px;", s)
}

func TestAttr(t *testing.T) {
	attrs := []html.Attribute{{Key: "href", Val: "https://google.com"}, {Namespace: "xlink", Key: "title", Val: "x"}}
	assert.Equal(t, "https://google.com", Attr(attrs, "href").WithDefault(""))
	assert.False(t, Attr(attrs, "title").IsJust())
}

func TestResolverOverrideWins(t *testing.T) {
	var r *Resolver // nil resolver is valid
	_, m, err := r.Resolve("em", nil, style.Of("color", "#21a0a0", "fontStyle", "normal"))
	require.NoError(t, err)
	assert.Equal(t, "font-style:normal;color:#21a0a0;", m.String())
	_, _, err = r.Resolve("div", nil, style.Map{})
	assert.Error(t, err)
}

func TestResolverWithStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.inline")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`
		strong { color: crimson }
		a[href^="https:"] { color: green; font-weight: bold !important }
		span em { color: red }
	`)
	require.NoError(t, err)
	r, err := NewResolver(sheet, nil)
	require.NoError(t, err)
	//
	_, m, _ := r.Resolve("strong", nil, style.Map{})
	assert.Equal(t, "font-weight:bolder;color:crimson;", m.String())
	//
	href := []html.Attribute{{Key: "href", Val: "https://google.com"}}
	_, m, _ = r.Resolve("a", href, style.Of("fontWeight", "normal", "color", "purple"))
	assert.Equal(t, "color:purple;font-weight:bold;", m.String())
	//
	_, m, _ = r.Resolve("em", nil, style.Map{})
	assert.Equal(t, "font-style:italic;", m.String(), "combinators never match detached elements")
}

type fakeRule string

func (r fakeRule) Selector() string { return string(r) }
func (r fakeRule) Properties() []string { return []string{"color"} }
func (r fakeRule) Value(string) style.Property { return "red" }
func (r fakeRule) IsImportant(string) bool { return false }

type fakeSheet []cssom.Rule

func (s fakeSheet) AppendRules(cssom.StyleSheet) {}
func (s fakeSheet) Empty() bool { return len(s) == 0 }
func (s fakeSheet) Rules() []cssom.Rule { return s }

func TestResolverInvalidSelector(t *testing.T) {
	_, err := NewResolver(fakeSheet{fakeRule("strong[")})
	assert.Error(t, err)
	r, err := NewResolver(fakeSheet{fakeRule("kbd")})
	require.NoError(t, err)
	_, m, _ := r.Resolve("kbd", nil, style.Map{})
	assert.Equal(t, "color:red;", m.String())
}
