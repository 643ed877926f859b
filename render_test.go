package consolemark

import (
	"errors"
	"strings"
	"testing"

	"github.com/npillmayer/consolemark/console"
	"github.com/npillmayer/consolemark/flatten"
	"github.com/npillmayer/consolemark/inline"
	"github.com/npillmayer/consolemark/markup"
	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/consolemark/style/cssom/douceuradapter"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func greeting() *markup.Element {
	return markup.El("strong",
		markup.Txt("Hello, "),
		markup.El("em", markup.Txt("Chris")),
	)
}

func lastCall(t *testing.T, rec *console.Recorder) console.Invocation {
	t.Helper()
	var inv console.Invocation
	switch m := rec.Last().Match(); m {
	case m.Just(&inv):
	case m.Nothing():
		t.Fatal("expected a console call, got none")
	}
	return inv
}

func TestRenderNestedElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	defer teardown()
	//
	rec := &console.Recorder{}
	require.NoError(t, Render(greeting(), WithTarget(rec), WithMethod(console.Info)))
	require.Equal(t, 1, rec.Len())
	inv := lastCall(t, rec)
	assert.Equal(t, console.Info, inv.Method)
	assert.Equal(t, []any{
		"%cHello, %cChris",
		"font-weight:bolder;",
		"font-weight:bolder;font-style:italic;",
	}, inv.Args)
}

func TestRenderStyleOverride(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	defer teardown()
	//
	root := markup.MustParse(`<strong><em style="color:#21a0a0">Chris</em></strong>`)
	msg, err := Compile(root)
	require.NoError(t, err)
	assert.Equal(t, "%cChris", msg.Format)
	require.Len(t, msg.Styles, 1)
	assert.Contains(t, msg.Styles[0], "font-weight:bolder;")
	assert.Contains(t, msg.Styles[0], "color:#21a0a0;")
}

func TestRenderAnchor(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	defer teardown()
	//
	msg, err := Compile(markup.A("https://google.com", markup.Txt("Google")))
	require.NoError(t, err)
	assert.Equal(t, "%cGoogle https://google.com", msg.Format)
	assert.Equal(t, []string{"color:blue;"}, msg.Styles)
}

func TestRenderLineBreakAndImage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	defer teardown()
	//
	root := markup.Frag(
		markup.Txt("one"),
		markup.Br(),
		markup.Img("logo.png", "32", "16"),
		markup.Txt("two"),
	)
	msg, err := Compile(root)
	require.NoError(t, err)
	assert.Equal(t, "%cone\n%c %ctwo", msg.Format)
	require.Len(t, msg.Styles, 3)
	assert.Equal(t, "", msg.Styles[0])
	assert.Contains(t, msg.Styles[1], "background:url(logo.png) no-repeat;")
	assert.Contains(t, msg.Styles[1], "background-size:32px 16px;")
	assert.Equal(t, msg.Markers(), len(msg.Styles))
}

func TestRenderReportsInvalidElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	rec := &console.Recorder{}
	root := markup.El("strong", markup.El("div", markup.Txt("block")))
	require.NoError(t, Render(root, WithTarget(rec)), "render must not return construction errors")
	require.Equal(t, 1, rec.Len(), "expected exactly one call: the error report")
	inv := lastCall(t, rec)
	assert.Equal(t, console.Error, inv.Method)
	require.Len(t, inv.Args, 1)
	err, ok := inv.Args[0].(error)
	require.True(t, ok)
	var invalid *inline.InvalidElementError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "div", invalid.Tag)
	assert.Equal(t, "Invalid element: div is not an inline element.", err.Error())
}

func TestCompileReturnsInvalidElement(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	_, err := Compile(markup.El("p", markup.Txt("block")))
	var invalid *inline.InvalidElementError
	assert.True(t, errors.As(err, &invalid))
}

func TestRenderRecoversPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	rec := &console.Recorder{}
	broken := markup.ComponentFunc(func() markup.Node {
		panic("component exploded")
	})
	require.NoError(t, Render(markup.El("b", broken), WithTarget(rec)))
	inv := lastCall(t, rec)
	assert.Equal(t, console.Error, inv.Method)
	err := inv.Args[0].(error)
	assert.ErrorIs(t, err, ErrPanic)
	assert.True(t, strings.Contains(err.Error(), "component exploded"))
}

func TestRenderRejectsBadParameters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	defer teardown()
	//
	rec := &console.Recorder{}
	err := Render(greeting(), WithTarget(rec), WithMethod(console.Method(99)))
	assert.ErrorIs(t, err, console.ErrUnknownMethod)
	err = Render(greeting(), WithTarget(nil))
	assert.ErrorIs(t, err, ErrNoTarget)
	assert.Equal(t, 0, rec.Len(), "no output expected for rejected parameters")
}

func TestSessionDeliversAtMostOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	defer teardown()
	//
	var delivered []flatten.Message
	s := newSession(flattened(func(msg flatten.Message) {
		delivered = append(delivered, msg)
	}))
	c := configure([]Option{WithTarget(&console.Recorder{})})
	require.NoError(t, s.mount(markup.El("b", markup.Txt("once")), c))
	s.Commit()
	require.Len(t, delivered, 1)
	assert.Equal(t, "%conce", delivered[0].Format)
	assert.ErrorIs(t, s.AppendChild(nil), ErrCommitted)
}

func TestRenderWithStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	defer teardown()
	//
	sheet, err := douceuradapter.Parse(`span.warn { color: red; font-weight: bold } b { color: green !important }`)
	require.NoError(t, err)
	root := markup.Frag(
		markup.El("span", markup.Txt("careful")).WithAttr("class", "warn"),
		markup.El("b", markup.Txt("ok")).WithStyle(style.Of("color", "blue")),
	)
	msg, err := Compile(root, WithStylesheet(sheet))
	require.NoError(t, err)
	assert.Equal(t, []string{
		"color:red;font-weight:bold;",
		"font-weight:bolder;color:green;",
	}, msg.Styles)
}

func TestBuildSealsTree(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.render")
	defer teardown()
	//
	nodes, err := Build(markup.Frag(greeting(), markup.Txt("!")))
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	assert.Equal(t, "strong", nodes[0].Tag())
	assert.True(t, nodes[0].IsSealed())
	assert.True(t, nodes[1].IsText())
	assert.Equal(t, 3, flatten.Slots(nodes))
}
