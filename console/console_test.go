package console

import (
	"bytes"
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMethod(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.console")
	defer teardown()
	//
	for _, m := range Methods() {
		parsed, err := ParseMethod(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, parsed)
		assert.True(t, m.IsValid())
	}
	_, err := ParseMethod("shout")
	assert.ErrorIs(t, err, ErrUnknownMethod)
	_, err = ParseMethod("groupcollapsed")
	assert.ErrorIs(t, err, ErrUnknownMethod, "method names are case sensitive")
	assert.False(t, NoMethod.IsValid())
	assert.False(t, Method(42).IsValid())
}

func TestMethodAsFlagValue(t *testing.T) {
	var m Method
	require.NoError(t, m.Set("groupCollapsed"))
	assert.Equal(t, GroupCollapsed, m)
	assert.Error(t, m.Set("nope"))
	assert.Equal(t, GroupCollapsed, m, "failed Set must not change the value")
	assert.Equal(t, "method", m.Type())
}

func TestSegments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.console")
	defer teardown()
	//
	segs := Segments("%cHello, %cChris", "font-weight:bolder;", "font-style:italic;")
	assert.Equal(t, []Segment{
		{Text: "Hello, ", Style: "font-weight:bolder;"},
		{Text: "Chris", Style: "font-style:italic;"},
	}, segs)
	//
	segs = Segments("n=%d %s 100%%", 3.0, "items", "extra", 7)
	assert.Equal(t, []Segment{
		{Text: "n=3 items 100%"},
		{Text: " extra 7"},
	}, segs)
	//
	segs = Segments("pre %cstyled", "color:red;")
	assert.Equal(t, []Segment{
		{Text: "pre "},
		{Text: "styled", Style: "color:red;"},
	}, segs)
}

func TestSegmentsWithoutFormat(t *testing.T) {
	assert.Nil(t, Segments())
	assert.Equal(t, "boom 42", Plain(errors.New("boom"), 42))
	assert.Equal(t, "missing %c and %s", Plain("missing %c and %s"))
}

func TestRecorder(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.console")
	defer teardown()
	//
	rec := &Recorder{}
	var last Invocation
	switch m := rec.Last().Match(); m {
	case m.Just(&last):
		t.Fatalf("did not expect a call on an empty recorder, got %v", last)
	case m.Nothing():
	}
	args := []any{"%cX", "color:red;"}
	rec.Call(Warn, args...)
	args[0] = "changed"
	require.Equal(t, 1, rec.Len())
	inv := rec.Calls()[0]
	assert.Equal(t, Warn, inv.Method)
	assert.Equal(t, "%cX", inv.Format().WithDefault(""), "recorder must copy arguments")
	assert.Equal(t, []string{"color:red;"}, inv.Styles())
	rec.Reset()
	assert.Equal(t, 0, rec.Len())
}

func TestWriterStripsStyles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.console")
	defer teardown()
	//
	var out, errout bytes.Buffer
	w := NewWriter(&out, &errout)
	w.Call(Log, "%cHello, %cChris", "font-weight:bolder;", "font-style:italic;")
	w.Call(Error, errors.New("Invalid element: div is not an inline element."))
	w.Call(Group, "%cTitle", "color:blue;")
	assert.Equal(t, "Hello, Chris\n▼ Title\n", out.String())
	assert.Equal(t, "error: Invalid element: div is not an inline element.\n", errout.String())
}

func TestTargetFunc(t *testing.T) {
	var got Method
	var target Target = TargetFunc(func(m Method, args ...any) { got = m })
	target.Call(Trace, "x")
	assert.Equal(t, Trace, got)
}
