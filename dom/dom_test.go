package dom

import (
	"errors"
	"testing"

	"github.com/npillmayer/consolemark/inline"
	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/consolemark/tree"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestHostCreatesStyledElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.dom")
	defer teardown()
	//
	host := NewHost(nil)
	em, err := host.CreateInstance("em", nil, style.Of("color", "#21a0a0"))
	require.NoError(t, err)
	assert.Equal(t, "em", em.NodeName())
	assert.Equal(t, "font-style:italic;color:#21a0a0;", em.Style().String())
	assert.Equal(t, inline.Descend, em.Traversal())
	//
	a, err := host.CreateInstance("a", []html.Attribute{{Key: "href", Val: "https://google.com"}}, style.Map{})
	require.NoError(t, err)
	assert.Equal(t, inline.Anchor, a.Traversal())
	assert.Equal(t, "https://google.com", a.Attr("href").WithDefault(""))
}

func TestHostRejectsBlockElements(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.dom")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	_, err := NewHost(nil).CreateInstance("div", nil, style.Map{})
	var invalid *inline.InvalidElementError
	require.True(t, errors.As(err, &invalid))
	assert.Equal(t, "div", invalid.Tag)
}

func TestTextNodes(t *testing.T) {
	txt := NewText("Chris")
	assert.True(t, txt.IsText())
	assert.Equal(t, TextNodeName, txt.NodeName())
	assert.True(t, txt.Style().IsEmpty())
	assert.Error(t, txt.AppendChild(NewText("x")), "text nodes have no children")
}

func TestChildrenAndTextContent(t *testing.T) {
	host := NewHost(nil)
	strong, _ := host.CreateInstance("strong", nil, style.Map{})
	em, _ := host.CreateInstance("em", nil, style.Map{})
	hello, _ := host.CreateTextInstance("Hello, ")
	name, _ := host.CreateTextInstance("Chris")
	require.NoError(t, host.AppendInitialChild(em, name))
	require.NoError(t, host.FinalizeInitialChildren(em))
	require.NoError(t, host.AppendInitialChild(strong, hello))
	require.NoError(t, host.AppendInitialChild(strong, em))
	require.NoError(t, host.FinalizeInitialChildren(strong))
	//
	children := strong.ChildNodes()
	require.Len(t, children, 2)
	assert.Same(t, em, children[1])
	assert.True(t, strong.IsSealed())
	text, err := TextContent(strong)
	require.NoError(t, err)
	assert.Equal(t, "Hello, Chris", text)
	//
	ems, _ := tree.Collect(strong.TreeNode(), NodeIsElement("em"))
	assert.Len(t, ems, 1)
}

func TestNodeFromTreeNode(t *testing.T) {
	_, err := NodeFromTreeNode(nil)
	assert.Error(t, err)
	n := NewText("x")
	back, err := NodeFromTreeNode(n.TreeNode())
	require.NoError(t, err)
	assert.Same(t, n, back)
}
