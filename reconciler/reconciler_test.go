package reconciler

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/npillmayer/consolemark/markup"
	"github.com/npillmayer/consolemark/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

// testInstance is a minimal host node.
type testInstance struct {
	name     string
	children []*testInstance
	final    bool
}

func (ti *testInstance) String() string {
	if len(ti.children) == 0 {
		return ti.name
	}
	var parts []string
	for _, ch := range ti.children {
		parts = append(parts, ch.String())
	}
	return ti.name + "(" + strings.Join(parts, " ") + ")"
}

// testHost records the order of host calls.
type testHost struct {
	calls  []string
	reject string
}

func (h *testHost) CreateInstance(tag string, attrs []html.Attribute, override style.Map) (*testInstance, error) {
	if tag == h.reject {
		return nil, fmt.Errorf("rejected %s", tag)
	}
	h.calls = append(h.calls, "create "+tag)
	return &testInstance{name: tag}, nil
}

func (h *testHost) CreateTextInstance(text string) (*testInstance, error) {
	h.calls = append(h.calls, "text "+text)
	return &testInstance{name: fmt.Sprintf("%q", text)}, nil
}

func (h *testHost) AppendInitialChild(parent, child *testInstance) error {
	if parent.final {
		return errors.New("parent already finalized")
	}
	parent.children = append(parent.children, child)
	return nil
}

func (h *testHost) FinalizeInitialChildren(inst *testInstance) error {
	h.calls = append(h.calls, "finalize "+inst.name)
	inst.final = true
	return nil
}

type testContainer struct {
	children []*testInstance
	commits  int
}

func (c *testContainer) AppendChild(child *testInstance) error {
	if !child.final && !strings.HasPrefix(child.name, "\"") {
		return errors.New("appending unfinished instance")
	}
	c.children = append(c.children, child)
	return nil
}

func (c *testContainer) Commit() {
	c.commits++
}

func (c *testContainer) String() string {
	var parts []string
	for _, ch := range c.children {
		parts = append(parts, ch.String())
	}
	return strings.Join(parts, " ")
}

func TestMountBuildsBottomUp(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.reconciler")
	defer teardown()
	//
	host, container := &testHost{}, &testContainer{}
	root := markup.El("strong", markup.Txt("Hello, "), markup.El("em", markup.Txt("Chris")))
	err := Mount[*testInstance](root, host, container)
	require.NoError(t, err)
	assert.Equal(t, 1, container.commits)
	assert.Equal(t, `strong("Hello, " em("Chris"))`, container.String())
	assert.Equal(t, []string{
		"create strong",
		"text Hello, ",
		"create em",
		"text Chris",
		"finalize em",
		"finalize strong",
	}, host.calls)
}

func TestMountDissolvesFragmentsAndComponents(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.reconciler")
	defer teardown()
	//
	greeting := markup.ComponentFunc(func() markup.Node {
		return markup.Frag(markup.Txt("Hi "), markup.El("b", markup.Txt("there")))
	})
	root := markup.Frag(
		markup.El("span", greeting, markup.Frag(markup.Txt("!"))),
		markup.Txt("tail"),
		nil,
	)
	host, container := &testHost{}, &testContainer{}
	require.NoError(t, Mount[*testInstance](root, host, container))
	assert.Equal(t, 1, container.commits)
	assert.Equal(t, `span("Hi " b("there") "!") "tail"`, container.String())
}

func TestMountAbortsOnHostError(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.reconciler")
	tracer().SetTraceLevel(tracing.LevelError)
	defer teardown()
	//
	host, container := &testHost{reject: "div"}, &testContainer{}
	root := markup.Frag(markup.El("b", markup.Txt("ok")), markup.El("i", markup.El("div")))
	err := Mount[*testInstance](root, host, container)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rejected div")
	assert.Equal(t, 0, container.commits, "aborted mount must not commit")
	assert.Empty(t, container.children)
}

type unknownNode struct{}

func (unknownNode) Kind() markup.Kind { return 0 }

func TestMountRejectsUnknownNodes(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.reconciler")
	defer teardown()
	//
	container := &testContainer{}
	err := Mount[*testInstance](markup.El("b", unknownNode{}), &testHost{}, container)
	assert.ErrorIs(t, err, ErrUnknownNode)
	assert.Equal(t, 0, container.commits)
}

func TestMountLimitsComponentDepth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.reconciler")
	defer teardown()
	//
	var loop markup.ComponentFunc
	loop = func() markup.Node { return loop }
	container := &testContainer{}
	err := New[*testInstance](&testHost{}).WithMaxDepth(8).Mount(loop, container)
	assert.ErrorIs(t, err, ErrTooDeep)
	assert.Equal(t, 0, container.commits)
}

func TestMountEmptyTreeCommits(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "consolemark.reconciler")
	defer teardown()
	//
	container := &testContainer{}
	require.NoError(t, Mount[*testInstance](markup.Frag(), &testHost{}, container))
	assert.Equal(t, 1, container.commits)
	assert.Empty(t, container.children)
}
