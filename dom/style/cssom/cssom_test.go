package cssom

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/selectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestDeclarationBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.cssom")
	defer teardown()
	//
	b := NewDeclarationBlock()
	assert.True(t, b.Empty())
	require.NoError(t, b.AppendText("margin", "1px 2px"))
	require.NoError(t, b.AppendText("color", "red ! important"))
	assert.Error(t, b.AppendText("margin", "1px fancy"))
	assert.Error(t, b.AppendText("no-such-property", "1px"))
	assert.Equal(t, 5, b.Len())
	d, ok := b.Get(style.Color)
	require.True(t, ok)
	assert.True(t, d.Important)
	d, ok = b.Get(style.MarginLeft)
	require.True(t, ok)
	assert.False(t, d.Important)
	assert.Equal(t, css.JustDimen(2*css.PX), d.Value)
	_, ok = b.Get(style.Width)
	assert.False(t, ok)
}

func TestStylistFlattensSelectorLists(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.cssom")
	defer teardown()
	//
	sheet := NewSheet(NoQuirks)
	sheet.AddStyleRule("h1, h2 , div > p", "color", "red")
	sheet.Append(atRule{MediaRuleKind})
	sheet.AddStyleRule("a:hover span, p::before, em", "font-style", "italic")
	st := NewStylist(NoQuirks)
	st.AddStylesheet(sheet, Author)
	st.AddStylesheet(DefaultUserAgentSheet(), UserAgent)
	rules := st.Rules()
	require.Greater(t, st.Len(), 4)
	assert.Equal(t, "h1", rules[0].Selector.String())
	assert.Equal(t, "div > p", rules[2].Selector.String())
	assert.Equal(t, "em", rules[3].Selector.String())
	assert.Same(t, rules[0].Style, rules[2].Style)
	for i, r := range rules {
		assert.Equal(t, uint32(i), r.SourceOrder)
		if i < 4 {
			assert.Equal(t, Author, r.Origin)
		} else {
			assert.Equal(t, UserAgent, r.Origin)
		}
	}
	assert.Equal(t, NoQuirks, st.QuirksMode())
}

func TestUserAgentSheet(t *testing.T) {
	sheet := DefaultUserAgentSheet()
	require.False(t, sheet.Empty())
	found := false
	for _, r := range sheet.Rules() {
		for _, sel := range r.Selectors() {
			if sel == "p" {
				if d, ok := r.Block().Get(style.Display); ok {
					assert.Equal(t, css.BlockMode|css.InnerBlockMode, d.Value)
					found = true
				}
			}
		}
	}
	assert.True(t, found, "user-agent sheet should set display for <p>")
}

func TestCollect(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.cssom")
	defer teardown()
	//
	root, err := html.Parse(strings.NewReader(
		`<html><body><div id="d"><p id="t" class="x">Hello</p></div></body></html>`))
	require.NoError(t, err)
	p := findElement(root, "p")
	require.NotNil(t, p)
	sheet := NewSheet(NoQuirks)
	sheet.AddStyleRule("#t", "color", "red")
	sheet.AddStyleRule("div > .x", "color", "blue")
	sheet.AddStyleRule("p:hover", "color", "green")
	sheet.AddStyleRule("p:first-child", "margin", "0")
	sheet.AddStyleRule("span", "color", "black")
	st := NewStylist(NoQuirks)
	st.AddStylesheet(sheet, Author)
	doc := newFakeDoc()
	inline := NewDeclarationBlock()
	require.NoError(t, inline.AppendText("width", "10px"))
	doc.inline[p] = inline
	c := NewCollector(st, doc)
	adbs := c.Collect(p, nil)
	require.Len(t, adbs, 4)
	assert.True(t, adbs[0].IsInline())
	assert.Equal(t, InlineSourceOrder, adbs[0].SourceOrder)
	assert.Equal(t, selectors.NewSpecificity(1, 0, 0), adbs[1].Specificity)
	assert.Equal(t, selectors.NewSpecificity(0, 1, 1), adbs[2].Specificity)
	assert.Equal(t, selectors.HasEdgeChildSelector, doc.flags[p.Parent])
	//
	doc.state[p] = selectors.StateHover
	adbs = c.Collect(p, nil)
	assert.Len(t, adbs, 5)
	//
	filter := selectors.NewBloomFilter(NoQuirks)
	adbs = c.Collect(p, filter) // no ancestors pushed: 'div > .x' is rejected
	assert.Len(t, adbs, 4)
}

// --- Helpers ---------------------------------------------------------------

type atRule struct {
	kind RuleKind
}

func (r atRule) Kind() RuleKind           { return r.kind }
func (r atRule) Selectors() []string      { return nil }
func (r atRule) Block() *DeclarationBlock { return nil }
func (r atRule) Location() Location       { return Location{} }

type fakeDoc struct {
	inline map[*html.Node]*DeclarationBlock
	state  map[*html.Node]selectors.ElementState
	flags  map[*html.Node]selectors.ElementSelectorFlags
}

func newFakeDoc() *fakeDoc {
	return &fakeDoc{
		inline: make(map[*html.Node]*DeclarationBlock),
		state:  make(map[*html.Node]selectors.ElementState),
		flags:  make(map[*html.Node]selectors.ElementSelectorFlags),
	}
}

func (d *fakeDoc) StyleAttribute(n *html.Node) *DeclarationBlock { return d.inline[n] }
func (d *fakeDoc) State(n *html.Node) selectors.ElementState     { return d.state[n] }
func (d *fakeDoc) InsertSelectorFlags(n *html.Node, f selectors.ElementSelectorFlags) {
	d.flags[n] |= f
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := findElement(ch, tag); found != nil {
			return found
		}
	}
	return nil
}
