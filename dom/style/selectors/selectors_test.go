package selectors

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

var testHTML = `<html><head></head><body>
<div id="main" class="content Wide">
  <p id="p1" class="note">One</p>
  <p id="p2">Two <a id="link" href="#">link</a></p>
</div>
<span id="empty"></span>
</body></html>`

func TestCompileSpecificity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.selectors")
	defer teardown()
	//
	for _, tc := range []struct {
		sel     string
		a, b, c int
	}{
		{"p", 0, 0, 1},
		{"#main", 1, 0, 0},
		{"div.content > p.note", 0, 2, 2},
		{"a:hover", 0, 1, 1},
		{":focus", 0, 1, 0},
		{"*", 0, 0, 0},
		{"div p:first-child", 0, 1, 2},
	} {
		s, err := Compile(tc.sel)
		require.NoError(t, err, tc.sel)
		a, b, c := s.Specificity().Components()
		assert.Equal(t, []int{tc.a, tc.b, tc.c}, []int{a, b, c}, tc.sel)
	}
}

func TestCompileUnsupported(t *testing.T) {
	_, err := Compile("a:hover span")
	assert.ErrorIs(t, err, ErrUnsupportedSelector)
	_, err = Compile("p::before")
	assert.Error(t, err)
	_, err = Compile("> p")
	assert.Error(t, err)
	_, err = Compile("div >")
	assert.Error(t, err)
	_, err = Compile("")
	assert.Error(t, err)
}

func TestSpecificityOrdering(t *testing.T) {
	assert.True(t, NewSpecificity(1, 0, 0) > NewSpecificity(0, 99, 99))
	assert.True(t, NewSpecificity(0, 1, 0) > NewSpecificity(0, 0, 99))
	assert.True(t, InlineSpecificity > NewSpecificity(1023, 1023, 1023))
	assert.Equal(t, NewSpecificity(0, 1023, 0), NewSpecificity(0, 5000, 0))
	assert.Equal(t, "(1,2,3)", NewSpecificity(1, 2, 3).String())
}

func TestSplitSelectorList(t *testing.T) {
	assert.Equal(t, []string{"h1", "div > p", "a:not(.x, .y)"},
		SplitSelectorList("h1, div > p ,a:not(.x, .y)"))
}

func TestMatch(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.selectors")
	defer teardown()
	//
	doc := parseTestDoc(t)
	p1 := findID(doc, "p1")
	link := findID(doc, "link")
	for _, tc := range []struct {
		sel   string
		el    *html.Node
		match bool
	}{
		{"p", p1, true},
		{"div > p.note", p1, true},
		{"body p", p1, true},
		{"span p", p1, false},
		{"#main a", link, true},
		{"p + p a", link, true},
		{"p.note + p a", link, true},
		{"div.Wide a", link, true},
	} {
		s, err := Compile(tc.sel)
		require.NoError(t, err, tc.sel)
		assert.Equal(t, tc.match, s.Matches(tc.el), tc.sel)
	}
}

func TestMatchDynamicState(t *testing.T) {
	doc := parseTestDoc(t)
	link := findID(doc, "link")
	s, err := Compile("a:hover")
	require.NoError(t, err)
	assert.Equal(t, StateHover, s.States())
	assert.False(t, s.Matches(link))
	ctx := &MatchingContext{State: func(n *html.Node) ElementState {
		if n == link {
			return StateHover | StateFocus
		}
		return 0
	}}
	assert.True(t, Match(s, s.AncestorHashes(NoQuirks), link, ctx).Matched)
}

func TestMatchFlags(t *testing.T) {
	doc := parseTestDoc(t)
	p1 := findID(doc, "p1")
	s, err := Compile("p:first-child")
	require.NoError(t, err)
	r := Match(s, s.AncestorHashes(NoQuirks), p1, nil)
	assert.True(t, r.Matched)
	assert.Equal(t, HasEdgeChildSelector, r.ParentFlags)
	assert.Equal(t, ElementSelectorFlags(0), r.SelfFlags)
	s, err = Compile("span:empty")
	require.NoError(t, err)
	r = Match(s, s.AncestorHashes(NoQuirks), p1, nil)
	assert.False(t, r.Matched)
	assert.Equal(t, HasEmptySelector, r.SelfFlags, "flags are reported for failed matches")
	s, err = Compile("p ~ p")
	require.NoError(t, err)
	assert.Equal(t, HasSlowSelectorLaterSiblings, s.Flags())
}

func TestAncestorHashes(t *testing.T) {
	s, err := Compile("div#main.content > p + p a")
	require.NoError(t, err)
	h := s.AncestorHashes(NoQuirks)
	// 'p' left of '+' is skipped, 'p' left of ' ' and 'div#main.content' are ancestors
	assert.Equal(t, TagHash("p"), h[0])
	assert.Equal(t, IDHash("main", NoQuirks), h[1])
	assert.Equal(t, ClassHash("content", NoQuirks), h[2])
	assert.Equal(t, TagHash("div"), h[3])
	s, err = Compile("p")
	require.NoError(t, err)
	assert.Equal(t, AncestorHashes{}, s.AncestorHashes(NoQuirks))
	s, err = Compile(".A span")
	require.NoError(t, err)
	assert.Equal(t, ClassHash("a", NoQuirks), s.AncestorHashes(Quirks)[0])
}

func TestBloomFilter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.selectors")
	defer teardown()
	//
	doc := parseTestDoc(t)
	main := findID(doc, "main")
	p1 := findID(doc, "p1")
	f := NewBloomFilter(NoQuirks)
	f.PushElement(main)
	assert.True(t, f.MightContain(IDHash("main", NoQuirks)))
	assert.True(t, f.MightContain(ClassHash("Wide", NoQuirks)))
	assert.True(t, f.MightContain(TagHash("DIV")))
	f.PushElement(p1)
	assert.Equal(t, 2, f.Depth())
	f.PopElement()
	f.PopElement()
	assert.False(t, f.MightContain(IDHash("main", NoQuirks)))
	assert.Equal(t, 0, f.Depth())
	//
	s, err := Compile("#main p")
	require.NoError(t, err)
	ctx := &MatchingContext{Filter: f}
	assert.False(t, Match(s, s.AncestorHashes(NoQuirks), p1, ctx).Matched, "fast-rejected")
	f.PushElement(main)
	assert.True(t, Match(s, s.AncestorHashes(NoQuirks), p1, ctx).Matched)
}

func TestBloomFilterSaturation(t *testing.T) {
	f := NewBloomFilter(NoQuirks)
	h := TagHash("x")
	for i := 0; i < 300; i++ {
		f.Insert(h)
	}
	for i := 0; i < 300; i++ {
		f.Remove(h)
	}
	assert.True(t, f.MightContain(h), "saturated counters are sticky")
	f.Clear()
	assert.False(t, f.MightContain(h))
}

// --- Helpers ---------------------------------------------------------------

func parseTestDoc(t *testing.T) *html.Node {
	doc, err := html.Parse(strings.NewReader(testHTML))
	require.NoError(t, err)
	return doc
}

func findID(n *html.Node, id string) *html.Node {
	if n.Type == html.ElementNode {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return n
			}
		}
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := findID(ch, id); found != nil {
			return found
		}
	}
	return nil
}
