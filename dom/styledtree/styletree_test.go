package styledtree

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/npillmayer/styling/dom/style/selectors"
	"github.com/npillmayer/styling/tree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestNoStylesheet(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.dom")
	defer teardown()
	//
	doc := parse(t, `<p id="t"></p>`)
	st := Style(doc, nil, nil)
	cv := st.ComputedValues(byID(doc, "t"))
	require.NotNil(t, cv)
	assert.Equal(t, css.BorderStyleNone, cv.BorderBottomStyle())
	t.Logf("\n%s", st)
}

func TestIDRule(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.dom")
	defer teardown()
	//
	doc := parse(t, `<p id="t"></p>`)
	st := Style(doc, stylist(t, nil, "#t", "border-bottom-style", "dotted"), nil)
	assert.Equal(t, css.BorderStyleDotted, st.ComputedValues(byID(doc, "t")).BorderBottomStyle())
}

func TestInheritedFontFamily(t *testing.T) {
	doc := parse(t, `<div id="t1"><span id="t2">x</span></div>`)
	st := Style(doc, stylist(t, nil, "#t1", "font-family", "monospace"), nil)
	assert.Equal(t, css.FontFamilyT{"monospace"}, st.ComputedValues(byID(doc, "t2")).FontFamily())
	text := byID(doc, "t2").FirstChild
	assert.Equal(t, css.FontFamilyT{"monospace"}, st.ComputedValues(text).FontFamily())
}

func TestNonInheritedBorderWidth(t *testing.T) {
	doc := parse(t, `<div id="t1"><span id="t2"></span></div>`)
	st := Style(doc, stylist(t, nil, "#t1", "border-right-width", "thin"), nil)
	assert.Equal(t, css.BorderWidthThin, st.ComputedValues(byID(doc, "t1")).BorderRightWidth())
	assert.Equal(t, css.BorderWidthMedium, st.ComputedValues(byID(doc, "t2")).BorderRightWidth())
}

func TestAuthorBeatsUserAgent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.dom")
	defer teardown()
	//
	doc := parse(t, `<p id="t"></p>`)
	ua := cssom.NewSheet(cssom.NoQuirks)
	ua.AddStyleRule("*", "color", "CanvasText")
	st := Style(doc, stylist(t, ua, "#t", "color", "red"), nil)
	assert.Equal(t, "#ff0000", st.ComputedValues(byID(doc, "t")).Color().String())
	root := doc.FirstChild
	assert.Equal(t, css.CanvasText(), st.ComputedValues(root).Color())
}

func TestTreeIsIsomorphic(t *testing.T) {
	doc := parse(t, `<div id="a"><p>one</p><!-- c --><p>two<b>three</b></p></div>`)
	st := NewStyleTree(doc, nil, nil)
	st.MatchRules()
	var walk func(h *html.Node) int
	walk = func(h *html.Node) int {
		id, ok := st.NodeFor(h)
		require.True(t, ok)
		sn := st.Node(id)
		assert.Equal(t, Matched, sn.State())
		assert.Same(t, h, sn.HTMLNode())
		if h.Parent != nil {
			pid, _ := st.NodeFor(h.Parent)
			assert.Equal(t, pid, st.Arena().Parent(id))
		}
		if h.PrevSibling != nil {
			sid, _ := st.NodeFor(h.PrevSibling)
			assert.Equal(t, sid, st.Arena().PrevSibling(id))
		} else {
			assert.Equal(t, tree.None, st.Arena().PrevSibling(id))
		}
		n := 1
		for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
			n += walk(ch)
		}
		return n
	}
	count := walk(doc)
	assert.Equal(t, count, st.Len())
}

func TestCascadeIsIdempotent(t *testing.T) {
	doc := parse(t, `<div id="a" class="x"><p>one <em>two</em></p></div>`)
	sty := stylist(t, cssom.DefaultUserAgentSheet(),
		".x", "font-size", "20px", "div p", "margin-left", "2em")
	st := Style(doc, sty, nil)
	first := make(map[*html.Node]*css.ComputedValues)
	for h, id := range st.index {
		first[h] = st.Node(id).ComputedValues()
	}
	st.MatchRules()
	st.Cascade()
	for h, cv := range first {
		assert.True(t, cv.Equal(st.ComputedValues(h)), "values differ for %s", h.Data)
	}
	p := byTag(doc, "p")
	assert.Equal(t, css.JustDimen(40*css.PX), st.ComputedValues(p).MarginLeft())
	assert.Equal(t, css.JustDimen(20*css.PX), st.ComputedValues(p).MarginTop(), "UA margin 1em")
}

func TestInlineStyle(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.dom")
	defer teardown()
	//
	doc := parse(t, `<p id="t"></p>`)
	p := byID(doc, "t")
	block := cssom.NewDeclarationBlock()
	require.NoError(t, block.AppendText("color", "lime"))
	document := &inlineDoc{p: p, block: block}
	st := Style(doc, stylist(t, nil, "#t", "color", "red"), document)
	assert.Equal(t, "#00ff00", st.ComputedValues(p).Color().String())
}

func TestSheetInOtherQuirksMode(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.dom")
	defer teardown()
	//
	doc := parse(t, `<div id="Outer" class="Box"><p id="t1"></p><span id="t2"></span></div>`)
	sheet := cssom.NewSheet(cssom.NoQuirks)
	sheet.AddStyleRule("#Outer p", "border-bottom-style", "dotted")
	sheet.AddStyleRule(".Box > span", "border-bottom-style", "solid")
	for _, q := range []cssom.QuirksMode{cssom.Quirks, cssom.LimitedQuirks, cssom.NoQuirks} {
		sty := cssom.NewStylist(q)
		sty.AddStylesheet(sheet, cssom.Author)
		st := Style(doc, sty, nil)
		assert.Equal(t, css.BorderStyleDotted, st.ComputedValues(byID(doc, "t1")).BorderBottomStyle(),
			"descendant of #Outer in %s document", q)
		assert.Equal(t, css.BorderStyleSolid, st.ComputedValues(byID(doc, "t2")).BorderBottomStyle(),
			"child of .Box in %s document", q)
	}
}

func TestNodeLabels(t *testing.T) {
	text := &html.Node{Type: html.TextNode, Data: "  äöüßéèêëçñøå and more  "}
	label := NewNodeForHTMLNode(text).String()
	assert.Equal(t, `#text "äöüßéèêëçñøå…"`, label)
	assert.True(t, utf8.ValidString(label))
	short := &html.Node{Type: html.TextNode, Data: "Grüße"}
	assert.Equal(t, `#text "Grüße"`, NewNodeForHTMLNode(short).String())
	p := &html.Node{Type: html.ElementNode, Data: "p", Attr: []html.Attribute{
		{Key: "id", Val: "x"}, {Key: "class", Val: "a b"},
	}}
	assert.Equal(t, "<p#x.a.b>", NewNodeForHTMLNode(p).String())
}

func TestCascadeBeforeMatchPanics(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.dom")
	defer teardown()
	//
	st := NewStyleTree(parse(t, `<p></p>`), nil, nil)
	assert.Panics(t, func() { st.Cascade() })
}

func TestRemUsesRootFontSize(t *testing.T) {
	doc := parse(t, `<html><body><p id="t">x</p></body></html>`)
	st := Style(doc, stylist(t, nil, "html", "font-size", "10px", "#t", "font-size", "2rem",
		"#t", "padding-left", "1rem"), nil)
	cv := st.ComputedValues(byID(doc, "t"))
	assert.Equal(t, 20*css.PX, cv.FontSize())
	assert.Equal(t, css.JustDimen(10*css.PX), cv.PaddingLeft())
}

// --- Helpers ---------------------------------------------------------------

type inlineDoc struct {
	p     *html.Node
	block *cssom.DeclarationBlock
}

func (d *inlineDoc) StyleAttribute(n *html.Node) *cssom.DeclarationBlock {
	if n == d.p {
		return d.block
	}
	return nil
}
func (d *inlineDoc) State(*html.Node) selectors.ElementState                        { return 0 }
func (d *inlineDoc) InsertSelectorFlags(*html.Node, selectors.ElementSelectorFlags) {}

// stylist creates a stylist from a user-agent sheet (may be nil) and
// author rules given as triples of selector, property and value.
func stylist(t *testing.T, ua *cssom.Sheet, rules ...string) *cssom.Stylist {
	sty := cssom.NewStylist(cssom.NoQuirks)
	if ua != nil {
		sty.AddStylesheet(ua, cssom.UserAgent)
	}
	author := cssom.NewSheet(cssom.NoQuirks)
	require.Zero(t, len(rules)%3)
	for i := 0; i+2 < len(rules); i += 3 {
		r := author.AddStyleRule(rules[i], rules[i+1], rules[i+2])
		require.Equal(t, 1, r.Block().Len(), "declaration %s: %s", rules[i+1], rules[i+2])
	}
	sty.AddStylesheet(author, cssom.Author)
	return sty
}

func parse(t *testing.T, s string) *html.Node {
	doc, err := html.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

func byID(n *html.Node, id string) *html.Node {
	return find(n, func(n *html.Node) bool {
		for _, a := range n.Attr {
			if a.Key == "id" && a.Val == id {
				return true
			}
		}
		return false
	})
}

func byTag(n *html.Node, tag string) *html.Node {
	return find(n, func(n *html.Node) bool { return n.Data == tag })
}

func find(n *html.Node, pred func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && pred(n) {
		return n
	}
	for ch := n.FirstChild; ch != nil; ch = ch.NextSibling {
		if found := find(ch, pred); found != nil {
			return found
		}
	}
	return nil
}
