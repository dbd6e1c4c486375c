package styledtree

import (
	"fmt"

	"github.com/npillmayer/styling/dom/style/cascade"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/npillmayer/styling/dom/style/selectors"
	"github.com/npillmayer/styling/tree"
	"github.com/npillmayer/tyse/core/dimen"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// StyleTree is a styled tree for an HTML document.
type StyleTree struct {
	doc       *html.Node
	stylist   *cssom.Stylist
	collector *cssom.Collector
	arena     *tree.Arena[*StyNode]
	root      tree.NodeID
	index     map[*html.Node]tree.NodeID
	matched   bool
}

// NewStyleTree creates a style tree for an HTML parse tree. The tree is
// empty until MatchRules is called. document provides inline styles and
// element states and may be nil.
func NewStyleTree(doc *html.Node, stylist *cssom.Stylist, document cssom.Document) *StyleTree {
	if stylist == nil {
		stylist = cssom.NewStylist(cssom.NoQuirks)
	}
	return &StyleTree{
		doc:       doc,
		stylist:   stylist,
		collector: cssom.NewCollector(stylist, document),
		arena:     tree.NewArena[*StyNode](0),
		root:      tree.None,
	}
}

// Style is a convenience function to create a fully cascaded style tree.
func Style(doc *html.Node, stylist *cssom.Stylist, document cssom.Document) *StyleTree {
	st := NewStyleTree(doc, stylist, document)
	st.MatchRules()
	st.Cascade()
	return st
}

// MatchRules creates a style node for every node of the document and
// collects the applicable declaration blocks for every element.
// Calling MatchRules again rebuilds the tree from scratch.
func (st *StyleTree) MatchRules() {
	st.arena = tree.NewArena[*StyNode](64)
	st.index = make(map[*html.Node]tree.NodeID, 64)
	st.root = tree.None
	st.matched = false
	if st.doc == nil {
		tracer().Infof("no document to match")
		return
	}
	filter := selectors.NewBloomFilter(st.stylist.QuirksMode())
	st.root = st.matchNode(st.doc, tree.None, filter)
	st.matched = true
	tracer().Infof("matched %d nodes against %d rules", st.arena.Len(), st.stylist.Len())
}

func (st *StyleTree) matchNode(h *html.Node, parent tree.NodeID, filter *selectors.BloomFilter) tree.NodeID {
	sn := NewNodeForHTMLNode(h)
	id := st.arena.NewNode(sn)
	st.index[h] = id
	if parent != tree.None {
		err := st.arena.AppendChild(parent, id)
		assertThat(err == nil, "cannot link node %s: %v", sn, err)
	}
	if h.Type == html.ElementNode {
		sn.adbs = st.collector.Collect(h, filter)
		filter.PushElement(h)
		defer filter.PopElement()
	}
	sn.state = Matched
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		st.matchNode(ch, id, filter)
	}
	return id
}

// Cascade computes the values of every node, parents before children.
// It panics if the tree has not been matched.
func (st *StyleTree) Cascade() {
	assertThat(st.matched, "cascade on a tree which has not been matched")
	var rootFontSize dimen.DU
	err := st.arena.TopDown(st.root, func(a *tree.Arena[*StyNode], n, parent tree.NodeID, _ int) error {
		sn := a.Payload(n)
		var parentValues *css.ComputedValues
		if parent != tree.None {
			p := a.Payload(parent)
			assertThat(p.state == Cascaded, "cascade of %s before its parent", sn)
			if p.IsElement() {
				parentValues = p.computed
			}
		}
		rfs := rootFontSize
		if parentValues == nil {
			rfs = 0
		}
		sn.computed = cascade.Resolve(sn.adbs, parentValues, rfs)
		sn.state = Cascaded
		if sn.IsElement() && parentValues == nil {
			rootFontSize = sn.computed.FontSize()
		}
		return nil
	})
	assertThat(err == nil, "cascade walk failed: %v", err)
	tracer().Infof("cascaded %d nodes", st.arena.Len())
}

// Root returns the ID of the document node.
func (st *StyleTree) Root() tree.NodeID {
	return st.root
}

// Arena returns the arena the nodes of the tree live in.
func (st *StyleTree) Arena() *tree.Arena[*StyNode] {
	return st.arena
}

// Node returns the style node for an ID.
func (st *StyleTree) Node(id tree.NodeID) *StyNode {
	if !st.arena.Contains(id) {
		return nil
	}
	return st.arena.Payload(id)
}

// NodeFor returns the ID of the style node for an HTML node.
func (st *StyleTree) NodeFor(h *html.Node) (tree.NodeID, bool) {
	id, ok := st.index[h]
	return id, ok
}

// ComputedValues returns the computed values for an HTML node, or nil if
// the node is not part of the tree or has not been cascaded.
func (st *StyleTree) ComputedValues(h *html.Node) *css.ComputedValues {
	id, ok := st.index[h]
	if !ok {
		return nil
	}
	return st.arena.Payload(id).computed
}

// Len returns the number of nodes.
func (st *StyleTree) Len() int {
	return st.arena.Len()
}

// String returns a printable representation of the tree, with the
// display mode of every element.
func (st *StyleTree) String() string {
	if st.root == tree.None {
		return "<empty style tree>"
	}
	p := tp.New()
	st.print(p, st.root)
	return p.String()
}

func (st *StyleTree) print(p tp.Tree, n tree.NodeID) {
	sn := st.arena.Payload(n)
	label := sn.String()
	if sn.IsElement() && sn.computed != nil {
		label = fmt.Sprintf("%s display=%s", label, sn.computed.Display())
	}
	if st.arena.FirstChild(n) == tree.None {
		p.AddNode(label)
		return
	}
	branch := p.AddBranch(label)
	for _, ch := range st.arena.Children(n) {
		st.print(branch, ch)
	}
}
