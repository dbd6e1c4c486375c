package dom

import (
	"github.com/npillmayer/styling/dom/styledtree"
	"github.com/npillmayer/styling/tree"
	"golang.org/x/net/html"
)

// NodeIsText is a predicate to match text-nodes of a DOM.
// It is intended to be used with tree.Arena.DescendentsWith.
var NodeIsText tree.Predicate[*styledtree.StyNode] = func(a *tree.Arena[*styledtree.StyNode],
	n tree.NodeID) bool {
	//
	return a.Payload(n).HTMLNode().Type == html.TextNode
}

// NodeIsElement returns a predicate to match elements with a given name.
// An empty name matches all elements.
func NodeIsElement(name string) tree.Predicate[*styledtree.StyNode] {
	return func(a *tree.Arena[*styledtree.StyNode], n tree.NodeID) bool {
		h := a.Payload(n).HTMLNode()
		return h.Type == html.ElementNode && (name == "" || h.Data == name)
	}
}

// FindAll returns all the descendents of w matching a predicate, in
// document order.
func (w *W3CNode) FindAll(predicate tree.Predicate[*styledtree.StyNode]) []*W3CNode {
	ids := w.st.Arena().DescendentsWith(w.id, predicate)
	nodes := make([]*W3CNode, len(ids))
	for i, id := range ids {
		nodes[i] = NodeFor(w.st, id)
	}
	return nodes
}

// Find returns the first descendent of w matching a predicate, or nil.
func (w *W3CNode) Find(predicate tree.Predicate[*styledtree.StyNode]) *W3CNode {
	if found := w.FindAll(predicate); len(found) > 0 {
		return found[0]
	}
	return nil
}
