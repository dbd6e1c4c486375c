package dom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/styledtree"
	"github.com/npillmayer/styling/dom/w3cdom"
	"github.com/npillmayer/styling/tree"
	"golang.org/x/net/html"
)

// W3CNode is a node of a styled document, exposing the W3C DOM interface.
type W3CNode struct {
	st *styledtree.StyleTree
	id tree.NodeID
}

var _ w3cdom.Node = &W3CNode{}

// ErrNotStyled is returned for nodes which are not part of a styled tree.
var ErrNotStyled = errors.New("node is not part of a style tree")

// NodeFor creates a W3C node for a node of a style tree, or nil.
func NodeFor(st *styledtree.StyleTree, id tree.NodeID) *W3CNode {
	if st == nil || !st.Arena().Contains(id) {
		return nil
	}
	return &W3CNode{st: st, id: id}
}

// NodeFromTreeNode returns the W3C node for a style tree node.
func NodeFromTreeNode(st *styledtree.StyleTree, id tree.NodeID) (*W3CNode, error) {
	w := NodeFor(st, id)
	if w == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotStyled, id)
	}
	return w, nil
}

// asNode avoids returning typed nil interfaces.
func asNode(w *W3CNode) w3cdom.Node {
	if w == nil {
		return nil
	}
	return w
}

// ID returns the ID of the node within the style tree.
func (w *W3CNode) ID() tree.NodeID {
	return w.id
}

// StyNode returns the style tree node.
func (w *W3CNode) StyNode() *styledtree.StyNode {
	return w.st.Node(w.id)
}

// HTMLNode returns the underlying HTML node.
func (w *W3CNode) HTMLNode() *html.Node {
	return w.StyNode().HTMLNode()
}

// NodeType returns the type of the underlying HTML node.
func (w *W3CNode) NodeType() html.NodeType {
	return w.HTMLNode().Type
}

// NodeName returns the element name, or "#text", "#document", etc.
func (w *W3CNode) NodeName() string {
	h := w.HTMLNode()
	switch h.Type {
	case html.ElementNode:
		return h.Data
	case html.TextNode:
		return "#text"
	case html.DocumentNode:
		return "#document"
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	return "#unknown"
}

// NodeValue returns the text of text and comment nodes, and "" otherwise.
func (w *W3CNode) NodeValue() string {
	h := w.HTMLNode()
	if h.Type == html.TextNode || h.Type == html.CommentNode {
		return h.Data
	}
	return ""
}

// HasAttributes is a predicate.
func (w *W3CNode) HasAttributes() bool {
	return len(w.HTMLNode().Attr) > 0
}

// ParentNode returns the parent, or nil for the document node.
func (w *W3CNode) ParentNode() w3cdom.Node {
	return asNode(NodeFor(w.st, w.st.Arena().Parent(w.id)))
}

// HasChildNodes is a predicate.
func (w *W3CNode) HasChildNodes() bool {
	return w.st.Arena().FirstChild(w.id) != tree.None
}

// ChildNodes returns all the children.
func (w *W3CNode) ChildNodes() w3cdom.NodeList {
	children := w.st.Arena().Children(w.id)
	list := &nodeList{nodes: make([]*W3CNode, len(children))}
	for i, ch := range children {
		list.nodes[i] = NodeFor(w.st, ch)
	}
	return list
}

// Children returns the element children.
func (w *W3CNode) Children() w3cdom.NodeList {
	list := &nodeList{}
	for _, ch := range w.st.Arena().Children(w.id) {
		if w.st.Node(ch).IsElement() {
			list.nodes = append(list.nodes, NodeFor(w.st, ch))
		}
	}
	return list
}

// FirstChild returns the first child, or nil.
func (w *W3CNode) FirstChild() w3cdom.Node {
	return asNode(NodeFor(w.st, w.st.Arena().FirstChild(w.id)))
}

// NextSibling returns the next sibling, or nil.
func (w *W3CNode) NextSibling() w3cdom.Node {
	return asNode(NodeFor(w.st, w.st.Arena().NextSibling(w.id)))
}

// Attributes returns the attributes of an element.
func (w *W3CNode) Attributes() w3cdom.NamedNodeMap {
	return attrMap(w.HTMLNode().Attr)
}

// ComputedStyles returns the computed styles of the node.
func (w *W3CNode) ComputedStyles() w3cdom.ComputedStyles {
	return computedStyles{w.StyNode().ComputedValues()}
}

// TextContent returns the text of the node and all its descendents.
func (w *W3CNode) TextContent() (string, error) {
	var b strings.Builder
	err := w.st.Arena().TopDown(w.id, func(a *tree.Arena[*styledtree.StyNode], n, _ tree.NodeID, _ int) error {
		if h := a.Payload(n).HTMLNode(); h.Type == html.TextNode {
			b.WriteString(h.Data)
		}
		return nil
	})
	return b.String(), err
}

func (w *W3CNode) String() string {
	return w.StyNode().String()
}

// --- Node lists, attributes and styles --------------------------------------

type nodeList struct {
	nodes []*W3CNode
}

func (l *nodeList) Length() int { return len(l.nodes) }

func (l *nodeList) Item(i int) w3cdom.Node {
	if i < 0 || i >= len(l.nodes) {
		return nil
	}
	return l.nodes[i]
}

func (l *nodeList) String() string {
	names := make([]string, len(l.nodes))
	for i, n := range l.nodes {
		names[i] = n.NodeName()
	}
	return "[" + strings.Join(names, ", ") + "]"
}

type attr struct {
	a html.Attribute
}

func (a attr) Namespace() string { return a.a.Namespace }
func (a attr) Key() string       { return a.a.Key }
func (a attr) Value() string     { return a.a.Val }

type attrMap []html.Attribute

func (m attrMap) Length() int { return len(m) }

func (m attrMap) Item(i int) w3cdom.Attr {
	if i < 0 || i >= len(m) {
		return nil
	}
	return attr{m[i]}
}

func (m attrMap) GetNamedItem(key string) w3cdom.Attr {
	for _, a := range m {
		if a.Key == key {
			return attr{a}
		}
	}
	return nil
}

type computedStyles struct {
	cv *css.ComputedValues
}

func (cs computedStyles) GetPropertyValue(key string) style.Property {
	p, err := css.GetProperty(cs.cv, key)
	if err != nil {
		return style.NullStyle
	}
	return p
}

func (cs computedStyles) Group(name string) []style.KeyValue {
	return css.GetPropertyGroup(cs.cv, name)
}

func (cs computedStyles) Values() *css.ComputedValues {
	return cs.cv
}
