package styledtree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/cssom"
	"golang.org/x/net/html"
)

// State is the lifecycle state of a style node.
type State uint8

// A node is unmatched after creation, matched after its applicable
// declarations have been collected, and cascaded after its values
// have been computed.
const (
	Unmatched State = iota
	Matched
	Cascaded
)

func (s State) String() string {
	switch s {
	case Unmatched:
		return "unmatched"
	case Matched:
		return "matched"
	case Cascaded:
		return "cascaded"
	}
	return fmt.Sprintf("state(%d)", s)
}

// StyNode is a style node, the building block of the styled tree.
type StyNode struct {
	htmlNode *html.Node
	adbs     []cssom.ApplicableDeclarationBlock
	state    State
	computed *css.ComputedValues
}

// NewNodeForHTMLNode creates a new, unmatched styled node linked to an
// HTML node.
func NewNodeForHTMLNode(h *html.Node) *StyNode {
	return &StyNode{htmlNode: h}
}

// HTMLNode gets the HTML DOM node corresponding to this styled node.
func (sn *StyNode) HTMLNode() *html.Node {
	return sn.htmlNode
}

// State returns the lifecycle state of the node.
func (sn *StyNode) State() State {
	return sn.state
}

// ApplicableDeclarations returns the declaration blocks collected for the
// node.
func (sn *StyNode) ApplicableDeclarations() []cssom.ApplicableDeclarationBlock {
	return sn.adbs
}

// ComputedValues returns the computed values of the node, or nil if the
// node has not been cascaded yet.
func (sn *StyNode) ComputedValues() *css.ComputedValues {
	return sn.computed
}

// IsElement is true for element nodes.
func (sn *StyNode) IsElement() bool {
	return sn.htmlNode != nil && sn.htmlNode.Type == html.ElementNode
}

// GetPropertyValue returns the computed value for a property key, e.g.
// "margin-top", in CSS notation. Unknown keys and nodes which have not been
// cascaded yield style.NullStyle.
func (sn *StyNode) GetPropertyValue(key string) style.Property {
	p, err := css.GetProperty(sn.computed, key)
	if err != nil {
		tracer().Debugf("%s: %v", sn, err)
		return style.NullStyle
	}
	return p
}

func (sn *StyNode) String() string {
	h := sn.htmlNode
	if h == nil {
		return "<nil>"
	}
	switch h.Type {
	case html.DocumentNode:
		return "#document"
	case html.TextNode:
		s := strings.TrimSpace(h.Data)
		if r := []rune(s); len(r) > 12 {
			s = string(r[:12]) + "…"
		}
		return fmt.Sprintf("#text %q", s)
	case html.CommentNode:
		return "#comment"
	case html.DoctypeNode:
		return "#doctype"
	}
	var b strings.Builder
	b.WriteString("<" + h.Data)
	for _, a := range h.Attr {
		switch a.Key {
		case "id":
			b.WriteString("#" + a.Val)
		case "class":
			for _, cl := range strings.Fields(a.Val) {
				b.WriteString("." + cl)
			}
		}
	}
	b.WriteString(">")
	return b.String()
}
