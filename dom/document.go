package dom

import (
	"fmt"
	"io"
	"strings"

	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/npillmayer/styling/dom/style/cssom/douceuradapter"
	"github.com/npillmayer/styling/dom/style/selectors"
	"github.com/npillmayer/styling/dom/styledtree"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
)

// Document is an HTML document to be styled. It implements
// cssom.Document.
type Document struct {
	root    *html.Node
	quirks  cssom.QuirksMode
	inline  map[*html.Node]*cssom.DeclarationBlock
	state   map[*html.Node]selectors.ElementState
	flags   map[*html.Node]selectors.ElementSelectorFlags
	stylist *cssom.Stylist
	styles  *styledtree.StyleTree
}

var _ cssom.Document = &Document{}

// NewDocument creates a document for an HTML parse tree. Documents without
// a <!DOCTYPE html> are in quirks mode.
func NewDocument(root *html.Node) *Document {
	return &Document{
		root:   root,
		quirks: detectQuirksMode(root),
		inline: make(map[*html.Node]*cssom.DeclarationBlock),
		state:  make(map[*html.Node]selectors.ElementState),
		flags:  make(map[*html.Node]selectors.ElementSelectorFlags),
	}
}

// Parse parses an HTML document.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("cannot parse HTML document: %w", err)
	}
	return NewDocument(root), nil
}

func detectQuirksMode(root *html.Node) cssom.QuirksMode {
	if root == nil {
		return cssom.NoQuirks
	}
	for ch := root.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.Type == html.DoctypeNode {
			if strings.EqualFold(ch.Data, "html") {
				return cssom.NoQuirks
			}
			return cssom.LimitedQuirks
		}
	}
	return cssom.Quirks
}

// HTMLNode returns the root of the HTML parse tree.
func (doc *Document) HTMLNode() *html.Node {
	return doc.root
}

// QuirksMode returns the quirks mode of the document.
func (doc *Document) QuirksMode() cssom.QuirksMode {
	return doc.quirks
}

// SetQuirksMode overrides the quirks mode detected for the document.
// It takes effect with the next call to Style.
func (doc *Document) SetQuirksMode(q cssom.QuirksMode) {
	doc.quirks = q
}

// StyleAttribute returns the parsed style attribute of an element, or nil.
//
// Interface cssom.Document
func (doc *Document) StyleAttribute(n *html.Node) *cssom.DeclarationBlock {
	if n == nil || n.Type != html.ElementNode {
		return nil
	}
	if block, ok := doc.inline[n]; ok {
		return block
	}
	var block *cssom.DeclarationBlock
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == "style" {
			var err error
			if block, err = douceuradapter.ParseStyleAttribute(a.Val); err != nil {
				tracer().Infof("<%s>: %v", n.Data, err)
			}
			break
		}
	}
	doc.inline[n] = block
	return block
}

// State returns the dynamic state of an element.
//
// Interface cssom.Document
func (doc *Document) State(n *html.Node) selectors.ElementState {
	return doc.state[n]
}

// SetState sets the dynamic state of an element. Call Restyle for the
// change to take effect.
func (doc *Document) SetState(n *html.Node, state selectors.ElementState) {
	if state == 0 {
		delete(doc.state, n)
		return
	}
	doc.state[n] = state
}

// InsertSelectorFlags records selector flags with an element.
//
// Interface cssom.Document
func (doc *Document) InsertSelectorFlags(n *html.Node, flags selectors.ElementSelectorFlags) {
	doc.flags[n] |= flags
}

// SelectorFlags returns the selector flags recorded for an element.
func (doc *Document) SelectorFlags(n *html.Node) selectors.ElementSelectorFlags {
	return doc.flags[n]
}

// Style creates a cascaded style tree for the document. ua is the
// user-agent stylesheet; if it is nil, the default user-agent stylesheet is
// used. The rules of the document's <style> elements are added as
// author rules, followed by the rules of additional author stylesheets.
//
// Style elements which cannot be parsed are skipped; the returned error
// collects their errors. The document is styled nevertheless.
func (doc *Document) Style(ua cssom.StyleSheet, author ...cssom.StyleSheet) error {
	if ua == nil {
		ua = cssom.DefaultUserAgentSheet()
	}
	stylist := cssom.NewStylist(doc.quirks)
	stylist.AddStylesheet(ua, cssom.UserAgent)
	embedded, err := douceuradapter.ExtractStyleElements(doc.root, doc.quirks)
	for _, sheet := range embedded {
		stylist.AddStylesheet(sheet, cssom.Author)
	}
	for _, sheet := range author {
		if sheet == nil {
			err = multierr.Append(err, fmt.Errorf("author stylesheet is nil"))
			continue
		}
		stylist.AddStylesheet(sheet, cssom.Author)
	}
	doc.stylist = stylist
	doc.Restyle()
	return err
}

// Restyle re-runs matching and the cascade, e.g. after element states have
// changed. It is a no-op for documents which have not been styled.
func (doc *Document) Restyle() {
	if doc.stylist == nil {
		return
	}
	doc.flags = make(map[*html.Node]selectors.ElementSelectorFlags)
	doc.styles = styledtree.Style(doc.root, doc.stylist, doc)
}

// Stylist returns the stylist of a styled document, or nil.
func (doc *Document) Stylist() *cssom.Stylist {
	return doc.stylist
}

// StyleTree returns the style tree of a styled document, or nil.
func (doc *Document) StyleTree() *styledtree.StyleTree {
	return doc.styles
}

// ComputedValues returns the computed values for a node of the document.
func (doc *Document) ComputedValues(n *html.Node) *css.ComputedValues {
	if doc.styles == nil {
		return nil
	}
	return doc.styles.ComputedValues(n)
}

// Root returns the document node as a W3C node, or nil if the document
// has not been styled.
func (doc *Document) Root() *W3CNode {
	if doc.styles == nil {
		return nil
	}
	return NodeFor(doc.styles, doc.styles.Root())
}
