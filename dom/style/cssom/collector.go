package cssom

import (
	"fmt"
	"math"

	"github.com/npillmayer/styling/dom/style/selectors"
	"golang.org/x/net/html"
)

// Document is the interface to the document a collector matches elements
// of. See package dom for an implementation.
type Document interface {
	// StyleAttribute returns the parsed style attribute of an element, or nil.
	StyleAttribute(*html.Node) *DeclarationBlock
	// State returns the dynamic state of an element.
	State(*html.Node) selectors.ElementState
	// InsertSelectorFlags records selector flags with an element.
	InsertSelectorFlags(*html.Node, selectors.ElementSelectorFlags)
}

// InlineSourceOrder is the source order of declaration blocks from
// style attributes.
const InlineSourceOrder uint32 = math.MaxUint32

// ApplicableDeclarationBlock is a declaration block found applicable to
// an element, together with everything needed to rank it in the cascade.
type ApplicableDeclarationBlock struct {
	Origin      Origin
	Specificity selectors.Specificity
	SourceOrder uint32
	Block       *DeclarationBlock
}

// IsInline is true for blocks from a style attribute.
func (adb ApplicableDeclarationBlock) IsInline() bool {
	return adb.Specificity == selectors.InlineSpecificity
}

func (adb ApplicableDeclarationBlock) String() string {
	return fmt.Sprintf("%s %s #%d %s", adb.Origin, adb.Specificity, adb.SourceOrder, adb.Block)
}

// Collector collects the applicable declaration blocks for elements.
type Collector struct {
	stylist *Stylist
	doc     Document
}

// NewCollector creates a collector for the rules of a stylist. doc may be
// nil, in which case elements have no inline styles and no dynamic state.
func NewCollector(stylist *Stylist, doc Document) *Collector {
	return &Collector{stylist: stylist, doc: doc}
}

// Collect returns the applicable declaration blocks for an element, i.e.
// the inline style block and the blocks of all the matching rules.
// filter holds the element's ancestors and may be nil.
//
// Selector flags reported by matching are recorded with the element and its
// parent after matching is done. The order of the result carries no
// meaning.
func (c *Collector) Collect(el *html.Node, filter *selectors.BloomFilter) []ApplicableDeclarationBlock {
	if el == nil || el.Type != html.ElementNode {
		return nil
	}
	var adbs []ApplicableDeclarationBlock
	ctx := &selectors.MatchingContext{Filter: filter}
	if c.doc != nil {
		if inline := c.doc.StyleAttribute(el); !inline.Empty() {
			adbs = append(adbs, ApplicableDeclarationBlock{
				Origin:      Author,
				Specificity: selectors.InlineSpecificity,
				SourceOrder: InlineSourceOrder,
				Block:       inline,
			})
		}
		ctx.State = c.doc.State
	}
	if c.stylist == nil {
		return adbs
	}
	ctx.QuirksMode = c.stylist.QuirksMode()
	var selfFlags, parentFlags selectors.ElementSelectorFlags
	for _, r := range c.stylist.Rules() {
		result := selectors.Match(r.Selector, r.Hashes, el, ctx)
		selfFlags |= result.SelfFlags
		parentFlags |= result.ParentFlags
		if !result.Matched {
			continue
		}
		adbs = append(adbs, ApplicableDeclarationBlock{
			Origin:      r.Origin,
			Specificity: r.Selector.Specificity(),
			SourceOrder: r.SourceOrder,
			Block:       r.Style.Block(),
		})
	}
	if c.doc != nil {
		if selfFlags != 0 {
			c.doc.InsertSelectorFlags(el, selfFlags)
		}
		if parentFlags != 0 && el.Parent != nil {
			c.doc.InsertSelectorFlags(el.Parent, parentFlags)
		}
	}
	tracer().Debugf("collected %d declaration blocks for <%s>", len(adbs), el.Data)
	return adbs
}
