package cssom

import (
	"fmt"

	"github.com/npillmayer/styling/dom/style/selectors"
)

// Rule is a single selector of a style rule, prepared for matching.
// A style rule with a selector list results in one Rule per selector, all
// sharing the style rule.
type Rule struct {
	Selector    *selectors.Selector
	Hashes      selectors.AncestorHashes
	SourceOrder uint32 // unique and strictly increasing within a stylist
	Origin      Origin
	Style       *StyleRule
}

func (r *Rule) String() string {
	return fmt.Sprintf("[%d %s] %s %s", r.SourceOrder, r.Origin, r.Selector, r.Style.Block())
}

// Stylist holds all the active style rules of a document, flattened into
// single selectors. It is built once and read-only afterwards.
type Stylist struct {
	quirks QuirksMode
	rules  []*Rule
}

// NewStylist creates an empty stylist for a document in a given quirks
// mode.
func NewStylist(quirks QuirksMode) *Stylist {
	return &Stylist{quirks: quirks}
}

// AddStylesheet adds all the style rules of a stylesheet. Rules other than
// style rules are skipped, as are selectors which cannot be compiled.
// Rules are assigned source orders in the order they are added.
func (st *Stylist) AddStylesheet(sheet StyleSheet, origin Origin) {
	if sheet == nil || sheet.Empty() {
		return
	}
	// ancestor hashes have to be computed the way the document's bloom
	// filter hashes elements
	if quirks := sheet.QuirksMode(); quirks != st.quirks {
		tracer().Infof("stylist: stylesheet in %s mode added to %s document", quirks, st.quirks)
	}
	added := 0
	for _, r := range sheet.Rules() {
		if r.Kind() != StyleRuleKind {
			tracer().Debugf("stylist: skipping %s rule at %s", r.Kind(), r.Location())
			continue
		}
		styleRule, ok := r.(*StyleRule)
		if !ok {
			styleRule = NewStyleRule(r.Selectors(), r.Block(), r.Location())
		}
		for _, text := range r.Selectors() {
			sel, err := selectors.Compile(text)
			if err != nil {
				tracer().Debugf("stylist: skipping selector at %s: %v", r.Location(), err)
				continue
			}
			st.rules = append(st.rules, &Rule{
				Selector:    sel,
				Hashes:      sel.AncestorHashes(st.quirks),
				SourceOrder: uint32(len(st.rules)),
				Origin:      origin,
				Style:       styleRule,
			})
			added++
		}
	}
	tracer().Infof("stylist: added %d %s selectors", added, origin)
}

// Rules returns all the rules, in source order.
func (st *Stylist) Rules() []*Rule {
	return st.rules
}

// Len returns the number of rules.
func (st *Stylist) Len() int {
	return len(st.rules)
}

// QuirksMode returns the quirks mode of the document.
func (st *Stylist) QuirksMode() QuirksMode {
	return st.quirks
}
