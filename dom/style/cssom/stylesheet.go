package cssom

import (
	"fmt"

	"github.com/npillmayer/styling/dom/style/selectors"
)

// QuirksMode is the quirks mode of a document or stylesheet.
type QuirksMode = selectors.QuirksMode

// Quirks modes, re-exported from package selectors.
const (
	NoQuirks      = selectors.NoQuirks
	LimitedQuirks = selectors.LimitedQuirks
	Quirks        = selectors.Quirks
)

// Origin is the origin of a stylesheet. There is no user origin.
type Origin uint8

// Origins of stylesheets
const (
	UserAgent Origin = iota
	Author
)

func (o Origin) String() string {
	switch o {
	case UserAgent:
		return "user-agent"
	case Author:
		return "author"
	}
	return fmt.Sprintf("origin(%d)", o)
}

// StyleSheet is an interface to abstract away a stylesheet-implementation.
// In order to de-couple implementations of CSS-stylesheets from the
// construction of the styled node tree, we introduce an interface
// for CSS stylesheets. Clients for the styling engine will have to
// provide a concrete implementation of this interface (e.g., see
// package douceuradapter).
//
// See interface CSSRule.
type StyleSheet interface {
	AppendRules(StyleSheet) // append rules from another stylesheet
	Empty() bool            // does this stylesheet contain any rules?
	Rules() []CSSRule       // all the rules of a stylesheet
	QuirksMode() QuirksMode // quirks mode the stylesheet has been parsed in
}

// RuleKind is the kind of a CSS rule. Only style rules take part in styling.
type RuleKind uint8

// Kinds of CSS rules
const (
	StyleRuleKind RuleKind = iota
	MediaRuleKind
	SupportsRuleKind
	KeyframesRuleKind
	PageRuleKind
	NamespaceRuleKind
	FontFaceRuleKind
	ImportRuleKind
	UnknownRuleKind
)

var ruleKindNames = [...]string{"style", "@media", "@supports", "@keyframes", "@page",
	"@namespace", "@font-face", "@import", "unknown"}

func (k RuleKind) String() string {
	if int(k) < len(ruleKindNames) {
		return ruleKindNames[k]
	}
	return ruleKindNames[UnknownRuleKind]
}

// Location is the location of a rule: the stylesheet's href (may be empty
// for embedded styles) and the index of the rule within the sheet.
type Location struct {
	Href  string
	Index int
}

func (loc Location) String() string {
	if loc.Href == "" {
		return fmt.Sprintf("<style>#%d", loc.Index)
	}
	return fmt.Sprintf("%s#%d", loc.Href, loc.Index)
}

// CSSRule is the type stylesheets consists of.
//
// See interface StyleSheet.
type CSSRule interface {
	Kind() RuleKind           // style rule or at-rule
	Selectors() []string      // the selectors of a style rule, selector lists split
	Block() *DeclarationBlock // declarations of a style rule, nil for other kinds
	Location() Location       // where the rule originates
}

// --- Style rules -----------------------------------------------------------

// StyleRule is a style rule which is part of a stylist. It is immutable
// and shared between all the selectors of the rule.
type StyleRule struct {
	selectors []string
	block     *DeclarationBlock
	loc       Location
}

// NewStyleRule creates a style rule. block may be nil for an empty rule.
func NewStyleRule(selectorList []string, block *DeclarationBlock, loc Location) *StyleRule {
	if block == nil {
		block = NewDeclarationBlock()
	}
	return &StyleRule{selectors: selectorList, block: block, loc: loc}
}

// Kind is StyleRuleKind.
func (r *StyleRule) Kind() RuleKind { return StyleRuleKind }

// Selectors returns the selector list of the rule.
func (r *StyleRule) Selectors() []string { return r.selectors }

// Block returns the declaration block of the rule.
func (r *StyleRule) Block() *DeclarationBlock { return r.block }

// Location returns the origin location of the rule.
func (r *StyleRule) Location() Location { return r.loc }

func (r *StyleRule) String() string {
	return fmt.Sprintf("%v %s", r.selectors, r.block)
}

var _ CSSRule = &StyleRule{}

// --- A simple stylesheet ---------------------------------------------------

// Sheet is a simple in-memory implementation of StyleSheet, used for
// the user-agent stylesheet and for programmatically built styles.
type Sheet struct {
	rules  []CSSRule
	quirks QuirksMode
}

// NewSheet creates an empty stylesheet.
func NewSheet(quirks QuirksMode) *Sheet {
	return &Sheet{quirks: quirks}
}

// Append appends a rule.
func (sheet *Sheet) Append(r CSSRule) {
	sheet.rules = append(sheet.rules, r)
}

// AddStyleRule is a convenience method to add a style rule from a selector
// list text and declarations given as name/value pairs. Invalid
// declarations are dropped.
func (sheet *Sheet) AddStyleRule(selectorList string, decls ...string) *StyleRule {
	block := NewDeclarationBlock()
	for i := 0; i+1 < len(decls); i += 2 {
		_ = block.AppendText(decls[i], decls[i+1])
	}
	r := NewStyleRule(selectors.SplitSelectorList(selectorList), block,
		Location{Index: len(sheet.rules)})
	sheet.Append(r)
	return r
}

// AppendRules is part of interface StyleSheet.
func (sheet *Sheet) AppendRules(other StyleSheet) {
	if other == nil {
		return
	}
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// Empty is part of interface StyleSheet.
func (sheet *Sheet) Empty() bool { return len(sheet.rules) == 0 }

// Rules is part of interface StyleSheet.
func (sheet *Sheet) Rules() []CSSRule { return sheet.rules }

// QuirksMode is part of interface StyleSheet.
func (sheet *Sheet) QuirksMode() QuirksMode { return sheet.quirks }

var _ StyleSheet = &Sheet{}
