/*
Package douceuradapter is a concrete implementation of interface cssom.StyleSheet.

It wraps stylesheets parsed by github.com/aymerick/douceur and converts
their declarations into typed cssom.DeclarationBlocks.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package douceuradapter

import (
	"fmt"
	"os"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/npillmayer/styling/dom/style/selectors"
	"go.uber.org/multierr"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'styling.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("styling.cssom")
}

// CSSStyles is an adapter for interface cssom.StyleSheet.
// For an explanation of the motivation behind this design, please refer
// to documentation for interface cssom.StyleSheet.
type CSSStyles struct {
	css    *css.Stylesheet
	href   string
	quirks cssom.QuirksMode
	rules  []cssom.CSSRule
}

// Wrap a douceur.css.Stylesheet into CSSStyles.
// The stylesheet is now managed by the wrapper. href may be empty for
// embedded styles.
func Wrap(sheet *css.Stylesheet, href string, quirks cssom.QuirksMode) *CSSStyles {
	styles := &CSSStyles{css: sheet, href: href, quirks: quirks}
	if sheet == nil {
		styles.css = css.NewStylesheet()
	}
	styles.rules = make([]cssom.CSSRule, len(styles.css.Rules))
	for i, r := range styles.css.Rules {
		styles.rules[i] = wrapRule(r, cssom.Location{Href: href, Index: i})
	}
	return styles
}

// Parse parses CSS text into a stylesheet.
func Parse(text string, href string, quirks cssom.QuirksMode) (*CSSStyles, error) {
	sheet, err := parser.Parse(text)
	if err != nil {
		if href == "" {
			href = "<style>"
		}
		return nil, fmt.Errorf("cannot parse stylesheet %s: %w", href, err)
	}
	return Wrap(sheet, href, quirks), nil
}

// ParseFile reads and parses a CSS file.
func ParseFile(path string, quirks cssom.QuirksMode) (*CSSStyles, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read stylesheet: %w", err)
	}
	return Parse(string(data), path, quirks)
}

// Empty checks if this stylesheet contains any rules.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Empty() bool {
	return len(sheet.rules) == 0
}

// AppendRules appends rules from another stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) AppendRules(other cssom.StyleSheet) {
	if other == nil {
		return
	}
	if othercss, ok := other.(*CSSStyles); ok {
		sheet.css.Rules = append(sheet.css.Rules, othercss.css.Rules...)
	}
	sheet.rules = append(sheet.rules, other.Rules()...)
}

// Rules returns all the rules of a stylesheet.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) Rules() []cssom.CSSRule {
	return sheet.rules
}

// QuirksMode returns the quirks mode the stylesheet has been parsed in.
//
// Interface cssom.StyleSheet
func (sheet *CSSStyles) QuirksMode() cssom.QuirksMode {
	return sheet.quirks
}

func (sheet *CSSStyles) String() string {
	return sheet.css.String()
}

var _ cssom.StyleSheet = &CSSStyles{}

// --- Rules -----------------------------------------------------------------

// Rule is an adapter for interface cssom.CSSRule.
type Rule struct {
	r         *css.Rule
	kind      cssom.RuleKind
	selectors []string
	block     *cssom.DeclarationBlock
	loc       cssom.Location
}

var atRuleKinds = map[string]cssom.RuleKind{
	"@media":     cssom.MediaRuleKind,
	"@supports":  cssom.SupportsRuleKind,
	"@keyframes": cssom.KeyframesRuleKind,
	"@page":      cssom.PageRuleKind,
	"@namespace": cssom.NamespaceRuleKind,
	"@font-face": cssom.FontFaceRuleKind,
	"@import":    cssom.ImportRuleKind,
}

func wrapRule(r *css.Rule, loc cssom.Location) *Rule {
	rule := &Rule{r: r, loc: loc, kind: cssom.UnknownRuleKind}
	if r.Kind == css.QualifiedRule {
		rule.kind = cssom.StyleRuleKind
		// douceur splits the prelude at every comma, even inside :not(…)
		rule.selectors = selectors.SplitSelectorList(r.Prelude)
		rule.block = declarationBlock(r.Declarations, loc)
	} else if k, ok := atRuleKinds[strings.ToLower(r.Name)]; ok {
		rule.kind = k
	}
	return rule
}

// Kind returns the kind of the rule.
func (r *Rule) Kind() cssom.RuleKind { return r.kind }

// Selectors returns the selectors of a style rule.
func (r *Rule) Selectors() []string { return r.selectors }

// Block returns the declarations of a style rule.
func (r *Rule) Block() *cssom.DeclarationBlock { return r.block }

// Location returns the href of the stylesheet and the index of the rule.
func (r *Rule) Location() cssom.Location { return r.loc }

var _ cssom.CSSRule = &Rule{}

func declarationBlock(decls []*css.Declaration, loc cssom.Location) *cssom.DeclarationBlock {
	block := cssom.NewDeclarationBlock()
	for _, d := range decls {
		if err := block.Append(d.Property, style.Property(d.Value), d.Important); err != nil {
			tracer().Infof("%s: invalid declaration dropped: %v", loc, err)
		}
	}
	return block
}

// ParseStyleAttribute parses the text of an HTML style attribute into a
// declaration block. Invalid declarations are dropped. The last declaration
// need not be terminated by a semicolon.
func ParseStyleAttribute(text string) (*cssom.DeclarationBlock, error) {
	text = strings.TrimSpace(text)
	if text != "" && !strings.HasSuffix(text, ";") {
		// douceur drops an unterminated declaration at the end of input
		text += ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return nil, fmt.Errorf("cannot parse style attribute: %w", err)
	}
	return declarationBlock(decls, cssom.Location{Href: "style=", Index: 0}), nil
}

// --- Style elements --------------------------------------------------------

// ExtractStyleElements visits <head> and <body> elements in an HTML parse
// tree and searches for embedded <style>s. It returns the content of
// style-elements as style sheets. Style elements which fail to parse are
// skipped; their errors are collected into the returned error.
func ExtractStyleElements(htmldoc *html.Node, quirks cssom.QuirksMode) ([]*CSSStyles, error) {
	head := findElement(atom.Head, htmldoc)
	body := findElement(atom.Body, htmldoc)
	sheets, err := extractStyles(head, quirks)
	sheets2, err2 := extractStyles(body, quirks)
	return append(sheets, sheets2...), multierr.Append(err, err2)
}

func extractStyles(h *html.Node, quirks cssom.QuirksMode) ([]*CSSStyles, error) {
	if h == nil {
		return nil, nil
	}
	var sheets []*CSSStyles
	var errs error
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if ch.DataAtom != atom.Style || ch.FirstChild == nil {
			continue
		}
		c, err := Parse(ch.FirstChild.Data, "", quirks)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		sheets = append(sheets, c)
	}
	return sheets, errs
}

func findElement(a atom.Atom, h *html.Node) *html.Node {
	if h == nil {
		return nil
	}
	if h.DataAtom == a {
		return h
	}
	for ch := h.FirstChild; ch != nil; ch = ch.NextSibling {
		if r := findElement(a, ch); r != nil {
			return r
		}
	}
	return nil
}
