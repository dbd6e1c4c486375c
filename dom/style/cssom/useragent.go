package cssom

import (
	"sort"
	"strings"

	"github.com/npillmayer/styling/dom/style"
)

// uaRules are the user-agent rules apart from display modes.
var uaRules = []struct {
	selector string
	decls    []string
}{
	{"body", []string{"margin", "8px"}},
	{"p, blockquote, dl, figure, ol, ul, pre", []string{"margin-top", "1em", "margin-bottom", "1em"}},
	{"h1", []string{"font-size", "2em", "margin-top", "0.67em", "margin-bottom", "0.67em", "font-weight", "bold"}},
	{"h2", []string{"font-size", "1.5em", "margin-top", "0.83em", "margin-bottom", "0.83em", "font-weight", "bold"}},
	{"h3", []string{"font-size", "1.17em", "margin-top", "1em", "margin-bottom", "1em", "font-weight", "bold"}},
	{"h4, h5, h6", []string{"margin-top", "1.33em", "margin-bottom", "1.33em", "font-weight", "bold"}},
	{"b, strong", []string{"font-weight", "bolder"}},
	{"i, em", []string{"font-style", "italic"}},
	{"pre", []string{"font-family", "monospace", "white-space", "pre"}},
	{"blockquote, figure", []string{"margin-left", "40px", "margin-right", "40px"}},
	{"ol, ul", []string{"padding-left", "40px"}},
	{"hr", []string{"border", "1px inset"}},
}

// DefaultUserAgentSheet creates the built-in user-agent stylesheet. It
// contains display modes for HTML elements and some basic typographic
// defaults.
func DefaultUserAgentSheet() *Sheet {
	sheet := NewSheet(NoQuirks)
	displays := style.UADisplayElements()
	modes := make([]string, 0, len(displays))
	for d := range displays {
		modes = append(modes, string(d))
	}
	sort.Strings(modes)
	for _, d := range modes {
		els := displays[style.Property(d)]
		sheet.AddStyleRule(strings.Join(els, ", "), "display", d)
	}
	for _, r := range uaRules {
		sheet.AddStyleRule(r.selector, r.decls...)
	}
	return sheet
}
