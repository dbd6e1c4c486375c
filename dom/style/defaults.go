package style

import (
	"sort"

	"golang.org/x/net/html"
)

// Initial values of all the longhands, in CSS notation. Values are parsed
// into typed values by package css; the text form is what the UA
// stylesheet and trace output work with.
var initialValues = [NumLonghands]Property{
	FontFamily:        "serif",
	FontSize:          "medium",
	FontStyle:         "normal",
	FontWeight:        "normal",
	Color:             "canvastext",
	Display:           "inline",
	Position:          "static",
	Float:             "none",
	Visibility:        "visible",
	Top:               "auto",
	Right:             "auto",
	Bottom:            "auto",
	Left:              "auto",
	Width:             "auto",
	Height:            "auto",
	MinWidth:          "0",
	MinHeight:         "0",
	MaxWidth:          "none",
	MaxHeight:         "none",
	MarginTop:         "0",
	MarginRight:       "0",
	MarginBottom:      "0",
	MarginLeft:        "0",
	PaddingTop:        "0",
	PaddingRight:      "0",
	PaddingBottom:     "0",
	PaddingLeft:       "0",
	BorderTopWidth:    "medium",
	BorderRightWidth:  "medium",
	BorderBottomWidth: "medium",
	BorderLeftWidth:   "medium",
	BorderTopStyle:    "none",
	BorderRightStyle:  "none",
	BorderBottomStyle: "none",
	BorderLeftStyle:   "none",
	BorderTopColor:    "currentcolor",
	BorderRightColor:  "currentcolor",
	BorderBottomColor: "currentcolor",
	BorderLeftColor:   "currentcolor",
	BackgroundColor:   "transparent",
	LineHeight:        "normal",
	TextAlign:         "start",
	TextIndent:        "0",
	WhiteSpace:        "normal",
	Direction:         "ltr",
	LetterSpacing:     "normal",
	WordSpacing:       "normal",
}

// InitialProperty returns the CSS initial value of a longhand.
func InitialProperty(l Longhand) Property {
	if !l.Valid() {
		return NullStyle
	}
	return initialValues[l]
}

// DisplayPropertyForHTMLNode returns the default `display` CSS property for an HTML node.
// This is what the user-agent stylesheet sets for an element; elements not
// mentioned there fall back to the initial value "inline".
func DisplayPropertyForHTMLNode(node *html.Node) Property {
	if node == nil {
		return "none"
	}
	if node.Type == html.DocumentNode {
		return "block"
	}
	if node.Type != html.ElementNode {
		tracer().Debugf("cannot get display-property for non-element")
		return "none"
	}
	if d, ok := uaDisplay[node.Data]; ok {
		return d
	}
	return InitialProperty(Display)
}

var uaDisplay = map[string]Property{
	"head": "none", "script": "none", "style": "none", "title": "none",
	"meta": "none", "link": "none", "template": "none",
	"html": "block", "body": "block", "address": "block", "article": "block",
	"aside": "block", "blockquote": "block", "div": "block", "dl": "block",
	"dd": "block", "dt": "block", "fieldset": "block", "figure": "block",
	"footer": "block", "form": "block", "h1": "block", "h2": "block",
	"h3": "block", "h4": "block", "h5": "block", "h6": "block",
	"header": "block", "hr": "block", "main": "block", "nav": "block",
	"ol": "block", "p": "block", "pre": "block", "section": "block", "ul": "block",
	"li":    "list-item",
	"table": "table",
	"i":     "inline", "b": "inline", "em": "inline", "span": "inline", "strong": "inline", "a": "inline",
}

// UADisplayElements returns the element names for which the user-agent
// stylesheet sets a display value, grouped by that value. Element names
// are sorted.
func UADisplayElements() map[Property][]string {
	m := make(map[Property][]string)
	for el, d := range uaDisplay {
		m[d] = append(m[d], el)
	}
	for _, els := range m {
		sort.Strings(els)
	}
	return m
}
