/*
Package cssom provides the CSS object model of the styling engine.

Overview

CSSOM is the "CSS Object Model", similar to the DOM for HTML. This package
holds the parts of it the styling engine operates on:

   StyleSheet, CSSRule   interfaces for stylesheets from an external CSS parser
   DeclarationBlock      typed, shorthand-expanded property declarations
   Stylist               the flattened set of all active style rules of a document
   Collector             per element, the list of applicable declaration blocks

CSS handling is de-coupled by introducing the interfaces StyleSheet and
CSSRule. A concrete implementation may be found in sub-package
douceuradapter.

A good explanation of styling may be found in

   https://hacks.mozilla.org/2017/08/inside-a-super-fast-css-engine-quantum-css-aka-stylo/

The stylist flattens every selector list into single selectors, each with
a source order, pre-computed ancestor hashes and the origin of its
stylesheet. The collector matches an element against all of them, using a
bloom filter of the element's ancestors for fast rejection.
Selector matching itself is done in package selectors, on top of
https://godoc.org/github.com/andybalholm/cascadia.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cssom

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'styling.cssom'.
func tracer() tracing.Trace {
	return tracing.Select("styling.cssom")
}
