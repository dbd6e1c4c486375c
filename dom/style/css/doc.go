/*
Package css provides typed CSS values and their computation.

CSS properties are plentyful and some of them are complicated.
This package trys to shield clients from the cumbersome handling of
CSS properties resulting of (1) the textual nature of CSS properties
and (2) the complicated semantics of computing style attributes for a
given node.

Declared values are parsed from text into typed values (lengths, colors,
keywords). The cascade then selects one declared value per longhand and
element, and this package computes it: relative lengths are resolved against
font sizes, 'currentcolor' against the element's color, and so on.
The resulting values are collected in ComputedValues, with one slot for every
longhand known to package style.

Status

This is a very first draft. It is unstable and the API will change without
notice. Please be patient.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package css

// see
// https://developer.mozilla.org/en-US/docs/Web/CSS/Reference#dom-css_cssom

import (
	"errors"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.css'.
func tracer() tracing.Trace {
	return tracing.Select("styling.css")
}

// ErrInvalidValue is returned by value parsers for input they cannot
// interpret for a given property.
var ErrInvalidValue = errors.New("invalid CSS property value")

// ErrUnknownProperty is returned for property names which are neither a
// longhand nor a shorthand known to the styling engine.
var ErrUnknownProperty = errors.New("unknown CSS property")
