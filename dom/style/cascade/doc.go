/*
Package cascade implements the CSS cascade for a single element.

Overview

Input to the cascade are the applicable declaration blocks of an element,
as collected by a cssom.Collector. For every longhand, exactly one
declaration wins. Declarations are ranked by

   1. origin and importance: author !important > user-agent !important >
      author normal > user-agent normal
   2. specificity, with style attributes exceeding every selector
   3. source order, and the position within a declaration block

A declaration replaces the current winner only if it strictly outranks it.

Values are then computed in two phases. The early phase computes
font-family, font-size, font-style, font-weight and color, in this order.
All other properties may depend on them, e.g. for 'em' lengths or for
'currentcolor'.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package cascade

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'styling.cascade'.
func tracer() tracing.Trace {
	return tracing.Select("styling.cascade")
}
