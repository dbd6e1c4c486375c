/*
Package styledtree is a straightforward default implementation of a styled document tree.

Overview

A style tree mirrors an HTML parse tree node by node. Every node carries
the declaration blocks applicable to its element and, after the cascade,
the computed values of all the longhands. Style trees are built in two
passes:

   MatchRules()   pre-order walk over the document, collecting applicable
                  declaration blocks for every element
   Cascade()      pre-order walk over the style tree, computing values from
                  the declaration blocks and the parent's computed values

Nodes live in an arena (package tree) and reference each other by ID.
Layout reads the computed values with ComputedValues(htmlnode).

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package styledtree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.dom'.
func tracer() tracing.Trace {
	return tracing.Select("styling.dom")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("styledtree: "+msg, msgargs...)
		tracer().Errorf(msg)
		panic(msg)
	}
}
