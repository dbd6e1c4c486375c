/*
Package tree implements an all-purpose tree type.

There are many tree implementations around. This one supports trees
of a fairly simple structure: nodes live in an arena owned by the tree
and reference each other through integer IDs. A node links to its parent,
its first and last child, and its previous and next sibling. There are no
pointers between nodes, thus no reference cycles, and dropping the arena
drops the whole tree.

Styling and layout of HTML/CSS involves a lot of operations on different
trees (styled tree, layout tree, render tree). Every concrete tree is built
by composition: it carries a payload type parameter for its node sub-type.

Traversal

   TopDown(start, action)       // pre-order, parents strictly before children
   Children(node)               // children in sibling order
   Ancestors(node)              // parent chain up to the root

Tree operations are not concurrency-safe. Trees are built and walked by a
single goroutine; after construction, read-only access from several
goroutines is fine.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package tree

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'styling.tree'.
func tracer() tracing.Trace {
	return tracing.Select("styling.tree")
}

func assertThat(that bool, msg string, msgargs ...interface{}) {
	if !that {
		msg = fmt.Sprintf("tree: "+msg, msgargs...)
		tracer().Errorf(msg)
		panic(msg)
	}
}
