package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "fmt"

// NodeID references a node within an Arena. IDs are stable for the lifetime
// of the arena.
type NodeID int32

// None is the ID of no node. It is returned for missing parents, children
// and siblings.
const None NodeID = -1

// Valid is a predicate: does id denote a node (as opposed to None)?
func (id NodeID) Valid() bool {
	return id >= 0
}

func (id NodeID) String() string {
	if id == None {
		return "#none"
	}
	return fmt.Sprintf("#%d", id)
}

// node is the base type our tree is built of. Links are arena indices.
type node[T any] struct {
	Payload    T      // nodes may carry a payload of arbitrary type
	parent     NodeID // parent node of this node
	firstChild NodeID
	lastChild  NodeID
	next       NodeID // next sibling
	prev       NodeID // previous sibling
}

func newNode[T any](payload T) node[T] {
	return node[T]{
		Payload:    payload,
		parent:     None,
		firstChild: None,
		lastChild:  None,
		next:       None,
		prev:       None,
	}
}

func (n *node[T]) isLinked() bool {
	return n.parent != None || n.prev != None || n.next != None
}
