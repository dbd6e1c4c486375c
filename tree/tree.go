package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
)

// ErrNoNode is returned if an operation is called with an ID not
// denoting a node of the arena.
var ErrNoNode = errors.New("no such node in tree")

// ErrAlreadyLinked is returned when a node is appended which already has
// a parent or siblings.
var ErrAlreadyLinked = errors.New("node is already linked into the tree")

// Arena holds all the nodes of a tree. The zero value is an empty arena
// ready to use.
type Arena[T any] struct {
	nodes []node[T]
}

// NewArena creates an empty arena with room for capacity nodes.
func NewArena[T any](capacity int) *Arena[T] {
	return &Arena[T]{nodes: make([]node[T], 0, capacity)}
}

// NewNode creates a new, unlinked tree node with a given payload.
func (a *Arena[T]) NewNode(payload T) NodeID {
	a.nodes = append(a.nodes, newNode(payload))
	return NodeID(len(a.nodes) - 1)
}

// Len returns the number of nodes in the arena.
func (a *Arena[T]) Len() int {
	if a == nil {
		return 0
	}
	return len(a.nodes)
}

// Contains is a predicate: does id denote a node of this arena?
func (a *Arena[T]) Contains(id NodeID) bool {
	return a != nil && id >= 0 && int(id) < len(a.nodes)
}

// Payload returns the payload of a node. It panics for invalid IDs.
func (a *Arena[T]) Payload(id NodeID) T {
	assertThat(a.Contains(id), "payload of invalid node %s", id)
	return a.nodes[id].Payload
}

// SetPayload replaces the payload of a node.
func (a *Arena[T]) SetPayload(id NodeID, payload T) error {
	if !a.Contains(id) {
		return ErrNoNode
	}
	a.nodes[id].Payload = payload
	return nil
}

// AppendChild links ch as the last child of parent.
// First/last-child and previous/next-sibling links are maintained.
func (a *Arena[T]) AppendChild(parent, ch NodeID) error {
	if !a.Contains(parent) || !a.Contains(ch) {
		return ErrNoNode
	}
	if parent == ch || a.nodes[ch].isLinked() {
		return ErrAlreadyLinked
	}
	p := &a.nodes[parent]
	c := &a.nodes[ch]
	c.parent = parent
	if p.lastChild == None {
		p.firstChild = ch
	} else {
		a.nodes[p.lastChild].next = ch
		c.prev = p.lastChild
	}
	p.lastChild = ch
	return nil
}

// Parent returns the parent node or None (for the root of the tree).
func (a *Arena[T]) Parent(id NodeID) NodeID {
	if !a.Contains(id) {
		return None
	}
	return a.nodes[id].parent
}

// FirstChild returns the first child of a node or None.
func (a *Arena[T]) FirstChild(id NodeID) NodeID {
	if !a.Contains(id) {
		return None
	}
	return a.nodes[id].firstChild
}

// LastChild returns the last child of a node or None.
func (a *Arena[T]) LastChild(id NodeID) NodeID {
	if !a.Contains(id) {
		return None
	}
	return a.nodes[id].lastChild
}

// NextSibling returns the next sibling of a node or None.
func (a *Arena[T]) NextSibling(id NodeID) NodeID {
	if !a.Contains(id) {
		return None
	}
	return a.nodes[id].next
}

// PrevSibling returns the previous sibling of a node or None.
func (a *Arena[T]) PrevSibling(id NodeID) NodeID {
	if !a.Contains(id) {
		return None
	}
	return a.nodes[id].prev
}

// ChildCount returns the number of children-nodes for a node.
func (a *Arena[T]) ChildCount(id NodeID) int {
	n := 0
	for ch := a.FirstChild(id); ch != None; ch = a.NextSibling(ch) {
		n++
	}
	return n
}

// Children returns a slice with all children of a node, in sibling order.
func (a *Arena[T]) Children(id NodeID) []NodeID {
	var children []NodeID
	for ch := a.FirstChild(id); ch != None; ch = a.NextSibling(ch) {
		children = append(children, ch)
	}
	return children
}

// Ancestors returns the parent chain of a node, nearest ancestor first.
// The node itself is not included.
func (a *Arena[T]) Ancestors(id NodeID) []NodeID {
	var anc []NodeID
	for p := a.Parent(id); p != None; p = a.Parent(p) {
		anc = append(anc, p)
	}
	return anc
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (a *Arena[T]) IndexOfChild(id NodeID) int {
	p := a.Parent(id)
	if p == None {
		return -1
	}
	i := 0
	for ch := a.FirstChild(p); ch != None; ch = a.NextSibling(ch) {
		if ch == id {
			return i
		}
		i++
	}
	return -1
}
