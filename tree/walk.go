package tree

// Action is a function type to operate on tree nodes during a traversal.
// parent is None for the start node of a traversal; position is the index
// of the node within its parent's children.
//
// Returning ErrSkipChildren will prune the traversal below this node;
// any other error aborts the traversal.
type Action[T any] func(a *Arena[T], n NodeID, parent NodeID, position int) error

// ErrSkipChildren may be returned by an Action to prevent descending into
// the children of the current node.
var ErrSkipChildren = skipChildren{}

type skipChildren struct{}

func (skipChildren) Error() string { return "skip children" }

// TopDown traverses a tree starting at (and including) node start.
// The traversal is pre-order, depth-first and visits siblings left to right,
// thus parents are always processed before their children.
//
// If the action function returns an error for a node, the traversal stops
// and the error is returned (except for ErrSkipChildren).
func (a *Arena[T]) TopDown(start NodeID, action Action[T]) error {
	if !a.Contains(start) {
		return ErrNoNode
	}
	if action == nil {
		return nil
	}
	return a.topDown(start, None, 0, action)
}

func (a *Arena[T]) topDown(n, parent NodeID, position int, action Action[T]) error {
	if err := action(a, n, parent, position); err != nil {
		if err == ErrSkipChildren {
			return nil
		}
		return err
	}
	i := 0
	for ch := a.FirstChild(n); ch != None; ch = a.NextSibling(ch) {
		if err := a.topDown(ch, n, i, action); err != nil {
			return err
		}
		i++
	}
	return nil
}

// Predicate is a function type to match against nodes of a tree.
type Predicate[T any] func(a *Arena[T], n NodeID) bool

// NodeIsLeaf is a predicate to match leafs of a tree.
func NodeIsLeaf[T any]() Predicate[T] {
	return func(a *Arena[T], n NodeID) bool {
		return a.FirstChild(n) == None
	}
}

// DescendentsWith collects all descendents of start matching a predicate,
// in pre-order. The search does not include the start node.
func (a *Arena[T]) DescendentsWith(start NodeID, predicate Predicate[T]) []NodeID {
	var selection []NodeID
	_ = a.TopDown(start, func(a *Arena[T], n NodeID, _ NodeID, _ int) error {
		if n != start && predicate(a, n) {
			selection = append(selection, n)
		}
		return nil
	})
	return selection
}
