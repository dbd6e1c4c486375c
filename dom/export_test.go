package dom

import (
	"github.com/npillmayer/styling/dom/styledtree"
	"github.com/npillmayer/styling/tree"
)

type treeArena = tree.Arena[*styledtree.StyNode]
type treeNodeID = tree.NodeID
