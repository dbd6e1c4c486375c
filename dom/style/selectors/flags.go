package selectors

import "strings"

// QuirksMode is the quirks mode of a document. In quirks mode, ids and
// class names are matched case-insensitively.
type QuirksMode uint8

// Quirks modes of HTML documents.
const (
	NoQuirks QuirksMode = iota
	LimitedQuirks
	Quirks
)

func (q QuirksMode) String() string {
	switch q {
	case LimitedQuirks:
		return "limited-quirks"
	case Quirks:
		return "quirks"
	}
	return "no-quirks"
}

// ElementState is a set of dynamic states of an element, which are matched
// by dynamic pseudo-classes.
type ElementState uint8

// Element states.
const (
	StateHover ElementState = 1 << iota
	StateFocus
	StateActive
)

var stateNames = map[string]ElementState{
	"hover":  StateHover,
	"focus":  StateFocus,
	"active": StateActive,
}

func (s ElementState) String() string {
	var names []string
	for _, n := range []string{"hover", "focus", "active"} {
		if s&stateNames[n] != 0 {
			names = append(names, ":"+n)
		}
	}
	return strings.Join(names, "")
}

// ElementSelectorFlags are set on elements during matching. They tell an
// incremental restyle which elements will need re-matching if the DOM
// changes.
type ElementSelectorFlags uint8

const (
	// HasSlowSelector is set on a parent whose children are matched by
	// selectors depending on their index, e.g. :nth-child().
	HasSlowSelector ElementSelectorFlags = 1 << iota
	// HasSlowSelectorLaterSiblings is set on a parent if the matching of a
	// child depends on its earlier siblings ('+' and '~' combinators).
	HasSlowSelectorLaterSiblings
	// HasEdgeChildSelector is set on a parent whose children are matched by
	// :first-child, :last-child or :only-child.
	HasEdgeChildSelector
	// HasEmptySelector is set on an element matched against :empty.
	HasEmptySelector
)

// SelfFlags are the flags which apply to the element being matched.
const SelfFlags = HasEmptySelector

// ParentFlags are the flags which apply to the parent of the element being
// matched.
const ParentFlags = HasSlowSelector | HasSlowSelectorLaterSiblings | HasEdgeChildSelector

func (f ElementSelectorFlags) String() string {
	var names []string
	for _, x := range []struct {
		flag ElementSelectorFlags
		name string
	}{
		{HasSlowSelector, "slow"},
		{HasSlowSelectorLaterSiblings, "slow-later-siblings"},
		{HasEdgeChildSelector, "edge-child"},
		{HasEmptySelector, "empty"},
	} {
		if f&x.flag != 0 {
			names = append(names, x.name)
		}
	}
	return "[" + strings.Join(names, ",") + "]"
}

func flagsForPseudoClass(name string) ElementSelectorFlags {
	switch name {
	case "nth-child", "nth-last-child", "nth-of-type", "nth-last-of-type",
		"first-of-type", "last-of-type", "only-of-type":
		return HasSlowSelector
	case "first-child", "last-child", "only-child":
		return HasEdgeChildSelector
	case "empty":
		return HasEmptySelector
	}
	return 0
}
