package selectors

import "golang.org/x/net/html"

// MatchingContext holds information about the document an element is part
// of, needed for matching.
type MatchingContext struct {
	// Filter is a bloom filter holding the ancestors of the element to match.
	// If nil, no fast rejection will be done.
	Filter *BloomFilter
	// State returns the dynamic state of an element. If nil, no element is
	// in any state.
	State func(*html.Node) ElementState
	// QuirksMode of the document.
	QuirksMode QuirksMode
}

// MatchResult is the result of matching a selector against an element.
// SelfFlags and ParentFlags are the selector flags to record with the
// element and its parent, respectively. Flags are reported whenever the
// element has been tested against the selector, even if it did not match.
type MatchResult struct {
	Matched     bool
	SelfFlags   ElementSelectorFlags
	ParentFlags ElementSelectorFlags
}

// Match tests a selector against an element. hashes are the ancestor hashes
// of the selector, pre-computed for the quirks mode of the document. ctx
// may be nil.
//
// Match does not modify anything, but reports selector flags in its result.
func Match(sel *Selector, hashes AncestorHashes, el *html.Node, ctx *MatchingContext) MatchResult {
	if sel == nil || el == nil || el.Type != html.ElementNode {
		return MatchResult{}
	}
	if ctx != nil && !hashes.MayMatch(ctx.Filter) {
		return MatchResult{}
	}
	result := MatchResult{
		SelfFlags:   sel.flags & SelfFlags,
		ParentFlags: sel.flags & ParentFlags,
	}
	if sel.states != 0 {
		var state ElementState
		if ctx != nil && ctx.State != nil {
			state = ctx.State(el)
		}
		if state&sel.states != sel.states {
			return result
		}
	}
	result.Matched = sel.sel.Match(el)
	return result
}

// Matches is a convenience function to test a selector without a
// matching context.
func (s *Selector) Matches(el *html.Node) bool {
	return Match(s, s.hashes, el, nil).Matched
}
