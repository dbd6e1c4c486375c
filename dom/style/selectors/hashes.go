package selectors

import (
	"strings"

	"github.com/cespare/xxhash/v2"
)

// AncestorHashes are hashes of simple selectors which the ancestors of an
// element must match for a selector to match the element. A zero entry
// terminates the list.
type AncestorHashes [4]uint32

// hashKey is the hash of a simple selector ('#id', '.class' or element name).
// Hashes are never zero.
func hashKey(prefix byte, name string) uint32 {
	h := uint32(xxhash.Sum64String(string(prefix) + name))
	if h == 0 {
		h = 1
	}
	return h
}

// IDHash returns the hash of an id, to be used with ancestor hashes and
// bloom filters.
func IDHash(id string, quirks QuirksMode) uint32 {
	if quirks == Quirks {
		id = strings.ToLower(id)
	}
	return hashKey('#', id)
}

// ClassHash returns the hash of a class name.
func ClassHash(class string, quirks QuirksMode) uint32 {
	if quirks == Quirks {
		class = strings.ToLower(class)
	}
	return hashKey('.', class)
}

// TagHash returns the hash of an element name. Element names are always
// compared case-insensitively.
func TagHash(tag string) uint32 {
	return hashKey('<', strings.ToLower(tag))
}

// computeAncestorHashes collects up to 4 hashes from compounds which
// have to match ancestors of the subject, i.e. compounds to the left of a
// descendant or child combinator. Compounds to the left of sibling
// combinators are skipped, but compounds further to the left are
// ancestors again.
func computeAncestorHashes(compounds []compound, quirks QuirksMode) AncestorHashes {
	var hashes AncestorHashes
	n := 0
	push := func(h uint32) bool {
		if n == len(hashes) {
			return false
		}
		hashes[n] = h
		n++
		return true
	}
	for i := len(compounds) - 2; i >= 0; i-- {
		comb := compounds[i+1].combinator
		if comb != ' ' && comb != '>' {
			continue
		}
		c := compounds[i]
		for _, id := range c.ids {
			if !push(IDHash(id, quirks)) {
				return hashes
			}
		}
		for _, cl := range c.classes {
			if !push(ClassHash(cl, quirks)) {
				return hashes
			}
		}
		if c.tag != "" {
			if !push(TagHash(c.tag)) {
				return hashes
			}
		}
	}
	return hashes
}

// MayMatch returns false if the filter proves that no ancestor matches
// the requirements of the hashes.
func (hashes AncestorHashes) MayMatch(filter *BloomFilter) bool {
	if filter == nil {
		return true
	}
	for _, h := range hashes {
		if h == 0 {
			break
		}
		if !filter.MightContain(h) {
			return false
		}
	}
	return true
}
