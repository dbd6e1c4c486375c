package selectors

import (
	"strings"

	"golang.org/x/net/html"
)

const (
	bloomKeyBits = 12
	bloomSize    = 1 << bloomKeyBits
	bloomMask    = bloomSize - 1
)

// BloomFilter is a counting bloom filter for the ancestors of an element.
// It holds hashes of the ids, classes and element names of all the
// elements pushed onto it. Elements have to be popped in reverse order.
//
// A false result of MightContain is definite, a true result may be a false
// positive. Counters saturate; a saturated counter is never decremented.
type BloomFilter struct {
	counters [bloomSize]uint8
	stack    [][]uint32
	quirks   QuirksMode
}

// NewBloomFilter creates an empty bloom filter for a document in a given
// quirks mode.
func NewBloomFilter(quirks QuirksMode) *BloomFilter {
	return &BloomFilter{quirks: quirks}
}

func hash1(h uint32) uint32 { return h & bloomMask }
func hash2(h uint32) uint32 { return (h >> bloomKeyBits) & bloomMask }

// Insert adds a hash.
func (f *BloomFilter) Insert(h uint32) {
	for _, i := range [2]uint32{hash1(h), hash2(h)} {
		if f.counters[i] != 0xff {
			f.counters[i]++
		}
	}
}

// Remove removes a hash which has been inserted before.
func (f *BloomFilter) Remove(h uint32) {
	for _, i := range [2]uint32{hash1(h), hash2(h)} {
		if c := f.counters[i]; c != 0xff && c != 0 {
			f.counters[i]--
		}
	}
}

// MightContain returns false if h has definitely not been inserted.
func (f *BloomFilter) MightContain(h uint32) bool {
	return f.counters[hash1(h)] != 0 && f.counters[hash2(h)] != 0
}

// Clear resets the filter.
func (f *BloomFilter) Clear() {
	f.counters = [bloomSize]uint8{}
	f.stack = f.stack[:0]
}

// Depth returns the number of elements pushed.
func (f *BloomFilter) Depth() int {
	return len(f.stack)
}

// PushElement inserts the hashes of an element's name, id and classes.
func (f *BloomFilter) PushElement(el *html.Node) {
	hashes := ElementHashes(el, f.quirks)
	for _, h := range hashes {
		f.Insert(h)
	}
	f.stack = append(f.stack, hashes)
}

// PopElement removes the hashes of the element pushed last.
func (f *BloomFilter) PopElement() {
	if len(f.stack) == 0 {
		tracer().Errorf("bloom filter: pop from empty stack")
		return
	}
	top := f.stack[len(f.stack)-1]
	for _, h := range top {
		f.Remove(h)
	}
	f.stack = f.stack[:len(f.stack)-1]
}

// ElementHashes returns the hashes of an element's name, id and classes.
func ElementHashes(el *html.Node, quirks QuirksMode) []uint32 {
	if el == nil || el.Type != html.ElementNode {
		return nil
	}
	hashes := []uint32{TagHash(el.Data)}
	for _, a := range el.Attr {
		if a.Namespace != "" {
			continue
		}
		switch a.Key {
		case "id":
			if a.Val != "" {
				hashes = append(hashes, IDHash(a.Val, quirks))
			}
		case "class":
			for _, cl := range strings.Fields(a.Val) {
				hashes = append(hashes, ClassHash(cl, quirks))
			}
		}
	}
	return hashes
}
