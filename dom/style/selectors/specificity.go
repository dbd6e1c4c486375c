package selectors

import (
	"fmt"
	"math"
)

// Specificity is a selector's specificity (a, b, c), packed into an integer
// so that specificities compare by integer comparison. Each component
// saturates at 1023.
type Specificity uint32

const (
	specificityBits = 10
	specificityMax  = 1<<specificityBits - 1
)

// InlineSpecificity is the specificity of declarations from style
// attributes. It exceeds the specificity of every selector.
const InlineSpecificity Specificity = math.MaxUint32

// NewSpecificity packs a specificity from
// a = number of ids, b = number of classes, attributes and pseudo-classes,
// c = number of element names and pseudo-elements.
func NewSpecificity(a, b, c int) Specificity {
	clamp := func(n int) uint32 {
		if n < 0 {
			return 0
		}
		if n > specificityMax {
			return specificityMax
		}
		return uint32(n)
	}
	return Specificity(clamp(a)<<(2*specificityBits) | clamp(b)<<specificityBits | clamp(c))
}

// Components returns the (a, b, c) components of a specificity.
func (s Specificity) Components() (a, b, c int) {
	return int(s>>(2*specificityBits)) & specificityMax,
		int(s>>specificityBits) & specificityMax,
		int(s) & specificityMax
}

func (s Specificity) String() string {
	if s == InlineSpecificity {
		return "(inline)"
	}
	a, b, c := s.Components()
	return fmt.Sprintf("(%d,%d,%d)", a, b, c)
}
