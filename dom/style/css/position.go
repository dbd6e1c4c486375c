package css

import (
	"fmt"

	"github.com/npillmayer/styling/dom/style"
)

// position is an enum type for the CSS position property.
type position uint16

// Enum values for type Position
const (
	positionUnset    position = iota
	positionStatic            // CSS static (default)
	positionRelative          // CSS relative
	positionAbsolute          // CSS absolute
	positionFixed             // CSS fixed
	//PositionFloatLeft           // CSS float property
	//PositionFloatRight          // CSS float property
	//PositionSticky              // CSS sticky, currently mapped to relative
)

// PositionT is an option type for CSS positions.
type PositionT struct {
	offsets []PositionOffset
	kind    position
}

type PositionOffset struct {
	Dim DimenT
	Dir PosDir
}

// PosDir is either Top, Right, Bottom or Left.
type PosDir uint8

const (
	Top PosDir = iota
	Right
	Bottom
	Left
)

// NormalizeOffsets normalizes offset properties (Top, Right, Bottom, Left) into
// a 4-way slice, ordered by PDir. Invalid PDir-s are silently dropped.
func NormalizeOffsets(offsets []PositionOffset) []PositionOffset {
	norm := make([]PositionOffset, 4)
	for i := Top; i <= Left; i++ {
		norm[i].Dir = i
	}
	for _, o := range offsets {
		if o.Dir >= Top && o.Dir <= Left {
			norm[int(o.Dir)] = o
		}
	}
	return norm
}

/*
type PositionT
	= Undefined
	| Static
	| Relative top right bottom left
	| Absolute top right bottom left
	| Fixed top right bottom left
*/

// Static creates a CSS position of value `static`.
func Static() PositionT {
	return PositionT{kind: positionStatic}
}

// Relative creates a CSS position of value `relative`, given optional offsets.
// offsets may be provied partially or none at all.
func Relative(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionRelative, offsets: NormalizeOffsets(offsets)}
}

// Absolute creates a CSS position of value `absolute`, given optional offsets.
// offsets may be provied partially or none at all.
func Absolute(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionAbsolute, offsets: NormalizeOffsets(offsets)}
}

// Fixed creates a CSS position of value `fixed`, given optional offsets.
// offsets may be provied partially or none at all.
func Fixed(offsets []PositionOffset) PositionT {
	return PositionT{kind: positionFixed, offsets: NormalizeOffsets(offsets)}
}

var positionMap map[position]string = map[position]string{
	positionStatic:   "static",
	positionRelative: "relative",
	positionAbsolute: "absolute",
	positionFixed:    "fixed",
	//PositionFloatLeft:  "float",
	//PositionFloatRight: "float",
	//PositionSticky:     "sticky",
}

var positionStringMap map[string]position = map[string]position{
	"static":   positionStatic,
	"relative": positionRelative,
	"absolute": positionAbsolute,
	"fixed":    positionFixed,
	//"float":    PositionFloatLeft,
	//"sticky":   PositionSticky,
}

// Position returns an optional position type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset position.
func Position(p style.Property) PositionT {
	p = p.Normalized()
	switch p {
	case style.NullStyle:
		return PositionT{}
	case "static":
		return Static()
	case "relative":
		return Relative(nil)
	case "absolute":
		return Absolute(nil)
	case "fixed":
		return Fixed(nil)
	}
	return PositionT{}
}

// ---------------------------------------------------------------------------

// IsUnset returns true if p is unset.
func (p PositionT) IsUnset() bool {
	return p.kind == positionUnset
}

// IsRelative returns true if p represents a valid relative position.
func (p PositionT) IsRelative() bool {
	return p.kind == positionRelative
}

// IsAbsolute returns true if d represents a valid absolute position.
func (p PositionT) IsAbsolute() bool {
	return p.kind == positionAbsolute
}

// IsFixed returns true if d represents a fixed position.
func (p PositionT) IsFixed() bool {
	return p.kind == positionFixed
}

// IsStatic returns true if p represents the static position.
func (p PositionT) IsStatic() bool {
	return p.kind == positionStatic
}

// Offsets returns the offsets of a non-static position, ordered
// by PosDir.
func (p PositionT) Offsets() []PositionOffset {
	return p.offsets
}

// WithOffsets returns a copy of p with offsets set. Static and unset
// positions ignore offsets.
func (p PositionT) WithOffsets(offsets []PositionOffset) PositionT {
	if p.kind == positionUnset || p.kind == positionStatic {
		return p
	}
	return PositionT{kind: p.kind, offsets: NormalizeOffsets(offsets)}
}

// Equal compares two positions, including offsets.
func (p PositionT) Equal(other PositionT) bool {
	if p.kind != other.kind || len(p.offsets) != len(other.offsets) {
		return false
	}
	for i := range p.offsets {
		if p.offsets[i] != other.offsets[i] {
			return false
		}
	}
	return true
}

func (p PositionT) String() string {
	if p.kind == positionUnset {
		return "<unset>"
	}
	return positionMap[p.kind]
}

func (dir PosDir) String() string {
	switch dir {
	case Top:
		return "top"
	case Right:
		return "right"
	case Bottom:
		return "bottom"
	case Left:
		return "left"
	}
	return fmt.Sprintf("<dir %d>", uint8(dir))
}
