package css

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/tyse/core/dimen"
)

const (
	dimenUnset uint32 = 0

	dimenAbsolute uint32 = 0x0001
	dimenAuto     uint32 = 0x0002
	dimenNone     uint32 = 0x0003 // keyword 'none', e.g. for max-width
	dimenNormal   uint32 = 0x0004 // keyword 'normal', e.g. for letter-spacing
	kindMask      uint32 = 0x000f

	dimenEM      uint32 = 0x0100
	dimenREM     uint32 = 0x0400
	dimenPercent uint32 = 0x0900
	relativeMask uint32 = 0xff00
)

// PX is the size of a CSS pixel: 1px = 0.75pt.
const PX = dimen.PT * 3 / 4

// MediumFontSize is the size of font-size 'medium' = 16px.
const MediumFontSize = 16 * PX

// DimenT is an option type for CSS dimensions.
type DimenT struct {
	d     dimen.DU
	f     float64 // factor for font-relative units or percentage value
	flags uint32
}

/*
type DimenT
	= Auto
	| None
	| Normal
	| JustDimen dimen
	| Percentage n
	| FontRel unit n
*/

// Auto creates a CSS dimension of value `auto`.
func Auto() DimenT {
	return DimenT{flags: dimenAuto}
}

// NoDimen creates a CSS dimension of value `none`.
func NoDimen() DimenT {
	return DimenT{flags: dimenNone}
}

// Normal creates a CSS dimension of value `normal`.
func Normal() DimenT {
	return DimenT{flags: dimenNormal}
}

// JustDimen creates a CSS dimension with a fixed value of x.
func JustDimen(x dimen.DU) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Percentage creates a CSS dimension with a %-relative value.
func Percentage(n float64) DimenT {
	return DimenT{f: n, flags: dimenPercent}
}

// FontRelative creates a dimension of n em.
func FontRelative(n float64) DimenT {
	return DimenT{f: n, flags: dimenEM}
}

// RootFontRelative creates a dimension of n rem.
func RootFontRelative(n float64) DimenT {
	return DimenT{f: n, flags: dimenREM}
}

// IsUnset is true for the zero value of DimenT.
func (d DimenT) IsUnset() bool {
	return d.flags == dimenUnset
}

// IsAuto returns true if d is `auto`.
func (d DimenT) IsAuto() bool {
	return d.flags == dimenAuto
}

// IsNone returns true if d is `none`.
func (d DimenT) IsNone() bool {
	return d.flags == dimenNone
}

// IsNormal returns true if d is `normal`.
func (d DimenT) IsNormal() bool {
	return d.flags == dimenNormal
}

// IsAbsolute returns true if d is a fixed length.
func (d DimenT) IsAbsolute() bool {
	return d.flags == dimenAbsolute
}

// IsPercent returns true if d is a percentage.
func (d DimenT) IsPercent() bool {
	return d.flags == dimenPercent
}

// IsFontRelative returns true for em and rem values.
func (d DimenT) IsFontRelative() bool {
	return d.flags == dimenEM || d.flags == dimenREM
}

// Unwrap returns the fixed length of d, or 0 for non-absolute dimensions.
func (d DimenT) Unwrap() dimen.DU {
	if d.flags != dimenAbsolute {
		return 0
	}
	return d.d
}

// Factor returns the percentage value or the number of (r)em units.
func (d DimenT) Factor() float64 {
	return d.f
}

// Resolve converts font-relative dimensions to fixed ones, given the
// reference size for em and rem units. Other dimensions are returned
// unchanged.
func (d DimenT) Resolve(em, rem dimen.DU) DimenT {
	switch d.flags {
	case dimenEM:
		return JustDimen(scale(em, d.f))
	case dimenREM:
		return JustDimen(scale(rem, d.f))
	}
	return d
}

// Equal compares two dimensions.
func (d DimenT) Equal(other DimenT) bool {
	return d == other
}

func (d DimenT) String() string {
	switch d.flags {
	case dimenUnset:
		return "<unset>"
	case dimenAuto:
		return "auto"
	case dimenNone:
		return "none"
	case dimenNormal:
		return "normal"
	case dimenAbsolute:
		return fmtFloat(float64(d.d)/float64(PX)) + "px"
	case dimenPercent:
		return fmtFloat(d.f) + "%"
	case dimenEM:
		return fmtFloat(d.f) + "em"
	case dimenREM:
		return fmtFloat(d.f) + "rem"
	}
	return fmt.Sprintf("<dimen %#x>", d.flags)
}

func scale(du dimen.DU, f float64) dimen.DU {
	return dimen.DU(float64(du) * f)
}

func fmtFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// ---------------------------------------------------------------------------

// Match starts a match expression for a dimension, to be used in a switch.
//
//     switch m := d.Match(); m {
//     case m.Just(&du): …
//     case m.IsKind(css.Auto()): …
//     }
func (d DimenT) Match() *Matcher {
	return &Matcher{dimen: d}
}

// Matcher is part of matching DimenT values. It is intended to be created
// using DimenT.Match() only.
type Matcher struct {
	dimen DimenT
}

// IsKind matches if the dimension is of the same kind as d.
func (m *Matcher) IsKind(d DimenT) *Matcher {
	switch {
	case (m.dimen.flags&kindMask) == (d.flags&kindMask) && d.flags&kindMask != 0:
		return m
	case (m.dimen.flags&relativeMask > 0) && (d.flags&relativeMask > 0):
		if (m.dimen.flags == dimenPercent) != (d.flags == dimenPercent) {
			return nil
		}
		return m
	}
	return nil
}

// Just matches fixed dimensions and extracts their value.
func (m *Matcher) Just(du *dimen.DU) *Matcher {
	if m.dimen.flags&dimenAbsolute > 0 && m.dimen.flags&kindMask == dimenAbsolute {
		if du != nil {
			*du = m.dimen.d
		}
		return m
	}
	return nil
}

// Percentage matches percentages and extracts their value.
func (m *Matcher) Percentage(p *float64) *Matcher {
	if m.dimen.flags == dimenPercent {
		if p != nil {
			*p = m.dimen.f
		}
		return m
	}
	return nil
}

// --- Expression matching ---------------------------------------------------

// DimenPatterns holds the results of a match expression for each kind of
// dimension.
type DimenPatterns[T any] struct {
	Auto    T
	None    T
	Just    T
	Percent T
	Default T
}

// DimenPattern starts an expression match on dimension d.
func DimenPattern[T any](d DimenT) *MatchExpr[T] {
	return &MatchExpr[T]{dimen: d}
}

// MatchExpr is part of pattern matching for DimenT values.
type MatchExpr[T any] struct {
	dimen DimenT
}

// OneOf selects the pattern matching the kind of the dimension.
func (m *MatchExpr[T]) OneOf(patterns DimenPatterns[T]) T {
	switch m.dimen.flags {
	case dimenAuto:
		return patterns.Auto
	case dimenAbsolute:
		return patterns.Just
	case dimenNone:
		return patterns.None
	case dimenPercent:
		return patterns.Percent
	}
	return patterns.Default
}

// With extracts the fixed length of the dimension, if any.
func (m *MatchExpr[T]) With(du *dimen.DU) *MatchExpr[T] {
	*du = m.dimen.d
	return m
}

// Const returns x.
func (m *MatchExpr[T]) Const(x T) T {
	return x
}
