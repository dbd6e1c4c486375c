package css

import (
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

var initialSpecified [style.NumLonghands]Value

func init() {
	for l := style.Longhand(0); l < style.NumLonghands; l++ {
		v, err := ParseValue(l, style.InitialProperty(l))
		if err != nil {
			panic("initial value not parsable: " + err.Error())
		}
		initialSpecified[l] = v
	}
}

// InitialValue returns the initial value of a longhand, in specified form.
// Some initial values have to be computed (e.g. 'currentcolor' for borders);
// use ComputeValue for this.
func InitialValue(l style.Longhand) Value {
	if !l.Valid() {
		return nil
	}
	return initialSpecified[l]
}

// Context holds the values the computation of a value may depend on,
// apart from the values already computed for the element itself.
type Context struct {
	Parent       *ComputedValues // computed values of the parent; nil at the root
	RootFontSize dimen.DU        // font size of the root element, if already known
}

func (ctx Context) parentFontSize() dimen.DU {
	if ctx.Parent == nil {
		return MediumFontSize
	}
	return ctx.Parent.FontSize()
}

// ComputeValue computes a specified value of a longhand l.
// cv holds the values computed so far for the element: for properties of
// the early phase these are the early properties preceding l, for all
// other properties it contains all the early ones.
//
// CSS-wide keywords have to be resolved by the caller; ComputeValue will
// return them unchanged.
func ComputeValue(l style.Longhand, specified Value, cv *ComputedValues, ctx Context) Value {
	rem := ctx.RootFontSize
	if rem == 0 {
		if l == style.FontSize {
			rem = MediumFontSize
		} else {
			rem = cv.FontSize()
		}
	}
	switch v := specified.(type) {
	case DimenT:
		if l == style.FontSize {
			parent := ctx.parentFontSize()
			return v.Resolve(parent, rem)
		}
		return v.Resolve(cv.FontSize(), rem)
	case BorderWidthT:
		if v.IsKeyword() {
			return v
		}
		return BorderWidthLength(v.d.Resolve(cv.FontSize(), rem))
	case LineHeightT:
		if v.IsNormal() || v.IsNumber() {
			return v
		}
		if v.d.IsPercent() {
			return LineHeightDimen(JustDimen(v.Height(cv.FontSize())))
		}
		return LineHeightDimen(v.d.Resolve(cv.FontSize(), rem))
	case FontWeight:
		if !v.IsRelative() {
			return v
		}
		parent := FontWeightNormal
		if ctx.Parent != nil {
			parent = ctx.Parent.FontWeight()
		}
		return v.RelativeTo(parent)
	case ColorT:
		if !v.IsCurrentColor() {
			return v
		}
		if l == style.Color {
			if ctx.Parent == nil {
				return ComputeValue(l, InitialValue(style.Color), cv, ctx)
			}
			return ctx.Parent.Color()
		}
		return cv.Color()
	}
	return specified
}
