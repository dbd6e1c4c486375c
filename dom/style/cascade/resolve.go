package cascade

import (
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/styling/dom/style/cssom"
	"github.com/npillmayer/tyse/core/dimen"
)

// Resolve computes the values of all longhands for an element, given its
// applicable declaration blocks and the computed values of its parent.
// parent is nil for the root element. rootFontSize is the computed font
// size of the root element, or 0 when resolving the root itself.
//
// For every longhand, the value is the winning declared value, or, if
// there is none, the parent's value for inherited properties and the
// initial value otherwise.
func Resolve(adbs []cssom.ApplicableDeclarationBlock, parent *css.ComputedValues,
	rootFontSize dimen.DU) *css.ComputedValues {
	//
	pc := NewPropertyCascade()
	for _, adb := range adbs {
		pc.Add(adb)
	}
	return pc.Compute(parent, rootFontSize)
}

// Compute computes the values of all longhands from the winning
// declarations, early phase first.
func (pc *PropertyCascade) Compute(parent *css.ComputedValues, rootFontSize dimen.DU) *css.ComputedValues {
	cv := css.NewComputedValues()
	ctx := css.Context{Parent: parent, RootFontSize: rootFontSize}
	for _, l := range style.EarlyLonghands() {
		cv.Set(l, pc.computeLonghand(l, cv, ctx))
	}
	for _, l := range style.OtherLonghands() {
		cv.Set(l, pc.computeLonghand(l, cv, ctx))
	}
	return cv
}

func (pc *PropertyCascade) computeLonghand(l style.Longhand, cv *css.ComputedValues, ctx css.Context) css.Value {
	specified, ok := pc.Winner(l)
	if !ok {
		if l.Inherited() {
			specified = css.Inherit
		} else {
			specified = css.Initial
		}
	}
	if kw, isKeyword := specified.(css.WideKeyword); isKeyword {
		switch kw {
		case css.Unset:
			if l.Inherited() {
				return inherited(l, cv, ctx)
			}
			return initial(l, cv, ctx)
		case css.Inherit:
			return inherited(l, cv, ctx)
		default:
			return initial(l, cv, ctx)
		}
	}
	return css.ComputeValue(l, specified, cv, ctx)
}

// inherited returns the parent's computed value, or the initial value at
// the root.
func inherited(l style.Longhand, cv *css.ComputedValues, ctx css.Context) css.Value {
	if ctx.Parent != nil {
		if v := ctx.Parent.Value(l); v != nil {
			return v
		}
		tracer().Debugf("parent has no computed value for %s", l)
	}
	return initial(l, cv, ctx)
}

func initial(l style.Longhand, cv *css.ComputedValues, ctx css.Context) css.Value {
	return css.ComputeValue(l, css.InitialValue(l), cv, ctx)
}
