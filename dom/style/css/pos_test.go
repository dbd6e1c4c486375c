package css_test

import (
	"testing"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/styling/dom/style/css"
	"github.com/npillmayer/tyse/core/dimen"
)

func TestPositionPredicates(t *testing.T) {
	if !css.Position("ABSOLUTE").IsAbsolute() {
		t.Errorf("expected position absolute to be absolute")
	}
	if css.Position("static").IsAbsolute() {
		t.Errorf("expected position static not to be absolute")
	}
	if !css.Position("bogus").IsUnset() {
		t.Errorf("expected illegal position to be unset")
	}
	p := css.Relative(nil).WithOffsets([]css.PositionOffset{{Dim: css.JustDimen(dimen.PT), Dir: css.Left}})
	if p.Offsets()[css.Left].Dim.Unwrap() != dimen.PT {
		t.Errorf("expected left offset to be 1pt, is %v", p.Offsets()[css.Left])
	}
	if len(p.Offsets()) != 4 || p.Offsets()[css.Top].Dir != css.Top {
		t.Errorf("expected offsets to be normalized to 4 sides, are %v", p.Offsets())
	}
	zero := []css.PositionOffset{{Dim: css.JustDimen(0), Dir: css.Top}}
	if css.Static().WithOffsets(zero).Offsets() != nil {
		t.Errorf("expected static position to ignore offsets")
	}
}

func TestComputedPositionOffsets(t *testing.T) {
	cv := css.NewComputedValues()
	ctx := css.Context{RootFontSize: 16 * css.PX}
	cv.Set(style.FontSize, css.JustDimen(10*css.PX))
	for _, d := range []struct {
		l     style.Longhand
		value style.Property
	}{
		{style.Position, "absolute"},
		{style.Top, "2em"},
		{style.Left, "5px"},
	} {
		v, err := css.ParseValue(d.l, d.value)
		if err != nil {
			t.Fatalf("cannot parse %s: %v", d.l, err)
		}
		cv.Set(d.l, css.ComputeValue(d.l, v, cv, ctx))
	}
	pos := cv.Position()
	if !pos.IsAbsolute() {
		t.Fatalf("expected computed position to be absolute, is %v", pos)
	}
	if top := pos.Offsets()[css.Top].Dim; top != css.JustDimen(20*css.PX) {
		t.Errorf("expected top offset of 2em = 20px, is %v", top)
	}
	if left := cv.Offset(css.Left); left != css.JustDimen(5*css.PX) {
		t.Errorf("expected left offset of 5px, is %v", left)
	}
	if !pos.Offsets()[css.Bottom].Dim.IsAuto() {
		t.Errorf("expected bottom offset to be auto, is %v", pos.Offsets()[css.Bottom].Dim)
	}
	if css.NewComputedValues().Position().Offsets() != nil {
		t.Errorf("expected initial static position to carry no offsets")
	}
}
