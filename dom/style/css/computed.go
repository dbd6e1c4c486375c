package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
)

// ComputedValues holds the computed values for all the longhands of an
// element. It is written once by the cascade and read by layout.
//
// Accessors for values which have not been set (which should not happen
// for a cascaded element) return the computed initial value.
type ComputedValues struct {
	values [style.NumLonghands]Value
}

// NewComputedValues creates an empty set of computed values.
func NewComputedValues() *ComputedValues {
	return &ComputedValues{}
}

// Value returns the computed value for a longhand, or nil if unset.
func (cv *ComputedValues) Value(l style.Longhand) Value {
	if cv == nil || !l.Valid() {
		return nil
	}
	return cv.values[l]
}

// Set sets the computed value for a longhand.
func (cv *ComputedValues) Set(l style.Longhand, v Value) {
	if !l.Valid() {
		tracer().Errorf("cannot set value for invalid longhand %d", l)
		return
	}
	cv.values[l] = v
}

// IsComplete returns true if all longhands have a value.
func (cv *ComputedValues) IsComplete() bool {
	for _, v := range cv.values {
		if v == nil {
			return false
		}
	}
	return true
}

// Equal compares two sets of computed values.
func (cv *ComputedValues) Equal(other *ComputedValues) bool {
	if cv == nil || other == nil {
		return cv == other
	}
	for l := range cv.values {
		if !valueEqual(cv.values[l], other.values[l]) {
			return false
		}
	}
	return true
}

func valueEqual(a, b Value) bool {
	switch va := a.(type) {
	case FontFamilyT:
		vb, ok := b.(FontFamilyT)
		return ok && va.Equal(vb)
	case PositionT:
		vb, ok := b.(PositionT)
		return ok && va.Equal(vb)
	}
	switch b.(type) {
	case FontFamilyT, PositionT:
		return false
	}
	return a == b
}

// Property returns the computed value of a longhand in CSS notation.
func (cv *ComputedValues) Property(l style.Longhand) style.Property {
	v := cv.Value(l)
	if v == nil {
		return style.NullStyle
	}
	return style.Property(v.String())
}

func (cv *ComputedValues) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for l, v := range cv.values {
		if v == nil {
			continue
		}
		if !first {
			b.WriteString("; ")
		}
		first = false
		fmt.Fprintf(&b, "%s: %s", style.Longhand(l), v)
	}
	b.WriteString("}")
	return b.String()
}

// value returns the computed value for l, falling back to the computed
// initial value.
func (cv *ComputedValues) value(l style.Longhand) Value {
	if v := cv.Value(l); v != nil {
		if _, isKeyword := v.(WideKeyword); !isKeyword {
			return v
		}
	}
	return initialComputed(l)
}

func initialComputed(l style.Longhand) Value {
	v := InitialValue(l)
	switch l {
	case style.FontSize:
		return v.(DimenT).Resolve(MediumFontSize, MediumFontSize)
	case style.BorderTopColor, style.BorderRightColor, style.BorderBottomColor, style.BorderLeftColor:
		return InitialValue(style.Color)
	}
	return v
}

func (cv *ComputedValues) dimen(l style.Longhand) DimenT {
	d, _ := cv.value(l).(DimenT)
	return d
}

func (cv *ComputedValues) color(l style.Longhand) ColorT {
	c, _ := cv.value(l).(ColorT)
	return c
}

func (cv *ComputedValues) keyword(l style.Longhand) Keyword {
	kw, _ := cv.value(l).(Keyword)
	return kw
}

// --- Display ---------------------------------------------------------------

// Display returns the computed display mode.
func (cv *ComputedValues) Display() DisplayMode {
	d, _ := cv.value(style.Display).(DisplayMode)
	return d
}

// Position returns the computed position, including offsets from
// top, right, bottom and left.
func (cv *ComputedValues) Position() PositionT {
	p, _ := cv.value(style.Position).(PositionT)
	return p.WithOffsets([]PositionOffset{
		{Dim: cv.Top(), Dir: Top},
		{Dim: cv.Right(), Dir: Right},
		{Dim: cv.Bottom(), Dir: Bottom},
		{Dim: cv.Left(), Dir: Left},
	})
}

func (cv *ComputedValues) Float() Keyword      { return cv.keyword(style.Float) }
func (cv *ComputedValues) Visibility() Keyword { return cv.keyword(style.Visibility) }

// --- Dimensions ------------------------------------------------------------

func (cv *ComputedValues) Top() DimenT       { return cv.dimen(style.Top) }
func (cv *ComputedValues) Right() DimenT     { return cv.dimen(style.Right) }
func (cv *ComputedValues) Bottom() DimenT    { return cv.dimen(style.Bottom) }
func (cv *ComputedValues) Left() DimenT      { return cv.dimen(style.Left) }
func (cv *ComputedValues) Width() DimenT     { return cv.dimen(style.Width) }
func (cv *ComputedValues) Height() DimenT    { return cv.dimen(style.Height) }
func (cv *ComputedValues) MinWidth() DimenT  { return cv.dimen(style.MinWidth) }
func (cv *ComputedValues) MinHeight() DimenT { return cv.dimen(style.MinHeight) }
func (cv *ComputedValues) MaxWidth() DimenT  { return cv.dimen(style.MaxWidth) }
func (cv *ComputedValues) MaxHeight() DimenT { return cv.dimen(style.MaxHeight) }

// Offset returns one of top, right, bottom or left.
func (cv *ComputedValues) Offset(dir PosDir) DimenT {
	return cv.dimen(style.Top + style.Longhand(dir))
}

// --- Box model -------------------------------------------------------------

func (cv *ComputedValues) MarginTop() DimenT     { return cv.dimen(style.MarginTop) }
func (cv *ComputedValues) MarginRight() DimenT   { return cv.dimen(style.MarginRight) }
func (cv *ComputedValues) MarginBottom() DimenT  { return cv.dimen(style.MarginBottom) }
func (cv *ComputedValues) MarginLeft() DimenT    { return cv.dimen(style.MarginLeft) }
func (cv *ComputedValues) PaddingTop() DimenT    { return cv.dimen(style.PaddingTop) }
func (cv *ComputedValues) PaddingRight() DimenT  { return cv.dimen(style.PaddingRight) }
func (cv *ComputedValues) PaddingBottom() DimenT { return cv.dimen(style.PaddingBottom) }
func (cv *ComputedValues) PaddingLeft() DimenT   { return cv.dimen(style.PaddingLeft) }

// Margin returns the margin for one side of the box.
func (cv *ComputedValues) Margin(dir PosDir) DimenT {
	return cv.dimen(style.MarginTop + style.Longhand(dir))
}

// Padding returns the padding for one side of the box.
func (cv *ComputedValues) Padding(dir PosDir) DimenT {
	return cv.dimen(style.PaddingTop + style.Longhand(dir))
}

// BorderWidth returns the border width for one side of the box.
func (cv *ComputedValues) BorderWidth(dir PosDir) BorderWidthT {
	bw, _ := cv.value(style.BorderTopWidth + style.Longhand(dir)).(BorderWidthT)
	return bw
}

// BorderStyle returns the border style for one side of the box.
func (cv *ComputedValues) BorderStyle(dir PosDir) BorderStyle {
	bs, _ := cv.value(style.BorderTopStyle + style.Longhand(dir)).(BorderStyle)
	return bs
}

// BorderColor returns the border color for one side of the box.
func (cv *ComputedValues) BorderColor(dir PosDir) ColorT {
	return cv.color(style.BorderTopColor + style.Longhand(dir))
}

func (cv *ComputedValues) BorderTopWidth() BorderWidthT    { return cv.BorderWidth(Top) }
func (cv *ComputedValues) BorderRightWidth() BorderWidthT  { return cv.BorderWidth(Right) }
func (cv *ComputedValues) BorderBottomWidth() BorderWidthT { return cv.BorderWidth(Bottom) }
func (cv *ComputedValues) BorderLeftWidth() BorderWidthT   { return cv.BorderWidth(Left) }
func (cv *ComputedValues) BorderTopStyle() BorderStyle     { return cv.BorderStyle(Top) }
func (cv *ComputedValues) BorderRightStyle() BorderStyle   { return cv.BorderStyle(Right) }
func (cv *ComputedValues) BorderBottomStyle() BorderStyle  { return cv.BorderStyle(Bottom) }
func (cv *ComputedValues) BorderLeftStyle() BorderStyle    { return cv.BorderStyle(Left) }
func (cv *ComputedValues) BorderTopColor() ColorT          { return cv.BorderColor(Top) }
func (cv *ComputedValues) BorderRightColor() ColorT        { return cv.BorderColor(Right) }
func (cv *ComputedValues) BorderBottomColor() ColorT       { return cv.BorderColor(Bottom) }
func (cv *ComputedValues) BorderLeftColor() ColorT         { return cv.BorderColor(Left) }

// --- Colors and fonts ------------------------------------------------------

func (cv *ComputedValues) Color() ColorT           { return cv.color(style.Color) }
func (cv *ComputedValues) BackgroundColor() ColorT { return cv.color(style.BackgroundColor) }

// FontFamily returns the list of font families.
func (cv *ComputedValues) FontFamily() FontFamilyT {
	ff, _ := cv.value(style.FontFamily).(FontFamilyT)
	return ff
}

// FontSize returns the computed (absolute) font size.
func (cv *ComputedValues) FontSize() dimen.DU {
	d := cv.dimen(style.FontSize)
	if !d.IsAbsolute() {
		return MediumFontSize
	}
	return d.Unwrap()
}

func (cv *ComputedValues) FontStyle() FontStyle {
	fs, _ := cv.value(style.FontStyle).(FontStyle)
	return fs
}

func (cv *ComputedValues) FontWeight() FontWeight {
	fw, ok := cv.value(style.FontWeight).(FontWeight)
	if !ok || fw.IsRelative() {
		return FontWeightNormal
	}
	return fw
}

// --- Text ------------------------------------------------------------------

func (cv *ComputedValues) LineHeight() LineHeightT {
	lh, _ := cv.value(style.LineHeight).(LineHeightT)
	return lh
}

func (cv *ComputedValues) TextAlign() Keyword    { return cv.keyword(style.TextAlign) }
func (cv *ComputedValues) TextIndent() DimenT    { return cv.dimen(style.TextIndent) }
func (cv *ComputedValues) WhiteSpace() Keyword   { return cv.keyword(style.WhiteSpace) }
func (cv *ComputedValues) Direction() Keyword    { return cv.keyword(style.Direction) }
func (cv *ComputedValues) LetterSpacing() DimenT { return cv.dimen(style.LetterSpacing) }
func (cv *ComputedValues) WordSpacing() DimenT   { return cv.dimen(style.WordSpacing) }
