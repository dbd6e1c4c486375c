package css

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/npillmayer/tyse/core/dimen"
)

// Value is a typed value of a CSS longhand property, either declared or
// computed. Concrete types are DimenT, DisplayMode, PositionT, BorderStyle,
// BorderWidthT, ColorT, FontFamilyT, FontStyle, FontWeight, LineHeightT,
// Keyword and WideKeyword.
type Value interface {
	String() string
}

// WideKeyword is one of the CSS-wide keywords, which are valid for every
// property. 'revert' is mapped to Unset.
type WideKeyword uint8

// CSS-wide keywords.
const (
	Inherit WideKeyword = iota + 1
	Initial
	Unset
)

func (kw WideKeyword) String() string {
	switch kw {
	case Inherit:
		return "inherit"
	case Initial:
		return "initial"
	case Unset:
		return "unset"
	}
	return "<invalid keyword>"
}

// --- Borders ---------------------------------------------------------------

// BorderStyle is an enum type for CSS border-*-style properties.
type BorderStyle uint8

// Values for BorderStyle.
const (
	BorderStyleNone BorderStyle = iota
	BorderStyleHidden
	BorderStyleDotted
	BorderStyleDashed
	BorderStyleSolid
	BorderStyleDouble
	BorderStyleGroove
	BorderStyleRidge
	BorderStyleInset
	BorderStyleOutset
)

var borderStyleNames = [...]string{
	"none", "hidden", "dotted", "dashed", "solid", "double", "groove",
	"ridge", "inset", "outset",
}

func (bs BorderStyle) String() string {
	if int(bs) < len(borderStyleNames) {
		return borderStyleNames[bs]
	}
	return fmt.Sprintf("<border-style %d>", uint8(bs))
}

// IsVisible is false for 'none' and 'hidden'.
func (bs BorderStyle) IsVisible() bool {
	return bs != BorderStyleNone && bs != BorderStyleHidden
}

// ParseBorderStyle parses a border style keyword.
func ParseBorderStyle(s string) (BorderStyle, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range borderStyleNames {
		if name == s {
			return BorderStyle(i), nil
		}
	}
	return BorderStyleNone, fmt.Errorf("%w: border style %q", ErrInvalidValue, s)
}

type borderWidthKeyword uint8

const (
	bwLength borderWidthKeyword = iota
	bwThin
	bwMedium
	bwThick
)

// BorderWidthT is a type for CSS border-*-width properties: either one of the
// keywords 'thin', 'medium', 'thick', or a length.
type BorderWidthT struct {
	kw borderWidthKeyword
	d  DimenT
}

// Border width keyword values.
var (
	BorderWidthThin   = BorderWidthT{kw: bwThin}
	BorderWidthMedium = BorderWidthT{kw: bwMedium}
	BorderWidthThick  = BorderWidthT{kw: bwThick}
)

// BorderWidthLength creates a border width from a length.
func BorderWidthLength(d DimenT) BorderWidthT {
	return BorderWidthT{kw: bwLength, d: d}
}

// IsKeyword is true for 'thin', 'medium' and 'thick'.
func (bw BorderWidthT) IsKeyword() bool {
	return bw.kw != bwLength
}

// Dimen returns the length of a border width. Keywords are mapped to
// 1px, 3px and 5px respectively.
func (bw BorderWidthT) Dimen() DimenT {
	switch bw.kw {
	case bwThin:
		return JustDimen(1 * PX)
	case bwMedium:
		return JustDimen(3 * PX)
	case bwThick:
		return JustDimen(5 * PX)
	}
	return bw.d
}

func (bw BorderWidthT) String() string {
	switch bw.kw {
	case bwThin:
		return "thin"
	case bwMedium:
		return "medium"
	case bwThick:
		return "thick"
	}
	return bw.d.String()
}

// --- Colors ----------------------------------------------------------------

type colorKind uint8

const (
	colorRGBA colorKind = iota
	colorCurrent
	colorCanvasText
	colorCanvas
)

// ColorT is a type for CSS color properties. Besides RGBA colors it may
// hold the keyword 'currentcolor' or one of the system colors 'canvastext'
// and 'canvas'.
type ColorT struct {
	c    color.RGBA
	kind colorKind
}

// RGBA creates a color value from an RGBA color.
func RGBA(c color.RGBA) ColorT {
	return ColorT{c: c}
}

// CurrentColor creates a color value of 'currentcolor'.
func CurrentColor() ColorT {
	return ColorT{kind: colorCurrent}
}

// CanvasText creates the system color 'canvastext'.
func CanvasText() ColorT {
	return ColorT{kind: colorCanvasText}
}

// Canvas creates the system color 'canvas'.
func Canvas() ColorT {
	return ColorT{kind: colorCanvas}
}

// Transparent is the color 'transparent'.
var Transparent = ColorT{c: color.RGBA{}}

// IsCurrentColor is true for 'currentcolor'.
func (c ColorT) IsCurrentColor() bool {
	return c.kind == colorCurrent
}

// IsSystemColor is true for 'canvastext' and 'canvas'.
func (c ColorT) IsSystemColor() bool {
	return c.kind == colorCanvasText || c.kind == colorCanvas
}

// RGBA returns the RGBA color of c. System colors are resolved to black text
// on a white canvas. 'currentcolor' has no RGBA color of its own and
// returns black.
func (c ColorT) RGBA() color.RGBA {
	switch c.kind {
	case colorCanvasText, colorCurrent:
		return color.RGBA{A: 0xff}
	case colorCanvas:
		return color.RGBA{0xff, 0xff, 0xff, 0xff}
	}
	return c.c
}

func (c ColorT) String() string {
	switch c.kind {
	case colorCurrent:
		return "currentcolor"
	case colorCanvasText:
		return "canvastext"
	case colorCanvas:
		return "canvas"
	}
	if c.c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.c.R, c.c.G, c.c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.c.R, c.c.G, c.c.B, c.c.A)
}

// --- Fonts -----------------------------------------------------------------

// FontFamilyT is a prioritized list of font family names.
type FontFamilyT []string

func (ff FontFamilyT) String() string {
	var b strings.Builder
	for i, f := range ff {
		if i > 0 {
			b.WriteString(", ")
		}
		if strings.ContainsRune(f, ' ') {
			b.WriteString(strconv.Quote(f))
		} else {
			b.WriteString(f)
		}
	}
	return b.String()
}

// Equal compares two font family lists.
func (ff FontFamilyT) Equal(other FontFamilyT) bool {
	if len(ff) != len(other) {
		return false
	}
	for i := range ff {
		if ff[i] != other[i] {
			return false
		}
	}
	return true
}

// FontStyle is an enum type for CSS property font-style.
type FontStyle uint8

// Values for FontStyle.
const (
	FontStyleNormal FontStyle = iota
	FontStyleItalic
	FontStyleOblique
)

func (fs FontStyle) String() string {
	switch fs {
	case FontStyleItalic:
		return "italic"
	case FontStyleOblique:
		return "oblique"
	}
	return "normal"
}

// FontWeight is a numeric font weight in the range 1…1000.
// The relative keywords 'bolder' and 'lighter' are represented by special
// values, which are replaced by numeric weights during computation.
type FontWeight uint16

// Special font weights.
const (
	FontWeightNormal  FontWeight = 400
	FontWeightBold    FontWeight = 700
	FontWeightBolder  FontWeight = 0xfffe
	FontWeightLighter FontWeight = 0xffff
)

// IsRelative is true for 'bolder' and 'lighter'.
func (fw FontWeight) IsRelative() bool {
	return fw == FontWeightBolder || fw == FontWeightLighter
}

// RelativeTo returns the computed weight of fw relative to the weight
// of the parent, following the table in CSS Fonts Level 4.
func (fw FontWeight) RelativeTo(parent FontWeight) FontWeight {
	switch fw {
	case FontWeightBolder:
		switch {
		case parent < 350:
			return 400
		case parent < 550:
			return 700
		case parent < 900:
			return 900
		}
		return parent
	case FontWeightLighter:
		switch {
		case parent < 100:
			return parent
		case parent < 550:
			return 100
		case parent < 750:
			return 400
		}
		return 700
	}
	return fw
}

func (fw FontWeight) String() string {
	switch fw {
	case FontWeightBolder:
		return "bolder"
	case FontWeightLighter:
		return "lighter"
	}
	return strconv.Itoa(int(fw))
}

// --- Text ------------------------------------------------------------------

// LineHeightT is a type for CSS property line-height: 'normal', a number
// (a factor of the font size) or a length.
type LineHeightT struct {
	normal bool
	number float64
	d      DimenT
}

// NormalLineHeight is line-height 'normal'.
var NormalLineHeight = LineHeightT{normal: true}

// LineHeightNumber creates a line height as a multiple of the font size.
func LineHeightNumber(n float64) LineHeightT {
	return LineHeightT{number: n}
}

// LineHeightDimen creates a line height from a length or percentage.
func LineHeightDimen(d DimenT) LineHeightT {
	return LineHeightT{d: d}
}

// IsNormal is true for 'normal'.
func (lh LineHeightT) IsNormal() bool {
	return lh.normal
}

// IsNumber is true if the line height is a multiple of the font size.
func (lh LineHeightT) IsNumber() bool {
	return !lh.normal && lh.d.IsUnset()
}

// Number returns the factor of a numeric line height.
func (lh LineHeightT) Number() float64 {
	return lh.number
}

// Dimen returns the length of a non-numeric line height.
func (lh LineHeightT) Dimen() DimenT {
	return lh.d
}

// Height returns the line height for a given font size. 'normal' is
// taken as 1.2.
func (lh LineHeightT) Height(fontSize dimen.DU) dimen.DU {
	switch {
	case lh.normal:
		return scale(fontSize, 1.2)
	case lh.IsNumber():
		return scale(fontSize, lh.number)
	case lh.d.IsPercent():
		return scale(fontSize, lh.d.f/100)
	}
	return lh.d.Resolve(fontSize, fontSize).Unwrap()
}

func (lh LineHeightT) String() string {
	switch {
	case lh.normal:
		return "normal"
	case lh.IsNumber():
		return fmtFloat(lh.number)
	}
	return lh.d.String()
}

// Keyword is a value for properties taking one of a fixed set of keywords,
// e.g. text-align or white-space.
type Keyword string

func (kw Keyword) String() string {
	return string(kw)
}

var keywordSets = map[string][]string{
	"float":       {"none", "left", "right", "inline-start", "inline-end"},
	"visibility":  {"visible", "hidden", "collapse"},
	"text-align":  {"start", "end", "left", "right", "center", "justify", "match-parent"},
	"white-space": {"normal", "pre", "nowrap", "pre-wrap", "break-spaces", "pre-line"},
	"direction":   {"ltr", "rtl"},
}
