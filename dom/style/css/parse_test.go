package css

import (
	"image/color"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComponents(t *testing.T) {
	assert.Equal(t, []string{"1px", "solid", "rgb(1, 2, 3)"}, components(" 1px  solid rgb(1, 2, 3) "))
	assert.Equal(t, []string{`"Times New Roman"`, ",", "serif"}, components(`"Times New Roman", serif`))
	assert.Empty(t, components("   "))
}

func TestSplitDimension(t *testing.T) {
	for _, tc := range []struct{ in, num, unit string }{
		{"12px", "12", "px"},
		{"-1.5em", "-1.5", "em"},
		{"2EX", "2", "ex"},
		{"1e2pt", "1e2", "pt"},
	} {
		num, unit := splitDimension(tc.in)
		assert.Equal(t, tc.num, num, tc.in)
		assert.Equal(t, tc.unit, unit, tc.in)
	}
}

func TestParseLengths(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.css")
	defer teardown()
	//
	d, err := ParseLength("12pt")
	require.NoError(t, err)
	assert.Equal(t, JustDimen(12*dimen.PT), d)
	d, err = ParseLength("1in")
	require.NoError(t, err)
	assert.Equal(t, JustDimen(72*dimen.PT), d)
	d, err = ParseLength("2em")
	require.NoError(t, err)
	assert.Equal(t, FontRelative(2), d)
	d, err = ParseLength("50%")
	require.NoError(t, err)
	assert.Equal(t, Percentage(50), d)
	d, err = ParseLength("0")
	require.NoError(t, err)
	assert.Equal(t, JustDimen(0), d)
	_, err = ParseLength("12")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseLength("12furlong")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseLength("1px 2px")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseValueByLonghand(t *testing.T) {
	v, err := ParseValue(style.MarginTop, "auto")
	require.NoError(t, err)
	assert.Equal(t, Auto(), v)
	_, err = ParseValue(style.PaddingTop, "auto")
	assert.Error(t, err, "padding does not accept auto")
	_, err = ParseValue(style.PaddingTop, "-2px")
	assert.Error(t, err, "padding must not be negative")
	v, err = ParseValue(style.MaxWidth, "none")
	require.NoError(t, err)
	assert.True(t, v.(DimenT).IsNone())
	v, err = ParseValue(style.LetterSpacing, "normal")
	require.NoError(t, err)
	assert.True(t, v.(DimenT).IsNormal())
	v, err = ParseValue(style.TextAlign, "Center")
	require.NoError(t, err)
	assert.Equal(t, Keyword("center"), v)
	_, err = ParseValue(style.TextAlign, "middle")
	assert.ErrorIs(t, err, ErrInvalidValue)
	v, err = ParseValue(style.Display, "inline-block")
	require.NoError(t, err)
	assert.Equal(t, InlineMode|InnerBlockMode, v)
	v, err = ParseValue(style.Position, "fixed")
	require.NoError(t, err)
	assert.True(t, v.(PositionT).IsFixed())
	_, err = ParseValue(style.Position, "sticky")
	assert.Error(t, err)
}

func TestParseWideKeywords(t *testing.T) {
	for l := style.Longhand(0); l < style.NumLonghands; l++ {
		v, err := ParseValue(l, "inherit")
		require.NoError(t, err)
		assert.Equal(t, Inherit, v)
		v, err = ParseValue(l, "revert")
		require.NoError(t, err)
		assert.Equal(t, Unset, v)
	}
	_, err := ParseValue(style.Color, "  ")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseBorder(t *testing.T) {
	bs, err := ParseBorderStyle("DOTTED")
	require.NoError(t, err)
	assert.Equal(t, BorderStyleDotted, bs)
	bw, err := ParseBorderWidth("thin")
	require.NoError(t, err)
	assert.Equal(t, BorderWidthThin, bw)
	bw, err = ParseBorderWidth("2px")
	require.NoError(t, err)
	assert.False(t, bw.IsKeyword())
	assert.Equal(t, JustDimen(2*PX), bw.Dimen())
	_, err = ParseBorderWidth("10%")
	assert.Error(t, err)
}

func TestParseColors(t *testing.T) {
	c, err := ParseColor("red")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, c.RGBA())
	assert.Equal(t, "#ff0000", c.String())
	c, err = ParseColor("#00ff0080")
	require.NoError(t, err)
	assert.Equal(t, uint8(0x80), c.RGBA().A)
	c, err = ParseColor("rgb(0, 0, 255)")
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 0, 0xff, 0xff}, c.RGBA())
	c, err = ParseColor("CurrentColor")
	require.NoError(t, err)
	assert.True(t, c.IsCurrentColor())
	c, err = ParseColor("CanvasText")
	require.NoError(t, err)
	assert.True(t, c.IsSystemColor())
	_, err = ParseColor("no-such-color")
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestParseFonts(t *testing.T) {
	ff, err := ParseFontFamily(`"Times New Roman", Georgia Pro, serif`)
	require.NoError(t, err)
	assert.Equal(t, FontFamilyT{"Times New Roman", "Georgia Pro", "serif"}, ff)
	_, err = ParseFontFamily("serif,")
	assert.Error(t, err)
	fs, err := ParseFontSize("large")
	require.NoError(t, err)
	assert.Equal(t, JustDimen(18*PX), fs)
	fs, err = ParseFontSize("150%")
	require.NoError(t, err)
	assert.Equal(t, FontRelative(1.5), fs)
	fs, err = ParseFontSize("larger")
	require.NoError(t, err)
	assert.Equal(t, FontRelative(1.2), fs)
	fw, err := ParseFontWeight("bold")
	require.NoError(t, err)
	assert.Equal(t, FontWeightBold, fw)
	fw, err = ParseFontWeight("300")
	require.NoError(t, err)
	assert.Equal(t, FontWeight(300), fw)
	_, err = ParseFontWeight("1200")
	assert.Error(t, err)
	lh, err := ParseLineHeight("1.5")
	require.NoError(t, err)
	assert.True(t, lh.IsNumber())
	lh, err = ParseLineHeight("20px")
	require.NoError(t, err)
	assert.False(t, lh.IsNumber())
}

func TestParseDeclarationShorthands(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.css")
	defer teardown()
	//
	decls, err := ParseDeclaration("margin", "1px auto")
	require.NoError(t, err)
	require.Len(t, decls, 4)
	assert.Equal(t, style.MarginLeft, decls[3].Longhand)
	assert.Equal(t, Auto(), decls[3].Value)
	decls, err = ParseDeclaration("border-color", "rgb(0, 0, 255) red")
	require.NoError(t, err)
	require.Len(t, decls, 4)
	assert.Equal(t, "#0000ff", decls[2].Value.String())
	decls, err = ParseDeclaration("border", "red 2px dashed")
	require.NoError(t, err)
	require.Len(t, decls, 12)
	assert.Equal(t, Declared{style.BorderTopWidth, BorderWidthLength(JustDimen(2 * PX))}, decls[0])
	assert.Equal(t, Declared{style.BorderTopStyle, BorderStyleDashed}, decls[1])
	decls, err = ParseDeclaration("border-bottom", "solid")
	require.NoError(t, err)
	require.Len(t, decls, 3)
	assert.Equal(t, style.BorderBottomWidth, decls[0].Longhand)
	assert.Equal(t, Initial, decls[0].Value)
	assert.Equal(t, Initial, decls[2].Value)
	decls, err = ParseDeclaration("padding", "inherit")
	require.NoError(t, err)
	assert.Equal(t, Inherit, decls[1].Value)
	_, err = ParseDeclaration("padding", "1px -2px")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseDeclaration("border", "solid solid")
	assert.ErrorIs(t, err, ErrInvalidValue)
	_, err = ParseDeclaration("grid-template", "none")
	assert.ErrorIs(t, err, ErrUnknownProperty)
	assert.True(t, IsShorthand("border-left"))
	assert.False(t, IsShorthand("border-left-color"))
}
