package style

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"
)

func TestLonghandRegistry(t *testing.T) {
	for l := Longhand(0); l < NumLonghands; l++ {
		found, ok := LonghandByName(l.String())
		require.True(t, ok, "longhand %d not found by name", l)
		assert.Equal(t, l, found)
		assert.NotEqual(t, NullStyle, InitialProperty(l), "%s has no initial value", l)
	}
	_, ok := LonghandByName("margin")
	assert.False(t, ok, "shorthand must not be a longhand")
	assert.Equal(t, PGX, Longhand(200).Group())
}

func TestEarlyLonghandsOrder(t *testing.T) {
	assert.Equal(t, []Longhand{FontFamily, FontSize, FontStyle, FontWeight, Color}, EarlyLonghands())
	assert.Equal(t, int(NumLonghands), len(EarlyLonghands())+len(OtherLonghands()))
	for _, l := range OtherLonghands() {
		assert.False(t, l.Early())
	}
}

func TestInheritedFlags(t *testing.T) {
	assert.True(t, IsCascading("font-family"))
	assert.True(t, IsCascading("color"))
	assert.True(t, IsCascading("visibility"))
	assert.False(t, IsCascading("border-right-width"))
	assert.False(t, IsCascading("background-color"))
	assert.False(t, IsCascading("no-such-thing"))
}

func TestGroupName(t *testing.T) {
	assert.Equal(t, PGMargins, GroupNameFromPropertyKey("margin-top"))
	assert.Equal(t, PGBorder, GroupNameFromPropertyKey("border-left-style"))
	assert.Equal(t, PGX, GroupNameFromPropertyKey("foo"))
	assert.Len(t, LonghandsInGroup(PGPadding), 4)
}

func TestCSSWideKeywords(t *testing.T) {
	assert.True(t, Property(" Inherit ").IsInherit())
	assert.True(t, Property("initial").IsInitial())
	assert.True(t, Property("revert").IsUnset())
	assert.True(t, Property("unset").IsCSSWideKeyword())
	assert.False(t, Property("red").IsCSSWideKeyword())
	assert.True(t, Property("  ").IsEmpty())
}

func TestSplitCompound(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "styling.style")
	defer teardown()
	//
	kv, err := SplitCompoundProperty("padding", "3px")
	require.NoError(t, err)
	require.Len(t, kv, 4)
	for i, d := range FourDirs {
		assert.Equal(t, "padding-"+d, kv[i].Key)
		assert.Equal(t, Property("3px"), kv[i].Value)
	}
	kv, err = SplitCompoundProperty("margin", "1px 2px 3px")
	require.NoError(t, err)
	assert.Equal(t, Property("2px"), kv[3].Value, "left takes the value of right")
	assert.Equal(t, Property("3px"), kv[2].Value)
	kv, err = SplitCompoundProperty("border-width", "thin thick")
	require.NoError(t, err)
	assert.Equal(t, "border-bottom-width", kv[2].Key)
	assert.Equal(t, Property("thin"), kv[2].Value)
	kv, err = SplitCompoundProperty("border-style", "INHERIT")
	require.NoError(t, err)
	assert.Equal(t, Property("inherit"), kv[1].Value)
	_, err = SplitCompoundProperty("margin", "1px 2px 3px 4px 5px")
	assert.Error(t, err)
	_, err = SplitCompoundProperty("font", "12pt serif")
	assert.Error(t, err)
}

func TestDisplayDefaults(t *testing.T) {
	p := &html.Node{Type: html.ElementNode, Data: "p"}
	assert.Equal(t, Property("block"), DisplayPropertyForHTMLNode(p))
	span := &html.Node{Type: html.ElementNode, Data: "span"}
	assert.Equal(t, Property("inline"), DisplayPropertyForHTMLNode(span))
	unknown := &html.Node{Type: html.ElementNode, Data: "x-foo"}
	assert.Equal(t, Property("inline"), DisplayPropertyForHTMLNode(unknown))
	els := UADisplayElements()
	assert.Contains(t, els[Property("none")], "head")
}
