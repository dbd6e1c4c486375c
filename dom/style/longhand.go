package style

// Longhand identifies a single, non-shorthand CSS property recognized by
// the styling engine. Computed values keep one slot per Longhand.
type Longhand uint8

// Recognized longhand properties. The order of the early properties
// matters: it is the order in which they are computed.
const (
	FontFamily Longhand = iota
	FontSize
	FontStyle
	FontWeight
	Color
	// --- end of early properties
	Display
	Position
	Float
	Visibility
	Top
	Right
	Bottom
	Left
	Width
	Height
	MinWidth
	MinHeight
	MaxWidth
	MaxHeight
	MarginTop
	MarginRight
	MarginBottom
	MarginLeft
	PaddingTop
	PaddingRight
	PaddingBottom
	PaddingLeft
	BorderTopWidth
	BorderRightWidth
	BorderBottomWidth
	BorderLeftWidth
	BorderTopStyle
	BorderRightStyle
	BorderBottomStyle
	BorderLeftStyle
	BorderTopColor
	BorderRightColor
	BorderBottomColor
	BorderLeftColor
	BackgroundColor
	LineHeight
	TextAlign
	TextIndent
	WhiteSpace
	Direction
	LetterSpacing
	WordSpacing
	NumLonghands // number of recognized longhands; not a property
)

type longhandInfo struct {
	name      string
	group     string
	inherited bool
	early     bool
}

var longhands = [NumLonghands]longhandInfo{
	FontFamily:        {"font-family", PGFont, true, true},
	FontSize:          {"font-size", PGFont, true, true},
	FontStyle:         {"font-style", PGFont, true, true},
	FontWeight:        {"font-weight", PGFont, true, true},
	Color:             {"color", PGColor, true, true},
	Display:           {"display", PGDisplay, false, false},
	Position:          {"position", PGDisplay, false, false},
	Float:             {"float", PGDisplay, false, false},
	Visibility:        {"visibility", PGDisplay, true, false},
	Top:               {"top", PGDimension, false, false},
	Right:             {"right", PGDimension, false, false},
	Bottom:            {"bottom", PGDimension, false, false},
	Left:              {"left", PGDimension, false, false},
	Width:             {"width", PGDimension, false, false},
	Height:            {"height", PGDimension, false, false},
	MinWidth:          {"min-width", PGDimension, false, false},
	MinHeight:         {"min-height", PGDimension, false, false},
	MaxWidth:          {"max-width", PGDimension, false, false},
	MaxHeight:         {"max-height", PGDimension, false, false},
	MarginTop:         {"margin-top", PGMargins, false, false},
	MarginRight:       {"margin-right", PGMargins, false, false},
	MarginBottom:      {"margin-bottom", PGMargins, false, false},
	MarginLeft:        {"margin-left", PGMargins, false, false},
	PaddingTop:        {"padding-top", PGPadding, false, false},
	PaddingRight:      {"padding-right", PGPadding, false, false},
	PaddingBottom:     {"padding-bottom", PGPadding, false, false},
	PaddingLeft:       {"padding-left", PGPadding, false, false},
	BorderTopWidth:    {"border-top-width", PGBorder, false, false},
	BorderRightWidth:  {"border-right-width", PGBorder, false, false},
	BorderBottomWidth: {"border-bottom-width", PGBorder, false, false},
	BorderLeftWidth:   {"border-left-width", PGBorder, false, false},
	BorderTopStyle:    {"border-top-style", PGBorder, false, false},
	BorderRightStyle:  {"border-right-style", PGBorder, false, false},
	BorderBottomStyle: {"border-bottom-style", PGBorder, false, false},
	BorderLeftStyle:   {"border-left-style", PGBorder, false, false},
	BorderTopColor:    {"border-top-color", PGBorder, false, false},
	BorderRightColor:  {"border-right-color", PGBorder, false, false},
	BorderBottomColor: {"border-bottom-color", PGBorder, false, false},
	BorderLeftColor:   {"border-left-color", PGBorder, false, false},
	BackgroundColor:   {"background-color", PGColor, false, false},
	LineHeight:        {"line-height", PGText, true, false},
	TextAlign:         {"text-align", PGText, true, false},
	TextIndent:        {"text-indent", PGText, true, false},
	WhiteSpace:        {"white-space", PGText, true, false},
	Direction:         {"direction", PGText, true, false},
	LetterSpacing:     {"letter-spacing", PGText, true, false},
	WordSpacing:       {"word-spacing", PGText, true, false},
}

var longhandByName map[string]Longhand

func init() {
	longhandByName = make(map[string]Longhand, NumLonghands)
	for l := Longhand(0); l < NumLonghands; l++ {
		longhandByName[longhands[l].name] = l
	}
}

// LonghandByName finds a longhand property for a CSS property name,
// e.g. "border-top-width".
func LonghandByName(name string) (Longhand, bool) {
	l, ok := longhandByName[name]
	return l, ok
}

// Valid is false for NumLonghands and anything beyond.
func (l Longhand) Valid() bool {
	return l < NumLonghands
}

func (l Longhand) String() string {
	if !l.Valid() {
		return "<invalid longhand>"
	}
	return longhands[l].name
}

// Group returns the name of the property group l belongs to.
func (l Longhand) Group() string {
	if !l.Valid() {
		return PGX
	}
	return longhands[l].group
}

// Inherited tells if l is an inherited property.
func (l Longhand) Inherited() bool {
	return l.Valid() && longhands[l].inherited
}

// Early tells if l has to be computed in the early phase, i.e. before
// properties whose values may depend on it (font-size for em-lengths,
// color for currentcolor).
func (l Longhand) Early() bool {
	return l.Valid() && longhands[l].early
}

// EarlyLonghands returns the early properties in computation order.
func EarlyLonghands() []Longhand {
	var r []Longhand
	for l := Longhand(0); l < NumLonghands; l++ {
		if longhands[l].early {
			r = append(r, l)
		}
	}
	return r
}

// OtherLonghands returns all the properties not computed in the early phase.
func OtherLonghands() []Longhand {
	var r []Longhand
	for l := Longhand(0); l < NumLonghands; l++ {
		if !longhands[l].early {
			r = append(r, l)
		}
	}
	return r
}

// LonghandsInGroup returns all longhands of a property group.
func LonghandsInGroup(group string) []Longhand {
	var r []Longhand
	for l := Longhand(0); l < NumLonghands; l++ {
		if longhands[l].group == group {
			r = append(r, l)
		}
	}
	return r
}
