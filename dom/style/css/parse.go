package css

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/mazznoer/csscolorparser"
	"github.com/npillmayer/styling/dom/style"
	"github.com/npillmayer/tyse/core/dimen"
	"github.com/tdewolff/parse/v2"
	csslex "github.com/tdewolff/parse/v2/css"
)

// token is a lexical token of a property value. Whitespace and comments
// are dropped, except for separating components (see components()).
type token struct {
	tt   csslex.TokenType
	text string
}

// components splits a property value into its top-level, whitespace
// separated components. Function calls like rgb(1, 2, 3) are kept as a
// single component, as are comma separated lists (commas are components
// of their own).
func components(value string) []string {
	lexer := csslex.NewLexer(parse.NewInputString(value))
	var comps []string
	var b strings.Builder
	depth := 0
	flush := func() {
		if b.Len() > 0 {
			comps = append(comps, b.String())
			b.Reset()
		}
	}
	for {
		tt, data := lexer.Next()
		switch tt {
		case csslex.ErrorToken:
			flush()
			return comps
		case csslex.CommentToken:
			continue
		case csslex.WhitespaceToken:
			if depth == 0 {
				flush()
				continue
			}
		case csslex.CommaToken:
			if depth == 0 {
				flush()
				comps = append(comps, ",")
				continue
			}
		case csslex.FunctionToken, csslex.LeftParenthesisToken:
			depth++
		case csslex.RightParenthesisToken:
			if depth > 0 {
				depth--
			}
		}
		b.Write(data)
	}
}

// lex returns the first significant token of a single component.
func lex(comp string) token {
	lexer := csslex.NewLexer(parse.NewInputString(comp))
	for {
		tt, data := lexer.Next()
		switch tt {
		case csslex.WhitespaceToken, csslex.CommentToken:
			continue
		}
		return token{tt: tt, text: string(data)}
	}
}

// ParseValue parses a declared value for a longhand. CSS-wide keywords are
// recognized for every longhand; 'revert' is parsed as Unset.
func ParseValue(l style.Longhand, p style.Property) (Value, error) {
	if !l.Valid() {
		return nil, ErrUnknownProperty
	}
	p = style.Property(strings.TrimSpace(p.String()))
	if p.IsEmpty() {
		return nil, fmt.Errorf("%w: empty value for %s", ErrInvalidValue, l)
	}
	switch {
	case p.IsInherit():
		return Inherit, nil
	case p.IsInitial():
		return Initial, nil
	case p.IsUnset():
		return Unset, nil
	}
	v, err := parseLonghand(l, p.String())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", l, err)
	}
	return v, nil
}

func parseLonghand(l style.Longhand, value string) (Value, error) {
	switch l {
	case style.Display:
		d, err := ParseDisplay(value)
		if err != nil {
			return nil, err
		}
		return d, nil
	case style.Position:
		if _, ok := positionStringMap[strings.ToLower(value)]; !ok {
			return nil, fmt.Errorf("%w: position %q", ErrInvalidValue, value)
		}
		return Position(style.Property(value)), nil
	case style.Float, style.Visibility, style.TextAlign, style.WhiteSpace, style.Direction:
		return parseKeyword(l, value)
	case style.Top, style.Right, style.Bottom, style.Left, style.Width, style.Height:
		return parseLength(value, true, lengthAllowAuto|lengthAllowNegative)
	case style.MinWidth, style.MinHeight:
		return parseLength(value, true, lengthAllowAuto)
	case style.MaxWidth, style.MaxHeight:
		return parseLength(value, true, lengthAllowNone)
	case style.MarginTop, style.MarginRight, style.MarginBottom, style.MarginLeft:
		return parseLength(value, true, lengthAllowAuto|lengthAllowNegative)
	case style.PaddingTop, style.PaddingRight, style.PaddingBottom, style.PaddingLeft:
		return parseLength(value, true, 0)
	case style.TextIndent:
		return parseLength(value, true, lengthAllowNegative)
	case style.LetterSpacing, style.WordSpacing:
		return parseLength(value, false, lengthAllowNormal|lengthAllowNegative)
	case style.BorderTopWidth, style.BorderRightWidth, style.BorderBottomWidth, style.BorderLeftWidth:
		return ParseBorderWidth(value)
	case style.BorderTopStyle, style.BorderRightStyle, style.BorderBottomStyle, style.BorderLeftStyle:
		return ParseBorderStyle(value)
	case style.Color, style.BackgroundColor,
		style.BorderTopColor, style.BorderRightColor, style.BorderBottomColor, style.BorderLeftColor:
		return ParseColor(value)
	case style.FontFamily:
		return ParseFontFamily(value)
	case style.FontSize:
		return ParseFontSize(value)
	case style.FontStyle:
		return parseFontStyle(value)
	case style.FontWeight:
		return ParseFontWeight(value)
	case style.LineHeight:
		return ParseLineHeight(value)
	}
	return nil, ErrUnknownProperty
}

func parseKeyword(l style.Longhand, value string) (Value, error) {
	value = strings.ToLower(value)
	for _, kw := range keywordSets[l.String()] {
		if kw == value {
			return Keyword(kw), nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidValue, value)
}

const (
	lengthAllowAuto uint8 = 1 << iota
	lengthAllowNone
	lengthAllowNormal
	lengthAllowNegative
)

// ParseLength parses a CSS length or percentage, e.g. "12pt" or "1.5em".
func ParseLength(value string) (DimenT, error) {
	return parseLength(value, true, lengthAllowNegative)
}

func parseLength(value string, percentOK bool, allow uint8) (DimenT, error) {
	comps := components(value)
	if len(comps) != 1 {
		return DimenT{}, fmt.Errorf("%w: expected a single length, have %q", ErrInvalidValue, value)
	}
	tok := lex(comps[0])
	var d DimenT
	var n float64
	var err error
	switch tok.tt {
	case csslex.IdentToken:
		switch kw := strings.ToLower(tok.text); {
		case kw == "auto" && allow&lengthAllowAuto != 0:
			return Auto(), nil
		case kw == "none" && allow&lengthAllowNone != 0:
			return NoDimen(), nil
		case kw == "normal" && allow&lengthAllowNormal != 0:
			return Normal(), nil
		}
		return d, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	case csslex.NumberToken:
		if n, err = strconv.ParseFloat(tok.text, 64); err != nil || n != 0 {
			return d, fmt.Errorf("%w: unitless length %q", ErrInvalidValue, value)
		}
		return JustDimen(0), nil
	case csslex.PercentageToken:
		if !percentOK {
			return d, fmt.Errorf("%w: percentage not allowed: %q", ErrInvalidValue, value)
		}
		if n, err = strconv.ParseFloat(strings.TrimSuffix(tok.text, "%"), 64); err != nil {
			return d, fmt.Errorf("%w: %q", ErrInvalidValue, value)
		}
		d = Percentage(n)
	case csslex.DimensionToken:
		num, unit := splitDimension(tok.text)
		if n, err = strconv.ParseFloat(num, 64); err != nil {
			return d, fmt.Errorf("%w: %q", ErrInvalidValue, value)
		}
		if d, err = dimenFromUnit(n, unit); err != nil {
			return d, err
		}
	default:
		return d, fmt.Errorf("%w: %q", ErrInvalidValue, value)
	}
	if n < 0 && allow&lengthAllowNegative == 0 {
		return DimenT{}, fmt.Errorf("%w: negative length %q", ErrInvalidValue, value)
	}
	return d, nil
}

// splitDimension splits a dimension token into number and unit.
func splitDimension(s string) (string, string) {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	for i < len(s) && (s[i] >= '0' && s[i] <= '9' || s[i] == '.') {
		i++
	}
	if i < len(s)-1 && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if s[j] == '+' || s[j] == '-' {
			j++
		}
		if j < len(s) && s[j] >= '0' && s[j] <= '9' {
			for j < len(s) && s[j] >= '0' && s[j] <= '9' {
				j++
			}
			i = j
		}
	}
	return s[:i], strings.ToLower(s[i:])
}

func dimenFromUnit(n float64, unit string) (DimenT, error) {
	switch unit {
	case "px":
		return JustDimen(scale(PX, n)), nil
	case "pt":
		return JustDimen(scale(dimen.PT, n)), nil
	case "pc":
		return JustDimen(scale(dimen.PT, n*12)), nil
	case "in":
		return JustDimen(scale(dimen.PT, n*72)), nil
	case "cm":
		return JustDimen(scale(dimen.PT, n*72/2.54)), nil
	case "mm":
		return JustDimen(scale(dimen.PT, n*72/25.4)), nil
	case "q":
		return JustDimen(scale(dimen.PT, n*72/101.6)), nil
	case "em":
		return FontRelative(n), nil
	case "ex":
		return FontRelative(n / 2), nil
	case "rem":
		return RootFontRelative(n), nil
	}
	return DimenT{}, fmt.Errorf("%w: unit %q", ErrInvalidValue, unit)
}

// ParseBorderWidth parses 'thin', 'medium', 'thick' or a non-negative length.
func ParseBorderWidth(value string) (BorderWidthT, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "thin":
		return BorderWidthThin, nil
	case "medium":
		return BorderWidthMedium, nil
	case "thick":
		return BorderWidthThick, nil
	}
	d, err := parseLength(value, false, 0)
	if err != nil {
		return BorderWidthT{}, err
	}
	return BorderWidthLength(d), nil
}

// ParseColor parses a CSS color. Besides the color notations understood by
// csscolorparser, 'currentcolor' and the system colors 'canvastext' and
// 'canvas' are recognized.
func ParseColor(value string) (ColorT, error) {
	switch v := strings.ToLower(strings.TrimSpace(value)); v {
	case "currentcolor":
		return CurrentColor(), nil
	case "canvastext":
		return CanvasText(), nil
	case "canvas":
		return Canvas(), nil
	case "transparent":
		return Transparent, nil
	}
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return ColorT{}, fmt.Errorf("%w: color %q", ErrInvalidValue, value)
	}
	r, g, b, a := c.RGBA255()
	return RGBA(color.RGBA{r, g, b, a}), nil
}

// ParseFontFamily parses a comma separated list of font family names.
// Names may be quoted or consist of several identifiers.
func ParseFontFamily(value string) (FontFamilyT, error) {
	var families FontFamilyT
	var name []string
	quoted := false
	push := func() error {
		if len(name) == 0 {
			return fmt.Errorf("%w: empty font family in %q", ErrInvalidValue, value)
		}
		families = append(families, strings.Join(name, " "))
		name, quoted = name[:0], false
		return nil
	}
	for _, comp := range components(value) {
		if comp == "," {
			if err := push(); err != nil {
				return nil, err
			}
			continue
		}
		tok := lex(comp)
		switch {
		case tok.tt == csslex.StringToken && len(name) == 0:
			s, err := unquote(tok.text)
			if err != nil {
				return nil, fmt.Errorf("%w: font family %q", ErrInvalidValue, value)
			}
			name, quoted = append(name, s), true
		case tok.tt == csslex.IdentToken && !quoted:
			name = append(name, tok.text)
		default:
			return nil, fmt.Errorf("%w: font family %q", ErrInvalidValue, value)
		}
	}
	if err := push(); err != nil {
		return nil, err
	}
	return families, nil
}

func unquote(s string) (string, error) {
	if len(s) < 2 {
		return "", ErrInvalidValue
	}
	return s[1 : len(s)-1], nil
}

var fontSizeKeywords = map[string]float64{ // in px
	"xx-small": 9, "x-small": 10, "small": 13, "medium": 16, "large": 18,
	"x-large": 24, "xx-large": 32, "xxx-large": 48,
}

// ParseFontSize parses an absolute or relative font size. Keywords
// 'smaller' and 'larger' are expressed as em-factors of 1/1.2 and 1.2.
// Percentages are converted to em as well, as both refer to the parent's
// font size.
func ParseFontSize(value string) (DimenT, error) {
	kw := strings.ToLower(strings.TrimSpace(value))
	if px, ok := fontSizeKeywords[kw]; ok {
		return JustDimen(scale(PX, px)), nil
	}
	switch kw {
	case "smaller":
		return FontRelative(1 / 1.2), nil
	case "larger":
		return FontRelative(1.2), nil
	}
	d, err := parseLength(value, true, 0)
	if err != nil {
		return d, err
	}
	if d.IsPercent() {
		return FontRelative(d.f / 100), nil
	}
	return d, nil
}

func parseFontStyle(value string) (FontStyle, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "normal":
		return FontStyleNormal, nil
	case "italic":
		return FontStyleItalic, nil
	case "oblique":
		return FontStyleOblique, nil
	}
	return FontStyleNormal, fmt.Errorf("%w: font style %q", ErrInvalidValue, value)
}

// ParseFontWeight parses a font weight keyword or a number in 1…1000.
func ParseFontWeight(value string) (FontWeight, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "normal":
		return FontWeightNormal, nil
	case "bold":
		return FontWeightBold, nil
	case "bolder":
		return FontWeightBolder, nil
	case "lighter":
		return FontWeightLighter, nil
	}
	tok := lex(value)
	if tok.tt != csslex.NumberToken {
		return 0, fmt.Errorf("%w: font weight %q", ErrInvalidValue, value)
	}
	n, err := strconv.ParseFloat(tok.text, 64)
	if err != nil || n < 1 || n > 1000 {
		return 0, fmt.Errorf("%w: font weight %q", ErrInvalidValue, value)
	}
	return FontWeight(n), nil
}

// ParseLineHeight parses 'normal', a number, a length or a percentage.
func ParseLineHeight(value string) (LineHeightT, error) {
	if strings.ToLower(strings.TrimSpace(value)) == "normal" {
		return NormalLineHeight, nil
	}
	if tok := lex(value); tok.tt == csslex.NumberToken {
		n, err := strconv.ParseFloat(tok.text, 64)
		if err != nil || n < 0 {
			return LineHeightT{}, fmt.Errorf("%w: line height %q", ErrInvalidValue, value)
		}
		return LineHeightNumber(n), nil
	}
	d, err := parseLength(value, true, 0)
	if err != nil {
		return LineHeightT{}, err
	}
	return LineHeightDimen(d), nil
}
