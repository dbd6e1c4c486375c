package css

import (
	"fmt"
	"strings"

	"github.com/npillmayer/styling/dom/style"
	"go.uber.org/multierr"
)

// Declared is a declared value for a longhand property.
type Declared struct {
	Longhand style.Longhand
	Value    Value
}

func (d Declared) String() string {
	return fmt.Sprintf("%s: %s", d.Longhand, d.Value)
}

// ParseDeclaration parses a property declaration, given by property name and
// value text. Shorthand properties are expanded into their longhands.
// Either all of the longhands of a shorthand are returned or none.
//
// Recognized shorthands are margin, padding, border-width, border-style,
// border-color, border and border-top/right/bottom/left.
func ParseDeclaration(name string, value style.Property) ([]Declared, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if l, ok := style.LonghandByName(name); ok {
		v, err := ParseValue(l, value)
		if err != nil {
			return nil, err
		}
		return []Declared{{Longhand: l, Value: v}}, nil
	}
	switch {
	case style.IsCompoundProperty(name):
		return expandFourSides(name, value)
	case name == "border":
		return expandBorder(value, style.FourDirs[:]...)
	case strings.HasPrefix(name, "border-"):
		side := strings.TrimPrefix(name, "border-")
		for _, dir := range style.FourDirs {
			if side == dir {
				return expandBorder(value, dir)
			}
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, name)
}

// IsShorthand returns true if name is a shorthand property ParseDeclaration
// is able to expand.
func IsShorthand(name string) bool {
	if style.IsCompoundProperty(name) || name == "border" {
		return true
	}
	for _, dir := range style.FourDirs {
		if name == "border-"+dir {
			return true
		}
	}
	return false
}

func expandFourSides(name string, value style.Property) ([]Declared, error) {
	var fields []string
	if value.IsCSSWideKeyword() {
		fields = []string{value.Normalized().String()}
	} else {
		fields = components(value.String())
	}
	kvs, err := style.SplitCompoundFields(name, fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %s", ErrInvalidValue, name, err.Error())
	}
	decls := make([]Declared, 0, len(kvs))
	for _, kv := range kvs {
		l, ok := style.LonghandByName(kv.Key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownProperty, kv.Key)
		}
		v, e := ParseValue(l, kv.Value)
		err = multierr.Append(err, e)
		decls = append(decls, Declared{Longhand: l, Value: v})
	}
	if err != nil {
		return nil, err
	}
	return decls, nil
}

// expandBorder expands 'border' (all sides) or 'border-<side>'. Width, style
// and color may be given in any order; omitted ones are reset to their
// initial values.
func expandBorder(value style.Property, sides ...string) ([]Declared, error) {
	var width, bstyle, color Value
	if value.IsCSSWideKeyword() {
		kw, err := ParseValue(style.BorderTopStyle, value)
		if err != nil {
			return nil, err
		}
		width, bstyle, color = kw, kw, kw
	} else {
		comps := components(value.String())
		if len(comps) == 0 || len(comps) > 3 {
			return nil, fmt.Errorf("%w: border %q", ErrInvalidValue, value)
		}
		for _, comp := range comps {
			if bs, err := ParseBorderStyle(comp); err == nil && bstyle == nil {
				bstyle = bs
				continue
			}
			if bw, err := ParseBorderWidth(comp); err == nil && width == nil {
				width = bw
				continue
			}
			if c, err := ParseColor(comp); err == nil && color == nil {
				color = c
				continue
			}
			return nil, fmt.Errorf("%w: border component %q", ErrInvalidValue, comp)
		}
	}
	if width == nil {
		width = Initial
	}
	if bstyle == nil {
		bstyle = Initial
	}
	if color == nil {
		color = Initial
	}
	decls := make([]Declared, 0, 3*len(sides))
	for _, side := range sides {
		for _, part := range []struct {
			suffix string
			v      Value
		}{{"width", width}, {"style", bstyle}, {"color", color}} {
			l, ok := style.LonghandByName("border-" + side + "-" + part.suffix)
			if !ok {
				return nil, fmt.Errorf("%w: border side %q", ErrUnknownProperty, side)
			}
			decls = append(decls, Declared{Longhand: l, Value: part.v})
		}
	}
	return decls, nil
}
