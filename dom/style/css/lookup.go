package css

import (
	"fmt"

	"github.com/npillmayer/styling/dom/style"
)

// GetProperty gets the computed value of a property by name, in CSS
// notation. Shorthands are not supported.
//
// The call to GetProperty will flag an error if the style property isn't
// a known longhand.
func GetProperty(cv *ComputedValues, key string) (style.Property, error) {
	l, ok := style.LonghandByName(key)
	if !ok {
		return style.NullStyle, fmt.Errorf("%w: %s", ErrUnknownProperty, key)
	}
	if cv == nil {
		return style.NullStyle, fmt.Errorf("no computed values for %s", key)
	}
	return style.Property(cv.value(l).String()), nil
}

// GetPropertyGroup returns the computed values of all the properties of a
// property group (see style.PropertyGroups), in CSS notation.
func GetPropertyGroup(cv *ComputedValues, group string) []style.KeyValue {
	var kv []style.KeyValue
	for _, l := range style.LonghandsInGroup(group) {
		kv = append(kv, style.KeyValue{Key: l.String(), Value: style.Property(cv.value(l).String())})
	}
	return kv
}

// Diff returns the properties for which the computed values of cv differ
// from those of other. Properties are listed with their value in cv.
func Diff(cv, other *ComputedValues) []style.KeyValue {
	var kv []style.KeyValue
	for l := style.Longhand(0); l < style.NumLonghands; l++ {
		if !valueEqual(cv.value(l), other.value(l)) {
			kv = append(kv, style.KeyValue{Key: l.String(), Value: style.Property(cv.value(l).String())})
		}
	}
	return kv
}
