package styleset

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidPath is returned for property paths that name no property
var ErrInvalidPath = errors.New("invalid property path")

// PropertyPath addresses one property inside a StyleSet.
//
// With no Groups and Flat unset it targets the element's top-level
// responsive slot; Flat targets the legacy flat field instead; Groups walk
// into named sub-groups (outermost first).
type PropertyPath struct {
	Groups   []string
	Flat     bool
	Property string
}

// Prop addresses a top-level responsive property
func Prop(property string) PropertyPath {
	return PropertyPath{Property: property}
}

// FlatProp addresses a legacy flat property
func FlatProp(property string) PropertyPath {
	return PropertyPath{Flat: true, Property: property}
}

// GroupProp addresses a property of a (possibly nested) sub-group
func GroupProp(property string, groups ...string) PropertyPath {
	return PropertyPath{Groups: groups, Property: property}
}

// ParsePath parses dotted notation: "fontSize", "flat.fontSize",
// "titleStyles.fontSize", "titleStyles.flat.fontSize".
func ParsePath(s string) (PropertyPath, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return PropertyPath{}, fmt.Errorf("%w: empty", ErrInvalidPath)
	}
	parts := strings.Split(s, ".")
	for _, part := range parts {
		if part == "" {
			return PropertyPath{}, fmt.Errorf("%w: %q", ErrInvalidPath, s)
		}
	}

	p := PropertyPath{Property: parts[len(parts)-1]}
	rest := parts[:len(parts)-1]
	if n := len(rest); n > 0 && rest[n-1] == keyFlat {
		p.Flat = true
		rest = rest[:n-1]
	}
	for _, g := range rest {
		if isReservedKey(g) {
			return PropertyPath{}, fmt.Errorf("%w: %q is not a group name", ErrInvalidPath, g)
		}
	}
	if isReservedKey(p.Property) {
		return PropertyPath{}, fmt.Errorf("%w: %q is not a property name", ErrInvalidPath, p.Property)
	}
	if len(rest) > 0 {
		p.Groups = rest
	}
	return p, nil
}

// String renders p back into dotted notation
func (p PropertyPath) String() string {
	parts := make([]string, 0, len(p.Groups)+2)
	parts = append(parts, p.Groups...)
	if p.Flat {
		parts = append(parts, keyFlat)
	}
	parts = append(parts, p.Property)
	return strings.Join(parts, ".")
}

// IsGroup reports whether p points into a sub-group
func (p PropertyPath) IsGroup() bool {
	return len(p.Groups) > 0
}

func isReservedKey(name string) bool {
	switch name {
	case keyFlat, keyResponsive, keyMarginByDevice, keyPaddingByDevice:
		return true
	}
	return false
}
