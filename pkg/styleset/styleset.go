package styleset

import (
	"database/sql/driver"
	"fmt"
	"maps"
)

// Properties maps a CSS-like property name (camelCase, e.g. "fontSize") to its value
type Properties map[string]Value

// Clone returns a copy of p. A nil map stays nil.
func (p Properties) Clone() Properties {
	if p == nil {
		return nil
	}
	return maps.Clone(p)
}

// StyleSet is the style bag attached to one page-builder element.
//
// A nil map means the corresponding key is absent from the stored document,
// which is distinct from present-but-empty: the spacing upgrade and the
// sub-group shim both key off presence.
type StyleSet struct {
	// Flat holds legacy properties with no device dimension.
	Flat Properties
	// Responsive holds per-device overrides.
	Responsive map[Device]Properties
	// Groups holds independently namespaced sub-parts of composite
	// elements (accordion titleStyles, FAQ questionStyles, ...).
	Groups map[string]*StyleSet
	// MarginByDevice and PaddingByDevice are the normalized spacing model.
	MarginByDevice  map[Device]SpacingBox
	PaddingByDevice map[Device]SpacingBox

	// explicitFlat records that the document stored flat properties under a
	// "flat" key rather than at the root, so encoding reproduces it.
	explicitFlat bool
	// rootFlat names the flat properties that sat at the root of a document
	// which also had a "flat" key. Nil unless explicitFlat.
	rootFlat map[string]struct{}
}

// New returns an empty StyleSet, as the builder creates for a new element
func New() *StyleSet {
	return &StyleSet{}
}

// Clone deep-copies s. Cloning nil returns nil.
func (s *StyleSet) Clone() *StyleSet {
	if s == nil {
		return nil
	}
	out := &StyleSet{
		Flat:            s.Flat.Clone(),
		MarginByDevice:  maps.Clone(s.MarginByDevice),
		PaddingByDevice: maps.Clone(s.PaddingByDevice),
		explicitFlat:    s.explicitFlat,
		rootFlat:        maps.Clone(s.rootFlat),
	}
	if s.Responsive != nil {
		out.Responsive = make(map[Device]Properties, len(s.Responsive))
		for d, props := range s.Responsive {
			out.Responsive[d] = props.Clone()
		}
	}
	if s.Groups != nil {
		out.Groups = make(map[string]*StyleSet, len(s.Groups))
		for name, g := range s.Groups {
			out.Groups[name] = g.Clone()
		}
	}
	return out
}

// IsEmpty reports whether s carries no style data at all
func (s *StyleSet) IsEmpty() bool {
	return s == nil || (len(s.Flat) == 0 && s.Responsive == nil && len(s.Groups) == 0 &&
		s.MarginByDevice == nil && s.PaddingByDevice == nil)
}

// Group returns the named sub-group, or nil when it is absent
func (s *StyleSet) Group(name string) *StyleSet {
	if s == nil {
		return nil
	}
	return s.Groups[name]
}

// DeviceProperties returns the override map for d, or nil when absent
func (s *StyleSet) DeviceProperties(d Device) Properties {
	if s == nil {
		return nil
	}
	return s.Responsive[d]
}

func (s *StyleSet) spacingMap(kind SpacingKind) map[Device]SpacingBox {
	if s == nil {
		return nil
	}
	if kind == SpacingPadding {
		return s.PaddingByDevice
	}
	return s.MarginByDevice
}

func (s *StyleSet) setSpacingMap(kind SpacingKind, m map[Device]SpacingBox) {
	if kind == SpacingPadding {
		s.PaddingByDevice = m
		return
	}
	s.MarginByDevice = m
}

// Value implements driver.Valuer so a StyleSet can be written to a JSONB column
func (s StyleSet) Value() (driver.Value, error) {
	return s.MarshalJSON()
}

// Scan implements sql.Scanner
func (s *StyleSet) Scan(value interface{}) error {
	var data []byte
	switch v := value.(type) {
	case nil:
		*s = StyleSet{}
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into StyleSet", value)
	}
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}
