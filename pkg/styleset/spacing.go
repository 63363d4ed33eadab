package styleset

import (
	"fmt"
	"maps"
	"strings"
)

// SpacingKind selects the margin or padding model
type SpacingKind string

const (
	SpacingMargin  SpacingKind = "margin"
	SpacingPadding SpacingKind = "padding"
)

// Side is one edge of a SpacingBox
type Side string

const (
	SideTop    Side = "top"
	SideRight  Side = "right"
	SideBottom Side = "bottom"
	SideLeft   Side = "left"
)

// Sides lists box edges in CSS shorthand order
var Sides = []Side{SideTop, SideRight, SideBottom, SideLeft}

// Spacing values are whole pixels in [MinSpacing, MaxSpacing]
const (
	MinSpacing = 0
	MaxSpacing = 200
)

// SpacingBox is a per-side spacing record in pixels
type SpacingBox struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Get returns the value of one side
func (b SpacingBox) Get(side Side) int {
	switch side {
	case SideTop:
		return b.Top
	case SideRight:
		return b.Right
	case SideBottom:
		return b.Bottom
	case SideLeft:
		return b.Left
	}
	return 0
}

// With returns b with one side replaced
func (b SpacingBox) With(side Side, px int) SpacingBox {
	switch side {
	case SideTop:
		b.Top = px
	case SideRight:
		b.Right = px
	case SideBottom:
		b.Bottom = px
	case SideLeft:
		b.Left = px
	}
	return b
}

// CSS renders the box as a four-value shorthand, e.g. "8px 0px 8px 0px"
func (b SpacingBox) CSS() string {
	return fmt.Sprintf("%dpx %dpx %dpx %dpx", b.Top, b.Right, b.Bottom, b.Left)
}

// ParseSpacingKind validates a spacing kind name
func ParseSpacingKind(s string) (SpacingKind, error) {
	switch k := SpacingKind(strings.ToLower(strings.TrimSpace(s))); k {
	case SpacingMargin, SpacingPadding:
		return k, nil
	}
	return "", fmt.Errorf("unknown spacing kind %q", s)
}

// ParseSide validates a side name
func ParseSide(s string) (Side, error) {
	switch side := Side(strings.ToLower(strings.TrimSpace(s))); side {
	case SideTop, SideRight, SideBottom, SideLeft:
		return side, nil
	}
	return "", fmt.Errorf("unknown side %q", s)
}

// legacyFields returns the flat field names of the pre-device spacing model,
// in Sides order (marginTop, marginRight, ...).
func legacyFields(kind SpacingKind) [4]string {
	prefix := string(kind)
	return [4]string{prefix + "Top", prefix + "Right", prefix + "Bottom", prefix + "Left"}
}

// GetSpacing reads the device-aware spacing box for d.
//
// Unlike Resolve, mobile inherits from tablet before desktop, and the legacy
// flat fields are not consulted.
func GetSpacing(s *StyleSet, kind SpacingKind, d Device) SpacingBox {
	m := s.spacingMap(kind)
	if box, ok := m[d]; ok {
		return box
	}
	if d == DeviceMobile {
		if box, ok := m[DeviceTablet]; ok {
			return box
		}
	}
	if d == DeviceMobile || d == DeviceTablet {
		if box, ok := m[DeviceDesktop]; ok {
			return box
		}
	}
	return SpacingBox{}
}

// SetSpacing returns a copy of s with one spacing cell written.
//
// px is clamped to [MinSpacing, MaxSpacing]. The first write to a document
// without a device-aware map materializes all three devices; if any legacy
// flat field (marginTop, ...) is non-empty at that moment, the desktop box
// is seeded from them. The seed always targets desktop, whichever device is
// being edited, and never runs again once the map exists.
func SetSpacing(s *StyleSet, kind SpacingKind, d Device, side Side, px int) *StyleSet {
	out := s.Clone()
	if out == nil {
		out = New()
	}

	current := out.spacingMap(kind)
	var next map[Device]SpacingBox
	if current == nil {
		next = map[Device]SpacingBox{
			DeviceDesktop: {},
			DeviceTablet:  {},
			DeviceMobile:  {},
		}
		if seed, ok := legacySpacing(out, kind); ok {
			next[DeviceDesktop] = seed
		}
	} else {
		next = maps.Clone(current)
	}

	next[d] = next[d].With(side, Clamp(px, MinSpacing, MaxSpacing))
	out.setSpacingMap(kind, next)
	return out
}

// legacySpacing parses the flat marginTop/... fields. ok is false when all
// four are empty or missing.
func legacySpacing(s *StyleSet, kind SpacingKind) (SpacingBox, bool) {
	var box SpacingBox
	found := false
	for i, field := range legacyFields(kind) {
		v := s.Flat[field]
		if isEmptyValue(v) {
			continue
		}
		found = true
		box = box.With(Sides[i], Clamp(ParseInt(v, 0), MinSpacing, MaxSpacing))
	}
	return box, found
}

func isEmptyValue(v Value) bool {
	if v.IsZero() {
		return true
	}
	if str, ok := v.Str(); ok {
		return strings.TrimSpace(str) == ""
	}
	return false
}

// EffectiveSpacing is the storefront read path: documents that were never
// upgraded render from their legacy flat fields on every device; upgraded
// documents use GetSpacing.
func EffectiveSpacing(s *StyleSet, kind SpacingKind, d Device) SpacingBox {
	if s.spacingMap(kind) == nil {
		box, _ := legacySpacing(s, kind)
		return box
	}
	return GetSpacing(s, kind, d)
}
