package styleset

import (
	"bytes"
	"encoding/json"
	"errors"

	"github.com/tidwall/gjson"
)

// Reserved keys of a persisted style document
const (
	keyFlat            = "flat"
	keyResponsive      = "responsive"
	keyMarginByDevice  = "marginByDevice"
	keyPaddingByDevice = "paddingByDevice"
)

// ErrInvalidDocument is returned when a stored style document is not valid JSON
var ErrInvalidDocument = errors.New("invalid style document")

// Decode reads a persisted style document. Stored documents carry no schema,
// so any subset of keys may be missing or null; only malformed JSON fails.
func Decode(data []byte) (*StyleSet, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return New(), nil
	}
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidDocument
	}
	root := gjson.ParseBytes(data)
	if !root.IsObject() {
		return New(), nil
	}
	return decodeObject(root), nil
}

func decodeObject(obj gjson.Result) *StyleSet {
	s := New()
	obj.ForEach(func(key, val gjson.Result) bool {
		name := key.String()
		switch name {
		case keyResponsive:
			if val.IsObject() {
				s.Responsive = decodeResponsive(val)
			}
			return true
		case keyMarginByDevice:
			if val.IsObject() {
				s.MarginByDevice = decodeSpacingMap(val)
			}
			return true
		case keyPaddingByDevice:
			if val.IsObject() {
				s.PaddingByDevice = decodeSpacingMap(val)
			}
			return true
		}

		if name == keyFlat && val.IsObject() {
			s.explicitFlat = true
			if s.Flat == nil {
				s.Flat = Properties{}
			}
			nested := Properties{}
			decodeProperties(val, nested)
			for k, v := range nested {
				delete(s.rootFlat, k)
				s.Flat[k] = v
			}
			return true
		}

		if val.IsObject() {
			if s.Groups == nil {
				s.Groups = make(map[string]*StyleSet)
			}
			s.Groups[name] = decodeObject(val)
			return true
		}

		if v, ok := valueOf(val); ok {
			if s.Flat == nil {
				s.Flat = Properties{}
			}
			s.Flat[name] = v
			if s.rootFlat == nil {
				s.rootFlat = make(map[string]struct{})
			}
			s.rootFlat[name] = struct{}{}
		}
		return true
	})
	if !s.explicitFlat || len(s.rootFlat) == 0 {
		s.rootFlat = nil
	}
	return s
}

func decodeResponsive(obj gjson.Result) map[Device]Properties {
	out := make(map[Device]Properties)
	obj.ForEach(func(key, val gjson.Result) bool {
		if !val.IsObject() {
			return true
		}
		props := Properties{}
		decodeProperties(val, props)
		out[Device(key.String())] = props
		return true
	})
	return out
}

func decodeProperties(obj gjson.Result, into Properties) {
	obj.ForEach(func(key, val gjson.Result) bool {
		if v, ok := valueOf(val); ok {
			into[key.String()] = v
		}
		return true
	})
}

func decodeSpacingMap(obj gjson.Result) map[Device]SpacingBox {
	out := make(map[Device]SpacingBox)
	obj.ForEach(func(key, val gjson.Result) bool {
		if !val.IsObject() {
			return true
		}
		out[Device(key.String())] = SpacingBox{
			Top:    spacingCell(val.Get("top")),
			Right:  spacingCell(val.Get("right")),
			Bottom: spacingCell(val.Get("bottom")),
			Left:   spacingCell(val.Get("left")),
		}
		return true
	})
	return out
}

func spacingCell(r gjson.Result) int {
	v, ok := valueOf(r)
	if !ok {
		return 0
	}
	return ParseInt(v, 0)
}

// valueOf converts a scalar JSON node to a Value; null and missing nodes are absent
func valueOf(r gjson.Result) (Value, bool) {
	switch r.Type {
	case gjson.String:
		return String(r.Str), true
	case gjson.Number:
		v := numberLiteral(r.Raw)
		return v, !v.IsZero()
	case gjson.True, gjson.False, gjson.JSON:
		return rawValue([]byte(r.Raw)), true
	}
	return Value{}, false
}

// MarshalJSON encodes s in the layout it was decoded from: flat properties at
// the root unless the source document nested them under "flat". In a document
// that used both, each property stays where it was read; new ones go under "flat".
func (s StyleSet) MarshalJSON() ([]byte, error) {
	out := make(map[string]interface{}, len(s.Flat)+len(s.Groups)+3)

	if s.explicitFlat {
		flat := Properties{}
		for name, v := range s.Flat {
			if _, atRoot := s.rootFlat[name]; atRoot {
				if !v.IsZero() {
					out[name] = v
				}
				continue
			}
			flat[name] = v
		}
		out[keyFlat] = flat
	} else {
		for name, v := range s.Flat {
			if !v.IsZero() {
				out[name] = v
			}
		}
	}

	for name, g := range s.Groups {
		if g != nil {
			out[name] = g
		}
	}

	if s.Responsive != nil {
		responsive := make(map[Device]Properties, len(s.Responsive))
		for d, props := range s.Responsive {
			if props == nil {
				props = Properties{}
			}
			responsive[d] = props
		}
		out[keyResponsive] = responsive
	}
	if s.MarginByDevice != nil {
		out[keyMarginByDevice] = s.MarginByDevice
	}
	if s.PaddingByDevice != nil {
		out[keyPaddingByDevice] = s.PaddingByDevice
	}

	return json.Marshal(out)
}

// UnmarshalJSON implements json.Unmarshaler using the tolerant Decode rules
func (s *StyleSet) UnmarshalJSON(data []byte) error {
	decoded, err := Decode(data)
	if err != nil {
		return err
	}
	*s = *decoded
	return nil
}
