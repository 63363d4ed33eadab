package styleset

// Resolve returns the effective value of the property at p for device d.
//
// Top-level properties resolve responsive[d] -> responsive[desktop] -> flat
// -> fallback. Tablet never falls back to mobile. Sub-group properties
// resolve responsive[d] -> group flat -> fallback with no desktop
// inheritance. Flat paths ignore d. Absence anywhere yields fallback.
func Resolve(s *StyleSet, d Device, p PropertyPath, fallback Value) Value {
	target := s
	for _, name := range p.Groups {
		target = target.Group(name)
		if target == nil {
			return fallback
		}
	}
	if target == nil {
		return fallback
	}

	if p.Flat {
		return lookup(target.Flat, p.Property, fallback)
	}

	if v, ok := target.DeviceProperties(d)[p.Property]; ok && !v.IsZero() {
		return v
	}
	if !p.IsGroup() && d != DeviceDesktop {
		if v, ok := target.DeviceProperties(DeviceDesktop)[p.Property]; ok && !v.IsZero() {
			return v
		}
	}
	return lookup(target.Flat, p.Property, fallback)
}

func lookup(props Properties, name string, fallback Value) Value {
	if v, ok := props[name]; ok && !v.IsZero() {
		return v
	}
	return fallback
}

// ResolveAll returns every effective top-level property for device d, with
// the same precedence as Resolve. The result is a fresh map.
func ResolveAll(s *StyleSet, d Device) Properties {
	out := Properties{}
	if s == nil {
		return out
	}
	layers := []Properties{s.Flat}
	if d != DeviceDesktop {
		layers = append(layers, s.DeviceProperties(DeviceDesktop))
	}
	layers = append(layers, s.DeviceProperties(d))
	for _, layer := range layers {
		merge(out, layer)
	}
	return out
}

// ResolveGroup returns every effective property of the sub-group at the
// given path for device d: group flat overlaid with the group's own
// responsive[d]. A missing group resolves to an empty map.
func ResolveGroup(s *StyleSet, d Device, groups ...string) Properties {
	out := Properties{}
	target := s
	for _, name := range groups {
		target = target.Group(name)
		if target == nil {
			return out
		}
	}
	if target == nil {
		return out
	}
	merge(out, target.Flat)
	merge(out, target.DeviceProperties(d))
	return out
}

func merge(dst, src Properties) {
	for k, v := range src {
		if !v.IsZero() {
			dst[k] = v
		}
	}
}
