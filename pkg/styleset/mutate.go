package styleset

// Mutate returns a copy of s in which the property at p for device d is set
// to v. Only that cell changes: sibling properties, other devices and other
// groups keep their values, and s itself is never modified. Sub-groups on
// the path are passed through EnsureResponsive before the write. A zero v
// removes the property.
func Mutate(s *StyleSet, d Device, p PropertyPath, v Value) *StyleSet {
	return Patch(s, d, p.Groups, p.Flat, Properties{p.Property: v})
}

// Unset returns a copy of s without the property at p for device d
func Unset(s *StyleSet, d Device, p PropertyPath) *StyleSet {
	return Mutate(s, d, p, Value{})
}

// Patch merges props into the device slot (or the flat map when flat is
// set) of the sub-group at groups, in a single copy of s.
func Patch(s *StyleSet, d Device, groups []string, flat bool, props Properties) *StyleSet {
	out := s.Clone()
	if out == nil {
		out = New()
	}

	target := out
	for _, name := range groups {
		if target.Groups == nil {
			target.Groups = make(map[string]*StyleSet)
		}
		g := EnsureResponsive(target.Groups[name])
		target.Groups[name] = g
		target = g
	}

	if flat {
		target.Flat = mergeInto(target.Flat, props)
		return out
	}

	if target.Responsive == nil {
		target.Responsive = make(map[Device]Properties)
	}
	target.Responsive[d] = mergeInto(target.Responsive[d], props)
	return out
}

// mergeInto applies props onto dst, deleting keys whose value is zero.
// dst is owned by the caller (always a freshly cloned map here).
func mergeInto(dst, props Properties) Properties {
	if dst == nil {
		dst = Properties{}
	}
	for name, v := range props {
		if v.IsZero() {
			delete(dst, name)
			continue
		}
		dst[name] = v
	}
	return dst
}
