package styleset

// EnsureResponsive lazily materializes a sub-group's responsive map.
//
// A nil group becomes {responsive: {desktop: {}, mobile: {}}}. A group that
// already has a responsive key is returned as is, even when it lacks a
// mobile or tablet entry: sub-groups only use desktop and mobile. Otherwise
// a copy of g gains empty desktop and mobile maps.
func EnsureResponsive(g *StyleSet) *StyleSet {
	if g == nil {
		return &StyleSet{Responsive: emptyDesktopMobile()}
	}
	if g.Responsive != nil {
		return g
	}
	out := g.Clone()
	out.Responsive = emptyDesktopMobile()
	return out
}

func emptyDesktopMobile() map[Device]Properties {
	return map[Device]Properties{
		DeviceDesktop: {},
		DeviceMobile:  {},
	}
}

// LiftLegacy upgrades a pre-responsive document: when s has flat values but
// no responsive map, the flat values are copied into the desktop slot and
// an empty mobile slot is added. Flat stays in place as the lowest-priority
// fallback, so resolution results do not change. Sub-groups are lifted the
// same way. Documents that already have a responsive map are left alone.
func LiftLegacy(s *StyleSet) *StyleSet {
	if s == nil {
		return nil
	}
	out := s.Clone()
	liftInPlace(out)
	return out
}

func liftInPlace(s *StyleSet) {
	if s.Responsive == nil && len(s.Flat) > 0 {
		desktop := Properties{}
		for name, v := range s.Flat {
			if v.Kind() == KindString || v.Kind() == KindNumber {
				desktop[name] = v
			}
		}
		s.Responsive = map[Device]Properties{
			DeviceDesktop: desktop,
			DeviceMobile:  {},
		}
	}
	for _, g := range s.Groups {
		if g != nil {
			liftInPlace(g)
		}
	}
}
