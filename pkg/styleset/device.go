package styleset

import (
	"errors"
	"fmt"
	"strings"
)

// Device is a named breakpoint bucket for style overrides
type Device string

const (
	DeviceDesktop Device = "desktop"
	DeviceTablet  Device = "tablet"
	DeviceMobile  Device = "mobile"
)

// Devices lists the device tiers in editor tab order
var Devices = []Device{DeviceDesktop, DeviceTablet, DeviceMobile}

// ErrUnknownDevice is returned when a device name is not one of the known tiers
var ErrUnknownDevice = errors.New("unknown device")

// IsValid reports whether d is one of the known device tiers
func (d Device) IsValid() bool {
	switch d {
	case DeviceDesktop, DeviceTablet, DeviceMobile:
		return true
	}
	return false
}

func (d Device) String() string {
	return string(d)
}

// ParseDevice parses a device name, ignoring case and surrounding whitespace
func ParseDevice(s string) (Device, error) {
	d := Device(strings.ToLower(strings.TrimSpace(s)))
	if !d.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDevice, s)
	}
	return d, nil
}

// Breakpoints holds the minimum viewport widths (in CSS pixels) of the
// tablet and desktop tiers. Anything narrower than TabletMin is mobile.
type Breakpoints struct {
	TabletMin  float64
	DesktopMin float64
}

// DefaultBreakpoints returns the builder's stock breakpoints.
func DefaultBreakpoints() Breakpoints {
	return Breakpoints{
		TabletMin:  768,
		DesktopMin: 1024,
	}
}

// DeviceForWidth maps a visitor viewport width to its device tier.
func (b Breakpoints) DeviceForWidth(width float64) Device {
	if width >= b.DesktopMin {
		return DeviceDesktop
	}
	if width >= b.TabletMin {
		return DeviceTablet
	}
	return DeviceMobile
}
