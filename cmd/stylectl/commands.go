package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"
	yaml "gopkg.in/yaml.v3"

	"github.com/Notifuse/sitebuilder/internal/domain"
	"github.com/Notifuse/sitebuilder/internal/service"
	"github.com/Notifuse/sitebuilder/pkg/styleset"
)

// effectiveStyle is what `effective` prints
type effectiveStyle struct {
	Type       domain.ElementType             `json:"type,omitempty" yaml:"type,omitempty"`
	Device     styleset.Device                `json:"device" yaml:"device"`
	Properties styleset.Properties            `json:"properties" yaml:"properties"`
	Groups     map[string]styleset.Properties `json:"groups,omitempty" yaml:"groups,omitempty"`
	Margin     styleset.SpacingBox            `json:"margin" yaml:"margin"`
	Padding    styleset.SpacingBox            `json:"padding" yaml:"padding"`
}

func (c *cli) resolveCmd() *cobra.Command {
	var device, path, fallback, elementType string

	cmd := &cobra.Command{
		Use:   "resolve FILE",
		Short: "Print the effective value of one property for a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readDocument(args[0])
			if err != nil {
				return err
			}
			d, err := styleset.ParseDevice(device)
			if err != nil {
				return err
			}
			p, err := styleset.ParsePath(path)
			if err != nil {
				return err
			}

			def := styleset.Value{}
			switch {
			case fallback != "":
				def = styleset.String(fallback)
			case elementType != "":
				t, err := parseElementType(elementType)
				if err != nil {
					return err
				}
				def = domain.DefaultStyleValue(t, p)
			}

			fmt.Fprintln(cmd.OutOrStdout(), styleset.Resolve(s, d, p, def).Text())
			return nil
		},
	}
	cmd.Flags().StringVar(&device, "device", "", "desktop, tablet or mobile")
	cmd.Flags().StringVar(&path, "path", "", `property path, e.g. "fontSize" or "titleStyles.color"`)
	cmd.Flags().StringVar(&fallback, "default", "", "value printed when nothing is set")
	cmd.Flags().StringVar(&elementType, "type", "", "element type whose built-in default is used when --default is empty")
	_ = cmd.MarkFlagRequired("device")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func (c *cli) effectiveCmd() *cobra.Command {
	var device, elementType, output string
	var width float64

	cmd := &cobra.Command{
		Use:   "effective FILE",
		Short: "Print every effective property and spacing box for a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readDocument(args[0])
			if err != nil {
				return err
			}
			d, err := deviceOrWidth(device, width)
			if err != nil {
				return err
			}

			element := &domain.Element{Styles: s}
			if elementType != "" {
				if element.Type, err = parseElementType(elementType); err != nil {
					return err
				}
			}

			resolved := service.ResolveElement(element, d)
			out := effectiveStyle{
				Type:       element.Type,
				Device:     resolved.Device,
				Properties: resolved.Properties,
				Groups:     resolved.Groups,
				Margin:     resolved.Margin,
				Padding:    resolved.Padding,
			}
			return writeOutput(cmd, output, out)
		},
	}
	cmd.Flags().StringVar(&device, "device", "", "desktop, tablet or mobile")
	cmd.Flags().Float64Var(&width, "width", 0, "viewport width in CSS pixels, used when --device is empty")
	cmd.Flags().StringVar(&elementType, "type", "", "element type, adds its style groups to the output")
	cmd.Flags().StringVarP(&output, "output", "o", "json", "output format (json or yaml)")
	return cmd
}

func (c *cli) setCmd() *cobra.Command {
	var device, path, value string
	var number, write bool

	cmd := &cobra.Command{
		Use:   "set FILE",
		Short: "Set one property for a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readDocument(args[0])
			if err != nil {
				return err
			}
			d, err := styleset.ParseDevice(device)
			if err != nil {
				return err
			}
			p, err := styleset.ParsePath(path)
			if err != nil {
				return err
			}

			v := styleset.String(value)
			if number {
				f, err := strconv.ParseFloat(value, 64)
				if err != nil {
					return fmt.Errorf("invalid number %q: %w", value, err)
				}
				if v = styleset.Number(f); v.IsZero() {
					return fmt.Errorf("invalid number %q", value)
				}
			}

			c.logger.WithFields(map[string]interface{}{
				"device": d,
				"path":   p.String(),
				"value":  v.Text(),
			}).Debug("Setting property")

			return c.emitDocument(cmd, args[0], styleset.Mutate(s, d, p, v), write)
		},
	}
	cmd.Flags().StringVar(&device, "device", "", "desktop, tablet or mobile")
	cmd.Flags().StringVar(&path, "path", "", "property path")
	cmd.Flags().StringVar(&value, "value", "", "new value")
	cmd.Flags().BoolVar(&number, "number", false, "store the value as a JSON number")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE instead of stdout")
	_ = cmd.MarkFlagRequired("device")
	_ = cmd.MarkFlagRequired("path")
	_ = cmd.MarkFlagRequired("value")
	return cmd
}

func (c *cli) unsetCmd() *cobra.Command {
	var device, path string
	var write bool

	cmd := &cobra.Command{
		Use:   "unset FILE",
		Short: "Remove one property for a device",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readDocument(args[0])
			if err != nil {
				return err
			}
			d, err := styleset.ParseDevice(device)
			if err != nil {
				return err
			}
			p, err := styleset.ParsePath(path)
			if err != nil {
				return err
			}
			return c.emitDocument(cmd, args[0], styleset.Unset(s, d, p), write)
		},
	}
	cmd.Flags().StringVar(&device, "device", "", "desktop, tablet or mobile")
	cmd.Flags().StringVar(&path, "path", "", "property path")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE instead of stdout")
	_ = cmd.MarkFlagRequired("device")
	_ = cmd.MarkFlagRequired("path")
	return cmd
}

func (c *cli) spacingCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "spacing",
		Short: "Read or write device-aware margin and padding",
	}

	var kind, device string
	var effective bool
	get := &cobra.Command{
		Use:   "get FILE",
		Short: "Print a spacing box as CSS shorthand",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readDocument(args[0])
			if err != nil {
				return err
			}
			k, err := styleset.ParseSpacingKind(kind)
			if err != nil {
				return err
			}
			d, err := styleset.ParseDevice(device)
			if err != nil {
				return err
			}

			box := styleset.GetSpacing(s, k, d)
			if effective {
				box = styleset.EffectiveSpacing(s, k, d)
			}
			fmt.Fprintln(cmd.OutOrStdout(), box.CSS())
			return nil
		},
	}
	get.Flags().StringVar(&kind, "kind", "", "margin or padding")
	get.Flags().StringVar(&device, "device", "", "desktop, tablet or mobile")
	get.Flags().BoolVar(&effective, "effective", false, "fall back to legacy flat fields like the storefront does")
	_ = get.MarkFlagRequired("kind")
	_ = get.MarkFlagRequired("device")

	var setKind, setDevice, side string
	var px int
	var write bool
	set := &cobra.Command{
		Use:   "set FILE",
		Short: "Write one side of a spacing box (clamped to 0..200px)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readDocument(args[0])
			if err != nil {
				return err
			}
			k, err := styleset.ParseSpacingKind(setKind)
			if err != nil {
				return err
			}
			d, err := styleset.ParseDevice(setDevice)
			if err != nil {
				return err
			}
			sd, err := styleset.ParseSide(side)
			if err != nil {
				return err
			}
			return c.emitDocument(cmd, args[0], styleset.SetSpacing(s, k, d, sd, px), write)
		},
	}
	set.Flags().StringVar(&setKind, "kind", "", "margin or padding")
	set.Flags().StringVar(&setDevice, "device", "", "desktop, tablet or mobile")
	set.Flags().StringVar(&side, "side", "", "top, right, bottom or left")
	set.Flags().IntVar(&px, "px", 0, "size in pixels")
	set.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE instead of stdout")
	for _, name := range []string{"kind", "device", "side", "px"} {
		_ = set.MarkFlagRequired(name)
	}

	cmd.AddCommand(get, set)
	return cmd
}

func (c *cli) migrateCmd() *cobra.Command {
	var write bool

	cmd := &cobra.Command{
		Use:   "migrate FILE",
		Short: "Lift legacy flat properties into the desktop slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.readDocument(args[0])
			if err != nil {
				return err
			}
			return c.emitDocument(cmd, args[0], styleset.LiftLegacy(s), write)
		},
	}
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to FILE instead of stdout")
	return cmd
}

func (c *cli) readDocument(path string) (*styleset.StyleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style document: %w", err)
	}
	s, err := styleset.Decode(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	c.logger.WithField("file", path).Debug("Style document loaded")
	return s, nil
}

// emitDocument prints s, or replaces path with it when write is set
func (c *cli) emitDocument(cmd *cobra.Command, path string, s *styleset.StyleSet, write bool) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode style document: %w", err)
	}
	data = append(data, '\n')

	if !write {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".stylectl-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write style document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write style document: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	c.logger.WithField("file", path).Info("Style document written")
	return nil
}

func writeOutput(cmd *cobra.Command, format string, v interface{}) error {
	switch format {
	case "json":
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unknown output format %q", format)
}

func deviceOrWidth(device string, width float64) (styleset.Device, error) {
	if device != "" {
		return styleset.ParseDevice(device)
	}
	if width > 0 {
		return styleset.DefaultBreakpoints().DeviceForWidth(width), nil
	}
	return "", fmt.Errorf("--device or --width is required")
}

func parseElementType(s string) (domain.ElementType, error) {
	t := domain.ElementType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("unknown element type %q", s)
	}
	return t, nil
}
