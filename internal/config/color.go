package config

import (
	"fmt"
	"image/color"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an RGBA color written as "#rgb", "#rrggbb" or "#rrggbbaa"
type Color color.RGBA

// ParseColor reads a hex color
func ParseColor(s string) (Color, error) {
	hex, ok := strings.CutPrefix(strings.TrimSpace(s), "#")
	if !ok {
		return Color{}, fmt.Errorf("color %q must start with #", s)
	}

	digits := make([]uint8, len(hex))
	for i := 0; i < len(hex); i++ {
		d, ok := hexDigit(hex[i])
		if !ok {
			return Color{}, fmt.Errorf("color %q has invalid digit %q", s, hex[i])
		}
		digits[i] = d
	}

	switch len(digits) {
	case 3:
		return Color{R: digits[0] * 17, G: digits[1] * 17, B: digits[2] * 17, A: 255}, nil
	case 6, 8:
		c := Color{
			R: digits[0]<<4 + digits[1],
			G: digits[2]<<4 + digits[3],
			B: digits[4]<<4 + digits[5],
			A: 255,
		}
		if len(digits) == 8 {
			c.A = digits[6]<<4 + digits[7]
		}
		return c, nil
	default:
		return Color{}, fmt.Errorf("color %q must have 3, 6 or 8 hex digits", s)
	}
}

func hexDigit(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}

// ToRGBA converts to the image/color type
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA(c)
}

// String formats the color as #rrggbb, or #rrggbbaa when not opaque
func (c Color) String() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*c = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler
func (c Color) MarshalYAML() (any, error) {
	return c.String(), nil
}
