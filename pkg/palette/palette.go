// Package palette maps color names to 24-bit values for use with the
// sgr RGB constructors. It ships the classic VGA palette and loads
// custom palettes from YAML files, so demo output and user themes share
// one lookup path.
package palette

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/arthur-debert/sgr/pkg/sgr"
)

// RGB is a 24-bit color.
type RGB struct {
	R int `yaml:"r"`
	G int `yaml:"g"`
	B int `yaml:"b"`
}

// Palette maps color names to 24-bit values.
type Palette map[string]RGB

// Default returns the 16 VGA hardware colors.
func Default() Palette {
	return Palette{
		"black":          {R: 0x00, G: 0x00, B: 0x00},
		"red":            {R: 0xAA, G: 0x00, B: 0x00},
		"green":          {R: 0x00, G: 0xAA, B: 0x00},
		"yellow":         {R: 0xAA, G: 0x55, B: 0x00}, // VGA yellow is brown
		"blue":           {R: 0x00, G: 0x00, B: 0xAA},
		"magenta":        {R: 0xAA, G: 0x00, B: 0xAA},
		"cyan":           {R: 0x00, G: 0xAA, B: 0xAA},
		"white":          {R: 0xAA, G: 0xAA, B: 0xAA},
		"bright-black":   {R: 0x55, G: 0x55, B: 0x55},
		"bright-red":     {R: 0xFF, G: 0x55, B: 0x55},
		"bright-green":   {R: 0x55, G: 0xFF, B: 0x55},
		"bright-yellow":  {R: 0xFF, G: 0xFF, B: 0x55},
		"bright-blue":    {R: 0x55, G: 0x55, B: 0xFF},
		"bright-magenta": {R: 0xFF, G: 0x55, B: 0xFF},
		"bright-cyan":    {R: 0x55, G: 0xFF, B: 0xFF},
		"bright-white":   {R: 0xFF, G: 0xFF, B: 0xFF},
	}
}

// Load reads a palette from a YAML file mapping names to r/g/b values:
//
//	salmon: {r: 250, g: 128, b: 114}
//	teal:   {r: 0, g: 128, b: 128}
//
// Component ranges are validated eagerly; a file with any component
// outside [0,255] is rejected as a whole.
func Load(path string) (Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read palette file %s: %w", path, err)
	}

	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to parse palette file %s: %w", path, err)
	}

	for name, c := range p {
		if _, err := sgr.FgRGB(c.R, c.G, c.B); err != nil {
			return nil, fmt.Errorf("palette entry %q: %w", name, err)
		}
	}
	return p, nil
}

// Names returns the palette's color names in sorted order.
func (p Palette) Names() []string {
	names := make([]string, 0, len(p))
	for name := range p {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Foreground returns a 24-bit foreground token for the named color.
func (p Palette) Foreground(name string) (sgr.SGR, error) {
	c, ok := p[name]
	if !ok {
		return sgr.SGR{}, fmt.Errorf("unknown palette color %q", name)
	}
	return sgr.FgRGB(c.R, c.G, c.B)
}

// Background returns a 24-bit background token for the named color.
func (p Palette) Background(name string) (sgr.SGR, error) {
	c, ok := p[name]
	if !ok {
		return sgr.SGR{}, fmt.Errorf("unknown palette color %q", name)
	}
	return sgr.BgRGB(c.R, c.G, c.B)
}
