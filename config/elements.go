package config

import (
	"image/color"
	"strings"
)

// Element tags a skill with its elemental family. It only drives colors.
type Element string

const (
	Fire    Element = "FIRE"
	Water   Element = "WATER"
	Ice     Element = "ICE"
	Wind    Element = "WIND"
	Wood    Element = "WOOD"
	Rock    Element = "ROCK"
	Thunder Element = "THUNDER"
	Shadow  Element = "SHADOW"
	Light   Element = "LIGHT"
	Sound   Element = "SOUND"
)

type ElementColor struct {
	Primary color.RGBA
	Accent  color.RGBA
}

var ElementColors = map[Element]ElementColor{
	Fire:    {Primary: color.RGBA{255, 80, 0, 255}, Accent: color.RGBA{255, 160, 30, 255}},
	Water:   {Primary: color.RGBA{0, 80, 255, 255}, Accent: color.RGBA{30, 144, 255, 255}},
	Ice:     {Primary: color.RGBA{135, 206, 235, 255}, Accent: color.RGBA{176, 224, 230, 255}},
	Wind:    {Primary: color.RGBA{200, 200, 200, 255}, Accent: color.RGBA{220, 220, 255, 255}},
	Wood:    {Primary: color.RGBA{34, 139, 34, 255}, Accent: color.RGBA{50, 205, 50, 255}},
	Rock:    {Primary: color.RGBA{139, 69, 19, 255}, Accent: color.RGBA{160, 82, 45, 255}},
	Thunder: {Primary: color.RGBA{255, 215, 0, 255}, Accent: color.RGBA{255, 255, 100, 255}},
	Shadow:  {Primary: color.RGBA{80, 0, 80, 255}, Accent: color.RGBA{128, 0, 128, 255}},
	Light:   {Primary: color.RGBA{255, 223, 186, 255}, Accent: color.RGBA{255, 236, 179, 255}},
	Sound:   {Primary: color.RGBA{138, 43, 226, 255}, Accent: color.RGBA{147, 112, 219, 255}},
}

var (
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{220, 40, 40, 255}
	Green = color.RGBA{40, 220, 40, 255}
	Blue  = color.RGBA{60, 120, 255, 255}
	Gray  = color.RGBA{40, 40, 40, 255}
)

// ParseElement normalizes an element name. Unknown names are kept as-is so
// they still render with the fallback color.
func ParseElement(name string) Element {
	return Element(strings.ToUpper(strings.TrimSpace(name)))
}

// PrimaryColor returns the element's main color, white when unknown.
func (e Element) PrimaryColor() color.RGBA {
	if c, ok := ElementColors[e]; ok {
		return c.Primary
	}
	return White
}

func (e Element) AccentColor() color.RGBA {
	if c, ok := ElementColors[e]; ok {
		return c.Accent
	}
	return White
}
