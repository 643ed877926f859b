package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// namedColors are the CSS level 1 color keywords plus a few common extras.
var namedColors = map[string]color.RGBA{
	"black":   {0, 0, 0, 0xff},
	"silver":  {0xc0, 0xc0, 0xc0, 0xff},
	"gray":    {0x80, 0x80, 0x80, 0xff},
	"grey":    {0x80, 0x80, 0x80, 0xff},
	"white":   {0xff, 0xff, 0xff, 0xff},
	"maroon":  {0x80, 0, 0, 0xff},
	"red":     {0xff, 0, 0, 0xff},
	"purple":  {0x80, 0, 0x80, 0xff},
	"fuchsia": {0xff, 0, 0xff, 0xff},
	"magenta": {0xff, 0, 0xff, 0xff},
	"green":   {0, 0x80, 0, 0xff},
	"lime":    {0, 0xff, 0, 0xff},
	"olive":   {0x80, 0x80, 0, 0xff},
	"yellow":  {0xff, 0xff, 0, 0xff},
	"navy":    {0, 0, 0x80, 0xff},
	"blue":    {0, 0, 0xff, 0xff},
	"teal":    {0, 0x80, 0x80, 0xff},
	"aqua":    {0, 0xff, 0xff, 0xff},
	"cyan":    {0, 0xff, 0xff, 0xff},
	"orange":  {0xff, 0xa5, 0, 0xff},
	"pink":    {0xff, 0xc0, 0xcb, 0xff},
}

// Color interprets a property as a CSS color. Supported are color keywords,
// "#rgb", "#rrggbb" and "rgb(r, g, b)". The second return value is false
// for values which are not recognized as a color, including "default",
// "inherit" and "transparent".
func (p Property) Color() (color.Color, bool) {
	s := strings.ToLower(strings.TrimSpace(p.String()))
	if c, ok := namedColors[s]; ok {
		return c, true
	}
	switch {
	case strings.HasPrefix(s, "#"):
		return parseHexColor(s[1:])
	case strings.HasPrefix(s, "rgb(") && strings.HasSuffix(s, ")"):
		return parseRGBFunc(s[4 : len(s)-1])
	}
	return nil, false
}

// FirstColor scans a shorthand value such as "url(x.png) yellow no-repeat"
// for the first token which is a color.
func (p Property) FirstColor() (color.Color, bool) {
	for _, field := range strings.Fields(p.String()) {
		if c, ok := Property(field).Color(); ok {
			return c, true
		}
	}
	return p.Color()
}

// HexColor formats a color as "#rrggbb". A nil color is formatted as the
// empty string.
func HexColor(c color.Color) string {
	if c == nil {
		return ""
	}
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

func parseHexColor(h string) (color.Color, bool) {
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) != 6 {
		return nil, false
	}
	n, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return nil, false
	}
	return color.RGBA{uint8(n >> 16), uint8(n >> 8), uint8(n), 0xff}, true
}

func parseRGBFunc(args string) (color.Color, bool) {
	parts := strings.Split(args, ",")
	if len(parts) != 3 {
		return nil, false
	}
	var rgb [3]uint8
	for i, part := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || n < 0 || n > 255 {
			return nil, false
		}
		rgb[i] = uint8(n)
	}
	return color.RGBA{rgb[0], rgb[1], rgb[2], 0xff}, true
}
