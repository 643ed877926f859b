package inline

import (
	"fmt"

	"github.com/npillmayer/consolemark/css"
	"github.com/npillmayer/consolemark/maybe"
	"github.com/npillmayer/consolemark/style"
	"golang.org/x/net/html"
)

// DefaultImageSize is used for images without a usable width or height,
// in CSS pixels.
const DefaultImageSize = 16

// ResolveDefaultStyle returns the default style mapping for an inline tag.
// Some tags (img) compute their style from attributes. Tags without a
// default style, and tags outside the allow-list, get an empty mapping.
func ResolveDefaultStyle(tag string, attrs []html.Attribute) style.Map {
	p, err := Lookup(tag)
	if err != nil {
		return style.Map{}
	}
	return p.DefaultStyle(attrs)
}

// Attr looks up an attribute by key. Namespaced attributes are not
// considered.
func Attr(attrs []html.Attribute, key string) maybe.Maybe[string] {
	for _, a := range attrs {
		if a.Namespace == "" && a.Key == key {
			return maybe.Just(a.Val)
		}
	}
	return maybe.Nothing[string]()
}

// --- Style providers -------------------------------------------------------

func boldStyle([]html.Attribute) style.Map {
	return style.Of("fontWeight", "bolder")
}

func italicStyle([]html.Attribute) style.Map {
	return style.Of("fontStyle", "italic")
}

func strikeStyle([]html.Attribute) style.Map {
	return style.Of("textDecoration", "line-through")
}

func underlineStyle([]html.Attribute) style.Map {
	return style.Of("textDecoration", "underline")
}

func markStyle([]html.Attribute) style.Map {
	return style.Of("background", "yellow", "color", "black")
}

func subStyle([]html.Attribute) style.Map {
	return style.Of("fontSize", "smaller", "verticalAlign", "sub")
}

func supStyle([]html.Attribute) style.Map {
	return style.Of("fontSize", "smaller", "verticalAlign", "super")
}

func smallStyle([]html.Attribute) style.Map {
	return style.Of("fontSize", "smaller")
}

func abbrStyle([]html.Attribute) style.Map {
	return style.Of(
		"textDecoration", "underline dotted",
		"fontStyle", "italic",
		"fontWeight", "lighter",
	)
}

func anchorStyle([]html.Attribute) style.Map {
	return style.Of("color", "blue")
}

// imageStyle shrinks the font to zero and pads the resulting empty run to
// the size of the image, which is shown as the run's background.
func imageStyle(attrs []html.Attribute) style.Map {
	w := imageDimension(attrs, "width")
	h := imageDimension(attrs, "height")
	m := style.Of(
		"fontSize", "0",
		"padding", fmt.Sprintf("%dpx %dpx", h/2, w/2),
	)
	var src string
	switch mm := Attr(attrs, "src").Match(); mm {
	case mm.Just(&src):
		m.Set("background", style.Property("url("+src+") no-repeat"))
		m.Set("backgroundSize", style.Property(fmt.Sprintf("%dpx %dpx", w, h)))
	case mm.Nothing():
		tracer().Debugf("image without src attribute")
	}
	return m
}

func imageDimension(attrs []html.Attribute, key string) int {
	v := Attr(attrs, key).WithDefault("")
	if v == "" {
		return DefaultImageSize
	}
	d, err := css.ParseDimen(v)
	if err != nil {
		tracer().Infof("image %s: %v", key, err)
		return DefaultImageSize
	}
	if px, ok := d.Pixels(); ok {
		return px
	}
	return DefaultImageSize
}
