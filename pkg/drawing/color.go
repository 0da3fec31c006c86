package drawing

import (
	"image/color"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/Nikolay-Lysenko/renovation/pkg/errors"
)

// LookupColor resolves a color token into an RGBA value. Tokens are CSS
// color names ("black", "steelblue", "grey") or hex strings ("#1a1a2e").
// Unknown tokens yield an INVALID_COLOR error.
func LookupColor(token string) (color.RGBA, error) {
	normalized := strings.ToLower(strings.TrimSpace(token))
	if strings.HasPrefix(normalized, "#") {
		c, err := colorful.Hex(normalized)
		if err != nil {
			return color.RGBA{}, errors.New(errors.ErrCodeInvalidColor, "malformed hex color %q", token)
		}
		r, g, b := c.RGB255()
		return color.RGBA{R: r, G: g, B: b, A: 0xff}, nil
	}
	if c, ok := colornames.Map[normalized]; ok {
		return c, nil
	}
	return color.RGBA{}, errors.New(errors.ErrCodeInvalidColor, "unknown color %q", token)
}

// ParseColor is the lenient form of LookupColor: unknown tokens resolve to
// black so a bad token never aborts a render. Config loading validates
// tokens eagerly with LookupColor instead.
func ParseColor(token string) color.RGBA {
	if c, err := LookupColor(token); err == nil {
		return c
	}
	return colornames.Black
}

// withAlpha scales c by the given opacity. Alpha values outside (0, 1)
// leave the color untouched. The result is alpha-premultiplied as required
// by image/color.RGBA.
func withAlpha(c color.RGBA, alpha float64) color.RGBA {
	if alpha <= 0 || 1 <= alpha {
		return c
	}
	return color.RGBA{
		R: uint8(float64(c.R) * alpha),
		G: uint8(float64(c.G) * alpha),
		B: uint8(float64(c.B) * alpha),
		A: uint8(float64(c.A) * alpha),
	}
}
