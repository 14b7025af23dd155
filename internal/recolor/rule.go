package recolor

import (
	"image/color"

	"github.com/glizzus/assetgen/internal/util"
)

// Tolerance is the largest per-channel difference at which a pixel still
// matches a rule's source color.
const Tolerance = 5

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// Rule replaces colors near From with To.
type Rule struct {
	From RGB
	To   RGB
}

// Table is an ordered list of rules. When several rules match a pixel the
// first one wins.
type Table []Rule

// Matches reports whether c is a visible pixel within Tolerance of the
// rule's source color on every channel.
func (r Rule) Matches(c color.NRGBA) bool {
	return c.A > 0 &&
		within(c.R, r.From.R) &&
		within(c.G, r.From.G) &&
		within(c.B, r.From.B)
}

// Match returns the first rule in t that matches c.
func (t Table) Match(c color.NRGBA) (Rule, bool) {
	return util.FindFirst(t, func(r Rule) bool {
		return r.Matches(c)
	})
}

// RemapColor applies the first matching rule to c. Alpha is kept as is.
// Semi-transparent pixels are recolored the same way as opaque ones.
func RemapColor(c color.NRGBA, t Table) color.NRGBA {
	rule, ok := t.Match(c)
	if !ok {
		return c
	}
	return color.NRGBA{R: rule.To.R, G: rule.To.G, B: rule.To.B, A: c.A}
}

func within(a, b uint8) bool {
	if a > b {
		return a-b <= Tolerance
	}
	return b-a <= Tolerance
}
