// Package metrics supplies the approximate font metrics the paginator uses:
// an average glyph width per font family and a line-height factor. The
// numbers are a tuning parameter, not typographic truth; they are derived
// from averaging Standard-14 width tables and can be recalibrated per
// family against reference documents.
package metrics

import "strings"

// LineHeightFactor converts a font size in points to a single-spaced line
// height in points. Word lays out single-spaced lines at roughly 1.15-1.2x
// the nominal size; the paginator uses the conventional 1.2.
const LineHeightFactor = 1.2

// defaultWidthFactor is used for families with no table entry. Close to the
// Helvetica average, which is a reasonable middle ground for Latin and
// Cyrillic text faces.
const defaultWidthFactor = 0.52

// Table maps font families to an average glyph width expressed as a
// fraction of the font size (em). Lookups are case-insensitive.
type Table struct {
	factors map[string]float64
}

// DefaultTable returns the built-in width factors. Averages computed over
// the printable-ASCII width tables of the matching Standard-14 faces, which
// track the metric-compatible Word faces closely enough for estimation.
func DefaultTable() *Table {
	return &Table{factors: map[string]float64{
		"times new roman": 0.50,
		"times":           0.50,
		"georgia":         0.53,
		"cambria":         0.52,
		"calibri":         0.50,
		"arial":           0.53,
		"helvetica":       0.53,
		"verdana":         0.58,
		"courier new":     0.60,
		"courier":         0.60,
		"consolas":        0.55,
	}}
}

// WithFactor returns a copy of the table with one family's factor replaced.
// Used to calibrate the estimator against known reference documents.
func (t *Table) WithFactor(family string, factor float64) *Table {
	factors := make(map[string]float64, len(t.factors)+1)
	for k, v := range t.factors {
		factors[k] = v
	}
	factors[normalize(family)] = factor
	return &Table{factors: factors}
}

// GlyphWidth returns the estimated width in points of one average glyph of
// the given family at the given size.
func (t *Table) GlyphWidth(family string, size float64) float64 {
	if f, ok := t.factors[normalize(family)]; ok {
		return f * size
	}
	return defaultWidthFactor * size
}

// LineHeight returns the single-spaced line height in points for a font size.
func LineHeight(size float64) float64 {
	return LineHeightFactor * size
}

func normalize(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}
