package rules

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Unit conversion to points, the internal unit of the document model.
const (
	ptPerMM = 72.0 / 25.4
	ptPerCM = 720.0 / 25.4
)

// Tolerances holds the comparison slack for each checked quantity, in the
// unit the quantity is configured in. Round-tripping physical units through
// the container format is lossy, so exact equality is never required.
type Tolerances struct {
	PageSizeMM  float64 `yaml:"page_size_mm"`
	MarginMM    float64 `yaml:"margin_mm"`
	FontSizePt  float64 `yaml:"font_size_pt"`
	LineSpacing float64 `yaml:"line_spacing"`
	IndentCM    float64 `yaml:"indent_cm"`
}

// Requirements is the rule battery's configuration: the formatting a thesis
// must carry, plus tolerances. Fields absent from a loaded file keep their
// defaults.
type Requirements struct {
	PageWidthMM  float64 `yaml:"page_width_mm"`
	PageHeightMM float64 `yaml:"page_height_mm"`
	MarginMM     float64 `yaml:"margin_mm"`

	FontFamily    string  `yaml:"font_family"`
	FontSizePt    float64 `yaml:"font_size_pt"`
	CaptionSizePt float64 `yaml:"caption_size_pt"`

	LineSpacing       float64 `yaml:"line_spacing"`
	FirstLineIndentCM float64 `yaml:"first_line_indent_cm"`

	LiteratureMarker string `yaml:"literature_marker"`

	MinPages int `yaml:"min_pages"`
	MaxPages int `yaml:"max_pages"`

	Tolerances Tolerances `yaml:"tolerances"`
}

// Default returns the conference submission requirements: A4, 20mm margins,
// Times New Roman 14pt, 1.15 line spacing, 1.25cm paragraph indent, a
// «Література» section, and a length of one to two pages.
func Default() Requirements {
	return Requirements{
		PageWidthMM:       210,
		PageHeightMM:      297,
		MarginMM:          20,
		FontFamily:        "Times New Roman",
		FontSizePt:        14,
		CaptionSizePt:     12,
		LineSpacing:       1.15,
		FirstLineIndentCM: 1.25,
		LiteratureMarker:  "Література",
		MinPages:          1,
		MaxPages:          2,
		Tolerances: Tolerances{
			PageSizeMM:  2.0,
			MarginMM:    0.75,
			FontSizePt:  0.5,
			LineSpacing: 0.06,
			IndentCM:    0.15,
		},
	}
}

// Load reads requirements from a YAML file, overlaying the defaults.
func Load(path string) (Requirements, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Requirements{}, fmt.Errorf("reading requirements: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML requirements over the defaults.
func Parse(data []byte) (Requirements, error) {
	req := Default()
	if err := yaml.Unmarshal(data, &req); err != nil {
		return Requirements{}, fmt.Errorf("parsing requirements: %w", err)
	}
	return req, nil
}

// Derived values in points.

func (r Requirements) pageWidthPt() float64       { return r.PageWidthMM * ptPerMM }
func (r Requirements) pageHeightPt() float64      { return r.PageHeightMM * ptPerMM }
func (r Requirements) marginPt() float64          { return r.MarginMM * ptPerMM }
func (r Requirements) indentPt() float64          { return r.FirstLineIndentCM * ptPerCM }
func (r Requirements) pageSizeTolerancePt() float64 { return r.Tolerances.PageSizeMM * ptPerMM }
func (r Requirements) marginTolerancePt() float64 { return r.Tolerances.MarginMM * ptPerMM }
func (r Requirements) indentTolerancePt() float64 { return r.Tolerances.IndentCM * ptPerCM }

// within reports |got-want| <= tolerance.
func within(got, want, tolerance float64) bool {
	d := got - want
	if d < 0 {
		d = -d
	}
	return d <= tolerance
}
