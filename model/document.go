package model

// Alignment represents horizontal paragraph alignment.
type Alignment int

const (
	AlignUnset Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
	AlignJustified
)

// String returns a string representation of the alignment.
func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustified:
		return "justified"
	default:
		return "unset"
	}
}

// PageSetup describes the physical page geometry of a section, in points.
type PageSetup struct {
	Width        float64
	Height       float64
	MarginTop    float64
	MarginBottom float64
	MarginLeft   float64
	MarginRight  float64
}

// ContentWidth returns the horizontal space available to text.
func (ps PageSetup) ContentWidth() float64 {
	return ps.Width - ps.MarginLeft - ps.MarginRight
}

// ContentHeight returns the vertical space available to text.
func (ps PageSetup) ContentHeight() float64 {
	return ps.Height - ps.MarginTop - ps.MarginBottom
}

// StyleDefinition is one entry of the style catalogue. ParentID forms a
// single-inheritance chain via the catalogue; the chain is walked with cycle
// detection by the styles package, never followed blindly.
type StyleDefinition struct {
	ID       string
	Name     string
	ParentID string

	// Run-level properties. Zero values mean "not set here".
	FontFamily string
	FontSize   float64
	Bold       *bool
	Italic     *bool

	// Paragraph-level properties.
	Alignment       Alignment
	LineSpacing     float64 // multiplier; 0 = not set
	LineSpacingPts  float64 // absolute height in points; 0 = not set
	FirstLineIndent *float64
	SpaceBefore     *float64
	SpaceAfter      *float64
}

// Run is a contiguous span of text sharing one formatting context.
// Direct-formatting fields are nil/empty when the run does not override them.
type Run struct {
	Text       string
	StyleID    string
	FontFamily string
	FontSize   float64
	Bold       *bool
	Italic     *bool
}

// Paragraph is an ordered sequence of runs plus paragraph-level formatting.
type Paragraph struct {
	Runs    []Run
	StyleID string

	Alignment       Alignment
	LineSpacing     float64 // multiplier; 0 = not set
	LineSpacingPts  float64 // absolute height in points; 0 = not set
	FirstLineIndent *float64
	SpaceBefore     *float64
	SpaceAfter      *float64

	// SectionBreak marks this paragraph as a section-break carrier: PageSetup
	// (non-nil only then) applies to content after this paragraph, which
	// starts on a new page.
	SectionBreak bool
	PageSetup    *PageSetup

	// PageBreak marks a paragraph containing an explicit page break
	// (<w:br w:type="page"/>); it starts on a fresh page.
	PageBreak bool
}

// Text returns the concatenated run text of the paragraph.
func (p Paragraph) Text() string {
	switch len(p.Runs) {
	case 0:
		return ""
	case 1:
		return p.Runs[0].Text
	}
	n := 0
	for _, r := range p.Runs {
		n += len(r.Text)
	}
	b := make([]byte, 0, n)
	for _, r := range p.Runs {
		b = append(b, r.Text...)
	}
	return string(b)
}

// Defaults holds the document-wide default formatting used as the final
// fallback of the style cascade.
type Defaults struct {
	FontFamily      string
	FontSize        float64
	Alignment       Alignment
	LineSpacing     float64
	FirstLineIndent float64
	SpaceBefore     float64
	SpaceAfter      float64
}

// Document is the parsed document model: ordered paragraphs, the style
// catalogue, the default page geometry, and document default formatting.
type Document struct {
	Paragraphs []Paragraph
	Styles     map[string]StyleDefinition
	PageSetup  PageSetup
	Defaults   Defaults

	// HeaderFooterText holds any text found in header or footer parts,
	// keyed by part name. Populated so the rule engine can flag it.
	HeaderFooterText map[string]string
}

// Style looks up a style definition by ID.
func (d *Document) Style(id string) (StyleDefinition, bool) {
	s, ok := d.Styles[id]
	return s, ok
}
