package styles

import (
	"fmt"

	"github.com/confero/thesischeck/model"
)

// RuleStyleCycle identifies diagnostics emitted for cyclic style chains.
const RuleStyleCycle = "style-cycle"

// ResolvedRun is a run after cascading resolution: concrete effective
// values, no remaining references.
type ResolvedRun struct {
	Text       string
	FontFamily string
	FontSize   float64
	Bold       bool
	Italic     bool
	Alignment  model.Alignment
}

// ResolvedParagraph carries a paragraph's resolved formatting and its runs
// in document order.
type ResolvedParagraph struct {
	Index int
	Runs  []ResolvedRun

	Alignment       model.Alignment
	LineSpacing     float64 // multiplier, always > 0
	LineSpacingPts  float64 // absolute height in points; 0 unless exact spacing is used
	FirstLineIndent float64
	SpaceBefore     float64
	SpaceAfter      float64

	SectionBreak bool
	PageSetup    *model.PageSetup
	PageBreak    bool
}

// Text returns the concatenated resolved run text.
func (p ResolvedParagraph) Text() string {
	var out string
	for _, r := range p.Runs {
		out += r.Text
	}
	return out
}

// Resolution is the output of resolving a document: one resolved paragraph
// per input paragraph, preserving order, plus any cycle diagnostics.
type Resolution struct {
	Paragraphs  []ResolvedParagraph
	Diagnostics []model.Diagnostic
}

// resolver holds per-run state; a fresh one is built for every document so
// concurrent validations share nothing.
type resolver struct {
	doc    *model.Document
	flat   map[string]*flatStyle
	cyclic map[string]bool
	diags  []model.Diagnostic
}

// flatStyle is a style definition with its ancestor chain already applied.
type flatStyle struct {
	fontFamily      string
	fontSize        float64
	bold            *bool
	italic          *bool
	alignment       model.Alignment
	lineSpacing     float64
	lineSpacingPts  float64
	firstLineIndent *float64
	spaceBefore     *float64
	spaceAfter      *float64
}

// Resolve cascades formatting over every paragraph and run of the document.
func Resolve(doc *model.Document) Resolution {
	r := &resolver{
		doc:    doc,
		flat:   make(map[string]*flatStyle),
		cyclic: make(map[string]bool),
	}

	paragraphs := make([]ResolvedParagraph, 0, len(doc.Paragraphs))
	for i := range doc.Paragraphs {
		paragraphs = append(paragraphs, r.resolveParagraph(i))
	}

	return Resolution{Paragraphs: paragraphs, Diagnostics: r.diags}
}

func (r *resolver) resolveParagraph(index int) ResolvedParagraph {
	para := &r.doc.Paragraphs[index]
	def := r.doc.Defaults

	resolved := ResolvedParagraph{
		Index:           index,
		Alignment:       def.Alignment,
		LineSpacing:     def.LineSpacing,
		FirstLineIndent: def.FirstLineIndent,
		SpaceBefore:     def.SpaceBefore,
		SpaceAfter:      def.SpaceAfter,
		SectionBreak:    para.SectionBreak,
		PageSetup:       para.PageSetup,
		PageBreak:       para.PageBreak,
	}
	if resolved.LineSpacing <= 0 {
		resolved.LineSpacing = 1.0
	}

	paraStyle := r.flatten(para.StyleID)
	if paraStyle != nil {
		if paraStyle.alignment != model.AlignUnset {
			resolved.Alignment = paraStyle.alignment
		}
		if paraStyle.lineSpacing > 0 {
			resolved.LineSpacing = paraStyle.lineSpacing
			resolved.LineSpacingPts = 0
		}
		if paraStyle.lineSpacingPts > 0 {
			resolved.LineSpacingPts = paraStyle.lineSpacingPts
		}
		if paraStyle.firstLineIndent != nil {
			resolved.FirstLineIndent = *paraStyle.firstLineIndent
		}
		if paraStyle.spaceBefore != nil {
			resolved.SpaceBefore = *paraStyle.spaceBefore
		}
		if paraStyle.spaceAfter != nil {
			resolved.SpaceAfter = *paraStyle.spaceAfter
		}
	}

	// Direct paragraph overrides win over the style chain.
	if para.Alignment != model.AlignUnset {
		resolved.Alignment = para.Alignment
	}
	if para.LineSpacing > 0 {
		resolved.LineSpacing = para.LineSpacing
		resolved.LineSpacingPts = 0
	}
	if para.LineSpacingPts > 0 {
		resolved.LineSpacingPts = para.LineSpacingPts
	}
	if para.FirstLineIndent != nil {
		resolved.FirstLineIndent = *para.FirstLineIndent
	}
	if para.SpaceBefore != nil {
		resolved.SpaceBefore = *para.SpaceBefore
	}
	if para.SpaceAfter != nil {
		resolved.SpaceAfter = *para.SpaceAfter
	}

	resolved.Runs = make([]ResolvedRun, 0, len(para.Runs))
	for i := range para.Runs {
		resolved.Runs = append(resolved.Runs, r.resolveRun(&para.Runs[i], paraStyle, resolved.Alignment))
	}

	return resolved
}

func (r *resolver) resolveRun(run *model.Run, paraStyle *flatStyle, alignment model.Alignment) ResolvedRun {
	def := r.doc.Defaults

	resolved := ResolvedRun{
		Text:       run.Text,
		FontFamily: def.FontFamily,
		FontSize:   def.FontSize,
		Alignment:  alignment,
	}

	apply := func(fs *flatStyle) {
		if fs == nil {
			return
		}
		if fs.fontFamily != "" {
			resolved.FontFamily = fs.fontFamily
		}
		if fs.fontSize > 0 {
			resolved.FontSize = fs.fontSize
		}
		if fs.bold != nil {
			resolved.Bold = *fs.bold
		}
		if fs.italic != nil {
			resolved.Italic = *fs.italic
		}
	}

	apply(paraStyle)
	apply(r.flatten(run.StyleID))

	// Direct run formatting wins.
	if run.FontFamily != "" {
		resolved.FontFamily = run.FontFamily
	}
	if run.FontSize > 0 {
		resolved.FontSize = run.FontSize
	}
	if run.Bold != nil {
		resolved.Bold = *run.Bold
	}
	if run.Italic != nil {
		resolved.Italic = *run.Italic
	}

	return resolved
}

// flatten resolves a style's ancestor chain into one flat style. A missing
// style ID resolves to nil (direct formatting over defaults only); a cyclic
// chain resolves to nil and reports the cycle once per style ID.
func (r *resolver) flatten(styleID string) *flatStyle {
	if styleID == "" {
		return nil
	}
	if fs, ok := r.flat[styleID]; ok {
		return fs
	}
	if r.cyclic[styleID] {
		return nil
	}

	// Walk leaf to root, bounded by the visited set.
	var chain []string
	visited := make(map[string]bool)
	current := styleID
	for current != "" {
		if visited[current] {
			r.cyclic[styleID] = true
			r.diags = append(r.diags, model.Diagnostic{
				Severity: model.SeverityError,
				Rule:     RuleStyleCycle,
				Message:  fmt.Sprintf("style %q has a cyclic inheritance chain; document defaults used instead", styleID),
			})
			return nil
		}
		visited[current] = true

		def, ok := r.doc.Style(current)
		if !ok {
			break
		}
		chain = append([]string{current}, chain...)
		current = def.ParentID
	}

	if len(chain) == 0 {
		// Unknown style reference: treated as using direct formatting only.
		r.flat[styleID] = nil
		return nil
	}

	fs := &flatStyle{}
	for _, id := range chain {
		def, _ := r.doc.Style(id)
		applyDefinition(fs, def)
	}
	r.flat[styleID] = fs
	return fs
}

// applyDefinition overlays one style definition onto a flat style; the
// caller iterates root-first so closer ancestors win.
func applyDefinition(fs *flatStyle, def model.StyleDefinition) {
	if def.FontFamily != "" {
		fs.fontFamily = def.FontFamily
	}
	if def.FontSize > 0 {
		fs.fontSize = def.FontSize
	}
	if def.Bold != nil {
		fs.bold = def.Bold
	}
	if def.Italic != nil {
		fs.italic = def.Italic
	}
	if def.Alignment != model.AlignUnset {
		fs.alignment = def.Alignment
	}
	if def.LineSpacing > 0 {
		fs.lineSpacing = def.LineSpacing
		fs.lineSpacingPts = 0
	}
	if def.LineSpacingPts > 0 {
		fs.lineSpacingPts = def.LineSpacingPts
		fs.lineSpacing = 0
	}
	if def.FirstLineIndent != nil {
		fs.firstLineIndent = def.FirstLineIndent
	}
	if def.SpaceBefore != nil {
		fs.spaceBefore = def.SpaceBefore
	}
	if def.SpaceAfter != nil {
		fs.spaceAfter = def.SpaceAfter
	}
}
