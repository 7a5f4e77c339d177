package docx

import (
	"encoding/xml"
	"fmt"
	"strconv"
	"strings"

	"github.com/confero/thesischeck/model"
)

// Word's built-in defaults, used when docDefaults omits a value.
const (
	fallbackFont = "Calibri"
	fallbackSize = 11.0
)

// RuleUnsupported identifies diagnostics for recognized-but-unhandled markup.
const RuleUnsupported = "unsupported-construct"

// Build parses the package parts into the document model. Recognized but
// unsupported constructs (tables, drawings, symbol characters) are skipped
// and reported as warning diagnostics; non-well-formed markup in any part is
// a fatal ErrMalformedMarkup.
func Build(pkg *Package) (*model.Document, []model.Diagnostic, error) {
	doc := &model.Document{
		Styles:           make(map[string]model.StyleDefinition),
		HeaderFooterText: make(map[string]string),
	}
	var diags []model.Diagnostic

	if data, ok := pkg.Styles(); ok {
		var styles stylesXML
		if err := xml.Unmarshal(data, &styles); err != nil {
			return nil, nil, fmt.Errorf("%w: %s: %v", ErrMalformedMarkup, partStyles, err)
		}
		doc.Defaults = buildDefaults(&styles)
		for i := range styles.Styles {
			def := buildStyleDefinition(&styles.Styles[i])
			doc.Styles[def.ID] = def
		}
	} else {
		doc.Defaults = model.Defaults{
			FontFamily:  fallbackFont,
			FontSize:    fallbackSize,
			Alignment:   model.AlignLeft,
			LineSpacing: 1.0,
		}
	}

	var document documentXML
	if err := xml.Unmarshal(pkg.MainDocument(), &document); err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrMalformedMarkup, partDocument, err)
	}

	if document.Body != nil {
		if document.Body.SectPr != nil {
			doc.PageSetup = buildPageSetup(document.Body.SectPr)
		}
		for i := range document.Body.Paragraphs {
			para, paraDiags := buildParagraph(&document.Body.Paragraphs[i], len(doc.Paragraphs))
			doc.Paragraphs = append(doc.Paragraphs, para)
			diags = append(diags, paraDiags...)
		}
		for range document.Body.Tables {
			diags = append(diags, model.Diagnostic{
				Severity: model.SeverityWarning,
				Rule:     RuleUnsupported,
				Message:  "table ignored: tables are not laid out by the validator",
			})
		}
	}

	hfDiags, err := buildHeadersFooters(pkg, doc)
	if err != nil {
		return nil, nil, err
	}
	diags = append(diags, hfDiags...)

	return doc, diags, nil
}

// buildDefaults extracts document default formatting from docDefaults.
func buildDefaults(styles *stylesXML) model.Defaults {
	def := model.Defaults{
		FontFamily:  fallbackFont,
		FontSize:    fallbackSize,
		Alignment:   model.AlignLeft,
		LineSpacing: 1.0,
	}

	rpr := styles.DocDefaults.RPrDefault.RPr
	if f := fontFamily(rpr.Font); f != "" {
		def.FontFamily = f
	}
	if size := parseHalfPoints(rpr.FontSize.Val); size > 0 {
		def.FontSize = size
	}

	ppr := styles.DocDefaults.PPrDefault.PPr
	if a := parseAlignment(ppr.Justification.Val); a != model.AlignUnset {
		def.Alignment = a
	}
	if mult, _ := parseLineSpacing(ppr.Spacing); mult > 0 {
		def.LineSpacing = mult
	}
	if ppr.Indent.FirstLine != "" {
		def.FirstLineIndent = parseTwips(ppr.Indent.FirstLine)
	}
	if ppr.Spacing.Before != "" {
		def.SpaceBefore = parseTwips(ppr.Spacing.Before)
	}
	if ppr.Spacing.After != "" {
		def.SpaceAfter = parseTwips(ppr.Spacing.After)
	}

	return def
}

// buildStyleDefinition converts one style entry to the catalogue form.
func buildStyleDefinition(s *styleDefXML) model.StyleDefinition {
	def := model.StyleDefinition{
		ID:         s.StyleID,
		Name:       s.Name.Val,
		ParentID:   s.BasedOn.Val,
		FontFamily: fontFamily(s.RPr.Font),
		FontSize:   parseHalfPoints(s.RPr.FontSize.Val),
		Alignment:  parseAlignment(s.PPr.Justification.Val),
	}
	if s.RPr.Bold.set() {
		v := s.RPr.Bold.value()
		def.Bold = &v
	}
	if s.RPr.Italic.set() {
		v := s.RPr.Italic.value()
		def.Italic = &v
	}
	def.LineSpacing, def.LineSpacingPts = parseLineSpacing(s.PPr.Spacing)
	def.FirstLineIndent = parseFirstLineIndent(s.PPr.Indent)
	if s.PPr.Spacing.Before != "" {
		v := parseTwips(s.PPr.Spacing.Before)
		def.SpaceBefore = &v
	}
	if s.PPr.Spacing.After != "" {
		v := parseTwips(s.PPr.Spacing.After)
		def.SpaceAfter = &v
	}
	return def
}

// buildParagraph converts one paragraph element, reporting unsupported
// constructs found inside it.
func buildParagraph(p *paragraphXML, index int) (model.Paragraph, []model.Diagnostic) {
	para := model.Paragraph{
		StyleID:   p.Properties.Style.Val,
		Alignment: parseAlignment(p.Properties.Justification.Val),
	}
	para.LineSpacing, para.LineSpacingPts = parseLineSpacing(p.Properties.Spacing)
	para.FirstLineIndent = parseFirstLineIndent(p.Properties.Indent)
	if p.Properties.Spacing.Before != "" {
		v := parseTwips(p.Properties.Spacing.Before)
		para.SpaceBefore = &v
	}
	if p.Properties.Spacing.After != "" {
		v := parseTwips(p.Properties.Spacing.After)
		para.SpaceAfter = &v
	}

	if p.Properties.SectPr != nil {
		para.SectionBreak = true
		ps := buildPageSetup(p.Properties.SectPr)
		para.PageSetup = &ps
	}

	var diags []model.Diagnostic
	addRuns := func(runs []runXML) {
		for i := range runs {
			run, ok := buildRun(&runs[i])
			if ok {
				para.Runs = append(para.Runs, run)
			}
			if len(runs[i].Drawings) > 0 {
				diags = append(diags, model.Diagnostic{
					Severity: model.SeverityWarning,
					Rule:     RuleUnsupported,
					Message:  "embedded drawing ignored",
				}.At(index))
			}
			if len(runs[i].Symbols) > 0 {
				diags = append(diags, model.Diagnostic{
					Severity: model.SeverityWarning,
					Rule:     RuleUnsupported,
					Message:  "symbol character ignored",
				}.At(index))
			}
			for _, br := range runs[i].Breaks {
				if br.Type == "page" {
					para.PageBreak = true
				}
			}
		}
	}
	addRuns(p.Runs)
	for i := range p.Hyperlinks {
		addRuns(p.Hyperlinks[i].Runs)
	}

	return para, diags
}

// buildRun converts a run element. Runs carrying no representable content
// (only drawings or symbols) are dropped; their constructs are reported by
// the caller.
func buildRun(r *runXML) (model.Run, bool) {
	run := model.Run{
		Text:       extractRunText(r),
		StyleID:    r.Properties.Style.Val,
		FontFamily: fontFamily(r.Properties.Font),
		FontSize:   parseHalfPoints(r.Properties.FontSize.Val),
	}
	if r.Properties.Bold.set() {
		v := r.Properties.Bold.value()
		run.Bold = &v
	}
	if r.Properties.Italic.set() {
		v := r.Properties.Italic.value()
		run.Italic = &v
	}
	if run.Text == "" && run.StyleID == "" && run.FontFamily == "" && run.FontSize == 0 {
		return model.Run{}, false
	}
	return run, true
}

// extractRunText assembles the text content of a run.
func extractRunText(r *runXML) string {
	var parts []string
	for _, t := range r.Text {
		parts = append(parts, t.Value)
	}
	for range r.Tabs {
		parts = append(parts, "\t")
	}
	for _, br := range r.Breaks {
		if br.Type == "page" {
			parts = append(parts, "\n\n")
		} else {
			parts = append(parts, "\n")
		}
	}
	return strings.Join(parts, "")
}

// buildHeadersFooters parses header/footer parts and records any text they
// contain so the rule engine can flag it.
func buildHeadersFooters(pkg *Package, doc *model.Document) ([]model.Diagnostic, error) {
	for _, name := range pkg.HeaderFooterParts() {
		data, _ := pkg.Part(name)

		var paras []paragraphXML
		if strings.HasPrefix(name, "word/header") {
			var hdr headerXML
			if err := xml.Unmarshal(data, &hdr); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrMalformedMarkup, name, err)
			}
			paras = hdr.Paragraphs
		} else {
			var ftr footerXML
			if err := xml.Unmarshal(data, &ftr); err != nil {
				return nil, fmt.Errorf("%w: %s: %v", ErrMalformedMarkup, name, err)
			}
			paras = ftr.Paragraphs
		}

		var texts []string
		for i := range paras {
			para, _ := buildParagraph(&paras[i], -1)
			if txt := strings.TrimSpace(para.Text()); txt != "" {
				texts = append(texts, txt)
			}
		}
		if len(texts) > 0 {
			doc.HeaderFooterText[name] = strings.Join(texts, "\n")
		}
	}
	return nil, nil
}

// buildPageSetup converts section properties from twips to points.
func buildPageSetup(s *sectPrXML) model.PageSetup {
	return model.PageSetup{
		Width:        parseTwips(s.PgSz.W),
		Height:       parseTwips(s.PgSz.H),
		MarginTop:    parseTwips(s.PgMar.Top),
		MarginBottom: parseTwips(s.PgMar.Bottom),
		MarginLeft:   parseTwips(s.PgMar.Left),
		MarginRight:  parseTwips(s.PgMar.Right),
	}
}

// fontFamily picks the effective family from rFonts.
func fontFamily(f fontXML) string {
	if f.ASCII != "" {
		return f.ASCII
	}
	return f.HAnsi
}

// parseAlignment maps a w:jc value to the model alignment.
func parseAlignment(val string) model.Alignment {
	switch val {
	case "left", "start":
		return model.AlignLeft
	case "center":
		return model.AlignCenter
	case "right", "end":
		return model.AlignRight
	case "both", "justify", "distribute":
		return model.AlignJustified
	default:
		return model.AlignUnset
	}
}

// parseLineSpacing interprets w:spacing line/lineRule. With rule "auto" (or
// absent) the value is in 240ths of a line and yields a multiplier;
// otherwise it is an absolute height in twips.
func parseLineSpacing(s spacingXML) (multiplier, exactPts float64) {
	if s.Line == "" {
		return 0, 0
	}
	switch s.LineRule {
	case "", "auto":
		return parseNumber(s.Line) / 240, 0
	default: // exact, atLeast
		return 0, parseTwips(s.Line)
	}
}

// parseFirstLineIndent interprets w:ind firstLine/hanging. A hanging indent
// is represented as a negative first-line indent.
func parseFirstLineIndent(ind indentXML) *float64 {
	if ind.FirstLine != "" {
		v := parseTwips(ind.FirstLine)
		return &v
	}
	if ind.Hanging != "" {
		v := -parseTwips(ind.Hanging)
		return &v
	}
	return nil
}

// parseHalfPoints parses a size in half-points to points.
// Word uses half-points for font sizes (e.g., "24" = 12pt).
func parseHalfPoints(s string) float64 {
	return parseNumber(s) / 2
}

// parseTwips parses a size in twips to points. 1 point = 20 twips.
func parseTwips(s string) float64 {
	return parseNumber(s) / 20
}

func parseNumber(s string) float64 {
	val, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return val
}
