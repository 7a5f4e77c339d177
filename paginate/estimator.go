package paginate

import (
	"strings"
	"unicode"

	"github.com/confero/thesischeck/metrics"
	"github.com/confero/thesischeck/model"
	"github.com/confero/thesischeck/styles"
)

// a4 is the fallback geometry when a document carries no usable section
// properties. The estimator must not divide by a zero content width.
var a4 = model.PageSetup{
	Width:        595.3,
	Height:       841.9,
	MarginTop:    56.7,
	MarginBottom: 56.7,
	MarginLeft:   56.7,
	MarginRight:  56.7,
}

// Estimator approximates rendered page counts from resolved formatting.
type Estimator struct {
	table *metrics.Table
}

// NewEstimator creates an estimator over the given width table. A nil table
// selects the built-in defaults.
func NewEstimator(table *metrics.Table) *Estimator {
	if table == nil {
		table = metrics.DefaultTable()
	}
	return &Estimator{table: table}
}

// Estimate returns the approximate page count of the document. An empty
// document (no paragraphs, or only whitespace) estimates to zero pages; any
// document with visible text occupies at least one.
func (e *Estimator) Estimate(doc *model.Document, res styles.Resolution) int {
	setup := usable(doc.PageSetup)
	contentH := setup.ContentHeight()

	pageBreaks := 0
	y := 0.0
	placed := false // anything on the current page
	any := false    // any visible text in the document

	for i := range res.Paragraphs {
		para := &res.Paragraphs[i]

		// A section-break carrier starts a new page and swaps the geometry;
		// any text it carries itself is then placed like any other paragraph.
		if para.SectionBreak {
			if placed {
				pageBreaks++
				y = 0
				placed = false
			}
			if para.PageSetup != nil {
				setup = usable(*para.PageSetup)
				contentH = setup.ContentHeight()
			}
		}

		// An explicit page break pushes the paragraph onto a fresh page.
		if para.PageBreak && placed {
			pageBreaks++
			y = 0
			placed = false
		}

		if strings.TrimSpace(para.Text()) == "" {
			continue
		}
		any = true

		extent := e.paragraphExtent(para, setup)

		// Start a new page when the paragraph would not fit and the current
		// page already holds content.
		if placed && y+extent > contentH {
			pageBreaks++
			y = 0
		}

		// Place the paragraph; an oversized one spills across further pages
		// but always advances, so progress is guaranteed.
		y += extent
		placed = true
		for y > contentH {
			pageBreaks++
			y -= contentH
		}
	}

	if !any {
		return 0
	}
	return pageBreaks + 1
}

// paragraphExtent computes the vertical space a paragraph occupies: wrapped
// line count times line height, plus paragraph spacing.
func (e *Estimator) paragraphExtent(para *styles.ResolvedParagraph, setup model.PageSetup) float64 {
	lines := e.wrapLines(para, setup.ContentWidth())

	var lineHeight float64
	if para.LineSpacingPts > 0 {
		lineHeight = para.LineSpacingPts
	} else {
		lineHeight = metrics.LineHeight(dominantSize(para)) * para.LineSpacing
	}

	return float64(lines)*lineHeight + para.SpaceBefore + para.SpaceAfter
}

// wrapLines greedily wraps the paragraph's words at the content width. The
// first line is narrowed by a positive first-line indent; a hanging indent
// does not widen it.
func (e *Estimator) wrapLines(para *styles.ResolvedParagraph, contentWidth float64) int {
	words := splitWords(para.Runs, e.table)
	if len(words) == 0 {
		return 1
	}

	firstWidth := contentWidth
	if para.FirstLineIndent > 0 {
		firstWidth -= para.FirstLineIndent
	}
	if firstWidth < 1 {
		firstWidth = 1
	}

	lines := 1
	lineWidth := firstWidth
	cur := 0.0
	for _, w := range words {
		needed := w.width
		if cur > 0 {
			needed += w.spaceBefore
		}
		if cur > 0 && cur+needed > lineWidth {
			lines++
			lineWidth = contentWidth
			cur = 0
			needed = w.width
		}
		cur += needed
		// A word longer than the whole line wraps hard mid-word.
		for cur > lineWidth {
			lines++
			cur -= lineWidth
			lineWidth = contentWidth
		}
	}
	return lines
}

// word is a whitespace-delimited token with its estimated width and the
// width of the space preceding it.
type word struct {
	width       float64
	spaceBefore float64
}

// splitWords tokenizes the paragraph's runs, charging each character at the
// average glyph width of its own run's font.
func splitWords(runs []styles.ResolvedRun, table *metrics.Table) []word {
	var words []word
	cur := 0.0
	inWord := false
	spaceW := 0.0

	flush := func() {
		if inWord {
			words = append(words, word{width: cur, spaceBefore: spaceW})
			cur = 0
			inWord = false
		}
	}

	for _, run := range runs {
		glyph := table.GlyphWidth(run.FontFamily, run.FontSize)
		for _, r := range run.Text {
			if unicode.IsSpace(r) {
				flush()
				spaceW = glyph
				continue
			}
			cur += glyph
			inWord = true
		}
	}
	flush()
	return words
}

// dominantSize picks the paragraph's largest run font size, the size that
// governs its line height.
func dominantSize(para *styles.ResolvedParagraph) float64 {
	size := 0.0
	for _, r := range para.Runs {
		if r.FontSize > size {
			size = r.FontSize
		}
	}
	if size == 0 {
		size = 12
	}
	return size
}

// usable replaces unusably small geometry with the A4 fallback.
func usable(ps model.PageSetup) model.PageSetup {
	if ps.ContentWidth() < 36 || ps.ContentHeight() < 36 {
		return a4
	}
	return ps
}
