package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confero/thesischeck/model"
)

func TestPageGeometry_WithinTolerance(t *testing.T) {
	doc := compliantDocument()
	// 20.1mm margin against a 0.75mm tolerance.
	doc.PageSetup.MarginTop = 20.1 * ptPerMM

	diags := diagnosticsFor(t, RulePageGeometry, ctxFor(doc, 1))
	assert.Empty(t, diags)
}

func TestPageGeometry_OutsideTolerance(t *testing.T) {
	doc := compliantDocument()
	doc.PageSetup.MarginTop = 25 * ptPerMM

	diags := diagnosticsFor(t, RulePageGeometry, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Equal(t, model.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "top margin")
}

func TestPageGeometry_WrongPageSize(t *testing.T) {
	doc := compliantDocument()
	doc.PageSetup.Width = 216 * ptPerMM // US Letter width
	doc.PageSetup.Height = 279 * ptPerMM

	diags := diagnosticsFor(t, RulePageGeometry, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "page size")
}

func TestPageGeometry_ChecksSectionBreakCarriers(t *testing.T) {
	doc := compliantDocument()
	bad := a4Setup()
	bad.MarginLeft = 10 * ptPerMM
	doc.Paragraphs = append(doc.Paragraphs, model.Paragraph{SectionBreak: true, PageSetup: &bad})

	diags := diagnosticsFor(t, RulePageGeometry, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	require.NotNil(t, diags[0].ParagraphIndex)
	assert.Equal(t, len(doc.Paragraphs)-1, *diags[0].ParagraphIndex)
}

func TestFont_WrongFamilyAndSize(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[3].Runs = []model.Run{
		{Text: "wrong family", FontFamily: "Arial"},
		{Text: "wrong size", FontSize: 12},
	}

	diags := diagnosticsFor(t, RuleFont, ctxFor(doc, 1))
	require.Len(t, diags, 2)
	for _, d := range diags {
		assert.Equal(t, model.SeverityError, d.Severity)
		require.NotNil(t, d.ParagraphIndex)
		assert.Equal(t, 3, *d.ParagraphIndex)
	}
}

func TestFont_SizeWithinTolerance(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[3].Runs[0].FontSize = 14.4 // within the 0.5pt tolerance

	diags := diagnosticsFor(t, RuleFont, ctxFor(doc, 1))
	assert.Empty(t, diags)
}

func TestFont_FamilyCaseInsensitive(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[3].Runs[0].FontFamily = "times new roman"

	diags := diagnosticsFor(t, RuleFont, ctxFor(doc, 1))
	assert.Empty(t, diags)
}

func TestHeaderBlock_TooFewParagraphs(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs = doc.Paragraphs[:2]

	diags := diagnosticsFor(t, RuleHeaderBlock, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Equal(t, model.SeverityError, diags[0].Severity)
}

func TestHeaderBlock_LowercaseTitle(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[0].Runs[0].Text = "a lowercase title"

	diags := diagnosticsFor(t, RuleHeaderBlock, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "capital letters")
	require.NotNil(t, diags[0].ParagraphIndex)
	assert.Equal(t, 0, *diags[0].ParagraphIndex)
}

func TestHeaderBlock_UncenteredLines(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[0].Alignment = model.AlignLeft
	doc.Paragraphs[2].Alignment = model.AlignLeft

	diags := diagnosticsFor(t, RuleHeaderBlock, ctxFor(doc, 1))
	require.Len(t, diags, 2)
	assert.Contains(t, diags[0].Message, "title")
	assert.Contains(t, diags[1].Message, "organization")
}

func TestHeaderBlock_AuthorHeuristics(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[1].Runs[0].Text = "just some names without initials"

	diags := diagnosticsFor(t, RuleHeaderBlock, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Equal(t, model.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "Surname")
}

func TestLiterature_CaseAndWhitespaceInsensitive(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[6].Runs[0].Text = "  ЛІТЕРАТУРА  "

	diags := diagnosticsFor(t, RuleLiterature, ctxFor(doc, 1))
	assert.Empty(t, diags)
}

func TestLiterature_Missing(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[6].Runs[0].Text = "References"

	diags := diagnosticsFor(t, RuleLiterature, ctxFor(doc, 1))
	require.NotEmpty(t, diags)
	assert.Equal(t, model.SeverityError, diags[0].Severity)
}

func TestLiterature_UnnumberedItems(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[7].Runs[0].Text = "Author A. Title without numbering."

	diags := diagnosticsFor(t, RuleLiterature, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Equal(t, model.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "numbered")
}

func TestAlignmentSpacing_AbsoluteLineSpacing(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[3].LineSpacingPts = 18

	diags := diagnosticsFor(t, RuleAlignmentSpacing, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Equal(t, model.SeverityWarning, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "absolute")
}

func TestAlignmentSpacing_WrongIndent(t *testing.T) {
	doc := compliantDocument()
	zero := 0.0
	doc.Paragraphs[4].FirstLineIndent = &zero

	diags := diagnosticsFor(t, RuleAlignmentSpacing, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0].Message, "indent")
	require.NotNil(t, diags[0].ParagraphIndex)
	assert.Equal(t, 4, *diags[0].ParagraphIndex)
}

func TestLength_Bounds(t *testing.T) {
	doc := compliantDocument()

	tests := []struct {
		name     string
		estimate int
		wantDiag bool
	}{
		{"zero pages", 0, true},
		{"one page", 1, false},
		{"two pages", 2, false},
		{"three pages", 3, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			diags := diagnosticsFor(t, RuleLength, ctxFor(doc, tt.estimate))
			if tt.wantDiag {
				require.Len(t, diags, 1)
				assert.Equal(t, model.SeverityError, diags[0].Severity)
			} else {
				assert.Empty(t, diags)
			}
		})
	}
}

func TestHeaderFooter_TextForbidden(t *testing.T) {
	doc := compliantDocument()
	doc.HeaderFooterText = map[string]string{"word/header1.xml": "Draft"}

	diags := diagnosticsFor(t, RuleHeaderFooter, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Equal(t, model.SeverityError, diags[0].Severity)
	assert.Contains(t, diags[0].Message, "word/header1.xml")
}

func TestCaptionSize(t *testing.T) {
	doc := compliantDocument()
	caption := model.Paragraph{
		Alignment: model.AlignCenter,
		Runs:      []model.Run{{Text: "Рис. 1 — Architecture", FontSize: 14}},
	}
	// Insert caption into the body, before the literature section.
	doc.Paragraphs = append(doc.Paragraphs[:6:6], append([]model.Paragraph{caption}, doc.Paragraphs[6:]...)...)

	diags := diagnosticsFor(t, RuleCaptionSize, ctxFor(doc, 1))
	require.Len(t, diags, 1)
	assert.Equal(t, model.SeverityWarning, diags[0].Severity)

	// At the caption size, no finding.
	doc.Paragraphs[6].Runs[0].FontSize = 12
	assert.Empty(t, diagnosticsFor(t, RuleCaptionSize, ctxFor(doc, 1)))
}
