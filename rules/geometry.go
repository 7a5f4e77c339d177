package rules

import (
	"fmt"

	"github.com/confero/thesischeck/model"
)

// checkPageGeometry verifies page size and margins of the default section
// and of every section-break carrier against the requirements.
func checkPageGeometry(req Requirements) func(Context) []model.Diagnostic {
	return func(ctx Context) []model.Diagnostic {
		diags := checkSetup(req, ctx.Document.PageSetup, nil)
		for i := range ctx.Document.Paragraphs {
			p := &ctx.Document.Paragraphs[i]
			if p.SectionBreak && p.PageSetup != nil {
				idx := i
				diags = append(diags, checkSetup(req, *p.PageSetup, &idx)...)
			}
		}
		return diags
	}
}

func checkSetup(req Requirements, ps model.PageSetup, paragraph *int) []model.Diagnostic {
	var diags []model.Diagnostic

	add := func(msg string) {
		d := model.Diagnostic{
			Severity:       model.SeverityError,
			Rule:           RulePageGeometry,
			Message:        msg,
			ParagraphIndex: paragraph,
		}
		diags = append(diags, d)
	}

	sizeTol := req.pageSizeTolerancePt()
	if !within(ps.Width, req.pageWidthPt(), sizeTol) || !within(ps.Height, req.pageHeightPt(), sizeTol) {
		add(fmt.Sprintf("page size must be %.0fx%.0fmm, got %.1fx%.1fmm",
			req.PageWidthMM, req.PageHeightMM, ps.Width/ptPerMM, ps.Height/ptPerMM))
	}

	marginTol := req.marginTolerancePt()
	margins := []struct {
		side  string
		value float64
	}{
		{"top", ps.MarginTop},
		{"bottom", ps.MarginBottom},
		{"left", ps.MarginLeft},
		{"right", ps.MarginRight},
	}
	for _, m := range margins {
		if !within(m.value, req.marginPt(), marginTol) {
			add(fmt.Sprintf("%s margin must be %.0fmm, got %.1fmm",
				m.side, req.MarginMM, m.value/ptPerMM))
		}
	}

	return diags
}
