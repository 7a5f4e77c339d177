package rules

import (
	"fmt"
	"strings"

	"github.com/confero/thesischeck/model"
	"github.com/confero/thesischeck/styles"
)

// bodySampleLimit caps how many body paragraphs the alignment rule
// inspects; long documents fail the length rule anyway.
const bodySampleLimit = 30

// checkAlignmentSpacing verifies body paragraph formatting: justified
// alignment, the required line-spacing multiplier, and the first-line
// indent. The body starts after the three header lines and ends before the
// literature section. Findings are warnings: formatting here is often
// carried by styles the author cannot see.
func checkAlignmentSpacing(req Requirements) func(Context) []model.Diagnostic {
	marker := foldMarker(req.LiteratureMarker)

	return func(ctx Context) []model.Diagnostic {
		paras := ctx.nonEmptyParagraphs()
		if len(paras) < 4 {
			return nil
		}

		body := paras[3:]
		for i, p := range body {
			if foldMarker(p.Text()) == marker {
				body = body[:i]
				break
			}
		}
		if len(body) > bodySampleLimit {
			body = body[:bodySampleLimit]
		}

		var diags []model.Diagnostic
		for _, p := range body {
			diags = append(diags, checkBodyParagraph(req, p)...)
		}
		return diags
	}
}

func checkBodyParagraph(req Requirements, p *styles.ResolvedParagraph) []model.Diagnostic {
	var diags []model.Diagnostic

	warn := func(msg string) {
		diags = append(diags, model.Diagnostic{
			Severity: model.SeverityWarning,
			Rule:     RuleAlignmentSpacing,
			Message:  msg,
		}.At(p.Index))
	}

	// Captions are centered by convention; skip them.
	if captionPattern.MatchString(strings.TrimSpace(p.Text())) {
		return nil
	}

	if p.Alignment != model.AlignJustified {
		warn(fmt.Sprintf("body text should be justified, got %s alignment", p.Alignment))
	}

	if p.LineSpacingPts > 0 {
		warn("line spacing is set as an absolute height; a multiplier is expected")
	} else if !within(p.LineSpacing, req.LineSpacing, req.Tolerances.LineSpacing) {
		warn(fmt.Sprintf("line spacing should be %.2f, got %.2f", req.LineSpacing, p.LineSpacing))
	}

	if !within(p.FirstLineIndent, req.indentPt(), req.indentTolerancePt()) {
		warn(fmt.Sprintf("first-line indent should be %.2fcm, got %.2fcm",
			req.FirstLineIndentCM, p.FirstLineIndent/ptPerCM))
	}

	return diags
}
