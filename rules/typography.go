package rules

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/confero/thesischeck/model"
)

// checkFont verifies that every resolved run with visible text uses the
// required family and size. One family and one size finding per paragraph
// keeps the report readable on documents restyled wholesale.
func checkFont(req Requirements) func(Context) []model.Diagnostic {
	return func(ctx Context) []model.Diagnostic {
		var diags []model.Diagnostic
		for i := range ctx.Resolution.Paragraphs {
			para := &ctx.Resolution.Paragraphs[i]
			badFamily, badSize := false, false
			for _, run := range para.Runs {
				if strings.TrimSpace(run.Text) == "" {
					continue
				}
				if !badFamily && !strings.EqualFold(run.FontFamily, req.FontFamily) {
					badFamily = true
					diags = append(diags, model.Diagnostic{
						Severity: model.SeverityError,
						Rule:     RuleFont,
						Message:  fmt.Sprintf("font must be %s, got %s", req.FontFamily, run.FontFamily),
					}.At(i))
				}
				if !badSize && !within(run.FontSize, req.FontSizePt, req.Tolerances.FontSizePt) {
					badSize = true
					diags = append(diags, model.Diagnostic{
						Severity: model.SeverityError,
						Rule:     RuleFont,
						Message:  fmt.Sprintf("font size must be %.0fpt, got %.1fpt", req.FontSizePt, run.FontSize),
					}.At(i))
				}
			}
		}
		return diags
	}
}

// captionPattern matches figure and table caption paragraphs.
var captionPattern = regexp.MustCompile(`^(Рис\.\s*\d+|Таблиця\s*\d+)`)

// checkCaptionSize flags figure/table captions not set at the caption size.
func checkCaptionSize(req Requirements) func(Context) []model.Diagnostic {
	return func(ctx Context) []model.Diagnostic {
		var diags []model.Diagnostic
		for i := range ctx.Resolution.Paragraphs {
			para := &ctx.Resolution.Paragraphs[i]
			text := strings.TrimSpace(para.Text())
			if !captionPattern.MatchString(text) {
				continue
			}
			for _, run := range para.Runs {
				if strings.TrimSpace(run.Text) == "" {
					continue
				}
				if !within(run.FontSize, req.CaptionSizePt, req.Tolerances.FontSizePt) {
					diags = append(diags, model.Diagnostic{
						Severity: model.SeverityWarning,
						Rule:     RuleCaptionSize,
						Message:  fmt.Sprintf("captions should be %.0fpt, got %.1fpt", req.CaptionSizePt, run.FontSize),
					}.At(i))
					break
				}
			}
		}
		return diags
	}
}
