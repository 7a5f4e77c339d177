// Package rules implements the validation rule battery. Each rule is an
// independent value consuming the resolved document and producing
// diagnostics; rules never suppress one another and always all run.
package rules

import (
	"strings"

	"github.com/confero/thesischeck/model"
	"github.com/confero/thesischeck/styles"
)

// Rule identifiers as they appear in report diagnostics.
const (
	RulePageGeometry     = "page-geometry"
	RuleFont             = "font"
	RuleHeaderBlock      = "header-block"
	RuleAlignmentSpacing = "alignment-spacing"
	RuleLiterature       = "literature"
	RuleLength           = "length"
	RuleHeaderFooter     = "header-footer"
	RuleCaptionSize      = "caption-size"
)

// Context is the input shared by every rule: the parsed document, its
// resolved formatting, and the page estimate.
type Context struct {
	Document     *model.Document
	Resolution   styles.Resolution
	PageEstimate int
}

// nonEmptyParagraphs returns the resolved paragraphs carrying visible text,
// in document order.
func (c Context) nonEmptyParagraphs() []*styles.ResolvedParagraph {
	var out []*styles.ResolvedParagraph
	for i := range c.Resolution.Paragraphs {
		p := &c.Resolution.Paragraphs[i]
		if strings.TrimSpace(p.Text()) != "" {
			out = append(out, p)
		}
	}
	return out
}

// Rule is one independent check.
type Rule struct {
	ID    string
	Check func(Context) []model.Diagnostic
}

// All returns the full ordered rule battery for the given requirements.
// Order affects only report readability; rules are independent.
func All(req Requirements) []Rule {
	return []Rule{
		{ID: RulePageGeometry, Check: checkPageGeometry(req)},
		{ID: RuleFont, Check: checkFont(req)},
		{ID: RuleHeaderBlock, Check: checkHeaderBlock(req)},
		{ID: RuleAlignmentSpacing, Check: checkAlignmentSpacing(req)},
		{ID: RuleLiterature, Check: checkLiterature(req)},
		{ID: RuleLength, Check: checkLength(req)},
		{ID: RuleHeaderFooter, Check: checkHeaderFooter()},
		{ID: RuleCaptionSize, Check: checkCaptionSize(req)},
	}
}

// Run executes every rule to completion and returns the aggregated
// diagnostics. No rule outcome short-circuits another.
func Run(battery []Rule, ctx Context) []model.Diagnostic {
	var diags []model.Diagnostic
	for _, rule := range battery {
		diags = append(diags, rule.Check(ctx)...)
	}
	return diags
}
