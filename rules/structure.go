package rules

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/confero/thesischeck/model"
)

// initialsPattern matches "Surname I. O." author entries, Cyrillic or Latin.
var initialsPattern = regexp.MustCompile(`[A-Za-zА-ЯІЇЄҐа-яіїєґ'’\-]+\s+[A-ZА-ЯІЇЄҐ]\.\s*[A-ZА-ЯІЇЄҐ]\.`)

// checkHeaderBlock verifies the document opens with a title, an authors
// line, and an organization line, and that the block is formatted per the
// submission instructions: all three centered, the title in capitals.
func checkHeaderBlock(req Requirements) func(Context) []model.Diagnostic {
	return func(ctx Context) []model.Diagnostic {
		paras := ctx.nonEmptyParagraphs()
		if len(paras) < 3 {
			return []model.Diagnostic{{
				Severity: model.SeverityError,
				Rule:     RuleHeaderBlock,
				Message:  "document must open with three lines: title, authors, organization",
			}}
		}

		var diags []model.Diagnostic
		title, authors := paras[0], paras[1]

		labels := []string{"title", "authors", "organization"}
		for i, label := range labels {
			if paras[i].Alignment != model.AlignCenter {
				diags = append(diags, model.Diagnostic{
					Severity: model.SeverityError,
					Rule:     RuleHeaderBlock,
					Message:  fmt.Sprintf("%s line must be centered", label),
				}.At(paras[i].Index))
			}
		}

		titleText := strings.TrimSpace(title.Text())
		if titleText != strings.ToUpper(titleText) {
			diags = append(diags, model.Diagnostic{
				Severity: model.SeverityError,
				Rule:     RuleHeaderBlock,
				Message:  "title must be written in capital letters",
			}.At(title.Index))
		}

		authorsText := strings.TrimSpace(authors.Text())
		if !strings.Contains(authorsText, ",") && initialsCount(authorsText) > 1 {
			diags = append(diags, model.Diagnostic{
				Severity: model.SeverityWarning,
				Rule:     RuleHeaderBlock,
				Message:  "authors are usually separated by commas",
			}.At(authors.Index))
		}
		if !initialsPattern.MatchString(authorsText) {
			diags = append(diags, model.Diagnostic{
				Severity: model.SeverityWarning,
				Rule:     RuleHeaderBlock,
				Message:  "authors line should follow the \"Surname I. O.\" pattern",
			}.At(authors.Index))
		}

		return diags
	}
}

func initialsCount(s string) int {
	return len(initialsPattern.FindAllString(s, -1))
}

// checkLiterature requires a literature section heading and, when present,
// checks its placement and item numbering.
func checkLiterature(req Requirements) func(Context) []model.Diagnostic {
	marker := foldMarker(req.LiteratureMarker)
	itemPattern := regexp.MustCompile(`^\s*\d+\.`)

	return func(ctx Context) []model.Diagnostic {
		paras := ctx.nonEmptyParagraphs()

		pos := -1
		for i, p := range paras {
			if foldMarker(p.Text()) == marker {
				pos = i
				break
			}
		}

		if pos < 0 {
			return []model.Diagnostic{{
				Severity: model.SeverityError,
				Rule:     RuleLiterature,
				Message:  fmt.Sprintf("missing %q section", req.LiteratureMarker),
			}}
		}

		var diags []model.Diagnostic
		if pos < int(float64(len(paras))*0.6) {
			diags = append(diags, model.Diagnostic{
				Severity: model.SeverityWarning,
				Rule:     RuleLiterature,
				Message:  fmt.Sprintf("%q section should be near the end of the document", req.LiteratureMarker),
			}.At(paras[pos].Index))
		}

		after := paras[pos+1:]
		if len(after) > 5 {
			after = after[:5]
		}
		numbered := false
		for _, p := range after {
			if itemPattern.MatchString(strings.TrimSpace(p.Text())) {
				numbered = true
				break
			}
		}
		if !numbered {
			diags = append(diags, model.Diagnostic{
				Severity: model.SeverityWarning,
				Rule:     RuleLiterature,
				Message:  "literature entries should be numbered (1., 2., ...)",
			}.At(paras[pos].Index))
		}

		return diags
	}
}

// foldMarker canonicalizes heading text for comparison: NFC-normalized,
// trimmed, lowercased. The marker is Cyrillic and may arrive decomposed.
func foldMarker(s string) string {
	return strings.ToLower(strings.TrimSpace(norm.NFC.String(s)))
}

// sortedKeys returns map keys in sorted order for stable diagnostics.
func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// checkHeaderFooter forbids running headers and footers with text.
func checkHeaderFooter() func(Context) []model.Diagnostic {
	return func(ctx Context) []model.Diagnostic {
		var diags []model.Diagnostic
		for _, part := range sortedKeys(ctx.Document.HeaderFooterText) {
			diags = append(diags, model.Diagnostic{
				Severity: model.SeverityError,
				Rule:     RuleHeaderFooter,
				Message:  fmt.Sprintf("running headers and footers are not allowed (%s contains text)", part),
			})
		}
		return diags
	}
}
