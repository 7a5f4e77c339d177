package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/confero/thesischeck/model"
	"github.com/confero/thesischeck/styles"
)

func a4Setup() model.PageSetup {
	const mm = ptPerMM
	return model.PageSetup{
		Width:        210 * mm,
		Height:       297 * mm,
		MarginTop:    20 * mm,
		MarginBottom: 20 * mm,
		MarginLeft:   20 * mm,
		MarginRight:  20 * mm,
	}
}

func indentPt() float64 { return 1.25 * ptPerCM }

// compliantDocument builds a document that satisfies the full default rule
// battery when paired with a page estimate of 1.
func compliantDocument() *model.Document {
	indent := indentPt()
	centered := func(text string) model.Paragraph {
		return model.Paragraph{
			Alignment: model.AlignCenter,
			Runs:      []model.Run{{Text: text}},
		}
	}
	body := func(text string) model.Paragraph {
		return model.Paragraph{Runs: []model.Run{{Text: text}}}
	}

	return &model.Document{
		Paragraphs: []model.Paragraph{
			centered("MODEL-BASED VALIDATION OF THESIS FORMATTING"),
			centered("Shevchenko T. H., Franko I. Ya."),
			centered("National Technical University"),
			body("The body of the thesis is justified, indented, and spaced per the submission instructions."),
			body("A second body paragraph keeps the literature section away from the start."),
			body("А third paragraph of body text continues the argument."),
			centered("Література"),
			body("1. Author A. Title of the referenced work."),
		},
		Styles:    map[string]model.StyleDefinition{},
		PageSetup: a4Setup(),
		Defaults: model.Defaults{
			FontFamily:      "Times New Roman",
			FontSize:        14,
			Alignment:       model.AlignJustified,
			LineSpacing:     1.15,
			FirstLineIndent: indent,
		},
	}
}

func ctxFor(doc *model.Document, pageEstimate int) Context {
	return Context{
		Document:     doc,
		Resolution:   styles.Resolve(doc),
		PageEstimate: pageEstimate,
	}
}

func diagnosticsFor(t *testing.T, ruleID string, ctx Context) []model.Diagnostic {
	t.Helper()
	for _, rule := range All(Default()) {
		if rule.ID == ruleID {
			return rule.Check(ctx)
		}
	}
	t.Fatalf("unknown rule %q", ruleID)
	return nil
}

func TestRun_CompliantDocumentPasses(t *testing.T) {
	diags := Run(All(Default()), ctxFor(compliantDocument(), 1))
	assert.Empty(t, diags)
}

func TestRun_RulesAreIndependent(t *testing.T) {
	// Break geometry and length at once: both rules must still report.
	doc := compliantDocument()
	doc.PageSetup.MarginLeft = 40 * ptPerMM

	diags := Run(All(Default()), ctxFor(doc, 5))

	byRule := map[string]int{}
	for _, d := range diags {
		byRule[d.Rule]++
	}
	assert.Equal(t, 1, byRule[RulePageGeometry])
	assert.Equal(t, 1, byRule[RuleLength])
}

func TestRun_WarningsDoNotFailVerdict(t *testing.T) {
	doc := compliantDocument()
	doc.Paragraphs[4].Alignment = model.AlignLeft

	diags := Run(All(Default()), ctxFor(doc, 1))
	report := model.NewReport(1, diags)

	require.Len(t, report.Warnings(), 1)
	assert.Empty(t, report.Errors())
	assert.True(t, report.OK)
}
