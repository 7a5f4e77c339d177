package rules

import (
	"fmt"

	"github.com/confero/thesischeck/model"
)

// checkLength verifies the estimated page count against the allowed range.
// A zero estimate means the document has no visible content, which is its
// own failure rather than a one-page document.
func checkLength(req Requirements) func(Context) []model.Diagnostic {
	return func(ctx Context) []model.Diagnostic {
		est := ctx.PageEstimate

		if est == 0 {
			return []model.Diagnostic{{
				Severity: model.SeverityError,
				Rule:     RuleLength,
				Message:  "document contains no visible text",
			}}
		}

		if est < req.MinPages || est > req.MaxPages {
			return []model.Diagnostic{{
				Severity: model.SeverityError,
				Rule:     RuleLength,
				Message: fmt.Sprintf("estimated length is %d pages; %d-%d expected",
					est, req.MinPages, req.MaxPages),
			}}
		}

		return nil
	}
}
