package model

// Severity classifies a diagnostic. Only error-severity diagnostics fail
// a document; warnings are advisory.
type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
)

// Diagnostic is one reported rule violation or informational note.
type Diagnostic struct {
	Severity Severity `json:"severity"`
	Rule     string   `json:"rule"`
	Message  string   `json:"message"`

	// ParagraphIndex locates the offending paragraph, when the finding is
	// tied to one. Serialized as null otherwise.
	ParagraphIndex *int `json:"paragraph_index"`
}

// At attaches a paragraph index to a diagnostic.
func (d Diagnostic) At(paragraph int) Diagnostic {
	d.ParagraphIndex = &paragraph
	return d
}

// ValidationReport aggregates all diagnostics from one validation run.
type ValidationReport struct {
	OK                bool         `json:"ok"`
	PageCountEstimate int          `json:"page_count_estimate"`
	Diagnostics       []Diagnostic `json:"diagnostics"`
}

// NewReport builds a report from diagnostics and a page estimate. The
// verdict passes iff no diagnostic carries error severity.
func NewReport(pageEstimate int, diags []Diagnostic) *ValidationReport {
	if diags == nil {
		diags = []Diagnostic{}
	}
	ok := true
	for _, d := range diags {
		if d.Severity == SeverityError {
			ok = false
			break
		}
	}
	return &ValidationReport{
		OK:                ok,
		PageCountEstimate: pageEstimate,
		Diagnostics:       diags,
	}
}

// Errors returns only the error-severity diagnostics.
func (r *ValidationReport) Errors() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityError {
			out = append(out, d)
		}
	}
	return out
}

// Warnings returns only the warning-severity diagnostics.
func (r *ValidationReport) Warnings() []Diagnostic {
	var out []Diagnostic
	for _, d := range r.Diagnostics {
		if d.Severity == SeverityWarning {
			out = append(out, d)
		}
	}
	return out
}
