// Package thesischeck validates conference thesis documents in DOCX form
// against formatting requirements: page geometry, typography, the opening
// header block, body formatting, the literature section, and length.
//
// Basic usage:
//
//	report, err := thesischeck.New().Validate(data)
//	if err != nil {
//	    // handle error (unreadable or malformed document)
//	}
//	if !report.OK {
//	    for _, d := range report.Errors() {
//	        log.Println(d.Message)
//	    }
//	}
//
// With custom requirements:
//
//	req, err := rules.Load("requirements.yaml")
//	if err != nil {
//	    // handle error
//	}
//	report, err := thesischeck.New(thesischeck.WithRequirements(req)).Validate(data)
//
// For finer control the lower-level docx, styles, paginate, and rules
// packages are also available.
package thesischeck

import (
	"github.com/confero/thesischeck/docx"
	"github.com/confero/thesischeck/metrics"
	"github.com/confero/thesischeck/model"
	"github.com/confero/thesischeck/paginate"
	"github.com/confero/thesischeck/rules"
	"github.com/confero/thesischeck/styles"
)

// Validator runs the full validation pipeline: container reading, model
// building, style resolution, page estimation, and the rule battery. A
// Validator is immutable after construction and safe for concurrent use.
type Validator struct {
	requirements rules.Requirements
	table        *metrics.Table
	battery      []rules.Rule
}

// Option configures a Validator.
type Option func(*Validator)

// WithRequirements replaces the default formatting requirements.
func WithRequirements(req rules.Requirements) Option {
	return func(v *Validator) {
		v.requirements = req
	}
}

// WithMetricsTable replaces the font metrics used for page estimation.
func WithMetricsTable(table *metrics.Table) Option {
	return func(v *Validator) {
		v.table = table
	}
}

// New builds a Validator with the default requirements and metrics, then
// applies the given options.
func New(opts ...Option) *Validator {
	v := &Validator{
		requirements: rules.Default(),
		table:        metrics.DefaultTable(),
	}
	for _, opt := range opts {
		opt(v)
	}
	v.battery = rules.All(v.requirements)
	return v
}

// Requirements returns the requirements the Validator checks against.
func (v *Validator) Requirements() rules.Requirements {
	return v.requirements
}

// Validate runs the pipeline over raw DOCX bytes. A non-nil error means the
// document could not be validated at all (not a readable package, or
// malformed markup in a mandatory part); errors wrap docx.ErrCorruptPackage
// or docx.ErrMalformedMarkup accordingly. Recoverable oddities surface as
// diagnostics in the report instead. Validation is deterministic: identical
// bytes produce identical reports.
func (v *Validator) Validate(data []byte) (*model.ValidationReport, error) {
	pkg, err := docx.OpenBytes(data)
	if err != nil {
		return nil, err
	}

	doc, buildDiags, err := docx.Build(pkg)
	if err != nil {
		return nil, err
	}

	res := styles.Resolve(doc)
	estimate := paginate.NewEstimator(v.table).Estimate(doc, res)

	diags := make([]model.Diagnostic, 0, len(buildDiags)+len(res.Diagnostics))
	diags = append(diags, buildDiags...)
	diags = append(diags, res.Diagnostics...)
	diags = append(diags, rules.Run(v.battery, rules.Context{
		Document:     doc,
		Resolution:   res,
		PageEstimate: estimate,
	})...)

	return model.NewReport(estimate, diags), nil
}
