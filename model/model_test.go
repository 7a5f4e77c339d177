package model

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageSetup_ContentDimensions(t *testing.T) {
	ps := PageSetup{
		Width:        595.3,
		Height:       841.9,
		MarginTop:    56.7,
		MarginBottom: 56.7,
		MarginLeft:   56.7,
		MarginRight:  56.7,
	}

	assert.InDelta(t, 481.9, ps.ContentWidth(), 0.01)
	assert.InDelta(t, 728.5, ps.ContentHeight(), 0.01)
}

func TestParagraph_Text(t *testing.T) {
	tests := []struct {
		name string
		runs []Run
		want string
	}{
		{"empty", nil, ""},
		{"single", []Run{{Text: "hello"}}, "hello"},
		{"multiple", []Run{{Text: "hello "}, {Text: "world"}}, "hello world"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Paragraph{Runs: tt.runs}
			assert.Equal(t, tt.want, p.Text())
		})
	}
}

func TestNewReport_Verdict(t *testing.T) {
	t.Run("no diagnostics passes", func(t *testing.T) {
		r := NewReport(1, nil)
		assert.True(t, r.OK)
		assert.NotNil(t, r.Diagnostics)
	})

	t.Run("warnings only still passes", func(t *testing.T) {
		r := NewReport(2, []Diagnostic{
			{Severity: SeverityWarning, Rule: "alignment", Message: "off"},
		})
		assert.True(t, r.OK)
	})

	t.Run("any error fails", func(t *testing.T) {
		r := NewReport(2, []Diagnostic{
			{Severity: SeverityWarning, Rule: "alignment", Message: "off"},
			{Severity: SeverityError, Rule: "font", Message: "wrong font"},
		})
		assert.False(t, r.OK)
		assert.Len(t, r.Errors(), 1)
		assert.Len(t, r.Warnings(), 1)
	})
}

func TestValidationReport_JSONShape(t *testing.T) {
	r := NewReport(3, []Diagnostic{
		{Severity: SeverityError, Rule: "length", Message: "too long"},
		Diagnostic{Severity: SeverityWarning, Rule: "alignment", Message: "not justified"}.At(5),
	})

	data, err := json.Marshal(r)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, false, decoded["ok"])
	assert.Equal(t, float64(3), decoded["page_count_estimate"])

	diags, ok := decoded["diagnostics"].([]any)
	require.True(t, ok)
	require.Len(t, diags, 2)

	first := diags[0].(map[string]any)
	assert.Equal(t, "error", first["severity"])
	assert.Nil(t, first["paragraph_index"])

	second := diags[1].(map[string]any)
	assert.Equal(t, float64(5), second["paragraph_index"])
}
