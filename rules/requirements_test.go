package rules

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_OverlaysDefaults(t *testing.T) {
	req, err := Parse([]byte(`
font_size_pt: 12
max_pages: 4
tolerances:
  margin_mm: 1.5
`))
	require.NoError(t, err)

	assert.Equal(t, 12.0, req.FontSizePt)
	assert.Equal(t, 4, req.MaxPages)
	assert.Equal(t, 1.5, req.Tolerances.MarginMM)

	// Untouched fields keep their defaults.
	assert.Equal(t, "Times New Roman", req.FontFamily)
	assert.Equal(t, "Література", req.LiteratureMarker)
	assert.Equal(t, 0.5, req.Tolerances.FontSizePt)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("margin_mm: [not a number"))
	assert.Error(t, err)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "requirements.yaml")
	require.NoError(t, os.WriteFile(path, []byte("min_pages: 2\nmax_pages: 3\n"), 0o644))

	req, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 2, req.MinPages)
	assert.Equal(t, 3, req.MaxPages)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestWithin(t *testing.T) {
	assert.True(t, within(20.1, 20, 0.75))
	assert.True(t, within(19.25, 20, 0.75))
	assert.False(t, within(21, 20, 0.75))
	assert.True(t, within(14, 14, 0))
}
