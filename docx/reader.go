// Package docx opens thesis document packages (Office Open XML containers)
// and builds the document model from their WordprocessingML parts.
package docx

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Fatal error kinds. Both abort a validation run before any report exists;
// callers distinguish them with errors.Is.
var (
	// ErrCorruptPackage indicates the container cannot be opened or a
	// mandatory part is missing.
	ErrCorruptPackage = errors.New("docx: corrupt package")

	// ErrMalformedMarkup indicates a markup part is not well-formed XML.
	ErrMalformedMarkup = errors.New("docx: malformed markup")
)

// Part names inside the container.
const (
	partContentTypes = "[Content_Types].xml"
	partDocument     = "word/document.xml"
	partStyles       = "word/styles.xml"
)

// Package holds the decompressed parts of one document container. It is
// created per validation run and discarded after the model is built.
type Package struct {
	parts map[string][]byte
}

// OpenBytes validates the container structure and decompresses the parts the
// validator consumes. Missing mandatory parts are an ErrCorruptPackage
// failure, not a diagnostic: no model can be built without them.
func OpenBytes(data []byte) (*Package, error) {
	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPackage, err)
	}

	pkg := &Package{parts: make(map[string][]byte)}
	for _, f := range zr.File {
		if !wantedPart(f.Name) {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return nil, fmt.Errorf("%w: opening part %s: %v", ErrCorruptPackage, f.Name, err)
		}
		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return nil, fmt.Errorf("%w: reading part %s: %v", ErrCorruptPackage, f.Name, err)
		}
		pkg.parts[f.Name] = content
	}

	for _, name := range []string{partContentTypes, partDocument} {
		if _, ok := pkg.parts[name]; !ok {
			return nil, fmt.Errorf("%w: missing required part %s", ErrCorruptPackage, name)
		}
	}

	return pkg, nil
}

// wantedPart reports whether a container entry is consumed by validation.
func wantedPart(name string) bool {
	switch name {
	case partContentTypes, partDocument, partStyles:
		return true
	}
	return isHeaderFooterPart(name)
}

func isHeaderFooterPart(name string) bool {
	if !strings.HasPrefix(name, "word/") || !strings.HasSuffix(name, ".xml") {
		return false
	}
	base := strings.TrimPrefix(name, "word/")
	return strings.HasPrefix(base, "header") || strings.HasPrefix(base, "footer")
}

// Part returns the raw bytes of a part by name.
func (p *Package) Part(name string) ([]byte, bool) {
	data, ok := p.parts[name]
	return data, ok
}

// MainDocument returns the word/document.xml bytes. The part is guaranteed
// present on any Package returned by OpenBytes.
func (p *Package) MainDocument() []byte {
	return p.parts[partDocument]
}

// Styles returns the word/styles.xml bytes, if present. The styles part is
// optional; its absence means Word defaults apply.
func (p *Package) Styles() ([]byte, bool) {
	data, ok := p.parts[partStyles]
	return data, ok
}

// HeaderFooterParts returns the header and footer part names in sorted order.
func (p *Package) HeaderFooterParts() []string {
	var names []string
	for name := range p.parts {
		if isHeaderFooterPart(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}
