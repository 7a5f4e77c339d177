package docx

import "encoding/xml"

// documentXML represents the structure of word/document.xml
type documentXML struct {
	XMLName xml.Name `xml:"document"`
	Body    *bodyXML `xml:"body"`
}

// bodyXML represents the document body. Tables are parsed only far enough to
// be reported as unsupported constructs.
type bodyXML struct {
	Paragraphs []paragraphXML `xml:"p"`
	Tables     []tableXML     `xml:"tbl"`
	SectPr     *sectPrXML     `xml:"sectPr"`
}

// paragraphXML represents a paragraph element (<w:p>).
type paragraphXML struct {
	XMLName    xml.Name          `xml:"p"`
	Properties paragraphPropsXML `xml:"pPr"`
	Runs       []runXML          `xml:"r"`
	Hyperlinks []hyperlinkXML    `xml:"hyperlink"`
}

// paragraphPropsXML represents paragraph properties (<w:pPr>).
type paragraphPropsXML struct {
	Style         styleRefXML      `xml:"pStyle"`
	Justification justificationXML `xml:"jc"`
	Spacing       spacingXML       `xml:"spacing"`
	Indent        indentXML        `xml:"ind"`
	SectPr        *sectPrXML       `xml:"sectPr"`
}

// styleRefXML represents a style reference.
type styleRefXML struct {
	Val string `xml:"val,attr"`
}

// justificationXML represents text justification.
type justificationXML struct {
	Val string `xml:"val,attr"` // left, center, right, both
}

// spacingXML represents paragraph spacing.
type spacingXML struct {
	Before   string `xml:"before,attr"` // Space before in twips
	After    string `xml:"after,attr"`  // Space after in twips
	Line     string `xml:"line,attr"`   // Line spacing (240ths or twips, per LineRule)
	LineRule string `xml:"lineRule,attr"`
}

// indentXML represents paragraph indentation.
type indentXML struct {
	Left      string `xml:"left,attr"`
	Right     string `xml:"right,attr"`
	FirstLine string `xml:"firstLine,attr"`
	Hanging   string `xml:"hanging,attr"`
}

// sectPrXML represents section properties (<w:sectPr>), carrying page
// geometry for the section it terminates.
type sectPrXML struct {
	PgSz  pgSzXML  `xml:"pgSz"`
	PgMar pgMarXML `xml:"pgMar"`
}

// pgSzXML represents page size in twips.
type pgSzXML struct {
	W string `xml:"w,attr"`
	H string `xml:"h,attr"`
}

// pgMarXML represents page margins in twips.
type pgMarXML struct {
	Top    string `xml:"top,attr"`
	Bottom string `xml:"bottom,attr"`
	Left   string `xml:"left,attr"`
	Right  string `xml:"right,attr"`
}

// runXML represents a text run (<w:r>).
type runXML struct {
	XMLName    xml.Name     `xml:"r"`
	Properties runPropsXML  `xml:"rPr"`
	Text       []textXML    `xml:"t"`
	Tabs       []tabXML     `xml:"tab"`
	Breaks     []breakXML   `xml:"br"`
	Drawings   []drawingXML `xml:"drawing"`
	Symbols    []symXML     `xml:"sym"`
}

// runPropsXML represents run properties (<w:rPr>).
type runPropsXML struct {
	Style    styleRefXML `xml:"rStyle"`
	Bold     boolXML     `xml:"b"`
	Italic   boolXML     `xml:"i"`
	FontSize sizeXML     `xml:"sz"`
	Font     fontXML     `xml:"rFonts"`
}

// boolXML represents a toggle property. Presence means true unless the val
// attribute negates it.
type boolXML struct {
	XMLName xml.Name
	Val     string `xml:"val,attr"`
}

// set reports whether the element was present in the markup.
func (b boolXML) set() bool {
	return b.XMLName.Local != ""
}

// value interprets the OOXML toggle semantics.
func (b boolXML) value() bool {
	return b.Val != "false" && b.Val != "0"
}

// sizeXML represents font size (in half-points).
type sizeXML struct {
	Val string `xml:"val,attr"`
}

// fontXML represents font settings.
type fontXML struct {
	ASCII string `xml:"ascii,attr"`
	HAnsi string `xml:"hAnsi,attr"`
}

// textXML represents text content (<w:t>).
type textXML struct {
	XMLName xml.Name `xml:"t"`
	Space   string   `xml:"space,attr"` // preserve
	Value   string   `xml:",chardata"`
}

// tabXML represents a tab character.
type tabXML struct {
	XMLName xml.Name `xml:"tab"`
}

// breakXML represents a break (line or page).
type breakXML struct {
	XMLName xml.Name `xml:"br"`
	Type    string   `xml:"type,attr"` // page, column, textWrapping
}

// drawingXML represents an embedded drawing/image. The validator does not
// lay out images; their presence is surfaced as an unsupported construct.
type drawingXML struct {
	XMLName xml.Name `xml:"drawing"`
}

// symXML represents a symbol character (<w:sym>).
type symXML struct {
	Font string `xml:"font,attr"`
	Char string `xml:"char,attr"`
}

// hyperlinkXML represents a hyperlink wrapping runs.
type hyperlinkXML struct {
	ID   string   `xml:"id,attr"`
	Runs []runXML `xml:"r"`
}

// tableXML represents a table (<w:tbl>). Only counted, never laid out.
type tableXML struct {
	XMLName xml.Name `xml:"tbl"`
}

// headerXML represents word/header*.xml (<w:hdr>).
type headerXML struct {
	XMLName    xml.Name       `xml:"hdr"`
	Paragraphs []paragraphXML `xml:"p"`
}

// footerXML represents word/footer*.xml (<w:ftr>).
type footerXML struct {
	XMLName    xml.Name       `xml:"ftr"`
	Paragraphs []paragraphXML `xml:"p"`
}
