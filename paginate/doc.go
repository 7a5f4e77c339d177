// Package paginate approximates the rendered page count of a resolved
// document without a layout engine. Each paragraph's text is greedily
// wrapped at the section content width using average glyph widths, line
// counts become vertical extents via line-spacing and a line-height factor,
// and extents accumulate against the content height with carry-over into
// new pages. The result is an estimate: good enough for a page-count rule,
// not a typesetting pass.
package paginate
