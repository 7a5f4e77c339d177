// Package model defines the in-memory document model produced by parsing a
// thesis package, along with the diagnostic and report types shared by the
// resolver, paginator, and rule engine.
//
// All physical quantities are expressed in points (1/72 inch). Converters
// from the OOXML wire units (twips, half-points, 240ths) live in the docx
// package; nothing downstream of the builder sees a raw wire unit.
package model
