// Package styles resolves the formatting cascade of a parsed document.
//
// Resolution order, closest wins: direct run/paragraph overrides, the
// referenced style's own properties, the style's basedOn ancestor chain,
// then document defaults. Inheritance chains are walked with a visited set;
// a cyclic style resolves to document defaults and yields one error
// diagnostic per cyclic style rather than aborting the pipeline.
package styles
