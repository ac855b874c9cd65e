// Package wordml is a codec for OOXML WordprocessingML (.docx) packages.
//
// Parsing turns the zipped-XML package into an ordered sequence of
// paragraph and table records with resolved styles, numbering, and
// page/section layout. The inverse direction synthesizes valid packages
// from that representation, and the streaming slicer truncates a source
// package to its first N content units while keeping every cutoff an
// independently openable document - the basis for progressive delivery.
//
// All lookup tables are built per call and shared read-only within it, so
// concurrent calls over the same buffer are independent and safe. Malformed
// but parseable input never produces an error: dangling or cyclic style
// chains, dangling numbering references, and structural over-claims all
// degrade to "no inheritance", "no numbering" or skipped cells.
package wordml
