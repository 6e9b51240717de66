// Package pipeline holds the text and HTML stages around the résumé parser.
//
// Before parsing:
//   - line-ending normalization and front-matter extraction
//   - tab expansion and re-nesting of loosely indented contributions blocks
//
// After parsing, for the preview and PDF export:
//   - Markdown fragment to HTML conversion via goldmark (GFM, chroma highlighting)
//   - stylesheet injection into the paged document
//   - rewriting of relative image and link paths to file:// URLs
//
// The string surgery is kept out of the tree-walking parser so each repair has
// a narrow, testable boundary.
package pipeline
