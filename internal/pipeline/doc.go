// Package pipeline implements the ordered text-rewriting passes that turn a
// Markdown document into LaTeX.
//
// The passes operate on the whole document text and must run in a precise
// order: code and math spans are shielded before character escaping runs,
// escaping runs before the structural passes that inject TeX commands, and
// the structural passes match the escaped form of the input. Protected
// regions are carried through the structural passes as placeholder tokens
// recorded in ShieldTables and put back verbatim by Cleanup.
//
// There is no syntax tree: every pass is pattern matching plus string
// surgery over the whole document, which keeps the matching semantics easy
// to compare line by line against the source document.
package pipeline
