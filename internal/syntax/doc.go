// Package syntax implements the highlighting subsystem: a compiler for
// the rule-definition DSL, the flattened token index built from one
// definition, and the per-line highlighter that partitions visible text
// into styled spans.
//
// Matching is literal and lexical. A token matches wherever its exact
// text appears between word boundaries; there is no string or comment
// awareness, so a keyword inside a string literal highlights the same as
// real usage. That is the accepted contract, not an oversight.
package syntax
