// Package sakura implements the Delta-Stack Monoid algorithm for sentence
// boundary detection (SBD).
//
// The core idea is to reformulate SBD as an associative fold: a DeltaScanner
// walks a chunk of text one character at a time and produces a PartialState.
// PartialState values combine associatively (Identity, Combine), so a text
// can be split into any number of chunks — in any order, at any sizes, as
// long as splits land on UTF-8 scalar boundaries — scanned independently,
// and reduced back into one globally-correct, ordered boundary list.
//
// Orchestration (chunking, parallel scan, prefix-sum, adaptive dispatch)
// lives in the sibling package sakura/engine. Declarative, TOML-backed
// language rules live in sakura/lang. This package only depends on the
// LanguageRules interface, not on any particular implementation of it.
package sakura
