// Package catalog loads the canonical film catalog and resolves noisy
// screening titles against it.
//
// Titles are compared through a normalization key (upper-cased, punctuation
// stripped, whitespace collapsed) so OCR noise and alternate-title variants
// still land on the right film. Matching runs an ordered chain of named
// strategies with short-circuit on first success; results carry the strategy
// name for diagnostics. A miss is a reportable outcome, never an error.
package catalog
