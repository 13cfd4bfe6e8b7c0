// Package extract turns raw OCR page text and hand-curated day tables into
// typed showing entries.
//
// Freeform pages are scanned with a record pattern (title line followed by a
// pipe-delimited "Dir:" metadata line) and a secondary inline pattern; time
// slots and dates are recognized independently because the curved page
// layout does not preserve the association between a time and a title.
// Reconciling the two is the explicit AssignSlots operation: the Nth
// recognized showing on a screen takes the Nth slot of the venue's fixed
// slot table, and a screen with more showings than slots fails with
// ErrSlotOverflow rather than being silently mis-timed.
//
// Failures stay local: an entry with an unparsable year or duration is
// dropped with a diagnostic, and a page yielding no entries is a zero-count
// result, not an error.
package extract
