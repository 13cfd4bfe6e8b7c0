// Package runlog persists a journal of pipeline runs in SQLite.
//
// Each merge records one row: run id, timing, mode, counts, and the
// unmatched titles it reported. The journal is diagnostic history for the
// operator — the schedule store itself never depends on it, and a journal
// write failure does not undo a completed merge.
package runlog
