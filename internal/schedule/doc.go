// Package schedule owns the canonical schedule document model and its
// lifecycle: assembling extracted showings into day documents, merging days
// into the persisted store, and reading/writing the store itself.
//
// The store is a single JSON document guarded by a file lock and replaced
// atomically on save; a failed run never leaves a partially written store.
// The merge engine is the store's only mutator during a run. Catalog
// matching feeds the merge report for visibility but never blocks
// persistence.
package schedule
