// Package filelist holds the canonical ordered sequence of files selected for
// combination. The list is the single source of truth for entry order: the
// presentation layers report explicit move or permutation events and the list
// rebuilds itself from those events, never from widget state.
package filelist

import (
	"combind/internal/errors"
	"combind/internal/log"
	"combind/pkg/types"
)

// List is the ordered file list model. Entries keep insertion order,
// duplicates are permitted, and no validation happens at insert time;
// unreadable paths surface when the files are combined.
//
// A List is owned by a single front-end event loop and is not safe for
// concurrent use.
type List struct {
	entries []types.FileEntry
}

// New creates an empty list
func New() *List {
	return &List{}
}

// Append adds the given paths to the end of the list, preserving input order.
func (l *List) Append(paths ...string) {
	for _, p := range paths {
		l.entries = append(l.entries, types.FileEntry{Path: p})
		log.Debugf("Added file: %s", p)
	}
}

// Move relocates the entry at src to position dst, shifting every entry in
// between by one. Moving an entry onto itself is a no-op. Out-of-range
// indices leave the list untouched.
func (l *List) Move(src, dst int) error {
	if src < 0 || src >= len(l.entries) {
		return errors.NewIndexError(src, len(l.entries))
	}
	if dst < 0 || dst >= len(l.entries) {
		return errors.NewIndexError(dst, len(l.entries))
	}
	if src == dst {
		return nil
	}

	entry := l.entries[src]
	l.entries = append(l.entries[:src], l.entries[src+1:]...)

	// Reinsert at the destination slot of the already-shortened slice.
	l.entries = append(l.entries, types.FileEntry{})
	copy(l.entries[dst+1:], l.entries[dst:])
	l.entries[dst] = entry

	log.Debugf("Moved entry %d -> %d (%s)", src, dst, entry.Path)
	return nil
}

// Reorder rebuilds the list to match the given order, expressed as the
// current indices in their new sequence. The order must be a permutation of
// the current indices; anything else is rejected and the list is untouched.
func (l *List) Reorder(order []int) error {
	if len(order) != len(l.entries) {
		return errors.NewPermutationError("reorder length mismatch: got %d indices for %d entries", len(order), len(l.entries))
	}

	seen := make([]bool, len(l.entries))
	for _, idx := range order {
		if idx < 0 || idx >= len(l.entries) {
			return errors.NewIndexError(idx, len(l.entries))
		}
		if seen[idx] {
			return errors.NewPermutationError("duplicate index %d in reorder", idx)
		}
		seen[idx] = true
	}

	rebuilt := make([]types.FileEntry, len(l.entries))
	for pos, idx := range order {
		rebuilt[pos] = l.entries[idx]
	}
	l.entries = rebuilt
	return nil
}

// EntryAt returns the path at the given position.
func (l *List) EntryAt(index int) (string, error) {
	if index < 0 || index >= len(l.entries) {
		return "", errors.NewIndexError(index, len(l.entries))
	}
	return l.entries[index].Path, nil
}

// Snapshot returns the current ordered sequence as a copy. The combiner reads
// from a snapshot so a reorder issued mid-combine cannot corrupt the write.
func (l *List) Snapshot() []string {
	paths := make([]string, len(l.entries))
	for i, e := range l.entries {
		paths[i] = e.Path
	}
	return paths
}

// Entries returns a copy of the entries for display purposes.
func (l *List) Entries() []types.FileEntry {
	out := make([]types.FileEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Clear removes every entry.
func (l *List) Clear() {
	l.entries = nil
}
