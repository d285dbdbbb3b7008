// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package listdiff

import (
	"cmp"
	"fmt"
	"slices"

	"znkr.io/listdiff/internal/config"
	"znkr.io/listdiff/internal/heckel"
)

// Diffable is the constraint for elements that can be diffed by identity.
//
// DiffID returns the element's identity: the stable key by which an element from the old sequence
// and an element from the new sequence are recognized as the same logical element, independent of
// content. The returned value must be comparable (usable as a map key) and equal identities must
// compare equal across the two sequences.
//
// EqualToDiffable reports whether the contents of two elements are equal. It is only ever called
// with an element whose DiffID equals the receiver's; its behavior for other arguments is
// irrelevant.
type Diffable[T any] interface {
	DiffID() any
	EqualToDiffable(other T) bool
}

// Diff compares the contents of old and new and returns the changes necessary to convert from one
// to the other.
//
// Elements are matched by DiffID and matched pairs are compared for content changes, by default
// with EqualToDiffable (see [Pointers]). A matched pair whose relative order among matched
// elements changed is reported as a move; a pair that both moved and changed contents is split
// into a delete and an insert, so that replaying the result in the four phases deletes, updates,
// moves, inserts produces the new sequence regardless of how a consumer interleaves the phases.
//
// Duplicated identities are allowed: occurrences are matched in original order and occurrences
// beyond the smaller occurrence count become deletes or inserts.
//
// Nil slices are treated as empty sequences. If old and new are identical, the result has no
// changes. The output is deterministic: all index sets are sorted ascending and moves are ordered
// by their old index.
//
// The following option is supported: [Pointers]
func Diff[T Diffable[T]](old, new []T, opts ...Option) *Result {
	cfg := config.FromOptions(opts, config.Pointers)
	return diff(old, new, cfg)
}

// DiffPaths is like [Diff], but returns the changes in (section, index) coordinates for elements
// that live inside one section of a sectioned list: deletes and updates are paired with
// fromSection, inserts with toSection, and moves go from fromSection to toSection. With
// fromSection != toSection this reports cross-section moves.
//
// The following option is supported: [Pointers]
func DiffPaths[T Diffable[T]](fromSection, toSection int, old, new []T, opts ...Option) *PathResult {
	cfg := config.FromOptions(opts, config.Pointers)
	return diff(old, new, cfg).paths(fromSection, toSection)
}

func diff[T Diffable[T]](old, new []T, cfg config.Config) *Result {
	x := identities(old)
	y := identities(new)

	m := heckel.Match(x, y)
	moved := m.Moved()

	res := &Result{
		oldIndexes: firstIndexes(x),
		newIndexes: firstIndexes(y),
	}

	for s, t := range m.X {
		if t == heckel.None {
			res.Deletes = append(res.Deletes, s)
		}
	}
	for t, s := range m.Y {
		if s == heckel.None {
			res.Inserts = append(res.Inserts, t)
			continue
		}
		changed := contentChanged(old[s], new[t], cfg.Mode)
		switch {
		case moved[s] && changed:
			// A single change record can't express "this slot moved" and "this slot's contents
			// changed" unambiguously for phased replay, so the pair is split.
			res.Deletes = append(res.Deletes, s)
			res.Inserts = append(res.Inserts, t)
		case moved[s]:
			res.Moves = append(res.Moves, Move{From: s, To: t})
		case changed:
			res.Updates = append(res.Updates, s)
		}
	}

	slices.Sort(res.Inserts)
	slices.Sort(res.Deletes)
	slices.Sort(res.Updates)
	slices.SortFunc(res.Moves, func(a, b Move) int { return cmp.Compare(a.From, b.From) })
	return res
}

// identities extracts the identity of every element. Identities are handled as plain values from
// here on; DiffID is called exactly once per element.
func identities[T Diffable[T]](seq []T) []any {
	ids := make([]any, len(seq))
	for i, e := range seq {
		ids[i] = e.DiffID()
	}
	return ids
}

// firstIndexes builds the identity → index map for one sequence. For duplicated identities the
// first occurrence wins, consistent with the order in which occurrences are matched.
func firstIndexes(ids []any) map[any]int {
	m := make(map[any]int, len(ids))
	for i, id := range ids {
		if _, ok := m[id]; !ok {
			m[id] = i
		}
	}
	return m
}

func contentChanged[T Diffable[T]](old, new T, mode config.Mode) bool {
	switch mode {
	case config.ModeEquality:
		return !old.EqualToDiffable(new)
	case config.ModePointers:
		return any(old) != any(new)
	default:
		panic(fmt.Sprintf("unknown mode: %v", mode))
	}
}
