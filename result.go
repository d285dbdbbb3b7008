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

import "fmt"

// Move describes a single element whose relative order changed: the element at old-sequence index
// From ends up at new-sequence index To.
type Move struct {
	From, To int
}

// Result describes the changes that transform the old sequence into the new one.
//
//   - Deletes and Updates are old-sequence indices, Inserts are new-sequence indices, all sorted
//     ascending. Moves are ordered by their old index.
//   - Every old index is covered by at most one of Deletes, Updates, and move sources; every new
//     index by at most one of Inserts and move destinations. Indices covered by none are
//     unchanged.
//   - An update means the element's contents changed but its position did not; an element that
//     both moved and changed contents appears as a delete+insert pair instead.
//
// A Result is immutable once returned and holds no reference to the diffed elements.
type Result struct {
	Inserts []int
	Deletes []int
	Updates []int
	Moves   []Move

	oldIndexes map[any]int
	newIndexes map[any]int
}

// Changed reports whether the result contains any changes.
func (r *Result) Changed() bool {
	return r.ChangeCount() > 0
}

// ChangeCount returns the total number of changes in the result.
func (r *Result) ChangeCount() int {
	return len(r.Inserts) + len(r.Deletes) + len(r.Updates) + len(r.Moves)
}

// OldIndexFor returns the old-sequence index of the element with the given identity. For a
// duplicated identity this is the index of its first occurrence.
func (r *Result) OldIndexFor(id any) (int, bool) {
	i, ok := r.oldIndexes[id]
	return i, ok
}

// NewIndexFor returns the new-sequence index of the element with the given identity. For a
// duplicated identity this is the index of its first occurrence.
func (r *Result) NewIndexFor(id any) (int, bool) {
	i, ok := r.newIndexes[id]
	return i, ok
}

func (r *Result) String() string {
	return fmt.Sprintf("<inserts: %d, deletes: %d, updates: %d, moves: %d>",
		len(r.Inserts), len(r.Deletes), len(r.Updates), len(r.Moves))
}

// Path is a position in a sectioned list.
type Path struct {
	Section, Index int
}

// MovePath describes a single moved element in path coordinates. From and To may be in different
// sections.
type MovePath struct {
	From, To Path
}

// PathResult is a [Result] expressed in (section, index) coordinates, see [DiffPaths].
type PathResult struct {
	Inserts []Path
	Deletes []Path
	Updates []Path
	Moves   []MovePath

	oldPaths map[any]Path
	newPaths map[any]Path
}

// Changed reports whether the result contains any changes.
func (r *PathResult) Changed() bool {
	return r.ChangeCount() > 0
}

// ChangeCount returns the total number of changes in the result.
func (r *PathResult) ChangeCount() int {
	return len(r.Inserts) + len(r.Deletes) + len(r.Updates) + len(r.Moves)
}

// OldPathFor returns the path of the element with the given identity in the old sequence. For a
// duplicated identity this is the path of its first occurrence.
func (r *PathResult) OldPathFor(id any) (Path, bool) {
	p, ok := r.oldPaths[id]
	return p, ok
}

// NewPathFor returns the path of the element with the given identity in the new sequence. For a
// duplicated identity this is the path of its first occurrence.
func (r *PathResult) NewPathFor(id any) (Path, bool) {
	p, ok := r.newPaths[id]
	return p, ok
}

func (r *PathResult) String() string {
	return fmt.Sprintf("<inserts: %d, deletes: %d, updates: %d, moves: %d>",
		len(r.Inserts), len(r.Deletes), len(r.Updates), len(r.Moves))
}

// paths transforms the result into (section, index) coordinates: deletes and updates happen in the
// section the old sequence lives in, inserts in the section the new sequence lives in, and moves
// go from the former to the latter. Purely a coordinate transformation, no reclassification.
func (r *Result) paths(fromSection, toSection int) *PathResult {
	pr := &PathResult{
		Inserts: pathsIn(toSection, r.Inserts),
		Deletes: pathsIn(fromSection, r.Deletes),
		Updates: pathsIn(fromSection, r.Updates),

		oldPaths: make(map[any]Path, len(r.oldIndexes)),
		newPaths: make(map[any]Path, len(r.newIndexes)),
	}
	if len(r.Moves) > 0 {
		pr.Moves = make([]MovePath, len(r.Moves))
		for i, mv := range r.Moves {
			pr.Moves[i] = MovePath{
				From: Path{Section: fromSection, Index: mv.From},
				To:   Path{Section: toSection, Index: mv.To},
			}
		}
	}
	for id, s := range r.oldIndexes {
		pr.oldPaths[id] = Path{Section: fromSection, Index: s}
	}
	for id, t := range r.newIndexes {
		pr.newPaths[id] = Path{Section: toSection, Index: t}
	}
	return pr
}

func pathsIn(section int, ixs []int) []Path {
	if len(ixs) == 0 {
		return nil
	}
	out := make([]Path, len(ixs))
	for i, ix := range ixs {
		out[i] = Path{Section: section, Index: ix}
	}
	return out
}
