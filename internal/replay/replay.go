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

// Package replay applies a diff result back to the sequence it was computed from.
//
// Consumers of a diff are expected to apply it in four ordered phases: deletes, updates, moves,
// inserts. This package implements that phase model over plain slices, which makes the central
// correctness property of the diff executable: applying the result to the old sequence must
// reproduce the new one. The tests of the root package are the only intended user.
package replay

import (
	"znkr.io/listdiff"
)

// Apply replays res over old and returns the reconstructed sequence.
//
//   - Delete phase: elements at the delete indices and the move sources leave their positions.
//   - Update phase: updated elements take their new contents, keeping their position.
//   - Move phase: moved elements land at their destination index.
//   - Insert phase: inserted elements appear at their new-sequence index.
//
// Surviving elements that neither moved nor were inserted keep their relative order and fill the
// remaining positions in order.
//
// new is consulted only as the source of inserted and updated contents. Apply panics if res is not
// a valid diff between old and new shapes.
func Apply[T any](old, new []T, res *listdiff.Result) []T {
	out := make([]T, len(new))
	filled := make([]bool, len(new))

	for _, t := range res.Inserts {
		out[t] = new[t]
		filled[t] = true
	}
	for _, mv := range res.Moves {
		out[mv.To] = old[mv.From]
		filled[mv.To] = true
	}

	gone := make([]bool, len(old))
	for _, s := range res.Deletes {
		gone[s] = true
	}
	for _, mv := range res.Moves {
		gone[mv.From] = true
	}
	updated := make([]bool, len(old))
	for _, s := range res.Updates {
		updated[s] = true
	}

	// The remaining elements of old fill the remaining positions in order.
	t := 0
	for s := range old {
		if gone[s] {
			continue
		}
		for t < len(out) && filled[t] {
			t++
		}
		if t == len(out) {
			panic("replay: more surviving elements than unfilled positions")
		}
		if updated[s] {
			out[t] = new[t]
		} else {
			out[t] = old[s]
		}
		filled[t] = true
		t++
	}
	for ; t < len(out); t++ {
		if !filled[t] {
			panic("replay: unfilled position after replay")
		}
	}
	return out
}
