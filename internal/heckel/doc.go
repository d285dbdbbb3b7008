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

// Package heckel contains an implementation of the matching pass of Paul Heckel's diff algorithm,
// adapted from line contents to arbitrary identity keys.
//
// Unlike LCS-based algorithms (Myers and friends), which find a minimal edit script of insertions
// and deletions, Heckel's approach matches elements between the two inputs by a key and derives
// the edit script from the matching. This trades edit-script minimality for O(n) expected runtime
// and, more importantly, for the ability to detect moves: a matched element whose position changed
// is a move, not a delete+insert.
//
// # Matching
//
// The matching works in two passes over occurrence tables (key → ordered positions):
//
// Pass 1 walks the new sequence. A key that occurs exactly once in both sequences is an unambiguous
// correspondence and is matched immediately. In Heckel's terms these are the lines that occur "only
// once in each file"; they are the anchors everything else hangs off.
//
// Pass 2 walks the old sequence and resolves the keys pass 1 skipped, i.e. keys duplicated in
// either sequence: the k-th occurrence of a key in the old sequence is paired with the k-th
// occurrence of that key in the new sequence, consuming positions in original order. Occurrences
// beyond the shorter occurrence count stay unmatched.
//
// Every unmatched old position is a deletion and every unmatched new position is an insertion.
//
// # Move detection
//
// Raw positions can differ between the two sequences without anything having been reordered: an
// insertion at the front shifts every following element. A matched pair is therefore a move
// candidate only if its relative rank among matched elements differs between the sequences, see
// [Matching.Moved].
//
// # References
//
// Heckel, P. A technique for isolating differences between files. Commun. ACM 21, 4 (1978),
// 264-268. https://doi.org/10.1145/359460.359467
package heckel
