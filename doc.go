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

// Package listdiff computes the structural changes (insertions, deletions, position moves, and
// content updates) needed to transform one ordered collection of identity-bearing elements into
// another.
//
// Elements are matched by a stable identity rather than by value, which is what allows the diff to
// distinguish an element that moved from an element that was replaced. The main function is [Diff],
// which returns the change script in index coordinates. [DiffPaths] returns the same script in
// (section, index) coordinates for elements that live inside one section of a sectioned list.
//
// The typical use is incremental list updates: compute the diff off the main work thread, then
// apply the result in four ordered phases (deletes, updates, moves, inserts). Applying the result
// is up to the caller; this package only computes it.
//
// The matching is a variant of Paul Heckel's block-move diff extended with move detection and runs
// in O(n) expected time, see [znkr.io/listdiff/internal/heckel].
package listdiff
