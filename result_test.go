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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIndexMaps(t *testing.T) {
	old := []entry{ent(1, "a"), ent(2, "b"), ent(3, "c")}
	new := []entry{ent(3, "c"), ent(1, "a"), ent(4, "d")}
	res := Diff(old, new)

	tests := []struct {
		id      any
		wantOld int
		wantNew int
	}{
		{id: 1, wantOld: 0, wantNew: 1},
		{id: 2, wantOld: 1, wantNew: -1},
		{id: 3, wantOld: 2, wantNew: 0},
		{id: 4, wantOld: -1, wantNew: 2},
		{id: 5, wantOld: -1, wantNew: -1},
	}
	for _, tt := range tests {
		got, ok := res.OldIndexFor(tt.id)
		if want := tt.wantOld >= 0; ok != want || (ok && got != tt.wantOld) {
			t.Errorf("OldIndexFor(%v) = %d, %v, want %d, %v", tt.id, got, ok, tt.wantOld, want)
		}
		got, ok = res.NewIndexFor(tt.id)
		if want := tt.wantNew >= 0; ok != want || (ok && got != tt.wantNew) {
			t.Errorf("NewIndexFor(%v) = %d, %v, want %d, %v", tt.id, got, ok, tt.wantNew, want)
		}
	}
}

func TestIndexMapsDuplicates(t *testing.T) {
	old := []entry{ent(1, "a"), ent(1, "a"), ent(2, "b")}
	new := []entry{ent(2, "b"), ent(1, "a")}
	res := Diff(old, new)

	// First occurrence wins for duplicated identities.
	if got, ok := res.OldIndexFor(1); !ok || got != 0 {
		t.Errorf("OldIndexFor(1) = %d, %v, want 0, true", got, ok)
	}
	if got, ok := res.NewIndexFor(1); !ok || got != 1 {
		t.Errorf("NewIndexFor(1) = %d, %v, want 1, true", got, ok)
	}
}

func TestResultString(t *testing.T) {
	old := []entry{ent(1, "x"), ent(2, "y"), ent(3, "z")}
	new := []entry{ent(3, "z2"), ent(1, "x"), ent(4, "w")}

	if got, want := Diff(old, new).String(), "<inserts: 2, deletes: 2, updates: 0, moves: 1>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
	if got, want := DiffPaths(0, 0, old, new).String(), "<inserts: 2, deletes: 2, updates: 0, moves: 1>"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDiffPaths(t *testing.T) {
	type pathChanges struct {
		Inserts []Path
		Deletes []Path
		Updates []Path
		Moves   []MovePath
	}

	tests := []struct {
		name     string
		from, to int
		old, new []entry
		opts     []Option
		want     pathChanges
	}{
		{
			name: "unchanged-across-sections",
			from: 0,
			to:   2,
			old:  []entry{ent(1, "a")},
			new:  []entry{ent(1, "a")},
			want: pathChanges{},
		},
		{
			name: "same-section",
			from: 1,
			to:   1,
			old:  []entry{ent(1, "a"), ent(2, "b")},
			new:  []entry{ent(2, "b"), ent(1, "a")},
			want: pathChanges{
				Moves: []MovePath{
					{From: Path{1, 0}, To: Path{1, 1}},
					{From: Path{1, 1}, To: Path{1, 0}},
				},
			},
		},
		{
			name: "cross-section-move",
			from: 0,
			to:   2,
			old:  []entry{ent(1, "a"), ent(2, "b")},
			new:  []entry{ent(2, "b"), ent(1, "a")},
			want: pathChanges{
				Moves: []MovePath{
					{From: Path{0, 0}, To: Path{2, 1}},
					{From: Path{0, 1}, To: Path{2, 0}},
				},
			},
		},
		{
			name: "sections-split-by-kind",
			from: 1,
			to:   3,
			old:  []entry{ent(1, "x"), ent(2, "y"), ent(3, "z")},
			new:  []entry{ent(3, "z2"), ent(1, "x"), ent(4, "w")},
			want: pathChanges{
				Inserts: []Path{{3, 0}, {3, 2}},
				Deletes: []Path{{1, 1}, {1, 2}},
				Moves:   []MovePath{{From: Path{1, 0}, To: Path{3, 1}}},
			},
		},
		{
			name: "updates-stay-in-from-section",
			from: 4,
			to:   5,
			old:  []entry{ent(1, "a"), ent(2, "b")},
			new:  []entry{ent(1, "a2"), ent(2, "b")},
			want: pathChanges{
				Updates: []Path{{4, 0}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DiffPaths(tt.from, tt.to, tt.old, tt.new, tt.opts...)
			if diff := cmp.Diff(tt.want, pathChanges{got.Inserts, got.Deletes, got.Updates, got.Moves}); diff != "" {
				t.Errorf("DiffPaths result is different [-want, +got]:\n%s", diff)
			}
			wantCount := len(tt.want.Inserts) + len(tt.want.Deletes) + len(tt.want.Updates) + len(tt.want.Moves)
			if got.ChangeCount() != wantCount {
				t.Errorf("ChangeCount() = %d, want %d", got.ChangeCount(), wantCount)
			}
		})
	}
}

func TestPathMaps(t *testing.T) {
	old := []entry{ent(1, "a"), ent(2, "b")}
	new := []entry{ent(2, "b"), ent(3, "c")}
	res := DiffPaths(1, 4, old, new)

	if got, ok := res.OldPathFor(2); !ok || got != (Path{Section: 1, Index: 1}) {
		t.Errorf("OldPathFor(2) = %v, %v, want {1 1}, true", got, ok)
	}
	if got, ok := res.NewPathFor(2); !ok || got != (Path{Section: 4, Index: 0}) {
		t.Errorf("NewPathFor(2) = %v, %v, want {4 0}, true", got, ok)
	}
	if _, ok := res.OldPathFor(3); ok {
		t.Errorf("OldPathFor(3) = _, true, want false")
	}
	if _, ok := res.NewPathFor(1); ok {
		t.Errorf("NewPathFor(1) = _, true, want false")
	}
}
