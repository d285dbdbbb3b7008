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

package heckel

// None marks a position without a counterpart in the other sequence.
const None = -1

// Matching describes the correspondences between two sequences x and y as a pair of vectors:
// X[s] is the position in y matched with x[s] or None, and Y[t] is the position in x matched
// with y[t] or None.
//
// The vectors are always consistent: X[s] == t if and only if Y[t] == s.
type Matching struct {
	X, Y []int
}

// table is the per-sequence occurrence index: key → positions at which the key occurs, in order.
type table[K comparable] map[K][]int

func index[K comparable](seq []K) table[K] {
	t := make(table[K], len(seq))
	for i, k := range seq {
		t[k] = append(t[k], i)
	}
	return t
}

// duplicated reports whether k occurs more than once in the indexed sequence.
func (t table[K]) duplicated(k K) bool {
	return len(t[k]) > 1
}

// Match pairs up the elements of x and y by key.
//
// Keys unique to both sequences are matched directly. For duplicated keys, occurrences are
// consumed in original order: the k-th occurrence in x pairs with the k-th occurrence in y.
// Occurrences beyond the smaller occurrence count stay unmatched, as do keys that appear in only
// one of the sequences.
func Match[K comparable](x, y []K) Matching {
	tx, ty := index(x), index(y)

	m := Matching{
		X: make([]int, len(x)),
		Y: make([]int, len(y)),
	}
	for s := range m.X {
		m.X[s] = None
	}
	for t := range m.Y {
		m.Y[t] = None
	}

	// Pass 1: match keys that occur exactly once in both sequences.
	for t, k := range y {
		if tx.duplicated(k) || ty.duplicated(k) {
			continue
		}
		if occ, ok := tx[k]; ok {
			s := occ[0]
			m.X[s] = t
			m.Y[t] = s
		}
	}

	// Pass 2: resolve the remaining keys by consuming occurrences in original order. Pass 1 never
	// touches a duplicated key, so the occurrence lists consumed here are still whole.
	next := make(map[K]int)
	for s, k := range x {
		if m.X[s] != None {
			continue
		}
		occ := ty[k]
		if i := next[k]; i < len(occ) {
			t := occ[i]
			m.X[s] = t
			m.Y[t] = s
			next[k] = i + 1
		}
	}

	return m
}

// Moved reports, indexed by position in x, whether a matched element's relative rank among matched
// elements differs between x and y.
//
// The rank of a matched position is the number of matched positions before it in the same
// sequence. Comparing ranks instead of raw positions is what separates "shifted because something
// was inserted or deleted nearby" from "genuinely reordered": unmatched positions do not
// contribute to any rank.
//
// Unmatched positions in x are reported as not moved.
func (m Matching) Moved() []bool {
	moved := make([]bool, len(m.X))

	rank := make([]int, len(m.X)) // rank of each matched position in x
	r := 0
	for s, t := range m.X {
		if t != None {
			rank[s] = r
			r++
		}
	}

	r = 0
	for _, s := range m.Y {
		if s == None {
			continue
		}
		if rank[s] != r {
			moved[s] = true
		}
		r++
	}

	return moved
}
