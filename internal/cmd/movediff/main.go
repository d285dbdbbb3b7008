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

// movediff diffs the lines of two files by identity and prints the change script, including moved
// lines, which a line diff would report as delete+insert.
//
// This is a development tool to eyeball diff results on real inputs, it is not a replacement for a
// proper line diff: lines are their own identity, so duplicated lines are matched in file order
// and every content difference is an insert or delete.
package main

import (
	"fmt"
	"os"
	"strings"

	"znkr.io/listdiff"
)

// line is its own identity; two lines are the same logical element iff their text is equal, so
// contents never change.
type line string

func (l line) DiffID() any { return string(l) }

func (l line) EqualToDiffable(other line) bool { return true }

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: %s <old-file> <new-file>", args[0])
	}

	old, err := readLines(args[1])
	if err != nil {
		return fmt.Errorf("reading old file: %v", err)
	}
	new, err := readLines(args[2])
	if err != nil {
		return fmt.Errorf("reading new file: %v", err)
	}

	res := listdiff.Diff(old, new)
	for _, s := range res.Deletes {
		fmt.Printf("-%d: %s\n", s, old[s])
	}
	for _, mv := range res.Moves {
		fmt.Printf("~%d -> %d: %s\n", mv.From, mv.To, old[mv.From])
	}
	for _, t := range res.Inserts {
		fmt.Printf("+%d: %s\n", t, new[t])
	}
	fmt.Printf("%v\n", res)
	return nil
}

func readLines(name string) ([]line, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, err
	}
	var lines []line
	for _, l := range strings.Split(strings.TrimSuffix(string(b), "\n"), "\n") {
		lines = append(lines, line(l))
	}
	return lines, nil
}
