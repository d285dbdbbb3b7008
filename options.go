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

import "znkr.io/listdiff/internal/config"

// Option configures the behavior of comparison functions.
type Option = config.Option

// Pointers compares matched elements by reference identity instead of calling EqualToDiffable: a
// pair is unchanged only if the old and new element are the same object. By default, matched
// elements are compared with EqualToDiffable.
//
// In this mode the elements themselves must be comparable; in practice that means the element type
// is a pointer type. The diff only records positions and identities, it never retains the compared
// elements.
func Pointers() Option {
	return func(cfg *config.Config) config.Flag {
		cfg.Mode = config.ModePointers
		return config.Pointers
	}
}
