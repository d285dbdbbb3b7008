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

// Package config provides shared configuration mechanisms for packages in this module.
//
// This package is an implementation detail, the configuration surface for users is provided via
// listdiff.Option.
package config

// Mode describes how two elements matched by identity are compared for content changes.
//
//go:generate go tool golang.org/x/tools/cmd/stringer -type=Mode
type Mode int

const (
	// Compare elements by calling EqualToDiffable on the old element with the new one.
	ModeEquality Mode = iota

	// Compare elements by reference identity: a pair is unchanged only if old and new are the
	// same object.
	ModePointers
)

// Config collects all configurable parameters for comparison functions in this module.
type Config struct {
	// Content comparison mode.
	Mode Mode
}

// Default is the default configuration.
var Default = Config{
	Mode: ModeEquality,
}

// Flag describes a single config entry. This is used to detect if configurations are being set
// that are not allowed for a function.
type Flag int

const (
	Pointers Flag = 1 << iota
)

// Option is the mechanism used to expose the configuration to users.
type Option func(*Config) Flag

// FromOptions creates a configuration from a set of options.
func FromOptions(opts []Option, allowed Flag) Config {
	cfg := Default
	for _, opt := range opts {
		flag := opt(&cfg)
		if flag & ^allowed != 0 {
			panic("Option " + printFlag(flag) + " not allowed here")
		}
	}
	return cfg
}

func printFlag(flag Flag) string {
	switch flag {
	case Pointers:
		return "listdiff.Pointers"
	default:
		panic("never reached")
	}
}
