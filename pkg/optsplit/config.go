// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optsplit

import (
	"cmp"
	"slices"

	"tailscale.com/types/logger"
	"tailscale.com/util/set"
)

// Marker is the leading character of a merged flag cluster such as "-klm".
const Marker = "-"

// Config describes the recognized options and the tokens to classify.
// The zero value is valid and classifies every token as positional.
//
// Classify never modifies a Config, so one value may be reused for any
// number of runs and shared across goroutines.
type Config struct {
	// WithValue lists option names that take a value, either from the next
	// token or glued to the name ("-p8080", "-p=8080").
	WithValue []string
	// WithoutValue lists option names that never take a value. Names of the
	// form "-x" may also be merged into clusters ("-xyz").
	WithoutValue []string
	// Separators lists the accepted separators between an option name and a
	// glued value, in priority order. The empty string accepts a value of
	// decimal digits written directly after the name.
	Separators []string
	// Args is the token sequence to classify, usually os.Args[1:].
	Args []string
	// Logf, if non-nil, receives a trace of every classification decision.
	Logf logger.Logf
}

// optionSets is the per-run view of a Config.
type optionSets struct {
	withValue set.Set[string]
	// prefixes are the WithValue names ordered longest first, so that "-ab"
	// wins over "-a" for the token "-ab=1".
	prefixes []string
	// remaining holds the valueless names not consumed yet in this run.
	remaining set.Set[string]
}

func (c Config) sets() optionSets {
	s := optionSets{
		withValue: set.SetOf(c.WithValue),
		remaining: set.SetOf(c.WithoutValue),
	}
	seen := make(set.Set[string], len(c.WithValue))
	for _, name := range c.WithValue {
		if name == "" || seen.Contains(name) {
			continue
		}
		seen.Add(name)
		s.prefixes = append(s.prefixes, name)
	}
	slices.SortStableFunc(s.prefixes, func(a, b string) int {
		return cmp.Compare(len(b), len(a))
	})
	return s
}

func (c Config) logf() logger.Logf {
	if c.Logf == nil {
		return logger.Discard
	}
	return c.Logf
}
