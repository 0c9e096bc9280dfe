// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optsplit

import "fmt"

// Argument is one resolved unit of the command line.
type Argument struct {
	// Original is the source text. When the value came from the following
	// token it holds both tokens joined by a single space ("-a 8080").
	Original string
	// Option is the canonical option name, e.g. "-a" for "-a=8080".
	// It is empty for positional arguments.
	Option string
	// Value is the option value or, for positionals, the token itself.
	Value string
	// HasValue reports whether Value was set. A valueless flag, or an
	// option whose value never appeared, has HasValue == false.
	HasValue bool
}

// IsPositional reports whether a has no option name.
func (a *Argument) IsPositional() bool {
	return a.Option == ""
}

func (a *Argument) String() string {
	switch {
	case a.IsPositional():
		return a.Value
	case a.HasValue:
		return fmt.Sprintf("%s=%s", a.Option, a.Value)
	default:
		return a.Option
	}
}

// fill sets the deferred value of a pending option.
func (a *Argument) fill(tok string) {
	a.Value = tok
	a.HasValue = true
	a.Original = a.Original + " " + tok
}
