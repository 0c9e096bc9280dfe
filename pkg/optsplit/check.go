// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optsplit

import (
	"fmt"
	"strconv"

	"tailscale.com/util/set"
)

// CheckFunc validates one Argument. A non-nil error rejects it and stops
// the checker pass.
type CheckFunc func(*Argument) error

// All returns a CheckFunc that runs fns in order and returns the first
// error. Nil entries are skipped.
func All(fns ...CheckFunc) CheckFunc {
	return func(a *Argument) error {
		for _, fn := range fns {
			if fn == nil {
				continue
			}
			if err := fn(a); err != nil {
				return err
			}
		}
		return nil
	}
}

// Visit returns a CheckFunc that calls fn for every Argument and never
// rejects.
func Visit(fn func(*Argument)) CheckFunc {
	return func(a *Argument) error {
		fn(a)
		return nil
	}
}

// RequireValue rejects the named options when no value was given for them.
func RequireValue(names ...string) CheckFunc {
	want := set.SetOf(names)
	return func(a *Argument) error {
		if want.Contains(a.Option) && !a.HasValue {
			return fmt.Errorf("option %s requires a value", a.Option)
		}
		return nil
	}
}

// RequireInteger rejects values of the named options that are not base-10
// integers. Options without a value are left to RequireValue.
func RequireInteger(names ...string) CheckFunc {
	want := set.SetOf(names)
	return func(a *Argument) error {
		if !want.Contains(a.Option) || !a.HasValue {
			return nil
		}
		if _, err := strconv.ParseInt(a.Value, 10, 64); err != nil {
			return fmt.Errorf("option %s: invalid integer %q", a.Option, a.Value)
		}
		return nil
	}
}

// MaxPositionals rejects positional arguments beyond the first n.
// The returned CheckFunc counts across calls; build a new one per pass.
func MaxPositionals(n int) CheckFunc {
	seen := 0
	return func(a *Argument) error {
		if !a.IsPositional() {
			return nil
		}
		seen++
		if seen > n {
			return fmt.Errorf("too many arguments: %q (at most %d allowed)", a.Value, n)
		}
		return nil
	}
}
