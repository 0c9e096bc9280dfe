// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optsplit

import (
	"strings"

	"tailscale.com/types/logger"
	"tailscale.com/util/mak"
	"tailscale.com/util/set"
)

// Classify resolves cfg.Args against the options in cfg.
//
// It never panics and never returns nil. A merged flag cluster that cannot
// be fully resolved empties the result and is reported by Result.Err.
func Classify(cfg Config) *Result {
	c := &classifier{
		optionSets: cfg.sets(),
		separators: cfg.Separators,
		logf:       cfg.logf(),
	}
	for _, raw := range cfg.Args {
		if err := c.step(strings.TrimSpace(raw)); err != nil {
			c.logf("optsplit: %v", err)
			return &Result{
				args:        []*Argument{},
				positionals: []*Argument{},
				err:         err,
			}
		}
	}
	return c.result()
}

type classifier struct {
	optionSets
	separators []string
	logf       logger.Logf

	// pending is the last value-expecting option still waiting for its
	// value from the next standalone token.
	pending *Argument

	args        []*Argument
	options     map[string]*Argument
	positionals []*Argument
}

func (c *classifier) step(tok string) error {
	if c.remaining.Contains(tok) {
		c.remaining.Delete(tok)
		c.pending = nil
		c.logf("optsplit: %q: flag", tok)
		c.add(&Argument{Original: tok, Option: tok})
		return nil
	}

	if c.withValue.Contains(tok) {
		a := &Argument{Original: tok, Option: tok}
		c.pending = a
		c.logf("optsplit: %q: option, value pending", tok)
		c.add(a)
		return nil
	}

	if a, ok := c.matchGlued(tok); ok {
		c.pending = nil
		c.logf("optsplit: %q: option %s with glued value %q", tok, a.Option, a.Value)
		c.add(a)
		return nil
	}

	if len(tok) > len(Marker) && strings.HasPrefix(tok, Marker) {
		flags, err := c.matchCluster(tok)
		if err != nil {
			return err
		}
		c.pending = nil
		for _, a := range flags {
			c.remaining.Delete(a.Option)
			c.add(a)
		}
		c.logf("optsplit: %q: cluster of %d flags", tok, len(flags))
		return nil
	}

	if c.pending != nil {
		c.logf("optsplit: %q: value of %s", tok, c.pending.Option)
		c.pending.fill(tok)
		c.pending = nil
		return nil
	}

	c.logf("optsplit: %q: positional", tok)
	c.positionals = append(c.positionals, &Argument{
		Original: tok,
		Value:    tok,
		HasValue: true,
	})
	return nil
}

// matchGlued matches tokens like "-p8080" and "-p=8080".
func (c *classifier) matchGlued(tok string) (*Argument, bool) {
	if len(c.separators) == 0 {
		return nil, false
	}
	for _, name := range c.prefixes {
		rest, ok := strings.CutPrefix(tok, name)
		if !ok || rest == "" {
			continue
		}
		for _, sep := range c.separators {
			if sep == "" {
				if isDigit(rest[0]) {
					return &Argument{Original: tok, Option: name, Value: rest, HasValue: true}, true
				}
				continue
			}
			if len(rest) >= len(sep) && equalFoldASCII(rest[:len(sep)], sep) {
				return &Argument{Original: tok, Option: name, Value: rest[len(sep):], HasValue: true}, true
			}
		}
	}
	return nil, false
}

// matchCluster splits "-klm" into "-k", "-l" and "-m". Every letter must
// name a remaining valueless option and may appear only once.
func (c *classifier) matchCluster(tok string) ([]*Argument, error) {
	letters := tok[len(Marker):]
	var claimed set.Set[string]
	flags := make([]*Argument, 0, len(letters))
	for _, r := range letters {
		name := Marker + string(r)
		if !c.remaining.Contains(name) || claimed.Contains(name) {
			return nil, &ClusterError{Token: tok, Flag: name}
		}
		mak.Set(&claimed, name, struct{}{})
		flags = append(flags, &Argument{Original: name, Option: name})
	}
	return flags, nil
}

func (c *classifier) add(a *Argument) {
	c.args = append(c.args, a)
	mak.Set(&c.options, a.Option, a)
}

func (c *classifier) result() *Result {
	r := &Result{
		args:        c.args,
		options:     c.options,
		positionals: c.positionals,
	}
	if r.args == nil {
		r.args = []*Argument{}
	}
	if r.positionals == nil {
		r.positionals = []*Argument{}
	}
	return r
}

func isDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// equalFoldASCII is strings.EqualFold restricted to ASCII letters.
func equalFoldASCII(a, b string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := 0; i < len(a); i++ {
		if lowerASCII(a[i]) != lowerASCII(b[i]) {
			return false
		}
	}
	return true
}

func lowerASCII(b byte) byte {
	if 'A' <= b && b <= 'Z' {
		return b + ('a' - 'A')
	}
	return b
}
