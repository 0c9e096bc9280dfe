// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"

	"github.com/yeetrun/optsplit/pkg/cli"
	"github.com/yeetrun/optsplit/pkg/optsplit"
)

func (a *app) handleSplit(ctx context.Context, args []string) error {
	flags, rest, err := cli.ParseSplit(args)
	if err != nil {
		return err
	}
	// Tokens given before "--" are accepted too, as long as they do not
	// look like flags of split itself.
	tokens := append(rest, a.tokens...)

	p, err := a.loadProfile(flags.OptionFlags)
	if err != nil {
		return err
	}
	res := optsplit.Classify(p.Config(tokens, a.logf())).Check(p.Checker())

	r := newRenderer(a.stdout, flags.Format)
	if err := r.result(res); err != nil {
		return err
	}
	if err := res.FirstErr(); err != nil {
		if flags.Format == "text" {
			printCLIError(a.stderr, err)
		}
		return errReported
	}
	return nil
}
