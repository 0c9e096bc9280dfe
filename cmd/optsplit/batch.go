// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/yeetrun/optsplit/pkg/cli"
	"github.com/yeetrun/optsplit/pkg/codecutil"
	"github.com/yeetrun/optsplit/pkg/optsplit"
	"github.com/yeetrun/optsplit/pkg/profile"
	"golang.org/x/sync/errgroup"
)

func (a *app) handleBatch(ctx context.Context, args []string) error {
	flags, file, err := cli.ParseBatch(args)
	if err != nil {
		return err
	}
	p, err := a.loadProfile(flags.OptionFlags)
	if err != nil {
		return err
	}
	rc, err := codecutil.OpenInput(file)
	if err != nil {
		return err
	}
	defer rc.Close()

	lines, argvs, err := readArgvs(rc)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	results, err := classifyAll(ctx, p, argvs, flags.Jobs, a.logf())
	if err != nil {
		return err
	}

	failed := 0
	for i, res := range results {
		if err := res.FirstErr(); err != nil {
			failed++
			if a.globals.Verbose {
				log.Printf("line %d: %v", lines[i], err)
			}
		}
	}
	if err := newRenderer(a.stdout, flags.Format).batch(lines, results); err != nil {
		return err
	}
	if failed > 0 {
		printCLIError(a.stderr, fmt.Errorf("%d of %d lines failed", failed, len(results)))
		return errReported
	}
	return nil
}

// readArgvs reads one token list per non-blank line. Lines starting with
// "#" are comments. It returns the 1-based line number of each list.
func readArgvs(r io.Reader) ([]int, [][]string, error) {
	var lines []int
	var argvs [][]string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	n := 0
	for sc.Scan() {
		n++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		lines = append(lines, n)
		argvs = append(argvs, strings.Fields(line))
	}
	return lines, argvs, sc.Err()
}

// classifyAll classifies every argv with at most jobs runs in flight. Each
// run works on its own copy of the valueless option set, so the profile
// config is shared freely.
func classifyAll(ctx context.Context, p *profile.Profile, argvs [][]string, jobs int, logf func(string, ...any)) ([]*optsplit.Result, error) {
	results := make([]*optsplit.Result, len(argvs))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i, argv := range argvs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = optsplit.Classify(p.Config(argv, logf)).Check(p.Checker())
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
