// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/fatih/color"
	"github.com/shayne/yargs"
	"github.com/yeetrun/optsplit/pkg/cli"
	"github.com/yeetrun/optsplit/pkg/profile"
	"golang.org/x/term"
	"tailscale.com/types/logger"
)

// version is set with -ldflags "-X main.version=...".
var version = "0.1.0"

// errReported means the failure was already printed to the user.
var errReported = errors.New("failure reported")

type app struct {
	stdout io.Writer
	stderr io.Writer

	globals cli.GlobalFlags
	// tokens are the arguments after "--", never seen by the router.
	tokens []string
	// getwd locates the nearest profile when --profile is not set.
	getwd func() (string, error)
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("optsplit: ")
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		color.NoColor = true
	}

	a := &app{
		stdout: os.Stdout,
		stderr: os.Stderr,
		getwd:  os.Getwd,
	}
	if err := a.run(context.Background(), os.Args[1:]); err != nil {
		if !errors.Is(err, errReported) {
			printCLIError(a.stderr, err)
		}
		os.Exit(1)
	}
}

func (a *app) run(ctx context.Context, args []string) error {
	own, tokens := cli.SplitTokens(args)
	globals, remaining, err := cli.ParseGlobal(own)
	if err != nil {
		return err
	}
	if globals.Profile == "" {
		globals.Profile = os.Getenv("OPTSPLIT_PROFILE")
	}
	a.globals = globals
	a.tokens = tokens

	handlers := map[string]yargs.SubcommandHandler{
		cli.CommandSplit:   a.handleSplit,
		cli.CommandBatch:   a.handleBatch,
		cli.CommandProfile: a.handleProfile,
		cli.CommandVersion: a.handleVersion,
	}
	return yargs.RunSubcommands(ctx, remaining, cli.HelpConfig(version), cli.GlobalFlags{}, handlers)
}

func printCLIError(w io.Writer, err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(w, "%s %v\n", color.RedString("Error:"), err)
}

// loadProfile resolves the profile and applies the option overrides.
func (a *app) loadProfile(overrides cli.OptionFlags) (*profile.Profile, error) {
	dir, err := a.getwd()
	if err != nil {
		return nil, err
	}
	p, path, err := profile.Resolve(a.globals.Profile, dir)
	if err != nil {
		return nil, err
	}
	if a.globals.Verbose {
		if path == "" {
			log.Printf("using built-in profile")
		} else {
			log.Printf("using profile %s", path)
		}
	}
	if err := p.CheckVersion(version); err != nil {
		return nil, err
	}
	p = p.Merge(overrides.WithValue, overrides.WithoutValue, overrides.AllSeparators())
	for _, name := range p.Overlaps() {
		log.Printf("warning: %s is listed with and without a value; treating it as a flag", name)
	}
	return p, nil
}

// logf returns the classification trace sink for --verbose.
func (a *app) logf() logger.Logf {
	if !a.globals.Verbose {
		return nil
	}
	return log.Printf
}

func (a *app) handleVersion(ctx context.Context, args []string) error {
	fmt.Fprintln(a.stdout, version)
	return nil
}
