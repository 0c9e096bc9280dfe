// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/yeetrun/optsplit/pkg/cli"
	"github.com/yeetrun/optsplit/pkg/profile"
)

func (a *app) handleProfile(ctx context.Context, args []string) error {
	flags, action, err := cli.ParseProfile(args)
	if err != nil {
		return err
	}
	switch action {
	case "init":
		return a.profileInit(flags)
	default:
		p, err := a.loadProfile(cli.OptionFlags{})
		if err != nil {
			return err
		}
		return toml.NewEncoder(a.stdout).Encode(p)
	}
}

func (a *app) profileInit(flags cli.ProfileFlags) error {
	path := flags.Output
	if path == "" {
		dir, err := a.getwd()
		if err != nil {
			return err
		}
		path = filepath.Join(dir, profile.FileName)
	}
	if !flags.Force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}
	if err := profile.Default().Save(path); err != nil {
		return err
	}
	fmt.Fprintf(a.stdout, "wrote %s\n", path)
	return nil
}
