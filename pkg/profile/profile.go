// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile loads and saves option profiles: the declarative option
// configuration that optsplit classifies tokens against.
package profile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/samber/lo"
	"github.com/yeetrun/optsplit/pkg/optsplit"
	"gopkg.in/yaml.v3"
	"tailscale.com/types/logger"
)

//go:generate go run tailscale.com/cmd/cloner -type=Profile

const (
	FileName       = "optsplit.toml"
	currentVersion = 1
)

type Profile struct {
	Version    int    `toml:"version,omitempty" yaml:"version,omitempty"`
	MinVersion string `toml:"min_version,omitempty" yaml:"min_version,omitempty"`

	WithValue    []string `toml:"with_value" yaml:"with_value"`
	WithoutValue []string `toml:"without_value" yaml:"without_value"`
	Separators   []string `toml:"separators" yaml:"separators"`

	RequireValue   []string `toml:"require_value,omitempty" yaml:"require_value,omitempty"`
	Numeric        []string `toml:"numeric,omitempty" yaml:"numeric,omitempty"`
	MaxPositionals *int     `toml:"max_positionals,omitempty" yaml:"max_positionals,omitempty"`
}

// Default returns the built-in profile used when no profile file is found.
func Default() *Profile {
	return &Profile{
		Version:      currentVersion,
		WithValue:    []string{"-a", "-b", "-c", "-d"},
		WithoutValue: []string{"-k", "-l", "-m", "-n"},
		Separators:   []string{"=", ""},
	}
}

// Find walks up from startDir looking for FileName. It returns an error
// wrapping os.ErrNotExist if none is found.
func Find(startDir string) (string, error) {
	dir := filepath.Clean(startDir)
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", fmt.Errorf("%s: %w", FileName, os.ErrNotExist)
}

// Load reads a profile. Files ending in .yaml or .yml are YAML, anything
// else is TOML.
func Load(path string) (*Profile, error) {
	var p Profile
	if isYAML(path) {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(b, &p); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	} else {
		md, err := toml.DecodeFile(path, &p)
		if err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("failed to parse %s: unknown key %q", path, undecoded[0].String())
		}
	}
	if p.Version == 0 {
		p.Version = currentVersion
	}
	if p.Version > currentVersion {
		return nil, fmt.Errorf("%s: unsupported profile version %d", path, p.Version)
	}
	return &p, nil
}

// Resolve loads the profile at path if set, otherwise the nearest FileName
// above dir, otherwise Default. The returned path is empty for Default.
func Resolve(path, dir string) (*Profile, string, error) {
	if path == "" {
		found, err := Find(dir)
		if errors.Is(err, os.ErrNotExist) {
			return Default(), "", nil
		}
		if err != nil {
			return nil, "", err
		}
		path = found
	}
	p, err := Load(path)
	if err != nil {
		return nil, "", err
	}
	return p, path, nil
}

// Save writes p to path as TOML or YAML, chosen by extension.
func (p *Profile) Save(path string) error {
	if p.Version == 0 {
		p.Version = currentVersion
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if isYAML(path) {
		enc := yaml.NewEncoder(f)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := enc.Close(); err != nil {
			return err
		}
	} else if err := toml.NewEncoder(f).Encode(p); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return f.Close()
}

// Config returns the classifier configuration for args.
func (p *Profile) Config(args []string, logf logger.Logf) optsplit.Config {
	return optsplit.Config{
		WithValue:    p.WithValue,
		WithoutValue: p.WithoutValue,
		Separators:   p.Separators,
		Args:         args,
		Logf:         logf,
	}
}

// Checker returns the checker pass configured by the profile rules. It
// carries per-pass state, so call it once per Check.
func (p *Profile) Checker() optsplit.CheckFunc {
	var fns []optsplit.CheckFunc
	if len(p.RequireValue) > 0 {
		fns = append(fns, optsplit.RequireValue(p.RequireValue...))
	}
	if len(p.Numeric) > 0 {
		fns = append(fns, optsplit.RequireInteger(p.Numeric...))
	}
	if p.MaxPositionals != nil {
		fns = append(fns, optsplit.MaxPositionals(*p.MaxPositionals))
	}
	return optsplit.All(fns...)
}

// Overlaps returns the names listed both with and without a value. Such
// names always behave as valueless flags.
func (p *Profile) Overlaps() []string {
	return lo.Uniq(lo.Intersect(p.WithValue, p.WithoutValue))
}

// Merge returns a copy of p with each option list replaced by the
// corresponding non-empty list given. p is not modified.
func (p *Profile) Merge(withValue, withoutValue, separators []string) *Profile {
	out := p.Clone()
	if len(withValue) > 0 {
		out.WithValue = lo.Uniq(withValue)
	}
	if len(withoutValue) > 0 {
		out.WithoutValue = lo.Uniq(withoutValue)
	}
	if len(separators) > 0 {
		out.Separators = slices.Clone(separators)
	}
	return out
}

// CheckVersion reports an error if the tool version does not satisfy the
// profile's min_version constraint.
func (p *Profile) CheckVersion(toolVersion string) error {
	if p.MinVersion == "" {
		return nil
	}
	constraint := p.MinVersion
	if _, err := semver.NewVersion(constraint); err == nil {
		// A bare version is a lower bound.
		constraint = ">= " + constraint
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return fmt.Errorf("invalid min_version %q: %w", p.MinVersion, err)
	}
	v, err := semver.NewVersion(toolVersion)
	if err != nil {
		return fmt.Errorf("invalid tool version %q: %w", toolVersion, err)
	}
	if !c.Check(v) {
		return fmt.Errorf("profile requires optsplit %s, have %s", p.MinVersion, toolVersion)
	}
	return nil
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
