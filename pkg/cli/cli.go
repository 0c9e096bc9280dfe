// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shayne/yargs"
)

const (
	CommandSplit   = "split"
	CommandBatch   = "batch"
	CommandProfile = "profile"
	CommandVersion = "version"
)

type CommandInfo struct {
	Name        string
	Description string
	Usage       string
	Examples    []string
	Hidden      bool
	Aliases     []string
}

type GlobalFlags struct {
	Profile string `flag:"profile" help:"Profile file (OPTSPLIT_PROFILE, default: nearest optsplit.toml)"`
	Verbose bool   `flag:"verbose" short:"v" help:"Log every classification decision"`
}

// OptionFlags override the option lists of the profile.
type OptionFlags struct {
	WithValue    []string
	WithoutValue []string
	Separators   []string
	GlueDigits   bool
}

// AllSeparators returns Separators with the digit separator appended when
// GlueDigits is set.
func (f OptionFlags) AllSeparators() []string {
	if !f.GlueDigits {
		return f.Separators
	}
	return append(append([]string{}, f.Separators...), "")
}

type SplitFlags struct {
	OptionFlags
	Format string
}

type BatchFlags struct {
	OptionFlags
	Format string
	Jobs   int
}

type ProfileFlags struct {
	Output string
	Force  bool
}

type globalFlagsParsed struct {
	Profile string `flag:"profile"`
	Verbose bool   `flag:"verbose" short:"v"`
}

type splitFlagsParsed struct {
	WithValue    []string `flag:"with-value" short:"w"`
	WithoutValue []string `flag:"without-value" short:"f"`
	Separators   []string `flag:"sep" short:"s"`
	GlueDigits   bool     `flag:"glue-digits"`
	Format       string   `flag:"format" default:"text"`
}

type batchFlagsParsed struct {
	WithValue    []string `flag:"with-value" short:"w"`
	WithoutValue []string `flag:"without-value" short:"f"`
	Separators   []string `flag:"sep" short:"s"`
	GlueDigits   bool     `flag:"glue-digits"`
	Format       string   `flag:"format" default:"text"`
	Jobs         int      `flag:"jobs" short:"j" default:"4"`
}

type profileFlagsParsed struct {
	Output string `flag:"output" short:"o"`
	Force  bool   `flag:"force"`
}

var commandInfos = map[string]CommandInfo{
	CommandSplit: {
		Name:        CommandSplit,
		Description: "Classify TOKENS into options and positional arguments",
		Usage:       "[--format=text|json] [--with-value=-a,-b] [--without-value=-k] [--sep==] [--glue-digits] -- TOKENS...",
		Examples: []string{
			"optsplit split -- start -a 8080 -b=x -klm",
			"optsplit split --with-value=-p --glue-digits -- -p8080",
			"optsplit split --format=json -- -a=1 rest",
		},
		Aliases: []string{"s"},
	},
	CommandBatch: {
		Name:        CommandBatch,
		Description: "Classify every line of FILE as its own token list",
		Usage:       "FILE|- [--jobs=N] [--format=text|json]",
		Examples: []string{
			"optsplit batch ./argv.txt",
			"optsplit batch ./argv.txt.zst --jobs=8",
		},
	},
	CommandProfile: {
		Name:        CommandProfile,
		Description: "Show the resolved profile or write the default one",
		Usage:       "show|init [--output=optsplit.toml] [--force]",
		Examples: []string{
			"optsplit profile show",
			"optsplit profile init --output=optsplit.yaml",
		},
	},
	CommandVersion: {
		Name:        CommandVersion,
		Description: "Show the optsplit version",
	},
}

func CommandNames() []string {
	names := make([]string, 0, len(commandInfos))
	for name := range commandInfos {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func CommandInfos() map[string]CommandInfo {
	return commandInfos
}

func HelpConfig(version string) yargs.HelpConfig {
	subcommands := make(map[string]yargs.SubCommandInfo, len(commandInfos))
	for name, info := range commandInfos {
		subcommands[name] = toSubCommandInfo(name, info)
	}
	return yargs.HelpConfig{
		Command: yargs.CommandInfo{
			Name:        "optsplit",
			Description: fmt.Sprintf("Split an argument vector into options and positional arguments (%s).", version),
			Examples: []string{
				"optsplit split -- start -a 8080 -klm",
				"optsplit --profile=./cli.toml split -- -p=80 serve",
			},
		},
		SubCommands: subcommands,
	}
}

func toSubCommandInfo(name string, info CommandInfo) yargs.SubCommandInfo {
	return yargs.SubCommandInfo{
		Name:        name,
		Description: info.Description,
		Usage:       info.Usage,
		Examples:    info.Examples,
		Hidden:      info.Hidden,
		Aliases:     info.Aliases,
	}
}

// SplitTokens splits the process arguments at the first "--". Everything
// after it is passed to the classifier untouched, so tokens like "-h" never
// reach the command router.
func SplitTokens(args []string) (own, tokens []string) {
	for i, arg := range args {
		if arg == "--" {
			return args[:i], args[i+1:]
		}
	}
	return args, nil
}

func ParseGlobal(args []string) (GlobalFlags, []string, error) {
	result, err := yargs.ParseKnownFlags[globalFlagsParsed](args, yargs.KnownFlagsOptions{})
	if err != nil {
		return GlobalFlags{}, nil, err
	}
	return GlobalFlags{
		Profile: result.Flags.Profile,
		Verbose: result.Flags.Verbose,
	}, result.RemainingArgs, nil
}

func ParseSplit(args []string) (SplitFlags, []string, error) {
	parsed, rest, err := parseKnown[splitFlagsParsed](CommandSplit, args)
	if err != nil {
		return SplitFlags{}, nil, err
	}
	flags := SplitFlags{
		OptionFlags: OptionFlags{
			WithValue:    parsed.WithValue,
			WithoutValue: parsed.WithoutValue,
			Separators:   parsed.Separators,
			GlueDigits:   parsed.GlueDigits,
		},
		Format: parsed.Format,
	}
	if err := validateFormat(flags.Format); err != nil {
		return SplitFlags{}, nil, err
	}
	return flags, rest, nil
}

func ParseBatch(args []string) (BatchFlags, string, error) {
	parsed, rest, err := parseKnown[batchFlagsParsed](CommandBatch, args)
	if err != nil {
		return BatchFlags{}, "", err
	}
	flags := BatchFlags{
		OptionFlags: OptionFlags{
			WithValue:    parsed.WithValue,
			WithoutValue: parsed.WithoutValue,
			Separators:   parsed.Separators,
			GlueDigits:   parsed.GlueDigits,
		},
		Format: parsed.Format,
		Jobs:   parsed.Jobs,
	}
	if err := validateFormat(flags.Format); err != nil {
		return BatchFlags{}, "", err
	}
	if flags.Jobs < 1 {
		return BatchFlags{}, "", fmt.Errorf("--jobs must be at least 1, got %d", flags.Jobs)
	}
	if err := RequireArgs(CommandBatch, rest, 1); err != nil {
		return BatchFlags{}, "", err
	}
	return flags, rest[0], nil
}

func ParseProfile(args []string) (ProfileFlags, string, error) {
	parsed, rest, err := parseKnown[profileFlagsParsed](CommandProfile, args)
	if err != nil {
		return ProfileFlags{}, "", err
	}
	action := "show"
	if len(rest) > 0 {
		action = rest[0]
	}
	switch action {
	case "show", "init":
	default:
		return ProfileFlags{}, "", fmt.Errorf("unknown profile action %q (want show or init)", action)
	}
	return ProfileFlags{Output: parsed.Output, Force: parsed.Force}, action, nil
}

// parseKnown parses the flags of command and returns the remaining
// positional args with the command name itself removed.
func parseKnown[T any](command string, args []string) (T, []string, error) {
	var zero T
	result, err := yargs.ParseKnownFlags[T](args, yargs.KnownFlagsOptions{SplitCommaSlices: true})
	if err != nil {
		return zero, nil, err
	}
	rest := result.RemainingArgs
	if len(rest) > 0 && isCommandName(command, rest[0]) {
		rest = rest[1:]
	}
	for _, arg := range rest {
		if strings.HasPrefix(arg, "-") && arg != "-" {
			return zero, nil, fmt.Errorf("unknown flag for '%s': %s", command, arg)
		}
	}
	return result.Flags, rest, nil
}

func isCommandName(command, arg string) bool {
	if arg == command {
		return true
	}
	for _, alias := range commandInfos[command].Aliases {
		if arg == alias {
			return true
		}
	}
	return false
}

func validateFormat(format string) error {
	switch format {
	case "text", "json":
		return nil
	}
	return fmt.Errorf("invalid --format %q (want text or json)", format)
}

func RequireArgs(subcmd string, args []string, count int) error {
	if len(args) != count {
		return fmt.Errorf("'%s' requires %d argument(s), got %d", subcmd, count, len(args))
	}
	return nil
}
