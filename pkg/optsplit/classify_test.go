// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optsplit

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func demoConfig(args ...string) Config {
	return Config{
		WithValue:    []string{"-a", "-b", "-c", "-d"},
		WithoutValue: []string{"-k", "-l", "-m", "-n"},
		Separators:   []string{"=", ""},
		Args:         args,
	}
}

func values(list []*Argument) []Argument {
	out := make([]Argument, 0, len(list))
	for _, a := range list {
		out = append(out, *a)
	}
	return out
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		want        []Argument
		positionals []Argument
	}{
		{
			name: "separate value",
			args: []string{"-a", "8080"},
			want: []Argument{{Original: "-a 8080", Option: "-a", Value: "8080", HasValue: true}},
		},
		{
			name: "equals separator",
			args: []string{"-a=8080"},
			want: []Argument{{Original: "-a=8080", Option: "-a", Value: "8080", HasValue: true}},
		},
		{
			name: "glued digits",
			args: []string{"-a8080"},
			want: []Argument{{Original: "-a8080", Option: "-a", Value: "8080", HasValue: true}},
		},
		{
			name: "merged cluster",
			args: []string{"-klm"},
			want: []Argument{
				{Original: "-k", Option: "-k"},
				{Original: "-l", Option: "-l"},
				{Original: "-m", Option: "-m"},
			},
		},
		{
			name:        "positional before option",
			args:        []string{"start", "-a", "1"},
			want:        []Argument{{Original: "-a 1", Option: "-a", Value: "1", HasValue: true}},
			positionals: []Argument{{Original: "start", Value: "start", HasValue: true}},
		},
		{
			name: "pending option at end of input",
			args: []string{"-k", "-a"},
			want: []Argument{
				{Original: "-k", Option: "-k"},
				{Original: "-a", Option: "-a"},
			},
		},
		{
			name: "pending option followed by option",
			args: []string{"-a", "-b", "2"},
			want: []Argument{
				{Original: "-a", Option: "-a"},
				{Original: "-b 2", Option: "-b", Value: "2", HasValue: true},
			},
		},
		{
			name: "pending cleared by glued option",
			args: []string{"-a", "-b=2", "x"},
			want: []Argument{
				{Original: "-a", Option: "-a"},
				{Original: "-b=2", Option: "-b", Value: "2", HasValue: true},
			},
			positionals: []Argument{{Original: "x", Value: "x", HasValue: true}},
		},
		{
			name: "pending cleared by cluster",
			args: []string{"-a", "-kl", "x"},
			want: []Argument{
				{Original: "-a", Option: "-a"},
				{Original: "-k", Option: "-k"},
				{Original: "-l", Option: "-l"},
			},
			positionals: []Argument{{Original: "x", Value: "x", HasValue: true}},
		},
		{
			name: "tokens are trimmed",
			args: []string{"  -a ", " 80 ", " rest\t"},
			want: []Argument{{Original: "-a 80", Option: "-a", Value: "80", HasValue: true}},
			positionals: []Argument{
				{Original: "rest", Value: "rest", HasValue: true},
			},
		},
		{
			name: "empty value after separator",
			args: []string{"-c="},
			want: []Argument{{Original: "-c=", Option: "-c", Value: "", HasValue: true}},
		},
		{
			name: "value keeps later separators",
			args: []string{"-d=x=y"},
			want: []Argument{{Original: "-d=x=y", Option: "-d", Value: "x=y", HasValue: true}},
		},
		{
			name:        "lone marker is positional",
			args:        []string{"-"},
			positionals: []Argument{{Original: "-", Value: "-", HasValue: true}},
		},
		{
			name: "lone marker fills pending option",
			args: []string{"-a", "-"},
			want: []Argument{{Original: "-a -", Option: "-a", Value: "-", HasValue: true}},
		},
		{
			name: "last write wins in list order",
			args: []string{"-a", "1", "-a=2"},
			want: []Argument{
				{Original: "-a 1", Option: "-a", Value: "1", HasValue: true},
				{Original: "-a=2", Option: "-a", Value: "2", HasValue: true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(demoConfig(tt.args...))
			if err := res.Err(); err != nil {
				t.Fatalf("Classify(%q) error: %v", tt.args, err)
			}
			want := tt.want
			if want == nil {
				want = []Argument{}
			}
			if diff := cmp.Diff(want, values(res.Arguments())); diff != "" {
				t.Errorf("Arguments() mismatch (-want +got):\n%s", diff)
			}
			wantPos := tt.positionals
			if wantPos == nil {
				wantPos = []Argument{}
			}
			if diff := cmp.Diff(wantPos, values(res.Positionals())); diff != "" {
				t.Errorf("Positionals() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifyClusterFailure(t *testing.T) {
	tests := []struct {
		name  string
		args  []string
		token string
		flag  string
	}{
		{"unknown letter", []string{"-kx"}, "-kx", "-x"},
		{"failure discards earlier results", []string{"start", "-a", "1", "-k", "-klm"}, "-klm", "-k"},
		{"letter used twice", []string{"-kk"}, "-kk", "-k"},
		{"value option letter", []string{"-ka"}, "-ka", "-a"},
		{"unknown long flag", []string{"--verbose"}, "--verbose", "--"},
		{"negative number", []string{"-a", "-5"}, "-5", "-5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(demoConfig(tt.args...))
			if !res.Failed() {
				t.Fatalf("Classify(%q) succeeded, want failure", tt.args)
			}
			var ce *ClusterError
			if !errors.As(res.Err(), &ce) {
				t.Fatalf("Err() = %T, want *ClusterError", res.Err())
			}
			if ce.Token != tt.token || ce.Flag != tt.flag {
				t.Errorf("ClusterError = {%q %q}, want {%q %q}", ce.Token, ce.Flag, tt.token, tt.flag)
			}
			if got, want := res.Message(), "illegal argument: "+tt.token; got != want {
				t.Errorf("Message() = %q, want %q", got, want)
			}
			if n := len(res.Arguments()); n != 0 {
				t.Errorf("len(Arguments()) = %d, want 0", n)
			}
			if res.Positionals() == nil || len(res.Positionals()) != 0 {
				t.Errorf("Positionals() = %#v, want empty non-nil", res.Positionals())
			}
			if _, ok := res.Lookup("-a"); ok {
				t.Errorf("Lookup(-a) found an argument after failure")
			}
		})
	}
}

func TestClassifyValuelessConsumed(t *testing.T) {
	// -k is used up by the first token, so the cluster cannot reuse it.
	res := Classify(demoConfig("-k", "-lk"))
	if !res.Failed() {
		t.Fatalf("Classify succeeded, want failure")
	}

	// A second exact -k is no longer a flag; with nothing pending it is a
	// cluster of an already used letter.
	res = Classify(demoConfig("-kl", "-k"))
	if got := res.Message(); got != "illegal argument: -k" {
		t.Fatalf("Message() = %q, want %q", got, "illegal argument: -k")
	}
}

func TestClassifyConfigReusable(t *testing.T) {
	cfg := demoConfig("-klmn")
	for i := range 3 {
		res := Classify(cfg)
		if err := res.Err(); err != nil {
			t.Fatalf("run %d: Classify error: %v", i, err)
		}
		if n := len(res.Arguments()); n != 4 {
			t.Fatalf("run %d: len(Arguments()) = %d, want 4", i, n)
		}
	}
	if diff := cmp.Diff([]string{"-k", "-l", "-m", "-n"}, cfg.WithoutValue); diff != "" {
		t.Errorf("WithoutValue modified (-want +got):\n%s", diff)
	}
}

func TestClassifyLookupCanonicalName(t *testing.T) {
	res := Classify(demoConfig("-a=1", "-b2", "-c", "3", "-klm"))
	for opt, want := range map[string]string{"-a": "1", "-b": "2", "-c": "3"} {
		a, ok := res.Lookup(opt)
		if !ok {
			t.Fatalf("Lookup(%q) not found", opt)
		}
		if a.Value != want {
			t.Errorf("Lookup(%q).Value = %q, want %q", opt, a.Value, want)
		}
	}
	for _, opt := range []string{"-k", "-l", "-m"} {
		if !res.Has(opt) {
			t.Errorf("Has(%q) = false, want true", opt)
		}
	}
	if res.Has("-a=1") {
		t.Errorf("Has(%q) = true, want lookup by canonical name only", "-a=1")
	}
	if a := res.Option("-d"); a != nil {
		t.Errorf("Option(-d) = %v, want nil", a)
	}
}

func TestClassifySharedArguments(t *testing.T) {
	res := Classify(demoConfig("-a", "1"))
	a, _ := res.Lookup("-a")
	if a != res.Arguments()[0] {
		t.Fatalf("Lookup and Arguments returned different values")
	}
}

func TestClassifySeparators(t *testing.T) {
	tests := []struct {
		name       string
		separators []string
		tok        string
		wantOption string
		wantValue  string
	}{
		{"no separators", nil, "-a8080", "", ""},
		{"digits only", []string{""}, "-a8080", "-a", "8080"},
		{"digits rejects letters", []string{""}, "-ax", "", ""},
		{"digits keeps trailing text", []string{""}, "-a8x", "-a", "8x"},
		{"equals not configured", []string{""}, "-a=1", "", ""},
		{"colon", []string{":"}, "-a:v", "-a", "v"},
		{"case-insensitive word", []string{"is"}, "-aISv", "-a", "v"},
		{"declared order", []string{"", "1"}, "-a12", "-a", "12"},
		{"declared order reversed", []string{"1", ""}, "-a12", "-a", "2"},
		{"separator longer than rest", []string{"=="}, "-a=", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Classify(Config{
				WithValue:  []string{"-a"},
				Separators: tt.separators,
				Args:       []string{tt.tok},
			})
			a, ok := res.Lookup("-a")
			if tt.wantOption == "" {
				// With no glued match the token falls through to the
				// cluster rule and has no valueless flags to match.
				if ok {
					t.Fatalf("Lookup(-a) = %+v, want no match", *a)
				}
				if !res.Failed() {
					t.Fatalf("Classify(%q) succeeded, want cluster failure", tt.tok)
				}
				return
			}
			if !ok {
				t.Fatalf("Lookup(-a) not found; positionals %q", res.PositionalValues())
			}
			if a.Value != tt.wantValue || a.Original != tt.tok {
				t.Errorf("Argument = %+v, want value %q original %q", *a, tt.wantValue, tt.tok)
			}
		})
	}
}

func TestClassifyLongestPrefixFirst(t *testing.T) {
	res := Classify(Config{
		WithValue:  []string{"-p", "-port"},
		Separators: []string{"="},
		Args:       []string{"-port=80", "-p=1"},
	})
	if a := res.Option("-port"); a == nil || a.Value != "80" {
		t.Fatalf("Option(-port) = %v, want value 80", a)
	}
	if a := res.Option("-p"); a == nil || a.Value != "1" {
		t.Fatalf("Option(-p) = %v, want value 1", a)
	}
}

func TestClassifyOverlapValuelessWins(t *testing.T) {
	res := Classify(Config{
		WithValue:    []string{"-v"},
		WithoutValue: []string{"-v"},
		Args:         []string{"-v", "x"},
	})
	a, ok := res.Lookup("-v")
	if !ok || a.HasValue {
		t.Fatalf("Lookup(-v) = %v, %v; want valueless flag", a, ok)
	}
	if got := res.PositionalValues(); len(got) != 1 || got[0] != "x" {
		t.Fatalf("PositionalValues() = %q, want [x]", got)
	}
}

func TestClassifyZeroConfig(t *testing.T) {
	res := Classify(Config{Args: []string{"a", "b"}})
	if res.Failed() {
		t.Fatalf("Classify error: %v", res.Err())
	}
	if diff := cmp.Diff([]string{"a", "b"}, res.PositionalValues()); diff != "" {
		t.Errorf("PositionalValues() mismatch (-want +got):\n%s", diff)
	}

	res = Classify(Config{})
	if res.Arguments() == nil || res.Positionals() == nil {
		t.Fatalf("empty run returned nil slices")
	}
}

func TestClassifyTrace(t *testing.T) {
	var lines []string
	cfg := demoConfig("-a", "1", "-kl", "x")
	cfg.Logf = func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	}
	Classify(cfg)
	if len(lines) != 4 {
		t.Fatalf("got %d trace lines, want 4:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if !strings.Contains(lines[2], "cluster of 2 flags") {
		t.Errorf("trace line = %q, want cluster entry", lines[2])
	}
}

func TestArgumentString(t *testing.T) {
	tests := []struct {
		arg  Argument
		want string
	}{
		{Argument{Original: "x", Value: "x", HasValue: true}, "x"},
		{Argument{Original: "-k", Option: "-k"}, "-k"},
		{Argument{Original: "-a 1", Option: "-a", Value: "1", HasValue: true}, "-a=1"},
	}
	for _, tt := range tests {
		if got := tt.arg.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
