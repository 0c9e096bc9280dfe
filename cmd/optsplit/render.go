// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/samber/lo"
	"github.com/yeetrun/optsplit/pkg/optsplit"
)

type renderer struct {
	w      io.Writer
	format string
}

func newRenderer(w io.Writer, format string) *renderer {
	return &renderer{w: w, format: format}
}

type jsonArgument struct {
	Option   string  `json:"option,omitempty"`
	Value    *string `json:"value"`
	Original string  `json:"original"`
}

type jsonResult struct {
	Line        int            `json:"line,omitempty"`
	Arguments   []jsonArgument `json:"arguments"`
	Positionals []string       `json:"positionals"`
	Error       string         `json:"error,omitempty"`
	CheckError  string         `json:"checkError,omitempty"`
}

func toJSON(line int, res *optsplit.Result) jsonResult {
	return jsonResult{
		Line: line,
		Arguments: lo.Map(res.Arguments(), func(a *optsplit.Argument, _ int) jsonArgument {
			ja := jsonArgument{Option: a.Option, Original: a.Original}
			if a.HasValue {
				v := a.Value
				ja.Value = &v
			}
			return ja
		}),
		Positionals: res.PositionalValues(),
		Error:       res.Message(),
		CheckError:  res.CheckMessage(),
	}
}

func (r *renderer) result(res *optsplit.Result) error {
	if r.format == "json" {
		return r.writeJSON(toJSON(0, res))
	}
	return r.text(res)
}

// batch renders results in input order. lines holds the 1-based input line
// number of each result.
func (r *renderer) batch(lines []int, results []*optsplit.Result) error {
	if r.format == "json" {
		out := make([]jsonResult, len(results))
		for i, res := range results {
			out[i] = toJSON(lines[i], res)
		}
		return r.writeJSON(out)
	}
	for i, res := range results {
		fmt.Fprintln(r.w, color.New(color.Bold).Sprintf("line %d", lines[i]))
		if err := r.text(res); err != nil {
			return err
		}
		if msg := res.Message(); msg != "" {
			fmt.Fprintf(r.w, "  %s %s\n", color.RedString("error:"), msg)
		} else if msg := res.CheckMessage(); msg != "" {
			fmt.Fprintf(r.w, "  %s %s\n", color.RedString("rejected:"), msg)
		}
	}
	return nil
}

func (r *renderer) writeJSON(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (r *renderer) text(res *optsplit.Result) error {
	if len(res.Arguments()) == 0 && len(res.Positionals()) == 0 {
		return nil
	}
	optColor := color.New(color.FgGreen)
	argColor := color.New(color.FgCyan)
	tw := tabwriter.NewWriter(r.w, 0, 4, 2, ' ', 0)
	for _, a := range res.Arguments() {
		value := "-"
		if a.HasValue {
			value = a.Value
		}
		fmt.Fprintf(tw, "  %s\t%s\t%q\n", optColor.Sprint(a.Option), value, a.Original)
	}
	for _, a := range res.Positionals() {
		fmt.Fprintf(tw, "  %s\t%s\t%q\n", argColor.Sprint("arg"), a.Value, a.Original)
	}
	return tw.Flush()
}
