// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optsplit

// Result holds the outcome of one Classify run and of any checker pass run
// against it. Arguments, the option lookup and Positionals share the same
// *Argument values.
type Result struct {
	args        []*Argument
	options     map[string]*Argument
	positionals []*Argument

	err      error
	checkErr error
}

// Arguments returns the resolved options in the order they were seen.
// Positional arguments are not included. The slice is never nil.
func (r *Result) Arguments() []*Argument {
	return r.args
}

// Lookup returns the Argument for the canonical option name, e.g. "-a" for
// any of "-a 1", "-a1" or "-a=1". If the option was given more than once the
// last one wins.
func (r *Result) Lookup(option string) (*Argument, bool) {
	a, ok := r.options[option]
	return a, ok
}

// Option is like Lookup but returns nil if the option was not given.
func (r *Result) Option(option string) *Argument {
	return r.options[option]
}

// Has reports whether the option was given.
func (r *Result) Has(option string) bool {
	_, ok := r.options[option]
	return ok
}

// Positionals returns the arguments that resolved to no option, in order.
// The slice is never nil.
func (r *Result) Positionals() []*Argument {
	return r.positionals
}

// PositionalValues returns the values of Positionals.
func (r *Result) PositionalValues() []string {
	vals := make([]string, 0, len(r.positionals))
	for _, a := range r.positionals {
		vals = append(vals, a.Value)
	}
	return vals
}

// Err returns the classification failure, if any. It is a *ClusterError.
func (r *Result) Err() error {
	return r.err
}

// Failed reports whether classification failed.
func (r *Result) Failed() bool {
	return r.err != nil
}

// Message returns the classification failure message, or "" if
// classification succeeded.
func (r *Result) Message() string {
	if r.err == nil {
		return ""
	}
	return r.err.Error()
}

// Check runs fn over every option Argument and then over every positional
// Argument, stopping at the first error. The error is recorded as a
// *CheckError and is available from CheckErr. A clean pass clears any
// earlier checker failure. The classification results are never modified.
//
// Check returns r so that calls can be chained after Classify.
func (r *Result) Check(fn CheckFunc) *Result {
	r.checkErr = nil
	if fn == nil {
		return r
	}
	for _, list := range [][]*Argument{r.args, r.positionals} {
		for _, a := range list {
			if err := fn(a); err != nil {
				r.checkErr = &CheckError{Argument: a, Err: err}
				return r
			}
		}
	}
	return r
}

// CheckErr returns the error recorded by the last Check, if any.
func (r *Result) CheckErr() error {
	return r.checkErr
}

// CheckFailed reports whether the last Check rejected an Argument.
func (r *Result) CheckFailed() bool {
	return r.checkErr != nil
}

// CheckMessage returns the message of the last checker failure, or "".
func (r *Result) CheckMessage() string {
	if r.checkErr == nil {
		return ""
	}
	return r.checkErr.Error()
}

// FirstErr returns the classification error if there is one, otherwise the
// checker error.
func (r *Result) FirstErr() error {
	if r.err != nil {
		return r.err
	}
	return r.checkErr
}
