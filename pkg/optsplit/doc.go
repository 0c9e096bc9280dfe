// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package optsplit classifies a raw argument vector against a declarative
// option configuration.
//
// Three option styles are recognized in a single pass:
//   - Separate values: -a 8080
//   - Glued or separated values: -a8080, -a=8080
//   - Merged single-letter flags: -klm (same as -k -l -m)
//
// Tokens that resolve to no option are positional arguments.
//
// # Usage
//
//	res := optsplit.Classify(optsplit.Config{
//	    WithValue:    []string{"-a", "-b"},
//	    WithoutValue: []string{"-k", "-l", "-m"},
//	    Separators:   []string{"=", ""},
//	    Args:         os.Args[1:],
//	}).Check(optsplit.RequireValue("-a"))
//	if res.Failed() || res.CheckFailed() {
//	    fmt.Fprintln(os.Stderr, res.Message(), res.CheckMessage())
//	    os.Exit(1)
//	}
//	if a, ok := res.Lookup("-a"); ok {
//	    fmt.Println("port:", a.Value)
//	}
//
// # Matching Order
//
// Each token is trimmed and then tested in this order, first match wins:
//  1. An exact valueless option name that has not been used yet.
//  2. An exact value-expecting option name. The next standalone token
//     becomes its value.
//  3. A value-expecting option name followed by a separator and a value.
//     The empty separator means "digits glued directly to the name".
//  4. A cluster of single-letter valueless flags after the "-" marker.
//     Every letter must match or the whole run fails.
//  5. The value of a pending option, or else a positional argument.
//
// A cluster that does not fully match discards all results and is reported
// through Result.Err. Checker failures are reported through Result.CheckErr
// and keep the results intact. Neither channel panics.
package optsplit
