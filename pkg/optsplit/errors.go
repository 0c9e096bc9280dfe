// Copyright (c) 2025 AUTHORS All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package optsplit

import "fmt"

// ClusterError is recorded when a merged flag cluster contains a letter
// that does not name an unused single-letter valueless option. All results
// of the run are discarded.
type ClusterError struct {
	Token string // The whole token, e.g. "-kx".
	Flag  string // The flag that failed to match, e.g. "-x".
}

func (e *ClusterError) Error() string {
	return fmt.Sprintf("illegal argument: %s", e.Token)
}

// CheckError is recorded when a CheckFunc rejects an Argument.
type CheckError struct {
	Argument *Argument
	Err      error
}

func (e *CheckError) Error() string {
	return e.Err.Error()
}

func (e *CheckError) Unwrap() error {
	return e.Err
}
