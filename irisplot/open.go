// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os/exec"

	"github.com/kballard/go-shellquote"
)

// openCommand returns a command that runs the shell-quoted command
// line cmdline with path appended as its final argument.
func openCommand(cmdline, path string) (*exec.Cmd, error) {
	args, err := shellquote.Split(cmdline)
	if err != nil {
		return nil, fmt.Errorf("parsing -open command: %w", err)
	}
	if len(args) == 0 {
		return nil, fmt.Errorf("empty -open command")
	}
	return exec.Command(args[0], append(args[1:], path)...), nil
}
