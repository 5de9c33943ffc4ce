// SPDX-License-Identifier: MPL-2.0

package isolate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"mvdan.cc/sh/v3/expand"
	"mvdan.cc/sh/v3/interp"
	"mvdan.cc/sh/v3/syntax"
)

// VirtualRunner executes payloads in an embedded POSIX shell
// interpreter. No external process is spawned and no interpreter
// profile exists to inherit, so isolation holds even on hosts without
// a usable system shell.
type VirtualRunner struct{}

// NewVirtualRunner creates a virtual runner.
func NewVirtualRunner() *VirtualRunner {
	return &VirtualRunner{}
}

// Name returns the runner name.
func (r *VirtualRunner) Name() string {
	return "virtual"
}

// Available always reports true; the interpreter is built in.
func (r *VirtualRunner) Available() bool {
	return true
}

// Run parses and executes the payload in a fresh interpreter with
// buffer-backed stdio. Interpreter exit statuses map to the Result's
// exit code; only parse and setup failures surface as errors.
func (r *VirtualRunner) Run(ctx context.Context, payload string, opts Options) (*Result, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, fmt.Errorf("payload has no content to execute")
	}

	prog, err := syntax.NewParser().Parse(strings.NewReader(payload), "payload")
	if err != nil {
		return nil, fmt.Errorf("payload syntax error: %w", err)
	}

	runCtx, cancel := withTimeout(ctx, opts)
	defer cancel()

	var stdout, stderr bytes.Buffer
	interpOpts := []interp.RunnerOption{
		interp.Env(expand.ListEnviron(append(os.Environ(), envToSlice(opts.Env)...)...)),
		interp.StdIO(nil, &stdout, &stderr),
	}
	if opts.WorkDir != "" {
		interpOpts = append(interpOpts, interp.Dir(opts.WorkDir))
	}

	runner, err := interp.New(interpOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create interpreter: %w", err)
	}

	err = runner.Run(runCtx, prog)
	if runCtx.Err() != nil {
		return nil, fmt.Errorf("isolated execution timed out: %w", runCtx.Err())
	}
	if err != nil {
		var exitStatus interp.ExitStatus
		if errors.As(err, &exitStatus) {
			return newResult(stdout.String(), stderr.String(), int(exitStatus)), nil
		}
		return nil, fmt.Errorf("payload execution failed: %w", err)
	}

	return newResult(stdout.String(), stderr.String(), 0), nil
}
