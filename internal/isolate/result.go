// SPDX-License-Identifier: MPL-2.0

package isolate

import "strings"

// Result contains the captured outcome of one isolated execution.
// Output and Errors preserve the original line order of their streams;
// blank and whitespace-only lines are dropped.
type Result struct {
	// Output is the non-empty trimmed lines of the child's stdout.
	Output []string
	// Errors is the non-empty trimmed lines of the child's stderr.
	Errors []string
	// ExitCode is the child's exit code.
	ExitCode int
}

// Success reports whether the child exited cleanly without writing to
// its error stream.
func (r *Result) Success() bool {
	return r.ExitCode == 0 && len(r.Errors) == 0
}

// newResult builds a Result from raw captured streams.
func newResult(stdout, stderr string, exitCode int) *Result {
	return &Result{
		Output:   splitLines(stdout),
		Errors:   splitLines(stderr),
		ExitCode: exitCode,
	}
}

// splitLines splits a captured stream into lines, trims trailing
// whitespace from each, and drops entries that end up empty.
func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}
