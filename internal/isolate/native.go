// SPDX-License-Identifier: MPL-2.0

package isolate

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"time"
)

// ErrNoShell is returned when no usable shell can be found on the host.
var ErrNoShell = errors.New("no shell found")

// killGracePeriod is how long a timed-out child gets between the kill
// signal and the call giving up on collecting its output.
const killGracePeriod = 3 * time.Second

// NativeRunner executes payloads in a brand-new system shell process
// with profile and module state loading disabled.
type NativeRunner struct {
	// Shell overrides the discovered shell binary.
	Shell string
	// ShellArgs overrides the arguments passed before the payload.
	ShellArgs []string
}

// NewNativeRunner creates a native runner with platform defaults.
func NewNativeRunner() *NativeRunner {
	return &NativeRunner{}
}

// Name returns the runner name.
func (r *NativeRunner) Name() string {
	return "native"
}

// Available reports whether a usable shell exists on this host.
func (r *NativeRunner) Available() bool {
	_, err := r.getShell()
	return err == nil
}

// Run spawns a fresh shell process for the payload and captures stdout
// and stderr separately. Both pipes are drained concurrently while the
// child runs, so heavy output on either stream cannot deadlock the
// pipe buffers. Non-zero exits and stderr output surface through the
// Result; the returned error covers only spawn and timeout failures.
func (r *NativeRunner) Run(ctx context.Context, payload string, opts Options) (*Result, error) {
	if strings.TrimSpace(payload) == "" {
		return nil, fmt.Errorf("payload has no content to execute")
	}

	shell, err := r.getShell()
	if err != nil {
		return nil, err
	}

	runCtx, cancel := withTimeout(ctx, opts)
	defer cancel()

	args := append(r.getShellArgs(shell), payload)
	cmd := exec.CommandContext(runCtx, shell, args...)
	cmd.WaitDelay = killGracePeriod
	if opts.WorkDir != "" {
		cmd.Dir = opts.WorkDir
	}
	cmd.Env = append(os.Environ(), envToSlice(opts.Env)...)

	// os/exec pumps each non-file writer on its own goroutine, so the
	// two buffers fill while the child runs and join at Wait.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err = cmd.Run()
	if runCtx.Err() != nil {
		return nil, fmt.Errorf("isolated execution timed out: %w", runCtx.Err())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return newResult(stdout.String(), stderr.String(), exitErr.ExitCode()), nil
		}
		return nil, fmt.Errorf("failed to spawn %s: %w", shell, err)
	}

	return newResult(stdout.String(), stderr.String(), 0), nil
}

// getShell determines which shell to use.
func (r *NativeRunner) getShell() (string, error) {
	if r.Shell != "" {
		return r.Shell, nil
	}

	switch runtime.GOOS {
	case "windows":
		// Prefer PowerShell, then Windows PowerShell, then cmd.
		if pwsh, err := exec.LookPath("pwsh"); err == nil {
			return pwsh, nil
		}
		if ps, err := exec.LookPath("powershell"); err == nil {
			return ps, nil
		}
		if cmdExe, err := exec.LookPath("cmd"); err == nil {
			return cmdExe, nil
		}
		return "", ErrNoShell
	default:
		if shell := os.Getenv("SHELL"); shell != "" {
			return shell, nil
		}
		if bash, err := exec.LookPath("bash"); err == nil {
			return bash, nil
		}
		if sh, err := exec.LookPath("sh"); err == nil {
			return sh, nil
		}
		return "", ErrNoShell
	}
}

// getShellArgs returns the arguments placed before the payload. Every
// shell family gets its profile and rc loading disabled so the child
// starts with no inherited interpreter state.
func (r *NativeRunner) getShellArgs(shell string) []string {
	if len(r.ShellArgs) > 0 {
		return r.ShellArgs
	}

	base := filepath.Base(shell)
	// Handle Windows path separators when running on Unix.
	if lastSlash := strings.LastIndex(base, `\`); lastSlash >= 0 {
		base = base[lastSlash+1:]
	}
	base = strings.TrimSuffix(base, ".exe")

	switch base {
	case "cmd":
		// /D skips AutoRun commands from the registry.
		return []string{"/D", "/C"}
	case "powershell", "pwsh":
		return []string{"-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command"}
	case "bash":
		return []string{"--noprofile", "--norc", "-c"}
	default:
		// Assume a POSIX shell.
		return []string{"-c"}
	}
}

// envToSlice converts an environment map to KEY=VALUE form.
func envToSlice(env map[string]string) []string {
	result := make([]string, 0, len(env))
	for k, v := range env {
		result = append(result, k+"="+v)
	}
	return result
}
