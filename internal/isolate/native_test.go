// SPDX-License-Identifier: MPL-2.0

package isolate

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
)

func nativeRunner(t *testing.T) *NativeRunner {
	t.Helper()

	r := NewNativeRunner()
	if !r.Available() {
		t.Skip("no shell available on this host")
	}
	return r
}

func TestNativeRun_StdoutOnly(t *testing.T) {
	t.Parallel()

	r := nativeRunner(t)
	result, err := r.Run(context.Background(), "echo hi", Options{})
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}

	if len(result.Output) != 1 || result.Output[0] != "hi" {
		t.Errorf("Output = %v, want [hi]", result.Output)
	}
	if len(result.Errors) != 0 {
		t.Errorf("Errors = %v, want empty", result.Errors)
	}
	if result.ExitCode != 0 {
		t.Errorf("ExitCode = %d, want 0", result.ExitCode)
	}
}

func TestNativeRun_StderrOnly(t *testing.T) {
	t.Parallel()

	r := nativeRunner(t)
	result, err := r.Run(context.Background(), "echo oops 1>&2", Options{})
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}

	if len(result.Output) != 0 {
		t.Errorf("Output = %v, want empty", result.Output)
	}
	if len(result.Errors) != 1 || result.Errors[0] != "oops" {
		t.Errorf("Errors = %v, want [oops]", result.Errors)
	}
}

func TestNativeRun_NonZeroExitIsData(t *testing.T) {
	t.Parallel()

	r := nativeRunner(t)
	result, err := r.Run(context.Background(), "exit 3", Options{})
	if err != nil {
		t.Fatalf("non-zero exit must not be an error, got %v", err)
	}
	if result.ExitCode != 3 {
		t.Errorf("ExitCode = %d, want 3", result.ExitCode)
	}
}

func TestNativeRun_Timeout(t *testing.T) {
	t.Parallel()

	r := nativeRunner(t)
	_, err := r.Run(context.Background(), "sleep 10", Options{Timeout: 100 * time.Millisecond})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Errorf("error = %v, want context.DeadlineExceeded", err)
	}
}

func TestNativeRun_EmptyPayload(t *testing.T) {
	t.Parallel()

	r := NewNativeRunner()
	if _, err := r.Run(context.Background(), "   ", Options{}); err == nil {
		t.Error("empty payload must be rejected")
	}
}

func TestNativeRun_ExtraEnv(t *testing.T) {
	t.Parallel()

	r := nativeRunner(t)
	result, err := r.Run(context.Background(), "echo \"$MODKIT_TEST_VALUE\"",
		Options{Env: map[string]string{"MODKIT_TEST_VALUE": "wired"}})
	if err != nil {
		t.Fatalf("Run error = %v", err)
	}
	if len(result.Output) != 1 || result.Output[0] != "wired" {
		t.Errorf("Output = %v, want [wired]", result.Output)
	}
}

func TestGetShellArgs_NoProfileFlags(t *testing.T) {
	t.Parallel()

	r := NewNativeRunner()

	tests := []struct {
		shell string
		want  string
	}{
		{shell: "/usr/bin/pwsh", want: "-NoProfile"},
		{shell: `C:\Windows\System32\WindowsPowerShell\v1.0\powershell.exe`, want: "-NoProfile"},
		{shell: "/bin/bash", want: "--noprofile"},
		{shell: "/bin/sh", want: "-c"},
	}

	for _, tt := range tests {
		args := r.getShellArgs(tt.shell)
		if !strings.Contains(strings.Join(args, " "), tt.want) {
			t.Errorf("getShellArgs(%q) = %v, want it to contain %q", tt.shell, args, tt.want)
		}
	}
}

func TestGetShellArgs_PowerShellExecutionPolicy(t *testing.T) {
	t.Parallel()

	args := NewNativeRunner().getShellArgs("pwsh")
	joined := strings.Join(args, " ")
	if !strings.Contains(joined, "-ExecutionPolicy Bypass") {
		t.Errorf("pwsh args = %v, want -ExecutionPolicy Bypass", args)
	}
	if args[len(args)-1] != "-Command" {
		t.Errorf("payload must follow -Command, got %v", args)
	}
}
