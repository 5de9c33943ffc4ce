// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"modkit-cli/internal/isolate"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	runRunner  string
	runFile    string
	runWorkDir string
	runTimeout time.Duration
	runEnv     []string
	runJSON    bool

	runCmd = &cobra.Command{
		Use:   "run [script]",
		Short: "Run a script payload in an isolated shell",
		Long: `Run a script payload in an isolated shell.

The payload comes from the argument, --file, or stdin when the argument
is '-'. The native runner starts the platform shell with profiles
disabled; the virtual runner interprets POSIX shell in-process without
touching any system shell.

Standard output and standard error are captured separately and the
script's exit code becomes modkit's exit code.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runRun,
	}
)

func init() {
	runCmd.Flags().StringVarP(&runRunner, "runner", "r", "", "runner to use: native or virtual (default from config)")
	runCmd.Flags().StringVarP(&runFile, "file", "f", "", "read the payload from a file")
	runCmd.Flags().StringVarP(&runWorkDir, "workdir", "w", "", "working directory for the payload")
	runCmd.Flags().DurationVarP(&runTimeout, "timeout", "t", 0, "kill the payload after this duration")
	runCmd.Flags().StringArrayVarP(&runEnv, "env", "e", nil, "extra environment variables (KEY=VALUE, repeatable)")
	runCmd.Flags().BoolVar(&runJSON, "json", false, "print the captured result as JSON")
}

func runRun(cmd *cobra.Command, args []string) error {
	payload, err := resolvePayload(args)
	if err != nil {
		return err
	}

	kind, err := resolveRunnerKind(runRunner)
	if err != nil {
		return err
	}
	runner, err := isolate.NewRegistry().Get(kind)
	if err != nil {
		return err
	}
	if !runner.Available() {
		return fmt.Errorf("runner %s is not available on this system", runner.Name())
	}
	diag.Debug("running payload", "runner", runner.Name(), "bytes", len(payload))

	env, err := parseEnvFlags(runEnv)
	if err != nil {
		return err
	}
	res, err := runner.Run(cmd.Context(), payload, isolate.Options{
		WorkDir: runWorkDir,
		Env:     env,
		Timeout: runTimeout,
	})
	if err != nil {
		return err
	}

	if runJSON {
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
	} else {
		for _, line := range res.Output {
			fmt.Fprintln(cmd.OutOrStdout(), line)
		}
		style := stderrStyle(res.ExitCode)
		for _, line := range res.Errors {
			fmt.Fprintln(cmd.ErrOrStderr(), style.Render(line))
		}
	}

	if res.ExitCode != 0 {
		return &ExitError{Code: res.ExitCode}
	}
	return nil
}

// stderrStyle picks how captured stderr lines are rendered: warnings
// when the script still succeeded, errors when it failed.
func stderrStyle(exitCode int) lipgloss.Style {
	if exitCode != 0 {
		return ErrorStyle
	}
	return WarningStyle
}

// resolvePayload picks the script source: --file wins, then an explicit
// argument, with '-' meaning stdin.
func resolvePayload(args []string) (string, error) {
	if runFile != "" {
		data, err := os.ReadFile(runFile)
		if err != nil {
			return "", fmt.Errorf("reading payload file: %w", err)
		}
		return string(data), nil
	}
	if len(args) == 0 {
		return "", fmt.Errorf("no payload: pass a script argument, --file, or '-' for stdin")
	}
	if args[0] == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("reading payload from stdin: %w", err)
		}
		return string(data), nil
	}
	return args[0], nil
}

// resolveRunnerKind maps the --runner flag onto a runner kind, falling
// back to the configured default.
func resolveRunnerKind(flag string) (isolate.Kind, error) {
	if flag == "" {
		return activeConfig().Runner()
	}
	switch kind := isolate.Kind(flag); kind {
	case isolate.KindNative, isolate.KindVirtual:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown runner %q (want native or virtual)", flag)
	}
}

func parseEnvFlags(pairs []string) (map[string]string, error) {
	if len(pairs) == 0 {
		return nil, nil
	}
	env := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		key, value, ok := strings.Cut(pair, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid --env value %q (want KEY=VALUE)", pair)
		}
		env[key] = value
	}
	return env, nil
}
