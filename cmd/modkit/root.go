// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"modkit-cli/internal/config"
	"modkit-cli/internal/issue"

	"github.com/charmbracelet/fang"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// verbose enables verbose diagnostic output
	verbose bool
	// cfgFile allows specifying a custom config file
	cfgFile string

	// loadedCfg is the configuration resolved by initRootConfig.
	loadedCfg *config.Config

	// diag is the CLI diagnostics logger. It writes to stderr so it
	// never mixes with script output or engine lines on stdout.
	diag = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: false,
	})

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "modkit",
		Short: "Maintenance toolkit for PowerShell module repositories",
		Long: TitleStyle.Render("modkit") + SubtitleStyle.Render(" - Maintenance toolkit for PowerShell module repositories") + `

modkit automates the chores around private PowerShell module feeds:
registering repositories, bumping manifest versions, installing the
newest published version, and pruning superseded installs. Scripts run
in an isolated shell with profiles disabled, and every operation is
recorded by a structured logging engine with separate console and file
thresholds.

` + SubtitleStyle.Render("Examples:") + `
  modkit run 'Get-Date'            Run a script line in isolation
  modkit repo list                 List registered repositories
  modkit module bump ./My.psd1     Bump the manifest patch version
  modkit log info 'hi {name}' ops  Emit a structured log event
  modkit config show               Show current configuration`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is <config-dir>/modkit/config.cue)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(repoCmd)
	rootCmd.AddCommand(moduleCmd)
	rootCmd.AddCommand(configCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.Code)
		}
		os.Exit(1)
	}
}

// initRootConfig loads configuration and tunes the diagnostics logger.
func initRootConfig() {
	if verbose {
		diag.SetLevel(charmlog.DebugLevel)
	}

	cfg, err := config.LoadWithOptions(config.LoadOptions{ConfigFilePath: cfgFile})
	if err != nil {
		// Config problems never block the CLI; defaults apply.
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}
	if cfg == nil {
		defaults := config.DefaultConfig()
		cfg = &defaults
	}
	loadedCfg = cfg
}

// activeConfig returns the loaded configuration, falling back to the
// defaults when cobra initialization has not run (tests).
func activeConfig() *config.Config {
	if loadedCfg != nil {
		return loadedCfg
	}
	defaults := config.DefaultConfig()
	return &defaults
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}
