// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"modkit-cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	logApp       string
	logOverwrite bool
	logInitial   bool
	logBackCol   bool
	logJSON      bool

	logCmd = &cobra.Command{
		Use:   "log <level> <template> [value...]",
		Short: "Emit a structured log event",
		Long: `Emit a structured log event through the engine.

The template may contain {name} placeholders which bind to the values
in order. Events below the configured console threshold stay off the
terminal; events at or above the file threshold are appended to the
daily log file when an application name is set (--app or app_name in
the config).

Levels: verbose, debug, information, warning, error, critical.`,
		Args: cobra.MinimumNArgs(2),
		RunE: runLog,
	}
)

func init() {
	logCmd.Flags().StringVarP(&logApp, "app", "a", "", "application name for the file sink")
	logCmd.Flags().BoolVar(&logOverwrite, "overwrite", false, "redraw over the previous console line")
	logCmd.Flags().BoolVar(&logInitial, "initial", false, "start a fresh line before an overwrite sequence")
	logCmd.Flags().BoolVar(&logBackCol, "background", false, "colorize the line background by level")
	logCmd.Flags().BoolVar(&logJSON, "json", false, "print the event as JSON instead of the console line")
}

func runLog(cmd *cobra.Command, args []string) error {
	level, err := logging.ParseLevel(args[0])
	if err != nil {
		return err
	}

	cfg, err := activeConfig().LogConfig()
	if err != nil {
		return err
	}
	if logApp != "" {
		cfg.AppName = logApp
	}
	if cmd.Flags().Changed("overwrite") {
		cfg.Overwrite = logOverwrite
	}
	if cmd.Flags().Changed("background") {
		cfg.UseBackgroundColor = logBackCol
	}
	cfg.InitialWrite = logInitial
	cfg.ReturnJSON = logJSON

	values := make([]any, 0, len(args)-2)
	for _, arg := range args[2:] {
		values = append(values, arg)
	}

	_, out, err := logging.New().Log(cfg, level, args[1], values...)
	if err != nil {
		return err
	}
	if logJSON && out != "" {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	return nil
}
