// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"path/filepath"

	"modkit-cli/internal/config"

	"github.com/spf13/cobra"
)

var (
	configCmd = &cobra.Command{
		Use:   "config",
		Short: "Manage modkit configuration",
		Long: `Manage modkit configuration.

Configuration is stored in:
  - Linux: ~/.config/modkit/config.cue
  - macOS: ~/Library/Application Support/modkit/config.cue
  - Windows: %LOCALAPPDATA%\modkit\config.cue`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	configShowCmd = &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := activeConfig()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, TitleStyle.Render("modkit configuration"))
			fmt.Fprintf(out, "  console_level:        %s\n", cfg.ConsoleLevel)
			fmt.Fprintf(out, "  file_level:           %s\n", cfg.FileLevel)
			fmt.Fprintf(out, "  app_name:             %s\n", valueOrUnset(cfg.AppName))
			fmt.Fprintf(out, "  use_background_color: %v\n", cfg.UseBackgroundColor)
			fmt.Fprintf(out, "  overwrite:            %v\n", cfg.Overwrite)
			fmt.Fprintf(out, "  default_runner:       %s\n", cfg.DefaultRunner)
			fmt.Fprintf(out, "  registry_path:        %s\n", valueOrUnset(cfg.RegistryPath))
			return nil
		},
	}

	configPathCmd = &cobra.Command{
		Use:   "path",
		Short: "Show configuration file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := config.ConfigDir()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), filepath.Join(dir, "config.cue"))
			return nil
		},
	}
)

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configPathCmd)
}

func valueOrUnset(s string) string {
	if s == "" {
		return SubtitleStyle.Render("(unset)")
	}
	return s
}
