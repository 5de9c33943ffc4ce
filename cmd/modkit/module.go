// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"modkit-cli/internal/modrepo"
	"modkit-cli/pkg/version"

	"github.com/spf13/cobra"
)

var (
	bumpPart    string
	installRepo string

	moduleCmd = &cobra.Command{
		Use:   "module",
		Short: "Maintain PowerShell modules",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	moduleBumpCmd = &cobra.Command{
		Use:   "bump <manifest.psd1>",
		Short: "Bump the ModuleVersion in a module manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			part, err := version.ParsePart(bumpPart)
			if err != nil {
				return err
			}
			old, bumped, err := modrepo.BumpManifestVersion(args[0], part)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s -> %s\n",
				CmdStyle.Render(args[0]), old, SuccessStyle.Render(bumped.String()))
			return nil
		},
	}

	moduleInstallCmd = &cobra.Command{
		Use:   "install <name>",
		Short: "Install a module from a repository when the feed is newer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := repoService()
			if err != nil {
				return err
			}
			installed, err := svc.InstallIfNewer(cmd.Context(), args[0], installRepo)
			if err != nil {
				return err
			}
			if installed {
				fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Installed ")+CmdStyle.Render(args[0]))
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("already up to date"))
			}
			return nil
		},
	}

	modulePruneCmd = &cobra.Command{
		Use:   "prune <name>",
		Short: "Uninstall all but the newest installed version of a module",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := repoService()
			if err != nil {
				return err
			}
			if err := svc.UninstallOld(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Pruned ")+CmdStyle.Render(args[0]))
			return nil
		},
	}
)

func init() {
	moduleBumpCmd.Flags().StringVarP(&bumpPart, "part", "p", "patch", "version part to bump: major, minor, or patch")
	moduleInstallCmd.Flags().StringVarP(&installRepo, "repo", "r", "", "repository to install from (required)")
	_ = moduleInstallCmd.MarkFlagRequired("repo")

	moduleCmd.AddCommand(moduleBumpCmd)
	moduleCmd.AddCommand(moduleInstallCmd)
	moduleCmd.AddCommand(modulePruneCmd)
}
