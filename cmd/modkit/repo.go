// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"modkit-cli/internal/isolate"
	"modkit-cli/internal/logging"
	"modkit-cli/internal/modrepo"

	"github.com/spf13/cobra"
)

var (
	repoSource  string
	repoTrusted bool

	repoCmd = &cobra.Command{
		Use:   "repo",
		Short: "Manage registered PowerShell repositories",
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	repoRegisterCmd = &cobra.Command{
		Use:   "register <name>",
		Short: "Register a repository with PowerShellGet and record it locally",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, reg, err := repoService()
			if err != nil {
				return err
			}
			policy := modrepo.PolicyUntrusted
			if repoTrusted {
				policy = modrepo.PolicyTrusted
			}
			repo := modrepo.Repository{
				Name:           args[0],
				SourceLocation: repoSource,
				InstallPolicy:  policy,
			}
			if err := svc.RegisterRepository(cmd.Context(), reg, repo); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Registered ")+CmdStyle.Render(repo.Name))
			return nil
		},
	}

	repoUnregisterCmd = &cobra.Command{
		Use:   "unregister <name>",
		Short: "Unregister a repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, reg, err := repoService()
			if err != nil {
				return err
			}
			if err := svc.UnregisterRepository(cmd.Context(), reg, args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), SuccessStyle.Render("Unregistered ")+CmdStyle.Render(args[0]))
			return nil
		},
	}

	repoListCmd = &cobra.Command{
		Use:   "list",
		Short: "List locally registered repositories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry()
			if err != nil {
				return err
			}
			repos := reg.List()
			if len(repos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), SubtitleStyle.Render("no repositories registered"))
				return nil
			}
			for _, repo := range repos {
				fmt.Fprintf(cmd.OutOrStdout(), "%s  %s  %s\n",
					CmdStyle.Render(repo.Name),
					repo.SourceLocation,
					SubtitleStyle.Render(string(repo.InstallPolicy)))
			}
			return nil
		},
	}
)

func init() {
	repoRegisterCmd.Flags().StringVarP(&repoSource, "source", "s", "", "repository source location (required)")
	repoRegisterCmd.Flags().BoolVar(&repoTrusted, "trusted", true, "mark the repository's installation policy as trusted")
	_ = repoRegisterCmd.MarkFlagRequired("source")

	repoCmd.AddCommand(repoRegisterCmd)
	repoCmd.AddCommand(repoUnregisterCmd)
	repoCmd.AddCommand(repoListCmd)
}

// registryPath resolves the registry location, honoring the config
// override.
func registryPath() (string, error) {
	if path := activeConfig().RegistryPath; path != "" {
		return path, nil
	}
	return modrepo.DefaultRegistryPath()
}

func loadRegistry() (*modrepo.Registry, error) {
	path, err := registryPath()
	if err != nil {
		return nil, err
	}
	return modrepo.LoadRegistry(path)
}

// repoService builds the maintenance service on the configured runner
// and the logging engine.
func repoService() (*modrepo.Service, *modrepo.Registry, error) {
	cfg := activeConfig()
	kind, err := cfg.Runner()
	if err != nil {
		return nil, nil, err
	}
	runner, err := isolate.NewRegistry().Get(kind)
	if err != nil {
		return nil, nil, err
	}
	if !runner.Available() {
		return nil, nil, fmt.Errorf("runner %s is not available on this system", runner.Name())
	}
	logCfg, err := cfg.LogConfig()
	if err != nil {
		return nil, nil, err
	}
	reg, err := loadRegistry()
	if err != nil {
		return nil, nil, err
	}
	return modrepo.NewService(runner, logging.New(), logCfg), reg, nil
}
