// SPDX-License-Identifier: MPL-2.0

package modrepo

import (
	"context"
	"fmt"
	"strings"

	"modkit-cli/internal/isolate"
	"modkit-cli/internal/logging"
	"modkit-cli/pkg/version"
)

// Service runs repository and module maintenance operations by
// composing PowerShell payloads and handing them to an isolated
// runner. All state-changing steps are logged through the engine.
type Service struct {
	Runner isolate.Runner
	Logger *logging.Logger
	LogCfg logging.Config
	Opts   isolate.Options
}

// NewService wires a service on top of a runner and logger.
func NewService(runner isolate.Runner, logger *logging.Logger, cfg logging.Config) *Service {
	return &Service{Runner: runner, Logger: logger, LogCfg: cfg}
}

// psQuote single-quotes a value for PowerShell, doubling embedded
// quotes per the language's escaping rule.
func psQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func (s *Service) log(level logging.Level, template string, values ...any) {
	if s.Logger == nil {
		return
	}
	// Logging failures never abort a maintenance operation.
	_, _, _ = s.Logger.Log(s.LogCfg, level, template, values...)
}

func (s *Service) run(ctx context.Context, payload string) (*isolate.Result, error) {
	res, err := s.Runner.Run(ctx, payload, s.Opts)
	if err != nil {
		return nil, err
	}
	for _, line := range res.Errors {
		s.log(logging.LevelWarning, "{line}", line)
	}
	return res, nil
}

// RegisterRepository registers the repository with PowerShellGet and
// records it in the local registry.
func (s *Service) RegisterRepository(ctx context.Context, reg *Registry, repo Repository) error {
	if err := reg.Add(repo); err != nil {
		return err
	}
	policy := repo.InstallPolicy
	if policy == "" {
		policy = PolicyTrusted
	}
	payload := fmt.Sprintf(
		"Register-PSRepository -Name %s -SourceLocation %s -InstallationPolicy %s",
		psQuote(repo.Name), psQuote(repo.SourceLocation), policy)
	s.log(logging.LevelInformation, "registering repository {name} at {source}", repo.Name, repo.SourceLocation)
	res, err := s.run(ctx, payload)
	if err != nil {
		return err
	}
	if !res.Success() {
		return fmt.Errorf("registering repository %s: exit code %d", repo.Name, res.ExitCode)
	}
	return reg.Save()
}

// UnregisterRepository removes the repository from PowerShellGet and
// from the local registry.
func (s *Service) UnregisterRepository(ctx context.Context, reg *Registry, name string) error {
	if err := reg.Remove(name); err != nil {
		return err
	}
	payload := fmt.Sprintf("Unregister-PSRepository -Name %s", psQuote(name))
	s.log(logging.LevelInformation, "unregistering repository {name}", name)
	res, err := s.run(ctx, payload)
	if err != nil {
		return err
	}
	if !res.Success() {
		return fmt.Errorf("unregistering repository %s: exit code %d", name, res.ExitCode)
	}
	return reg.Save()
}

// InstalledVersion queries the locally installed version of a module.
// The second return is false when the module is not installed.
func (s *Service) InstalledVersion(ctx context.Context, module string) (version.Version, bool, error) {
	payload := fmt.Sprintf(
		"(Get-InstalledModule -Name %s -ErrorAction SilentlyContinue).Version", psQuote(module))
	res, err := s.run(ctx, payload)
	if err != nil {
		return version.Version{}, false, err
	}
	if len(res.Output) == 0 {
		return version.Version{}, false, nil
	}
	v, err := version.Parse(res.Output[0])
	if err != nil {
		return version.Version{}, false, fmt.Errorf("parsing installed version of %s: %w", module, err)
	}
	return v, true, nil
}

// RepositoryVersion queries the newest version a repository offers for
// a module.
func (s *Service) RepositoryVersion(ctx context.Context, module, repository string) (version.Version, error) {
	payload := fmt.Sprintf(
		"(Find-Module -Name %s -Repository %s).Version", psQuote(module), psQuote(repository))
	res, err := s.run(ctx, payload)
	if err != nil {
		return version.Version{}, err
	}
	if len(res.Output) == 0 {
		return version.Version{}, fmt.Errorf("module %s not found in repository %s", module, repository)
	}
	v, err := version.Parse(res.Output[0])
	if err != nil {
		return version.Version{}, fmt.Errorf("parsing feed version of %s: %w", module, err)
	}
	return v, nil
}

// InstallIfNewer installs the module from the repository when the feed
// offers a version newer than the installed one, or when the module is
// not installed at all. It reports whether an install ran.
func (s *Service) InstallIfNewer(ctx context.Context, module, repository string) (bool, error) {
	feed, err := s.RepositoryVersion(ctx, module, repository)
	if err != nil {
		return false, err
	}
	installed, have, err := s.InstalledVersion(ctx, module)
	if err != nil {
		return false, err
	}
	if have && !feed.Newer(installed) {
		s.log(logging.LevelDebug, "module {name} is up to date at {version}", module, installed)
		return false, nil
	}
	payload := fmt.Sprintf(
		"Install-Module -Name %s -Repository %s -RequiredVersion %s -Force -Scope CurrentUser -AllowClobber",
		psQuote(module), psQuote(repository), psQuote(feed.String()))
	s.log(logging.LevelInformation, "installing module {name} version {version}", module, feed)
	res, err := s.run(ctx, payload)
	if err != nil {
		return false, err
	}
	if !res.Success() {
		return false, fmt.Errorf("installing module %s: exit code %d", module, res.ExitCode)
	}
	return true, nil
}

// UninstallOld removes every installed version of the module except
// the newest one.
func (s *Service) UninstallOld(ctx context.Context, module string) error {
	payload := fmt.Sprintf(
		"Get-InstalledModule -Name %s -AllVersions | Sort-Object { [version] $_.Version } -Descending | Select-Object -Skip 1 | Uninstall-Module -Force",
		psQuote(module))
	s.log(logging.LevelInformation, "pruning old versions of module {name}", module)
	res, err := s.run(ctx, payload)
	if err != nil {
		return err
	}
	if !res.Success() {
		return fmt.Errorf("pruning module %s: exit code %d", module, res.ExitCode)
	}
	return nil
}
