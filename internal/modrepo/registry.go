// SPDX-License-Identifier: MPL-2.0

package modrepo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/exp/slices"

	toml "github.com/pelletier/go-toml/v2"

	"modkit-cli/internal/config"
)

// registryFileName is the registry's on-disk name inside the config dir.
const registryFileName = "repositories.toml"

var (
	ErrRepoNotFound = errors.New("repository not found")
	ErrRepoExists   = errors.New("repository already registered")
)

// InstallPolicy mirrors the PowerShellGet installation policy values.
type InstallPolicy string

const (
	PolicyTrusted   InstallPolicy = "Trusted"
	PolicyUntrusted InstallPolicy = "Untrusted"
)

// Repository describes a registered PowerShell repository.
type Repository struct {
	Name           string        `toml:"name"`
	SourceLocation string        `toml:"source_location"`
	InstallPolicy  InstallPolicy `toml:"install_policy"`
}

type registryFile struct {
	Repositories []Repository `toml:"repositories"`
}

// Registry is the local record of registered repositories. It is the
// source of truth for the CLI; the PowerShell side is kept in sync by
// the Service operations.
type Registry struct {
	path  string
	repos []Repository
}

// DefaultRegistryPath resolves the registry location inside the
// per-user config directory.
func DefaultRegistryPath() (string, error) {
	dir, err := config.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, registryFileName), nil
}

// LoadRegistry reads the registry at path. A missing file yields an
// empty registry so first use needs no setup step.
func LoadRegistry(path string) (*Registry, error) {
	reg := &Registry{path: path}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return reg, nil
		}
		return nil, fmt.Errorf("reading registry %s: %w", path, err)
	}
	var file registryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing registry %s: %w", path, err)
	}
	reg.repos = file.Repositories
	return reg, nil
}

// Save persists the registry, creating parent directories as needed.
func (r *Registry) Save() error {
	data, err := toml.Marshal(registryFile{Repositories: r.repos})
	if err != nil {
		return fmt.Errorf("encoding registry: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("creating registry dir: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("writing registry %s: %w", r.path, err)
	}
	return nil
}

// Add registers a repository. Names are unique, case-insensitively,
// matching PowerShellGet behavior.
func (r *Registry) Add(repo Repository) error {
	if repo.Name == "" {
		return errors.New("repository name must not be empty")
	}
	if repo.SourceLocation == "" {
		return errors.New("repository source location must not be empty")
	}
	if _, ok := r.Get(repo.Name); ok {
		return fmt.Errorf("%w: %s", ErrRepoExists, repo.Name)
	}
	if repo.InstallPolicy == "" {
		repo.InstallPolicy = PolicyTrusted
	}
	r.repos = append(r.repos, repo)
	return nil
}

// Remove drops a repository by name.
func (r *Registry) Remove(name string) error {
	for i, repo := range r.repos {
		if strings.EqualFold(repo.Name, name) {
			r.repos = append(r.repos[:i], r.repos[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", ErrRepoNotFound, name)
}

// Get looks a repository up by name, case-insensitively.
func (r *Registry) Get(name string) (Repository, bool) {
	for _, repo := range r.repos {
		if strings.EqualFold(repo.Name, name) {
			return repo, true
		}
	}
	return Repository{}, false
}

// List returns the repositories sorted by name.
func (r *Registry) List() []Repository {
	out := make([]Repository, len(r.repos))
	copy(out, r.repos)
	slices.SortFunc(out, func(a, b Repository) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out
}
